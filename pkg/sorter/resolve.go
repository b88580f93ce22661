package sorter

import (
	"context"
	"fmt"
	"sync"

	"github.com/convox/refsort/pkg/structs"
	"golang.org/x/sync/errgroup"
)

// ResolveEntries fetches every id concurrently and waits for all fetches to
// settle. The result is parallel to ids; a failed fetch yields an error
// placeholder instead of aborting the batch.
func (e *Engine) ResolveEntries(ctx context.Context, ids []string) []structs.Resolved {
	rs := make([]structs.Resolved, len(ids))

	if len(ids) == 0 {
		return rs
	}

	p := e.Provider.WithContext(ctx)
	log := e.logger().At("resolve-entries").Start()

	var g errgroup.Group

	g.SetLimit(e.concurrency())

	for i, id := range ids {
		i, id := i, id

		g.Go(func() error {
			rs[i] = resolveEntry(ctx, p, id)

			if rs[i].Kind == structs.ResolvedError {
				log.Logf("id=%s state=missing error=%q", id, rs[i].Error)
			}

			return nil
		})
	}

	g.Wait()

	log.Successf("count=%d", len(ids))

	return rs
}

func resolveEntry(ctx context.Context, p structs.Provider, id string) structs.Resolved {
	if err := ctx.Err(); err != nil {
		return structs.NewResolvedError(id, err)
	}

	en, err := p.EntryGet(id)
	if err != nil {
		return structs.NewResolvedError(id, err)
	}
	if en == nil {
		return structs.NewResolvedError(id, fmt.Errorf("no such entry: %s", id))
	}

	if en.Sys.Id == "" {
		en.Sys.Id = id
	}

	return structs.NewResolvedEntry(en)
}

// ResolveDisplayFields maps the content type of every resolved entry to its
// display field. Each content type is fetched once; content types that fail
// to resolve are left out of the map.
func (e *Engine) ResolveDisplayFields(ctx context.Context, rs []structs.Resolved) map[string]string {
	fields := map[string]string{}

	ids := contentTypeIds(rs)

	if len(ids) == 0 {
		return fields
	}

	p := e.Provider.WithContext(ctx)
	log := e.logger().At("resolve-content-types").Start()

	var lock sync.Mutex
	var g errgroup.Group

	g.SetLimit(e.concurrency())

	for _, id := range ids {
		id := id

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			ct, err := p.ContentTypeGet(id)
			if err != nil || ct == nil {
				log.Logf("content-type=%s state=missing error=%v", id, err)
				return nil
			}

			lock.Lock()
			fields[id] = ct.DisplayField
			lock.Unlock()

			return nil
		})
	}

	g.Wait()

	log.Successf("count=%d", len(ids))

	return fields
}

func contentTypeIds(rs []structs.Resolved) []string {
	ids := []string{}
	seen := map[string]bool{}

	for _, r := range rs {
		if !r.Ok() {
			continue
		}

		id := r.Entry.ContentTypeId()

		if id == "" || seen[id] {
			continue
		}

		seen[id] = true
		ids = append(ids, id)
	}

	return ids
}
