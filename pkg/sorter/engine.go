package sorter

import (
	"context"
	"sync"

	"github.com/convox/logger"
	"github.com/convox/refsort/pkg/structs"
	"github.com/pkg/errors"
)

const DefaultConcurrency = 8

type Engine struct {
	Concurrency  int
	Installation *structs.Installation
	Logger       *logger.Logger
	Provider     structs.Provider

	lock        sync.Mutex
	generation  uint64
	generations map[structs.Target]uint64
}

func New(p structs.Provider) *Engine {
	return &Engine{
		Concurrency: DefaultConcurrency,
		Logger:      logger.New("ns=sorter"),
		Provider:    p,
	}
}

// Order computes the sorted links for a reference field value without
// reading or writing any host field.
func (e *Engine) Order(ctx context.Context, value interface{}, spec structs.SortSpec, locale string) (structs.Links, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	ids, err := ExtractIds(value)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return structs.Links{}, nil
	}

	rs := e.ResolveEntries(ctx, ids)

	fields := map[string]string{}

	if spec.By == structs.SortByTitle {
		fields = e.ResolveDisplayFields(ctx, rs)
	}

	return Order(rs, Keys(rs, spec, locale, fields), spec.Direction), nil
}

// Sort reorders the reference field described by t and writes the new order
// back to the host entry in a single update. A sort that has been overtaken
// by a newer sort of the same field skips its write and is reported as
// superseded.
func (e *Engine) Sort(ctx context.Context, t structs.Target, spec structs.SortSpec) (*structs.SortResult, error) {
	if e == nil || e.Provider == nil {
		return nil, nil
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := e.Allows(spec); err != nil {
		return nil, err
	}

	log := e.logger().At("sort").Namespace("target=%s by=%s direction=%s", t, spec.By, spec.Direction).Start()

	gen := e.begin(t)
	defer e.end(t, gen)

	p := e.Provider.WithContext(ctx)

	host, err := hostEntry(p, t)
	if err != nil {
		return nil, log.Error(err)
	}

	value, _ := host.Fields.Value(t.Field, t.Locale)

	ls, err := e.Order(ctx, value, spec, t.Locale)
	if err != nil {
		return nil, log.Error(errors.Wrapf(err, "could not sort %s", t))
	}

	res := &structs.SortResult{Target: t, Spec: spec, Links: ls}

	if len(ls) == 0 {
		log.Successf("count=0")
		return res, nil
	}

	if !e.current(t, gen) {
		log.Logf("state=superseded")
		res.Superseded = true
		return res, nil
	}

	if host.Fields == nil {
		host.Fields = structs.Fields{}
	}

	host.Fields.Set(t.Field, t.Locale, ls)

	if _, err := p.EntryUpdate(host); err != nil {
		return nil, log.Error(errors.Wrapf(err, "could not update entry %s", t.Entry))
	}

	log.Successf("count=%d", len(ls))

	return res, nil
}

// Entries resolves the entries currently linked from the field described by
// t, in their current order.
func (e *Engine) Entries(ctx context.Context, t structs.Target) (structs.EntrySummaries, error) {
	if e == nil || e.Provider == nil {
		return structs.EntrySummaries{}, nil
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	host, err := hostEntry(e.Provider.WithContext(ctx), t)
	if err != nil {
		return nil, err
	}

	value, _ := host.Fields.Value(t.Field, t.Locale)

	ids, err := ExtractIds(value)
	if err != nil {
		return nil, err
	}

	rs := e.ResolveEntries(ctx, ids)
	fields := e.ResolveDisplayFields(ctx, rs)

	ss := make(structs.EntrySummaries, len(rs))

	for i, r := range rs {
		s := structs.EntrySummary{Id: r.Id, Status: structs.EntryStatusMissing}

		if r.Ok() {
			s.Status = structs.EntryStatusResolved
			s.ContentType = r.Entry.ContentTypeId()
			s.Updated = r.Entry.Sys.UpdatedAt
			s.Title, _ = Title(r, t.Locale, fields)
		}

		ss[i] = s
	}

	return ss, nil
}

// Allows checks spec against the installation, if one is configured.
func (e *Engine) Allows(spec structs.SortSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	if e.Installation == nil {
		return nil
	}

	return e.Installation.Allows(spec)
}

func hostEntry(p structs.Provider, t structs.Target) (*structs.Entry, error) {
	host, err := p.EntryGet(t.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read entry %s", t.Entry)
	}
	if host == nil {
		return nil, errors.Errorf("no such entry: %s", t.Entry)
	}

	return host, nil
}

func (e *Engine) begin(t structs.Target) uint64 {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.generations == nil {
		e.generations = map[structs.Target]uint64{}
	}

	e.generation++
	e.generations[t] = e.generation

	return e.generation
}

func (e *Engine) current(t structs.Target, gen uint64) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.generations[t] == gen
}

func (e *Engine) end(t structs.Target, gen uint64) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.generations[t] == gen {
		delete(e.generations, t)
	}
}

func (e *Engine) concurrency() int {
	if e.Concurrency < 1 {
		return DefaultConcurrency
	}

	return e.Concurrency
}

func (e *Engine) logger() *logger.Logger {
	if e.Logger == nil {
		return logger.New("ns=sorter")
	}

	return e.Logger
}
