package scheduler

import (
	"context"
	"time"

	"github.com/adhocore/gronx"
	"github.com/convox/logger"
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
)

type Sorter interface {
	Sort(ctx context.Context, t structs.Target, spec structs.SortSpec) (*structs.SortResult, error)
}

// Scheduler re-sorts the configured fields whenever their cron schedule is
// due. Jobs run one at a time within a tick.
type Scheduler struct {
	History structs.History
	Jobs    structs.Jobs
	Logger  *logger.Logger
	Sorter  Sorter
}

func New(s Sorter, jobs structs.Jobs) *Scheduler {
	return &Scheduler{
		Jobs:   jobs,
		Logger: logger.New("ns=scheduler"),
		Sorter: s,
	}
}

// Start runs Tick at the top of every minute until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.Logger.At("start").Logf("jobs=%d", len(s.Jobs))

	for {
		now := time.Now()

		t := time.NewTimer(now.Truncate(time.Minute).Add(time.Minute).Sub(now))

		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case at := <-t.C:
			s.Tick(ctx, at)
		}
	}
}

// Tick runs every job due at now and returns the names of the jobs run.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) []string {
	g := gronx.New()
	ran := []string{}

	ref := now.Truncate(time.Minute)

	for _, j := range s.Jobs {
		due, err := g.IsDue(j.Schedule, ref)
		if err != nil {
			helpers.Error(s.Logger.At("tick").Namespace("job=%s", j.Name), err)
			continue
		}

		if !due {
			continue
		}

		s.run(ctx, j)

		ran = append(ran, j.Name)
	}

	return ran
}

func (s *Scheduler) run(ctx context.Context, j structs.Job) {
	log := s.Logger.At("run").Namespace("job=%s target=%s", j.Name, j.Target).Start()

	res, err := s.Sorter.Sort(ctx, j.Target, j.Spec)
	if err != nil {
		helpers.Error(log, err)
		return
	}

	if res == nil {
		log.Logf("state=skipped")
		return
	}

	if res.Superseded {
		log.Logf("state=superseded")
		return
	}

	if s.History != nil {
		if _, err := s.History.Record(structs.NewSortRecord(res, structs.SourceScheduler)); err != nil {
			helpers.Error(log, err)
			return
		}
	}

	log.Successf("count=%d", len(res.Links))
}
