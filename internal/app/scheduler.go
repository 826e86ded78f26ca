package app

import (
	"context"
	"sync"
	"time"

	"rawbatch/internal/domain"
	appErrors "rawbatch/internal/errors"
	"rawbatch/internal/logging"
)

// ProgressFunc is called after each job's result has been merged.
type ProgressFunc func(done, total int, path string)

// Scheduler runs jobs sequentially (Workers <= 1) or on a fixed pool of
// workers and folds their results. The aggregate is only ever touched by the
// collecting goroutine; workers hand back values.
type Scheduler struct {
	Executor   *Executor
	Workers    int
	Logger     logging.Logger
	OnProgress ProgressFunc
	Now        func() time.Time
}

type jobResult struct {
	job   Job
	stats domain.Statistics
	err   error
}

// Run executes every job exactly once and returns the aggregate. It never
// fails: per-job errors are logged and counted.
//
// The Total category records the gap between consecutive completions. In
// sequential mode that is each job's duration; with several workers it only
// approximates per-job latency.
func (s *Scheduler) Run(ctx context.Context, jobs []Job) domain.Statistics {
	if s.Workers <= 1 {
		return s.runSequential(ctx, jobs)
	}
	return s.runPooled(ctx, jobs)
}

func (s *Scheduler) runSequential(ctx context.Context, jobs []Job) domain.Statistics {
	var agg domain.Statistics
	last := s.now()
	for i, job := range jobs {
		stats, err := s.Executor.Execute(ctx, job)
		agg, last = s.collect(agg, last, jobResult{job: job, stats: stats, err: err})
		s.progress(i+1, len(jobs), job)
	}
	return agg
}

func (s *Scheduler) runPooled(ctx context.Context, jobs []Job) domain.Statistics {
	workers := s.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan Job, workers)
	results := make(chan jobResult, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range queue {
				stats, err := s.Executor.Execute(ctx, job)
				results <- jobResult{job: job, stats: stats, err: err}
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, job := range jobs {
			queue <- job
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var agg domain.Statistics
	last := s.now()
	done := 0
	for res := range results {
		agg, last = s.collect(agg, last, res)
		done++
		s.progress(done, len(jobs), res.job)
	}
	return agg
}

func (s *Scheduler) collect(agg domain.Statistics, last time.Time, res jobResult) (domain.Statistics, time.Time) {
	if res.err != nil {
		s.Logger.Errorf("%s", appErrors.UserMessage(res.err))
	}
	agg = agg.Merge(res.stats)
	now := s.now()
	agg.Total.Record(now.Sub(last))
	return agg, now
}

func (s *Scheduler) progress(done, total int, job Job) {
	if s.OnProgress != nil {
		s.OnProgress(done, total, job.Name())
	}
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
