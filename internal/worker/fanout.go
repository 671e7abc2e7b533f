// Package worker implements the fan-out/fan-in primitive used for
// independent upstream reads:
// - bounded or unbounded parallelism via errgroup
// - results joined in input order
// - per-task failures reported and skipped, never aborting siblings
package worker

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var (
	tasksInflight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "faceit_fanout_tasks_inflight",
		Help: "Current number of fan-out tasks running",
	})

	tasksFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faceit_fanout_tasks_failed_total",
		Help: "Total number of fan-out tasks that returned an error",
	})
)

// TaskFunc processes one item.
type TaskFunc[T, R any] func(ctx context.Context, item T) (R, error)

// ErrorFunc receives a failed item. It may be called from several
// goroutines at once.
type ErrorFunc[T any] func(item T, err error)

// Map runs fn for every item with at most limit calls in flight (limit <= 0
// means no limit) and returns the results in input order. A failed task
// leaves its slot at the zero value of R and is passed to onError; the other
// tasks keep running. Tasks not yet started when ctx is done fail with
// ctx.Err().
func Map[T, R any](ctx context.Context, items []T, limit int, fn TaskFunc[T, R], onError ErrorFunc[T]) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		i, item := i, item // per-iteration copy for go < 1.22 loop semantics
		g.Go(func() error {
			tasksInflight.Inc()
			defer tasksInflight.Dec()

			var (
				res R
				err = gctx.Err()
			)
			if err == nil {
				res, err = fn(gctx, item)
			}
			if err != nil {
				tasksFailed.Inc()
				if onError != nil {
					onError(item, err)
				}
				return nil
			}
			results[i] = res
			return nil
		})
	}

	// Tasks never return errors to the group
	_ = g.Wait()
	return results
}
