package services

import (
	"context"
	"sort"
	"sync"

	"github.com/atlaserp/backend/internal/domain"
	"github.com/atlaserp/backend/internal/infrastructure/logger"
)

// DispatchService fans an ordered batch of work items out across a bounded
// worker pool and fans back in before returning. Results are keyed by
// submission index so callers can reconstruct request order regardless of
// completion order.
type DispatchService struct {
	workers int
	logger  *logger.Logger
}

type DispatchServiceConfig struct {
	Workers int
	Logger  *logger.Logger
}

func NewDispatchService(cfg DispatchServiceConfig) *DispatchService {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	return &DispatchService{
		workers: workers,
		logger:  cfg.Logger,
	}
}

// Workers reports the configured pool bound.
func (s *DispatchService) Workers() int {
	return s.workers
}

type itemOutcome struct {
	index int
	value any
	err   error
}

// Run executes the items on at most Workers() concurrent goroutines. Excess
// items queue until a worker frees up. The pool always drains: a failing item
// never interrupts in-flight ones. If any item failed, the partial results
// are discarded and the first observed failure is returned; the completed
// indices are logged for diagnosis even though the caller never sees them.
func (s *DispatchService) Run(ctx context.Context, items []domain.WorkItem) (map[int]any, error) {
	results := make(map[int]any, len(items))
	if len(items) == 0 {
		return results, nil
	}

	workers := s.workers
	if workers > len(items) {
		workers = len(items)
	}

	type job struct {
		index int
		work  domain.WorkItem
	}

	jobs := make(chan job)
	outcomes := make(chan itemOutcome, len(items))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				value, err := j.work()
				outcomes <- itemOutcome{index: j.index, value: value, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, item := range items {
			jobs <- job{index: i, work: item}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var firstFailure *domain.DispatchError
	var completed []int
	for outcome := range outcomes {
		if outcome.err != nil {
			if firstFailure == nil {
				firstFailure = &domain.DispatchError{Index: outcome.index, Err: outcome.err}
			}
			continue
		}
		results[outcome.index] = outcome.value
		completed = append(completed, outcome.index)
	}

	if firstFailure != nil {
		sort.Ints(completed)
		s.logger.Warnw("batch_aborted",
			"failed_index", firstFailure.Index,
			"error", firstFailure.Err,
			"completed_indices", completed,
			"submitted", len(items),
		)
		return nil, firstFailure
	}

	return results, nil
}
