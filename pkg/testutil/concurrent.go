package testutil

import (
	"errors"
	"sync"
	"sync/atomic"

	dErrors "pessoas/pkg/domain-errors"
	"pessoas/pkg/platform/sentinel"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes  int32
	Errors     int32
	Conflicts  int32
	NotFounds  int32
	Validation int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Conflicts + r.NotFounds + r.Validation
}

// RunConcurrent runs fn in the given number of goroutines, all released at
// the same time, and categorizes the returned errors. Both store sentinels
// and the matching domain error codes are recognized.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		res   struct {
			successes, errs, conflicts, notFounds, validation atomic.Int32
		}
	)

	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			err := fn(idx)
			switch {
			case err == nil:
				res.successes.Add(1)
			case errors.Is(err, sentinel.ErrConflict), dErrors.HasCode(err, dErrors.CodeConflict):
				res.conflicts.Add(1)
			case errors.Is(err, sentinel.ErrNotFound), dErrors.HasCode(err, dErrors.CodeNotFound):
				res.notFounds.Add(1)
			case dErrors.HasCode(err, dErrors.CodeValidation):
				res.validation.Add(1)
			default:
				res.errs.Add(1)
			}
		}(i)
	}

	close(start)
	wg.Wait()

	return &ConcurrentResult{
		Successes:  res.successes.Load(),
		Errors:     res.errs.Load(),
		Conflicts:  res.conflicts.Load(),
		NotFounds:  res.notFounds.Load(),
		Validation: res.validation.Load(),
	}
}

// RunConcurrentCollect runs fn in parallel and returns every value it produced
// along with every error, for tests that inspect individual results.
func RunConcurrentCollect[T any](goroutines int, fn func(idx int) (T, error)) ([]T, []error) {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		values = make([]T, 0, goroutines)
		errs   []error
	)

	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			v, err := fn(idx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			values = append(values, v)
		}(i)
	}

	wg.Wait()
	return values, errs
}
