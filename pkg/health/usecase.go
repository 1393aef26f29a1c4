// Package health aggregates dependency checks for the readiness probe.
package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Checker is one dependency probe, e.g. a store ping.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	// Ready runs every checker concurrently under ctx. The result joins the
	// failures in checker order, each prefixed with the checker name.
	Ready(ctx context.Context) error
}

type readiness struct {
	checkers []Checker
}

func NewService(checkers ...Checker) ReadinessUseCase {
	return &readiness{checkers: checkers}
}

func (r *readiness) Ready(ctx context.Context) error {
	errs := make([]error, len(r.checkers))

	var wg sync.WaitGroup
	for i, ch := range r.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ch.Check(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", ch.Name(), err)
			}
		}()
	}
	wg.Wait()

	// errors.Join drops the nil entries.
	return errors.Join(errs...)
}
