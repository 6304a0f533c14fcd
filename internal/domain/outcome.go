package domain

import (
	"fmt"
	"os"
	"sync"
)

// Outcome is the terminal result of one Maven invocation.
// It is either Success or *Failure.
type Outcome interface {
	isOutcome()
}

// Success reports that the process exited with code 0.
type Success struct{}

func (Success) isOutcome() {}

// Failure reports abnormal termination.
// Exactly one of ExitCode and Signal is meaningful:
// ExitCode is -1 when the process was killed by Signal, and Signal is nil
// when the process exited on its own.
type Failure struct {
	Signal   os.Signal
	ExitCode int
}

func (*Failure) isOutcome() {}

// Error implements error.
func (f *Failure) Error() string {
	if f.Signal != nil {
		return fmt.Sprintf("maven terminated by signal: %v", f.Signal)
	}
	return fmt.Sprintf("maven exited with code %d", f.ExitCode)
}

// Signaled reports whether the process was killed by a signal.
func (f *Failure) Signaled() bool {
	return f.Signal != nil
}

// Future is the pending result of a launched process.
// It settles exactly once, either with an Outcome or with a launch error.
type Future struct {
	outcome Outcome
	err     error
	done    chan struct{}
	once    sync.Once
}

// NewFuture returns an unsettled Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve settles the future with an outcome. Later calls are ignored.
func (f *Future) Resolve(outcome Outcome) {
	f.once.Do(func() {
		f.outcome = outcome
		close(f.done)
	})
}

// Reject settles the future with a launch error. Later calls are ignored.
func (f *Future) Reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the future settles.
// A launch error is returned as-is with a nil Outcome.
func (f *Future) Result() (Outcome, error) {
	<-f.done
	return f.outcome, f.err
}

// Wait blocks until the future settles and returns nil on success,
// the *Failure for abnormal termination, or the launch error.
func (f *Future) Wait() error {
	outcome, err := f.Result()
	if err != nil {
		return err
	}
	if failure, ok := outcome.(*Failure); ok {
		return failure
	}
	return nil
}
