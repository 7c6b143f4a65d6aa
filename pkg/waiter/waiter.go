// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package waiter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	awserrors "github.com/tombee/awsclient/pkg/errors"
)

// State is the outcome an acceptor assigns to a poll.
type State int

const (
	StateRetry State = iota
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateRetry:
		return "retry"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Acceptor maps a poll result to a State. Exactly one of Expression and ErrorCode
// is set.
type Acceptor struct {
	State State

	// Expression is an expr-lang boolean evaluated against the output document.
	Expression string

	// ErrorCode matches a poll that failed with this service error code.
	ErrorCode string
}

func (a Acceptor) validate() error {
	if a.State < StateRetry || a.State > StateFailure {
		return &awserrors.ValidationError{Field: "state", Message: fmt.Sprintf("unknown %s", a.State)}
	}
	if (a.Expression == "") == (a.ErrorCode == "") {
		return &awserrors.ValidationError{Field: "acceptor", Message: "exactly one of expression and error code is required"}
	}
	return nil
}

// Options configure a wait.
type Options struct {
	// MinDelay is the delay before the second poll. Default 2s.
	MinDelay time.Duration

	// MaxDelay caps the delay between polls. Default 120s.
	MaxDelay time.Duration

	// MaxWait bounds the whole wait. Default 5m.
	MaxWait time.Duration

	// Logger receives one debug line per poll.
	Logger *slog.Logger
}

// Validate checks the options are valid.
func (o *Options) Validate() error {
	if o.MinDelay <= 0 {
		return &awserrors.ValidationError{Field: "min_delay", Message: "must be positive"}
	}
	if o.MaxDelay < o.MinDelay {
		return &awserrors.ValidationError{Field: "max_delay", Message: fmt.Sprintf("must be >= min_delay (%v)", o.MinDelay)}
	}
	if o.MaxWait <= 0 {
		return &awserrors.ValidationError{Field: "max_wait", Message: "must be positive"}
	}
	return nil
}

// DefaultOptions returns the default wait options.
func DefaultOptions() Options {
	return Options{
		MinDelay: 2 * time.Second,
		MaxDelay: 120 * time.Second,
		MaxWait:  5 * time.Minute,
	}
}

// ErrMaxWaitExceeded is returned when no terminal state was reached within MaxWait.
var ErrMaxWaitExceeded = errors.New("waiter: exceeded max wait time")

// FailureStateError is returned when a failure acceptor matched.
type FailureStateError struct {
	Acceptor Acceptor
	Attempts int

	// Cause is the poll error the acceptor matched, if any.
	Cause error
}

func (e *FailureStateError) Error() string {
	match := e.Acceptor.Expression
	if match == "" {
		match = "error code " + e.Acceptor.ErrorCode
	}
	return fmt.Sprintf("waiter: failure state reached after %d attempts (%s)", e.Attempts, match)
}

func (e *FailureStateError) Unwrap() error { return e.Cause }

// PollFunc makes one call of the waited-on operation.
type PollFunc[Out any] func(ctx context.Context) (Out, error)

// Waiter polls an operation until an acceptor reaches a terminal state.
// A Waiter is safe for concurrent use.
type Waiter[Out any] struct {
	acceptors []Acceptor
	options   Options
	eval      *evaluator
	sleep     func(ctx context.Context, d time.Duration) error
}

// New validates acceptors and returns a waiter using DefaultOptions adjusted by
// optFns.
func New[Out any](acceptors []Acceptor, optFns ...func(*Options)) (*Waiter[Out], error) {
	if len(acceptors) == 0 {
		return nil, &awserrors.ValidationError{Field: "acceptors", Message: "at least one acceptor is required"}
	}
	w := &Waiter[Out]{
		acceptors: append([]Acceptor(nil), acceptors...),
		options:   DefaultOptions(),
		eval:      newEvaluator(),
		sleep:     sleepContext,
	}
	for i, a := range w.acceptors {
		if err := a.validate(); err != nil {
			return nil, fmt.Errorf("acceptor %d: %w", i, err)
		}
		if a.Expression != "" {
			if _, err := w.eval.compile(a.Expression); err != nil {
				return nil, fmt.Errorf("acceptor %d: %w", i, err)
			}
		}
	}
	for _, fn := range optFns {
		fn(&w.options)
	}
	if err := w.options.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Wait polls until a success or failure acceptor matches, a poll error matches no
// acceptor, ctx is done, or the options' MaxWait elapses. optFns adjust the
// options for this wait only.
func (w *Waiter[Out]) Wait(ctx context.Context, poll PollFunc[Out], optFns ...func(*Options)) (Out, error) {
	var zero Out
	opts := w.options
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.Validate(); err != nil {
		return zero, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	deadline := time.Now().Add(opts.MaxWait)
	for attempt := 1; ; attempt++ {
		out, pollErr := poll(ctx)

		state, matched, err := w.match(out, pollErr)
		if err != nil {
			return zero, err
		}
		logger.Debug("waiter poll",
			"attempt", attempt,
			"state", state.String(),
			"matched", matched != nil,
		)

		switch {
		case matched != nil && state == StateSuccess:
			return out, nil
		case matched != nil && state == StateFailure:
			return zero, &FailureStateError{Acceptor: *matched, Attempts: attempt, Cause: pollErr}
		case matched == nil && pollErr != nil:
			return zero, pollErr
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return zero, ErrMaxWaitExceeded
		}
		delay := computeDelay(attempt, opts.MinDelay, opts.MaxDelay, remaining)
		if err := w.sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
}

// match returns the state of the first acceptor matching the poll result.
func (w *Waiter[Out]) match(out Out, pollErr error) (State, *Acceptor, error) {
	var (
		doc    map[string]any
		docErr error
		loaded bool
	)
	for i := range w.acceptors {
		a := &w.acceptors[i]
		if a.ErrorCode != "" {
			if pollErr != nil && awserrors.Code(pollErr) == a.ErrorCode {
				return a.State, a, nil
			}
			continue
		}
		if pollErr != nil {
			continue
		}
		if !loaded {
			doc, docErr = document(out)
			loaded = true
		}
		if docErr != nil {
			return StateFailure, nil, docErr
		}
		ok, err := w.eval.evaluate(a.Expression, doc)
		if err != nil {
			return StateFailure, nil, err
		}
		if ok {
			return a.State, a, nil
		}
	}
	return StateRetry, nil, nil
}

// computeDelay returns an exponential delay with jitter, at least minDelay, at most
// maxDelay, and never beyond the remaining wait.
func computeDelay(attempt int, minDelay, maxDelay, remaining time.Duration) time.Duration {
	ceiling := float64(minDelay) * math.Pow(2, float64(attempt-1))
	if ceiling > float64(maxDelay) || math.IsInf(ceiling, 1) {
		ceiling = float64(maxDelay)
	}

	delay := minDelay
	if span := time.Duration(ceiling) - minDelay; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span) + 1))
	}
	if delay > remaining {
		delay = remaining
	}
	return delay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
