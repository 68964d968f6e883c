// README: Stage result type and fallback combinator used by the itinerary and booking pipelines.
package types

import "fmt"

// Stage names one step of a generation pipeline.
type Stage string

const (
	StageValidating   Stage = "VALIDATING"
	StageWeatherFetch Stage = "WEATHER_FETCH"
	StagePrompting    Stage = "PROMPTING"
	StageGenerating   Stage = "GENERATING"
	StageExtracting   Stage = "EXTRACTING"
	StageMerging      Stage = "MERGING"

	StageQuoting    Stage = "QUOTING"
	StageConfirming Stage = "CONFIRMING"
	StageOrdering   Stage = "ORDERING"
)

// Failure records the stage that failed and the underlying error.
type Failure struct {
	Stage Stage
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Stage, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Reason returns the taxonomy reason for logs and metrics.
func (f *Failure) Reason() string {
	return Classify(f.Err)
}

// Result is either a value or a Failure, never both.
type Result[T any] struct {
	value   T
	failure *Failure
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Fail[T any](stage Stage, err error) Result[T] {
	if err == nil {
		err = ErrUpstreamUnavailable
	}
	return Result[T]{failure: &Failure{Stage: stage, Err: err}}
}

// Attempt runs fn and records any error against stage.
func Attempt[T any](stage Stage, fn func() (T, error)) Result[T] {
	v, err := fn()
	if err != nil {
		return Fail[T](stage, err)
	}
	return Ok(v)
}

func (r Result[T]) OK() bool {
	return r.failure == nil
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Then runs next on success and carries the first failure forward otherwise.
func Then[T, U any](r Result[T], next func(T) Result[U]) Result[U] {
	if r.failure != nil {
		return Result[U]{failure: r.failure}
	}
	return next(r.value)
}

// OrElse returns the value of r, or the output of fallback when r failed. The failure is
// returned alongside so callers can mark the output as degraded.
func OrElse[T any](r Result[T], fallback func(*Failure) T) (T, *Failure) {
	if r.failure == nil {
		return r.value, nil
	}
	return fallback(r.failure), r.failure
}
