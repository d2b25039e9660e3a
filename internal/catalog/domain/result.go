package domain

// State is the lifecycle state of a network-backed query
type State int

const (
	StatePending State = iota
	StateSuccess
	StateFailure
)

// String returns the state name for logging
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the three-state outcome of a query against the upstream
// catalog: pending until the first response arrives, then success with a
// value or failure with an error. Every view that depends on network data
// consumes this shape instead of ad-hoc loading/error booleans.
type Result[T any] struct {
	state State
	value T
	err   error
}

// Pending returns a result that has not completed yet
func Pending[T any]() Result[T] {
	return Result[T]{state: StatePending}
}

// Success returns a completed result carrying a value
func Success[T any](value T) Result[T] {
	return Result[T]{state: StateSuccess, value: value}
}

// Failure returns a completed result carrying an error
func Failure[T any](err error) Result[T] {
	return Result[T]{state: StateFailure, err: err}
}

// State returns the lifecycle state of the result
func (r Result[T]) State() State {
	return r.state
}

// Value returns the carried value and whether the result succeeded
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == StateSuccess
}

// Err returns the carried error, nil unless the result failed
func (r Result[T]) Err() error {
	if r.state != StateFailure {
		return nil
	}
	return r.err
}
