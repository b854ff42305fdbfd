// Package state holds the primitives the stores are built from: a tagged
// operation result and a snapshot broadcaster.
package state

// Phase is the stage of an asynchronous operation.
type Phase int

const (
	PhasePending Phase = iota
	PhaseOk
	PhaseErr
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseOk:
		return "ok"
	case PhaseErr:
		return "err"
	default:
		return "unknown"
	}
}

// Result is one of Pending, Ok(value) or Err(error).
type Result[T any] struct {
	phase Phase
	value T
	err   error
}

func Pending[T any]() Result[T] { return Result[T]{phase: PhasePending} }

func Ok[T any](v T) Result[T] { return Result[T]{phase: PhaseOk, value: v} }

// Err builds a failed result. A nil error still yields PhaseErr.
func Err[T any](err error) Result[T] { return Result[T]{phase: PhaseErr, err: err} }

// From turns a (value, error) pair into Ok or Err.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (r Result[T]) Phase() Phase { return r.phase }

// Value returns the value and whether the result is Ok.
func (r Result[T]) Value() (T, bool) { return r.value, r.phase == PhaseOk }

// Error returns the failure of an Err result, nil otherwise.
func (r Result[T]) Error() error {
	if r.phase != PhaseErr {
		return nil
	}
	return r.err
}

// ErrorMessage is Error().Error(), or "" when there is nothing to show.
func (r Result[T]) ErrorMessage() string {
	if err := r.Error(); err != nil {
		return err.Error()
	}
	return ""
}
