// Package peresil provides low-level building blocks for hand-written
// backtracking parsers: immutable cursor types over strings, byte slices,
// and element slices, a result type coupling a cursor with either a parsed
// value or a typed failure, and a driver (ParseMaster) that composes
// parsing functions into alternation and repetition while remembering the
// furthest point any attempt reached.
//
// Client code supplies ordinary functions of shape
//
//	func(m *ParseMaster[P, E], pt P) Progress[P, T, E]
//
// Sequencing is done by chaining each step's output point into the next
// call (or with Then); choice points go through the driver so that failed
// branches still contribute to the final "parse failed at offset N"
// diagnostic.
package peresil

// Point is the capability a cursor type must provide to work with the
// driver: its offset from the start of the original input. Two points
// derived from the same input compare by Pos alone, never by content.
// The Go zero value of a concrete point is its canonical zero instance.
type Point interface {
	Pos() int
}

// Recoverable is the capability a failure type must provide to work with
// the driver. A recoverable failure lets alternation try the next option
// and lets repetition stop gracefully; anything else aborts the enclosing
// combinator and propagates unchanged. Classification must depend only on
// the value: the same error must always answer the same way.
type Recoverable interface {
	Recoverable() bool
}

// NoMatch is the failure payload of the primitive cursor operations. It
// carries no information beyond "the input did not match here" and is
// always recoverable; callers that need richer errors replace it with
// MapErr.
type NoMatch struct{}

func (NoMatch) Recoverable() bool { return true }

func (NoMatch) Error() string { return "no match" }

// Status is the outcome of a single parse step: a matched value or a
// typed failure. It carries no position information.
type Status[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Success returns a Status holding a parsed value.
func Success[T, E any](value T) Status[T, E] {
	return Status[T, E]{ok: true, value: value}
}

// Failure returns a Status holding a failure payload.
func Failure[T, E any](err E) Status[T, E] {
	return Status[T, E]{err: err}
}

func (s Status[T, E]) IsSuccess() bool { return s.ok }

// Value returns the parsed value and whether the status is a success.
func (s Status[T, E]) Value() (T, bool) { return s.value, s.ok }

// Err returns the failure payload and whether the status is a failure.
func (s Status[T, E]) Err() (E, bool) { return s.err, !s.ok }

// Progress couples the cursor position after a parse attempt with its
// outcome. On success the point sits past the consumed input; on failure
// it sits exactly where the attempt was made. A Progress is a plain value
// and structural equality on it is meaningful, which the tests use
// throughout.
type Progress[P Point, T, E any] struct {
	Point  P
	Status Status[T, E]
}

// SuccessAt returns a successful Progress at pt. The failure type comes
// first so call sites can name it and let the rest be inferred:
//
//	peresil.SuccessAt[MyError](pt, value)
func SuccessAt[E any, P Point, T any](pt P, value T) Progress[P, T, E] {
	return Progress[P, T, E]{Point: pt, Status: Success[T, E](value)}
}

// FailureAt returns a failed Progress at pt. The value type comes first
// for the same inference reason as SuccessAt:
//
//	peresil.FailureAt[Node](pt, err)
func FailureAt[T any, P Point, E any](pt P, err E) Progress[P, T, E] {
	return Progress[P, T, E]{Point: pt, Status: Failure[T, E](err)}
}

// Map transforms the success value and passes failures through unchanged.
func Map[P Point, T, U, E any](p Progress[P, T, E], f func(T) U) Progress[P, U, E] {
	if v, ok := p.Status.Value(); ok {
		return SuccessAt[E](p.Point, f(v))
	}
	err, _ := p.Status.Err()
	return FailureAt[U](p.Point, err)
}

// MapErr transforms the failure payload and passes successes through
// unchanged.
func MapErr[P Point, T, E, E2 any](p Progress[P, T, E], f func(E) E2) Progress[P, T, E2] {
	if v, ok := p.Status.Value(); ok {
		return SuccessAt[E2](p.Point, v)
	}
	err, _ := p.Status.Err()
	return FailureAt[T](p.Point, f(err))
}

// Then chains a parse step onto a successful Progress: f receives the
// point past the consumed input together with the value. A failed
// Progress short-circuits past f.
func Then[P Point, T, U, E any](p Progress[P, T, E], f func(P, T) Progress[P, U, E]) Progress[P, U, E] {
	if v, ok := p.Status.Value(); ok {
		return f(p.Point, v)
	}
	err, _ := p.Status.Err()
	return FailureAt[U](p.Point, err)
}
