package peresil

import "slices"

// SlicePoint tracks the location of parsing in an element slice. The
// zero value is a point at offset 0 with no remaining input.
type SlicePoint[T comparable] struct {
	// Offset is how far into the original slice this point is.
	Offset int
	// Rest is the unconsumed portion of the input.
	Rest []T
}

// NewSlicePoint returns a point at the start of s.
func NewSlicePoint[T comparable](s []T) SlicePoint[T] {
	return SlicePoint[T]{Rest: s}
}

func (p SlicePoint[T]) Pos() int { return p.Offset }

func (p SlicePoint[T]) IsEmpty() bool { return len(p.Rest) == 0 }

// AdvanceBy returns a point n elements further in. The caller must have
// validated that n elements remain.
func (p SlicePoint[T]) AdvanceBy(n int) SlicePoint[T] {
	return SlicePoint[T]{Offset: p.Offset + n, Rest: p.Rest[n:]}
}

// To returns the elements strictly between p and a later point derived
// from the same input. Undefined for points over different inputs.
func (p SlicePoint[T]) To(other SlicePoint[T]) []T {
	return p.Rest[:other.Offset-p.Offset]
}

// Fail reports a failure without moving the point.
func (p SlicePoint[T]) Fail() Progress[SlicePoint[T], []T, NoMatch] {
	return FailureAt[[]T](p, NoMatch{})
}

// Success consumes n elements, returning them as the matched value. The
// caller must have validated n; zero and unbounded lengths are allowed.
func (p SlicePoint[T]) Success(n int) Progress[SlicePoint[T], []T, NoMatch] {
	return SuccessAt[NoMatch](p.AdvanceBy(n), p.Rest[:n])
}

// SuccessOpt is Success for lengths computed by a sub-match that reports
// "no match" as ok == false instead of a failure value.
func (p SlicePoint[T]) SuccessOpt(n int, ok bool) Progress[SlicePoint[T], []T, NoMatch] {
	if !ok {
		return p.Fail()
	}
	return p.Success(n)
}

// Consume advances by n iff 0 < n <= len(p.Rest); otherwise it fails at
// the current position. Zero-length consumption always fails, which is
// what keeps repetition combinators from spinning on zero-width matches.
func (p SlicePoint[T]) Consume(n int) Progress[SlicePoint[T], []T, NoMatch] {
	if n > 0 && n <= len(p.Rest) {
		return p.Success(n)
	}
	return p.Fail()
}

// ConsumeOpt is Consume with an optional length; ok == false fails.
func (p SlicePoint[T]) ConsumeOpt(n int, ok bool) Progress[SlicePoint[T], []T, NoMatch] {
	if !ok {
		return p.Fail()
	}
	return p.Consume(n)
}

// Tag returns a parsing function that matches the literal element
// sequence at the front of the input, consuming exactly its length.
func Tag[T comparable](lit []T) func(SlicePoint[T]) Progress[SlicePoint[T], []T, NoMatch] {
	return func(p SlicePoint[T]) Progress[SlicePoint[T], []T, NoMatch] {
		ok := len(p.Rest) >= len(lit) && slices.Equal(p.Rest[:len(lit)], lit)
		return p.SuccessOpt(len(lit), ok)
	}
}
