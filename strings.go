package peresil

import "strings"

// Identifier pairs a literal string with the value it stands for,
// usually an enum-like constant. See ConsumeIdentifier.
type Identifier[T any] struct {
	Literal string
	Value   T
}

// StringPoint tracks the location of parsing in a string, the most
// common case. The zero value is a point at offset 0 with no remaining
// input.
type StringPoint struct {
	// Offset is how far into the original string this point is, in bytes.
	Offset int
	// Rest is the unconsumed portion of the input.
	Rest string
}

// NewStringPoint returns a point at the start of s.
func NewStringPoint(s string) StringPoint {
	return StringPoint{Rest: s}
}

func (p StringPoint) Pos() int { return p.Offset }

func (p StringPoint) IsEmpty() bool { return p.Rest == "" }

// To returns the substring strictly between p and a later point derived
// from the same input, recovering the exact text a multi-step parse
// matched. Undefined for points over different inputs.
func (p StringPoint) To(other StringPoint) string {
	return p.Rest[:other.Offset-p.Offset]
}

// Fail reports a failure without moving the point.
func (p StringPoint) Fail() Progress[StringPoint, string, NoMatch] {
	return FailureAt[string](p, NoMatch{})
}

// Success consumes n bytes, returning them as the matched value. The
// caller must have validated n.
func (p StringPoint) Success(n int) Progress[StringPoint, string, NoMatch] {
	matched := p.Rest[:n]
	next := StringPoint{Offset: p.Offset + n, Rest: p.Rest[n:]}
	return SuccessAt[NoMatch](next, matched)
}

// ConsumeTo advances the point by n bytes. ok == false means no value
// could be consumed, and the result is a failure at the current position.
func (p StringPoint) ConsumeTo(n int, ok bool) Progress[StringPoint, string, NoMatch] {
	if !ok {
		return p.Fail()
	}
	return p.Success(n)
}

// ConsumeLiteral advances the point iff the input starts with the
// literal.
func (p StringPoint) ConsumeLiteral(lit string) Progress[StringPoint, string, NoMatch] {
	if strings.HasPrefix(p.Rest, lit) {
		return p.Success(len(lit))
	}
	return p.Fail()
}

// ConsumeIdentifier tries each identifier in order and advances the
// point on the first whose literal prefixes the input, returning its
// value. First match wins, not longest match: an early short literal
// shadows a later, longer one, so callers must order their lists
// accordingly.
func ConsumeIdentifier[T any](p StringPoint, identifiers []Identifier[T]) Progress[StringPoint, T, NoMatch] {
	for _, id := range identifiers {
		if strings.HasPrefix(p.Rest, id.Literal) {
			r := p.Success(len(id.Literal))
			return SuccessAt[NoMatch](r.Point, id.Value)
		}
	}
	return FailureAt[T](p, NoMatch{})
}
