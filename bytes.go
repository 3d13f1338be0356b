package peresil

import "bytes"

// BytePoint tracks the location of parsing in a byte slice. It mirrors
// SlicePoint but is its own concrete type so the fixed-width numeric
// decoders can hang off it as methods. The zero value is a point at
// offset 0 with no remaining input.
type BytePoint struct {
	// Offset is how far into the original input this point is.
	Offset int
	// Rest is the unconsumed portion of the input.
	Rest []byte
}

// NewBytePoint returns a point at the start of b.
func NewBytePoint(b []byte) BytePoint {
	return BytePoint{Rest: b}
}

func (p BytePoint) Pos() int { return p.Offset }

func (p BytePoint) IsEmpty() bool { return len(p.Rest) == 0 }

// AdvanceBy returns a point n bytes further in. The caller must have
// validated that n bytes remain.
func (p BytePoint) AdvanceBy(n int) BytePoint {
	return BytePoint{Offset: p.Offset + n, Rest: p.Rest[n:]}
}

// To returns the bytes strictly between p and a later point derived from
// the same input. Undefined for points over different inputs.
func (p BytePoint) To(other BytePoint) []byte {
	return p.Rest[:other.Offset-p.Offset]
}

// Fail reports a failure without moving the point.
func (p BytePoint) Fail() Progress[BytePoint, []byte, NoMatch] {
	return FailureAt[[]byte](p, NoMatch{})
}

// Success consumes n bytes, returning them as the matched value. The
// caller must have validated n.
func (p BytePoint) Success(n int) Progress[BytePoint, []byte, NoMatch] {
	return SuccessAt[NoMatch](p.AdvanceBy(n), p.Rest[:n])
}

// SuccessOpt is Success for lengths computed by a sub-match that reports
// "no match" as ok == false.
func (p BytePoint) SuccessOpt(n int, ok bool) Progress[BytePoint, []byte, NoMatch] {
	if !ok {
		return p.Fail()
	}
	return p.Success(n)
}

// Consume advances by n iff 0 < n <= len(p.Rest); otherwise it fails at
// the current position without moving.
func (p BytePoint) Consume(n int) Progress[BytePoint, []byte, NoMatch] {
	if n > 0 && n <= len(p.Rest) {
		return p.Success(n)
	}
	return p.Fail()
}

// ConsumeOpt is Consume with an optional length; ok == false fails.
func (p BytePoint) ConsumeOpt(n int, ok bool) Progress[BytePoint, []byte, NoMatch] {
	if !ok {
		return p.Fail()
	}
	return p.Consume(n)
}

// ConsumeTag advances the point iff the input starts with exactly lit,
// consuming its length.
func (p BytePoint) ConsumeTag(lit []byte) Progress[BytePoint, []byte, NoMatch] {
	ok := len(p.Rest) >= len(lit) && bytes.Equal(p.Rest[:len(lit)], lit)
	return p.SuccessOpt(len(lit), ok)
}
