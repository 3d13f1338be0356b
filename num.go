package peresil

import (
	"encoding/binary"
	"math"
	"math/big"
)

// Fixed-width numeric decoders for BytePoint, each in little- and
// big-endian variants. Every decoder is Consume(width) plus a
// reinterpretation of the consumed bytes: it fails without moving the
// point iff fewer bytes remain than the width requires.

// Uint128 is a 128-bit unsigned integer as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

func (v Uint128) String() string {
	n := new(big.Int).SetUint64(v.Hi)
	n.Lsh(n, 64)
	return n.Add(n, new(big.Int).SetUint64(v.Lo)).String()
}

// Int128 is a 128-bit two's-complement integer: Hi carries the sign, Lo
// the unsigned low half.
type Int128 struct {
	Hi int64
	Lo uint64
}

func (v Int128) String() string {
	n := big.NewInt(v.Hi)
	n.Lsh(n, 64)
	return n.Add(n, new(big.Int).SetUint64(v.Lo)).String()
}

// U8LE parses a uint8. Byte order is irrelevant at width 1; both
// variants exist so every width has the same pair of entry points.
func (p BytePoint) U8LE() Progress[BytePoint, uint8, NoMatch] {
	return Map(p.Consume(1), func(b []byte) uint8 { return b[0] })
}

// U8BE parses a uint8.
func (p BytePoint) U8BE() Progress[BytePoint, uint8, NoMatch] {
	return Map(p.Consume(1), func(b []byte) uint8 { return b[0] })
}

// U16LE parses a uint16 in little-endian encoding.
func (p BytePoint) U16LE() Progress[BytePoint, uint16, NoMatch] {
	return Map(p.Consume(2), binary.LittleEndian.Uint16)
}

// U16BE parses a uint16 in big-endian encoding.
func (p BytePoint) U16BE() Progress[BytePoint, uint16, NoMatch] {
	return Map(p.Consume(2), binary.BigEndian.Uint16)
}

// U32LE parses a uint32 in little-endian encoding.
func (p BytePoint) U32LE() Progress[BytePoint, uint32, NoMatch] {
	return Map(p.Consume(4), binary.LittleEndian.Uint32)
}

// U32BE parses a uint32 in big-endian encoding.
func (p BytePoint) U32BE() Progress[BytePoint, uint32, NoMatch] {
	return Map(p.Consume(4), binary.BigEndian.Uint32)
}

// U64LE parses a uint64 in little-endian encoding.
func (p BytePoint) U64LE() Progress[BytePoint, uint64, NoMatch] {
	return Map(p.Consume(8), binary.LittleEndian.Uint64)
}

// U64BE parses a uint64 in big-endian encoding.
func (p BytePoint) U64BE() Progress[BytePoint, uint64, NoMatch] {
	return Map(p.Consume(8), binary.BigEndian.Uint64)
}

// U128LE parses a Uint128 in little-endian encoding.
func (p BytePoint) U128LE() Progress[BytePoint, Uint128, NoMatch] {
	return Map(p.Consume(16), func(b []byte) Uint128 {
		return Uint128{
			Lo: binary.LittleEndian.Uint64(b[:8]),
			Hi: binary.LittleEndian.Uint64(b[8:]),
		}
	})
}

// U128BE parses a Uint128 in big-endian encoding.
func (p BytePoint) U128BE() Progress[BytePoint, Uint128, NoMatch] {
	return Map(p.Consume(16), func(b []byte) Uint128 {
		return Uint128{
			Hi: binary.BigEndian.Uint64(b[:8]),
			Lo: binary.BigEndian.Uint64(b[8:]),
		}
	})
}

// I8LE parses an int8.
func (p BytePoint) I8LE() Progress[BytePoint, int8, NoMatch] {
	return Map(p.Consume(1), func(b []byte) int8 { return int8(b[0]) })
}

// I8BE parses an int8.
func (p BytePoint) I8BE() Progress[BytePoint, int8, NoMatch] {
	return Map(p.Consume(1), func(b []byte) int8 { return int8(b[0]) })
}

// I16LE parses an int16 in little-endian encoding.
func (p BytePoint) I16LE() Progress[BytePoint, int16, NoMatch] {
	return Map(p.Consume(2), func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) })
}

// I16BE parses an int16 in big-endian encoding.
func (p BytePoint) I16BE() Progress[BytePoint, int16, NoMatch] {
	return Map(p.Consume(2), func(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) })
}

// I32LE parses an int32 in little-endian encoding.
func (p BytePoint) I32LE() Progress[BytePoint, int32, NoMatch] {
	return Map(p.Consume(4), func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) })
}

// I32BE parses an int32 in big-endian encoding.
func (p BytePoint) I32BE() Progress[BytePoint, int32, NoMatch] {
	return Map(p.Consume(4), func(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) })
}

// I64LE parses an int64 in little-endian encoding.
func (p BytePoint) I64LE() Progress[BytePoint, int64, NoMatch] {
	return Map(p.Consume(8), func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) })
}

// I64BE parses an int64 in big-endian encoding.
func (p BytePoint) I64BE() Progress[BytePoint, int64, NoMatch] {
	return Map(p.Consume(8), func(b []byte) int64 { return int64(binary.BigEndian.Uint64(b)) })
}

// I128LE parses an Int128 in little-endian encoding.
func (p BytePoint) I128LE() Progress[BytePoint, Int128, NoMatch] {
	return Map(p.Consume(16), func(b []byte) Int128 {
		return Int128{
			Lo: binary.LittleEndian.Uint64(b[:8]),
			Hi: int64(binary.LittleEndian.Uint64(b[8:])),
		}
	})
}

// I128BE parses an Int128 in big-endian encoding.
func (p BytePoint) I128BE() Progress[BytePoint, Int128, NoMatch] {
	return Map(p.Consume(16), func(b []byte) Int128 {
		return Int128{
			Hi: int64(binary.BigEndian.Uint64(b[:8])),
			Lo: binary.BigEndian.Uint64(b[8:]),
		}
	})
}

// F32LE parses a float32 in little-endian encoding.
func (p BytePoint) F32LE() Progress[BytePoint, float32, NoMatch] {
	return Map(p.Consume(4), func(b []byte) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	})
}

// F32BE parses a float32 in big-endian encoding.
func (p BytePoint) F32BE() Progress[BytePoint, float32, NoMatch] {
	return Map(p.Consume(4), func(b []byte) float32 {
		return math.Float32frombits(binary.BigEndian.Uint32(b))
	})
}

// F64LE parses a float64 in little-endian encoding.
func (p BytePoint) F64LE() Progress[BytePoint, float64, NoMatch] {
	return Map(p.Consume(8), func(b []byte) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	})
}

// F64BE parses a float64 in big-endian encoding.
func (p BytePoint) F64BE() Progress[BytePoint, float64, NoMatch] {
	return Map(p.Consume(8), func(b []byte) float64 {
		return math.Float64frombits(binary.BigEndian.Uint64(b))
	})
}
