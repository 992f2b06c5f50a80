// Package ndarray implements the strided array engine: storage buffers,
// zero-copy views, indexing, broadcasting and elementwise kernels.
package ndarray

import "math"

// DType is the runtime element-kind tag of a storage buffer.
// The set of kinds is closed: three signed integer widths, three unsigned
// integer widths and two float widths.
type DType int

// Supported element kinds.
const (
	Int8 DType = iota
	Int16
	Int32
	Uint8
	Uint16
	Uint32
	Float32
	Float64
)

// Size returns the byte size of one element of the kind.
func (dt DType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown dtype")
	}
}

// String returns a human-readable name for the kind.
func (dt DType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the kind is a floating-point kind.
func (dt DType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// valid reports whether dt is one of the eight supported kinds.
func (dt DType) valid() bool {
	return dt >= Int8 && dt <= Float64
}

// bounds returns the representable range of the kind, for range checking
// before a store. Float64 is unbounded here; non-finite values are rejected
// separately.
func (dt DType) bounds() (lo, hi float64) {
	switch dt {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Uint8:
		return 0, math.MaxUint8
	case Uint16:
		return 0, math.MaxUint16
	case Uint32:
		return 0, math.MaxUint32
	case Float32:
		return -math.MaxFloat32, math.MaxFloat32
	case Float64:
		return math.Inf(-1), math.Inf(1)
	default:
		panic("unknown dtype")
	}
}

// promotionRank orders the kinds for binary-operation dtype promotion.
// The lattice is explicit: integer kinds by width with unsigned ranking just
// above signed of the same width, then the float kinds.
func (dt DType) promotionRank() int {
	switch dt {
	case Int8:
		return 0
	case Uint8:
		return 1
	case Int16:
		return 2
	case Uint16:
		return 3
	case Int32:
		return 4
	case Uint32:
		return 5
	case Float32:
		return 6
	case Float64:
		return 7
	default:
		panic("unknown dtype")
	}
}

// Promote returns the result kind of a binary operation between two kinds.
// Equal kinds promote to themselves; otherwise the higher-ranked kind wins.
func Promote(a, b DType) DType {
	if a.promotionRank() >= b.promotionRank() {
		return a
	}
	return b
}
