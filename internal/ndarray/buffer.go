package ndarray

import (
	"fmt"
	"unsafe"
)

// buffer is the storage payload of one independent array: a contiguous,
// fixed-length run of cells of a single element kind. Buffers are never
// resized; every view that references a buffer shares it for both reads and
// writes, and the Go garbage collector reclaims it once the last view is
// dropped. Aliasing is observable: two views alias iff they hold the same
// *buffer.
type buffer struct {
	data  []byte
	dtype DType
	n     int
}

// newBuffer allocates a zero-initialized buffer of n elements.
func newBuffer(n int, dtype DType) *buffer {
	return &buffer{
		data:  make([]byte, n*dtype.Size()),
		dtype: dtype,
		n:     n,
	}
}

// asInt8 interprets the data as []int8.
func (b *buffer) asInt8() []int8 {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(&b.data[0])), b.n)
}

// asInt16 interprets the data as []int16.
func (b *buffer) asInt16() []int16 {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(&b.data[0])), b.n)
}

// asInt32 interprets the data as []int32.
func (b *buffer) asInt32() []int32 {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&b.data[0])), b.n)
}

// asUint8 interprets the data as []uint8.
func (b *buffer) asUint8() []uint8 {
	return b.data
}

// asUint16 interprets the data as []uint16.
func (b *buffer) asUint16() []uint16 {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b.data[0])), b.n)
}

// asUint32 interprets the data as []uint32.
func (b *buffer) asUint32() []uint32 {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&b.data[0])), b.n)
}

// asFloat32 interprets the data as []float32.
func (b *buffer) asFloat32() []float32 {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.data[0])), b.n)
}

// asFloat64 interprets the data as []float64.
func (b *buffer) asFloat64() []float64 {
	if b.n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b.data[0])), b.n)
}

// load reads cell i as a float64, the universal scalar interchange value.
// This is the single dispatch point closing the tagged union of kinds.
func (b *buffer) load(i int) float64 {
	switch b.dtype {
	case Int8:
		return float64(b.asInt8()[i])
	case Int16:
		return float64(b.asInt16()[i])
	case Int32:
		return float64(b.asInt32()[i])
	case Uint8:
		return float64(b.asUint8()[i])
	case Uint16:
		return float64(b.asUint16()[i])
	case Uint32:
		return float64(b.asUint32()[i])
	case Float32:
		return float64(b.asFloat32()[i])
	case Float64:
		return b.asFloat64()[i]
	default:
		panic(fmt.Sprintf("load: unknown dtype %d", b.dtype))
	}
}

// store writes v into cell i, converting to the buffer's kind. Integer kinds
// truncate toward zero. Callers must have validated finiteness and range
// beforehand; store itself does not fail.
func (b *buffer) store(i int, v float64) {
	switch b.dtype {
	case Int8:
		b.asInt8()[i] = int8(v)
	case Int16:
		b.asInt16()[i] = int16(v)
	case Int32:
		b.asInt32()[i] = int32(v)
	case Uint8:
		b.asUint8()[i] = uint8(v)
	case Uint16:
		b.asUint16()[i] = uint16(v)
	case Uint32:
		b.asUint32()[i] = uint32(v)
	case Float32:
		b.asFloat32()[i] = float32(v)
	case Float64:
		b.asFloat64()[i] = v
	default:
		panic(fmt.Sprintf("store: unknown dtype %d", b.dtype))
	}
}
