package gutil

import (
	"fmt"

	"github.com/jlanguell/gutil/endian"
	"github.com/jlanguell/gutil/errs"
)

// Field widths written by the Append functions.
const (
	Int16Size = 2
	Int32Size = 4
)

var network = endian.GetBigEndianEngine()

// AppendInt16 writes v big-endian into buf at cursor and returns the cursor
// advanced by Int16Size.
//
// buf is caller-allocated and is never grown. A cursor that is negative or
// leaves fewer than Int16Size bytes panics with an error wrapping
// errs.ErrNegativeCursor or errs.ErrBufferOverflow; nothing is written in
// that case.
//
// Example:
//
//	buf := make([]byte, 6)
//	cur := gutil.AppendInt32(buf, 0, 0x12345678)
//	cur = gutil.AppendInt16(buf, cur, 0x1A2B)
//	// buf == [0x12 0x34 0x56 0x78 0x1A 0x2B], cur == 6
func AppendInt16(buf []byte, cursor int, v int16) int {
	checkSpace(buf, cursor, Int16Size)
	network.PutUint16(buf[cursor:], uint16(v))

	return cursor + Int16Size
}

// AppendInt32 writes v big-endian into buf at cursor and returns the cursor
// advanced by Int32Size. Bounds are enforced as in AppendInt16.
func AppendInt32(buf []byte, cursor int, v int32) int {
	checkSpace(buf, cursor, Int32Size)
	network.PutUint32(buf[cursor:], uint32(v))

	return cursor + Int32Size
}

// AppendFloat16 stores v as the fixed-point value int16(v*scale), truncated
// toward zero, and returns the advanced cursor.
//
// v*scale must fit in an int16; out-of-range products give an
// implementation-defined integer. Precision lost to truncation is expected.
func AppendFloat16(buf []byte, cursor int, v, scale float32) int {
	return AppendInt16(buf, cursor, int16(v*scale))
}

// AppendFloat32 stores v as the fixed-point value int32(v*scale), truncated
// toward zero, and returns the advanced cursor.
func AppendFloat32(buf []byte, cursor int, v, scale float32) int {
	return AppendInt32(buf, cursor, int32(v*scale))
}

// ReadInt16 decodes a big-endian int16 at cursor and returns it with the
// advanced cursor. Short buffers panic with errs.ErrBufferUnderflow.
func ReadInt16(buf []byte, cursor int) (int16, int) {
	checkAvailable(buf, cursor, Int16Size)

	return int16(network.Uint16(buf[cursor:])), cursor + Int16Size
}

// ReadInt32 decodes a big-endian int32 at cursor and returns it with the
// advanced cursor.
func ReadInt32(buf []byte, cursor int) (int32, int) {
	checkAvailable(buf, cursor, Int32Size)

	return int32(network.Uint32(buf[cursor:])), cursor + Int32Size
}

// ReadFloat16 reverses AppendFloat16: it reads the fixed-point int16 and
// divides it by scale.
func ReadFloat16(buf []byte, cursor int, scale float32) (float32, int) {
	raw, next := ReadInt16(buf, cursor)
	return float32(raw) / scale, next
}

// ReadFloat32 reverses AppendFloat32.
func ReadFloat32(buf []byte, cursor int, scale float32) (float32, int) {
	raw, next := ReadInt32(buf, cursor)
	return float32(raw) / scale, next
}

func checkSpace(buf []byte, cursor, width int) {
	if cursor < 0 {
		panic(fmt.Errorf("%w: %d", errs.ErrNegativeCursor, cursor))
	}
	if len(buf)-cursor < width {
		panic(fmt.Errorf("%w: writing %d bytes at cursor %d of %d-byte buffer",
			errs.ErrBufferOverflow, width, cursor, len(buf)))
	}
}

func checkAvailable(buf []byte, cursor, width int) {
	if cursor < 0 {
		panic(fmt.Errorf("%w: %d", errs.ErrNegativeCursor, cursor))
	}
	if len(buf)-cursor < width {
		panic(fmt.Errorf("%w: reading %d bytes at cursor %d of %d-byte buffer",
			errs.ErrBufferUnderflow, width, cursor, len(buf)))
	}
}
