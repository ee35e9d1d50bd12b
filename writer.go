package gutil

import (
	"github.com/jlanguell/gutil/endian"
	"github.com/jlanguell/gutil/internal/options"
)

// cursorConfig carries the settings shared by Writer and Reader.
type cursorConfig struct {
	engine endian.EndianEngine
}

// CursorOption configures a Writer or a Reader.
type CursorOption = options.Option[*cursorConfig]

// WithBigEndian selects network byte order. This is the default.
func WithBigEndian() CursorOption {
	return options.NoError(func(c *cursorConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithLittleEndian selects little-endian byte order.
func WithLittleEndian() CursorOption {
	return options.NoError(func(c *cursorConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

func newCursorConfig(opts []CursorOption) cursorConfig {
	cfg := cursorConfig{engine: endian.Default()}
	// Cursor options cannot fail.
	_ = options.Apply(&cfg, opts...)

	return cfg
}

// Writer owns a caller-allocated buffer and the cursor into it.
//
// Each write lands at the cursor and advances it by the field width. The
// buffer never grows: writing past its end panics with an error wrapping
// errs.ErrBufferOverflow, exactly like AppendInt16. Use Frame when the final
// size is not known up front.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
}

// NewWriter returns a Writer positioned at the start of buf.
func NewWriter(buf []byte, opts ...CursorOption) *Writer {
	cfg := newCursorConfig(opts)

	return &Writer{buf: buf, engine: cfg.engine}
}

// Int16 writes v and advances the cursor by Int16Size.
func (w *Writer) Int16(v int16) {
	checkSpace(w.buf, w.off, Int16Size)
	w.engine.PutUint16(w.buf[w.off:], uint16(v))
	w.off += Int16Size
}

// Int32 writes v and advances the cursor by Int32Size.
func (w *Writer) Int32(v int32) {
	checkSpace(w.buf, w.off, Int32Size)
	w.engine.PutUint32(w.buf[w.off:], uint32(v))
	w.off += Int32Size
}

// Float16 writes int16(v*scale).
func (w *Writer) Float16(v, scale float32) {
	w.Int16(int16(v * scale))
}

// Float32 writes int32(v*scale).
func (w *Writer) Float32(v, scale float32) {
	w.Int32(int32(v * scale))
}

// Offset returns the cursor.
func (w *Writer) Offset() int {
	return w.off
}

// Remaining returns the number of bytes left after the cursor.
func (w *Writer) Remaining() int {
	return len(w.buf) - w.off
}

// Bytes returns the written prefix of the buffer.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.off]
}

// Reset rewinds the cursor to the start of the buffer.
func (w *Writer) Reset() {
	w.off = 0
}

// Reader decodes fixed-width fields from a buffer, advancing a cursor.
//
// Reading past the end panics with an error wrapping errs.ErrBufferUnderflow.
// A Reader is not safe for concurrent use.
type Reader struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte, opts ...CursorOption) *Reader {
	cfg := newCursorConfig(opts)

	return &Reader{buf: buf, engine: cfg.engine}
}

// Int16 reads the next int16.
func (r *Reader) Int16() int16 {
	checkAvailable(r.buf, r.off, Int16Size)
	v := int16(r.engine.Uint16(r.buf[r.off:]))
	r.off += Int16Size

	return v
}

// Int32 reads the next int32.
func (r *Reader) Int32() int32 {
	checkAvailable(r.buf, r.off, Int32Size)
	v := int32(r.engine.Uint32(r.buf[r.off:]))
	r.off += Int32Size

	return v
}

// Float16 reads a fixed-point int16 and divides it by scale.
func (r *Reader) Float16(scale float32) float32 {
	return float32(r.Int16()) / scale
}

// Float32 reads a fixed-point int32 and divides it by scale.
func (r *Reader) Float32(scale float32) float32 {
	return float32(r.Int32()) / scale
}

// Offset returns the cursor.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Empty reports whether every byte has been consumed.
func (r *Reader) Empty() bool {
	return r.off >= len(r.buf)
}

// Bytes returns the whole underlying buffer.
func (r *Reader) Bytes() []byte {
	return r.buf
}
