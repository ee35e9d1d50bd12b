package gutil

import (
	"fmt"

	"github.com/jlanguell/gutil/compress"
	"github.com/jlanguell/gutil/endian"
	"github.com/jlanguell/gutil/errs"
	"github.com/jlanguell/gutil/format"
	"github.com/jlanguell/gutil/internal/hash"
	"github.com/jlanguell/gutil/internal/options"
	"github.com/jlanguell/gutil/internal/pool"
)

// Frame layout. Header integers are always big-endian; the flag byte records
// the byte order of the payload fields.
//
//	offset  size  field
//	0       2     magic "GU"
//	2       1     flags
//	3       1     compression (format.CompressionType)
//	4       4     raw payload length
//	8       4     stored payload length
//	12      8     xxHash64 of the raw payload (only with frameFlagChecksum)
//	12|20   n     stored payload
const (
	frameMagic0       = 'G'
	frameMagic1       = 'U'
	frameHeaderSize   = 12
	frameChecksumSize = 8

	frameFlagChecksum     = 1 << 0
	frameFlagLittleEndian = 1 << 1
)

// Frame accumulates fixed-width fields in a pooled, growable buffer and
// seals them into a self-describing byte slice.
//
// Unlike Writer, a Frame never runs out of room. Finish optionally
// compresses the payload and stamps an xxHash64 checksum; OpenFrame
// verifies both and hands back a Reader over the fields as written.
//
// A Frame is single-use and not safe for concurrent use. Writing to a
// finished Frame panics with an error wrapping errs.ErrFrameFinished.
type Frame struct {
	buf         *pool.ByteBuffer
	engine      endian.EndianEngine
	compression format.CompressionType
	checksum    bool
}

// FrameOption configures a Frame.
type FrameOption = options.Option[*Frame]

// WithFrameCompression selects the payload codec. The default is
// format.CompressionNone.
func WithFrameCompression(c format.CompressionType) FrameOption {
	return options.New(func(f *Frame) error {
		if !c.Valid() {
			return fmt.Errorf("%w: frame compression 0x%02x", errs.ErrInvalidCompression, uint8(c))
		}
		f.compression = c

		return nil
	})
}

// WithFrameChecksum enables or disables the payload checksum. Enabled by default.
func WithFrameChecksum(enabled bool) FrameOption {
	return options.NoError(func(f *Frame) {
		f.checksum = enabled
	})
}

// WithFrameBigEndian writes payload fields in network order (the default).
func WithFrameBigEndian() FrameOption {
	return options.NoError(func(f *Frame) {
		f.engine = endian.GetBigEndianEngine()
	})
}

// WithFrameLittleEndian writes payload fields little-endian.
func WithFrameLittleEndian() FrameOption {
	return options.NoError(func(f *Frame) {
		f.engine = endian.GetLittleEndianEngine()
	})
}

// NewFrame creates an empty Frame.
//
// Parameters:
//   - opts: compression, checksum and byte order options
//
// Returns:
//   - *Frame: the frame, ready for writes
//   - error: an error wrapping errs.ErrInvalidCompression for an unknown codec
//
// Example:
//
//	f, err := gutil.NewFrame(gutil.WithFrameCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//	f.Int32(seq)
//	f.Float16(heading, 1000)
//	data, err := f.Finish()
func NewFrame(opts ...FrameOption) (*Frame, error) {
	f := &Frame{
		engine:      endian.Default(),
		compression: format.CompressionNone,
		checksum:    true,
	}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}
	f.buf = pool.GetFrameBuffer()

	return f, nil
}

// Int16 appends v.
func (f *Frame) Int16(v int16) {
	f.mustBeOpen()
	f.buf.Grow(Int16Size)
	f.buf.B = f.engine.AppendUint16(f.buf.B, uint16(v))
}

// Int32 appends v.
func (f *Frame) Int32(v int32) {
	f.mustBeOpen()
	f.buf.Grow(Int32Size)
	f.buf.B = f.engine.AppendUint32(f.buf.B, uint32(v))
}

// Float16 appends int16(v*scale).
func (f *Frame) Float16(v, scale float32) {
	f.Int16(int16(v * scale))
}

// Float32 appends int32(v*scale).
func (f *Frame) Float32(v, scale float32) {
	f.Int32(int32(v * scale))
}

// Len returns the raw payload size written so far.
func (f *Frame) Len() int {
	f.mustBeOpen()
	return f.buf.Len()
}

// Finish seals the frame and releases its buffer back to the pool.
//
// The returned slice is newly allocated and owned by the caller. After
// Finish the Frame must not be used again, even if Finish failed.
func (f *Frame) Finish() ([]byte, error) {
	f.mustBeOpen()
	defer func() {
		pool.PutFrameBuffer(f.buf)
		f.buf = nil
	}()

	codec, err := compress.CreateCodec(f.compression, "frame")
	if err != nil {
		return nil, err
	}

	raw := f.buf.Bytes()
	stored, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress frame payload: %w", err)
	}

	size := frameHeaderSize + len(stored)
	var flags byte
	if f.checksum {
		flags |= frameFlagChecksum
		size += frameChecksumSize
	}
	if endian.IsLittleEndian(f.engine) {
		flags |= frameFlagLittleEndian
	}

	out := make([]byte, 0, size)
	out = append(out, frameMagic0, frameMagic1, flags, byte(f.compression))
	out = network.AppendUint32(out, uint32(len(raw)))
	out = network.AppendUint32(out, uint32(len(stored)))
	if f.checksum {
		out = network.AppendUint64(out, hash.Checksum(raw))
	}
	out = append(out, stored...)

	return out, nil
}

func (f *Frame) mustBeOpen() {
	if f.buf == nil {
		panic(errs.ErrFrameFinished)
	}
}

// OpenFrame validates a frame produced by Frame.Finish and returns a Reader
// over its decompressed payload, configured with the frame's byte order.
//
// Errors wrap one of errs.ErrFrameTooShort, errs.ErrInvalidFrameMagic,
// errs.ErrInvalidCompression, errs.ErrPayloadTooLarge,
// errs.ErrFrameLengthMismatch or errs.ErrChecksumMismatch, or carry the
// codec's decompression error.
func OpenFrame(data []byte) (*Reader, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrFrameTooShort, len(data))
	}
	if data[0] != frameMagic0 || data[1] != frameMagic1 {
		return nil, fmt.Errorf("%w: 0x%02x%02x", errs.ErrInvalidFrameMagic, data[0], data[1])
	}

	flags := data[2]
	codec, err := compress.CreateCodec(format.CompressionType(data[3]), "frame")
	if err != nil {
		return nil, err
	}

	rawLen := network.Uint32(data[4:8])
	storedLen := network.Uint32(data[8:12])
	if uint64(rawLen) > compress.MaxDecodedSize {
		return nil, fmt.Errorf("%w: header says %d payload bytes", errs.ErrPayloadTooLarge, rawLen)
	}
	off := frameHeaderSize

	var sum uint64
	if flags&frameFlagChecksum != 0 {
		if len(data) < off+frameChecksumSize {
			return nil, fmt.Errorf("%w: missing checksum", errs.ErrFrameTooShort)
		}
		sum = network.Uint64(data[off:])
		off += frameChecksumSize
	}

	if uint64(len(data)-off) != uint64(storedLen) {
		return nil, fmt.Errorf("%w: header says %d stored bytes, frame has %d",
			errs.ErrFrameLengthMismatch, storedLen, len(data)-off)
	}

	raw, err := codec.Decompress(data[off:])
	if err != nil {
		return nil, fmt.Errorf("decompress frame payload: %w", err)
	}
	if uint64(len(raw)) != uint64(rawLen) {
		return nil, fmt.Errorf("%w: header says %d payload bytes, decoded %d",
			errs.ErrFrameLengthMismatch, rawLen, len(raw))
	}
	if flags&frameFlagChecksum != 0 && !hash.Verify(raw, sum) {
		return nil, errs.ErrChecksumMismatch
	}

	engine := endian.GetBigEndianEngine()
	if flags&frameFlagLittleEndian != 0 {
		engine = endian.GetLittleEndianEngine()
	}

	return &Reader{buf: raw, engine: engine}, nil
}
