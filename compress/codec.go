package compress

import (
	"fmt"

	"github.com/jlanguell/gutil/errs"
	"github.com/jlanguell/gutil/format"
)

// MaxDecodedSize bounds every Decompress result, so a small hostile input
// cannot force a huge allocation. Larger payloads fail with an error
// wrapping errs.ErrPayloadTooLarge.
const MaxDecodedSize = 64 * 1024 * 1024

// Compressor compresses a complete frame payload.
//
// The returned slice is owned by the caller; data is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupt input or input from a different algorithm yields an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec for compressionType.
//
// target names the caller's use in the error message, e.g. "frame".
// Unknown types yield an error wrapping errs.ErrInvalidCompression.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression 0x%02x", errs.ErrInvalidCompression, target, uint8(compressionType))
	}
}
