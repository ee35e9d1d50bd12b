// Package compress provides the codecs used to store gutil frame payloads.
//
// A frame payload is a run of big- or little-endian fixed-width fields, so
// it tends to repeat: scaled sensor samples, counters and ids compress well.
// The codec is picked per frame with format.CompressionType:
//
//   - CompressionNone: payload stored as-is
//   - CompressionZstd: best ratio; pure Go (klauspost/compress) by default,
//     cgo libzstd (valyala/gozstd) when built with -tags gozstd
//   - CompressionS2: Snappy-compatible, fast on both sides
//   - CompressionLZ4: block format, fastest decompression
//
// Usage:
//
//	codec, err := compress.CreateCodec(format.CompressionS2, "frame")
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(stored)
//
// All codecs in this package are stateless values and safe for concurrent use.
package compress
