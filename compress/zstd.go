package compress

// ZstdCompressor compresses frame payloads with Zstandard.
//
// It gives the best ratio of the bundled codecs and suits frames that are
// archived or sent over slow links. The default build uses the pure Go
// klauspost/compress implementation; building with -tags gozstd (and cgo
// enabled) switches to libzstd through valyala/gozstd. Both produce
// standard zstd frames, so either build can read the other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
