package compress

// ZstdCompressor compresses sections with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits blobs that are written
// once and stored for a long time. The implementation is pure Go
// (klauspost/compress/zstd) unless the module is built with the gozstd tag, which
// switches to the cgo binding of the reference library.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
