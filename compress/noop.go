package compress

// NoOpCompressor stores sections unchanged.
//
// Both directions return the input slice itself, without copying.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) > limit {
		return nil, limitError(len(data), limit)
	}

	return data, nil
}
