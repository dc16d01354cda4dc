// Package blob stores a column.Encoding as a single self-describing byte slice.
//
// A blob is a section.Header followed by the float, int and bool sections. Each
// section is written with a codec from the encoding package and compressed with the
// codec selected for the blob:
//
//	enc, err := blob.NewEncoder(
//		blob.WithFloatEncoding(format.TypeGorilla),
//		blob.WithIntEncoding(format.TypeDelta),
//		blob.WithCompression(format.CompressionZstd),
//		blob.WithChecksum(true),
//	)
//	if err != nil {
//		return err
//	}
//
//	data, err := enc.Encode(columns)
//
// Decoding needs no options; everything is read from the header:
//
//	columns, err := blob.NewDecoder().Decode(data)
//
// Encoders and decoders hold no per-call state and are safe for concurrent use.
package blob
