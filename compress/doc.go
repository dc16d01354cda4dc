// Package compress provides the codecs applied to encoded column sections of a blob.
//
// Compression is the second stage of writing a blob. Columns are first encoded
// (raw, delta or Gorilla, see the encoding package), then each encoded section is
// compressed on its own with the codec selected in the blob header:
//
//   - None: sections are stored as encoded
//   - Zstd: best ratio, slower; pure Go by default, cgo (valyala/gozstd) with the gozstd build tag
//   - S2: fast with a reasonable ratio
//   - LZ4: fastest decompression
//
// Typical use:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(section)
//	...
//	section, err = codec.Decompress(packed)
//
// All codecs in this package are stateless values and safe for concurrent use.
// Empty input compresses to empty output for every codec.
package compress
