package blob

import (
	"fmt"

	"github.com/arloliu/encodable/compress"
	"github.com/arloliu/encodable/endian"
	"github.com/arloliu/encodable/format"
	"github.com/arloliu/encodable/internal/options"
	"github.com/arloliu/encodable/section"
)

// EncoderConfig holds the settings of an Encoder. It is configured through
// EncoderOption values.
type EncoderConfig struct {
	header *section.Header
	engine endian.EndianEngine
	codec  compress.Codec
}

func newEncoderConfig() *EncoderConfig {
	header := section.NewHeader()

	return &EncoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}
}

func (c *EncoderConfig) setFloatEncoding(enc format.EncodingType) error {
	switch enc { //nolint:exhaustive
	case format.TypeRaw, format.TypeGorilla:
		c.header.Flag.SetFloatEncoding(enc)
		return nil
	default:
		return fmt.Errorf("invalid float encoding: %v", enc)
	}
}

func (c *EncoderConfig) setIntEncoding(enc format.EncodingType) error {
	switch enc { //nolint:exhaustive
	case format.TypeRaw, format.TypeDelta:
		c.header.Flag.SetIntEncoding(enc)
		return nil
	default:
		return fmt.Errorf("invalid int encoding: %v", enc)
	}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.header.Flag.SetCompression(comp)
		return nil
	default:
		return fmt.Errorf("invalid compression: %v", comp)
	}
}

func (c *EncoderConfig) setEndianness(bigEndian bool) {
	if bigEndian {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}

	c.engine = c.header.Flag.GetEndianEngine()
}

func (c *EncoderConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.Flag.Compression(), "column")
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian writes fixed-width values little-endian. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(false)
	})
}

// WithBigEndian writes fixed-width values big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(true)
	})
}

// WithFloatEncoding selects format.TypeRaw (default) or format.TypeGorilla for the
// float column.
func WithFloatEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setFloatEncoding(enc)
	})
}

// WithIntEncoding selects format.TypeRaw (default) or format.TypeDelta for the int
// column.
func WithIntEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setIntEncoding(enc)
	})
}

// WithCompression sets the compression applied to every section. The default is
// format.CompressionNone.
//
// Parameters:
//   - comp: One of format.CompressionNone, CompressionZstd, CompressionS2 or CompressionLZ4
//
// Returns:
//   - EncoderOption: Option failing NewEncoder for any other value
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithChecksum stores an xxHash64 of the sections in the header when enabled.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetChecksum(enabled)
	})
}
