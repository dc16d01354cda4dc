package compress

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestCodecs_RoundTrip(t *testing.T) {
	random := make([]byte, 4096)
	_, err := rand.Read(random)
	require.NoError(t, err)

	inputs := map[string][]byte{
		"single byte":  {0x7F},
		"short":        []byte("abc"),
		"repetitive":   bytes.Repeat([]byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, 512),
		"random":       random,
		"random small": random[:20],
	}

	for _, ct := range allCompressions {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, input := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				packed, err := codec.Compress(input)
				require.NoError(t, err)

				out, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, input, out)
			})
		}
	}
}

func TestCodecs_Empty(t *testing.T) {
	for _, ct := range allCompressions {
		codec, err := CreateCodec(ct, "float")
		require.NoError(t, err)

		packed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, packed)

		out, err := codec.Decompress(packed)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestCodecs_Shrink(t *testing.T) {
	input := bytes.Repeat([]byte{1, 0, 0, 0, 0, 0, 0, 0}, 1024)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(input)
		require.NoError(t, err)
		require.Less(t, len(packed), len(input)/4, "%s should compress repetitive data", ct)
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestCodecs_DecompressLimit(t *testing.T) {
	input := bytes.Repeat([]byte{1, 0, 0, 0, 0, 0, 0, 0}, 512)

	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(input)
			require.NoError(t, err)

			_, err = codec.DecompressLimit(packed, 100)
			require.ErrorIs(t, err, errs.ErrDecompressLimit)

			_, err = codec.DecompressLimit(packed, len(input)-1)
			require.ErrorIs(t, err, errs.ErrDecompressLimit)

			out, err := codec.DecompressLimit(packed, len(input))
			require.NoError(t, err)
			require.Equal(t, input, out)

			out, err = codec.DecompressLimit(nil, 0)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0x9), "int")
	require.ErrorContains(t, err, "invalid int compression")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorContains(t, err, "unsupported compression type")
}
