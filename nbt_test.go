package nbt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arloliu/nbt/compress"
	"github.com/arloliu/nbt/decoder"
	"github.com/arloliu/nbt/edition"
	"github.com/arloliu/nbt/errs"
	"github.com/arloliu/nbt/format"
	"github.com/arloliu/nbt/internal/wiretest"
	"github.com/arloliu/nbt/payload"
	"github.com/stretchr/testify/require"
)

func playerRoot() payload.NamedTag {
	return payload.NamedTag{
		Name: "",
		Payload: payload.Compound{
			"Health":    payload.Float(20),
			"XpLevel":   payload.Int(30),
			"UUID":      payload.IntArray{1, 2, 3, 4},
			"Pos":       payload.DoubleList{0.5, 64, -12.5},
			"Inventory": payload.CompoundList{{"id": payload.String("minecraft:torch"), "Count": payload.Byte(16)}},
		},
	}
}

func TestDecodeWrappers(t *testing.T) {
	root := playerRoot()

	tests := []struct {
		name   string
		ed     edition.Edition
		decode func([]byte, ...decoder.Option) (payload.NamedTag, error)
	}{
		{"Java", edition.Java, DecodeJava},
		{"Bedrock", edition.Bedrock, DecodeBedrock},
		{"BedrockNetwork", edition.BedrockNetwork, DecodeBedrockNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := wiretest.Encode(tt.ed, root)

			got, err := tt.decode(data)
			require.NoError(t, err)
			require.Equal(t, root, got)

			got, err = Decode(data, tt.ed)
			require.NoError(t, err)
			require.Equal(t, root, got)
		})
	}
}

func TestDecodeJavaNetwork(t *testing.T) {
	data := wiretest.NewWriter(edition.JavaNetwork).
		Tag(format.TagCompound).
		Payload(playerRoot().Payload).
		Bytes()

	got, err := DecodeJavaNetwork(data)
	require.NoError(t, err)
	require.Equal(t, playerRoot(), got)
}

func TestDecode_InvalidOption(t *testing.T) {
	_, err := DecodeJava([]byte{0x01, 0x00, 0x00, 0x05}, decoder.WithMaxDepth(0))
	require.ErrorIs(t, err, errs.ErrInvalidMaxDepth)
}

func TestDecode_Strict(t *testing.T) {
	data := append(wiretest.Encode(edition.Java, playerRoot()), 0x00)

	_, err := DecodeJava(data)
	require.NoError(t, err)

	_, err = DecodeJava(data, decoder.WithTrailingData(false))
	require.ErrorIs(t, err, errs.ErrTrailingData)
}

func TestDecodeCompressed(t *testing.T) {
	root := playerRoot()
	raw := wiretest.Encode(edition.Java, root)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionZstd,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.CreateCodec(ct)
			require.NoError(t, err)
			data, err := codec.Compress(raw)
			require.NoError(t, err)

			got, err := DecodeCompressed(data, edition.Java)
			require.NoError(t, err)
			require.Equal(t, root, got)

			got, err = DecodeReader(bytes.NewReader(data), edition.Java)
			require.NoError(t, err)
			require.Equal(t, root, got)
		})
	}
}

func TestDecodeCompressed_Corrupt(t *testing.T) {
	_, err := DecodeCompressed([]byte{0x1F, 0x8B, 0x00, 0x00}, edition.Java)
	require.Error(t, err)

	_, err = DecodeReader(bytes.NewReader([]byte{0x0A, 0x00}), edition.Java)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDecodeReader_ReadError(t *testing.T) {
	_, err := DecodeReader(failingReader{}, edition.Bedrock)
	require.ErrorContains(t, err, "disk on fire")
}
