package compress

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/arloliu/nbt/errs"
	"github.com/arloliu/nbt/format"
	"github.com/klauspost/compress/s2"
	"github.com/stretchr/testify/require"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionGzip,
	format.CompressionZlib,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// sampleDocument returns a repetitive byte pattern resembling a list of compounds.
func sampleDocument(size int) []byte {
	pattern := []byte("\x0a\x00\x00\x08\x00\x02id\x00\x0fminecraft:stone\x01\x00\x05Count\x40\x00")
	data := make([]byte, size)
	for i := range data {
		data[i] = pattern[i%len(pattern)]
	}

	return data
}

func s2Stream(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func withLimit(t *testing.T, limit int) {
	t.Helper()

	prev := maxDecompressedSize
	maxDecompressedSize = limit
	t.Cleanup(func() { maxDecompressedSize = prev })
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)

		d, err := CreateDecompressor(ct)
		require.NoError(t, err)
		require.NotNil(t, d)

		shared, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, shared)
	}

	_, err := CreateCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)

	_, err = GetCodec(format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	sizes := []int{1, 37, 1024, 64 * 1024}

	for _, ct := range allTypes {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			for _, size := range sizes {
				data := sampleDocument(size)

				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				got, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, got, "size %d", size)
			}
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		got, err := codec.Decompress(nil)
		require.NoError(t, err, ct.String())
		require.Empty(t, got)
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	withLimit(t, 64*1024)
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04, 0x05}

	for _, ct := range allTypes {
		if ct == format.CompressionNone {
			continue
		}

		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestAllCodecs_Concurrent(t *testing.T) {
	data := sampleDocument(16 * 1024)

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)

		const workers = 8
		results := make([][]byte, workers)
		failures := make([]error, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], failures[i] = codec.Decompress(compressed)
			}()
		}
		wg.Wait()

		for i := range workers {
			require.NoError(t, failures[i], ct.String())
			require.Equal(t, data, results[i], ct.String())
		}
	}
}

func TestDecompress_TooLarge(t *testing.T) {
	data := make([]byte, 8*1024)
	types := []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	compressed := make(map[format.CompressionType][]byte, len(types))
	for _, ct := range types {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		compressed[ct], err = codec.Compress(data)
		require.NoError(t, err)
	}

	withLimit(t, 1024)

	for _, ct := range types {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(compressed[ct])
		require.ErrorIs(t, err, errs.ErrDecompressedTooLarge, ct.String())
	}

	_, err := NewReader(bytes.NewReader(compressed[format.CompressionLZ4]), format.CompressionLZ4)
	require.ErrorIs(t, err, errs.ErrDecompressedTooLarge)
}

func TestNewReader_TooLarge(t *testing.T) {
	big := sampleDocument(64 * 1024)
	exact := sampleDocument(1024)

	streams := make(map[format.CompressionType][2][]byte)
	for _, ct := range []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionZstd,
	} {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		over, err := codec.Compress(big)
		require.NoError(t, err)
		fits, err := codec.Compress(exact)
		require.NoError(t, err)
		streams[ct] = [2][]byte{over, fits}
	}
	streams[format.CompressionS2] = [2][]byte{s2Stream(t, big), s2Stream(t, exact)}

	withLimit(t, 1024)

	for ct, pair := range streams {
		t.Run(ct.String(), func(t *testing.T) {
			r, err := NewReader(bytes.NewReader(pair[0]), ct)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.ErrorIs(t, err, errs.ErrDecompressedTooLarge)
			require.LessOrEqual(t, len(got), 1024)
			_ = r.Close()

			r, err = NewReader(bytes.NewReader(pair[1]), ct)
			require.NoError(t, err)
			got, err = io.ReadAll(r)
			require.NoError(t, err, "output of exactly the limit is allowed")
			require.Equal(t, exact, got)
			require.NoError(t, r.Close())
		})
	}
}

func TestNewReader_S2BlockIsNotAStream(t *testing.T) {
	block, err := NewS2Compressor().Compress(sampleDocument(4096))
	require.NoError(t, err)

	r, err := NewReader(bytes.NewReader(block), format.CompressionS2)
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	data := sampleDocument(512)

	for _, ct := range []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZlib,
		format.CompressionZstd,
	} {
		codec, err := CreateCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Equal(t, ct, Detect(compressed))

		got, err := Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, data, got)
	}

	// Raw NBT starts with a tag discriminant.
	for tag := range byte(13) {
		require.Equal(t, format.CompressionNone, Detect([]byte{tag, 0x00, 0x00}))
	}
	require.Equal(t, format.CompressionNone, Detect(nil))
	require.Equal(t, format.CompressionNone, Detect([]byte{0x1F}))
	require.Equal(t, format.CompressionNone, Detect([]byte{0x78, 0x00}))

	got, err := Decompress(data)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestNewReader(t *testing.T) {
	data := sampleDocument(32 * 1024)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			var compressed []byte
			if ct == format.CompressionS2 {
				// The streaming reader expects the framed S2 format.
				compressed = s2Stream(t, data)
			} else {
				codec, err := CreateCodec(ct)
				require.NoError(t, err)
				compressed, err = codec.Compress(data)
				require.NoError(t, err)
			}

			r, err := NewReader(bytes.NewReader(compressed), ct)
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			require.Equal(t, data, got)
		})
	}

	_, err := NewReader(bytes.NewReader(nil), format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)

	_, err = NewReader(bytes.NewReader([]byte{0x00, 0x01}), format.CompressionGzip)
	require.Error(t, err)
}
