package compress

import (
	"fmt"
	"testing"
)

func BenchmarkDecompress(b *testing.B) {
	for _, size := range []int{4 * 1024, 64 * 1024} {
		data := sampleDocument(size)

		for _, ct := range allTypes {
			codec, err := GetCodec(ct)
			if err != nil {
				b.Fatal(err)
			}
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%dKB", ct, size/1024), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size))

				for b.Loop() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
