package decoder

import (
	"testing"

	"github.com/arloliu/nbt/internal/wiretest"
)

func BenchmarkDecode(b *testing.B) {
	root := sampleRoot()

	for _, ed := range allEditions {
		data := wiretest.Encode(ed, root)
		dec := mustNew(b, ed)

		b.Run(ed.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for b.Loop() {
				if _, _, err := dec.DecodeBytes(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
