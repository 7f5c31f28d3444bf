package trophy

import (
	"testing"
	"time"

	"github.com/joshuapare/trophykit/internal/testutil"
)

func benchImage(n int) testutil.TRNSImage {
	img := testutil.TRNSImage{TitleID: "NPWR00001_00", Capacity: n}
	for i := range n {
		img.Entries = append(img.Entries, testutil.TRNSEntry{
			ID:     int32(i),
			Type:   int32(Bronze),
			Time:   t1.Add(time.Duration(i) * time.Minute),
			Synced: i < n/2,
		})
	}
	return img
}

func BenchmarkDecode(b *testing.B) {
	image := testutil.BuildTRNS(b, benchImage(128))
	b.SetBytes(int64(len(image)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(image, utc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	image := testutil.BuildTRNS(b, benchImage(128))
	f, err := Decode(image, utc)
	if err != nil {
		b.Fatal(err)
	}
	out := memFile(image)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.Encode(&out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPutTrophy(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewLedger(time.UTC)
		for j := range 128 {
			_ = l.PutTrophy(int32(j), Bronze, t1.Add(time.Duration(128-j)*time.Second))
		}
	}
}
