package format

import (
	"testing"
	"time"
)

func TestTimeCodecRoundTrip(t *testing.T) {
	tc := HoursTimeCodec(9)
	want := time.Date(2019, 5, 17, 21, 4, 33, 123456000, time.UTC)

	field := make([]byte, TimeFieldSize)
	tc.Encode(field, want)
	for i := range 8 {
		if field[i] != field[i+8] {
			t.Fatalf("halves differ: % x", field)
		}
	}

	got := tc.Decode(field)
	if !got.Equal(want) {
		t.Fatalf("Decode = %v, want %v", got, want)
	}
	if _, off := got.Zone(); off != 9*3600 {
		t.Fatalf("decoded zone offset = %d, want %d", off, 9*3600)
	}
	if got.Hour() != 6 || got.Day() != 18 {
		t.Fatalf("wall clock = %v, want 2019-05-18 06:04", got)
	}
}

func TestTimeCodecKnownValue(t *testing.T) {
	// 2008-01-01T00:00:00Z is 63334742400 seconds after 0001-01-01.
	field := make([]byte, TimeFieldSize)
	UTCTimeCodec().Encode(field, time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC))
	want := []byte{0x00, 0xe1, 0x02, 0x9c, 0xd6, 0xb1, 0x60, 0x00}
	for i, b := range want {
		if field[i] != b {
			t.Fatalf("encoded % x, want % x", field[:8], want)
		}
	}
	if got := Micros(time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)); got != 63334742400000000 {
		t.Fatalf("Micros = %d", got)
	}
}

func TestTimeCodecZero(t *testing.T) {
	field := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	HoursTimeCodec(-5).Encode(field, time.Time{})
	for i, b := range field {
		if b != 0 {
			t.Fatalf("byte %d = 0x%x after zero encode", i, b)
		}
	}
	if got := HoursTimeCodec(-5).Decode(field); !got.IsZero() {
		t.Fatalf("Decode(zero) = %v, want zero time", got)
	}
	if Micros(time.Time{}) != 0 {
		t.Fatalf("Micros(zero) != 0")
	}
}

func TestTimeCodecLocation(t *testing.T) {
	if HoursTimeCodec(0).Location() != time.UTC {
		t.Fatalf("zero offset should use time.UTC")
	}
	if name := HoursTimeCodec(-3).Location().String(); name != "UTC-03" {
		t.Fatalf("location name = %q", name)
	}
}

func TestStandardOffsetIgnoresDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	if got := standardOffset(loc, 2024); got != -5*time.Hour {
		t.Fatalf("standardOffset = %v, want -5h", got)
	}
	loc, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	if got := standardOffset(loc, 2024); got != 5*time.Hour {
		t.Fatalf("standardOffset = %v, want 5h (truncated)", got)
	}
}
