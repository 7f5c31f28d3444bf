package format

import (
	"fmt"
	"time"

	"github.com/joshuapare/trophykit/internal/buf"
)

// epochShiftMicros is the number of microseconds between 0001-01-01 and the
// Unix epoch. On-disk timestamps count microseconds from 0001-01-01 UTC.
const epochShiftMicros = 62135596800000000

// TimeCodec converts on-disk timestamps to and from time.Time. Offset is the
// whole-hour UTC offset decoded values are presented in; instants are never
// shifted, so Decode followed by Encode reproduces the stored value.
type TimeCodec struct {
	Offset time.Duration
}

// LocalTimeCodec returns a codec using the process-local standard offset
// (daylight saving excluded), truncated to whole hours.
func LocalTimeCodec() TimeCodec {
	return TimeCodec{Offset: standardOffset(time.Local, time.Now().Year())}
}

// UTCTimeCodec returns a codec with a zero offset.
func UTCTimeCodec() TimeCodec {
	return TimeCodec{}
}

// HoursTimeCodec returns a codec for a fixed offset of h hours.
func HoursTimeCodec(h int) TimeCodec {
	return TimeCodec{Offset: time.Duration(h) * time.Hour}
}

func standardOffset(loc *time.Location, year int) time.Duration {
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, loc).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, loc).Zone()
	off := min(jan, jul)
	return time.Duration(off/3600) * time.Hour
}

// Location returns the fixed zone decoded times carry.
func (c TimeCodec) Location() *time.Location {
	hours := int(c.Offset / time.Hour)
	if hours == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+03d", hours), hours*3600)
}

// Decode reads a 16-byte timestamp field. All-zero input decodes to the zero
// time.Time, which means "no time".
func (c TimeCodec) Decode(field []byte) time.Time {
	if len(field) < TimeFieldSize {
		return time.Time{}
	}
	micros := buf.I64BE(field[:8])
	if micros == 0 {
		return time.Time{}
	}
	return time.UnixMicro(micros - epochShiftMicros).In(c.Location())
}

// Encode writes t into both halves of a 16-byte timestamp field. The zero
// time clears the field.
func (c TimeCodec) Encode(field []byte, t time.Time) {
	if len(field) < TimeFieldSize {
		return
	}
	if t.IsZero() {
		clear(field[:TimeFieldSize])
		return
	}
	micros := Micros(t)
	buf.PutI64BE(field[0:8], micros)
	buf.PutI64BE(field[8:16], micros)
}

// Micros returns the on-disk value for t: microseconds since 0001-01-01 UTC,
// or 0 for the zero time.
func Micros(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro() + epochShiftMicros
}
