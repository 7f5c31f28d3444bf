package trophy

import (
	"time"

	"github.com/joshuapare/trophykit/internal/format"
)

// Entry is one unlocked trophy. Opaque bytes of the on-disk record travel
// with the entry so a save reproduces them.
type Entry struct {
	Sequence     int32
	Exists       bool
	Synchronized bool
	ID           int32
	Type         TrophyType
	Time         time.Time

	secondary int32
	raw       [format.BlockSize]byte
}

func newEntry(id int32, typ TrophyType, t time.Time) Entry {
	return entryFromRecord(format.NewEntryRecord(id, int32(typ), t))
}

func entryFromRecord(rec format.EntryRecord) Entry {
	return Entry{
		Sequence:     rec.Sequence,
		Exists:       rec.Exists,
		Synchronized: rec.Synced,
		ID:           rec.TrophyID,
		Type:         TrophyType(rec.TrophyType),
		Time:         rec.Time,
		secondary:    rec.Secondary,
		raw:          rec.Raw,
	}
}

func (e Entry) record() format.EntryRecord {
	return format.EntryRecord{
		Sequence:   e.Sequence,
		Exists:     e.Exists,
		Synced:     e.Synchronized,
		TrophyID:   e.ID,
		TrophyType: int32(e.Type),
		Secondary:  e.secondary,
		Time:       e.Time,
		Raw:        e.raw,
	}
}
