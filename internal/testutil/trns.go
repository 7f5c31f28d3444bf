package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joshuapare/trophykit/internal/buf"
	"github.com/joshuapare/trophykit/internal/format"
)

// Region offsets used by BuildTRNS.
const (
	TRNSAccountOffset = 0x100
	TRNSTitleOffset   = 0x200
	TRNSEntryOffset   = 0x300

	// TRNSFill is written into every byte the codec does not own, so tests
	// can detect stray writes.
	TRNSFill = 0xEE
)

// TRNSEntry describes one trophy entry for BuildTRNS.
type TRNSEntry struct {
	ID        int32
	Type      int32
	Time      time.Time
	Synced    bool
	Secondary int32
}

// TRNSImage describes a synthetic TROPTRNS.DAT image.
type TRNSImage struct {
	AccountID string
	TitleID   string
	Capacity  int
	InitTime  time.Time
	Entries   []TRNSEntry

	// Optional overrides for negative tests.
	OmitRecord int32  // type id to leave out of the record table
	BlockSize  int32  // entry block size, defaults to format.BlockSize
	Granted    *int32 // granted counter, defaults to len(Entries)+1
	Synced     *int32 // synced counter, defaults to synced entries+1
}

// BuildTRNS returns a complete transaction file image.
func BuildTRNS(t testing.TB, img TRNSImage) []byte {
	t.Helper()
	if img.Capacity == 0 {
		img.Capacity = max(len(img.Entries), 8)
	}
	if img.BlockSize == 0 {
		img.BlockSize = format.BlockSize
	}
	size := TRNSEntryOffset + (img.Capacity+1)*format.BlockStride
	b := make([]byte, size)
	for i := range b {
		b[i] = TRNSFill
	}

	recs := []format.TypeRecord{
		{ID: format.RecordAccount, Size: 1, UsedTimes: 1, Offset: TRNSAccountOffset},
		{ID: format.RecordTitle, Size: 1, UsedTimes: 1, Offset: TRNSTitleOffset},
		{ID: format.RecordEntries, Size: int32(img.Capacity), UsedTimes: int32(len(img.Entries) + 1), Offset: TRNSEntryOffset},
	}
	kept := recs[:0]
	for _, r := range recs {
		if r.ID != img.OmitRecord {
			kept = append(kept, r)
		}
	}

	copy(b, format.TRNSMagic)
	format.HeaderLayout.Field("recordCount").PutInt32(b, int32(len(kept)))
	pad := format.HeaderLayout.Field("padding").Bytes(b)
	for i := range pad {
		pad[i] = byte(0xA0 + i)
	}
	for i, r := range kept {
		r.Encode(b[format.HeaderSize+i*format.TypeRecordSize:])
	}

	putText(b[TRNSAccountOffset+format.AccountIDOffset:][:format.AccountIDSize], img.AccountID)
	putText(b[TRNSTitleOffset+format.TitleIDOffset:][:format.TitleIDSize], img.TitleID)

	granted := int32(len(img.Entries) + 1)
	if img.Granted != nil {
		granted = *img.Granted
	}
	synced := int32(1)
	for _, e := range img.Entries {
		if e.Synced {
			synced++
		}
	}
	if img.Synced != nil {
		synced = *img.Synced
	}
	counters := b[TRNSTitleOffset:]
	buf.PutI32BE(counters[format.TitleSentinelOffset:], format.TitleSentinel)
	buf.PutI32BE(counters[format.TitleGrantedOffset:], granted)
	buf.PutI32BE(counters[format.TitleSyncedOffset:], synced)

	tc := format.UTCTimeCodec()
	format.BlockHeader{Type: format.RecordEntries, Size: img.BlockSize}.Encode(b[TRNSEntryOffset:])
	ib := b[format.EntrySlotOffset(TRNSEntryOffset, -1):][:format.BlockSize]
	clear(ib)
	for i := range format.InitOpaqueSize {
		ib[format.InitOpaqueOffset+i] = byte(i + 1)
	}
	tc.Encode(ib[format.InitTimeOffset:], img.InitTime)

	for i := range img.Capacity {
		hdrOff := format.EntrySlotOffset(TRNSEntryOffset, i) - format.BlockHeaderSize
		format.BlockHeader{Type: format.RecordEntries, Size: img.BlockSize, Sequence: int32(i + 1)}.Encode(b[hdrOff:])
		slot := b[hdrOff+format.BlockHeaderSize:][:format.BlockSize]
		if i >= len(img.Entries) {
			if err := format.PlaceholderEntry(slot, int32(i+1)); err != nil {
				t.Fatalf("placeholder %d: %v", i, err)
			}
			continue
		}
		e := img.Entries[i]
		rec := format.NewEntryRecord(e.ID, e.Type, e.Time)
		rec.Sequence = int32(i + 1)
		rec.Synced = e.Synced
		rec.Secondary = e.Secondary
		if err := rec.Encode(slot, tc); err != nil {
			t.Fatalf("entry %d: %v", i, err)
		}
	}
	return b
}

// WriteTRNS writes BuildTRNS output to <dir>/TROPTRNS.DAT and returns the path.
func WriteTRNS(t testing.TB, dir string, img TRNSImage) string {
	t.Helper()
	path := filepath.Join(dir, format.FileName)
	if err := os.WriteFile(path, BuildTRNS(t, img), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func putText(dst []byte, s string) {
	clear(dst)
	copy(dst, s)
}
