package format

import (
	"errors"
	"testing"
)

func makeTable(t *testing.T, recs ...TypeRecord) []byte {
	t.Helper()
	b := make([]byte, HeaderSize+len(recs)*TypeRecordSize)
	copy(b, TRNSMagic)
	headerRecordCount.PutInt32(b, int32(len(recs)))
	for i, r := range recs {
		r.Encode(b[HeaderSize+i*TypeRecordSize:])
	}
	return b
}

func TestParseRecordTable(t *testing.T) {
	b := makeTable(t,
		TypeRecord{ID: 2, Size: 1, UsedTimes: 1, Offset: 0x100},
		TypeRecord{ID: 3, Size: 1, UsedTimes: 1, Offset: 0x200, Reserved: 7},
		TypeRecord{ID: 4, Size: 50, Unknown: 9, UsedTimes: 3, Offset: 0x400},
	)
	table, err := ParseRecordTable(b, 3)
	if err != nil {
		t.Fatalf("ParseRecordTable: %v", err)
	}
	rec, err := table.Lookup(4)
	if err != nil {
		t.Fatalf("Lookup(4): %v", err)
	}
	if rec.Size != 50 || rec.Unknown != 9 || rec.UsedTimes != 3 || rec.Offset != 0x400 {
		t.Fatalf("record 4 = %+v", rec)
	}
	if rec, _ := table.Lookup(3); rec.Reserved != 7 {
		t.Fatalf("record 3 reserved = %d", rec.Reserved)
	}
	ids := table.IDs()
	if len(ids) != 3 || ids[0] != 2 || ids[2] != 4 {
		t.Fatalf("IDs = %v", ids)
	}
}

func TestRecordTableMissingID(t *testing.T) {
	table, err := ParseRecordTable(makeTable(t, TypeRecord{ID: 2}), 1)
	if err != nil {
		t.Fatalf("ParseRecordTable: %v", err)
	}
	if _, err := table.Lookup(4); !errors.Is(err, ErrMissingRecord) {
		t.Fatalf("expected ErrMissingRecord, got %v", err)
	}
}

func TestParseRecordTableErrors(t *testing.T) {
	b := makeTable(t, TypeRecord{ID: 2}, TypeRecord{ID: 2})
	if _, err := ParseRecordTable(b, 2); !errors.Is(err, ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}
	if _, err := ParseRecordTable(b, 3); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestTypeRecordString(t *testing.T) {
	s := TypeRecord{ID: 4, Size: 2, Offset: 16}.String()
	if s != "{ID:4, Size:2, u3:0, UsedTimes:0, Offset:16, u6:0}" {
		t.Fatalf("String() = %q", s)
	}
}
