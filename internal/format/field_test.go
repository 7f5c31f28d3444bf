package format

import (
	"testing"
	"time"
)

func TestLayoutsValidate(t *testing.T) {
	for _, l := range []Layout{HeaderLayout, TypeRecordLayout, BlockHeaderLayout, EntryLayout, InitBlockLayout} {
		if err := l.Validate(); err != nil {
			t.Fatalf("%s: %v", l.Name, err)
		}
	}
}

func TestLayoutsCoverWholeRecord(t *testing.T) {
	for _, l := range []Layout{HeaderLayout, TypeRecordLayout, BlockHeaderLayout, EntryLayout, InitBlockLayout} {
		total := 0
		for _, f := range l.Fields {
			total += f.Width
		}
		if total != l.Size {
			t.Fatalf("%s: fields cover %d bytes, size is %d", l.Name, total, l.Size)
		}
	}
}

func TestLayoutValidateRejectsOverlap(t *testing.T) {
	l := Layout{Name: "bad", Size: 8, Fields: []Field{
		{Name: "a", Offset: 0, Width: 4},
		{Name: "b", Offset: 2, Width: 4},
	}}
	if err := l.Validate(); err == nil {
		t.Fatalf("expected overlap error")
	}
	l = Layout{Name: "bad", Size: 4, Fields: []Field{{Name: "a", Offset: 2, Width: 4}}}
	if err := l.Validate(); err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
}

func TestLayoutValidateRejectsKindWidthMismatch(t *testing.T) {
	for _, f := range []Field{
		{Name: "i32", Offset: 0, Width: 8, Kind: KindInt32},
		{Name: "i64", Offset: 0, Width: 4, Kind: KindInt64},
		{Name: "flag", Offset: 0, Width: 8, Kind: KindSynced},
		{Name: "time", Offset: 0, Width: 8, Kind: KindTime},
	} {
		l := Layout{Name: "bad", Size: 16, Fields: []Field{f}}
		if err := l.Validate(); err == nil {
			t.Fatalf("%s: expected width error", f.Name)
		}
	}
	l := Layout{Name: "raw", Size: 16, Fields: []Field{{Name: "r", Offset: 0, Width: 3, Kind: KindRaw}}}
	if err := l.Validate(); err != nil {
		t.Fatalf("raw field: %v", err)
	}
}

func TestLayoutFieldPanicsOnUnknownName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	EntryLayout.Field("nope")
}

func TestFieldIntRoundTrip(t *testing.T) {
	b := make([]byte, TypeRecordSize)
	recordOffset.PutInt64(b, 0x1122334455667788)
	recordSize.PutInt32(b, -5)
	if got := recordOffset.Int64(b); got != 0x1122334455667788 {
		t.Fatalf("offset = 0x%x", got)
	}
	if got := recordSize.Int32(b); got != -5 {
		t.Fatalf("size = %d", got)
	}
	if b[TypeRecordOffsetOffset] != 0x11 {
		t.Fatalf("offset not big-endian: % x", b[TypeRecordOffsetOffset:TypeRecordOffsetOffset+8])
	}
}

func TestFieldKindDispatch(t *testing.T) {
	b := make([]byte, BlockSize)
	entryExists.PutBool(b, true)
	entrySynced.PutBool(b, true)
	if b[EntryExistsOffset+3] != ExistsTrue || b[EntrySyncOffset+3] != SyncedTrue {
		t.Fatalf("flags not encoded: % x / % x", entryExists.Bytes(b), entrySynced.Bytes(b))
	}
	if !entryExists.Bool(b) || !entrySynced.Bool(b) {
		t.Fatalf("flags did not decode as set")
	}
	// a synced byte of 1 is not an exists flag
	entryExists.Bytes(b)[3] = SyncedTrue
	if entryExists.Bool(b) {
		t.Fatalf("exists decoded with the synced rule")
	}

	tc := UTCTimeCodec()
	at := time.Date(2021, time.June, 7, 8, 9, 10, 123456000, time.UTC)
	entryTime.PutTime(b, tc, at)
	if got := entryTime.Time(b, tc); !got.Equal(at) {
		t.Fatalf("time = %s, want %s", got, at)
	}

	for name, call := range map[string]func(){
		"Bool on int32":   func() { entrySequence.Bool(b) },
		"Time on flag":    func() { entrySynced.Time(b, tc) },
		"Int32 on time":   func() { entryTime.Int32(b) },
		"PutInt64 on i32": func() { entrySequence.PutInt64(b, 1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic", name)
				}
			}()
			call()
		}()
	}
}
