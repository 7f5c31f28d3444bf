package format

import (
	"fmt"
	"sort"
	"time"

	"github.com/joshuapare/trophykit/internal/buf"
)

// Kind names the transform applied to a field's bytes.
type Kind int

const (
	KindRaw    Kind = iota // opaque bytes, preserved verbatim
	KindInt32              // big-endian int32
	KindInt64              // big-endian int64
	KindExists             // packed flag, low byte 2 = true
	KindSynced             // packed flag, low byte nonzero = true
	KindTime               // doubled big-endian microsecond timestamp
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindExists:
		return "exists"
	case KindSynced:
		return "synced"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// width is the byte width a kind requires, or 0 for any width.
func (k Kind) width() int {
	switch k {
	case KindInt32:
		return 4
	case KindInt64:
		return 8
	case KindExists, KindSynced:
		return FlagFieldSize
	case KindTime:
		return TimeFieldSize
	default:
		return 0
	}
}

// Field is one row of a layout table: a named byte range and the transform
// used to read and write it.
type Field struct {
	Name   string
	Offset int
	Width  int
	Kind   Kind
}

// Bytes returns the field's sub-slice of b. The caller guarantees b is at
// least as long as the owning layout.
func (f Field) Bytes(b []byte) []byte {
	return b[f.Offset : f.Offset+f.Width]
}

func (f Field) mustBe(kinds ...Kind) {
	for _, k := range kinds {
		if f.Kind == k {
			return
		}
	}
	panic(fmt.Sprintf("format: field %s is %s, not %s", f.Name, f.Kind, kinds[0]))
}

// Int32 decodes a KindInt32 field.
func (f Field) Int32(b []byte) int32 {
	f.mustBe(KindInt32)
	return buf.I32BE(f.Bytes(b))
}

// PutInt32 encodes a KindInt32 field.
func (f Field) PutInt32(b []byte, v int32) {
	f.mustBe(KindInt32)
	buf.PutI32BE(f.Bytes(b), v)
}

// Int64 decodes a KindInt64 field.
func (f Field) Int64(b []byte) int64 {
	f.mustBe(KindInt64)
	return buf.I64BE(f.Bytes(b))
}

// PutInt64 encodes a KindInt64 field.
func (f Field) PutInt64(b []byte, v int64) {
	f.mustBe(KindInt64)
	buf.PutI64BE(f.Bytes(b), v)
}

// Bool decodes a flag field with the rule its kind names.
func (f Field) Bool(b []byte) bool {
	f.mustBe(KindExists, KindSynced)
	if f.Kind == KindExists {
		return DecodeExists(f.Bytes(b))
	}
	return DecodeSynced(f.Bytes(b))
}

// PutBool encodes a flag field with the rule its kind names.
func (f Field) PutBool(b []byte, v bool) {
	f.mustBe(KindExists, KindSynced)
	if f.Kind == KindExists {
		EncodeExists(f.Bytes(b), v)
		return
	}
	EncodeSynced(f.Bytes(b), v)
}

// Time decodes a KindTime field through tc.
func (f Field) Time(b []byte, tc TimeCodec) time.Time {
	f.mustBe(KindTime)
	return tc.Decode(f.Bytes(b))
}

// PutTime encodes a KindTime field through tc.
func (f Field) PutTime(b []byte, tc TimeCodec, t time.Time) {
	f.mustBe(KindTime)
	tc.Encode(f.Bytes(b), t)
}

// Layout is the declarative description of a fixed-size record.
type Layout struct {
	Name   string
	Size   int
	Fields []Field
}

// Field returns the named field. It panics on unknown names: layouts are
// package constants and a typo is a programming error.
func (l Layout) Field(name string) Field {
	for _, f := range l.Fields {
		if f.Name == name {
			return f
		}
	}
	panic(fmt.Sprintf("format: layout %s has no field %q", l.Name, name))
}

// Validate checks that fields are in bounds, do not overlap and have the
// width their kind requires.
func (l Layout) Validate() error {
	fields := make([]Field, len(l.Fields))
	copy(fields, l.Fields)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Offset < fields[j].Offset })
	end := 0
	for _, f := range fields {
		if f.Width <= 0 {
			return fmt.Errorf("%s.%s: non-positive width %d", l.Name, f.Name, f.Width)
		}
		if w := f.Kind.width(); w != 0 && f.Width != w {
			return fmt.Errorf("%s.%s: %s field is %d bytes, want %d", l.Name, f.Name, f.Kind, f.Width, w)
		}
		if f.Offset < end {
			return fmt.Errorf("%s.%s: overlaps previous field at 0x%x", l.Name, f.Name, f.Offset)
		}
		end = f.Offset + f.Width
		if end > l.Size {
			return fmt.Errorf("%s.%s: ends at 0x%x past size 0x%x", l.Name, f.Name, end, l.Size)
		}
	}
	return nil
}

// HeaderLayout describes the file header.
var HeaderLayout = Layout{
	Name: "header",
	Size: HeaderSize,
	Fields: []Field{
		{Name: "magic", Offset: HeaderMagicOffset, Width: HeaderMagicSize, Kind: KindRaw},
		{Name: "recordCount", Offset: HeaderRecordCountOffset, Width: 4, Kind: KindInt32},
		{Name: "padding", Offset: HeaderPaddingOffset, Width: HeaderPaddingSize, Kind: KindRaw},
	},
}

// TypeRecordLayout describes one entry of the type record table.
var TypeRecordLayout = Layout{
	Name: "typeRecord",
	Size: TypeRecordSize,
	Fields: []Field{
		{Name: "id", Offset: TypeRecordIDOffset, Width: 4, Kind: KindInt32},
		{Name: "size", Offset: TypeRecordSizeOffset, Width: 4, Kind: KindInt32},
		{Name: "unknown", Offset: TypeRecordUnknownOffset, Width: 4, Kind: KindInt32},
		{Name: "usedTimes", Offset: TypeRecordUsedTimesOffset, Width: 4, Kind: KindInt32},
		{Name: "offset", Offset: TypeRecordOffsetOffset, Width: 8, Kind: KindInt64},
		{Name: "reserved", Offset: TypeRecordReservedOffset, Width: 8, Kind: KindInt64},
	},
}

// BlockHeaderLayout describes the 16 bytes preceding every block payload.
var BlockHeaderLayout = Layout{
	Name: "blockHeader",
	Size: BlockHeaderSize,
	Fields: []Field{
		{Name: "type", Offset: BlockTypeOffset, Width: 4, Kind: KindInt32},
		{Name: "size", Offset: BlockSizeOffset, Width: 4, Kind: KindInt32},
		{Name: "sequence", Offset: BlockSequenceOffset, Width: 4, Kind: KindInt32},
		{Name: "reserved", Offset: BlockReservedOffset, Width: 4, Kind: KindInt32},
	},
}

// EntryLayout describes a trophy entry payload.
var EntryLayout = Layout{
	Name: "entry",
	Size: BlockSize,
	Fields: []Field{
		{Name: "sequence", Offset: EntrySequenceOffset, Width: 4, Kind: KindInt32},
		{Name: "exists", Offset: EntryExistsOffset, Width: FlagFieldSize, Kind: KindExists},
		{Name: "synced", Offset: EntrySyncOffset, Width: FlagFieldSize, Kind: KindSynced},
		{Name: "opaque1", Offset: EntryOpaque1Offset, Width: 4, Kind: KindRaw},
		{Name: "padding", Offset: EntryPaddingOffset, Width: EntryPaddingSize, Kind: KindRaw},
		{Name: "trophyID", Offset: EntryTrophyIDOffset, Width: 4, Kind: KindInt32},
		{Name: "trophyType", Offset: EntryTypeOffset, Width: 4, Kind: KindInt32},
		{Name: "opaque2", Offset: EntryOpaque2Offset, Width: 4, Kind: KindRaw},
		{Name: "secondary", Offset: EntrySecondaryOffset, Width: 4, Kind: KindInt32},
		{Name: "time", Offset: EntryTimeOffset, Width: TimeFieldSize, Kind: KindTime},
		{Name: "tail", Offset: EntryTailOffset, Width: EntryTailSize, Kind: KindRaw},
	},
}

// InitBlockLayout describes the initial-time block payload.
var InitBlockLayout = Layout{
	Name: "initBlock",
	Size: BlockSize,
	Fields: []Field{
		{Name: "opaque", Offset: InitOpaqueOffset, Width: InitOpaqueSize, Kind: KindRaw},
		{Name: "padding", Offset: InitPaddingOffset, Width: InitPaddingSize, Kind: KindRaw},
		{Name: "time", Offset: InitTimeOffset, Width: TimeFieldSize, Kind: KindTime},
		{Name: "tail", Offset: InitTailOffset, Width: InitTailSize, Kind: KindRaw},
	},
}

// Frequently used fields, resolved once.
var (
	headerRecordCount = HeaderLayout.Field("recordCount")

	recordID        = TypeRecordLayout.Field("id")
	recordSize      = TypeRecordLayout.Field("size")
	recordUnknown   = TypeRecordLayout.Field("unknown")
	recordUsedTimes = TypeRecordLayout.Field("usedTimes")
	recordOffset    = TypeRecordLayout.Field("offset")
	recordReserved  = TypeRecordLayout.Field("reserved")

	blockType     = BlockHeaderLayout.Field("type")
	blockSize     = BlockHeaderLayout.Field("size")
	blockSequence = BlockHeaderLayout.Field("sequence")
	blockReserved = BlockHeaderLayout.Field("reserved")

	entrySequence  = EntryLayout.Field("sequence")
	entryExists    = EntryLayout.Field("exists")
	entrySynced    = EntryLayout.Field("synced")
	entryTrophyID  = EntryLayout.Field("trophyID")
	entryType      = EntryLayout.Field("trophyType")
	entryOpaque2   = EntryLayout.Field("opaque2")
	entrySecondary = EntryLayout.Field("secondary")
	entryTime      = EntryLayout.Field("time")

	initTime = InitBlockLayout.Field("time")
)
