// Package format houses low-level decoders for the TROPTRNS.DAT trophy
// transaction file. The goal is to keep the parsing focused on byte slices and
// independent from the public API so the trophy package can orchestrate the
// data in a more ergonomic form.
//
// All integers are big-endian on disk. Every structure is described by an
// offset table in this file rather than by Go struct memory layout.
package format

// TRNSMagic is the eight-byte signature at the start of every transaction file.
var TRNSMagic = []byte{0x81, 0x8F, 0x54, 0xAD, 0x00, 0x01, 0x00, 0x00}

// FileName is the transaction file name inside a trophy directory.
const FileName = "TROPTRNS.DAT"

// Header layout.
//
//	Offset  Size  Description
//	------  ----  --------------------------------------------
//	 0x00    8    magic
//	 0x08    4    type record count
//	 0x0C   36    padding (preserved verbatim)
const (
	HeaderMagicOffset       = 0x00
	HeaderMagicSize         = 8
	HeaderRecordCountOffset = 0x08
	HeaderPaddingOffset     = 0x0C
	HeaderPaddingSize       = 36
	HeaderSize              = HeaderPaddingOffset + HeaderPaddingSize // 0x30
)

// Type record layout. The record table follows the header immediately.
//
//	Offset  Size  Description
//	------  ----  --------------------------------------------
//	 0x00    4    id
//	 0x04    4    size (entry capacity for type 4)
//	 0x08    4    unknown
//	 0x0C    4    used times
//	 0x10    8    absolute file offset of the region
//	 0x18    8    reserved
const (
	TypeRecordIDOffset        = 0x00
	TypeRecordSizeOffset      = 0x04
	TypeRecordUnknownOffset   = 0x08
	TypeRecordUsedTimesOffset = 0x0C
	TypeRecordOffsetOffset    = 0x10
	TypeRecordReservedOffset  = 0x18
	TypeRecordSize            = 0x20
)

// Type ids the loader requires.
const (
	RecordAccount int32 = 2 // account identifier block
	RecordTitle   int32 = 3 // title identifier and running counters
	RecordEntries int32 = 4 // initial-time block followed by trophy entries
)

// Account block (type 2), relative to the record offset.
const (
	AccountIDOffset = 0x20
	AccountIDSize   = 16
)

// Title block (type 3), relative to the record offset.
const (
	TitleIDOffset       = 0x10
	TitleIDSize         = 16
	TitleSentinelOffset = 0x20
	TitleGrantedOffset  = 0x24
	TitleSyncedOffset   = 0x28
	TitleBlockSize      = TitleSyncedOffset + 4

	// TitleSentinel is the value always observed in the sentinel field.
	TitleSentinel int32 = 0x90
)

// Block header preceding the initial-time block and every trophy entry.
//
//	Offset  Size  Description
//	------  ----  --------------------------------------------
//	 0x00    4    block type
//	 0x04    4    block size (payload bytes following this header)
//	 0x08    4    sequence number
//	 0x0C    4    reserved
const (
	BlockTypeOffset     = 0x00
	BlockSizeOffset     = 0x04
	BlockSequenceOffset = 0x08
	BlockReservedOffset = 0x0C
	BlockHeaderSize     = 0x10

	// BlockSize is the payload size of the initial-time block and of each
	// trophy entry.
	BlockSize = 0xA0

	// BlockStride is the distance between consecutive block payloads.
	BlockStride = BlockHeaderSize + BlockSize
)

// Trophy entry payload layout.
//
//	Offset  Size  Description
//	------  ----  --------------------------------------------
//	 0x00    4    sequence number
//	 0x04    4    exists flag (low byte, 2 = true)
//	 0x08    4    synchronized flag (low byte, nonzero = true)
//	 0x0C    4    opaque
//	 0x10   16    opaque
//	 0x20    4    trophy id
//	 0x24    4    trophy type
//	 0x28    4    opaque (new entries carry 00 00 10 00)
//	 0x2C    4    secondary counter (cleared on save)
//	 0x30   16    unlock time, two identical 8-byte halves
//	 0x40   96    opaque
const (
	EntrySequenceOffset  = 0x00
	EntryExistsOffset    = 0x04
	EntrySyncOffset      = 0x08
	EntryOpaque1Offset   = 0x0C
	EntryPaddingOffset   = 0x10
	EntryPaddingSize     = 16
	EntryTrophyIDOffset  = 0x20
	EntryTypeOffset      = 0x24
	EntryOpaque2Offset   = 0x28
	EntrySecondaryOffset = 0x2C
	EntryTimeOffset      = 0x30
	EntryTailOffset      = 0x40
	EntryTailSize        = 96
)

// Initial-time block payload layout.
//
//	Offset  Size  Description
//	------  ----  --------------------------------------------
//	 0x00   16    four opaque ints
//	 0x10   16    opaque
//	 0x20   16    initial time
//	 0x30  112    opaque
const (
	InitOpaqueOffset  = 0x00
	InitOpaqueSize    = 16
	InitPaddingOffset = 0x10
	InitPaddingSize   = 16
	InitTimeOffset    = 0x20
	InitTailOffset    = 0x30
	InitTailSize      = 112
)

const (
	// FlagFieldSize is the width of a packed boolean field.
	FlagFieldSize = 4

	// flagByte is the only byte of a flag field that carries state.
	flagByte = 3

	// ExistsTrue is the low-byte value meaning the entry exists.
	ExistsTrue = 2

	// SyncedTrue is the low-byte value written for a synchronized entry.
	SyncedTrue = 1

	// TimeFieldSize is the width of an on-disk timestamp.
	TimeFieldSize = 16
)

// newEntryOpaque2 is the opaque int written into freshly created entries.
var newEntryOpaque2 = [4]byte{0x00, 0x00, 0x10, 0x00}
