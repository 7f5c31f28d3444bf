package format

import (
	"fmt"
	"time"
)

// BlockHeader precedes each block payload in the entry region.
type BlockHeader struct {
	Type     int32
	Size     int32
	Sequence int32
	Reserved int32
}

// DecodeBlockHeader decodes a BlockHeaderSize-byte header.
func DecodeBlockHeader(b []byte) (BlockHeader, error) {
	if len(b) < BlockHeaderSize {
		return BlockHeader{}, fmt.Errorf("block header: %w", ErrTruncated)
	}
	return BlockHeader{
		Type:     blockType.Int32(b),
		Size:     blockSize.Int32(b),
		Sequence: blockSequence.Int32(b),
		Reserved: blockReserved.Int32(b),
	}, nil
}

// Encode writes h into b[0:BlockHeaderSize].
func (h BlockHeader) Encode(b []byte) {
	blockType.PutInt32(b, h.Type)
	blockSize.PutInt32(b, h.Size)
	blockSequence.PutInt32(b, h.Sequence)
	blockReserved.PutInt32(b, h.Reserved)
}

// EntryRecord is a decoded trophy entry. Raw holds the full payload so
// opaque bytes survive a rewrite.
type EntryRecord struct {
	Sequence   int32
	Exists     bool
	Synced     bool
	TrophyID   int32
	TrophyType int32
	Secondary  int32
	Time       time.Time
	Raw        [BlockSize]byte
}

// NewEntryRecord returns a fresh existing entry with the opaque defaults a
// newly granted trophy carries.
func NewEntryRecord(id, trophyType int32, t time.Time) EntryRecord {
	rec := EntryRecord{
		Exists:     true,
		TrophyID:   id,
		TrophyType: trophyType,
		Time:       t,
	}
	copy(entryOpaque2.Bytes(rec.Raw[:]), newEntryOpaque2[:])
	return rec
}

// DecodeEntry decodes a BlockSize-byte entry payload.
func DecodeEntry(b []byte, tc TimeCodec) (EntryRecord, error) {
	if len(b) < BlockSize {
		return EntryRecord{}, fmt.Errorf("entry: %w (have %d, need %d)", ErrTruncated, len(b), BlockSize)
	}
	rec := EntryRecord{
		Sequence:   entrySequence.Int32(b),
		Exists:     entryExists.Bool(b),
		Synced:     entrySynced.Bool(b),
		TrophyID:   entryTrophyID.Int32(b),
		TrophyType: entryType.Int32(b),
		Secondary:  entrySecondary.Int32(b),
		Time:       entryTime.Time(b, tc),
	}
	copy(rec.Raw[:], b[:BlockSize])
	return rec, nil
}

// Encode overlays the decoded fields onto a copy of Raw and writes the result
// into b[0:BlockSize].
func (e EntryRecord) Encode(b []byte, tc TimeCodec) error {
	if len(b) < BlockSize {
		return fmt.Errorf("entry: %w (have %d, need %d)", ErrTruncated, len(b), BlockSize)
	}
	out := e.Raw
	entrySequence.PutInt32(out[:], e.Sequence)
	entryExists.PutBool(out[:], e.Exists)
	entrySynced.PutBool(out[:], e.Synced)
	entryTrophyID.PutInt32(out[:], e.TrophyID)
	entryType.PutInt32(out[:], e.TrophyType)
	entrySecondary.PutInt32(out[:], e.Secondary)
	entryTime.PutTime(out[:], tc, e.Time)
	copy(b, out[:])
	return nil
}

// PlaceholderEntry writes an unused slot: all zero except the sequence number.
func PlaceholderEntry(b []byte, seq int32) error {
	if len(b) < BlockSize {
		return fmt.Errorf("entry: %w (have %d, need %d)", ErrTruncated, len(b), BlockSize)
	}
	clear(b[:BlockSize])
	entrySequence.PutInt32(b, seq)
	return nil
}

// InitBlock is the opaque initial-time block, kept verbatim.
type InitBlock struct {
	Raw [BlockSize]byte
}

// DecodeInitBlock copies a BlockSize-byte initial-time payload.
func DecodeInitBlock(b []byte) (InitBlock, error) {
	if len(b) < BlockSize {
		return InitBlock{}, fmt.Errorf("init block: %w", ErrTruncated)
	}
	var ib InitBlock
	copy(ib.Raw[:], b[:BlockSize])
	return ib, nil
}

// Time decodes the embedded initial timestamp.
func (ib InitBlock) Time(tc TimeCodec) time.Time {
	return initTime.Time(ib.Raw[:], tc)
}

// EntrySlotOffset returns the absolute file offset of entry slot i (0-based)
// in an entry region starting at regionOff. Slot -1 is the initial-time block.
func EntrySlotOffset(regionOff int64, i int) int64 {
	return regionOff + int64(i+1)*BlockStride + BlockHeaderSize
}
