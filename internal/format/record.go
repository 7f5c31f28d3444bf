package format

import (
	"fmt"
	"sort"

	"github.com/joshuapare/trophykit/internal/buf"
)

// TypeRecord locates one region of the file.
type TypeRecord struct {
	ID        int32
	Size      int32
	Unknown   int32
	UsedTimes int32
	Offset    int64
	Reserved  int64
}

func (r TypeRecord) String() string {
	return fmt.Sprintf("{ID:%d, Size:%d, u3:%d, UsedTimes:%d, Offset:%d, u6:%d}",
		r.ID, r.Size, r.Unknown, r.UsedTimes, r.Offset, r.Reserved)
}

// DecodeTypeRecord decodes a single TypeRecordSize-byte record.
func DecodeTypeRecord(b []byte) (TypeRecord, error) {
	if len(b) < TypeRecordSize {
		return TypeRecord{}, fmt.Errorf("type record: %w", ErrTruncated)
	}
	return TypeRecord{
		ID:        recordID.Int32(b),
		Size:      recordSize.Int32(b),
		Unknown:   recordUnknown.Int32(b),
		UsedTimes: recordUsedTimes.Int32(b),
		Offset:    recordOffset.Int64(b),
		Reserved:  recordReserved.Int64(b),
	}, nil
}

// Encode writes r into b[0:TypeRecordSize].
func (r TypeRecord) Encode(b []byte) {
	recordID.PutInt32(b, r.ID)
	recordSize.PutInt32(b, r.Size)
	recordUnknown.PutInt32(b, r.Unknown)
	recordUsedTimes.PutInt32(b, r.UsedTimes)
	recordOffset.PutInt64(b, r.Offset)
	recordReserved.PutInt64(b, r.Reserved)
}

// RecordTable maps type ids to their records.
type RecordTable map[int32]TypeRecord

// ParseRecordTable decodes count records starting right after the header.
func ParseRecordTable(b []byte, count int) (RecordTable, error) {
	if _, err := buf.CheckTableBounds(len(b), HeaderSize, count, TypeRecordSize); err != nil {
		return nil, fmt.Errorf("record table: %w: %w", ErrTruncated, err)
	}
	table := make(RecordTable, count)
	for i := range count {
		off := HeaderSize + i*TypeRecordSize
		rec, err := DecodeTypeRecord(b[off : off+TypeRecordSize])
		if err != nil {
			return nil, err
		}
		if _, dup := table[rec.ID]; dup {
			return nil, fmt.Errorf("record table: id %d: %w", rec.ID, ErrDuplicateRecord)
		}
		table[rec.ID] = rec
	}
	return table, nil
}

// Lookup returns the record for id.
func (t RecordTable) Lookup(id int32) (TypeRecord, error) {
	rec, ok := t[id]
	if !ok {
		return TypeRecord{}, fmt.Errorf("record table: id %d: %w", id, ErrMissingRecord)
	}
	return rec, nil
}

// IDs returns the record ids in ascending order.
func (t RecordTable) IDs() []int32 {
	ids := make([]int32, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
