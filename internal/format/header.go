package format

import (
	"bytes"
	"fmt"
)

// Header is the fixed-size file header. Raw keeps the original bytes so a
// save writes them back untouched.
type Header struct {
	RecordCount int32
	Raw         [HeaderSize]byte
}

// ParseHeader validates the magic and extracts the record count.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w (have %d, need %d)", ErrTruncated, len(b), HeaderSize)
	}
	if !bytes.Equal(b[HeaderMagicOffset:HeaderMagicOffset+HeaderMagicSize], TRNSMagic) {
		return Header{}, fmt.Errorf("header: %w", ErrSignatureMismatch)
	}
	h := Header{RecordCount: headerRecordCount.Int32(b)}
	copy(h.Raw[:], b[:HeaderSize])
	if h.RecordCount < 0 {
		return Header{}, fmt.Errorf("header: negative record count %d: %w", h.RecordCount, ErrTruncated)
	}
	return h, nil
}

// Padding returns the opaque padding block.
func (h Header) Padding() []byte {
	return HeaderLayout.Field("padding").Bytes(h.Raw[:])
}
