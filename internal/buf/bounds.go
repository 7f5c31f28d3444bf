package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckTableBounds validates that count fixed-size slots of stride bytes,
// starting at offset, fit inside a buffer of bufLen bytes. It returns the end
// offset of the last slot.
//
//	end, err := buf.CheckTableBounds(len(data), off, n, stride)
//	if err != nil {
//	    return fmt.Errorf("entry table: %w", err)
//	}
func CheckTableBounds(bufLen int, offset int64, count, stride int) (int, error) {
	if offset < 0 || offset > math.MaxInt {
		return 0, fmt.Errorf("offset out of range: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	total, ok := MulOverflowSafe(count, stride)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * stride=%d", count, stride)
	}
	end, ok := AddOverflowSafe(int(offset), total)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, total)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off int64, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > int64(len(b)) {
		return nil, false
	}
	end, ok := AddOverflowSafe(int(off), n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
