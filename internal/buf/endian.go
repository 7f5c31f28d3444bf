// Package buf contains helpers for endian-safe decoding routines.
//
// TROPTRNS.DAT stores every multi-byte integer big-endian. The readers here
// return 0 when the slice is too short so callers can decode optimistically
// after a single bounds check.
package buf

import "encoding/binary"

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// I32BE reads a big-endian int32 from b. Returns 0 when b is too short.
func I32BE(b []byte) int32 {
	return int32(U32BE(b))
}

// U64BE reads a big-endian uint64 from b. Returns 0 when b is too short.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// I64BE reads a big-endian int64 from b. Returns 0 when b is too short.
func I64BE(b []byte) int64 {
	return int64(U64BE(b))
}

// PutI32BE writes v big-endian into b[0:4]. Short slices are left untouched.
func PutI32BE(b []byte, v int32) {
	if len(b) < 4 {
		return
	}
	binary.BigEndian.PutUint32(b, uint32(v))
}

// PutI64BE writes v big-endian into b[0:8]. Short slices are left untouched.
func PutI64BE(b []byte, v int64) {
	if len(b) < 8 {
		return
	}
	binary.BigEndian.PutUint64(b, uint64(v))
}
