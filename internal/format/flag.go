package format

// Packed flags occupy four bytes but only the low byte carries state. The two
// flags in a trophy entry are encoded differently:
//
//	exists:  low byte 2 = true, anything else = false; writes 2 or 0
//	synced:  low byte nonzero = true;                   writes 1 or 0
//
// Encoders touch only the low byte so the other three bytes round-trip.

// DecodeExists reads an exists flag field.
func DecodeExists(field []byte) bool {
	return len(field) == FlagFieldSize && field[flagByte] == ExistsTrue
}

// EncodeExists writes an exists flag field in place.
func EncodeExists(field []byte, v bool) {
	if len(field) != FlagFieldSize {
		return
	}
	if v {
		field[flagByte] = ExistsTrue
	} else {
		field[flagByte] = 0
	}
}

// DecodeSynced reads a synchronized flag field.
func DecodeSynced(field []byte) bool {
	return len(field) == FlagFieldSize && field[flagByte] != 0
}

// EncodeSynced writes a synchronized flag field in place.
func EncodeSynced(field []byte, v bool) {
	if len(field) != FlagFieldSize {
		return
	}
	if v {
		field[flagByte] = SyncedTrue
	} else {
		field[flagByte] = 0
	}
}
