package format

import "testing"

func TestExistsFlag(t *testing.T) {
	cases := []struct {
		field []byte
		want  bool
	}{
		{[]byte{0, 0, 0, 2}, true},
		{[]byte{0, 0, 0, 0}, false},
		{[]byte{0, 0, 0, 1}, false},
		{[]byte{0xff, 0xff, 0xff, 3}, false},
		{[]byte{0, 0, 2}, false},
	}
	for _, tc := range cases {
		if got := DecodeExists(tc.field); got != tc.want {
			t.Fatalf("DecodeExists(% x) = %v, want %v", tc.field, got, tc.want)
		}
	}
}

func TestSyncedFlag(t *testing.T) {
	cases := []struct {
		field []byte
		want  bool
	}{
		{[]byte{0, 0, 0, 1}, true},
		{[]byte{0, 0, 0, 2}, true},
		{[]byte{0, 0, 0, 0xff}, true},
		{[]byte{0xff, 0, 0, 0}, false},
	}
	for _, tc := range cases {
		if got := DecodeSynced(tc.field); got != tc.want {
			t.Fatalf("DecodeSynced(% x) = %v, want %v", tc.field, got, tc.want)
		}
	}
}

func TestFlagEncodersTouchOnlyLowByte(t *testing.T) {
	field := []byte{0xaa, 0xbb, 0xcc, 0x00}
	EncodeExists(field, true)
	if field[3] != ExistsTrue || field[0] != 0xaa || field[1] != 0xbb || field[2] != 0xcc {
		t.Fatalf("EncodeExists(true) = % x", field)
	}
	EncodeExists(field, false)
	if field[3] != 0 || field[0] != 0xaa {
		t.Fatalf("EncodeExists(false) = % x", field)
	}
	EncodeSynced(field, true)
	if field[3] != SyncedTrue || field[2] != 0xcc {
		t.Fatalf("EncodeSynced(true) = % x", field)
	}
	EncodeSynced(field, false)
	if field[3] != 0 {
		t.Fatalf("EncodeSynced(false) = % x", field)
	}
}
