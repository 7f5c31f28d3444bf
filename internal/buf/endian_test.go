package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U32BE(data); got != 0x01234567 {
		t.Fatalf("U32BE = 0x%x, want 0x01234567", got)
	}
	if got := I32BE(data[4:]); got != int32(-0x76543211) {
		t.Fatalf("I32BE = %d, want %d", got, int32(-0x76543211))
	}
	if got := U64BE(data); got != 0x0123456789abcdef {
		t.Fatalf("U64BE = 0x%x, want 0x0123456789abcdef", got)
	}
	if got := I64BE(data); got != 0x0123456789abcdef {
		t.Fatalf("I64BE = 0x%x, want 0x0123456789abcdef", got)
	}

	short := []byte{0xAA}
	if U32BE(short) != 0 || I32BE(short) != 0 || U64BE(short) != 0 || I64BE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestPutHelpers(t *testing.T) {
	b := make([]byte, 8)
	PutI32BE(b, 0x11223344)
	if b[0] != 0x11 || b[3] != 0x44 {
		t.Fatalf("PutI32BE wrote % x", b)
	}
	PutI64BE(b, -1)
	for i, v := range b {
		if v != 0xff {
			t.Fatalf("PutI64BE byte %d = 0x%x, want 0xff", i, v)
		}
	}

	short := []byte{0xAA, 0xBB}
	PutI32BE(short, 1)
	PutI64BE(short, 1)
	if short[0] != 0xAA || short[1] != 0xBB {
		t.Fatalf("short writes must not modify the slice: % x", short)
	}
}
