package format

import "errors"

var (
	// ErrSignatureMismatch indicates the file did not start with TRNSMagic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMissingRecord indicates a required type record is absent from the table.
	ErrMissingRecord = errors.New("format: missing type record")
	// ErrDuplicateRecord indicates two type records share an id.
	ErrDuplicateRecord = errors.New("format: duplicate type record")
	// ErrBlockSize indicates an entry block size other than BlockSize.
	ErrBlockSize = errors.New("format: unexpected block size")
	// ErrCapacity indicates more entries than the entry region can hold.
	ErrCapacity = errors.New("format: entry capacity exceeded")
)
