package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat          ErrKind = iota + 1 // bad magic, missing record, truncated region
	ErrKindIO                                 // file missing or unreadable/unwritable
	ErrKindDuplicate                          // trophy id already granted
	ErrKindNotFound                           // trophy id absent
	ErrKindSyncOrder                          // change would reorder around a synchronized entry
	ErrKindImmutableSynced                    // change targets a synchronized entry
	ErrKindCapacity                           // ledger larger than the file's entry region
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindIO:
		return "io"
	case ErrKindDuplicate:
		return "duplicate"
	case ErrKindNotFound:
		return "not found"
	case ErrKindSyncOrder:
		return "sync order"
	case ErrKindImmutableSynced:
		return "immutable synced"
	case ErrKindCapacity:
		return "capacity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind     ErrKind
	Msg      string
	TrophyID int32     // set for ledger errors
	Conflict time.Time // synchronized unlock time for ErrKindSyncOrder
	Err      error     // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}

// Sentinels for errors.Is. Implementations return fresh values carrying
// details; these only carry the kind.
var (
	ErrFormat          = &Error{Kind: ErrKindFormat, Msg: "not a valid TROPTRNS.DAT"}
	ErrIO              = &Error{Kind: ErrKindIO, Msg: "trophy file i/o failed"}
	ErrDuplicate       = &Error{Kind: ErrKindDuplicate, Msg: "trophy already granted"}
	ErrNotFound        = &Error{Kind: ErrKindNotFound, Msg: "trophy id not found"}
	ErrSyncOrder       = &Error{Kind: ErrKindSyncOrder, Msg: "time precedes a synchronized trophy"}
	ErrImmutableSynced = &Error{Kind: ErrKindImmutableSynced, Msg: "trophy already synchronized, can't be modified"}
	ErrCapacity        = &Error{Kind: ErrKindCapacity, Msg: "ledger exceeds file entry capacity"}
)

// FormatError wraps a decode failure.
func FormatError(cause error) *Error {
	return &Error{Kind: ErrKindFormat, Msg: ErrFormat.Msg, Err: cause}
}

// IOError wraps a filesystem failure.
func IOError(cause error) *Error {
	return &Error{Kind: ErrKindIO, Msg: ErrIO.Msg, Err: cause}
}

// DuplicateError reports an insert of an id already in the ledger.
func DuplicateError(id int32) *Error {
	return &Error{Kind: ErrKindDuplicate, Msg: fmt.Sprintf("trophy %d already granted", id), TrophyID: id}
}

// NotFoundError reports an operation on an absent id.
func NotFoundError(id int32) *Error {
	return &Error{Kind: ErrKindNotFound, Msg: fmt.Sprintf("trophy %d not found", id), TrophyID: id}
}

// SyncOrderError reports a time that would land before a synchronized entry
// unlocked at conflict.
func SyncOrderError(id int32, conflict time.Time) *Error {
	return &Error{
		Kind: ErrKindSyncOrder,
		Msg: fmt.Sprintf("trophy %d: the last trophy synchronized has date %s, select a later date",
			id, conflict.Format("2006-01-02 15:04:05")),
		TrophyID: id,
		Conflict: conflict,
	}
}

// ImmutableSyncedError reports a change aimed at a synchronized entry.
func ImmutableSyncedError(id int32) *Error {
	return &Error{
		Kind:     ErrKindImmutableSynced,
		Msg:      fmt.Sprintf("trophy %d already synchronized, can't be modified", id),
		TrophyID: id,
	}
}

// CapacityError reports a ledger that does not fit the entry region.
func CapacityError(entries, capacity int) *Error {
	return &Error{
		Kind: ErrKindCapacity,
		Msg:  fmt.Sprintf("ledger holds %d entries, file capacity is %d", entries, capacity),
	}
}
