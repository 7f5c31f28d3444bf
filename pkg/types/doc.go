// Package types defines the public error categories returned by trophykit.
//
// Errors are *Error values tagged with an ErrKind so callers branch on the
// variant rather than on message text:
//
//	switch types.KindOf(err) {
//	case types.ErrKindSyncOrder:
//	    // pick a later time than err.(*types.Error).Conflict
//	case types.ErrKindDuplicate:
//	    // already granted
//	}
//
// errors.Is matches on kind, so errors.Is(err, types.ErrSyncOrder) works for
// any sync-order failure regardless of trophy id or conflicting time.
//
// This package has no dependencies beyond the standard library.
package types
