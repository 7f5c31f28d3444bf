package types

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsIsMatchesKind(t *testing.T) {
	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := []struct {
		err    error
		target *Error
		kind   ErrKind
	}{
		{FormatError(errors.New("bad magic")), ErrFormat, ErrKindFormat},
		{IOError(fs.ErrNotExist), ErrIO, ErrKindIO},
		{DuplicateError(3), ErrDuplicate, ErrKindDuplicate},
		{NotFoundError(3), ErrNotFound, ErrKindNotFound},
		{SyncOrderError(3, when), ErrSyncOrder, ErrKindSyncOrder},
		{ImmutableSyncedError(3), ErrImmutableSynced, ErrKindImmutableSynced},
		{CapacityError(10, 5), ErrCapacity, ErrKindCapacity},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.target)
			assert.Equal(t, tc.kind, KindOf(tc.err))
			wrapped := fmt.Errorf("outer: %w", tc.err)
			assert.ErrorIs(t, wrapped, tc.target)
			assert.Equal(t, tc.kind, KindOf(wrapped))
		})
	}
	assert.NotErrorIs(t, DuplicateError(1), ErrNotFound)
}

func TestErrorCarriesDetails(t *testing.T) {
	when := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	err := SyncOrderError(7, when)
	assert.Equal(t, int32(7), err.TrophyID)
	assert.True(t, err.Conflict.Equal(when))
	assert.Contains(t, err.Error(), "2020-01-02 03:04:05")

	io := IOError(fs.ErrNotExist)
	assert.ErrorIs(t, io, fs.ErrNotExist)
	assert.Contains(t, io.Error(), "file does not exist")
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, ErrKind(0), KindOf(errors.New("plain")))
	assert.Equal(t, ErrKind(0), KindOf(nil))
	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}
