package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/trophykit/internal/format"
	"github.com/joshuapare/trophykit/internal/testutil"
	"github.com/joshuapare/trophykit/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "snaps"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	clock := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestSnapshotRestore(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()
	path := testutil.WriteTRNS(t, dir, testutil.TRNSImage{TitleID: "NPWR00002_00", Capacity: 4})
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	snap, err := s.Snapshot(dir)
	require.NoError(t, err)
	assert.FileExists(t, snap)

	require.NoError(t, os.WriteFile(path, []byte("clobbered"), 0o644))
	require.NoError(t, s.Restore(snap, dir))

	restored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, restored)

	leftovers, err := filepath.Glob(filepath.Join(dir, format.FileName+".restore-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()
	testutil.WriteTRNS(t, dir, testutil.TRNSImage{Capacity: 2})

	first, err := s.Snapshot(dir)
	require.NoError(t, err)
	second, err := s.Snapshot(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), nil, 0o644))

	snaps, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{second, first}, snaps)

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, second, latest)
}

func TestLatest_Empty(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Latest()
	assert.Equal(t, types.ErrKindIO, types.KindOf(err))
}

func TestSnapshot_MissingSource(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Snapshot(t.TempDir())
	assert.Equal(t, types.ErrKindIO, types.KindOf(err))
}

func TestRead_Rejects(t *testing.T) {
	s := newTestStore(t)

	garbage := filepath.Join(s.Dir(), "TROPTRNS-bad.DAT.zst")
	require.NoError(t, os.WriteFile(garbage, []byte("not zstd"), 0o644))
	_, err := s.Read(garbage)
	assert.Equal(t, types.ErrKindFormat, types.KindOf(err))

	notTRNS := filepath.Join(s.Dir(), "TROPTRNS-plain.DAT.zst")
	require.NoError(t, os.WriteFile(notTRNS, s.encoder.EncodeAll([]byte("hello, world, this is not a header at all......."), nil), 0o644))
	_, err = s.Read(notTRNS)
	assert.Equal(t, types.ErrKindFormat, types.KindOf(err))

	dir := t.TempDir()
	require.Error(t, s.Restore(notTRNS, dir))
	assert.NoFileExists(t, filepath.Join(dir, format.FileName))
}

func TestNewStore_EmptyDir(t *testing.T) {
	_, err := NewStore(" ", nil)
	assert.Error(t, err)
}
