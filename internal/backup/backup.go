// Package backup keeps zstd-compressed snapshots of TROPTRNS.DAT so a bad
// edit can be rolled back.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/joshuapare/trophykit/internal/format"
	"github.com/joshuapare/trophykit/pkg/types"
)

const (
	snapshotPrefix = "TROPTRNS-"
	snapshotSuffix = ".DAT.zst"
	stampLayout    = "20060102T150405.000000000"
)

// Store writes and reads snapshots in one directory.
type Store struct {
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	log     *zap.Logger
	now     func() time.Time
}

// NewStore returns a store rooted at dir, creating it when needed.
func NewStore(dir string, log *zap.Logger) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("backup directory cannot be empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, types.IOError(err)
	}
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &Store{dir: dir, encoder: encoder, decoder: decoder, log: log, now: time.Now}, nil
}

// Close releases the codec resources.
func (s *Store) Close() error {
	s.decoder.Close()
	return s.encoder.Close()
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string { return s.dir }

// Snapshot compresses <trophyDir>/TROPTRNS.DAT into a new snapshot and
// returns its path.
func (s *Store) Snapshot(trophyDir string) (string, error) {
	src := filepath.Join(trophyDir, format.FileName)
	data, err := os.ReadFile(src)
	if err != nil {
		return "", types.IOError(err)
	}
	name := snapshotPrefix + s.now().UTC().Format(stampLayout) + snapshotSuffix
	dst := filepath.Join(s.dir, name)

	compressed := s.encoder.EncodeAll(data, make([]byte, 0, len(data)/2))
	if err := os.WriteFile(dst, compressed, 0o644); err != nil {
		return "", types.IOError(err)
	}
	s.log.Debug("snapshot written",
		zap.String("source", src),
		zap.String("snapshot", dst),
		zap.Int("bytes", len(data)),
		zap.Int("compressed", len(compressed)),
	)
	return dst, nil
}

// List returns snapshot paths, newest first.
func (s *Store) List() ([]string, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, types.IOError(err)
	}
	var out []string
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, snapshotPrefix) || !strings.HasSuffix(name, snapshotSuffix) {
			continue
		}
		out = append(out, filepath.Join(s.dir, name))
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out, nil
}

// Latest returns the newest snapshot path.
func (s *Store) Latest() (string, error) {
	snaps, err := s.List()
	if err != nil {
		return "", err
	}
	if len(snaps) == 0 {
		return "", types.IOError(fmt.Errorf("no snapshots in %s", s.dir))
	}
	return snaps[0], nil
}

// Read decompresses a snapshot and checks that it holds a transaction file.
func (s *Store) Read(snapshot string) ([]byte, error) {
	compressed, err := os.ReadFile(snapshot)
	if err != nil {
		return nil, types.IOError(err)
	}
	data, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, types.FormatError(fmt.Errorf("%s: %w", filepath.Base(snapshot), err))
	}
	if _, err := format.ParseHeader(data); err != nil {
		return nil, types.FormatError(fmt.Errorf("%s: %w", filepath.Base(snapshot), err))
	}
	return data, nil
}

// Restore replaces <trophyDir>/TROPTRNS.DAT with the snapshot contents. The
// file is swapped in by rename so a failed restore leaves the original.
func (s *Store) Restore(snapshot, trophyDir string) error {
	data, err := s.Read(snapshot)
	if err != nil {
		return err
	}
	dst := filepath.Join(trophyDir, format.FileName)
	tmp, err := os.CreateTemp(trophyDir, format.FileName+".restore-*")
	if err != nil {
		return types.IOError(err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return types.IOError(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return types.IOError(err)
	}
	if err := tmp.Close(); err != nil {
		return types.IOError(err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return types.IOError(err)
	}
	s.log.Debug("snapshot restored", zap.String("snapshot", snapshot), zap.String("target", dst))
	return nil
}
