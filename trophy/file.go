package trophy

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/trophykit/internal/buf"
	"github.com/joshuapare/trophykit/internal/format"
	"github.com/joshuapare/trophykit/internal/mmfile"
	"github.com/joshuapare/trophykit/pkg/types"
)

// Options controls how a trophy directory is opened.
type Options struct {
	// RPCS3 selects the emulator layout, which has no TROPTRNS.DAT. Open
	// returns an empty ledger and Save does nothing.
	RPCS3 bool

	// UTCOffset is the whole-hour offset decoded times are presented in.
	// Nil selects the process-local standard offset.
	UTCOffset *time.Duration

	// Logger receives debug output for load and save. Nil discards it.
	Logger *zap.Logger
}

func (o Options) timeCodec() format.TimeCodec {
	if o.UTCOffset == nil {
		return format.LocalTimeCodec()
	}
	return format.TimeCodec{Offset: o.UTCOffset.Truncate(time.Hour)}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// File is a decoded TROPTRNS.DAT. Region offsets captured at load time are
// reused by Save.
type File struct {
	path  string
	rpcs3 bool
	times format.TimeCodec
	log   *zap.Logger

	header      format.Header
	records     format.RecordTable
	accountID   [format.AccountIDSize]byte
	titleID     [format.TitleIDSize]byte
	sentinel    int32
	granted     int32
	synced      int32
	blockHeader format.BlockHeader
	initBlock   format.InitBlock

	// Ledger holds the unlock entries. Mutate it through its methods only.
	Ledger *Ledger
}

// Open loads <dir>/TROPTRNS.DAT.
func Open(dir string, opts Options) (*File, error) {
	log := opts.logger()
	times := opts.timeCodec()
	if opts.RPCS3 {
		log.Debug("rpcs3 layout, starting with empty ledger", zap.String("dir", dir))
		return &File{
			rpcs3:  true,
			times:  times,
			log:    log,
			Ledger: NewLedger(times.Location()),
		}, nil
	}
	if strings.TrimSpace(dir) == "" {
		return nil, types.IOError(errors.New("trophy directory cannot be empty"))
	}

	path := filepath.Join(dir, format.FileName)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, types.IOError(err)
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			log.Warn("unmap failed", zap.String("path", path), zap.Error(cerr))
		}
	}()

	f, err := decode(data, times)
	if err != nil {
		return nil, err
	}
	f.path = path
	f.log = log
	log.Debug("loaded transaction file",
		zap.String("path", path),
		zap.Int("entries", f.Ledger.Len()),
		zap.Int("capacity", f.Capacity()),
		zap.Int32("synced", f.synced),
	)
	return f, nil
}

// Decode parses a complete TROPTRNS.DAT image. The returned File has no
// backing path; use Encode to write it.
func Decode(data []byte, opts Options) (*File, error) {
	f, err := decode(data, opts.timeCodec())
	if err != nil {
		return nil, err
	}
	f.log = opts.logger()
	return f, nil
}

func decode(data []byte, times format.TimeCodec) (*File, error) {
	hdr, err := format.ParseHeader(data)
	if err != nil {
		return nil, types.FormatError(err)
	}
	records, err := format.ParseRecordTable(data, int(hdr.RecordCount))
	if err != nil {
		return nil, types.FormatError(err)
	}
	f := &File{
		times:   times,
		header:  hdr,
		records: records,
		Ledger:  NewLedger(times.Location()),
	}
	if err := f.decodeAccount(data); err != nil {
		return nil, types.FormatError(err)
	}
	if err := f.decodeTitle(data); err != nil {
		return nil, types.FormatError(err)
	}
	if err := f.decodeEntries(data); err != nil {
		return nil, types.FormatError(err)
	}
	return f, nil
}

func (f *File) decodeAccount(data []byte) error {
	rec, err := f.records.Lookup(format.RecordAccount)
	if err != nil {
		return err
	}
	b, ok := buf.Slice(data, rec.Offset+format.AccountIDOffset, format.AccountIDSize)
	if !ok {
		return fmt.Errorf("account block at 0x%x: %w", rec.Offset, format.ErrTruncated)
	}
	copy(f.accountID[:], b)
	return nil
}

func (f *File) decodeTitle(data []byte) error {
	rec, err := f.records.Lookup(format.RecordTitle)
	if err != nil {
		return err
	}
	b, ok := buf.Slice(data, rec.Offset+format.TitleIDOffset, format.TitleBlockSize-format.TitleIDOffset)
	if !ok {
		return fmt.Errorf("title block at 0x%x: %w", rec.Offset, format.ErrTruncated)
	}
	copy(f.titleID[:], b[:format.TitleIDSize])
	rel := func(off int) []byte { return b[off-format.TitleIDOffset:] }
	f.sentinel = buf.I32BE(rel(format.TitleSentinelOffset))
	f.granted = buf.I32BE(rel(format.TitleGrantedOffset))
	f.synced = buf.I32BE(rel(format.TitleSyncedOffset))
	return nil
}

func (f *File) decodeEntries(data []byte) error {
	rec, err := f.records.Lookup(format.RecordEntries)
	if err != nil {
		return err
	}
	hb, ok := buf.Slice(data, rec.Offset, format.BlockHeaderSize)
	if !ok {
		return fmt.Errorf("entry region at 0x%x: %w", rec.Offset, format.ErrTruncated)
	}
	bh, err := format.DecodeBlockHeader(hb)
	if err != nil {
		return err
	}
	if bh.Size != format.BlockSize {
		return fmt.Errorf("entry region: block size %d: %w", bh.Size, format.ErrBlockSize)
	}
	f.blockHeader = bh

	ib, ok := buf.Slice(data, format.EntrySlotOffset(rec.Offset, -1), format.BlockSize)
	if !ok {
		return fmt.Errorf("initial-time block: %w", format.ErrTruncated)
	}
	if f.initBlock, err = format.DecodeInitBlock(ib); err != nil {
		return err
	}

	n := max(int(f.granted)-1, 0)
	if n > f.Capacity() {
		return fmt.Errorf("%d entries in a region of %d: %w", n, f.Capacity(), format.ErrCapacity)
	}
	if _, err := buf.CheckTableBounds(len(data), rec.Offset+format.BlockStride, n, format.BlockStride); err != nil {
		return fmt.Errorf("entry table: %w: %w", format.ErrTruncated, err)
	}
	for i := range n {
		b, _ := buf.Slice(data, format.EntrySlotOffset(rec.Offset, i), format.BlockSize)
		er, err := format.DecodeEntry(b, f.times)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		f.Ledger.appendLoaded(entryFromRecord(er))
	}
	return nil
}

// Path returns the backing file path, empty for RPCS3 or decoded images.
func (f *File) Path() string { return f.path }

// RPCS3 reports whether the file was opened in the emulator layout.
func (f *File) RPCS3() bool { return f.rpcs3 }

// AccountID returns the account identifier with trailing NULs removed.
func (f *File) AccountID() string { return decodeIdentifier(f.accountID[:]) }

// TitleID returns the title identifier with trailing NULs removed.
func (f *File) TitleID() string { return decodeIdentifier(f.titleID[:]) }

// InitTime returns the timestamp embedded in the initial-time block.
func (f *File) InitTime() time.Time { return f.initBlock.Time(f.times) }

// Location returns the zone decoded times are presented in.
func (f *File) Location() *time.Location { return f.times.Location() }

// Capacity returns the number of entry slots in the file, 0 for RPCS3.
func (f *File) Capacity() int {
	rec, ok := f.records[format.RecordEntries]
	if !ok || rec.Size < 0 {
		return 0
	}
	return int(rec.Size)
}

// LoadedCounts returns the granted and synchronized counters as read from
// disk. Save recomputes them from the ledger.
func (f *File) LoadedCounts() (granted, synced int32) { return f.granted, f.synced }

// RecordCount returns the header's type record count.
func (f *File) RecordCount() int32 { return f.header.RecordCount }

// HeaderPadding returns a copy of the opaque header padding.
func (f *File) HeaderPadding() []byte { return bytes.Clone(f.header.Padding()) }

// Records returns the type records ordered by id.
func (f *File) Records() []format.TypeRecord {
	out := make([]format.TypeRecord, 0, len(f.records))
	for _, id := range f.records.IDs() {
		out = append(out, f.records[id])
	}
	return out
}

// decodeIdentifier renders a fixed-width text field. Invalid UTF-8 is
// replaced rather than rejected since the bytes are written back verbatim.
func decodeIdentifier(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
