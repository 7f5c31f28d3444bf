package trophy

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/joshuapare/trophykit/internal/buf"
	"github.com/joshuapare/trophykit/internal/format"
	"github.com/joshuapare/trophykit/pkg/types"
)

// Save rewrites the backing TROPTRNS.DAT in place and flushes it. It is a
// no-op for the RPCS3 layout.
func (f *File) Save() error {
	if f.rpcs3 {
		return nil
	}
	if f.path == "" {
		return types.IOError(errors.New("file has no backing path"))
	}
	if err := f.checkCapacity(); err != nil {
		return err
	}

	fh, err := os.OpenFile(f.path, os.O_RDWR, 0)
	if err != nil {
		return types.IOError(err)
	}
	defer fh.Close()

	if err := f.Encode(fh); err != nil {
		return err
	}
	if err := flushFile(fh); err != nil {
		return types.IOError(fmt.Errorf("flush %s: %w", f.path, err))
	}
	if err := fh.Close(); err != nil {
		return types.IOError(err)
	}
	f.log.Debug("saved transaction file",
		zap.String("path", f.path),
		zap.Int("entries", f.Ledger.Len()),
		zap.Int32("granted", f.granted),
		zap.Int32("synced", f.synced),
	)
	return nil
}

func (f *File) checkCapacity() error {
	if n, c := f.Ledger.Len(), f.Capacity(); n > c {
		return types.CapacityError(n, c)
	}
	return nil
}

// Encode writes the header, identifiers, counters, initial-time block and
// every entry slot through w at the offsets captured at load. Regions not
// listed here are left untouched, so w must already hold the original file.
func (f *File) Encode(w io.WriterAt) error {
	if f.rpcs3 {
		return types.FormatError(errors.New("rpcs3 layout has no transaction file"))
	}
	if err := f.checkCapacity(); err != nil {
		return err
	}
	acct, err := f.records.Lookup(format.RecordAccount)
	if err != nil {
		return types.FormatError(err)
	}
	title, err := f.records.Lookup(format.RecordTitle)
	if err != nil {
		return types.FormatError(err)
	}
	region, err := f.records.Lookup(format.RecordEntries)
	if err != nil {
		return types.FormatError(err)
	}

	f.Ledger.renumber()
	f.granted = f.Ledger.TotalGranted()
	f.synced = f.Ledger.TotalSynchronized()

	if err := writeAt(w, f.header.Raw[:], 0); err != nil {
		return err
	}
	if err := writeAt(w, f.accountID[:], acct.Offset+format.AccountIDOffset); err != nil {
		return err
	}

	tb := make([]byte, format.TitleBlockSize-format.TitleIDOffset)
	copy(tb, f.titleID[:])
	buf.PutI32BE(tb[format.TitleSentinelOffset-format.TitleIDOffset:], f.sentinel)
	buf.PutI32BE(tb[format.TitleGrantedOffset-format.TitleIDOffset:], f.granted)
	buf.PutI32BE(tb[format.TitleSyncedOffset-format.TitleIDOffset:], f.synced)
	if err := writeAt(w, tb, title.Offset+format.TitleIDOffset); err != nil {
		return err
	}

	if err := writeAt(w, f.initBlock.Raw[:], format.EntrySlotOffset(region.Offset, -1)); err != nil {
		return err
	}

	slot := make([]byte, format.BlockSize)
	for i, e := range f.Ledger.entries {
		if err := e.record().Encode(slot, f.times); err != nil {
			return types.FormatError(err)
		}
		if err := writeAt(w, slot, format.EntrySlotOffset(region.Offset, i)); err != nil {
			return err
		}
	}
	for i := f.Ledger.Len(); i < f.Capacity(); i++ {
		if err := format.PlaceholderEntry(slot, int32(i+1)); err != nil {
			return types.FormatError(err)
		}
		if err := writeAt(w, slot, format.EntrySlotOffset(region.Offset, i)); err != nil {
			return err
		}
	}
	return nil
}

func writeAt(w io.WriterAt, b []byte, off int64) error {
	if _, err := w.WriteAt(b, off); err != nil {
		return types.IOError(fmt.Errorf("write %d bytes at 0x%x: %w", len(b), off, err))
	}
	return nil
}
