package trophy

import (
	"slices"
	"time"

	"github.com/joshuapare/trophykit/pkg/types"
)

// Ledger is the ordered collection of unlock entries for one title.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Ledger struct {
	entries []Entry
	loc     *time.Location
}

// NewLedger returns an empty ledger whose baseline times use loc (UTC when nil).
func NewLedger(loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.UTC
	}
	return &Ledger{loc: loc}
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns a copy of the entries in ledger order.
func (l *Ledger) Entries() []Entry {
	return slices.Clone(l.entries)
}

// TotalGranted is the granted counter as stored on disk: entries + 1.
func (l *Ledger) TotalGranted() int32 {
	return int32(len(l.entries)) + 1
}

// TotalSynchronized is the synchronized counter as stored on disk:
// synchronized entries + 1.
func (l *Ledger) TotalSynchronized() int32 {
	n := int32(1)
	for _, e := range l.entries {
		if e.Synchronized {
			n++
		}
	}
	return n
}

// Baseline is the floor for LastSynchronizedTime and LastUnlockTime.
func (l *Ledger) Baseline() time.Time {
	return time.Date(2008, time.January, 1, 0, 0, 0, 0, l.loc)
}

// LastSynchronizedTime returns the latest unlock time among synchronized
// entries, or Baseline when there is none later.
func (l *Ledger) LastSynchronizedTime() time.Time {
	latest := l.Baseline()
	for _, e := range l.entries {
		if e.Synchronized && e.Time.After(latest) {
			latest = e.Time
		}
	}
	return latest
}

// LastUnlockTime returns the latest unlock time, or Baseline when there is
// none later.
func (l *Ledger) LastUnlockTime() time.Time {
	latest := l.Baseline()
	for _, e := range l.entries {
		if e.Time.After(latest) {
			latest = e.Time
		}
	}
	return latest
}

// Lookup returns the first entry with the given trophy id.
func (l *Ledger) Lookup(id int32) (Entry, bool) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return l.entries[i], true
}

func (l *Ledger) index(id int32) int {
	return slices.IndexFunc(l.entries, func(e Entry) bool { return e.ID == id })
}

// insertionPoint returns where an entry unlocked at t belongs: before the
// first entry strictly later than t, or at the end. skip excludes one index
// from the scan and the result is expressed as if that entry were removed.
// It fails when the first later entry is synchronized.
func (l *Ledger) insertionPoint(id int32, t time.Time, skip int) (int, error) {
	pos := 0
	for i, e := range l.entries {
		if i == skip {
			continue
		}
		if e.Time.After(t) {
			if e.Synchronized {
				return 0, types.SyncOrderError(id, e.Time)
			}
			return pos, nil
		}
		pos++
	}
	return pos, nil
}

// normalize reduces t to what the file can hold: whole microseconds,
// presented in the ledger's zone.
func (l *Ledger) normalize(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.Truncate(time.Microsecond).In(l.loc)
}

// PutTrophy records a new unlock of id at t. The stored time is truncated to
// microseconds.
func (l *Ledger) PutTrophy(id int32, typ TrophyType, t time.Time) error {
	if l.index(id) >= 0 {
		return types.DuplicateError(id)
	}
	t = l.normalize(t)
	pos, err := l.insertionPoint(id, t, -1)
	if err != nil {
		return err
	}
	l.entries = slices.Insert(l.entries, pos, newEntry(id, typ, t))
	return nil
}

// PopTrophy removes and returns the last entry. It returns false when the
// ledger is empty or the last entry is synchronized.
func (l *Ledger) PopTrophy() (Entry, bool) {
	n := len(l.entries)
	if n == 0 {
		return Entry{}, false
	}
	last := l.entries[n-1]
	if last.Synchronized {
		return Entry{}, false
	}
	l.entries = l.entries[:n-1]
	return last, true
}

// ChangeTime moves the unlock of id to t, repositioning it to keep the
// ledger ordered.
func (l *Ledger) ChangeTime(id int32, t time.Time) error {
	i := l.index(id)
	if i < 0 {
		return types.NotFoundError(id)
	}
	if l.entries[i].Synchronized {
		return types.ImmutableSyncedError(id)
	}
	t = l.normalize(t)
	pos, err := l.insertionPoint(id, t, i)
	if err != nil {
		return err
	}
	e := l.entries[i]
	e.Time = t
	l.entries = slices.Delete(l.entries, i, i+1)
	l.entries = slices.Insert(l.entries, pos, e)
	return nil
}

// DeleteTrophy removes every entry for id. Nothing is removed when any of
// them is synchronized.
func (l *Ledger) DeleteTrophy(id int32) error {
	found := false
	for _, e := range l.entries {
		if e.ID != id {
			continue
		}
		if e.Synchronized {
			return types.ImmutableSyncedError(id)
		}
		found = true
	}
	if !found {
		return types.NotFoundError(id)
	}
	l.entries = slices.DeleteFunc(l.entries, func(e Entry) bool { return e.ID == id })
	return nil
}

// MarkSynchronized flags id as acknowledged by the remote service. Every
// earlier entry must already be synchronized so synchronized entries stay a
// prefix of the ledger.
func (l *Ledger) MarkSynchronized(id int32) error {
	i := l.index(id)
	if i < 0 {
		return types.NotFoundError(id)
	}
	if l.entries[i].Synchronized {
		return nil
	}
	for _, e := range l.entries[:i] {
		if !e.Synchronized {
			return types.SyncOrderError(id, e.Time)
		}
	}
	l.entries[i].Synchronized = true
	return nil
}

// renumber assigns sequence numbers 1..N by position and clears the
// secondary counter, as a save does.
func (l *Ledger) renumber() {
	for i := range l.entries {
		l.entries[i].Sequence = int32(i + 1)
		l.entries[i].secondary = 0
	}
}

func (l *Ledger) appendLoaded(e Entry) {
	l.entries = append(l.entries, e)
}
