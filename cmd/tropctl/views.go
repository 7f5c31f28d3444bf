package main

import (
	"strconv"
	"time"

	"github.com/joshuapare/trophykit/trophy"
	"github.com/joshuapare/trophykit/trophy/conf"
)

const displayLayout = "2006-01-02 15:04:05 -07:00"

type entryView struct {
	Sequence     int32     `json:"sequence"`
	ID           int32     `json:"id"`
	Type         string    `json:"type"`
	Points       int       `json:"points"`
	Synchronized bool      `json:"synchronized"`
	Time         time.Time `json:"time"`
	Name         string    `json:"name,omitempty"`
}

func newEntryView(e trophy.Entry, defs *conf.Definitions) entryView {
	v := entryView{
		Sequence:     e.Sequence,
		ID:           e.ID,
		Type:         e.Type.String(),
		Points:       e.Type.Points(),
		Synchronized: e.Synchronized,
		Time:         e.Time,
	}
	if defs != nil {
		if d, ok := defs.Lookup(e.ID); ok {
			v.Name = d.Name
		}
	}
	return v
}

func (a *app) printEntry(v entryView) {
	synced := " "
	if v.Synchronized {
		synced = "S"
	}
	a.printf("%4d  %3d  %-8s  %s  %s", v.Sequence, v.ID, v.Type, synced, formatTime(v.Time))
	if v.Name != "" {
		a.printf("  %s", v.Name)
	}
	a.printf("\n")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(displayLayout)
}

func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}
