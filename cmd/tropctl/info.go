package main

import (
	"encoding/hex"
	"time"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show file header, identifiers and counters",
		Long: `The info command prints the account and title identifiers, the
granted and synchronized counters, entry capacity and the type record table.

Example:
  tropctl info -d ./NPWR00001_00
  tropctl info -d ./NPWR00001_00 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInfo()
		},
	}
}

type recordView struct {
	ID        int32 `json:"id"`
	Size      int32 `json:"size"`
	UsedTimes int32 `json:"usedTimes"`
	Offset    int64 `json:"offset"`
}

type infoView struct {
	Path             string       `json:"path,omitempty"`
	RPCS3            bool         `json:"rpcs3"`
	AccountID        string       `json:"accountId"`
	TitleID          string       `json:"titleId"`
	InitTime         time.Time    `json:"initTime"`
	Entries          int          `json:"entries"`
	Capacity         int          `json:"capacity"`
	Granted          int32        `json:"granted"`
	Synchronized     int32        `json:"synchronized"`
	LastSynchronized time.Time    `json:"lastSynchronized"`
	LastUnlock       time.Time    `json:"lastUnlock"`
	HeaderPadding    string       `json:"headerPadding"`
	Records          []recordView `json:"records"`
}

func (a *app) runInfo() error {
	f, err := a.open()
	if err != nil {
		return err
	}
	granted, synced := f.LoadedCounts()
	if f.RPCS3() {
		granted, synced = f.Ledger.TotalGranted(), f.Ledger.TotalSynchronized()
	}
	view := infoView{
		Path:             f.Path(),
		RPCS3:            f.RPCS3(),
		AccountID:        f.AccountID(),
		TitleID:          f.TitleID(),
		InitTime:         f.InitTime(),
		Entries:          f.Ledger.Len(),
		Capacity:         f.Capacity(),
		Granted:          granted,
		Synchronized:     synced,
		LastSynchronized: f.Ledger.LastSynchronizedTime(),
		LastUnlock:       f.Ledger.LastUnlockTime(),
		HeaderPadding:    hex.EncodeToString(f.HeaderPadding()),
	}
	for _, r := range f.Records() {
		view.Records = append(view.Records, recordView{ID: r.ID, Size: r.Size, UsedTimes: r.UsedTimes, Offset: r.Offset})
	}

	if a.jsonOut {
		return a.printJSON(view)
	}
	a.printf("File:              %s\n", view.Path)
	a.printf("Account:           %s\n", view.AccountID)
	a.printf("Title:             %s\n", view.TitleID)
	a.printf("Initial time:      %s\n", formatTime(view.InitTime))
	a.printf("Entries:           %d of %d\n", view.Entries, view.Capacity)
	a.printf("Granted counter:   %d\n", view.Granted)
	a.printf("Synced counter:    %d\n", view.Synchronized)
	a.printf("Last synchronized: %s\n", formatTime(view.LastSynchronized))
	a.printf("Last unlock:       %s\n", formatTime(view.LastUnlock))
	a.printf("Header padding:    %s\n", view.HeaderPadding)
	for _, r := range f.Records() {
		a.printf("Record             %s\n", r)
	}
	return nil
}
