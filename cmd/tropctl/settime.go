package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/trophykit/trophy"
)

func newSetTimeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "settime <id> <time>",
		Short: "Change the unlock time of a trophy",
		Long: `The settime command moves an unsynchronized unlock to a new time,
repositioning it in the ledger. Times without a zone are read in the
configured UTC offset.

Example:
  tropctl settime -d ./NPWR00001_00 12 "2021-03-04 18:30:00"
  tropctl settime -d ./NPWR00001_00 12 2021-03-04T18:30:00+09:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetTime(args[0], args[1])
		},
	}
}

func (a *app) runSetTime(idArg, timeArg string) error {
	id, err := parseID(idArg)
	if err != nil {
		return fmt.Errorf("invalid trophy id %q: %w", idArg, err)
	}
	var moved trophy.Entry
	_, err = a.mutate(func(f *trophy.File) error {
		at, err := parseTime(timeArg, f.Location(), a.now)
		if err != nil {
			return err
		}
		if err := f.Ledger.ChangeTime(id, at); err != nil {
			return err
		}
		moved, _ = f.Ledger.Lookup(id)
		return nil
	})
	if err != nil {
		return err
	}
	if a.jsonOut {
		return a.printJSON(newEntryView(moved, nil))
	}
	a.printf("Trophy %d now unlocked at %s\n", id, formatTime(moved.Time))
	return nil
}
