package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/trophykit/trophy"
)

func newPopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pop",
		Short: "Remove the most recent unlock",
		Long: `The pop command removes the last entry of the ledger unless it is
synchronized.

Example:
  tropctl pop -d ./NPWR00001_00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPop()
		},
	}
}

func (a *app) runPop() error {
	var popped trophy.Entry
	_, err := a.mutate(func(f *trophy.File) error {
		e, ok := f.Ledger.PopTrophy()
		if !ok {
			return errors.New("nothing to pop: ledger is empty or its last entry is synchronized")
		}
		popped = e
		return nil
	})
	if err != nil {
		return err
	}
	if a.jsonOut {
		return a.printJSON(newEntryView(popped, nil))
	}
	a.printf("Removed trophy %d (%s)\n", popped.ID, popped.Type)
	return nil
}
