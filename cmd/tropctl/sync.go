package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/trophykit/trophy"
)

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <id>",
		Short: "Mark an unlock as synchronized",
		Long: `The sync command flags an entry as acknowledged by the remote service.
Every earlier entry must already be synchronized. Synchronized entries can no
longer be changed by tropctl.

Example:
  tropctl sync -d ./NPWR00001_00 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSync(args[0])
		},
	}
}

func (a *app) runSync(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return fmt.Errorf("invalid trophy id %q: %w", arg, err)
	}
	f, err := a.mutate(func(f *trophy.File) error {
		return f.Ledger.MarkSynchronized(id)
	})
	if err != nil {
		return err
	}
	if a.jsonOut {
		return a.printJSON(map[string]any{"synchronized": id, "total": f.Ledger.TotalSynchronized()})
	}
	a.printf("Trophy %d marked synchronized\n", id)
	return nil
}
