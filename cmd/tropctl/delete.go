package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/trophykit/trophy"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove the unlock of a trophy",
		Long: `The delete command removes every unsynchronized entry for a trophy id.

Example:
  tropctl delete -d ./NPWR00001_00 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDelete(args[0])
		},
	}
}

func (a *app) runDelete(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return fmt.Errorf("invalid trophy id %q: %w", arg, err)
	}
	f, err := a.mutate(func(f *trophy.File) error {
		return f.Ledger.DeleteTrophy(id)
	})
	if err != nil {
		return err
	}
	if a.jsonOut {
		return a.printJSON(map[string]any{"deleted": id, "entries": f.Ledger.Len()})
	}
	a.printf("Deleted trophy %d\n", id)
	return nil
}
