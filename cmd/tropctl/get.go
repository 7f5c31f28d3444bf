package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/trophykit/pkg/types"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show the entry for one trophy id",
		Long: `The get command prints a single entry.

Example:
  tropctl get -d ./NPWR00001_00 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(args[0])
		},
	}
}

func (a *app) runGet(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return fmt.Errorf("invalid trophy id %q: %w", arg, err)
	}
	f, err := a.open()
	if err != nil {
		return err
	}
	e, ok := f.Ledger.Lookup(id)
	if !ok {
		return types.NotFoundError(id)
	}
	defs, err := a.definitions()
	if err != nil {
		return err
	}
	v := newEntryView(e, defs)
	if a.jsonOut {
		return a.printJSON(v)
	}
	a.printEntry(v)
	return nil
}
