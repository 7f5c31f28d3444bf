package main

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var names bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List trophy unlock entries in ledger order",
		Long: `The list command prints every entry with its sequence number, trophy id,
tier, synchronized marker (S) and unlock time.

Example:
  tropctl list -d ./NPWR00001_00
  tropctl list -d ./NPWR00001_00 --names`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(names)
		},
	}
	cmd.Flags().BoolVar(&names, "names", false, "Annotate entries with names from TROPCONF.SFM")
	return cmd
}

func (a *app) runList(names bool) error {
	f, err := a.open()
	if err != nil {
		return err
	}
	views := make([]entryView, 0, f.Ledger.Len())
	if names {
		defs, err := a.definitions()
		if err != nil {
			return err
		}
		for _, e := range f.Ledger.Entries() {
			views = append(views, newEntryView(e, defs))
		}
	} else {
		for _, e := range f.Ledger.Entries() {
			views = append(views, newEntryView(e, nil))
		}
	}

	if a.jsonOut {
		return a.printJSON(views)
	}
	if len(views) == 0 {
		a.printf("No entries\n")
		return nil
	}
	a.printf(" SEQ   ID  TYPE      S  TIME\n")
	for _, v := range views {
		a.printEntry(v)
	}
	return nil
}
