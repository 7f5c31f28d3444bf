package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/trophykit/trophy"
)

func newPutCmd(a *app) *cobra.Command {
	var typeFlag, timeFlag string
	cmd := &cobra.Command{
		Use:   "put <id>",
		Short: "Record a new trophy unlock",
		Long: `The put command inserts an unlock for a trophy id. The entry is placed
in time order; placing it before a synchronized entry is refused.

When --type is omitted the tier is taken from TROPCONF.SFM.

Example:
  tropctl put -d ./NPWR00001_00 12
  tropctl put -d ./NPWR00001_00 12 --type gold --time "2021-03-04 18:30:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPut(args[0], typeFlag, timeFlag)
		},
	}
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Trophy tier (P, G, S, B or name)")
	cmd.Flags().StringVar(&timeFlag, "time", "now", "Unlock time (RFC 3339 or YYYY-MM-DD HH:MM:SS)")
	return cmd
}

func (a *app) runPut(arg, typeFlag, timeFlag string) error {
	id, err := parseID(arg)
	if err != nil {
		return fmt.Errorf("invalid trophy id %q: %w", arg, err)
	}
	typ, err := a.resolveType(id, typeFlag)
	if err != nil {
		return err
	}

	var added trophy.Entry
	_, err = a.mutate(func(f *trophy.File) error {
		at, err := parseTime(timeFlag, f.Location(), a.now)
		if err != nil {
			return err
		}
		if err := f.Ledger.PutTrophy(id, typ, at); err != nil {
			return err
		}
		added, _ = f.Ledger.Lookup(id)
		return nil
	})
	if err != nil {
		return err
	}
	a.log.Info("trophy granted", zap.Int32("id", id), zap.Stringer("type", typ), zap.Time("time", added.Time))

	if a.jsonOut {
		return a.printJSON(newEntryView(added, nil))
	}
	a.printf("Granted trophy %d (%s) at %s\n", id, typ, formatTime(added.Time))
	return nil
}

func (a *app) resolveType(id int32, typeFlag string) (trophy.TrophyType, error) {
	if typeFlag != "" {
		return trophy.ParseTrophyType(typeFlag)
	}
	defs, err := a.definitions()
	if err != nil {
		return 0, err
	}
	if defs == nil {
		return 0, fmt.Errorf("trophy %d: --type is required without TROPCONF.SFM", id)
	}
	d, ok := defs.Lookup(id)
	if !ok {
		return 0, fmt.Errorf("trophy %d is not defined in TROPCONF.SFM", id)
	}
	return d.Type()
}
