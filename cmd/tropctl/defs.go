package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newDefsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defs",
		Short: "List trophy definitions with unlock status",
		Long: `The defs command reads TROPCONF.SFM and prints every trophy definition,
marking the ones present in the ledger.

Example:
  tropctl defs -d ./NPWR00001_00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDefs()
		},
	}
}

type defView struct {
	ID       int32  `json:"id"`
	Type     string `json:"type"`
	Hidden   bool   `json:"hidden"`
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Unlocked bool   `json:"unlocked"`
}

func (a *app) runDefs() error {
	defs, err := a.definitions()
	if err != nil {
		return err
	}
	if defs == nil {
		return errors.New("no TROPCONF.SFM in trophy directory")
	}
	f, err := a.open()
	if err != nil {
		return err
	}

	views := make([]defView, 0, len(defs.Trophies))
	for _, d := range defs.Trophies {
		_, unlocked := f.Ledger.Lookup(d.ID)
		views = append(views, defView{
			ID:       d.ID,
			Type:     d.TType,
			Hidden:   d.IsHidden(),
			Name:     d.Name,
			Detail:   d.Detail,
			Unlocked: unlocked,
		})
	}

	if a.jsonOut {
		return a.printJSON(map[string]any{
			"npcommid":    defs.NPCommID,
			"title":       defs.TitleName,
			"hasPlatinum": defs.HasPlatinum(),
			"trophies":    views,
		})
	}
	a.printf("%s  %s\n", defs.NPCommID, defs.TitleName)
	for _, v := range views {
		mark := " "
		if v.Unlocked {
			mark = "*"
		}
		a.printf("%s %3d  %s  %s\n", mark, v.ID, v.Type, v.Name)
	}
	return nil
}
