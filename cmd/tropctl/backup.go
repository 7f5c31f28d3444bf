package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBackupCmd(a *app) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot TROPTRNS.DAT or list snapshots",
		Long: `The backup command writes a zstd-compressed copy of TROPTRNS.DAT into
the backup directory.

Example:
  tropctl backup -d ./NPWR00001_00
  tropctl backup -d ./NPWR00001_00 --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBackup(list)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "List existing snapshots, newest first")
	return cmd
}

func (a *app) runBackup(list bool) error {
	store, err := a.backupStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if list {
		snaps, err := store.List()
		if err != nil {
			return err
		}
		if a.jsonOut {
			return a.printJSON(snaps)
		}
		for _, s := range snaps {
			a.printf("%s\n", filepath.Base(s))
		}
		return nil
	}

	snap, err := store.Snapshot(a.cfg.Dir)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return a.printJSON(map[string]string{"snapshot": snap})
	}
	a.printf("Snapshot written: %s\n", snap)
	return nil
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [snapshot]",
		Short: "Restore TROPTRNS.DAT from a snapshot",
		Long: `The restore command replaces TROPTRNS.DAT with a snapshot. Without an
argument the newest snapshot is used. A bare file name is looked up in the
backup directory.

Example:
  tropctl restore -d ./NPWR00001_00
  tropctl restore -d ./NPWR00001_00 TROPTRNS-20240601T120000.000000000.DAT.zst`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRestore(args)
		},
	}
}

func (a *app) runRestore(args []string) error {
	store, err := a.backupStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var snap string
	if len(args) == 1 {
		snap = args[0]
		if filepath.Base(snap) == snap {
			snap = filepath.Join(store.Dir(), snap)
		}
	} else if snap, err = store.Latest(); err != nil {
		return err
	}

	if err := store.Restore(snap, a.cfg.Dir); err != nil {
		return err
	}
	a.log.Info("restored", zap.String("snapshot", snap))
	if a.jsonOut {
		return a.printJSON(map[string]string{"restored": snap})
	}
	a.printf("Restored %s\n", filepath.Base(snap))
	return nil
}
