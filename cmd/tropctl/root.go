package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/joshuapare/trophykit/internal/backup"
	"github.com/joshuapare/trophykit/internal/config"
	"github.com/joshuapare/trophykit/internal/logging"
	"github.com/joshuapare/trophykit/pkg/types"
	"github.com/joshuapare/trophykit/trophy"
	"github.com/joshuapare/trophykit/trophy/conf"
)

// app carries per-invocation state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	jsonOut bool
	quiet   bool

	cfg config.AppConfig
	log *zap.Logger
	out io.Writer
	now func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), log: zap.NewNop(), out: os.Stdout, now: time.Now}

	root := &cobra.Command{
		Use:   "tropctl",
		Short: "Inspect and edit PlayStation trophy transaction files",
		Long: `tropctl reads and rewrites TROPTRNS.DAT, the ordered ledger of trophy
unlocks kept in a trophy directory. Entries already synchronized with the
remote service are never reordered, retimed or removed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			return a.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Path to configuration file")
	flags.StringP("dir", "d", "", "Trophy directory holding TROPTRNS.DAT")
	flags.Bool("rpcs3", false, "Use the RPCS3 emulator layout")
	flags.String("utc-offset", "", "Whole-hour UTC offset for times (default: local standard offset)")
	flags.String("log-level", a.v.GetString(config.KeyLogLevel), "Log level (debug, info, warn, error)")
	flags.Bool("backup", false, "Snapshot TROPTRNS.DAT before every change")
	flags.String("backup-dir", "", "Snapshot directory (default: <dir>/backups)")
	flags.BoolVar(&a.jsonOut, "json", false, "Output in JSON format")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Suppress all output except errors")

	a.bindFlag(root, config.KeyDir, "dir")
	a.bindFlag(root, config.KeyRPCS3, "rpcs3")
	a.bindFlag(root, config.KeyUTCOffset, "utc-offset")
	a.bindFlag(root, config.KeyLogLevel, "log-level")
	a.bindFlag(root, config.KeyBackupEnabled, "backup")
	a.bindFlag(root, config.KeyBackupDir, "backup-dir")

	root.AddCommand(
		newInfoCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newPutCmd(a),
		newPopCmd(a),
		newSetTimeCmd(a),
		newDeleteCmd(a),
		newSyncCmd(a),
		newDefsCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) bindFlag(cmd *cobra.Command, key, flag string) {
	if err := a.v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("tropctl")
		a.v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(dir, "tropctl"))
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log
	return nil
}

func execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps typed errors onto distinct process exit codes.
func exitCode(err error) int {
	switch types.KindOf(err) {
	case types.ErrKindFormat:
		return 3
	case types.ErrKindIO:
		return 4
	case 0:
		return 1
	default:
		return 2
	}
}

func (a *app) options() trophy.Options {
	return trophy.Options{RPCS3: a.cfg.RPCS3, UTCOffset: a.cfg.UTCOffset, Logger: a.log}
}

func (a *app) open() (*trophy.File, error) {
	return trophy.Open(a.cfg.Dir, a.options())
}

// definitions loads TROPCONF.SFM when present. A missing file is not an error.
func (a *app) definitions() (*conf.Definitions, error) {
	defs, err := conf.Open(a.cfg.Dir, a.cfg.RPCS3)
	if err == nil {
		return defs, nil
	}
	if types.KindOf(err) == types.ErrKindIO {
		a.log.Debug("no trophy definitions", zap.Error(err))
		return nil, nil
	}
	return nil, err
}

func (a *app) backupStore() (*backup.Store, error) {
	dir := a.cfg.BackupDir
	if dir == "" {
		dir = filepath.Join(a.cfg.Dir, "backups")
	}
	return backup.NewStore(dir, a.log)
}

// mutate opens the file, applies fn to its ledger, snapshots the original
// when backups are enabled, then saves.
func (a *app) mutate(fn func(f *trophy.File) error) (*trophy.File, error) {
	f, err := a.open()
	if err != nil {
		return nil, err
	}
	if err := fn(f); err != nil {
		return nil, err
	}
	if a.cfg.BackupEnabled && !f.RPCS3() {
		store, err := a.backupStore()
		if err != nil {
			return nil, err
		}
		defer store.Close()
		snap, err := store.Snapshot(a.cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("snapshot before save: %w", err)
		}
		a.log.Info("snapshot taken", zap.String("path", snap))
	}
	if err := f.Save(); err != nil {
		return nil, err
	}
	return f, nil
}

func (a *app) printf(format string, args ...any) {
	if !a.quiet {
		fmt.Fprintf(a.out, format, args...)
	}
}

func (a *app) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s\n", data)
	return err
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime accepts "now", RFC 3339, or a zone-less layout read in loc.
func parseTime(s string, loc *time.Location, now func() time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "now") {
		return now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use RFC 3339 or YYYY-MM-DD HH:MM:SS)", s)
}
