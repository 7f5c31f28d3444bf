// Package config loads tropctl settings from flags, environment and an
// optional config file through viper.
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix         = "TROPCTL"
	defaultLogLevel   = "warn"
	defaultBackupDir  = "backups"
	maxUTCOffsetHours = 14
)

// Config keys shared by flags, env and files.
const (
	KeyDir           = "dir"
	KeyRPCS3         = "rpcs3"
	KeyUTCOffset     = "utc_offset"
	KeyLogLevel      = "log.level"
	KeyBackupEnabled = "backup.enabled"
	KeyBackupDir     = "backup.dir"
)

// AppConfig captures runtime configuration for tropctl.
type AppConfig struct {
	Dir           string
	RPCS3         bool
	UTCOffset     *time.Duration // nil selects the local standard offset
	LogLevel      string
	BackupEnabled bool
	BackupDir     string
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	v := viper.New()
	ApplyDefaults(v)
	return v
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDir, "")
	v.SetDefault(KeyRPCS3, false)
	v.SetDefault(KeyUTCOffset, "")
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyBackupEnabled, false)
	v.SetDefault(KeyBackupDir, "")
}

// Load parses runtime configuration from viper.
func Load(v *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		Dir:           strings.TrimSpace(v.GetString(KeyDir)),
		RPCS3:         v.GetBool(KeyRPCS3),
		LogLevel:      v.GetString(KeyLogLevel),
		BackupEnabled: v.GetBool(KeyBackupEnabled),
		BackupDir:     strings.TrimSpace(v.GetString(KeyBackupDir)),
	}

	if raw := strings.TrimSpace(v.GetString(KeyUTCOffset)); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return AppConfig{}, fmt.Errorf("%s: %q is not a whole number of hours", KeyUTCOffset, raw)
		}
		off := time.Duration(hours) * time.Hour
		cfg.UTCOffset = &off
	}

	if cfg.BackupEnabled && cfg.BackupDir == "" && cfg.Dir != "" {
		cfg.BackupDir = filepath.Join(cfg.Dir, defaultBackupDir)
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%s is required", KeyDir)
	}
	if c.UTCOffset != nil {
		if h := *c.UTCOffset / time.Hour; h < -maxUTCOffsetHours || h > maxUTCOffsetHours {
			return fmt.Errorf("%s: %d hours is out of range", KeyUTCOffset, h)
		}
	}
	return nil
}
