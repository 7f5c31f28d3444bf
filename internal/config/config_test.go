package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := NewViper()
	v.Set(KeyDir, "/data/NPWR00001_00")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/data/NPWR00001_00", cfg.Dir)
	assert.False(t, cfg.RPCS3)
	assert.Nil(t, cfg.UTCOffset)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.BackupEnabled)
	assert.Empty(t, cfg.BackupDir)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TROPCTL_DIR", "/trophies/a")
	t.Setenv("TROPCTL_UTC_OFFSET", "+9")
	t.Setenv("TROPCTL_BACKUP_ENABLED", "true")
	t.Setenv("TROPCTL_LOG_LEVEL", "debug")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "/trophies/a", cfg.Dir)
	require.NotNil(t, cfg.UTCOffset)
	assert.Equal(t, 9*time.Hour, *cfg.UTCOffset)
	assert.True(t, cfg.BackupEnabled)
	assert.Equal(t, filepath.Join("/trophies/a", "backups"), cfg.BackupDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
	}{
		{"missing dir", map[string]any{}},
		{"fractional offset", map[string]any{KeyDir: "x", KeyUTCOffset: "5.5"}},
		{"offset out of range", map[string]any{KeyDir: "x", KeyUTCOffset: "20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViper()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}

func TestLoad_NegativeOffset(t *testing.T) {
	v := NewViper()
	v.Set(KeyDir, "x")
	v.Set(KeyUTCOffset, "-5")
	cfg, err := Load(v)
	require.NoError(t, err)
	require.NotNil(t, cfg.UTCOffset)
	assert.Equal(t, -5*time.Hour, *cfg.UTCOffset)
}
