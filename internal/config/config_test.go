package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IMPROVE365_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "", cfg.Storage.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.Store.AddDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.Store.DeleteDelay)
	assert.Equal(t, "local", cfg.Identity.Provider)
	assert.Equal(t, "5 0 * * *", cfg.Scheduler.StreakCron)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
storage:
  driver: memory
server:
  addr: "127.0.0.1:9000"
log:
  level: debug
  format: console
store:
  add_delay: 1s
`)
	t.Setenv("IMPROVE365_ADDR", ":7000")
	t.Setenv("IMPROVE365_DELETE_DELAY", "50ms")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, time.Second, cfg.Store.AddDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.Store.DeleteDelay)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeYAML(t, "storage:\n  driver: memory\n")
	t.Setenv("IMPROVE365_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, "storage: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"driver normalized", func(c *Config) { c.Storage.Driver = " SQLite " }, false},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }, true},
		{"mongo without db", func(c *Config) { c.Storage.Driver = "mongo"; c.Storage.MongoDB = "" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"negative delay", func(c *Config) { c.Store.AddDelay = -time.Second }, true},
		{"firestore without project", func(c *Config) { c.Identity.Provider = "firestore" }, true},
		{"firestore configured", func(c *Config) {
			c.Identity.Provider = "firestore"
			c.Identity.FirestoreProject = "improve365"
			c.Identity.FirestoreUserID = "uid-1"
		}, false},
		{"bad cron", func(c *Config) { c.Scheduler.StreakCron = "every day" }, true},
		{"cron disabled", func(c *Config) { c.Scheduler.StreakCron = "" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
