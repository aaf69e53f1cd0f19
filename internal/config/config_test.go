package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing values", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: the remaining fields use their defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, InterfaceTUI, conf.Interface)
		assert.Equal(t, "1000", conf.Trainer.Episodes)
		assert.InDelta(t, 0.5, conf.Trainer.LearningRate, 1e-9)
		assert.InDelta(t, 0.1, conf.Trainer.ExplorationRate, 1e-9)
		assert.Equal(t, 10, conf.Trainer.ReportEvery)
		assert.Equal(t, 300*time.Millisecond, conf.TUI.ReplayDelay)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		// Given: a full config file
		path := writeConfig(t, `
interface: console
trainer:
  episodes: "250"
  learning-rate: 0.3
  exploration-rate: 0.2
redis:
  enabled: true
  host: redis
  port: "6380"
sqlite-storage-path: runs.db
report-path: report.html
tui:
  replay-delay: 50ms
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: every section is populated
		assert.Equal(t, InterfaceConsole, conf.Interface)
		assert.Equal(t, "250", conf.Trainer.Episodes)
		assert.InDelta(t, 0.3, conf.Trainer.LearningRate, 1e-9)
		assert.InDelta(t, 0.2, conf.Trainer.ExplorationRate, 1e-9)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "runs.db", conf.SQLiteStoragePath)
		assert.Equal(t, "report.html", conf.ReportPath)
		assert.Equal(t, 50*time.Millisecond, conf.TUI.ReplayDelay)
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
