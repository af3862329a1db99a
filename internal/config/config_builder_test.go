package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config with nothing set fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, cfg)
}

// TestBuild_DefaultsOnly verifies that the built-in defaults are valid on
// their own.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "outbox.db"}}},
		&StructuredConfig{Workers: Workers{BatchSize: 5}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "outbox.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5, cfg.Workers.BatchSize)
	assert.Equal(t, 300*time.Second, cfg.Interval.BaseSyncInterval)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overridden by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Logger: Logger{Level: "warn"}},
		&StructuredConfig{Logger: Logger{Level: "debug", File: "syncd.log"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "syncd.log", cfg.Logger.File)
}

// TestBuild_ValidationFailure verifies that merged values are validated.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Interval: Interval{MinSyncInterval: 10 * time.Minute},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BaseSyncInterval")
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFile verifies that variables from the .env file are
// visible to withEnv.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), "syncd.env")
	require.NoError(t, os.WriteFile(p, []byte("WORKERS_BATCH_SIZE=42\n"), 0o600))
	t.Setenv(dotEnvPathVar, p)
	t.Cleanup(func() { _ = os.Unsetenv("WORKERS_BATCH_SIZE") })

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 42, b.configs[0].Workers.BatchSize)
}

// TestWithDotEnv_DoesNotOverrideEnv verifies that real environment variables
// win over the .env file.
func TestWithDotEnv_DoesNotOverrideEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "syncd.env")
	require.NoError(t, os.WriteFile(p, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Setenv(dotEnvPathVar, p)
	t.Setenv("LOG_LEVEL", "error")

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "error", b.configs[0].Logger.Level)
}

// TestWithDotEnv_MissingFile verifies that a missing .env file is ignored.
func TestWithDotEnv_MissingFile(t *testing.T) {
	t.Setenv(dotEnvPathVar, filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("INTERVAL_BASE", "4m")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "warn", b.configs[0].Logger.Level)
	assert.Equal(t, 4*time.Minute, b.configs[0].Interval.BaseSyncInterval)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	resetFlags(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.Governor.WarningThreshold = 60
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
	assert.Equal(t, 60.0, b.configs[1].Governor.WarningThreshold)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "last-wins.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins.db", b.configs[2].Storage.DB.DSN)
}

// TestWithJSON_PreservesEarlierError verifies that an error set before
// withJSON is kept.
func TestWithJSON_PreservesEarlierError(t *testing.T) {
	payload := StructuredJSONConfig{}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
}

// ── storage ───────────────────────────────────────────────────────────────────

func TestStorage_Database(t *testing.T) {
	t.Run("defaults under the data dir", func(t *testing.T) {
		s := Storage{Files: Files{DataDir: filepath.Join("var", "syncd")}}

		assert.Equal(t, filepath.Join("var", "syncd", "syncd.db"), s.Database().DSN)
	})

	t.Run("explicit dsn wins", func(t *testing.T) {
		s := Storage{
			DB:    DB{DSN: "postgres://localhost/outbox"},
			Files: Files{DataDir: "data"},
		}

		assert.Equal(t, "postgres://localhost/outbox", s.Database().DSN)
	})

	t.Run("built-in defaults", func(t *testing.T) {
		assert.Equal(t, filepath.Join("data", "syncd.db"), Defaults().Storage.Database().DSN)
	})
}
