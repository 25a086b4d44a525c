package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotbb/internal/nds"
)

// clearEnv blanks every variable for the duration of the test
func clearEnv(t *testing.T) {
	for _, key := range []string{EnvFcPerp, EnvFireRating, EnvLogLevel, EnvReportAuthor, EnvProject} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFcPerp, cfg.FcPerp)
	assert.Equal(t, nds.ZeroHour, cfg.FireRating)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ReportAuthor)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFcPerp, "625")
	t.Setenv(EnvFireRating, "2 hour")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvProject, "Mass Timber Office")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 625.0, cfg.FcPerp)
	assert.Equal(t, nds.TwoHour, cfg.FireRating)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Mass Timber Office", cfg.Project)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are unset
	for _, key := range []string{EnvFcPerp, EnvFireRating, EnvReportAuthor} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() {
		for _, key := range []string{EnvFcPerp, EnvFireRating, EnvReportAuthor} {
			os.Unsetenv(key)
		}
	})

	path := filepath.Join(t.TempDir(), ".env")
	content := "GOTBB_FC_PERP=560\nGOTBB_FIRE_RATING=1h\nGOTBB_REPORT_AUTHOR=\"J. Engineer\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 560.0, cfg.FcPerp)
	assert.Equal(t, nds.OneHour, cfg.FireRating)
	assert.Equal(t, "J. Engineer", cfg.ReportAuthor)
}

func TestLoadInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFcPerp, "soft")
	_, err := Load("")
	assert.ErrorContains(t, err, EnvFcPerp)

	t.Setenv(EnvFcPerp, "-10")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvFcPerp)

	t.Setenv(EnvFcPerp, "")
	t.Setenv(EnvFireRating, "4 hour")
	_, err = Load("")
	assert.ErrorIs(t, err, nds.ErrUnknownFireRating)
}
