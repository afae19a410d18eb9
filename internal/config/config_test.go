package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budjb/things-we-make/internal/config"
	"github.com/budjb/things-we-make/internal/shell"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// noEnvFile points Load at a file that does not exist so a developer's .env
// never leaks into the tests.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "content/recipes.yaml", cfg.ContentIndex)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "Things We Make", cfg.SiteTitle)
	assert.Equal(t, shell.VariantCurrent, cfg.SiteVariant)
	assert.Equal(t, "noindex,nofollow", cfg.SiteRobots)
	assert.Equal(t, 2021, cfg.CopyrightStartYear)
	assert.Equal(t, "https://budjb.dev", cfg.AttributionURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SITE_VARIANT", "legacy")
	t.Setenv("COPYRIGHT_START_YEAR", "2019")

	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, shell.VariantLegacy, cfg.SiteVariant)
	assert.Equal(t, 2019, cfg.CopyrightStartYear)

	sc := cfg.Shell()
	assert.Equal(t, shell.VariantLegacy, sc.Variant)
	assert.Equal(t, 2019, sc.CopyrightStartYear)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "SESSION_SECRET=" + testSecret + "\nSITE_TITLE=Family Recipes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv never overrides variables that are already set.
	t.Setenv("SESSION_SECRET", "")
	os.Unsetenv("SESSION_SECRET")
	t.Setenv("SITE_TITLE", "")
	os.Unsetenv("SITE_TITLE")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Family Recipes", cfg.SiteTitle)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"short secret", map[string]string{"SESSION_SECRET": "short"}, "SESSION_SECRET"},
		{"bad variant", map[string]string{"SESSION_SECRET": testSecret, "SITE_VARIANT": "retro"}, "SITE_VARIANT"},
		{"bad year", map[string]string{"SESSION_SECRET": testSecret, "COPYRIGHT_START_YEAR": "twenty"}, "COPYRIGHT_START_YEAR"},
		{"bad level", map[string]string{"SESSION_SECRET": testSecret, "LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(noEnvFile(t))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.msg), err.Error())
		})
	}
}
