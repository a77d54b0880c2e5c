package config_test

import (
	"leavebot/internal/config"
	"leavebot/pkg/workday"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "BASE_URL", "LIFF_ID", "CORS_ALLOWED_ORIGINS", "NOTIFIER_MAX_ATTEMPTS", "DATABASE_ENABLED")

	cfg, err := config.Load("", "")
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.HTTP.Port)
	require.Equal(t, "http://localhost:3000", cfg.BaseURL)
	require.Equal(t, ":3000", cfg.Addr())
	require.Empty(t, cfg.LIFF.ID)
	require.Equal(t, "ยอดลา", cfg.Keywords.Balance)
	require.Equal(t, 3, cfg.Notifier.MaxAttempts)
	require.False(t, cfg.Database.Enabled)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("BASE_URL", "https://bot.example.com/")
	t.Setenv("LIFF_ID", "1234-abcd")
	t.Setenv("HOLIDAYS", "2025-01-01,2025-04-14")
	t.Setenv("NOTIFIER_INITIAL_INTERVAL", "1s")

	cfg, err := config.Load("", "")
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.HTTP.Port)
	require.Equal(t, "https://bot.example.com", cfg.BaseURL)
	require.Equal(t, "1234-abcd", cfg.LIFF.ID)
	require.Equal(t, []string{"2025-01-01", "2025-04-14"}, cfg.Holidays.Dates)
	require.Equal(t, time.Second, cfg.Notifier.InitialInterval)
}

func TestLoad_YAMLAndDotenv(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("liff:\n  id: from-yaml\nhttp:\n  port: 4000\n"), 0o600))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("LINE_CHANNEL_SECRET=from-dotenv\n"), 0o600))

	unsetenv(t, "PORT", "BASE_URL", "LIFF_ID", "LINE_CHANNEL_SECRET")

	cfg, err := config.Load(yamlPath, envPath)
	require.NoError(t, err)
	require.Equal(t, "from-yaml", cfg.LIFF.ID)
	require.Equal(t, 4000, cfg.HTTP.Port)
	require.Equal(t, "http://localhost:4000", cfg.BaseURL)
	require.Equal(t, "from-dotenv", cfg.LINE.ChannelSecret)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := config.Load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	var cfg config.Config
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrMissingCredentials)
	require.Contains(t, err.Error(), "LINE_CHANNEL_ACCESS_TOKEN")
	require.Contains(t, err.Error(), "LINE_CHANNEL_SECRET")

	cfg.LINE.ChannelAccessToken = "token"
	cfg.LINE.ChannelSecret = "secret"
	require.NoError(t, cfg.Validate())
}

func TestLoadHolidays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")
	require.NoError(t, os.WriteFile(path, []byte("# 2025\n2025-04-14 Songkran\n"), 0o600))

	var cfg config.Config
	cfg.Holidays.Dates = []string{"2025-01-01"}
	cfg.Holidays.File = path

	holidays, err := cfg.LoadHolidays()
	require.NoError(t, err)
	require.Equal(t, []workday.Holiday{
		{Date: workday.MustParseDate("2025-01-01")},
		{Date: workday.MustParseDate("2025-04-14"), Name: "Songkran"},
	}, holidays)

	cfg.Holidays.Dates = []string{"2025-02-30"}
	_, err = cfg.LoadHolidays()
	require.ErrorIs(t, err, workday.ErrInvalidDate)
}
