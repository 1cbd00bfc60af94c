package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MEDIALERT_AUTH_JWT_SECRET", "s3cret")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "medialert.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "0,30 * * * * *", cfg.Alert.PollSpec)
	assert.Equal(t, 1200*time.Millisecond, cfg.Alert.ToneInterval)
	assert.Equal(t, 5, cfg.OpenAI.RatePerMinute)
	assert.False(t, cfg.Line.Enabled())
	assert.False(t, cfg.Twilio.Enabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MEDIALERT_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("MEDIALERT_AUTH_TOKEN_TTL", "2h")
	t.Setenv("MEDIALERT_SERVER_PORT", "9090")
	t.Setenv("MEDIALERT_ALERT_TIMEZONE", "Asia/Tokyo")
	t.Setenv("MEDIALERT_ALERT_TONE_INTERVAL", "500ms")
	t.Setenv("MEDIALERT_LINE_CHANNEL_SECRET", "line-secret")
	t.Setenv("MEDIALERT_LINE_CHANNEL_TOKEN", "line-token")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.Alert.ToneInterval)
	assert.True(t, cfg.Line.Enabled())

	loc, err := cfg.Alert.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medialert.yaml")
	yaml := `
auth:
  jwt_secret: from-file
database:
  url: postgres://medialert@localhost/medialert
twilio:
  account_sid: AC123
  auth_token: tok
  from: "+15550000000"
  to: "+15551111111"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("MEDIALERT_LOG_LEVEL", "warn")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres://medialert@localhost/medialert", cfg.Database.URL)
	assert.True(t, cfg.Twilio.Enabled())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("MEDIALERT_AUTH_JWT_SECRET", "")
		_, err := LoadFile("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth.jwt_secret")
	})

	t.Run("bad timezone and format", func(t *testing.T) {
		t.Setenv("MEDIALERT_AUTH_JWT_SECRET", "s3cret")
		t.Setenv("MEDIALERT_ALERT_TIMEZONE", "Mars/Olympus")
		t.Setenv("MEDIALERT_LOG_FORMAT", "xml")
		_, err := LoadFile("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "alert.timezone")
		assert.Contains(t, err.Error(), "log.format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "auth.jwt_secret", envKey("MEDIALERT_AUTH_JWT_SECRET"))
	assert.Equal(t, "server.port", envKey("MEDIALERT_SERVER_PORT"))
	assert.Equal(t, "config", envKey("MEDIALERT_CONFIG"))
}
