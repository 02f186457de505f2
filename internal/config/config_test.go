package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iamasit07/hotseat-connect4/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, domain.DefaultPlayerOneName, cfg.Game.PlayerOneName)
	assert.Equal(t, domain.DefaultPlayerTwoName, cfg.Game.PlayerTwoName)
	assert.Equal(t, domain.WinnerStarts, cfg.Game.NextRoundStarter)
	assert.Equal(t, 120*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:8080")
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("PLAYER_ONE_NAME", "Ada")
	t.Setenv("NEXT_ROUND_STARTER", "loser")
	t.Setenv("SESSION_IDLE_TTL_MINUTES", "15")
	t.Setenv("MAX_SESSIONS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Contains(t, cfg.AllowedOrigins, "https://a.example")
	assert.Contains(t, cfg.AllowedOrigins, "https://b.example")
	assert.NotContains(t, cfg.AllowedOrigins, "")
	assert.Equal(t, "Ada", cfg.Game.PlayerOneName)
	assert.Equal(t, domain.LoserStarts, cfg.Game.NextRoundStarter)
	assert.Equal(t, 15*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 1000, cfg.MaxSessions, "invalid ints fall back to the default")
}

func TestLoadConfigBadStartPolicy(t *testing.T) {
	t.Setenv("NEXT_ROUND_STARTER", "coin-toss")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, domain.ErrUnknownStartPolicy)
}

func TestLoadConfigRejectsNonPositiveCleanupInterval(t *testing.T) {
	for _, value := range []string{"0", "-5"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("CLEANUP_INTERVAL_MINUTES", value)

			_, err := LoadConfig()
			assert.ErrorIs(t, err, ErrNonPositiveDuration)
		})
	}
}

func TestLoadConfigFileIntervalError(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeConfig(t, `server { cleanup_interval = "0s" }`))

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrNonPositiveDuration)
}

func TestDefaultOriginFollowsFilePort(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONFIG_FILE", writeConfig(t, `server { port = "7070" }`))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "http://localhost:7070", cfg.FrontendURL)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:7070")
	assert.NotContains(t, cfg.AllowedOrigins, "http://localhost:9000")
}

func TestExplicitFrontendURLKept(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://connect4.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://connect4.example", cfg.FrontendURL)
	assert.Contains(t, cfg.AllowedOrigins, "https://connect4.example")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connect4.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigWithFile(t *testing.T) {
	path := writeConfig(t, `
game {
  player_one         = "Ada"
  player_two         = "Grace"
  next_round_starter = "loser"
}

server {
  port             = "7070"
  allowed_origins  = ["https://play.example"]
  session_ttl      = "2h"
  cleanup_interval = "30s"
  max_sessions     = 10
}
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PLAYER_ONE_NAME", "ignored")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Ada", cfg.Game.PlayerOneName)
	assert.Equal(t, "Grace", cfg.Game.PlayerTwoName)
	assert.Equal(t, domain.LoserStarts, cfg.Game.NextRoundStarter)
	assert.Equal(t, "7070", cfg.Port)
	assert.Contains(t, cfg.AllowedOrigins, "https://play.example")
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTTL)
	assert.Equal(t, 30*time.Second, cfg.CleanupInterval)
	assert.Equal(t, 10, cfg.MaxSessions)
}

func TestApplyFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "syntax", body: `game {`},
		{name: "unknown block", body: `board { rows = 8 }`},
		{name: "bad policy", body: `game { next_round_starter = "random" }`},
		{name: "bad duration", body: `server { session_ttl = "soon" }`},
		{name: "zero cleanup interval", body: `server { cleanup_interval = "0s" }`},
		{name: "negative cleanup interval", body: `server { cleanup_interval = "-1m" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			assert.Error(t, cfg.ApplyFile(writeConfig(t, tt.body)))
		})
	}
}

func TestApplyFileMissing(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.hcl")))
}

func TestGameConfigOptions(t *testing.T) {
	g := GameConfig{PlayerOneName: "Ada", PlayerTwoName: "Grace", NextRoundStarter: domain.LoserStarts}
	controller := domain.NewGameController(g.Options()...)

	assert.Equal(t, "Ada", controller.ActivePlayer().Name)
	assert.Equal(t, domain.LoserStarts, controller.StartPolicy())
}
