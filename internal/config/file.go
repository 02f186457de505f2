package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/iamasit07/hotseat-connect4/internal/domain"
)

// File is the optional HCL configuration file. Every attribute is optional;
// set values override the environment.
type File struct {
	Game   *GameBlock   `hcl:"game,block"`
	Server *ServerBlock `hcl:"server,block"`
}

type GameBlock struct {
	PlayerOne        string `hcl:"player_one,optional"`
	PlayerTwo        string `hcl:"player_two,optional"`
	NextRoundStarter string `hcl:"next_round_starter,optional"`
}

type ServerBlock struct {
	Port            string   `hcl:"port,optional"`
	AllowedOrigins  []string `hcl:"allowed_origins,optional"`
	StaticDir       string   `hcl:"static_dir,optional"`
	SessionTTL      string   `hcl:"session_ttl,optional"`
	CleanupInterval string   `hcl:"cleanup_interval,optional"`
	MaxSessions     int      `hcl:"max_sessions,optional"`
	LogLevel        string   `hcl:"log_level,optional"`
}

// ParseFile decodes an HCL config file.
func ParseFile(filename string) (*File, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL config: %s", diags.Error())
	}
	return &f, nil
}

// ApplyFile parses filename and overlays its values onto c.
func (c *Config) ApplyFile(filename string) error {
	f, err := ParseFile(filename)
	if err != nil {
		return err
	}
	return c.apply(f)
}

func (c *Config) apply(f *File) error {
	if g := f.Game; g != nil {
		if g.PlayerOne != "" {
			c.Game.PlayerOneName = g.PlayerOne
		}
		if g.PlayerTwo != "" {
			c.Game.PlayerTwoName = g.PlayerTwo
		}
		if g.NextRoundStarter != "" {
			policy, err := domain.ParseStartPolicy(g.NextRoundStarter)
			if err != nil {
				return fmt.Errorf("game.next_round_starter: %w", err)
			}
			c.Game.NextRoundStarter = policy
		}
	}

	if s := f.Server; s != nil {
		if s.Port != "" {
			c.Port = s.Port
		}
		c.AllowedOrigins = append(c.AllowedOrigins, s.AllowedOrigins...)
		if s.StaticDir != "" {
			c.StaticDir = s.StaticDir
		}
		if s.SessionTTL != "" {
			d, err := time.ParseDuration(s.SessionTTL)
			if err != nil {
				return fmt.Errorf("server.session_ttl: %w", err)
			}
			c.SessionIdleTTL = d
		}
		if s.CleanupInterval != "" {
			d, err := time.ParseDuration(s.CleanupInterval)
			if err != nil {
				return fmt.Errorf("server.cleanup_interval: %w", err)
			}
			if d <= 0 {
				return fmt.Errorf("server.cleanup_interval %s: %w", d, ErrNonPositiveDuration)
			}
			c.CleanupInterval = d
		}
		if s.MaxSessions > 0 {
			c.MaxSessions = s.MaxSessions
		}
		if s.LogLevel != "" {
			c.LogLevel = s.LogLevel
		}
	}

	return nil
}
