package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fortio.org/blackjack/engine"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	c := Defaults()
	if err := c.Validate(); err != nil {
		t.Errorf("defaults don't validate: %v", err)
	}
	if c.Mode != "bot" || c.BotThreshold != 17 {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "blackjack.toml", `
mode = "pvp"
player1 = "Ann"
bot_delay = "250ms"
seed = 42
unknown = 1
`)
	c := Defaults()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Mode != "pvp" || c.Player1 != "Ann" || c.BotDelay != 250*time.Millisecond || c.Seed != 42 {
		t.Errorf("file values not applied: %+v", c)
	}
	if c.BotThreshold != engine.DefaultBotThreshold || c.Rounds != 1000 {
		t.Errorf("keys absent from the file should keep their value: %+v", c)
	}
}

func TestLoadFileErrors(t *testing.T) {
	c := Defaults()
	if err := c.LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
	bad := writeFile(t, "bad.toml", `bot_delay = "soon"`)
	if err := c.LoadFile(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad duration error = %v", err)
	}
	broken := writeFile(t, "broken.toml", `mode = `)
	if err := c.LoadFile(broken); err == nil {
		t.Errorf("expected a parse error")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("BLACKJACK_BOT_THRESHOLD", "15")
	t.Setenv("BLACKJACK_MODE", "sim")
	dotenv := writeFile(t, ".env", "BLACKJACK_PLAYER2=Bob\nBLACKJACK_MODE=pvp\n")
	t.Cleanup(func() { os.Unsetenv("BLACKJACK_PLAYER2") })
	c := Defaults()
	if err := c.LoadEnv(dotenv); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.BotThreshold != 15 || c.Player2 != "Bob" {
		t.Errorf("environment not applied: %+v", c)
	}
	// real environment wins over the .env file
	if c.Mode != "sim" {
		t.Errorf("mode = %q, want sim", c.Mode)
	}
	if err := c.LoadEnv(filepath.Join(t.TempDir(), "none.env")); err != nil {
		t.Errorf("missing dotenv file should be ignored: %v", err)
	}
}

func TestLoadEnvBadValue(t *testing.T) {
	t.Setenv("BLACKJACK_ROUNDS", "many")
	c := Defaults()
	if err := c.LoadEnv(filepath.Join(t.TempDir(), "none.env")); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad int error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		change func(c *Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"solo", func(c *Config) { c.Mode = "solo" }, true},
		{"bad mode", func(c *Config) { c.Mode = "poker" }, false},
		{"threshold 0", func(c *Config) { c.BotThreshold = 0 }, true},
		{"threshold 21", func(c *Config) { c.BotThreshold = 21 }, true},
		{"threshold 22", func(c *Config) { c.BotThreshold = 22 }, false},
		{"negative threshold", func(c *Config) { c.BotThreshold = -1 }, false},
		{"no rounds", func(c *Config) { c.Rounds = 0 }, false},
		{"negative delay", func(c *Config) { c.BotDelay = -time.Second }, false},
		{"negative seed", func(c *Config) { c.Seed = -3 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.change(&c)
			err := c.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok %v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v should wrap ErrInvalid", err)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	c := Defaults()
	c.Player1 = "Ann"
	o := c.Options()
	if o.Mode != engine.ModeBot || o.Names[0] != "Ann" || o.BotThreshold != 17 || o.BotName != "Bot" {
		t.Errorf("unexpected options %+v", o)
	}
	c.BotThreshold = 0
	if o = c.Options(); o.BotThreshold != 1 {
		t.Errorf("threshold 0 should map to a never hitting bot, got %d", o.BotThreshold)
	}
}
