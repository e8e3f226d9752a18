package cli

import (
	"flag"
	"io"
	"testing"
	"time"

	"fortio.org/blackjack/config"
)

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := defineFlags(fs, config.Defaults())
	err := fs.Parse([]string{"-mode", "pvp", "-threshold", "15", "-delay", "1s", "-reveal", "-config", "x.toml"})
	if err != nil {
		t.Fatal(err)
	}
	if *configFile != "x.toml" {
		t.Errorf("config flag = %q", *configFile)
	}
	cfg := config.Defaults()
	cfg.BotName = "FromFile"
	cfg.Rounds = 7
	overrideFromFlags(&cfg, fs)
	if cfg.Mode != "pvp" || cfg.BotThreshold != 15 || cfg.BotDelay != time.Second || !cfg.Reveal {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.BotName != "FromFile" || cfg.Rounds != 7 {
		t.Errorf("unset flags should not override: %+v", cfg)
	}
}

func TestNewRandSeed(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 10 {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("same seed gave different numbers")
		}
	}
	if NewRand(0) == nil {
		t.Errorf("time based generator is nil")
	}
}
