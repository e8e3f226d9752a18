// Package config holds the blackjack game settings and loads them from, in
// increasing priority: the defaults, an optional TOML file, a .env file and
// BLACKJACK_* environment variables, then explicitly set command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"fortio.org/blackjack/engine"
	"fortio.org/log"
	"fortio.org/struct2env"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to the environment variable names,
// e.g. BLACKJACK_BOT_THRESHOLD.
const EnvPrefix = "BLACKJACK_"

// MaxThreshold is the highest bot threshold accepted.
const MaxThreshold = engine.Target

var ErrInvalid = errors.New("invalid configuration")

// Config is the full game configuration.
type Config struct {
	Mode         string        `toml:"mode" env:"MODE"`
	Player1      string        `toml:"player1" env:"PLAYER1"`
	Player2      string        `toml:"player2" env:"PLAYER2"`
	BotName      string        `toml:"bot_name" env:"BOT_NAME"`
	BotThreshold int           `toml:"bot_threshold" env:"BOT_THRESHOLD"`
	BotDelay     time.Duration `toml:"bot_delay" env:"BOT_DELAY"`
	Seed         int64         `toml:"seed" env:"SEED"` // 0 for a time based seed
	Rounds       int           `toml:"rounds" env:"ROUNDS"`
	Reveal       bool          `toml:"reveal" env:"REVEAL"` // show the opponent's cards in pvp mode
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Mode:         string(engine.ModeBot),
		BotName:      engine.DefaultBotName,
		BotThreshold: engine.DefaultBotThreshold,
		BotDelay:     600 * time.Millisecond,
		Rounds:       1000,
	}
}

// tomlConfig is what the file can contain: durations are strings ("750ms").
type tomlConfig struct {
	Mode         *string `toml:"mode"`
	Player1      *string `toml:"player1"`
	Player2      *string `toml:"player2"`
	BotName      *string `toml:"bot_name"`
	BotThreshold *int    `toml:"bot_threshold"`
	BotDelay     *string `toml:"bot_delay"`
	Seed         *int64  `toml:"seed"`
	Rounds       *int    `toml:"rounds"`
	Reveal       *bool   `toml:"reveal"`
}

// LoadFile overlays the keys present in the TOML file onto c.
func (c *Config) LoadFile(path string) error {
	var tc tomlConfig
	md, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warnf("Ignoring unknown keys in %s: %v", path, undecoded)
	}
	setIf(&c.Mode, tc.Mode)
	setIf(&c.Player1, tc.Player1)
	setIf(&c.Player2, tc.Player2)
	setIf(&c.BotName, tc.BotName)
	setIf(&c.BotThreshold, tc.BotThreshold)
	setIf(&c.Seed, tc.Seed)
	setIf(&c.Rounds, tc.Rounds)
	setIf(&c.Reveal, tc.Reveal)
	if tc.BotDelay != nil {
		d, err := time.ParseDuration(*tc.BotDelay)
		if err != nil {
			return fmt.Errorf("%w: %s: bot_delay %q: %w", ErrInvalid, path, *tc.BotDelay, err)
		}
		c.BotDelay = d
	}
	log.LogVf("Loaded config file %s: %+v", path, *c)
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// LoadEnv loads the optional dotenv files (default .env, a missing file is
// fine) into the process environment then applies the BLACKJACK_* variables.
func (c *Config) LoadEnv(dotenvFiles ...string) error {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		err := godotenv.Load(f)
		switch {
		case err == nil:
			log.LogVf("Loaded %s", f)
		case errors.Is(err, os.ErrNotExist):
			log.Debugf("No %s file", f)
		default:
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	if errs := struct2env.SetFromEnv(EnvPrefix, c); len(errs) > 0 {
		return fmt.Errorf("%w: environment: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Validate checks the ranges of the settings.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(engine.Modes, engine.Mode(c.Mode)) {
		errs = append(errs, fmt.Errorf("unknown mode %q, should be one of %v", c.Mode, engine.Modes))
	}
	if c.BotThreshold < 0 || c.BotThreshold > MaxThreshold {
		errs = append(errs, fmt.Errorf("bot threshold %d should be between 0 and %d", c.BotThreshold, MaxThreshold))
	}
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds %d should be at least 1", c.Rounds))
	}
	if c.Seed < 0 {
		errs = append(errs, fmt.Errorf("seed %d can't be negative", c.Seed))
	}
	if c.BotDelay < 0 {
		errs = append(errs, fmt.Errorf("bot delay %v can't be negative", c.BotDelay))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Load returns the defaults overlaid with the TOML file at path (skipped when
// empty) and then the environment. Flags are applied by the caller.
func Load(path string) (Config, error) {
	c := Defaults()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return c, err
		}
	}
	if err := c.LoadEnv(); err != nil {
		return c, err
	}
	return c, nil
}

// Options converts the configuration to the engine's round options.
func (c *Config) Options() engine.Options {
	threshold := c.BotThreshold
	if threshold == 0 {
		// the engine reads 0 as the default; 1 never hits either as hands start with a card
		threshold = 1
	}
	return engine.Options{
		Mode:         engine.Mode(c.Mode),
		Names:        [2]string{c.Player1, c.Player2},
		BotName:      c.BotName,
		BotThreshold: threshold,
	}
}
