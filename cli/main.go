// Package cli is the terminal front end of the blackjack engine: a two seat
// table for people sharing a keyboard or playing a bot, plus a bot against
// bot simulation mode.
package cli

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"fortio.org/blackjack/config"
	"fortio.org/blackjack/engine"
	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/safecast"
)

// defineFlags registers the game flags on fs, showing d as the defaults,
// and returns the -config flag value.
func defineFlags(fs *flag.FlagSet, d config.Config) *string {
	fs.String("mode", d.Mode, "Game `mode`: pvp (two players), bot (player vs bot), solo (deprecated), sim (bots only)")
	fs.String("p1", d.Player1, "`Nickname` of the first player, asked for when empty")
	fs.String("p2", d.Player2, "`Nickname` of the second player, asked for when empty")
	fs.String("bot-name", d.BotName, "`Name` of the bot(s)")
	fs.Int("threshold", d.BotThreshold, "Bots hit while their score is under this `score` (0-21)")
	fs.Duration("delay", d.BotDelay, "Pause between bot moves")
	fs.Int64("seed", d.Seed, "Random number generator `seed` for reproducible games, default (0) is time based")
	fs.Int("rounds", d.Rounds, "Number of `rounds` to play in sim mode")
	fs.Bool("reveal", d.Reveal, "Show both hands in pvp mode instead of hiding them until toggled")
	return fs.String("config", "", "Optional TOML configuration `file`, also read: .env and BLACKJACK_* environment variables")
}

// overrideFromFlags applies the flags explicitly set on the command line,
// they win over the file and environment configuration.
func overrideFromFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "mode":
			cfg.Mode = v.(string)
		case "p1":
			cfg.Player1 = v.(string)
		case "p2":
			cfg.Player2 = v.(string)
		case "bot-name":
			cfg.BotName = v.(string)
		case "threshold":
			cfg.BotThreshold = v.(int)
		case "delay":
			cfg.BotDelay = v.(time.Duration)
		case "seed":
			cfg.Seed = v.(int64)
		case "rounds":
			cfg.Rounds = v.(int)
		case "reveal":
			cfg.Reveal = v.(bool)
		}
	})
}

// NewRand returns the generator for the decks, seeded with seed or,
// when 0, the time (logged so the game can be replayed).
func NewRand(seed int64) *rand.Rand {
	s := safecast.MustConv[uint64](seed)
	if s == 0 {
		s = safecast.MustConv[uint64](time.Now().UnixNano() % (1<<31 - 1))
		log.Infof("Using seed %d", s)
	}
	return rand.New(rand.NewPCG(0, s)) //nolint:gosec // not crypto, reproducible games.
}

func Main() int {
	configFile := defineFlags(flag.CommandLine, config.Defaults())
	cli.Main()
	cfg, err := config.Load(*configFile)
	if err != nil {
		return log.FErrf("Error loading configuration: %v", err)
	}
	overrideFromFlags(&cfg, flag.CommandLine)
	if err = cfg.Validate(); err != nil {
		return log.FErrf("%v", err)
	}
	log.LogVf("Configuration: %+v", cfg)
	if engine.Mode(cfg.Mode) == engine.ModeSim {
		if _, err = Simulate(cfg, os.Stdout); err != nil {
			return log.FErrf("Error simulating: %v", err)
		}
		return 0
	}
	return Play(cfg)
}
