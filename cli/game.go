package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"fortio.org/blackjack/ansipixels"
	"fortio.org/blackjack/config"
	"fortio.org/blackjack/engine"
	"fortio.org/log"
)

// Game is the interactive table: it renders the engine state and turns
// keys into engine operations.
type Game struct {
	AP    *ansipixels.AnsiPixels
	Cfg   config.Config
	Round *engine.Round
	state engine.State
	// shown is the per seat show/hide toggle used in pvp mode.
	shown   [2]bool
	message string
}

// Play runs the interactive game on the terminal until the players quit.
func Play(cfg config.Config) int {
	ap := ansipixels.NewAnsiPixels()
	if err := ap.Open(); err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer ap.Restore()
	log.SetOutput(&ansipixels.CRLFWriter{Out: os.Stderr})
	g, err := NewGame(ap, cfg)
	if err != nil {
		return log.FErrf("Error creating the game: %v", err)
	}
	return g.Run()
}

func NewGame(ap *ansipixels.AnsiPixels, cfg config.Config) (*Game, error) {
	g := &Game{AP: ap, Cfg: cfg}
	opts := cfg.Options()
	opts.Rand = NewRand(cfg.Seed)
	opts.OnBotMove = g.botMoved
	r, err := engine.New(opts)
	if err != nil {
		return nil, err
	}
	g.Round = r
	g.state = r.State()
	ap.OnResize = func() error {
		g.draw()
		return nil
	}
	return g, nil
}

// Run alternates nickname entry and play until the players quit.
func (g *Game) Run() int {
	g.AP.HideCursor()
	for {
		if err := g.lobby(); err != nil {
			return g.exit(err)
		}
		st, err := g.Round.NewGame("", "")
		if err != nil {
			return log.FErrf("Error starting the game: %v", err)
		}
		g.hideAll()
		g.update(st)
		quit, err := g.play()
		if err != nil {
			return g.exit(err)
		}
		if quit {
			return 0
		}
	}
}

func (g *Game) exit(err error) int {
	if errors.Is(err, ansipixels.ErrInterrupted) || errors.Is(err, io.EOF) {
		log.LogVf("Exiting: %v", err)
		return 0
	}
	return log.FErrf("Error reading: %v", err)
}

// lobby asks for the missing nicknames of the human seats.
func (g *Game) lobby() error {
	for !g.Round.CanStart() {
		g.state = g.Round.State()
		for _, seat := range g.state.Seats {
			if seat.Kind != engine.Human || seat.Name != "" {
				continue
			}
			g.draw()
			prompt := fmt.Sprintf("Nickname for seat %s: ", seat.Seat)
			g.AP.MoveCursor((g.AP.W-len(prompt)-10)/2, g.AP.H/2+2)
			name, err := g.AP.ReadLine(prompt)
			if err != nil {
				return err
			}
			g.Round.SetNickname(seat.Seat, name)
		}
	}
	return nil
}

// play handles the keys until the game ends (false) or the players quit (true).
func (g *Game) play() (bool, error) {
	for {
		g.draw()
		if err := g.AP.ReadOrResizeOrSignal(); err != nil {
			return false, err
		}
		for _, key := range g.AP.Data {
			switch g.handle(key) { //nolint:exhaustive // other actions keep playing.
			case ActionQuit:
				return true, nil
			case ActionEndGame:
				return false, nil
			}
		}
	}
}

// handle applies the action of key and returns it.
func (g *Game) handle(key byte) Action {
	a := ActionFor(key, g.state.Phase)
	var st engine.State
	var err error
	switch a {
	case ActionQuit, ActionNone:
		return a
	case ActionHit:
		st, err = g.Round.Hit(g.state.Turn)
	case ActionStand:
		st, err = g.Round.Stand(g.state.Turn)
	case ActionReveal:
		if g.state.Turn.Valid() {
			g.shown[g.state.Turn] = !g.shown[g.state.Turn]
		}
		return a
	case ActionNextRound:
		g.hideAll()
		st, err = g.Round.ResetRound(true)
	case ActionResetScores:
		g.hideAll()
		st, err = g.Round.ResetRound(false)
	case ActionEndGame:
		g.state = g.Round.EndGame()
		g.message = ""
		return a
	}
	if err != nil {
		log.LogVf("Rejected: %v", err)
		g.message = err.Error()
		return a
	}
	g.update(st)
	return a
}

// hideAll resets the show/hide toggles for a fresh deal.
func (g *Game) hideAll() {
	g.shown = [2]bool{g.Cfg.Reveal, g.Cfg.Reveal}
}

// update takes the new state and, once the round is over, gets the outcome.
func (g *Game) update(st engine.State) {
	g.state = st
	g.message = ""
	if !st.RoundOver || st.Outcome != nil {
		return
	}
	o, err := g.Round.DetermineWinner()
	if err != nil {
		log.Errf("Unexpected error getting the winner: %v", err)
		return
	}
	g.state = g.Round.State()
	g.message = o.Message
}

// botMoved shows each bot move and paces them.
func (g *Game) botMoved(st engine.State) {
	g.state = st
	g.draw()
	time.Sleep(g.Cfg.BotDelay)
}

// hidden is true for the cards of a pvp seat that hasn't been shown,
// until the end of the round.
func (g *Game) hidden(s engine.Seat) bool {
	return g.state.Mode == engine.ModePvP && !g.state.RoundOver && !g.shown[s]
}

func (g *Game) draw() {
	ap := g.AP
	st := g.state
	ap.StartSyncMode()
	ap.ClearScreen()
	ap.WriteCentered(0, "%s♠ Blackjack ♥%s (%s)", ansipixels.Bold, ansipixels.Reset, st.Mode)
	if st.Phase == engine.Configuring {
		ap.WriteBoxed(ap.H/2-3, "Get closer to 21 than your opponent without going over.\n"+
			"Aces count 1 or 11, figures 10. Exactly 21 is a Blackjack.")
		ap.EndSyncMode()
		return
	}
	ap.WriteRight(0, "%d cards ", st.Remaining)
	y := 2
	for s, seat := range st.Seats {
		for i, l := range RenderSeat(seat, g.hidden(engine.Seat(s)), st.Turn == engine.Seat(s)) {
			ap.WriteAtStr(2, y+i, l)
		}
		y += 1 + cardHeight + 1
	}
	ap.WriteTable(y+1, []ansipixels.Alignment{ansipixels.Left, ansipixels.Right, ansipixels.Right, ansipixels.Right},
		1, Scoreboard(st), ansipixels.BorderOuterColumns)
	if g.message != "" {
		ap.WriteCentered(ap.H-3, "%s%s%s", ansipixels.Bold, g.message, ansipixels.Reset)
	}
	ap.WriteCentered(ap.H-1, "%s", HelpLine(st))
	ap.EndSyncMode()
}
