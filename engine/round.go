package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"fortio.org/blackjack/cards"
	"fortio.org/log"
)

var (
	// ErrInvalidTurn is returned for a hit or stand out of turn, by a standing
	// participant or outside of a round in progress.
	ErrInvalidTurn = errors.New("invalid turn")
	// ErrInvalidState is returned for an operation the current phase doesn't allow.
	ErrInvalidState = errors.New("invalid state")
)

// Dealer is where a round gets its cards from. *cards.Deck is the normal one.
type Dealer interface {
	// Reset rebuilds and shuffles a full deck.
	Reset()
	MustDraw() cards.Card
	Remaining() int
}

// DefaultBotName is used for bot seats when Options.BotName is empty.
const DefaultBotName = "Bot"

// Options configure a Round.
type Options struct {
	Mode Mode
	// Names are the initial nicknames, bots get BotName when empty.
	Names        [2]string
	BotName      string
	BotThreshold int        // 0 means DefaultBotThreshold
	Rand         *rand.Rand // for the default deck, nil for non reproducible games
	Deck         Dealer     // overrides the default shuffled 52 cards deck
	// OnBotMove, when set, is called after each bot action with the new state,
	// so a UI can render and pace the bot play.
	OnBotMove func(State)
}

// Round is the game controller: it owns the deck and both participants and
// enforces the turn rules. A Round is not safe for concurrent use, the UI is
// expected to drive it from a single goroutine.
type Round struct {
	mode      Mode
	phase     Phase
	turn      Seat
	seats     [2]*Participant
	deck      Dealer
	outcome   *Outcome
	onBotMove func(State)
}

// New creates a round in the Configuring phase.
func New(opts Options) (*Round, error) {
	kinds, err := opts.Mode.kinds()
	if err != nil {
		return nil, err
	}
	botName := strings.TrimSpace(opts.BotName)
	if botName == "" {
		botName = DefaultBotName
	}
	threshold := opts.BotThreshold
	if threshold == 0 {
		threshold = DefaultBotThreshold
	}
	if threshold < 0 || threshold > Target+1 {
		return nil, fmt.Errorf("%w: bot threshold %d out of range", ErrInvalidState, threshold)
	}
	r := &Round{
		mode:      opts.Mode,
		phase:     Configuring,
		turn:      NoSeat,
		deck:      opts.Deck,
		onBotMove: opts.OnBotMove,
	}
	if r.deck == nil {
		r.deck = cards.NewDeck(opts.Rand)
	}
	for s, k := range kinds {
		p := &Participant{Kind: k, Name: strings.TrimSpace(opts.Names[s])}
		if k == Bot {
			p.Threshold = threshold
			if p.Name == "" {
				p.Name = botName
				if kinds[Seat(s).Other()] == Bot {
					p.Name = fmt.Sprintf("%s %s", botName, Seat(s))
				}
			}
		}
		r.seats[s] = p
	}
	if opts.Mode == ModeSolo {
		// the house stands on its opening card
		r.seats[SeatB].Threshold = 0
		if strings.TrimSpace(opts.Names[SeatB]) == "" && strings.TrimSpace(opts.BotName) == "" {
			r.seats[SeatB].Name = "House"
		}
	}
	log.LogVf("New round, mode %s: %q (%s) vs %q (%s)", r.mode,
		r.seats[SeatA].Name, r.seats[SeatA].Kind, r.seats[SeatB].Name, r.seats[SeatB].Kind)
	return r, nil
}

// Mode returns the mode the round was created with.
func (r *Round) Mode() Mode {
	return r.mode
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// SetNickname changes the name of a seat while no round is being played.
// It returns whether the game can now start (see CanStart).
func (r *Round) SetNickname(s Seat, name string) bool {
	if !s.Valid() || r.phase == InProgress {
		return r.CanStart()
	}
	name = strings.TrimSpace(name)
	if name == "" && r.seats[s].Kind == Bot {
		return r.CanStart()
	}
	r.seats[s].Name = name
	return r.CanStart()
}

// CanStart is true when every human seat has a nickname.
func (r *Round) CanStart() bool {
	for _, p := range r.seats {
		if p.Kind == Human && p.Name == "" {
			return false
		}
	}
	return true
}

// NewGame starts a round with the given nicknames. Empty names keep the
// nicknames already set (bots always have one).
func (r *Round) NewGame(nameA, nameB string) (State, error) {
	if r.phase == InProgress {
		return r.State(), fmt.Errorf("%w: a round is already in progress", ErrInvalidState)
	}
	names := [2]string{strings.TrimSpace(nameA), strings.TrimSpace(nameB)}
	for s, p := range r.seats {
		if names[s] == "" {
			names[s] = p.Name
		}
		if names[s] == "" {
			return r.State(), fmt.Errorf("%w: nickname required for seat %s", ErrInvalidState, Seat(s))
		}
	}
	for s, p := range r.seats {
		p.Name = names[s]
	}
	r.start()
	return r.State(), nil
}

// ResetRound deals a new round with the same participants. The session
// tallies are zeroed unless keepScores is true.
func (r *Round) ResetRound(keepScores bool) (State, error) {
	if r.phase == Configuring {
		return r.State(), fmt.Errorf("%w: no game to reset, start one first", ErrInvalidState)
	}
	if !keepScores {
		for _, p := range r.seats {
			p.clearTallies()
		}
	}
	r.start()
	return r.State(), nil
}

// EndGame goes back to the lobby: hands, tallies and human nicknames are cleared.
func (r *Round) EndGame() State {
	for _, p := range r.seats {
		p.clearHand()
		p.clearTallies()
		if p.Kind == Human {
			p.Name = ""
		}
	}
	r.outcome = nil
	r.turn = NoSeat
	r.phase = Configuring
	log.LogVf("Game ended, back to configuring")
	return r.State()
}

func (r *Round) start() {
	for _, p := range r.seats {
		p.clearHand()
	}
	r.outcome = nil
	r.deck.Reset()
	r.seats[SeatA].hand.Add(r.deck.MustDraw())
	r.seats[SeatB].hand.Add(r.deck.MustDraw())
	r.turn = SeatA
	r.phase = InProgress
	log.LogVf("Dealt %v to %q and %v to %q, %d cards left",
		r.seats[SeatA].hand.cards[0], r.seats[SeatA].Name,
		r.seats[SeatB].hand.cards[0], r.seats[SeatB].Name, r.deck.Remaining())
	r.autoPlay()
}

func (r *Round) checkTurn(s Seat, action string) error {
	switch {
	case r.phase != InProgress:
		return fmt.Errorf("%w: can't %s, round is %s", ErrInvalidTurn, action, r.phase)
	case !s.Valid():
		return fmt.Errorf("%w: can't %s, bad seat %s", ErrInvalidTurn, action, s)
	case s != r.turn:
		return fmt.Errorf("%w: can't %s, it's seat %s's turn", ErrInvalidTurn, action, r.turn)
	case r.seats[s].standing:
		return fmt.Errorf("%w: can't %s, seat %s is standing", ErrInvalidTurn, action, s)
	}
	return nil
}

// Hit deals one card to the seat on turn. A hand going over 21 stands automatically.
func (r *Round) Hit(s Seat) (State, error) {
	if err := r.checkTurn(s, "hit"); err != nil {
		return r.State(), err
	}
	r.hit(s)
	r.autoPlay()
	return r.State(), nil
}

// Stand ends the seat's play for this round.
func (r *Round) Stand(s Seat) (State, error) {
	if err := r.checkTurn(s, "stand"); err != nil {
		return r.State(), err
	}
	r.stand(s)
	r.autoPlay()
	return r.State(), nil
}

func (r *Round) hit(s Seat) {
	p := r.seats[s]
	c := r.deck.MustDraw()
	p.hand.Add(c)
	log.LogVf("%q hits %v, score %d", p.Name, c, p.hand.Score())
	if p.hand.Busted() {
		log.LogVf("%q busts", p.Name)
		p.standing = true
	}
	r.advance(s)
}

func (r *Round) stand(s Seat) {
	p := r.seats[s]
	p.standing = true
	log.LogVf("%q stands on %d", p.Name, p.hand.Score())
	r.advance(s)
}

// advance ends the round once both stand, otherwise passes the turn
// unless the other seat already stands.
func (r *Round) advance(s Seat) {
	if r.seats[SeatA].standing && r.seats[SeatB].standing {
		r.phase = RoundOver
		r.turn = NoSeat
		log.LogVf("Round over: %d vs %d", r.seats[SeatA].hand.Score(), r.seats[SeatB].hand.Score())
		return
	}
	if !r.seats[s.Other()].standing {
		r.turn = s.Other()
	}
}

// autoPlay lets the bots play for as long as one of them is on turn.
// Each move either draws a card or stands so it always ends.
func (r *Round) autoPlay() {
	for r.phase == InProgress && r.seats[r.turn].Kind == Bot {
		s := r.turn
		p := r.seats[s]
		if p.ShouldHit() {
			log.Debugf("Bot %q at %d < %d, hitting", p.Name, p.hand.Score(), p.Threshold)
			r.hit(s)
		} else {
			log.Debugf("Bot %q at %d >= %d, standing", p.Name, p.hand.Score(), p.Threshold)
			r.stand(s)
		}
		if r.onBotMove != nil {
			r.onBotMove(r.State())
		}
	}
}

// DetermineWinner returns the outcome of a finished round. The first call
// for a round adds the result to the participants' tallies.
func (r *Round) DetermineWinner() (Outcome, error) {
	if r.phase != RoundOver {
		return Outcome{}, fmt.Errorf("%w: no winner while %s", ErrInvalidState, r.phase)
	}
	if r.outcome != nil {
		return *r.outcome, nil
	}
	o := DetermineOutcome(
		[2]string{r.seats[SeatA].Name, r.seats[SeatB].Name},
		[2]int{r.seats[SeatA].hand.Score(), r.seats[SeatB].hand.Score()})
	if o.Draw {
		r.seats[SeatA].draws++
		r.seats[SeatB].draws++
	} else {
		r.seats[o.Winner].wins++
		r.seats[o.Winner.Other()].losses++
	}
	r.outcome = &o
	log.LogVf("Outcome: %s", o.Message)
	return o, nil
}

// State returns a snapshot of the round.
func (r *Round) State() State {
	st := State{
		Mode:      r.mode,
		Phase:     r.phase,
		Turn:      r.turn,
		RoundOver: r.phase == RoundOver,
		CanStart:  r.CanStart(),
		Remaining: r.deck.Remaining(),
	}
	for s, p := range r.seats {
		st.Seats[s] = SeatState{
			Seat:      Seat(s),
			Name:      p.Name,
			Kind:      p.Kind,
			Cards:     p.hand.Cards(),
			Score:     p.hand.Score(),
			Standing:  p.standing,
			Busted:    p.hand.Busted(),
			Blackjack: p.hand.Blackjack(),
			Wins:      p.wins,
			Losses:    p.losses,
			Draws:     p.draws,
		}
	}
	if r.outcome != nil {
		o := *r.outcome
		st.Outcome = &o
	}
	return st
}
