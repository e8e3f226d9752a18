package engine

import (
	"fmt"

	"fortio.org/blackjack/cards"
)

// Phase of a round.
type Phase int

const (
	// Configuring is before the first deal, while nicknames are chosen.
	Configuring Phase = iota
	// InProgress is while at least one participant can still act.
	InProgress
	// RoundOver is once both participants are standing.
	RoundOver
)

func (p Phase) String() string {
	switch p {
	case Configuring:
		return "configuring"
	case InProgress:
		return "in progress"
	case RoundOver:
		return "round over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Mode selects who sits in each seat.
type Mode string

const (
	// ModePvP is two humans sharing the screen.
	ModePvP Mode = "pvp"
	// ModeBot is a human (seat A) against a bot (seat B).
	ModeBot Mode = "bot"
	// ModeSolo is the single player practice table: the house stands on its first card.
	//
	// Deprecated: kept for players used to the first version of the game, use ModeBot.
	ModeSolo Mode = "solo"
	// ModeSim is two bots, used for simulations.
	ModeSim Mode = "sim"
)

// Modes lists the valid modes.
var Modes = []Mode{ModePvP, ModeBot, ModeSolo, ModeSim}

// kinds returns the participant kinds for seats A and B.
func (m Mode) kinds() ([2]Kind, error) {
	switch m {
	case ModePvP:
		return [2]Kind{Human, Human}, nil
	case ModeBot, ModeSolo:
		return [2]Kind{Human, Bot}, nil
	case ModeSim:
		return [2]Kind{Bot, Bot}, nil
	}
	return [2]Kind{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidState, string(m))
}

// SeatState is the read only view of one participant.
type SeatState struct {
	Seat      Seat
	Name      string
	Kind      Kind
	Cards     []cards.Card
	Score     int
	Standing  bool
	Busted    bool
	Blackjack bool
	Wins      int
	Losses    int
	Draws     int
}

// Assets returns the image references of the cards, in order.
func (s SeatState) Assets() []cards.Asset {
	res := make([]cards.Asset, 0, len(s.Cards))
	for _, c := range s.Cards {
		res = append(res, c.Asset)
	}
	return res
}

// Info is the one line summary shown next to a hand.
func (s SeatState) Info() string {
	return fmt.Sprintf("%s - %d points", s.Name, s.Score)
}

// State is an immutable snapshot of a round, produced after every transition
// for the UI to render. Slices in it are copies.
type State struct {
	Mode      Mode
	Phase     Phase
	Turn      Seat // NoSeat unless InProgress
	RoundOver bool
	CanStart  bool // all human seats have a nickname
	Remaining int  // cards left in the deck
	Seats     [2]SeatState
	Outcome   *Outcome // set once DetermineWinner ran for this round
}

// Outcome is the result of a finished round.
type Outcome struct {
	Winner    Seat // NoSeat for a draw
	Blackjack bool // the winner has exactly 21
	Draw      bool
	Message   string
}

// DetermineOutcome applies the winning rules, first match wins:
// a lone 21 wins with a Blackjack, a lone bust loses, then the higher
// score under 21 wins; equal scores and double busts are a draw.
func DetermineOutcome(names [2]string, scores [2]int) Outcome {
	a, b := scores[SeatA], scores[SeatB]
	win := func(s Seat, blackjack bool) Outcome {
		o := Outcome{Winner: s, Blackjack: blackjack}
		if blackjack {
			o.Message = names[s] + " wins with Blackjack."
		} else {
			o.Message = names[s] + " wins."
		}
		return o
	}
	switch {
	case a == Target && b != Target:
		return win(SeatA, true)
	case b == Target && a != Target:
		return win(SeatB, true)
	case a > Target && b <= Target:
		return win(SeatB, false)
	case b > Target && a <= Target:
		return win(SeatA, false)
	case a <= Target && b <= Target && a > b:
		return win(SeatA, false)
	case a <= Target && b <= Target && b > a:
		return win(SeatB, false)
	}
	return Outcome{Winner: NoSeat, Draw: true, Message: "Draw."}
}
