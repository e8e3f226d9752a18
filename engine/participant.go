package engine

import "strconv"

// Seat identifies one of the two participants of a round.
type Seat int

const (
	NoSeat Seat = -1
	SeatA  Seat = 0
	SeatB  Seat = 1
)

// Other returns the opposite seat.
func (s Seat) Other() Seat {
	return 1 - s
}

func (s Seat) Valid() bool {
	return s == SeatA || s == SeatB
}

func (s Seat) String() string {
	switch s {
	case SeatA:
		return "A"
	case SeatB:
		return "B"
	case NoSeat:
		return "none"
	}
	return "Seat(" + strconv.Itoa(int(s)) + ")"
}

// Kind tells who makes the decisions for a participant.
type Kind int

const (
	Human Kind = iota
	Bot
)

func (k Kind) String() string {
	if k == Bot {
		return "bot"
	}
	return "human"
}

// DefaultBotThreshold is the score at or above which a bot stands.
const DefaultBotThreshold = 17

// Participant is a named player holding one hand, plus the session tallies
// that survive from one round to the next.
type Participant struct {
	Name      string
	Kind      Kind
	Threshold int // bots hit while their score is below it
	hand      Hand
	standing  bool
	wins      int
	losses    int
	draws     int
}

// ShouldHit is the bot policy: hit while the score is under the threshold.
func (p *Participant) ShouldHit() bool {
	return p.hand.Score() < p.Threshold
}

func (p *Participant) clearHand() {
	p.hand.Clear()
	p.standing = false
}

func (p *Participant) clearTallies() {
	p.wins, p.losses, p.draws = 0, 0, 0
}
