package engine

import (
	"slices"

	"fortio.org/blackjack/cards"
)

const (
	// Target is the best possible score, a Blackjack.
	Target = 21
	// softBonus is what counting one ace high adds to the low total.
	softBonus = 10
)

// Score computes the blackjack total of cards: every card at its minimum,
// then a single ace counted high if that doesn't go over Target.
// At most one ace is ever upgraded.
func Score(hand []cards.Card) int {
	total := 0
	hasAce := false
	for _, c := range hand {
		total += c.Min
		if c.IsAce() {
			hasAce = true
		}
	}
	if hasAce && total+softBonus <= Target {
		total += softBonus
	}
	return total
}

// Hand is the ordered list of cards dealt to one participant.
// Cards are only ever appended; the score is kept up to date on each Add.
type Hand struct {
	cards []cards.Card
	score int
}

// Add appends a card and recomputes the score.
func (h *Hand) Add(c cards.Card) {
	h.cards = append(h.cards, c)
	h.score = Score(h.cards)
}

// Clear empties the hand for a new round.
func (h *Hand) Clear() {
	h.cards = nil
	h.score = 0
}

func (h *Hand) Score() int {
	return h.score
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in dealing order.
func (h *Hand) Cards() []cards.Card {
	return slices.Clone(h.cards)
}

// Busted is true when the score is over 21.
func (h *Hand) Busted() bool {
	return h.score > Target
}

// Blackjack is true when the score is exactly 21, whatever the number of cards.
func (h *Hand) Blackjack() bool {
	return h.score == Target
}
