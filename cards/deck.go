package cards

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
var ErrEmptyDeck = errors.New("empty deck")

// Deck is an ordered pile of cards; the top of the deck is the last card.
// A Deck is owned by a single round and is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   *rand.Rand // nil means the math/rand/v2 top level generator
}

// NewDeck returns a built (unshuffled) 52-card deck using rng for shuffles.
// Pass a seeded generator for reproducible games, nil otherwise.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Build()
	return d
}

// Build replaces the content with the 52 cards in suit then rank order.
func (d *Deck) Build() {
	d.cards = make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// Shuffle applies a uniform random permutation to the remaining cards.
func (d *Deck) Shuffle() {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if d.rng == nil {
		rand.Shuffle(len(d.cards), swap)
		return
	}
	d.rng.Shuffle(len(d.cards), swap)
}

// Reset is Build followed by Shuffle, what every new round does.
func (d *Deck) Reset() {
	d.Build()
	d.Shuffle()
}

// Draw removes and returns the top card. The deck is left untouched
// and ErrEmptyDeck returned when there is nothing left.
func (d *Deck) Draw() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

// MustDraw is Draw for callers for which an empty deck is a bug: it panics.
func (d *Deck) MustDraw() Card {
	c, err := d.Draw()
	if err != nil {
		panic(err)
	}
	return c
}

// Remaining is the number of cards left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
