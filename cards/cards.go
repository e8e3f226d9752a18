// Package cards has the playing cards and the 52-card deck used by the
// blackjack engine.
package cards

import (
	"strconv"
	"strings"
)

// Rank of a card, Ace (1) through King (13). NoRank is never dealt.
type Rank uint8

const (
	NoRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks in deck order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

func (r Rank) String() string {
	switch r {
	case NoRank:
		return "?"
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(r))
	}
}

// Suit of a card. NoSuit is never dealt.
type Suit uint8

const (
	NoSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

// Suits in deck order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = [...]string{"none", "hearts", "diamonds", "clubs", "spades"}

// Name is the lowercase english name of the suit, also used in asset names.
func (s Suit) Name() string {
	if int(s) >= len(suitNames) {
		return suitNames[0]
	}
	return suitNames[s]
}

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case NoSuit:
	}
	return "?"
}

// Red is true for hearts and diamonds.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Asset is an opaque reference to the image of a card, resolved by the UI.
type Asset string

// BackAsset is the asset of a face down card.
const BackAsset Asset = "back"

const (
	// DeckSize is the number of cards in a full deck.
	DeckSize = 52
	// DeckMinPoints is the sum of the minimum points of a full deck.
	DeckMinPoints = 340
)

// Card is an immutable playing card with its blackjack point range.
type Card struct {
	Rank  Rank
	Suit  Suit
	Min   int
	Max   int
	Asset Asset
}

// NewCard returns the card for rank and suit with its points and asset filled in.
// Aces are worth 1 or 11, faces 10, the rest their number.
func NewCard(rank Rank, suit Suit) Card {
	c := Card{Rank: rank, Suit: suit}
	switch {
	case rank == Ace:
		c.Min, c.Max = 1, 11
	case rank >= Ten:
		c.Min, c.Max = 10, 10
	default:
		c.Min, c.Max = int(rank), int(rank)
	}
	c.Asset = Asset(suit.Name() + "_" + strconv.Itoa(int(rank)))
	return c
}

// FaceDown is the placeholder shown instead of a hidden card.
func FaceDown() Card {
	return Card{Asset: BackAsset}
}

// IsAce is true for cards that can count either low (1) or high (11).
func (c Card) IsAce() bool {
	return c.Min != c.Max && c.Max == 11
}

// Hidden is true for the FaceDown placeholder.
func (c Card) Hidden() bool {
	return c.Rank == NoRank
}

func (c Card) String() string {
	if c.Hidden() {
		return "??"
	}
	return c.Rank.String() + c.Suit.String()
}

// Join formats a list of cards separated by spaces.
func Join(cards []Card) string {
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
