package cards_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"fortio.org/blackjack/cards"
)

func TestNewCardPoints(t *testing.T) {
	tests := []struct {
		rank     cards.Rank
		min, max int
		str      string
	}{
		{cards.Ace, 1, 11, "A♠"},
		{cards.Two, 2, 2, "2♠"},
		{cards.Nine, 9, 9, "9♠"},
		{cards.Ten, 10, 10, "10♠"},
		{cards.Jack, 10, 10, "J♠"},
		{cards.Queen, 10, 10, "Q♠"},
		{cards.King, 10, 10, "K♠"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			c := cards.NewCard(tt.rank, cards.Spades)
			if c.Min != tt.min || c.Max != tt.max {
				t.Errorf("NewCard(%v) points = %d/%d, want %d/%d", tt.rank, c.Min, c.Max, tt.min, tt.max)
			}
			if c.IsAce() != (tt.rank == cards.Ace) {
				t.Errorf("IsAce() = %v for %v", c.IsAce(), tt.rank)
			}
			if c.String() != tt.str {
				t.Errorf("String() = %q, want %q", c.String(), tt.str)
			}
		})
	}
}

func TestAssets(t *testing.T) {
	if got := cards.NewCard(cards.Ace, cards.Hearts).Asset; got != "hearts_1" {
		t.Errorf("ace of hearts asset = %q", got)
	}
	if got := cards.NewCard(cards.King, cards.Clubs).Asset; got != "clubs_13" {
		t.Errorf("king of clubs asset = %q", got)
	}
	back := cards.FaceDown()
	if back.Asset != cards.BackAsset || !back.Hidden() || back.String() != "??" {
		t.Errorf("unexpected face down card %#v", back)
	}
}

func TestBuildDeck(t *testing.T) {
	d := cards.NewDeck(nil)
	all := d.Cards()
	if len(all) != cards.DeckSize {
		t.Fatalf("deck size = %d, want %d", len(all), cards.DeckSize)
	}
	seen := make(map[[2]int]bool)
	sum := 0
	for _, c := range all {
		key := [2]int{int(c.Rank), int(c.Suit)}
		if seen[key] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[key] = true
		if c.Rank == cards.NoRank || c.Suit == cards.NoSuit {
			t.Fatalf("sentinel in deck: %#v", c)
		}
		sum += c.Min
	}
	if sum != cards.DeckMinPoints {
		t.Errorf("sum of min points = %d, want %d", sum, cards.DeckMinPoints)
	}
	// suit major, rank minor
	if all[0] != cards.NewCard(cards.Ace, cards.Hearts) || all[51] != cards.NewCard(cards.King, cards.Spades) {
		t.Errorf("unexpected build order: first %v last %v", all[0], all[51])
	}
	if all[13] != cards.NewCard(cards.Ace, cards.Diamonds) {
		t.Errorf("card 13 = %v, want A♦", all[13])
	}
}

func sortKey(a, b cards.Card) int {
	if a.Suit != b.Suit {
		return int(a.Suit) - int(b.Suit)
	}
	return int(a.Rank) - int(b.Rank)
}

func TestShufflePreservesCards(t *testing.T) {
	d := cards.NewDeck(rand.New(rand.NewPCG(42, 42))) //nolint:gosec // deterministic test.
	before := d.Cards()
	d.Shuffle()
	after := d.Cards()
	if slices.Equal(before, after) {
		t.Errorf("shuffle did not change the order")
	}
	slices.SortFunc(after, sortKey)
	if !slices.Equal(before, after) {
		t.Errorf("shuffle changed the set of cards")
	}
}

func TestShuffleSeedIsReproducible(t *testing.T) {
	d1 := cards.NewDeck(rand.New(rand.NewPCG(7, 7))) //nolint:gosec // deterministic test.
	d2 := cards.NewDeck(rand.New(rand.NewPCG(7, 7))) //nolint:gosec // deterministic test.
	d1.Shuffle()
	d2.Shuffle()
	if !slices.Equal(d1.Cards(), d2.Cards()) {
		t.Errorf("same seed gave different orders")
	}
}

func TestDraw(t *testing.T) {
	d := cards.NewDeck(rand.New(rand.NewPCG(1, 2))) //nolint:gosec // deterministic test.
	d.Shuffle()
	top := d.Cards()[cards.DeckSize-1]
	drawn := make(map[cards.Card]bool)
	for i := range cards.DeckSize {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("draw %d: unexpected error %v", i, err)
		}
		if i == 0 && c != top {
			t.Errorf("first draw = %v, want top card %v", c, top)
		}
		if drawn[c] {
			t.Fatalf("card %v drawn twice", c)
		}
		drawn[c] = true
		if d.Remaining() != cards.DeckSize-i-1 {
			t.Fatalf("remaining = %d after %d draws", d.Remaining(), i+1)
		}
		if slices.Contains(d.Cards(), c) {
			t.Fatalf("drawn card %v still in deck", c)
		}
	}
	_, err := d.Draw()
	if !errors.Is(err, cards.ErrEmptyDeck) {
		t.Errorf("draw on empty deck error = %v, want %v", err, cards.ErrEmptyDeck)
	}
}

func TestMustDrawPanicsOnEmpty(t *testing.T) {
	d := cards.NewDeck(nil)
	for range cards.DeckSize {
		d.MustDraw()
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustDraw on empty deck did not panic")
		}
	}()
	d.MustDraw()
}

func TestResetRefills(t *testing.T) {
	d := cards.NewDeck(nil)
	d.MustDraw()
	d.MustDraw()
	d.Reset()
	if d.Remaining() != cards.DeckSize {
		t.Errorf("remaining after reset = %d", d.Remaining())
	}
}

func TestJoin(t *testing.T) {
	hand := []cards.Card{cards.NewCard(cards.Ace, cards.Hearts), cards.NewCard(cards.Ten, cards.Clubs), cards.FaceDown()}
	if got := cards.Join(hand); got != "A♥ 10♣ ??" {
		t.Errorf("Join() = %q", got)
	}
}
