package cli

import (
	"strconv"
	"strings"

	"fortio.org/blackjack/ansipixels"
	"fortio.org/blackjack/cards"
	"fortio.org/blackjack/engine"
)

const (
	cardBack   = "░░░░░"
	cardWidth  = 5
	cardHeight = 3
	turnMarker = "▶ "
	noMarker   = "  "
)

// Action is what a key does at the table.
type Action int

const (
	ActionNone Action = iota
	ActionHit
	ActionStand
	ActionReveal
	ActionNextRound   // new round, keeping the scores
	ActionResetScores // new round, scores back to 0
	ActionEndGame     // back to the nicknames
	ActionQuit
)

// ActionFor maps a key to an action, given the phase of the round.
func ActionFor(key byte, phase engine.Phase) Action {
	switch key {
	case 'q', 'Q', ansipixels.CtrlC:
		return ActionQuit
	}
	if phase == engine.Configuring {
		return ActionNone
	}
	switch key {
	case 'n', 'N':
		return ActionNextRound
	case 'z', 'Z':
		return ActionResetScores
	case 'e', 'E':
		return ActionEndGame
	}
	if phase != engine.InProgress {
		return ActionNone
	}
	switch key {
	case 'h', 'H':
		return ActionHit
	case 's', 'S':
		return ActionStand
	case 'r', 'R':
		return ActionReveal
	}
	return ActionNone
}

// CardLines draws a card, or its back when hidden, as cardHeight lines.
func CardLines(c cards.Card, hidden bool) []string {
	if hidden || c.Hidden() {
		back := ansipixels.WhiteBG + ansipixels.Blue + cardBack + ansipixels.Reset
		return []string{back, back, back}
	}
	color := ansipixels.WhiteBG + ansipixels.Black
	if c.Suit.Red() {
		color = ansipixels.WhiteBG + ansipixels.Red
	}
	suit := c.Suit.String()
	value := c.Rank.String()
	left := (cardWidth - len(value)) / 2
	return []string{
		color + suit + strings.Repeat(" ", cardWidth-1) + ansipixels.Reset,
		color + strings.Repeat(" ", left) + value + strings.Repeat(" ", cardWidth-left-len(value)) + ansipixels.Reset,
		color + strings.Repeat(" ", cardWidth-1) + suit + ansipixels.Reset,
	}
}

// RenderSeat returns the header line of a seat followed by its cards.
// A hidden seat shows card backs and no score.
func RenderSeat(st engine.SeatState, hidden, onTurn bool) []string {
	var header strings.Builder
	if onTurn {
		header.WriteString(ansipixels.Bold + turnMarker + ansipixels.Reset)
	} else {
		header.WriteString(noMarker)
	}
	if hidden {
		header.WriteString(st.Name + " - ? points")
	} else {
		header.WriteString(st.Info())
	}
	switch {
	case st.Busted && !hidden:
		header.WriteString(ansipixels.Red + " busted" + ansipixels.Reset)
	case st.Blackjack && !hidden:
		header.WriteString(ansipixels.BrightGreen + " Blackjack!" + ansipixels.Reset)
	case st.Standing:
		header.WriteString(ansipixels.DarkGray + " stands" + ansipixels.Reset)
	}
	if st.Kind == engine.Bot {
		header.WriteString(ansipixels.DarkGray + " (" + st.Kind.String() + ")" + ansipixels.Reset)
	}
	rows := make([]string, cardHeight)
	for i, c := range st.Cards {
		for j, l := range CardLines(c, hidden) {
			if i > 0 {
				rows[j] += " "
			}
			rows[j] += l
		}
	}
	return append([]string{header.String()}, rows...)
}

// Scoreboard is the session tally table.
func Scoreboard(st engine.State) [][]string {
	table := [][]string{{"Player", "Wins", "Losses", "Draws"}}
	for _, s := range st.Seats {
		table = append(table, []string{s.Name, strconv.Itoa(s.Wins), strconv.Itoa(s.Losses), strconv.Itoa(s.Draws)})
	}
	return table
}

// HelpLine lists the keys valid in the current phase.
func HelpLine(st engine.State) string {
	switch st.Phase {
	case engine.InProgress:
		if st.Mode == engine.ModePvP {
			return "h: hit  s: stand  r: show/hide cards  n: restart round  q: quit"
		}
		return "h: hit  s: stand  n: restart round  q: quit"
	case engine.RoundOver:
		return "n: next round  z: reset scores  e: end game  q: quit"
	case engine.Configuring:
	}
	return "q: quit"
}
