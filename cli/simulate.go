package cli

import (
	"fmt"
	"io"
	"strconv"

	"fortio.org/blackjack/ansipixels"
	"fortio.org/blackjack/config"
	"fortio.org/blackjack/engine"
	"fortio.org/log"
)

// Tally is the summary of a simulation.
type Tally struct {
	Rounds     int
	Names      [2]string
	Wins       [2]int
	Draws      int
	Blackjacks [2]int
	Busts      [2]int
}

func (t *Tally) add(st engine.State) {
	t.Rounds++
	for s, seat := range st.Seats {
		t.Names[s] = seat.Name
		t.Wins[s] = seat.Wins
		t.Draws = seat.Draws
		if seat.Blackjack {
			t.Blackjacks[s]++
		}
		if seat.Busted {
			t.Busts[s]++
		}
	}
}

// Table is the tally as rows for ansipixels.CreateTableLines.
func (t *Tally) Table() [][]string {
	table := [][]string{{"Bot", "Wins", "Win %", "Blackjacks", "Busts"}}
	for s := range 2 {
		table = append(table, []string{
			t.Names[s],
			strconv.Itoa(t.Wins[s]),
			percent(t.Wins[s], t.Rounds),
			strconv.Itoa(t.Blackjacks[s]),
			strconv.Itoa(t.Busts[s]),
		})
	}
	return append(table, []string{"Draws", strconv.Itoa(t.Draws), percent(t.Draws, t.Rounds), "", ""})
}

func percent(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

// Simulate plays cfg.Rounds rounds between two bots, both using the
// configured threshold, and writes the summary table to out.
func Simulate(cfg config.Config, out io.Writer) (Tally, error) {
	var t Tally
	opts := cfg.Options()
	opts.Mode = engine.ModeSim
	opts.Names = [2]string{}
	opts.Rand = NewRand(cfg.Seed)
	r, err := engine.New(opts)
	if err != nil {
		return t, err
	}
	for i := range cfg.Rounds {
		if i == 0 {
			_, err = r.NewGame("", "")
		} else {
			_, err = r.ResetRound(true)
		}
		if err != nil {
			return t, err
		}
		// bots play as soon as the cards are dealt
		if _, err = r.DetermineWinner(); err != nil {
			return t, err
		}
		t.add(r.State())
	}
	log.Infof("Simulated %d rounds, %s won %d and %s won %d, %d draws",
		t.Rounds, t.Names[0], t.Wins[0], t.Names[1], t.Wins[1], t.Draws)
	lines, _ := ansipixels.CreateTableLines(
		[]ansipixels.Alignment{ansipixels.Left, ansipixels.Right, ansipixels.Right, ansipixels.Right, ansipixels.Right},
		1, t.Table(), ansipixels.BorderOuterColumns)
	for _, l := range lines {
		if _, err = fmt.Fprintln(out, l); err != nil {
			return t, err
		}
	}
	return t, nil
}
