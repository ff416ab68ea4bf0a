// Package report prints simulation results to the process output.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/robalobadob/montyhall/internal/sim"
)

var hundred = decimal.NewFromInt(100)

// Percent formats wins/games as a percentage with two decimal places,
// rounded half away from zero from the exact ratio.
func Percent(wins, games int) string {
	if games <= 0 {
		return decimal.Zero.StringFixed(2)
	}
	return decimal.NewFromInt(int64(wins)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(games)), 2).
		StringFixed(2)
}

// Line renders one result.
func Line(r sim.Result) string {
	verb := "NEVER"
	if r.Strategy == sim.Switch {
		verb = "ALWAYS"
	}
	return fmt.Sprintf("Probability to win a %d-doors game when %s changing from the initial choice: %s%% (for %d games)",
		r.Doors, verb, Percent(r.Wins, r.Games), r.Games)
}

// Write prints one line per result, in order.
func Write(w io.Writer, results []sim.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
