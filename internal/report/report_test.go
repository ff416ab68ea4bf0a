package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/montyhall/internal/sim"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		wins, games int
		want        string
	}{
		{wins: 33210, games: 100000, want: "33.21"},
		{wins: 1, games: 3, want: "33.33"},
		{wins: 2, games: 3, want: "66.67"},
		{wins: 1, games: 8, want: "12.50"},
		{wins: 1, games: 800, want: "0.13"},
		{wins: 5, games: 5, want: "100.00"},
		{wins: 0, games: 0, want: "0.00"},
		// 0.00499999999975%: must not round up through an intermediate precision.
		{wins: 1000000, games: 20000000001, want: "0.00"},
		{wins: 1, games: 20000, want: "0.01"},
	}
	for _, tt := range tests {
		if got := Percent(tt.wins, tt.games); got != tt.want {
			t.Errorf("Percent(%d, %d) = %q, want %q", tt.wins, tt.games, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	results := []sim.Result{
		{Doors: 3, Strategy: sim.Stay, Games: 100000, Wins: 33210},
		{Doors: 3, Strategy: sim.Switch, Games: 100000, Wins: 66650},
	}

	var buf bytes.Buffer
	if err := Write(&buf, results); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "Probability to win a 3-doors game when NEVER changing from the initial choice: 33.21% (for 100000 games)\n" +
		"Probability to win a 3-doors game when ALWAYS changing from the initial choice: 66.65% (for 100000 games)\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() =\n%s\nwant\n%s", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_Error(t *testing.T) {
	err := Write(failingWriter{}, []sim.Result{{Doors: 3, Games: 1}})
	if err == nil || !strings.Contains(err.Error(), "write report") {
		t.Errorf("Write() error = %v, want wrapped write error", err)
	}
}
