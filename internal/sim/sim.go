// internal/sim/sim.go
//
// Simulation driver: plays many independent rounds of the game under a fixed
// strategy and aggregates the wins.
// Responsibilities:
//   - Draw the candidate's first choice from the candidate source.
//   - Build a fresh game per trial from the host source.
//   - Apply the stay or switch strategy and count wins.
//
// Notes:
//   - Trials run sequentially; both sources belong to one Simulator.
//   - Any trial error aborts the whole run. The driver only builds valid
//     games, so an error here is a defect rather than bad input.
package sim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/montyhall/internal/game"
)

// Strategy is the candidate's fixed behaviour for the second choice.
type Strategy int

const (
	// Stay never changes from the initial choice.
	Stay Strategy = iota
	// Switch always changes to the door the host left closed.
	Switch
)

// String returns the strategy name used in logs.
func (s Strategy) String() string {
	switch s {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Strategies lists the strategies in report order.
var Strategies = []Strategy{Stay, Switch}

// Result aggregates the outcome of a run for one door count and strategy.
type Result struct {
	Doors    int
	Strategy Strategy
	Games    int
	Wins     int
}

// WinRate reports Wins/Games, or 0 when no games were played.
func (r Result) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// Expected reports the theoretical win probability for the strategy.
func (r Result) Expected() float64 {
	if r.Doors <= 0 {
		return 0
	}
	p := 1 / float64(r.Doors)
	if r.Strategy == Switch {
		return 1 - p
	}
	return p
}

// Simulator plays trials using a host and a candidate random source.
// It is not safe for concurrent use.
type Simulator struct {
	host      game.Source
	candidate game.Source
	log       zerolog.Logger
}

// New constructs a Simulator. host and candidate may be the same source.
func New(host, candidate game.Source, logger zerolog.Logger) *Simulator {
	return &Simulator{host: host, candidate: candidate, log: logger}
}

// PlayOnce plays a single trial and reports whether the candidate won.
func (s *Simulator) PlayOnce(doors int, strategy Strategy) (bool, error) {
	first := s.candidate.Intn(doors)
	g, err := game.New(doors, first, s.host)
	if err != nil {
		return false, err
	}

	switch strategy {
	case Stay:
		return g.Resolve(nil)
	case Switch:
		second, err := g.RemainingDoor()
		if err != nil {
			return false, err
		}
		return g.Resolve(&second)
	default:
		return false, fmt.Errorf("%w: unknown strategy %d", game.ErrInvalidConfiguration, int(strategy))
	}
}

// Run plays games trials with doors doors under strategy.
func (s *Simulator) Run(doors, games int, strategy Strategy) (Result, error) {
	if games <= 0 {
		return Result{}, fmt.Errorf("%w: trial count %d must be positive", game.ErrInvalidConfiguration, games)
	}
	if doors < game.MinDoors {
		return Result{}, fmt.Errorf("%w: door count %d is below %d", game.ErrInvalidConfiguration, doors, game.MinDoors)
	}

	res := Result{Doors: doors, Strategy: strategy}
	for i := 0; i < games; i++ {
		won, err := s.PlayOnce(doors, strategy)
		if err != nil {
			return res, fmt.Errorf("trial %d (%d doors, %s): %w", i, doors, strategy, err)
		}
		res.Games++
		if won {
			res.Wins++
		}
	}

	s.log.Debug().
		Int("doors", doors).
		Str("strategy", strategy.String()).
		Int("games", res.Games).
		Int("wins", res.Wins).
		Float64("observed", res.WinRate()).
		Float64("expected", res.Expected()).
		Msg("strategy run complete")
	return res, nil
}

// RunAll runs every strategy for each door count, in order.
// Results are grouped by door count, stay before switch.
func (s *Simulator) RunAll(doorCounts []int, games int) ([]Result, error) {
	if len(doorCounts) == 0 {
		return nil, fmt.Errorf("%w: no door counts", game.ErrInvalidConfiguration)
	}

	out := make([]Result, 0, len(doorCounts)*len(Strategies))
	for _, doors := range doorCounts {
		for _, strategy := range Strategies {
			res, err := s.Run(doors, games, strategy)
			if err != nil {
				return out, err
			}
			out = append(out, res)
		}
		s.log.Info().Int("doors", doors).Int("games", games).Msg("door count simulated")
	}
	return out, nil
}

// IsFatal reports whether err signals an unsound simulation rather than
// a configuration mistake.
func IsFatal(err error) bool {
	return errors.Is(err, game.ErrInvariantViolation)
}
