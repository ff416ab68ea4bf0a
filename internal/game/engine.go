// internal/game/engine.go
//
// Core game engine for a single round of the N-door Monty Hall game.
// Responsibilities:
//   - Create games with a validated door count and first choice.
//   - Draw the winning door once, from the injected host source.
//   - Compute the goat doors the host opens, memoizing the random pick.
//   - Resolve the round for a staying or switching candidate.
//
// Notes:
//   - The winning door is never exposed; callers only learn it through Resolve.
//   - Randomness is injected, so tests can force outcomes with a scripted Source.
package game

import "fmt"

// New constructs a game with doors doors and the candidate's first choice.
// The winning door is drawn from host exactly once.
//
// Returns ErrInvalidConfiguration when doors < MinDoors or when firstChoice
// is outside [0, doors).
func New(doors, firstChoice int, host Source) (*Game, error) {
	if doors < MinDoors {
		return nil, fmt.Errorf("%w: door count %d is below %d", ErrInvalidConfiguration, doors, MinDoors)
	}
	if firstChoice < 0 || firstChoice >= doors {
		return nil, fmt.Errorf("%w: first choice %d is outside [0, %d)", ErrInvalidConfiguration, firstChoice, doors)
	}
	return &Game{
		doors:       doors,
		firstChoice: firstChoice,
		winningDoor: host.Intn(doors),
		host:        host,
		state:       StateCreated,
	}, nil
}

// Doors reports the number of doors in the game.
func (g *Game) Doors() int { return g.doors }

// FirstChoice reports the candidate's initial pick.
func (g *Game) FirstChoice() int { return g.firstChoice }

// State reports the lifecycle stage of the game.
func (g *Game) State() State { return g.state }

// RevealGoats returns the doors the host opens, in ascending order.
//
// Host policy:
//   - Candidate picked the car: one goat door, drawn uniformly among all other
//     doors, stays closed; every other goat door is opened.
//   - Candidate picked a goat: every door except the first choice and the
//     winning door is opened.
//
// Either way doors-2 doors are returned and exactly two stay closed. The
// random pick is drawn on the first call only; later calls return the same set.
func (g *Game) RevealGoats() []int {
	g.reveal()
	out := make([]int, len(g.revealed))
	copy(out, g.revealed)
	return out
}

// RemainingDoor returns the one closed door other than the first choice.
// An error wrapping ErrInvariantViolation means the reveal is unsound.
// The door is computed once and cached.
func (g *Game) RemainingDoor() (int, error) {
	if g.hasRemain {
		return g.remaining, nil
	}
	g.reveal()

	opened := make([]bool, g.doors)
	for _, d := range g.revealed {
		opened[d] = true
	}

	remaining := -1
	count := 0
	for d := 0; d < g.doors; d++ {
		if d == g.firstChoice || opened[d] {
			continue
		}
		remaining = d
		count++
	}
	if count != 1 {
		return 0, fmt.Errorf("%w: %d doors left closed besides the first choice, want 1", ErrInvariantViolation, count)
	}
	g.remaining, g.hasRemain = remaining, true
	return remaining, nil
}

// Resolve reports whether the candidate wins.
// A nil secondChoice keeps the first choice; otherwise it must be the door
// returned by RemainingDoor, or ErrInvalidConfiguration is returned.
func (g *Game) Resolve(secondChoice *int) (bool, error) {
	final := g.firstChoice
	if secondChoice != nil {
		remaining, err := g.RemainingDoor()
		if err != nil {
			return false, err
		}
		if *secondChoice != remaining {
			return false, fmt.Errorf("%w: second choice %d is not the remaining door %d", ErrInvalidConfiguration, *secondChoice, remaining)
		}
		final = *secondChoice
	}
	g.state = StateResolved
	return final == g.winningDoor, nil
}

// reveal computes the host's opened doors once.
func (g *Game) reveal() {
	if g.revealed != nil {
		return
	}

	keepClosed := g.winningDoor
	if g.firstChoice == g.winningDoor {
		// Every other door hides a goat; the k-th of them stays closed.
		k := g.host.Intn(g.doors - 1)
		keepClosed = k
		if k >= g.firstChoice {
			keepClosed = k + 1
		}
	}

	revealed := make([]int, 0, g.doors-2)
	for d := 0; d < g.doors; d++ {
		if d == g.firstChoice || d == keepClosed {
			continue
		}
		revealed = append(revealed, d)
	}
	g.revealed = revealed
	if g.state == StateCreated {
		g.state = StateGoatsRevealed
	}
}
