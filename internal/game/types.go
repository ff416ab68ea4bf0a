// internal/game/types.go
//
// Core type definitions for the Monty Hall game engine.
// Defines:
//   - Source: the random source the host draws from.
//   - State: coarse lifecycle of a single game (created/revealed/resolved).
//   - Game: state for a single round of play.
//   - Sentinel errors returned by the engine.

package game

import "errors"

// MinDoors is the smallest door count for which the game is not degenerate.
const MinDoors = 3

var (
	// ErrInvalidConfiguration is returned for caller-correctable mistakes:
	// a door count below MinDoors, a first choice out of range, or a second
	// choice other than the door the host left closed.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvariantViolation signals a defect in the engine itself: the host's
	// reveal did not leave exactly one other door closed.
	ErrInvariantViolation = errors.New("internal invariant violation")
)

// Source is the subset of *rand.Rand the engine needs.
// Intn must return a uniformly distributed value in [0, n).
type Source interface {
	Intn(n int) int
}

// State represents the lifecycle stage of a Game.
// The stages are sequencing only; every method may be called in any stage.
type State string

const (
	StateCreated       State = "created"
	StateGoatsRevealed State = "goats_revealed"
	StateResolved      State = "resolved"
)

// Game holds the state of a single round.
// A Game is not safe for concurrent use.
type Game struct {
	doors       int    // Number of doors (>= MinDoors).
	firstChoice int    // Candidate's initial pick.
	winningDoor int    // Door hiding the car; drawn once at construction.
	host        Source // Host's random source, used for the goat kept closed.

	revealed  []int // Doors opened by the host, ascending; nil until computed.
	remaining int   // Closed door besides the first choice; valid once hasRemain.
	hasRemain bool
	state     State
}
