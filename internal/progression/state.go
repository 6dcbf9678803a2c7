// Package progression runs a play session and the screen flow around it:
// the state machine, star scoring, unlock gating and persisted progress.
package progression

import (
	"errors"
	"fmt"
)

// State is a screen of the game.
type State int

const (
	StateTitle State = iota
	StateLevelSelect
	StateLoading
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateLevelSelect:
		return "level_select"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrIllegalTransition is returned when a move is not in the transition table.
var ErrIllegalTransition = errors.New("progression: illegal transition")

// transitions lists every allowed edge. Anything absent is illegal.
var transitions = map[State][]State{
	StateTitle:       {StateLevelSelect},
	StateLevelSelect: {StateTitle, StateLoading},
	StateLoading:     {StatePlaying},
	StatePlaying:     {StateGameOver},
	StateGameOver:    {StateLevelSelect, StatePlaying},
}

// CanTransition reports whether from → to is an allowed edge.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func checkTransition(from, to State) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeComplete          // Reached the goal
	OutcomeDissolved         // Ran out of lives
	OutcomeTimeUp            // Time limit elapsed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeDissolved:
		return "dissolved"
	case OutcomeTimeUp:
		return "time_up"
	default:
		return "none"
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) Outcome {
	switch s {
	case "complete":
		return OutcomeComplete
	case "dissolved":
		return OutcomeDissolved
	case "time_up":
		return OutcomeTimeUp
	default:
		return OutcomeNone
	}
}
