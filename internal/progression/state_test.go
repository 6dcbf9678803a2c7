package progression

import (
	"errors"
	"testing"
)

func TestTransitionTable(t *testing.T) {
	all := []State{StateTitle, StateLevelSelect, StateLoading, StatePlaying, StateGameOver}
	allowed := map[[2]State]bool{
		{StateTitle, StateLevelSelect}:    true,
		{StateLevelSelect, StateTitle}:    true,
		{StateLevelSelect, StateLoading}:  true,
		{StateLoading, StatePlaying}:      true,
		{StatePlaying, StateGameOver}:     true,
		{StateGameOver, StateLevelSelect}: true,
		{StateGameOver, StatePlaying}:     true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]State{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
			err := checkTransition(from, to)
			if want && err != nil {
				t.Errorf("checkTransition(%s, %s) = %v", from, to, err)
			}
			if !want && !errors.Is(err, ErrIllegalTransition) {
				t.Errorf("checkTransition(%s, %s) = %v, want ErrIllegalTransition", from, to, err)
			}
		}
	}
}

func TestOutcomeRoundTrip(t *testing.T) {
	for _, o := range []Outcome{OutcomeNone, OutcomeComplete, OutcomeDissolved, OutcomeTimeUp} {
		if got := ParseOutcome(o.String()); got != o {
			t.Errorf("ParseOutcome(%q) = %v", o.String(), got)
		}
	}
}
