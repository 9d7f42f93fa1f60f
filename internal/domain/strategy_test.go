package domain

import (
	"errors"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// Test all known strategies round-trip
	cases := map[string]Strategy{
		"full":   StrategyFull,
		"random": StrategyRandom,
		"smart":  StrategySmart,
	}

	for input, want := range cases {
		got, err := ParseStrategy(input)
		if err != nil {
			t.Errorf("ParseStrategy(%q): expected no error, got %v", input, err)
		}
		if got != want {
			t.Errorf("ParseStrategy(%q): expected %v, got %v", input, want, got)
		}
		if got.String() != input {
			t.Errorf("Strategy.String(): expected %q, got %q", input, got.String())
		}
	}

	// Test unknown and near-miss inputs
	for _, input := range []string{"", "FULL", "Random", "smartest", "adaptive"} {
		_, err := ParseStrategy(input)
		if !errors.Is(err, ErrUnsupportedStrategy) {
			t.Errorf("ParseStrategy(%q): expected ErrUnsupportedStrategy, got %v", input, err)
		}
	}
}
