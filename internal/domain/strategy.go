package domain

import "fmt"

// Strategy identifies the selection policy used to build a session's
// question list. The set of strategies is closed; free-form strings from the
// request layer must go through ParseStrategy before reaching the scheduler.
type Strategy string

// Possible strategy values
const (
	// StrategyFull selects every card of the exam in catalog order.
	StrategyFull Strategy = "full"

	// StrategyRandom selects a uniform sample of the exam's cards without
	// replacement. An optional size hint bounds the sample.
	StrategyRandom Strategy = "random"

	// StrategySmart selects the cards the user has missed most often,
	// sized by the adaptive sizing formula.
	StrategySmart Strategy = "smart"
)

// ParseStrategy validates a strategy name received at the boundary and
// returns the corresponding Strategy value.
// Returns ErrUnsupportedStrategy for any unknown name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFull, StrategyRandom, StrategySmart:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStrategy, s)
	}
}

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}
