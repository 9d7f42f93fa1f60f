package scheduler

import "math"

// smoothingConstant dampens the catalog-size ratio in the sizing formula.
// Small catalogs yield sessions close to the full deck; as the catalog grows
// the ratio converges toward 1 and the session shrinks to roughly half.
const smoothingConstant = 10.0

// SmartSessionSize computes the target question count for a smart session
// from the exam's total card count.
//
// For catalogs of zero or one card the result is the card count itself.
// Otherwise the size is
//
//	round(cardCount * (1.5 - cardCount/(10+cardCount)))
//
// with round-half-to-even, and never less than 1. At exactly 10 cards the
// formula still yields the full deck; at 30 cards it yields 22.
func SmartSessionSize(cardCount int) int {
	if cardCount <= 1 {
		return cardCount
	}

	n := float64(cardCount)
	targetRatio := n / (smoothingConstant + n)
	size := int(math.RoundToEven(n * (1.5 - targetRatio)))

	if size < 1 {
		return 1
	}
	return size
}
