// Package scheduler contains the pure selection algorithms used to build
// study sessions: the adaptive sizing formula for the smart strategy and a
// seedable uniform sampler for the random strategy.
//
// The package holds no persistent state and performs no I/O; the study
// service feeds it card lists loaded from the catalog and combines its
// output with mistake statistics where the strategy requires them.
package scheduler
