// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the application's interfaces with function
// fields for per-test behavior and call tracking for verification, so test
// files can share implementations instead of defining inline mocks.
package mocks
