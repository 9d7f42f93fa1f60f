package scheduler

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func newIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestSamplerSampleSubset(t *testing.T) {
	t.Parallel() // Enable parallel execution

	sampler := NewSampler(rand.NewSource(1))
	ids := newIDs(10)

	got := sampler.Sample(ids, 4)
	if len(got) != 4 {
		t.Fatalf("Expected 4 IDs, got %d", len(got))
	}

	// Every sampled ID is a member of the input, with no duplicates
	members := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		members[id] = true
	}
	seen := make(map[uuid.UUID]bool, len(got))
	for _, id := range got {
		if !members[id] {
			t.Errorf("Sampled ID %s is not a member of the input", id)
		}
		if seen[id] {
			t.Errorf("Sampled ID %s appears more than once", id)
		}
		seen[id] = true
	}
}

func TestSamplerClampsToInputSize(t *testing.T) {
	t.Parallel() // Enable parallel execution

	sampler := NewSampler(rand.NewSource(1))
	ids := newIDs(3)

	got := sampler.Sample(ids, 10)
	if len(got) != len(ids) {
		t.Errorf("Expected the sample clamped to %d IDs, got %d", len(ids), len(got))
	}
}

func TestSamplerZeroAndNegativeK(t *testing.T) {
	t.Parallel() // Enable parallel execution

	sampler := NewSampler(rand.NewSource(1))
	ids := newIDs(5)

	got := sampler.Sample(ids, 0)
	if got == nil || len(got) != 0 {
		t.Errorf("Expected an empty non-nil slice for k=0, got %v", got)
	}

	got = sampler.Sample(ids, -3)
	if got == nil || len(got) != 0 {
		t.Errorf("Expected an empty non-nil slice for negative k, got %v", got)
	}
}

func TestSamplerDoesNotModifyInput(t *testing.T) {
	t.Parallel() // Enable parallel execution

	sampler := NewSampler(rand.NewSource(7))
	ids := newIDs(8)
	original := make([]uuid.UUID, len(ids))
	copy(original, ids)

	sampler.Sample(ids, 5)

	for i := range ids {
		if ids[i] != original[i] {
			t.Fatalf("Expected input slice to be unmodified, changed at index %d", i)
		}
	}
}

func TestSamplerSeededReproducibility(t *testing.T) {
	t.Parallel() // Enable parallel execution

	ids := newIDs(12)

	first := NewSampler(rand.NewSource(42)).Sample(ids, 6)
	second := NewSampler(rand.NewSource(42)).Sample(ids, 6)

	if len(first) != len(second) {
		t.Fatalf("Expected equal sample sizes, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected identical samples from identically seeded samplers, diverged at index %d", i)
		}
	}
}
