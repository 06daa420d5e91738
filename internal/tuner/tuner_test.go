package tuner

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPopulationKeepsDefaultAsFirstMember(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := NewPopulation(6, rng)
	if len(pop.Members) != 6 {
		t.Fatalf("expected 6 members, got %d", len(pop.Members))
	}
	if pop.Members[0].SubName != nil {
		t.Fatalf("expected member 0 to be the unlabeled baseline, got %q", *pop.Members[0].SubName)
	}
	for i := 1; i < 6; i++ {
		if pop.Members[i].SubName == nil {
			t.Fatalf("expected member %d to carry a generated sub-name", i)
		}
	}
}

func TestCrossoverGeneClampsToBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := crossoverGene(999, 999, rng)
		if v < geneMin || v > geneMax {
			t.Fatalf("crossoverGene produced out-of-range value %d", v)
		}
	}
}

func TestRunGeneration1PRanksAndBreeds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pop := NewPopulation(4, rng)

	opts := Options1P{
		PopulationSize:     4,
		EliteSize:          1,
		Parallel:           2,
		VisibleTumos:       2,
		MaxTumos:           5,
		SimulateCount:      1,
		RequiredChainScore: 1,
	}

	next, err := RunGeneration1P(context.Background(), pop, opts, rng)
	if err != nil {
		t.Fatalf("RunGeneration1P: %v", err)
	}
	if next.Generation != pop.Generation+1 {
		t.Fatalf("expected generation %d, got %d", pop.Generation+1, next.Generation)
	}
	if len(next.Members) != 4 {
		t.Fatalf("expected 4 members in the next generation, got %d", len(next.Members))
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(4))
	pop := NewPopulation(3, rng)

	if err := SaveCheckpoint(dir, nil, pop); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	loaded, ok := LoadCheckpoint(dir)
	if !ok {
		t.Fatal("expected LoadCheckpoint to succeed")
	}
	if loaded.Generation != pop.Generation || len(loaded.Members) != len(pop.Members) {
		t.Fatalf("round-tripped population mismatch: got %+v", loaded)
	}
}

func TestShouldStopConsumesSentinel(t *testing.T) {
	dir := t.TempDir()
	if ShouldStop(dir, 5) {
		t.Fatal("expected no stop request before a sentinel is created")
	}

	path := filepath.Join(dir, "end-request-5")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !ShouldStop(dir, 5) {
		t.Fatal("expected the sentinel to be observed")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected ShouldStop to remove the sentinel it consumed")
	}
}
