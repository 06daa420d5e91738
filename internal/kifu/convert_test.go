package kifu

import (
	"math/rand"
	"testing"

	"github.com/sorapuyo/ghoti/internal/puyo"
)

func TestFieldRoundTrip(t *testing.T) {
	f := puyo.FieldFromRows(
		"......",
		"......",
		"...g..",
		"..ryb.",
		".ybgr.",
	)

	encoded := EncodeField(f)
	decoded := DecodeField(encoded)

	for x := 1; x <= puyo.Width; x++ {
		for y := 1; y <= puyo.Height; y++ {
			if got, want := decoded.Color(x, y), f.Color(x, y); got != want {
				t.Fatalf("cell (%d,%d): got %v, want %v (encoded=%q)", x, y, got, want, encoded)
			}
		}
	}
}

func TestFieldRoundTripEmpty(t *testing.T) {
	f := puyo.NewField()
	decoded := DecodeField(EncodeField(f))
	if !decoded.IsZenkeshi() {
		t.Fatal("expected an empty field to round-trip as empty")
	}
}

func TestTumoSeqRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seq := puyo.GenerateRandomSequence(rng, 50)

	encoded := EncodeTumoSeq(seq)
	if len(encoded) != len(seq) {
		t.Fatalf("expected %d encoded entries, got %d", len(seq), len(encoded))
	}

	decoded := DecodeTumoSeq(encoded)
	if len(decoded) != len(seq) {
		t.Fatalf("expected %d decoded tumos, got %d", len(seq), len(decoded))
	}
	for i, k := range seq {
		if decoded[i].Axis != k.Axis || decoded[i].Child != k.Child {
			t.Fatalf("tumo %d: got %v, want %v", i, decoded[i], k)
		}
	}
}

func TestDecodeTumoSeqSkipsMalformedEntries(t *testing.T) {
	decoded := DecodeTumoSeq([]string{"RB", "X", "YG"})
	if len(decoded) != 2 {
		t.Fatalf("expected malformed entry to be skipped, got %d tumos", len(decoded))
	}
}
