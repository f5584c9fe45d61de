package random

import (
	"testing"

	"etaus/pkg/etaus"
)

func TestXorShift64Star_Below(t *testing.T) {
	tests := []struct {
		name  string
		limit uint64
	}{
		{"8", 8},
		{"256", 256},
		{"seed limit", seedLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewXorShift64Star(12345)
			for i := 0; i < 1000; i++ {
				val := rng.Below(tt.limit)
				if val >= tt.limit {
					t.Errorf("Below(%d) = %d, want < %d", tt.limit, val, tt.limit)
				}
			}
		})
	}

	if v := NewXorShift64Star(1).Below(0); v != 0 {
		t.Errorf("Below(0) = %d, want 0", v)
	}
}

func TestXorShift64Star_Seed(t *testing.T) {
	rng := NewXorShift64Star(12345)
	seen := make(map[etaus.Seed]bool)
	for i := 0; i < 1000; i++ {
		seed := rng.Seed()
		for _, w := range seed {
			if w >= seedLimit {
				t.Fatalf("Seed() word %d out of range", w)
			}
		}
		if etaus.Degenerate(seed) {
			t.Fatalf("Seed() = %v is degenerate", seed)
		}
		if seen[seed] {
			t.Fatalf("Seed() repeated %v", seed)
		}
		seen[seed] = true
	}
}

func TestXorShift64Star_ZeroSeed(t *testing.T) {
	rng := NewXorShift64Star(0)
	if rng.Uint64() == 0 && rng.Uint64() == 0 && rng.Uint64() == 0 {
		t.Error("Generator appears stuck at zero")
	}
}

func TestXorShift64Star_Deterministic(t *testing.T) {
	a, b := NewXorShift64Star(42), NewXorShift64Star(42)
	for i := 0; i < 100; i++ {
		if a.Seed() != b.Seed() {
			t.Fatalf("seed streams diverge at %d", i)
		}
	}
}

func TestFromPhrase(t *testing.T) {
	a := FromPhrase("template-run")
	if a != FromPhrase("template-run") {
		t.Error("FromPhrase() is not deterministic")
	}
	if a == FromPhrase("template-run-2") {
		t.Error("different phrases produced the same seed")
	}
}

func BenchmarkXorShift64Star_Seed(b *testing.B) {
	rng := NewXorShift64Star(12345)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rng.Seed()
	}
}
