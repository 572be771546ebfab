package mt19937_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/nozzle/mt19937"
)

func TestReferenceSequence(t *testing.T) {
	// Same calls as the reference test: Python's random.seed(0), then a
	// scalar reseed on the same instance.
	g, err := mt19937.NewFromSlice([]uint32{0})
	if err != nil {
		t.Fatalf("NewFromSlice: %v", err)
	}

	for i, want := range []string{"0.84442", "0.75795", "0.42057"} {
		got := strconv.FormatFloat(g.Float64(), 'g', -1, 64)
		if got[:len(want)] != want {
			t.Errorf("Float64 %d: got %s, want prefix %s", i, got, want)
		}
	}

	g.Seed(69)
	if got := strconv.FormatFloat(g.Float64(), 'g', -1, 64); got[:7] != "0.29624" {
		t.Errorf("Float64 after Seed(69): got %s, want prefix 0.29624", got)
	}
	if got := g.Uint32(); got != 3474919369 {
		t.Errorf("Uint32 after Seed(69): got %d, want 3474919369", got)
	}
}

func TestSeedSliceVsMT19937ar(t *testing.T) {
	// First outputs of mt19937ar.c's main(): init_by_array({0x123, 0x234, 0x345, 0x456}).
	g, err := mt19937.NewFromSlice([]uint32{0x123, 0x234, 0x345, 0x456})
	if err != nil {
		t.Fatalf("NewFromSlice: %v", err)
	}

	expected := []uint32{1067595299, 955945823, 477289528, 4107218783, 4228976476}
	for i, exp := range expected {
		if got := g.Uint32(); got != exp {
			t.Errorf("Uint32 %d: got %d, expected %d", i, got, exp)
		}
	}
}

func TestSeedDefault(t *testing.T) {
	g := mt19937.New(5489)
	if got := g.Uint32(); got != 3499211612 {
		t.Errorf("first Uint32: got %d, expected 3499211612", got)
	}

	// The 10000th output of the default-seeded generator is fixed by the C++ standard.
	var got uint32
	for range 9999 {
		got = g.Uint32()
	}
	if got != 4123659995 {
		t.Errorf("10000th Uint32: got %d, expected 4123659995", got)
	}
}

func TestDeterminism(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 19650218, 0xffffffff} {
		a := mt19937.New(seed)
		b := mt19937.New(seed)
		for i := range 2000 {
			if x, y := a.Uint32(), b.Uint32(); x != y {
				t.Fatalf("seed %d: draw %d differs: %d != %d", seed, i, x, y)
			}
			if x, y := a.Float64(), b.Float64(); x != y {
				t.Fatalf("seed %d: float %d differs: %v != %v", seed, i, x, y)
			}
		}
	}

	keys := []uint32{7, 0, 0xdeadbeef}
	a, _ := mt19937.NewFromSlice(keys)
	b, _ := mt19937.NewFromSlice(keys)
	for i := range 2000 {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("keys %v: draw %d differs: %d != %d", keys, i, x, y)
		}
	}
}

func TestDifferentSeeds(t *testing.T) {
	a := mt19937.New(1)
	b := mt19937.New(2)
	for range 100 {
		if a.Uint32() != b.Uint32() {
			return
		}
	}
	t.Error("seeds 1 and 2 produced the same 100 draws")
}

func TestReseedResets(t *testing.T) {
	fresh := mt19937.New(1234)
	want := make([]uint32, 700)
	for i := range want {
		want[i] = fresh.Uint32()
	}

	g, err := mt19937.NewFromSlice([]uint32{1, 2, 3})
	if err != nil {
		t.Fatalf("NewFromSlice: %v", err)
	}
	for range 1000 {
		g.Uint32()
	}
	g.Seed(1234)
	for i, exp := range want {
		if got := g.Uint32(); got != exp {
			t.Fatalf("draw %d after reseed: got %d, expected %d", i, got, exp)
		}
	}

	// Reseeding from a slice restarts that sequence too.
	ref, _ := mt19937.NewFromSlice([]uint32{1, 2, 3})
	first := ref.Uint32()
	if err := g.SeedSlice([]uint32{1, 2, 3}); err != nil {
		t.Fatalf("SeedSlice: %v", err)
	}
	if got := g.Uint32(); got != first {
		t.Errorf("after SeedSlice: got %d, expected %d", got, first)
	}
}

func TestSeedSliceEmpty(t *testing.T) {
	if _, err := mt19937.NewFromSlice(nil); !errors.Is(err, mt19937.ErrEmptyKey) {
		t.Errorf("NewFromSlice(nil): got %v, expected ErrEmptyKey", err)
	}

	g := mt19937.New(99)
	ref := mt19937.New(99)
	g.Uint32()
	ref.Uint32()
	if err := g.SeedSlice([]uint32{}); !errors.Is(err, mt19937.ErrEmptyKey) {
		t.Errorf("SeedSlice(empty): got %v, expected ErrEmptyKey", err)
	}
	for i := range 10 {
		if x, y := g.Uint32(), ref.Uint32(); x != y {
			t.Fatalf("state changed by rejected SeedSlice at draw %d", i)
		}
	}
}

func TestSeedSliceLongKey(t *testing.T) {
	// Keys longer than the state vector take the max(624, len) path.
	long := make([]uint32, 1000)
	for i := range long {
		long[i] = uint32(i) * 2654435761
	}
	a, err := mt19937.NewFromSlice(long)
	if err != nil {
		t.Fatalf("NewFromSlice: %v", err)
	}
	b, _ := mt19937.NewFromSlice(long[:624])
	same := true
	for range 10 {
		if a.Uint32() != b.Uint32() {
			same = false
		}
	}
	if same {
		t.Error("key elements past 624 did not affect the sequence")
	}
}

func TestFloat64Range(t *testing.T) {
	g := mt19937.New(7)
	for i := range 100000 {
		f := g.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 %d out of range: %v", i, f)
		}
	}
}

func TestFloat64Combine(t *testing.T) {
	// Float64 consumes exactly two words, high bits first.
	a := mt19937.New(321)
	b := mt19937.New(321)
	for i := range 50 {
		hi := uint64(b.Uint32() >> 5)
		lo := uint64(b.Uint32() >> 6)
		want := float64(hi<<26|lo) / (1 << 53)
		if got := a.Float64(); got != want {
			t.Fatalf("Float64 %d: got %v, expected %v", i, got, want)
		}
	}
}

func TestUint64Source(t *testing.T) {
	a := mt19937.New(5)
	b := mt19937.New(5)
	for i := range 10 {
		want := uint64(b.Uint32())<<32 | uint64(b.Uint32())
		if got := a.Uint64(); got != want {
			t.Fatalf("Uint64 %d: got %#x, expected %#x", i, got, want)
		}
	}

	var _ rand.Source = mt19937.New(0)
	r := rand.New(mt19937.New(5))
	for range 1000 {
		if v := r.IntN(10); v < 0 || v >= 10 {
			t.Fatalf("IntN out of range: %d", v)
		}
	}
}

func ExampleGenerator_Uint32() {
	g := mt19937.New(5489)
	fmt.Println(g.Uint32())
	// Output: 3499211612
}

func BenchmarkUint32(b *testing.B) {
	g := mt19937.New(42)
	for b.Loop() {
		g.Uint32()
	}
}

func BenchmarkFloat64(b *testing.B) {
	g := mt19937.New(42)
	for b.Loop() {
		g.Float64()
	}
}
