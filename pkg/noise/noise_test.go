package noise

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestPermutationTableProperties(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 1000, -7} {
		n := New(seed)

		var seen [256]int
		for i := 0; i < 256; i++ {
			v := n.perm[i]
			if v < 0 || v > 255 {
				t.Fatalf("seed %d: perm[%d] = %d out of range", seed, i, v)
			}
			seen[v]++
		}
		for v, count := range seen {
			if count != 1 {
				t.Fatalf("seed %d: value %d appears %d times, expected exactly once", seed, v, count)
			}
		}

		for i := 0; i < 256; i++ {
			if n.perm[i+256] != n.perm[i] {
				t.Fatalf("seed %d: perm[%d] = %d, want duplicate of perm[%d] = %d",
					seed, i+256, n.perm[i+256], i, n.perm[i])
			}
		}
	}
}

func TestPermutationTableDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	if a.perm != b.perm {
		t.Fatal("same seed produced different permutation tables")
	}
}

func TestPermutationTablesDifferBySeed(t *testing.T) {
	a := New(1)
	b := New(2)
	if a.perm == b.perm {
		t.Fatal("different seeds produced identical permutation tables")
	}
}

func TestFadeProperties(t *testing.T) {
	if got := fade(0); got != 0 {
		t.Errorf("fade(0) = %v, want 0", got)
	}
	if got := fade(1); got != 1 {
		t.Errorf("fade(1) = %v, want 1", got)
	}
	if got := fade(0.5); got != 0.5 {
		t.Errorf("fade(0.5) = %v, want 0.5", got)
	}

	prev := fade(0)
	for i := 1; i <= 1000; i++ {
		cur := fade(float64(i) / 1000)
		if cur < prev {
			t.Fatalf("fade not monotonic at t=%v: %v < %v", float64(i)/1000, cur, prev)
		}
		prev = cur
	}
}

func TestValueNoiseRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(12345, 0))
	for _, seed := range []int64{0, 42, 999} {
		n := New(seed)
		for i := 0; i < 1000; i++ {
			x := rng.Float64()*200 - 100
			y := rng.Float64()*200 - 100
			z := rng.Float64()*200 - 100

			if v := n.Value2(x, y); v < -1 || v > 1 {
				t.Fatalf("Value2(%v, %v) = %v, out of [-1,1]", x, y, v)
			}
			if v := n.Value3(x, y, z); v < -1 || v > 1 {
				t.Fatalf("Value3(%v, %v, %v) = %v, out of [-1,1]", x, y, z, v)
			}
		}
	}
}

// At the origin the interpolation weights vanish, so the result is exactly
// the remapped corner scalar from the table.
func TestValueNoiseAtOrigin(t *testing.T) {
	n := New(0)

	want2 := float64(n.perm[n.perm[0]])/255*2 - 1
	if got := n.Value2(0, 0); got != want2 {
		t.Errorf("Value2(0,0) = %v, want table constant %v", got, want2)
	}

	want3 := float64(n.perm[n.perm[n.perm[0]]])/255*2 - 1
	if got := n.Value3(0, 0, 0); got != want3 {
		t.Errorf("Value3(0,0,0) = %v, want table constant %v", got, want3)
	}
}

func TestPerlinZeroAtLatticePoints(t *testing.T) {
	coords := []float64{-5, -1, 0, 1, 3, 5, 200}
	for _, seed := range []int64{0, 7, 1234} {
		n := New(seed)
		for _, x := range coords {
			for _, y := range coords {
				if got := n.Perlin2(x, y); got != 0 {
					t.Fatalf("seed %d: Perlin2(%v, %v) = %v, want exactly 0", seed, x, y, got)
				}
				for _, z := range coords {
					if got := n.Perlin3(x, y, z); got != 0 {
						t.Fatalf("seed %d: Perlin3(%v, %v, %v) = %v, want exactly 0", seed, x, y, z, got)
					}
				}
			}
		}
	}
}

func TestPerlinContinuityAcrossLattice(t *testing.T) {
	n := New(42)
	const eps = 1e-6

	before := n.Perlin2(1-eps, 0.4)
	after := n.Perlin2(1+eps, 0.4)
	if diff := math.Abs(before - after); diff > 1e-4 {
		t.Errorf("Perlin2 jumps across x=1: |%v - %v| = %v", before, after, diff)
	}

	// The blend along the last axis is where the original transcription went
	// wrong, so check continuity across an integer z in particular.
	before = n.Perlin3(0.3, 0.7, 1-eps)
	after = n.Perlin3(0.3, 0.7, 1+eps)
	if diff := math.Abs(before - after); diff > 1e-4 {
		t.Errorf("Perlin3 jumps across z=1: |%v - %v| = %v", before, after, diff)
	}
}

func TestSimplexBoundaryContinuity(t *testing.T) {
	n := New(7)
	const eps = 1e-7

	// Crossing y=x flips the middle-corner ordering branch; the field must
	// not jump there.
	for _, a := range []float64{0.37, 1.62, -2.25, 14.01} {
		below := n.Simplex2(a, a-eps)
		above := n.Simplex2(a, a+eps)
		if diff := math.Abs(below - above); diff > 1e-4 {
			t.Errorf("Simplex2 jumps across the x0=y0 boundary at %v: |%v - %v| = %v", a, below, above, diff)
		}
	}

	// In 3D the 0.6 kernel radius leaves the middle corner's weight nonzero
	// on the ordering boundary, so swapping that corner produces a small
	// inherent step (up to ~1.4e-3). Bound it rather than demand continuity.
	for _, a := range []float64{0.31, 2.71, -1.44} {
		below := n.Simplex3(a, a-eps, 0.1)
		above := n.Simplex3(a, a+eps, 0.1)
		if diff := math.Abs(below - above); diff > 2e-3 {
			t.Errorf("Simplex3 jumps across the x0=y0 boundary at %v: |%v - %v| = %v", a, below, above, diff)
		}

		below = n.Simplex3(0.1, a, a-eps)
		above = n.Simplex3(0.1, a, a+eps)
		if diff := math.Abs(below - above); diff > 2e-3 {
			t.Errorf("Simplex3 jumps across the y0=z0 boundary at %v: |%v - %v| = %v", a, below, above, diff)
		}
	}
}

func TestSimplexNominalRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 0))
	n := New(3)
	for i := 0; i < 2000; i++ {
		x := rng.Float64()*100 - 50
		y := rng.Float64()*100 - 50
		z := rng.Float64()*100 - 50

		if v := n.Simplex2(x, y); math.Abs(v) > 1.1 {
			t.Fatalf("Simplex2(%v, %v) = %v, far outside nominal range", x, y, v)
		}
		if v := n.Simplex3(x, y, z); math.Abs(v) > 1.1 {
			t.Fatalf("Simplex3(%v, %v, %v) = %v, far outside nominal range", x, y, z, v)
		}
	}
}

func TestEvalDispatch(t *testing.T) {
	n := New(11)
	x, y, z := 1.5, -2.25, 0.75

	if got, want := n.Eval2(TypeValue, x, y), n.Value2(x, y); got != want {
		t.Errorf("Eval2(TypeValue) = %v, want %v", got, want)
	}
	if got, want := n.Eval2(TypePerlin, x, y), n.Perlin2(x, y); got != want {
		t.Errorf("Eval2(TypePerlin) = %v, want %v", got, want)
	}
	if got, want := n.Eval2(TypeSimplex, x, y), n.Simplex2(x, y); got != want {
		t.Errorf("Eval2(TypeSimplex) = %v, want %v", got, want)
	}
	if got, want := n.Eval3(TypePerlin, x, y, z), n.Perlin3(x, y, z); got != want {
		t.Errorf("Eval3(TypePerlin) = %v, want %v", got, want)
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	for _, typ := range []Type{TypeValue, TypePerlin, TypeSimplex} {
		parsed, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", typ.String(), err)
		}
		if parsed != typ {
			t.Fatalf("ParseType(%q) = %v, want %v", typ.String(), parsed, typ)
		}
	}
	if _, err := ParseType("worley"); err == nil {
		t.Fatal("ParseType accepted an unknown type")
	}
}

// A single instance must be shareable across goroutines with no locking.
func TestConcurrentSampling(t *testing.T) {
	n := New(5)

	serial := make([]float64, 256)
	for i := range serial {
		serial[i] = n.Simplex2(float64(i)*0.13, float64(i)*0.29)
	}

	results := make([]float64, len(serial))
	done := make(chan struct{})
	const workers = 4
	for w := 0; w < workers; w++ {
		go func(w int) {
			for i := w; i < len(results); i += workers {
				results[i] = n.Simplex2(float64(i)*0.13, float64(i)*0.29)
			}
			done <- struct{}{}
		}(w)
	}
	for w := 0; w < workers; w++ {
		<-done
	}

	for i := range serial {
		if results[i] != serial[i] {
			t.Fatalf("concurrent sample %d = %v, serial = %v", i, results[i], serial[i])
		}
	}
}
