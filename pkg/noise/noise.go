package noise

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Type selects one of the three lattice evaluators. The set is closed, so
// dispatch is a single switch rather than interface polymorphism.
type Type int

const (
	TypeValue Type = iota
	TypePerlin
	TypeSimplex
)

// String returns the lowercase name used by flags and the HUD.
func (t Type) String() string {
	switch t {
	case TypeValue:
		return "value"
	case TypePerlin:
		return "perlin"
	case TypeSimplex:
		return "simplex"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a flag value to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "value":
		return TypeValue, nil
	case "perlin":
		return TypePerlin, nil
	case "simplex":
		return TypeSimplex, nil
	}
	return 0, fmt.Errorf("unknown noise type %q", s)
}

// grad3 holds the 12 gradient directions shared by the Perlin and Simplex
// evaluators. The 2D variants read the x/y components only.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Noise evaluates seeded lattice noise. The permutation table is built once
// and never mutated, so one instance may be shared across goroutines without
// locking.
type Noise struct {
	seed int64
	perm [512]int
}

// New builds a Noise whose permutation table is a seeded Fisher-Yates shuffle
// of the identity permutation 0..255, duplicated once so indices derived from
// a masked lattice coordinate never need a bounds check.
func New(seed int64) *Noise {
	n := &Noise{seed: seed}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range 256 {
		n.perm[i] = i
	}
	rng.Shuffle(256, func(i, j int) {
		n.perm[i], n.perm[j] = n.perm[j], n.perm[i]
	})
	for i := range 256 {
		n.perm[256+i] = n.perm[i]
	}
	return n
}

// Seed returns the seed the permutation table was built from.
func (n *Noise) Seed() int64 { return n.seed }

// fade is the quintic curve 6t^5 - 15t^4 + 10t^3. First and second
// derivatives vanish at t=0 and t=1, which keeps the interpolated field
// smooth across lattice boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func gradDot2(gi int, x, y float64) float64 {
	g := &grad3[gi]
	return g[0]*x + g[1]*y
}

func gradDot3(gi int, x, y, z float64) float64 {
	g := &grad3[gi]
	return g[0]*x + g[1]*y + g[2]*z
}

// Eval2 dispatches a single-octave 2D sample to the selected evaluator.
func (n *Noise) Eval2(t Type, x, y float64) float64 {
	switch t {
	case TypeValue:
		return n.Value2(x, y)
	case TypePerlin:
		return n.Perlin2(x, y)
	default:
		return n.Simplex2(x, y)
	}
}

// Eval3 dispatches a single-octave 3D sample to the selected evaluator.
func (n *Noise) Eval3(t Type, x, y, z float64) float64 {
	switch t {
	case TypeValue:
		return n.Value3(x, y, z)
	case TypePerlin:
		return n.Perlin3(x, y, z)
	default:
		return n.Simplex3(x, y, z)
	}
}

// Value2 interpolates table-derived corner scalars bilinearly and remaps the
// result from [0,1] to [-1,1].
func (n *Noise) Value2(x, y float64) float64 {
	i := int(math.Floor(x))
	j := int(math.Floor(y))

	u := x - float64(i)
	v := y - float64(j)

	i &= 255
	j &= 255

	n00 := float64(n.perm[i+n.perm[j]]) / 255
	n10 := float64(n.perm[i+1+n.perm[j]]) / 255
	n01 := float64(n.perm[i+n.perm[j+1]]) / 255
	n11 := float64(n.perm[i+1+n.perm[j+1]]) / 255

	fu := fade(u)
	fv := fade(v)

	nx0 := lerp(n00, n10, fu)
	nx1 := lerp(n01, n11, fu)

	return lerp(nx0, nx1, fv)*2 - 1
}

// Value3 is the trilinear extension of Value2 over the eight cube corners.
func (n *Noise) Value3(x, y, z float64) float64 {
	i := int(math.Floor(x))
	j := int(math.Floor(y))
	k := int(math.Floor(z))

	u := x - float64(i)
	v := y - float64(j)
	w := z - float64(k)

	i &= 255
	j &= 255
	k &= 255

	n000 := float64(n.perm[i+n.perm[j+n.perm[k]]]) / 255
	n100 := float64(n.perm[i+1+n.perm[j+n.perm[k]]]) / 255
	n010 := float64(n.perm[i+n.perm[j+1+n.perm[k]]]) / 255
	n110 := float64(n.perm[i+1+n.perm[j+1+n.perm[k]]]) / 255
	n001 := float64(n.perm[i+n.perm[j+n.perm[k+1]]]) / 255
	n101 := float64(n.perm[i+1+n.perm[j+n.perm[k+1]]]) / 255
	n011 := float64(n.perm[i+n.perm[j+1+n.perm[k+1]]]) / 255
	n111 := float64(n.perm[i+1+n.perm[j+1+n.perm[k+1]]]) / 255

	fu := fade(u)
	fv := fade(v)
	fw := fade(w)

	nx00 := lerp(n000, n100, fu)
	nx10 := lerp(n010, n110, fu)
	nx01 := lerp(n001, n101, fu)
	nx11 := lerp(n011, n111, fu)

	nxy0 := lerp(nx00, nx10, fv)
	nxy1 := lerp(nx01, nx11, fv)

	return lerp(nxy0, nxy1, fw)*2 - 1
}

// Perlin2 blends gradient dot products from the four cell corners. The local
// offset at an integer coordinate is (0,0), so the result there is exactly 0
// regardless of seed.
func (n *Noise) Perlin2(x, y float64) float64 {
	i := int(math.Floor(x))
	j := int(math.Floor(y))

	x -= float64(i)
	y -= float64(j)

	i &= 255
	j &= 255

	g00 := n.perm[i+n.perm[j]] % 12
	g10 := n.perm[i+1+n.perm[j]] % 12
	g01 := n.perm[i+n.perm[j+1]] % 12
	g11 := n.perm[i+1+n.perm[j+1]] % 12

	n00 := gradDot2(g00, x, y)
	n10 := gradDot2(g10, x-1, y)
	n01 := gradDot2(g01, x, y-1)
	n11 := gradDot2(g11, x-1, y-1)

	u := fade(x)
	v := fade(y)

	nx0 := lerp(n00, n10, u)
	nx1 := lerp(n01, n11, u)

	return lerp(nx0, nx1, v)
}

// Perlin3 blends gradient dot products from the eight cube corners.
func (n *Noise) Perlin3(x, y, z float64) float64 {
	i := int(math.Floor(x))
	j := int(math.Floor(y))
	k := int(math.Floor(z))

	x -= float64(i)
	y -= float64(j)
	z -= float64(k)

	i &= 255
	j &= 255
	k &= 255

	g000 := n.perm[i+n.perm[j+n.perm[k]]] % 12
	g100 := n.perm[i+1+n.perm[j+n.perm[k]]] % 12
	g010 := n.perm[i+n.perm[j+1+n.perm[k]]] % 12
	g110 := n.perm[i+1+n.perm[j+1+n.perm[k]]] % 12
	g001 := n.perm[i+n.perm[j+n.perm[k+1]]] % 12
	g101 := n.perm[i+1+n.perm[j+n.perm[k+1]]] % 12
	g011 := n.perm[i+n.perm[j+1+n.perm[k+1]]] % 12
	g111 := n.perm[i+1+n.perm[j+1+n.perm[k+1]]] % 12

	n000 := gradDot3(g000, x, y, z)
	n100 := gradDot3(g100, x-1, y, z)
	n010 := gradDot3(g010, x, y-1, z)
	n110 := gradDot3(g110, x-1, y-1, z)
	n001 := gradDot3(g001, x, y, z-1)
	n101 := gradDot3(g101, x-1, y, z-1)
	n011 := gradDot3(g011, x, y-1, z-1)
	n111 := gradDot3(g111, x-1, y-1, z-1)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	nx00 := lerp(n000, n100, u)
	nx10 := lerp(n010, n110, u)
	nx01 := lerp(n001, n101, u)
	nx11 := lerp(n011, n111, u)

	nxy0 := lerp(nx00, nx10, v)
	nxy1 := lerp(nx01, nx11, v)

	return lerp(nxy0, nxy1, w)
}

// Skew/unskew constants for the simplex grid.
const (
	f2 = 0.3660254037844386  // (sqrt(3)-1)/2
	g2 = 0.21132486540518713 // (3-sqrt(3))/6
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// Simplex2 sums the radial-kernel contributions of the three corners of the
// containing simplex triangle, scaled to roughly [-1,1].
func (n *Noise) Simplex2(x, y float64) float64 {
	s := (x + y) * f2
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Middle corner: lower triangle when x0 > y0, upper otherwise. Ties take
	// the (0,1) branch on both sides of the diagonal.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255

	gi0 := n.perm[ii+n.perm[jj]] % 12
	gi1 := n.perm[ii+i1+n.perm[jj+j1]] % 12
	gi2 := n.perm[ii+1+n.perm[jj+1]] % 12

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * gradDot2(gi0, x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * gradDot2(gi1, x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * gradDot2(gi2, x2, y2)
	}

	return 70 * (n0 + n1 + n2)
}

// Simplex3 sums the four corner contributions of the containing tetrahedron.
// The middle-corner ordering uses non-strict comparisons so points exactly on
// a cell boundary resolve the same way from either side.
func (n *Noise) Simplex3(x, y, z float64) float64 {
	s := (x + y + z) * f3
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))
	k := int(math.Floor(z + s))

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := i & 255
	jj := j & 255
	kk := k & 255

	gi0 := n.perm[ii+n.perm[jj+n.perm[kk]]] % 12
	gi1 := n.perm[ii+i1+n.perm[jj+j1+n.perm[kk+k1]]] % 12
	gi2 := n.perm[ii+i2+n.perm[jj+j2+n.perm[kk+k2]]] % 12
	gi3 := n.perm[ii+1+n.perm[jj+1+n.perm[kk+1]]] % 12

	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * gradDot3(gi0, x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * gradDot3(gi1, x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * gradDot3(gi2, x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * gradDot3(gi3, x3, y3, z3)
	}

	return 32 * (n0 + n1 + n2 + n3)
}
