package field

import (
	"testing"

	"noisefield/internal/core"
	"noisefield/pkg/noise"
)

func testSize() core.Size { return core.Size{W: 32, H: 32} }

func TestBackendRegistry(t *testing.T) {
	for _, name := range []string{"builtin", "library"} {
		factory, ok := core.Backends()[name]
		if !ok {
			t.Fatalf("backend %q not registered", name)
		}
		f := factory(noise.DefaultFractal(), testSize(), 1)
		if f.Name() != name {
			t.Fatalf("factory %q produced field named %q", name, f.Name())
		}
		if f.Size() != testSize() {
			t.Fatalf("field size = %+v, want %+v", f.Size(), testSize())
		}
	}
}

func TestBuiltinMatchesCore(t *testing.T) {
	cfg := noise.DefaultFractal()
	f := NewBuiltin(cfg, testSize(), 5)

	want := noise.New(5).Fractal2(3.2, 4.7, cfg)
	if got := f.At(3.2, 4.7); got != want {
		t.Fatalf("Builtin.At = %v, want %v from a direct evaluation", got, want)
	}
}

func TestResetRebuildsFromSeed(t *testing.T) {
	cfg := noise.DefaultFractal()
	f := NewBuiltin(cfg, testSize(), 5)

	f.Reset(99)
	if f.Seed() != 99 {
		t.Fatalf("seed after Reset = %d, want 99", f.Seed())
	}
	want := noise.New(99).Fractal2(1.5, 2.5, cfg)
	if got := f.At(1.5, 2.5); got != want {
		t.Fatalf("At after Reset = %v, want %v", got, want)
	}
}

func TestSetParametersClamp(t *testing.T) {
	f := NewBuiltin(noise.DefaultFractal(), testSize(), 0)

	if !f.SetIntParameter("octaves", 99) {
		t.Fatal("expected octaves to be settable")
	}
	if got := f.Config().Octaves; got != 16 {
		t.Fatalf("octaves = %d, want clamp to 16", got)
	}
	if !f.SetIntParameter("octaves", 0) {
		t.Fatal("expected octaves to be settable")
	}
	if got := f.Config().Octaves; got != 1 {
		t.Fatalf("octaves = %d, want clamp to 1", got)
	}

	if !f.SetFloatParameter("frequency", 2.5) {
		t.Fatal("expected frequency to be settable")
	}
	if got := f.Config().Frequency; got != 1 {
		t.Fatalf("frequency = %v, want clamp to 1", got)
	}

	if f.SetIntParameter("bogus", 1) {
		t.Fatal("unknown int key accepted")
	}
	if f.SetFloatParameter("bogus", 1) {
		t.Fatal("unknown float key accepted")
	}
}

func TestSetSeedParameterRebuilds(t *testing.T) {
	cfg := noise.DefaultFractal()
	f := NewBuiltin(cfg, testSize(), 0)

	if !f.SetIntParameter("seed", 42) {
		t.Fatal("expected seed to be settable")
	}
	if f.Seed() != 42 {
		t.Fatalf("seed = %d, want 42", f.Seed())
	}
	want := noise.New(42).Fractal2(7.25, -1.5, cfg)
	if got := f.At(7.25, -1.5); got != want {
		t.Fatalf("At after seed change = %v, want %v", got, want)
	}
}

func TestTypeParameterSwitchesEvaluator(t *testing.T) {
	cfg := noise.DefaultFractal()
	f := NewBuiltin(cfg, testSize(), 3)

	if !f.SetIntParameter("type", int(noise.TypeValue)) {
		t.Fatal("expected type to be settable")
	}
	valueCfg := cfg
	valueCfg.Type = noise.TypeValue
	want := noise.New(3).Fractal2(0.6, 0.9, valueCfg)
	if got := f.At(0.6, 0.9); got != want {
		t.Fatalf("At after type switch = %v, want value-noise result %v", got, want)
	}
}

func TestLibraryValueFallbackMatchesBuiltin(t *testing.T) {
	cfg := noise.DefaultFractal()
	cfg.Type = noise.TypeValue

	lib := NewLibrary(cfg, testSize(), 17)
	builtin := NewBuiltin(cfg, testSize(), 17)
	if got, want := lib.At(4.4, -0.8), builtin.At(4.4, -0.8); got != want {
		t.Fatalf("library value fallback = %v, builtin = %v", got, want)
	}
}

func TestLibraryDeterministic(t *testing.T) {
	for _, typ := range []noise.Type{noise.TypePerlin, noise.TypeSimplex} {
		cfg := noise.DefaultFractal()
		cfg.Type = typ

		a := NewLibrary(cfg, testSize(), 23)
		b := NewLibrary(cfg, testSize(), 23)
		if got, want := a.At(2.2, 3.3), b.At(2.2, 3.3); got != want {
			t.Fatalf("%v: library instances with equal seed disagree: %v != %v", typ, got, want)
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	f := NewBuiltin(noise.DefaultFractal(), testSize(), 0)

	snapshot := f.Parameters()
	keys := map[string]core.Parameter{}
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			keys[param.Key] = param
		}
	}
	for _, key := range []string{"type", "seed", "octaves", "frequency", "lacunarity", "persistence", "gain"} {
		if _, ok := keys[key]; !ok {
			t.Fatalf("snapshot missing parameter %q", key)
		}
	}
	if got := keys["type"].Display; got != "simplex" {
		t.Fatalf("type display = %q, want %q", got, "simplex")
	}

	controls := f.ParameterControls()
	if len(controls) != 7 {
		t.Fatalf("got %d controls, want 7", len(controls))
	}
}
