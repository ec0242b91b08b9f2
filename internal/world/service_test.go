package world

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"worldforge/internal/dice"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewService(dice.New(99), testLogger())
	b := NewService(dice.New(99), testLogger())

	w := New("Arcadia", TypeLone)
	w.PlanetMass = 0.93
	w.StarMass = 0.94
	w.StarDistance = 0.892

	if got, want := a.Generate(w), b.Generate(w); !reflect.DeepEqual(got, want) {
		t.Errorf("equal seeds produced different worlds:\n%+v\n%+v", got, want)
	}
}

func TestGenerateFillsDerivedFields(t *testing.T) {
	svc := NewService(dice.New(1), testLogger())
	w := svc.Generate(New("Arcadia", TypeOrbited))

	approx(t, w.OrbitalPeriod, 8766.0, 0.1)
	if w.RotationalPeriod <= 0 {
		t.Errorf("rotational period = %v, want positive", w.RotationalPeriod)
	}
	if w.Lithosphere == "" || w.Tectonics == "" || w.MagneticField == "" || w.Class == "" {
		t.Errorf("derived enums left empty: %+v", w)
	}
	if w.Albedo <= 0 {
		t.Errorf("albedo = %v, want positive", w.Albedo)
	}
}

func TestGenerateSatellitePipeline(t *testing.T) {
	// All-threes dice walk the default Luna-like satellite down a fully
	// deterministic path.
	svc := NewService(dice.NewMock(3), testLogger())
	w := svc.Generate(New("Luna", TypeSatellite))

	approx(t, w.OrbitalPeriod, 655.7, 0.1)
	approx(t, w.RotationalPeriod, 655.7, 0.1)
	if w.Lock != LockToPrimary {
		t.Errorf("lock = %q, want %q", w.Lock, LockToPrimary)
	}
	if w.Obliquity != 1 || w.UnstableObliquity {
		t.Errorf("obliquity = (%d, %v), want (1, false)", w.Obliquity, w.UnstableObliquity)
	}
	if w.WaterPrevalence != WaterTrace || w.WaterPercent != 0 {
		t.Errorf("water = (%q, %v), want (Trace, 0)", w.WaterPrevalence, w.WaterPercent)
	}
	if w.Lithosphere != LithosphereAncientPlate || w.Tectonics != TectonicsFixed {
		t.Errorf("crust = (%q, %q), want ancient plate, fixed", w.Lithosphere, w.Tectonics)
	}
	if w.MagneticField != FieldNone {
		t.Errorf("magnetic field = %q, want none", w.MagneticField)
	}
	approx(t, w.ARF, 0.1, 1e-9)
	if w.MassHydrogen != 0 || w.MassHelium != 0 || w.MassNitrogen != 0 {
		t.Errorf("atmosphere masses = (%v, %v, %v), want all zero",
			w.MassHydrogen, w.MassHelium, w.MassNitrogen)
	}
	if w.Class != ClassSix {
		t.Errorf("class = %q, want %q", w.Class, ClassSix)
	}
	approx(t, w.Albedo, 0.4, 1e-9)
}
