package world

import (
	"strings"
	"testing"
)

func TestDescribeOrbitedPlanet(t *testing.T) {
	w := New("Novaterra", TypeOrbited)
	w.OrbitalPeriod = 8766.0
	w.RotationalPeriod = 24.0
	w.Obliquity = 23
	w.WaterPrevalence = WaterModerate
	w.WaterPercent = 71.0
	w.Lithosphere = LithosphereMaturePlate
	w.Tectonics = TectonicsMobile
	w.MagneticField = FieldModerate
	w.ARF = 1.2
	w.MassNitrogen = 0.85
	w.Class = ClassFour
	w.Albedo = 0.23

	want := strings.Join([]string{
		"Novaterra",
		"Planet with Satellite Age: 4.568 GYr",
		"Mass: 1.000 M♁ Density: 1.000 K♁ Radius: 6378 km Gravity: 1.000 G",
		"Star Mass: 1.000 M☉ Distance: 1.000 AU Lumin: 1.000 L☉",
		"Satellite Mass: 0.012 M♁ Distance: 384400 km",
		"---",
		"Orbital Period = 8766.0 hours",
		"Rotation Period = 24.0 hours None",
		"Obliquity = 23° ",
		"Day length = 23.9 hours 366.25 days in year",
		"Black body temperature = 278 K ",
		"M number = 5",
		"Water prevalence: Moderate  71.0%",
		"Mature Plate Lithosphere / Mobile plate tectonics",
		"Moderate Magnetic Field",
		"Class 4 (Earth-type) ARF: 1.2 H2: 0.00 He: 0.00 N2: 0.85",
		"Albedo: 0.23",
	}, "\n")

	if got := w.Describe(); got != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDescribeSatellite(t *testing.T) {
	w := New("Luna", TypeSatellite)
	w.OrbitalPeriod = 655.7
	w.RotationalPeriod = 660.0
	w.Lock = LockToPrimary
	w.Obliquity = 2
	w.ARF = 0
	w.Class = ClassSix
	w.Albedo = 0.04

	want := strings.Join([]string{
		"Luna",
		"Satellite Age: 4.568 GYr",
		"Mass: 0.012 M♁ Density: 1.000 K♁ Radius: 1472 km Gravity: 0.231 G",
		"Star Mass: 1.000 M☉ Distance: 1.000 AU Lumin: 1.000 L☉",
		"Primary Mass: 1.000 M♁ Distance: 384400 km",
		"---",
		"Orbital Period = 655.7 hours",
		"Rotation Period = 660.0 hours 1:1 tidal lock with planet",
		"Obliquity = 2° ",
		"Day length = 328.9 hours 1.99 days in year",
		"Black body temperature = 278 K ",
		"M number = 90",
		"Water prevalence: Trace   0.0%",
		"Solid Plate Lithosphere / No plate tectonics",
		"No magnetic field",
		"Class 6 (Luna-type) ARF: 0 H2: 0.00 He: 0.00 N2: 0.00",
		"Albedo: 0.04",
	}, "\n")

	if got := w.Describe(); got != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDescribeStarLockedGreenhouse(t *testing.T) {
	w := New("Cinder", TypeLone)
	w.StarDistance = 0.25
	w.OrbitalPeriod = 1095.7
	w.RotationalPeriod = 1095.7
	w.Lock = LockToStar
	w.Obliquity = 52
	w.UnstableObliquity = true
	w.GreenHouse = true
	w.Lithosphere = LithosphereMolten
	w.ARF = 1.8
	w.Class = ClassOne
	w.Albedo = 0.71

	want := strings.Join([]string{
		"Cinder",
		"Lone Planet Age: 4.568 GYr",
		"Mass: 1.000 M♁ Density: 1.000 K♁ Radius: 6378 km Gravity: 1.000 G",
		"Star Mass: 1.000 M☉ Distance: 0.250 AU Lumin: 1.000 L☉",
		"---",
		"Orbital Period = 1095.7 hours",
		"Rotation Period = 1095.7 hours 1:1 tidal lock with star",
		"Obliquity = 52° Unstable",
		"Day length: not applicable",
		"Black body temperature = 556 K Runaway Greenhouse",
		"M number = 10",
		"Water prevalence: Trace   0.0%",
		"Molten Lithosphere / No plate tectonics",
		"No magnetic field",
		"Class 1 (Venus-type) ARF: 1.8 H2: 0.00 He: 0.00 N2: 0.00",
		"Albedo: 0.71",
	}, "\n")

	if got := w.Describe(); got != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
