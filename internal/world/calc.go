package world

import (
	"math"

	"worldforge/internal/dice"
)

// Orbital period reference constants, calibrated so Earth (8766.0 h around
// Sol at 1 AU) and Luna (655.7 h at 384400 km) come out exact.
const (
	starPeriodRef      = 8766.0
	satellitePeriodRef = 2.768e-6
)

// CalcOrbitalPeriod returns the world's orbital period around its primary
// in hours: the satellite-primary orbit for satellites, the star orbit
// otherwise. Two-body Kepler relation in Earth/Sol-relative units.
func CalcOrbitalPeriod(w World) float64 {
	if w.Type == TypeSatellite {
		d := w.PrimaryDistance
		return satellitePeriodRef * math.Sqrt(d*d*d/(w.SatelliteMass+w.PlanetMass))
	}
	d := w.StarDistance
	return starPeriodRef * math.Sqrt(d*d*d/w.StarMass)
}

// CalcRotationPeriod returns the sidereal rotation period in hours and the
// spin-orbit resonance the world has settled into, if any. Satellites are
// always 1:1 locked to their primary. Other worlds brake toward lock when
// the tidal T number is large; unbraked worlds draw from the rotation rate
// table.
func CalcRotationPeriod(w World, r *dice.Roller) (float64, Resonance) {
	roll := r.Sum(3)
	if w.Type == TypeSatellite {
		return w.OrbitalPeriod, LockToPrimary
	}

	tAdjusted := w.TAdj() + roll
	if w.TNumber() >= 2 || tAdjusted >= 24 {
		if w.Type == TypeLone {
			lock, period := AdjustForEccentricity(w.Ecc, w.OrbitalPeriod)
			return period, lock
		}
		d := w.PrimaryDistance
		return satellitePeriodRef * math.Sqrt(d*d*d/(w.SatelliteMass+w.PlanetMass)), LockToSatellite
	}

	lower, upper := lookupRotationRate(tAdjusted)
	period := r.UniformFloat(lower, upper)
	lock := ResonanceNone
	if period >= w.OrbitalPeriod {
		lock, period = AdjustForEccentricity(w.Ecc, w.OrbitalPeriod)
	}
	return period, lock
}

// AdjustForEccentricity resolves the spin-orbit resonance a star-braked
// world falls into. Near-circular orbits give a 1:1 lock; growing
// eccentricity shifts the stable state through 3:2, 2:1, 5:2 and 3:1,
// shortening the rotation period by the matching ratio.
func AdjustForEccentricity(ecc, period float64) (Resonance, float64) {
	switch {
	case ecc <= 0.12:
		return LockToStar, period
	case ecc < 0.25:
		return Resonance3to2, period * 2.0 / 3.0
	case ecc < 0.35:
		return Resonance2to1, period * 0.5
	case ecc < 0.45:
		return Resonance5to2, period * 0.4
	default:
		return Resonance3to1, period / 3.0
	}
}

// CalcObliquity returns the world's axial tilt in degrees and whether the
// tilt is unstable over geological time. Lone planets without a massive
// satellite risk chaotic obliquity.
func CalcObliquity(w World, r *dice.Roller) (int, bool) {
	roll := r.Sum(3)
	instability := false
	mod := 0

	if w.Type == TypeSatellite || w.Lock != ResonanceNone {
		if roll > 8 {
			return roll - 8, instability
		}
		return 0, instability
	}

	if w.Type == TypeLone {
		roll2 := r.Sum(3)
		if roll2 < 8 || roll2 > 13 {
			mod = -7
			instability = true
		}
	}

	value := w.TAdj() + roll + mod
	var obl int
	switch {
	case value >= 25:
		if roll > 8 {
			obl = roll - 8
		}
	case value <= 4:
		roll3 := r.Roll()
		if roll3 == 6 {
			roll4 := r.Sum(3)
			if roll4 > 7 {
				obl = 90 - roll4
			} else {
				obl = 90
			}
		} else {
			lower, upper := lookupObliquity(extremeObliquityTable, roll3)
			obl = r.UniformInt(lower, upper)
		}
	default:
		lower, upper := lookupObliquity(obliquityTable, value)
		obl = r.UniformInt(lower, upper)
	}

	return obl, instability
}

// CalcWater returns the prevalence and percentage coverage of surface
// water, plus whether a runaway greenhouse has stripped it.
func CalcWater(w World, r *dice.Roller) (Water, float64, bool) {
	water := WaterTrace
	percentage := 0.0
	greenhouse := false

	switch {
	case w.MNumber() <= 2:
		water = WaterMassive
		percentage = 100
	case w.MNumber() >= 29:
		if w.BlackBodyTemp() >= 125 || w.RockySatOfGasGiant {
			water = WaterTrace
			percentage = 0
		} else {
			water = WaterMassive
			percentage = 100
		}
	default:
		mod := 0
		if !w.OutsideIceLine {
			mod = -w.MNumber()
			if w.GrandTack {
				mod += 6
			}
			if w.OortCloud {
				mod += 3
			}
		}
		lower, upper, prevalence := lookupHydroCover(r.Sum(3) + mod)
		water = prevalence
		percentage = r.UniformFloat(lower, upper)
	}

	if w.MNumber() > 2 && w.BlackBodyTemp() >= 300 {
		if water == WaterMinimal {
			if r.Sum(3)+w.BlackBodyTemp() >= 318 {
				water = WaterTrace
				percentage = 0
			}
		}
		switch water {
		case WaterModerate, WaterExtensive, WaterMassive:
			if r.Sum(3)+w.BlackBodyTemp() >= 318 {
				water = WaterTrace
				percentage = 0
				greenhouse = true
			}
		}
	}

	return water, percentage, greenhouse
}

// CalcGeophysics returns the lithosphere state, tectonic regime, whether
// the crust undergoes episodic resurfacing, and the water prevalence and
// percentage after crustal adjustments.
func CalcGeophysics(w World, r *dice.Roller) (Lithosphere, Tectonics, bool, Water, float64) {
	tect := TectonicsNone
	episodicResurfacing := false
	newWater := w.WaterPrevalence
	newPercent := w.WaterPercent

	ageMod := int(math.Round(8 * w.Age))
	primordialHeatMod := int(math.Round(-60 * math.Log10(w.Gravity())))
	radiogenicHeatMod := int(math.Round(-10 * math.Log10(w.Metal)))
	lith, ordinal := lookupLithosphere(ageMod + primordialHeatMod + radiogenicHeatMod + r.Sum(3))

	radius := float64(w.Radius())
	f := 0.0
	if w.OrbitalTidalHeating && w.Type == TypeSatellite {
		f = 1.59e15 * w.PlanetMass * radius / math.Pow(w.PrimaryDistance, 3)
	}

	if w.Lock != ResonanceNone && w.Type != TypeSatellite {
		resonant := w.Lock == Resonance5to2 || w.Lock == Resonance2to1 ||
			w.Lock == Resonance3to2 || w.Lock == Resonance3to1
		if w.Ecc >= 0.05 || resonant || w.OrbitalTidalHeating {
			f = 1.57e-4 * w.StarMass * radius / math.Pow(w.StarDistance, 3)
		}
	}

	if f > 0 {
		stressedLith, stressedOrdinal := lookupStressedLithosphere(f)
		if stressedOrdinal < ordinal {
			lith = stressedLith
		}
	}

	switch lith {
	case LithosphereEarlyPlate, LithosphereMaturePlate, LithosphereAncientPlate:
		roll2 := r.Sum(3)
		switch w.WaterPrevalence {
		case WaterExtensive, WaterMassive:
			roll2 += 6
		case WaterMinimal, WaterTrace:
			roll2 -= 6
		}
		if lith == LithosphereEarlyPlate {
			roll2 += 2
		}
		if lith == LithosphereAncientPlate {
			roll2 -= 2
		}
		if roll2 >= 11 {
			tect = TectonicsMobile
		} else {
			tect = TectonicsFixed
		}
	}

	if (lith == LithosphereEarlyPlate || lith == LithosphereMaturePlate) && tect == TectonicsFixed {
		episodicResurfacing = true
	}

	if lith == LithosphereMolten && newWater != WaterMassive {
		newWater = WaterTrace
		newPercent = 0
	}

	if newWater == WaterExtensive {
		roll3 := r.Sum(3)
		switch lith {
		case LithosphereSoft, LithosphereSolid:
			newPercent += float64(roll3) + 10
		case LithosphereEarlyPlate, LithosphereAncientPlate:
			newPercent += float64(roll3)
		}
		if newPercent > 100 {
			newPercent = 100
		}
	}

	return lith, tect, episodicResurfacing, newWater, newPercent
}

// CalcMagneticField returns the strength class of the world's magnetic
// field, driven by how much convecting core the lithosphere implies.
func CalcMagneticField(w World, r *dice.Roller) MagneticField {
	roll := r.Sum(3)
	if w.Lithosphere == LithosphereSoft {
		roll += 4
	}
	if w.Tectonics == TectonicsMobile &&
		(w.Lithosphere == LithosphereEarlyPlate || w.Lithosphere == LithosphereAncientPlate) {
		roll += 8
	}
	if w.Lithosphere == LithosphereMaturePlate && w.Tectonics == TectonicsMobile {
		roll += 12
	}

	switch {
	case roll <= 14:
		return FieldNone
	case roll <= 17:
		return FieldWeak
	case roll <= 19:
		return FieldModerate
	default:
		return FieldStrong
	}
}

// CalcARF returns the atmospheric retention factor.
func CalcARF(w World, r *dice.Roller) float64 {
	roll := r.Sum(3)
	if w.WaterPrevalence == WaterMassive {
		roll += 6
	}
	if w.GreenHouse {
		roll += 6
	}
	switch w.Lithosphere {
	case LithosphereMolten:
		roll += 6
	case LithosphereSoft:
		roll += 4
	case LithosphereEarlyPlate:
		roll += 2
	case LithosphereAncientPlate:
		roll -= 2
	case LithosphereSolid:
		roll -= 4
	}
	switch w.MagneticField {
	case FieldModerate:
		roll -= 2
	case FieldWeak:
		roll -= 4
	case FieldNone:
		roll -= 6
	}
	if roll < 0 {
		roll = 0
	}
	return float64(roll) / 10.0
}

// CalcMassHydrogen returns the atmospheric hydrogen mass in Earth
// atmospheres. Only worlds that can hold molecular hydrogen keep any.
func CalcMassHydrogen(w World, r *dice.Roller) float64 {
	mass := 0.0
	if w.MNumber() <= 2 {
		mass = w.ARF * 100
	}
	return r.UniformFloat(mass*0.9, mass*1.1)
}

// CalcMassHelium returns the atmospheric helium mass in Earth atmospheres.
func CalcMassHelium(w World, r *dice.Roller) float64 {
	var mass float64
	switch {
	case w.MNumber() <= 2:
		mass = w.ARF * 25
	case w.MNumber() == 3:
		mass = w.ARF * 5
	case w.MNumber() == 4:
		mass = w.ARF
	default:
		mass = 0
	}
	return r.UniformFloat(mass*0.9, mass*1.1)
}

// CalcMassNitrogen returns the atmospheric nitrogen mass in Earth
// atmospheres, boosted on cold water-massive worlds where nitrogen ice
// participates.
func CalcMassNitrogen(w World, r *dice.Roller) float64 {
	mass := 0.0
	if w.MNumber() <= 28 && w.BlackBodyTemp() >= 80 {
		mass = w.ARF * 0.7
		if w.BlackBodyTemp() <= 125 && w.WaterPrevalence == WaterMassive {
			mass *= 15
		}
	}
	return r.UniformFloat(mass*0.9, mass*1.1)
}

// CalcWorldClass classifies the world from its atmosphere and temperature.
func CalcWorldClass(w World) WorldClass {
	bbt := w.BlackBodyTemp()
	switch {
	case w.GreenHouse:
		return ClassOne
	case w.MassHydrogen > 0:
		return ClassTwo
	case w.MassNitrogen > 0 && bbt >= 80 && bbt <= 125:
		return ClassThree
	case w.MassNitrogen > 0 && bbt > 125:
		return ClassFour
	case w.MassHydrogen == 0 && w.MassHelium == 0 && w.MassNitrogen == 0 &&
		w.MNumber() <= 44 && bbt > 195:
		return ClassFive
	default:
		return ClassSix
	}
}

// CalcAlbedo returns the world's bond albedo from its class, surface water
// and crustal state.
func CalcAlbedo(w World, r *dice.Roller) float64 {
	roll := float64(r.Sum(3)) / 100

	switch w.Class {
	case ClassOne:
		return 0.65 + roll
	case ClassTwo:
		return 0.2 + roll
	case ClassThree:
		return 0.1 + roll
	case ClassFour, ClassFive:
		base := map[Water]float64{
			WaterTrace:     0.15,
			WaterMinimal:   0.16,
			WaterModerate:  0.19,
			WaterExtensive: 0.22,
			WaterMassive:   0.25,
		}
		return base[w.WaterPrevalence] + roll
	default:
		base := map[Water]float64{
			WaterTrace:     0.01,
			WaterMinimal:   0.02,
			WaterModerate:  0.08,
			WaterExtensive: 0.14,
			WaterMassive:   0.20,
		}
		a := base[w.WaterPrevalence] + roll
		switch w.Lithosphere {
		case LithosphereSoft, LithosphereMolten:
			a += 0.5
		case LithosphereEarlyPlate, LithosphereMaturePlate:
			a += 0.3
		case LithosphereAncientPlate:
			if w.Tectonics == TectonicsMobile || w.Tectonics == TectonicsFixed {
				a += 0.3
			}
		case LithosphereSolid:
			if w.BlackBodyTemp() < 80 {
				a += 0.3
			}
		}
		return a
	}
}
