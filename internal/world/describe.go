package world

import (
	"fmt"
	"strings"
)

// Describe renders the fixed multi-line report for a fully generated
// world. Masses print as M♁ (M☉ for the star), distances as AU or km, and
// periods in hours; the layout is stable and consumed as-is by callers.
func (w World) Describe() string {
	text := []string{
		w.Name,
		fmt.Sprintf("%s Age: %.3f GYr", w.Type, w.Age),
	}

	if w.Type == TypeSatellite {
		text = append(text, fmt.Sprintf(
			"Mass: %.3f M♁ Density: %.3f K♁ Radius: %d km Gravity: %.3f G",
			w.SatelliteMass, w.Density, w.Radius(), w.Gravity()))
	} else {
		text = append(text, fmt.Sprintf(
			"Mass: %.3f M♁ Density: %.3f K♁ Radius: %d km Gravity: %.3f G",
			w.PlanetMass, w.Density, w.Radius(), w.Gravity()))
	}

	text = append(text, fmt.Sprintf(
		"Star Mass: %.3f M☉ Distance: %.3f AU Lumin: %.3f L☉",
		w.StarMass, w.StarDistance, w.Luminosity))

	switch w.Type {
	case TypeOrbited:
		text = append(text, fmt.Sprintf(
			"Satellite Mass: %.3f M♁ Distance: %.0f km", w.SatelliteMass, w.PrimaryDistance))
	case TypeSatellite:
		text = append(text, fmt.Sprintf(
			"Primary Mass: %.3f M♁ Distance: %.0f km", w.PlanetMass, w.PrimaryDistance))
	}

	text = append(text, "---")
	text = append(text, fmt.Sprintf("Orbital Period = %.1f hours", w.OrbitalPeriod))
	text = append(text, fmt.Sprintf("Rotation Period = %.1f hours %s", w.RotationalPeriod, w.Lock))

	unstable := ""
	if w.UnstableObliquity {
		unstable = "Unstable"
	}
	text = append(text, fmt.Sprintf("Obliquity = %d° %s", w.Obliquity, unstable))

	if day, ok := w.LocalDayLength(); ok {
		text = append(text, fmt.Sprintf(
			"Day length = %.1f hours %.2f days in year", day, w.DaysInLocalYear()))
	} else {
		text = append(text, "Day length: not applicable")
	}

	greenhouse := ""
	if w.GreenHouse {
		greenhouse = "Runaway Greenhouse"
	}
	text = append(text, fmt.Sprintf("Black body temperature = %d K %s", w.BlackBodyTemp(), greenhouse))
	text = append(text, fmt.Sprintf("M number = %d", w.MNumber()))
	text = append(text, fmt.Sprintf("Water prevalence: %s %5.1f%%", w.WaterPrevalence, w.WaterPercent))

	resurfacing := ""
	if w.EpisodicResurfacing {
		resurfacing = " / Episodic Resurfacing"
	}
	text = append(text, fmt.Sprintf("%s / %s%s", w.Lithosphere, w.Tectonics, resurfacing))
	text = append(text, string(w.MagneticField))
	text = append(text, fmt.Sprintf(
		"%s ARF: %g H2: %.2f He: %.2f N2: %.2f",
		w.Class, w.ARF, w.MassHydrogen, w.MassHelium, w.MassNitrogen))
	text = append(text, fmt.Sprintf("Albedo: %.2f", w.Albedo))

	return strings.Join(text, "\n")
}
