package world

import (
	"log/slog"

	"worldforge/internal/dice"
)

// Service runs the generation pipeline over a World. The random draws all
// come from the injected roller, so a seeded or mocked roller makes a full
// generation deterministic.
type Service struct {
	roller *dice.Roller
	logger *slog.Logger
}

func NewService(roller *dice.Roller, logger *slog.Logger) *Service {
	logger.Debug("Initializing world service")

	return &Service{
		roller: roller,
		logger: logger,
	}
}

// Generate fills in every derived field of the world, in dependency order.
// It never fails on validated inputs.
func (s *Service) Generate(w World) World {
	logger := s.logger.With("component", "world_service", "operation", "generate", "world", w.Name, "type", string(w.Type))
	logger.Debug("Generating world")

	w.OrbitalPeriod = CalcOrbitalPeriod(w)
	w.RotationalPeriod, w.Lock = CalcRotationPeriod(w, s.roller)
	w.Obliquity, w.UnstableObliquity = CalcObliquity(w, s.roller)
	w.WaterPrevalence, w.WaterPercent, w.GreenHouse = CalcWater(w, s.roller)
	w.Lithosphere, w.Tectonics, w.EpisodicResurfacing, w.WaterPrevalence, w.WaterPercent = CalcGeophysics(w, s.roller)
	w.MagneticField = CalcMagneticField(w, s.roller)
	w.ARF = CalcARF(w, s.roller)
	w.MassHydrogen = CalcMassHydrogen(w, s.roller)
	w.MassHelium = CalcMassHelium(w, s.roller)
	w.MassNitrogen = CalcMassNitrogen(w, s.roller)
	w.Class = CalcWorldClass(w)
	w.Albedo = CalcAlbedo(w, s.roller)

	logger.Info("World generated",
		"radius_km", w.Radius(),
		"orbital_period_hours", w.OrbitalPeriod,
		"rotation_period_hours", w.RotationalPeriod,
		"class", string(w.Class),
	)
	return w
}
