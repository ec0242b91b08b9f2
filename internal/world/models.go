package world

import "math"

// WorldType selects which orbital relationships apply to a world.
type WorldType string

const (
	TypeLone      WorldType = "Lone Planet"
	TypeOrbited   WorldType = "Planet with Satellite"
	TypeSatellite WorldType = "Satellite"
)

// Resonance describes the spin-orbit state a world has been braked into.
type Resonance string

const (
	ResonanceNone   Resonance = "None"
	LockToSatellite Resonance = "1:1 tidal lock with satellite"
	LockToPrimary   Resonance = "1:1 tidal lock with planet"
	LockToStar      Resonance = "1:1 tidal lock with star"
	Resonance3to2   Resonance = "3:2 resonance with star"
	Resonance2to1   Resonance = "2:1 resonance with star"
	Resonance5to2   Resonance = "5:2 resonance with star"
	Resonance3to1   Resonance = "3:1 resonance with star"
)

// Water is the prevalence of surface water.
type Water string

const (
	WaterTrace     Water = "Trace"
	WaterMinimal   Water = "Minimal"
	WaterModerate  Water = "Moderate"
	WaterExtensive Water = "Extensive"
	WaterMassive   Water = "Massive"
)

// Lithosphere is the state of the world's crust.
type Lithosphere string

const (
	LithosphereMolten       Lithosphere = "Molten Lithosphere"
	LithosphereSoft         Lithosphere = "Soft Lithosphere"
	LithosphereEarlyPlate   Lithosphere = "Early Plate Lithosphere"
	LithosphereMaturePlate  Lithosphere = "Mature Plate Lithosphere"
	LithosphereAncientPlate Lithosphere = "Ancient Plate Lithosphere"
	LithosphereSolid        Lithosphere = "Solid Plate Lithosphere"
)

// Tectonics is the plate-tectonic regime of the lithosphere.
type Tectonics string

const (
	TectonicsNone   Tectonics = "No plate tectonics"
	TectonicsMobile Tectonics = "Mobile plate tectonics"
	TectonicsFixed  Tectonics = "Fixed Plate Tectonics"
)

// MagneticField is the strength class of the world's magnetic field.
type MagneticField string

const (
	FieldNone     MagneticField = "No magnetic field"
	FieldWeak     MagneticField = "Weak magnetic field"
	FieldModerate MagneticField = "Moderate Magnetic Field"
	FieldStrong   MagneticField = "Strong Magnetic Field"
)

// WorldClass is the overall habitability classification.
type WorldClass string

const (
	ClassOne   WorldClass = "Class 1 (Venus-type)"
	ClassTwo   WorldClass = "Class 2 (Dulcinea-type)"
	ClassThree WorldClass = "Class 3 (Titan-type)"
	ClassFour  WorldClass = "Class 4 (Earth-type)"
	ClassFive  WorldClass = "Class 5 (Mars-type)"
	ClassSix   WorldClass = "Class 6 (Luna-type)"
)

// World is the full record of a generated body: the user-supplied inputs
// plus every derived quantity the pipeline fills in. Values are in
// Earth/Sol-relative units: masses in M♁ (stars in M☉), star distance in
// AU, satellite distance in km, age in billions of years, density in K♁.
//
// For TypeSatellite the subject body is the satellite itself: PlanetMass
// then denotes the primary it orbits, and SatelliteMass the subject's own
// mass.
type World struct {
	Name            string
	Type            WorldType
	PlanetMass      float64
	StarMass        float64
	StarDistance    float64
	SatelliteMass   float64
	PrimaryDistance float64
	Age             float64
	Ecc             float64
	Density         float64
	Luminosity      float64
	Metal           float64

	OutsideIceLine      bool
	GrandTack           bool
	OortCloud           bool
	RockySatOfGasGiant  bool
	OrbitalTidalHeating bool

	OrbitalPeriod       float64
	RotationalPeriod    float64
	Lock                Resonance
	Obliquity           int
	UnstableObliquity   bool
	GreenHouse          bool
	WaterPrevalence     Water
	WaterPercent        float64
	Lithosphere         Lithosphere
	Tectonics           Tectonics
	EpisodicResurfacing bool
	MagneticField       MagneticField
	ARF                 float64
	MassHydrogen        float64
	MassHelium          float64
	MassNitrogen        float64
	Class               WorldClass
	Albedo              float64
}

// New returns a World with Earth/Luna-calibrated defaults for every field
// the pipeline does not derive.
func New(name string, t WorldType) World {
	return World{
		Name:             name,
		Type:             t,
		PlanetMass:       1.0,
		StarMass:         1.0,
		StarDistance:     1.0,
		SatelliteMass:    0.0123,
		PrimaryDistance:  384400,
		Age:              4.568,
		Ecc:              0.07,
		Density:          1.0,
		Luminosity:       1.0,
		Metal:            1.0,
		OrbitalPeriod:    7617.0,
		RotationalPeriod: 24.0,
		Lock:             ResonanceNone,
		WaterPrevalence:  WaterTrace,
		Lithosphere:      LithosphereSolid,
		Tectonics:        TectonicsNone,
		MagneticField:    FieldNone,
		Class:            ClassSix,
		Albedo:           0.1,
	}
}

// bodyMass is the mass of the subject body itself.
func (w World) bodyMass() float64 {
	if w.Type == TypeSatellite {
		return w.SatelliteMass
	}
	return w.PlanetMass
}

// Radius is the subject body's radius in km, from the volumetric relation
// between mass and density. The 6378 km reference makes an Earth-mass,
// Earth-density world come out exact.
func (w World) Radius() int {
	return int(math.Round(6378 * math.Cbrt(w.bodyMass()/w.Density)))
}

// Gravity is the surface gravity of the subject body in G.
func (w World) Gravity() float64 {
	return math.Cbrt(w.bodyMass() * w.Density * w.Density)
}

// TNumber is the tidal braking parameter governing how strongly the
// world's rotation has been despun over the system's age.
func (w World) TNumber() float64 {
	if w.Type == TypeSatellite {
		return 0
	}

	var konst, mass, distance float64
	switch w.Type {
	case TypeLone:
		konst = 9.6e-14
		mass = w.StarMass
		distance = w.StarDistance
	case TypeOrbited:
		konst = 1e25
		mass = w.SatelliteMass
		distance = w.PrimaryDistance
	}

	radius := float64(w.Radius())
	return konst * w.Age * mass * mass * radius * radius * radius /
		w.PlanetMass / math.Pow(distance, 6)
}

// TAdj is the rounded table index form of TNumber.
func (w World) TAdj() int {
	return int(math.Round(w.TNumber() * 12))
}

// BlackBodyTemp is the equilibrium black-body temperature in K.
func (w World) BlackBodyTemp() int {
	return int(math.Round(278 * math.Pow(w.Luminosity, 0.25) / math.Sqrt(w.StarDistance)))
}

// MNumber is the lightest molecular weight the world can retain in its
// atmosphere, rounded up.
func (w World) MNumber() int {
	radius := float64(w.Radius())
	m := 700000 * float64(w.BlackBodyTemp()) / w.Density / (radius * radius)
	return int(m + 0.99999999)
}

// LocalDayLength is the apparent solar day in hours. The second return is
// false when the world is tidally locked to its star and has no day cycle.
func (w World) LocalDayLength() (float64, bool) {
	if w.Lock == LockToStar {
		return 0, false
	}
	return w.OrbitalPeriod * w.RotationalPeriod / (w.RotationalPeriod + w.OrbitalPeriod), true
}

// DaysInLocalYear is the number of local days per orbit.
func (w World) DaysInLocalYear() float64 {
	day, ok := w.LocalDayLength()
	if !ok {
		return 0
	}
	return w.OrbitalPeriod / day
}
