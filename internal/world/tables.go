package world

// Lookup tables for the generation pipeline. Each lookup walks its table
// in order and selects the first row whose score is >= the selection
// value, falling back to the last row.

// rotationBand is a 3d6+T row mapping to a sidereal rotation period range
// in hours.
type rotationBand struct {
	roll  int
	lower float64
	upper float64
}

var rotationRateTable = []rotationBand{
	{3, 4, 5},
	{4, 4, 6},
	{5, 5, 8},
	{6, 6, 10},
	{7, 8, 12},
	{8, 10, 16},
	{9, 12, 20},
	{10, 16, 24},
	{11, 20, 32},
	{12, 24, 40},
	{13, 32, 48},
	{14, 40, 64},
	{15, 48, 80},
	{16, 64, 96},
	{17, 80, 128},
	{18, 96, 160},
	{19, 128, 192},
	{20, 160, 256},
	{21, 192, 320},
	{22, 256, 384},
	{23, 320, 384},
}

func lookupRotationRate(roll int) (lower, upper float64) {
	last := rotationRateTable[len(rotationRateTable)-1]
	lower, upper = last.lower, last.upper
	for _, band := range rotationRateTable {
		if roll <= band.roll {
			return band.lower, band.upper
		}
	}
	return lower, upper
}

// obliquityBand is a dice row mapping to an axial tilt range in degrees.
type obliquityBand struct {
	roll  int
	lower int
	upper int
}

// Rows 5..24; values <= 4 and >= 25 take the extreme and minimal branches
// before this table is consulted.
var obliquityTable = []obliquityBand{
	{5, 46, 49},
	{6, 44, 48},
	{7, 42, 46},
	{8, 40, 44},
	{9, 38, 42},
	{10, 36, 40},
	{11, 34, 38},
	{12, 32, 36},
	{13, 30, 34},
	{14, 28, 32},
	{15, 26, 30},
	{16, 24, 28},
	{17, 22, 26},
	{18, 20, 24},
	{19, 18, 22},
	{20, 16, 20},
	{21, 14, 18},
	{22, 12, 16},
	{23, 10, 14},
	{24, 10, 12},
}

var extremeObliquityTable = []obliquityBand{
	{2, 50, 60},
	{3, 50, 70},
	{4, 60, 80},
	{5, 70, 80},
}

func lookupObliquity(table []obliquityBand, value int) (lower, upper int) {
	last := table[len(table)-1]
	lower, upper = last.lower, last.upper
	for _, band := range table {
		if value <= band.roll {
			return band.lower, band.upper
		}
	}
	return lower, upper
}

// hydroBand maps a modified 3d6 roll to a surface water coverage range.
type hydroBand struct {
	score      int
	lower      float64
	upper      float64
	prevalence Water
}

var hydroCoverTable = []hydroBand{
	{-5, 0, 0, WaterTrace},
	{-1, 0, 1, WaterMinimal},
	{0, 0, 2, WaterMinimal},
	{1, 1, 3, WaterMinimal},
	{2, 2, 5, WaterMinimal},
	{3, 3, 7.5, WaterMinimal},
	{4, 5, 10, WaterModerate},
	{5, 7.5, 20, WaterModerate},
	{6, 10, 30, WaterModerate},
	{7, 20, 40, WaterModerate},
	{8, 30, 50, WaterModerate},
	{9, 40, 55, WaterModerate},
	{10, 50, 60, WaterModerate},
	{11, 55, 65, WaterModerate},
	{12, 60, 70, WaterExtensive},
	{13, 65, 75, WaterExtensive},
	{14, 70, 80, WaterExtensive},
	{15, 75, 85, WaterExtensive},
	{16, 80, 90, WaterExtensive},
	{17, 85, 95, WaterExtensive},
	{18, 90, 97.5, WaterExtensive},
	{19, 95, 100, WaterExtensive},
	{20, 100, 100, WaterMassive},
}

func lookupHydroCover(value int) (lower, upper float64, prevalence Water) {
	last := hydroCoverTable[len(hydroCoverTable)-1]
	lower, upper, prevalence = last.lower, last.upper, last.prevalence
	for _, band := range hydroCoverTable {
		if value <= band.score {
			return band.lower, band.upper, band.prevalence
		}
	}
	return lower, upper, prevalence
}

// lithosphereBand maps a modified heat roll to a crustal state. The
// ordinal orders states from most (1) to least (6) active, so a tidally
// stressed result only applies when it is more active.
type lithosphereBand struct {
	score   int
	lith    Lithosphere
	ordinal int
}

var lithosphereTable = []lithosphereBand{
	{15, LithosphereMolten, 1},
	{23, LithosphereSoft, 2},
	{31, LithosphereEarlyPlate, 3},
	{63, LithosphereMaturePlate, 4},
	{87, LithosphereAncientPlate, 5},
	{88, LithosphereSolid, 6},
}

func lookupLithosphere(value int) (Lithosphere, int) {
	last := lithosphereTable[len(lithosphereTable)-1]
	for _, band := range lithosphereTable {
		if value <= band.score {
			return band.lith, band.ordinal
		}
	}
	return last.lith, last.ordinal
}

// stressBand maps the tidal stress figure f to a crustal state.
type stressBand struct {
	limit   float64
	lith    Lithosphere
	ordinal int
}

var lithosphereStressTable = []stressBand{
	{200, LithosphereSolid, 6},
	{630, LithosphereAncientPlate, 5},
	{2000, LithosphereMaturePlate, 4},
	{6300, LithosphereEarlyPlate, 3},
	{20000, LithosphereSoft, 2},
	{20001, LithosphereMolten, 1},
}

func lookupStressedLithosphere(f float64) (Lithosphere, int) {
	last := lithosphereStressTable[len(lithosphereStressTable)-1]
	for _, band := range lithosphereStressTable {
		if f <= band.limit {
			return band.lith, band.ordinal
		}
	}
	return last.lith, last.ordinal
}
