package percept

import(
	"math"
	"testing"
)

func TestCutoffMonotonicity(t *testing.T) {
	for _, mode := range []GazeMode{GazeDirect, GazePeripheral} {
		prev := math.MaxFloat64
		for e := 0.0; e <= 90.0; e += 0.25 {
			cpd := CyclesPerDegree(e, mode, DefaultPeakAcuityCPD)
			if cpd > prev {
				t.Fatalf("mode %s: cutoff rose from %f to %f at ecc %f", mode, prev, cpd, e)
			}
			prev = cpd
		}
	}
}

func TestModeOrdering(t *testing.T) {
	for e := 0.01; e <= 90.0; e += 0.37 {
		direct := CyclesPerDegree(e, GazeDirect, DefaultPeakAcuityCPD)
		periph := CyclesPerDegree(e, GazePeripheral, DefaultPeakAcuityCPD)
		if direct < periph {
			t.Fatalf("ecc %f: direct cutoff %f < peripheral cutoff %f", e, direct, periph)
		}
	}
}

func TestAcuityFloor(t *testing.T) {
	for _, mode := range []GazeMode{GazeDirect, GazePeripheral} {
		cpd := CyclesPerDegree(85.0, mode, DefaultPeakAcuityCPD)
		if cpd != MinAcuityCPD {
			t.Errorf("mode %s at 85 deg: got %f cpd, want floor %f", mode, cpd, MinAcuityCPD)
		}
	}
}

func TestFovealPlateau(t *testing.T) {
	// Inside the plateau, direct-gaze acuity stays at the peak.
	for _, e := range []float64{0, 1, 5.79} {
		if cpd := CyclesPerDegree(e, GazeDirect, DefaultPeakAcuityCPD); cpd != DefaultPeakAcuityCPD {
			t.Errorf("ecc %f: got %f cpd, want %f", e, cpd, DefaultPeakAcuityCPD)
		}
	}
	// Peripheral mode has no plateau at all.
	if cpd := CyclesPerDegree(1.0, GazePeripheral, DefaultPeakAcuityCPD); cpd >= DefaultPeakAcuityCPD {
		t.Errorf("peripheral at 1 deg should already have decayed, got %f cpd", cpd)
	}
}

func TestCutoffMapClampedToNyquist(t *testing.T) {
	cfg := NewConfig()
	cfg.DistanceMeters = 0.1 // close in, so raw cutoffs blow past Nyquist
	cfg.DisplayWidthMeters = 4.0
	cfg.DisplayHeightMeters = 4.0
	cfg.ResolutionX, cfg.ResolutionY = 100, 100

	ecc, err := ComputeEccentricityMap(cfg, 100, 100)
	if err != nil {
		t.Fatalf("eccentricity map: %v", err)
	}
	cut := ComputeCutoffMap(ecc, cfg)

	_, max := cut.MinMax()
	if max > NyquistCyclesPerPixel+1e-12 {
		t.Errorf("cutoff map max %f exceeds Nyquist %f", max, NyquistCyclesPerPixel)
	}
	min, _ := cut.MinMax()
	if min <= 0 {
		t.Errorf("cutoff map min %f should be positive", min)
	}
}

func TestCutoffMapFollowsEccentricity(t *testing.T) {
	// For a fixed mode, a pixel at higher eccentricity never gets a
	// higher cutoff than one closer to fixation.
	cfg := NewConfig()
	cfg.DistanceMeters = 0.6
	cfg.DisplayWidthMeters = 0.5
	cfg.DisplayHeightMeters = 0.3
	cfg.ResolutionX, cfg.ResolutionY = 192, 108

	ecc, err := ComputeEccentricityMap(cfg, 192, 108)
	if err != nil {
		t.Fatalf("eccentricity map: %v", err)
	}
	cut := ComputeCutoffMap(ecc, cfg)

	type px struct{ x, y int }
	pixels := []px{{0, 0}, {96, 54}, {191, 107}, {50, 80}, {140, 20}}
	for _, p1 := range pixels {
		for _, p2 := range pixels {
			if ecc.Get(p1.x, p1.y) <= ecc.Get(p2.x, p2.y) && cut.Get(p1.x, p1.y) < cut.Get(p2.x, p2.y) {
				t.Errorf("pixel (%d,%d) ecc %f cutoff %f vs pixel (%d,%d) ecc %f cutoff %f: monotonicity broken",
					p1.x, p1.y, ecc.Get(p1.x, p1.y), cut.Get(p1.x, p1.y),
					p2.x, p2.y, ecc.Get(p2.x, p2.y), cut.Get(p2.x, p2.y))
			}
		}
	}
}
