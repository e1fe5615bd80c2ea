package percept

// Maps eccentricity to the highest spatial frequency the observer can
// still resolve there. The falloff approximates the cortical
// magnification factor from Reddy (1997), "Perceptually modulated
// level of detail for virtual environments".

import(
	"log"
	"math"

	"percept-filter/pkg/pmath"
)

// NyquistCyclesPerPixel is the hard ceiling on any cutoff: half a
// cycle per pixel of the plane being filtered.
const NyquistCyclesPerPixel = 0.5

// magnificationDirect is the foveal/near-foveal falloff: flat across
// the fovea's plateau, then the Reddy decay.
func magnificationDirect(eccDeg float64) float64 {
	if eccDeg <= 5.79 {
		return 1.0
	}
	return 7.49 / ((0.3*eccDeg + 1) * (0.3*eccDeg + 1))
}

// magnificationPeripheral has no plateau - away from fixation the
// decay starts immediately, and is steeper at every eccentricity.
func magnificationPeripheral(eccDeg float64) float64 {
	return 1.0 / ((0.3*eccDeg + 1) * (0.3*eccDeg + 1))
}

// CyclesPerDegree returns the cutoff spatial frequency at the given
// eccentricity. The floor applies to both modes, which keeps
// direct >= peripheral at every eccentricity.
func CyclesPerDegree(eccDeg float64, mode GazeMode, peakCPD float64) float64 {
	m := magnificationDirect(eccDeg)
	if mode == GazePeripheral {
		m = magnificationPeripheral(eccDeg)
	}

	cpd := peakCPD * m
	if cpd < MinAcuityCPD {
		cpd = MinAcuityCPD
	}
	return cpd
}

// degreesPerPixel is the visual angle one image pixel subtends at the
// configured distance - the geometric mean of the two axes, since the
// cutoff map holds a single scalar per pixel.
func degreesPerPixel(cfg Config, w, h int) float64 {
	pitchX := cfg.DisplayWidthMeters / float64(w)
	pitchY := cfg.DisplayHeightMeters / float64(h)
	ax := pmath.Degrees(2 * math.Atan(pitchX/(2*cfg.DistanceMeters)))
	ay := pmath.Degrees(2 * math.Atan(pitchY/(2*cfg.DistanceMeters)))
	return math.Sqrt(ax * ay)
}

// displayNyquist limits cutoffs to what the physical display panel can
// render: if the image has more pixels than the panel, frequencies
// above the panel's own Nyquist can't reach the eye anyway.
func displayNyquist(cfg Config, w, h int) float64 {
	rx := float64(cfg.ResolutionX) / float64(w)
	ry := float64(cfg.ResolutionY) / float64(h)
	nyq := NyquistCyclesPerPixel * math.Sqrt(rx*ry)
	if nyq > NyquistCyclesPerPixel {
		nyq = NyquistCyclesPerPixel
	}
	return nyq
}

// ComputeCutoffMap converts an eccentricity map into per-pixel cutoff
// frequencies in cycles per (image) pixel.
func ComputeCutoffMap(ecc pmath.FloatGrid, cfg Config) pmath.FloatGrid {
	w, h := ecc.Dx(), ecc.Dy()
	degPP := degreesPerPixel(cfg, w, h)
	nyq := displayNyquist(cfg, w, h)

	cut := ecc.NewFromThis()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cpp := CyclesPerDegree(ecc.Get(x, y), cfg.Gaze, cfg.PeakAcuityCPD) * degPP
			if cpp > nyq {
				cpp = nyq
			}
			cut.Set(x, y, cpp)
		}
	}

	if cfg.Verbosity > 0 {
		log.Printf("cutoff map (cycles/px): %s", cut.Stats())
	}

	return cut
}
