package percept

// The spatially-varying low-pass filter. A true per-pixel cutoff
// isn't separable into one global convolution, so the cutoff range is
// quantized into K bands: the whole plane is Butterworth-filtered
// once per band in the frequency domain, and the K results are
// blended per pixel with feathered weights so band seams stay
// invisible. Bands are independent of each other, so they run on a
// worker pool.

import(
	"fmt"
	"log"
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"percept-filter/pkg/pmath"
)

// Bands closer in log-cutoff than this are considered the same band.
const minLogBandSpread = 0.02

// bandCutoffs picks K representative cutoffs spanning the values in
// the map. Log-spaced, since acuity falls off roughly log-linearly
// with eccentricity. Collapses to a single band when the map is
// (nearly) uniform.
func bandCutoffs(cut pmath.FloatGrid, k int) []float64 {
	min, max := cut.MinMax()
	if min <= 0 {
		// Caller validates; a non-positive cutoff would NaN the log
		// spacing, so surface it as a degenerate single band instead.
		return []float64{min}
	}
	if k < 2 || math.Log(max)-math.Log(min) < minLogBandSpread {
		return []float64{max}
	}
	return floats.LogSpan(make([]float64, k), min, max)
}

// validateCutoffs is the fail-fast check: every band cutoff must sit
// inside (0, Nyquist].
func validateCutoffs(cutoffs []float64) error {
	for _, c := range cutoffs {
		if c <= 0 || c > NyquistCyclesPerPixel+1e-9 {
			return fmt.Errorf("band cutoff %f cycles/px: %w", c, ErrInvalidCutoff)
		}
	}
	return nil
}

// butterworth2 is the magnitude response of a second-order low-pass
// Butterworth filter: power rolls off as the fourth power of f/fc.
func butterworth2(f, fc float64) float64 {
	r := f / fc
	return 1.0 / math.Sqrt(1.0+r*r*r*r)
}

// fft2 runs an unnormalized 2D FFT over a flat row-major grid, rows
// then columns. The inverse is scaled back by 1/(w*h) so a forward
// then inverse round-trip is the identity.
func fft2(a []complex128, w, h int, forward bool) {
	rowFFT := fourier.NewCmplxFFT(w)
	colFFT := fourier.NewCmplxFFT(h)

	for y := 0; y < h; y++ {
		row := a[y*w : (y+1)*w]
		if forward {
			rowFFT.Coefficients(row, row)
		} else {
			rowFFT.Sequence(row, row)
		}
	}

	col := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = a[y*w+x]
		}
		if forward {
			colFFT.Coefficients(col, col)
		} else {
			colFFT.Sequence(col, col)
		}
		for y := 0; y < h; y++ {
			a[y*w+x] = col[y]
		}
	}

	if !forward {
		scale := complex(1.0/float64(w*h), 0)
		for i := range a {
			a[i] *= scale
		}
	}
}

// forwardSpectrum reflect-pads the plane onto a power-of-two grid and
// transforms it. Reflection keeps the padded signal continuous at the
// image border, so the filter doesn't ring against wraparound edges.
func forwardSpectrum(plane pmath.FloatGrid) ([]complex128, int, int) {
	w, h := plane.Dx(), plane.Dy()
	fw := pmath.NextPow2(w * 3 / 2)
	fh := pmath.NextPow2(h * 3 / 2)
	if fw < 8 { fw = 8 }
	if fh < 8 { fh = 8 }

	a := make([]complex128, fw*fh)
	for y := 0; y < fh; y++ {
		yy := pmath.ReflectIndex(y, h)
		for x := 0; x < fw; x++ {
			a[y*fw+x] = complex(plane.Get(pmath.ReflectIndex(x, w), yy), 0)
		}
	}

	fft2(a, fw, fh, true)
	return a, fw, fh
}

// filterBand multiplies a copy of the spectrum by the band's
// Butterworth response, inverts, and crops back to plane size.
func filterBand(spectrum []complex128, fw, fh, w, h int, fc float64) pmath.FloatGrid {
	a := make([]complex128, len(spectrum))
	copy(a, spectrum)

	for ky := 0; ky < fh; ky++ {
		fy := float64(ky) / float64(fh)
		if ky > fh/2 {
			fy = float64(ky-fh) / float64(fh)
		}
		for kx := 0; kx < fw; kx++ {
			fx := float64(kx) / float64(fw)
			if kx > fw/2 {
				fx = float64(kx-fw) / float64(fw)
			}
			f := math.Sqrt(fx*fx + fy*fy)
			a[ky*fw+kx] *= complex(butterworth2(f, fc), 0)
		}
	}

	fft2(a, fw, fh, false)

	out := pmath.NewFloatGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, real(a[y*fw+x]))
		}
	}
	return out
}

// bandWeights returns the feathered per-band weights for one pixel's
// cutoff value. Gaussian falloff in log-frequency, normalized to sum
// to 1, so the blend between neighbouring bands is seamless.
func bandWeights(pixelCutoff float64, logCutoffs []float64, sigma float64) []float64 {
	ws := make([]float64, len(logCutoffs))
	if len(ws) == 1 {
		ws[0] = 1.0
		return ws
	}

	lp := math.Log(pixelCutoff)
	sum := 0.0
	for i, lc := range logCutoffs {
		d := (lp - lc) / sigma
		ws[i] = math.Exp(-0.5 * d * d)
		sum += ws[i]
	}
	for i := range ws {
		ws[i] /= sum
	}
	return ws
}

// ApplyBanded low-pass filters the plane with a spatially varying
// cutoff, as described by the cutoff map.
func ApplyBanded(plane, cut pmath.FloatGrid, cfg Config) (pmath.FloatGrid, error) {
	w, h := plane.Dx(), plane.Dy()

	cutoffs := bandCutoffs(cut, cfg.Bands)
	if err := validateCutoffs(cutoffs); err != nil {
		return pmath.FloatGrid{}, err
	}

	if cfg.Verbosity > 0 {
		log.Printf("filtering %dx%d plane with %d band(s), cutoffs %v", w, h, len(cutoffs), cutoffs)
	}

	spectrum, fw, fh := forwardSpectrum(plane)

	// One filtered candidate plane per band, computed concurrently.
	candidates := make([]pmath.FloatGrid, len(cutoffs))
	jobsChan := make(chan int, len(cutoffs))

	nWorkers := cfg.Workers
	if nWorkers < 1 {
		nWorkers = 1
	}
	if nWorkers > len(cutoffs) {
		nWorkers = len(cutoffs)
	}

	var wg sync.WaitGroup
	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobsChan {
				candidates[b] = filterBand(spectrum, fw, fh, w, h, cutoffs[b])
			}
		}()
	}
	for b := range cutoffs {
		jobsChan <- b
	}
	close(jobsChan)
	wg.Wait()

	// Feathered per-pixel composite of the candidates.
	logCutoffs := make([]float64, len(cutoffs))
	for i, c := range cutoffs {
		logCutoffs[i] = math.Log(c)
	}
	sigma := 1.0
	if len(logCutoffs) > 1 {
		sigma = logCutoffs[1] - logCutoffs[0]
	}

	out := plane.NewFromThis()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ws := bandWeights(cut.Get(x, y), logCutoffs, sigma)
			v := 0.0
			for i, wgt := range ws {
				v += wgt * candidates[i].Get(x, y)
			}
			out.Set(x, y, v)
		}
	}

	return out, nil
}
