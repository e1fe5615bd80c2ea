package percept

// The one entry point the front ends call.

import(
	"image"
	"log"

	"github.com/skypies/util/histogram"

	"percept-filter/pkg/pmath"
)

// RenderPerceivedImage filters the image down to what the configured
// observer could actually resolve on the configured display. The
// whole pipeline is a pure function of its inputs: geometry ->
// eccentricity -> cutoff -> banded filtering of the luminance plane
// -> recomposition. All parameter problems surface before any
// transform work starts; on error, no partial result comes back.
func RenderPerceivedImage(img image.Image, cfg Config) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	planes, err := Split(img)
	if err != nil {
		return nil, err
	}

	ecc, err := ComputeEccentricityMap(cfg, w, h)
	if err != nil {
		return nil, err
	}

	cut := ComputeCutoffMap(ecc, cfg)

	if cfg.Verbosity > 0 {
		logCutoffHistogram(cut)
	}
	if cfg.DumpMaps {
		if err := ecc.ToImg("eccentricity (deg)", "ecc-map.png"); err != nil {
			log.Printf("map dump ecc-map.png: %v", err)
		}
		if err := cut.ToImg("cutoff (cycles/px)", "cutoff-map.png"); err != nil {
			log.Printf("map dump cutoff-map.png: %v", err)
		}
	}

	filtered, err := ApplyBanded(planes.L, cut, cfg)
	if err != nil {
		return nil, err
	}
	planes.L = filtered

	return Merge(planes), nil
}

// logCutoffHistogram summarizes the cutoff distribution, which is the
// quickest way to sanity-check a band layout against a new geometry.
func logCutoffHistogram(cut pmath.FloatGrid) {
	hist := histogram.Histogram{NumBuckets: 50, ValMin: 0, ValMax: 50}
	for y := 0; y < cut.Dy(); y++ {
		for x := 0; x < cut.Dx(); x++ {
			hist.Add(histogram.ScalarVal(int(cut.Get(x, y) * 100)))
		}
	}
	log.Printf("cutoff distribution (centicycles/px): %s", hist)
}
