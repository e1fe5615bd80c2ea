package percept

// Projects the display's physical placement into per-pixel retinal
// eccentricity. The observer sits at the origin looking along +y; the
// display is built flat in its own frame (width along x, height along
// z), tilted, then pushed out to its spherical offset, so its center
// stays perpendicular to the observer's line toward it.

import(
	"log"

	"percept-filter/pkg/pmath"
)

// straightAhead is the fixation direction in peripheral mode.
var straightAhead = pmath.Vec3{0, 1, 0}

// displayFrame caches the placement shared by every pixel of a run.
type displayFrame struct {
	rot    pmath.Mat3 // display-local into observer frame
	center pmath.Vec3 // display center in observer frame
	pitchX float64    // meters per image pixel across
	pitchY float64
	w, h   int        // image dimensions
}

func newDisplayFrame(cfg Config, w, h int) displayFrame {
	hRad := pmath.Radians(cfg.HorizontalAngleDeg)
	vRad := pmath.Radians(cfg.VerticalAngleDeg)

	// Horizontal angle is clockwise when seen from above, hence -h.
	rot := pmath.RotateAboutZ(-hRad).Mult(pmath.RotateAboutX(vRad))

	return displayFrame{
		rot:    rot,
		center: pmath.SphericalToCartesian(cfg.DistanceMeters, hRad, vRad),
		pitchX: cfg.DisplayWidthMeters / float64(w),
		pitchY: cfg.DisplayHeightMeters / float64(h),
		w:      w,
		h:      h,
	}
}

// pixelDir returns the direction from the observer to the center of
// image pixel (x,y). Image row 0 is the top of the display.
func (df displayFrame)pixelDir(x, y int) pmath.Vec3 {
	local := pmath.Vec3{
		(float64(x)+0.5)*df.pitchX - float64(df.w)*df.pitchX/2,
		0,
		float64(df.h)*df.pitchY/2 - (float64(y)+0.5)*df.pitchY,
	}
	return df.rot.Apply(local).Add(df.center)
}

// ComputeEccentricityMap returns, for each pixel of a w x h image shown
// on the configured display, its angular offset in degrees from the
// observer's fixation direction.
func ComputeEccentricityMap(cfg Config, w, h int) (pmath.FloatGrid, error) {
	if err := cfg.Validate(); err != nil {
		return pmath.FloatGrid{}, err
	}

	df := newDisplayFrame(cfg, w, h)

	fixation := df.center
	if cfg.Gaze == GazePeripheral {
		fixation = straightAhead
	}

	ecc := pmath.NewFloatGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dir := df.pixelDir(x, y)
			ecc.Set(x, y, pmath.Degrees(dir.AngleBetween(fixation)))
		}
	}

	if cfg.Verbosity > 0 {
		log.Printf("eccentricity map: %s", ecc.Stats())
	}

	return ecc, nil
}
