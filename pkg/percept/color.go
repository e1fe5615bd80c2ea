package percept

// Splits an image into CIE L*a*b* planes and back. The conversion
// math itself belongs to go-colorful; this layer only shuttles pixels
// across that boundary and keeps hold of the alpha channel.

import(
	"fmt"
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"percept-filter/pkg/pmath"
)

// LabPlanes holds one filtering run's color decomposition. L gets
// filtered; A and B ride along untouched. Alpha is nil when the
// source image had no alpha to preserve.
type LabPlanes struct {
	L, A, B pmath.FloatGrid
	Alpha   *pmath.FloatGrid
}

// Split converts an image to L*a*b* planes. Grayscale sources are
// rejected - there are no chroma planes to preserve, so the contract
// can't be met.
func Split(img image.Image) (LabPlanes, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return LabPlanes{}, fmt.Errorf("%dx%d image: %w", w, h, ErrUnsupportedFormat)
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return LabPlanes{}, fmt.Errorf("grayscale input has no chroma: %w", ErrUnsupportedFormat)
	}

	p := LabPlanes{
		L: pmath.NewFloatGrid(w, h),
		A: pmath.NewFloatGrid(w, h),
		B: pmath.NewFloatGrid(w, h),
	}

	alpha := pmath.NewFloatGrid(w, h)
	hasAlpha := false

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nc := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			c := colorful.Color{
				R: float64(nc.R) / 255.0,
				G: float64(nc.G) / 255.0,
				B: float64(nc.B) / 255.0,
			}
			l, la, lb := c.Lab()
			p.L.Set(x, y, l)
			p.A.Set(x, y, la)
			p.B.Set(x, y, lb)

			alpha.Set(x, y, float64(nc.A)/255.0)
			if nc.A != 0xFF {
				hasAlpha = true
			}
		}
	}

	if hasAlpha {
		p.Alpha = &alpha
	}

	return p, nil
}

// Merge recombines the planes into a display-ready image, clamping
// every sample back into sRGB range.
func Merge(p LabPlanes) *image.NRGBA {
	w, h := p.L.Dx(), p.L.Dy()
	img := image.NewNRGBA(image.Rectangle{Max: image.Point{w, h}})

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colorful.Lab(p.L.Get(x, y), p.A.Get(x, y), p.B.Get(x, y)).Clamped()
			a := uint8(0xFF)
			if p.Alpha != nil {
				a = uint8(pmath.Clamp01(p.Alpha.Get(x, y))*255.0 + 0.5)
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(pmath.Clamp01(c.R)*255.0 + 0.5),
				G: uint8(pmath.Clamp01(c.G)*255.0 + 0.5),
				B: uint8(pmath.Clamp01(c.B)*255.0 + 0.5),
				A: a,
			})
		}
	}

	return img
}
