package percept

import(
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func randomNRGBA(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 0xFF,
			})
		}
	}
	return img
}

func TestChromaPreservedThroughRoundTrip(t *testing.T) {
	img := randomNRGBA(40, 30, 7)

	planes, err := Split(img)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	again, err := Split(Merge(planes))
	if err != nil {
		t.Fatalf("second split: %v", err)
	}

	// Chroma planes must survive the merge/split round trip to within
	// 8-bit quantization of the conversion itself.
	const tol = 0.02
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if d := math.Abs(planes.A.Get(x, y) - again.A.Get(x, y)); d > tol {
				t.Fatalf("a* drifted by %f at (%d,%d)", d, x, y)
			}
			if d := math.Abs(planes.B.Get(x, y) - again.B.Get(x, y)); d > tol {
				t.Fatalf("b* drifted by %f at (%d,%d)", d, x, y)
			}
		}
	}
}

func TestSplitRejectsGrayscale(t *testing.T) {
	if _, err := Split(image.NewGray(image.Rect(0, 0, 10, 10))); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Gray: got %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Split(image.NewGray16(image.Rect(0, 0, 10, 10))); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Gray16: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestSplitRejectsZeroArea(t *testing.T) {
	if _, err := Split(image.NewNRGBA(image.Rect(0, 0, 0, 10))); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("zero width: got %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Split(image.NewNRGBA(image.Rect(0, 0, 10, 0))); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("zero height: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestAlphaPassesThrough(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: uint8(32 * x)})
		}
	}

	planes, err := Split(img)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if planes.Alpha == nil {
		t.Fatal("alpha plane not captured")
	}

	out := Merge(planes)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got, want := out.NRGBAAt(x, y).A, img.NRGBAAt(x, y).A; got != want {
				t.Fatalf("alpha at (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestOpaqueImageHasNoAlphaPlane(t *testing.T) {
	planes, err := Split(randomNRGBA(8, 8, 3))
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if planes.Alpha != nil {
		t.Error("fully opaque image shouldn't carry an alpha plane")
	}
}
