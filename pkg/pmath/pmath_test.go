package pmath

import(
	"math"
	"testing"
)

func TestFloatGridBasics(t *testing.T) {
	g := NewFloatGrid(4, 3)
	if g.Dx() != 4 || g.Dy() != 3 {
		t.Fatalf("dims %dx%d, want 4x3", g.Dx(), g.Dy())
	}

	g.Set(2, 1, 7.5)
	if v := g.Get(2, 1); v != 7.5 {
		t.Errorf("got %f, want 7.5", v)
	}

	g2 := g.Copy()
	g2.Set(2, 1, -1)
	if g.Get(2, 1) != 7.5 {
		t.Error("Copy aliases the original's values")
	}

	g.Fill(2.0)
	g.Set(0, 0, -3)
	min, max := g.MinMax()
	if min != -3 || max != 2 {
		t.Errorf("minmax (%f,%f), want (-3,2)", min, max)
	}
}

func TestReflectIndex(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{0, 5, 0}, {4, 5, 4},
		{5, 5, 3}, {6, 5, 2}, {8, 5, 0}, {9, 5, 1},
		{-1, 5, 1}, {-2, 5, 2},
		{3, 1, 0},
	}
	for _, tc := range cases {
		if got := ReflectIndex(tc.i, tc.n); got != tc.want {
			t.Errorf("ReflectIndex(%d,%d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {300, 512}, {512, 512},
	}
	for _, tc := range cases {
		if got := NextPow2(tc.n); got != tc.want {
			t.Errorf("NextPow2(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	cases := []struct {
		v, w Vec3
		want float64 // degrees
	}{
		{Vec3{1, 0, 0}, Vec3{1, 1, 0}, 45},
		{Vec3{1, 1, 0}, Vec3{-1, 1, 0}, 90},
		{Vec3{0, 1, 0}, Vec3{0, 1, 1}, 45},
		{Vec3{0, 4, 0}, Vec3{0, 5, 0}, 0},
	}
	for _, tc := range cases {
		if got := Degrees(tc.v.AngleBetween(tc.w)); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("angle %s %s = %f deg, want %f", tc.v, tc.w, got, tc.want)
		}
	}
}

func TestSphericalToCartesian(t *testing.T) {
	// Angle (0,0) is straight ahead down +y.
	v := SphericalToCartesian(2, 0, 0)
	if math.Abs(v[0]) > 1e-12 || math.Abs(v[1]-2) > 1e-12 || math.Abs(v[2]) > 1e-12 {
		t.Errorf("straight ahead: got %s", v)
	}

	// Positive horizontal angle swings toward +x, positive vertical toward +z.
	v = SphericalToCartesian(1, Radians(90), 0)
	if math.Abs(v[0]-1) > 1e-12 {
		t.Errorf("h=90: got %s", v)
	}
	v = SphericalToCartesian(1, 0, Radians(90))
	if math.Abs(v[2]-1) > 1e-12 {
		t.Errorf("v=90: got %s", v)
	}
}

func TestRotations(t *testing.T) {
	// Rotating +y by 90 about z lands on -x (counterclockwise seen from +z).
	v := RotateAboutZ(Radians(90)).Apply(Vec3{0, 1, 0})
	if math.Abs(v[0]+1) > 1e-12 || math.Abs(v[1]) > 1e-12 {
		t.Errorf("Rz(90) +y: got %s", v)
	}

	// Rotating +y by 90 about x lands on +z.
	v = RotateAboutX(Radians(90)).Apply(Vec3{0, 1, 0})
	if math.Abs(v[2]-1) > 1e-12 || math.Abs(v[1]) > 1e-12 {
		t.Errorf("Rx(90) +y: got %s", v)
	}
}
