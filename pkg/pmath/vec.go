package pmath

// 3D vectors and rotations, used to place the display quad in the
// observer's reference frame.

import(
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Use local types so we can hang methods off them
type Vec3 f64.Vec3
type Mat3 f64.Mat3

func (v Vec3)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", v[0], v[1], v[2])
}

func (v Vec3)Add(w Vec3) Vec3    { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }
func (v Vec3)Sub(w Vec3) Vec3    { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }
func (v Vec3)Scale(s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3)Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }
func (v Vec3)Norm() float64      { return math.Sqrt(v.Dot(v)) }

// AngleBetween returns the angle between two vectors, in radians. The
// dot product argument is clamped, so near-parallel vectors don't NaN
// out on rounding error.
func (v Vec3)AngleBetween(w Vec3) float64 {
	n := v.Norm() * w.Norm()
	if n == 0 {
		return 0
	}
	arg := v.Dot(w) / n
	if arg > 1.0 { arg = 1.0 }
	if arg < -1.0 { arg = -1.0 }
	return math.Acos(arg)
}

func (a Mat3)Mult(b Mat3) Mat3 {
	return Mat3{
		a[3*0+0]*b[3*0+0] + a[3*0+1]*b[3*1+0] + a[3*0+2]*b[3*2+0],
		a[3*0+0]*b[3*0+1] + a[3*0+1]*b[3*1+1] + a[3*0+2]*b[3*2+1],
		a[3*0+0]*b[3*0+2] + a[3*0+1]*b[3*1+2] + a[3*0+2]*b[3*2+2],

		a[3*1+0]*b[3*0+0] + a[3*1+1]*b[3*1+0] + a[3*1+2]*b[3*2+0],
		a[3*1+0]*b[3*0+1] + a[3*1+1]*b[3*1+1] + a[3*1+2]*b[3*2+1],
		a[3*1+0]*b[3*0+2] + a[3*1+1]*b[3*1+2] + a[3*1+2]*b[3*2+2],

		a[3*2+0]*b[3*0+0] + a[3*2+1]*b[3*1+0] + a[3*2+2]*b[3*2+0],
		a[3*2+0]*b[3*0+1] + a[3*2+1]*b[3*1+1] + a[3*2+2]*b[3*2+1],
		a[3*2+0]*b[3*0+2] + a[3*2+1]*b[3*1+2] + a[3*2+2]*b[3*2+2],
	}
}

func (m Mat3)Apply(v Vec3) Vec3 {
	return Vec3{
		(m[3*0+0]*v[0] + m[3*0+1]*v[1] + m[3*0+2]*v[2]),
		(m[3*1+0]*v[0] + m[3*1+1]*v[1] + m[3*1+2]*v[2]),
		(m[3*2+0]*v[0] + m[3*2+1]*v[1] + m[3*2+2]*v[2]),
	}
}

func (m Mat3)String() string {
	str := fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*0+0], m[3*0+1], m[3*0+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*1+0], m[3*1+1], m[3*1+2])
	str += fmt.Sprintf("[%10f, %10f, %10f]\n", m[3*2+0], m[3*2+1], m[3*2+2])
	return str
}

// RotateAboutX rotates counterclockwise about the x axis (right-handed).
func RotateAboutX(thetaRad float64) Mat3 {
	c, s := math.Cos(thetaRad), math.Sin(thetaRad)
	return Mat3{
		1, 0,  0,
		0, c, -s,
		0, s,  c,
	}
}

// RotateAboutZ rotates counterclockwise about the z axis (right-handed).
func RotateAboutZ(thetaRad float64) Mat3 {
	c, s := math.Cos(thetaRad), math.Sin(thetaRad)
	return Mat3{
		c, -s, 0,
		s,  c, 0,
		0,  0, 1,
	}
}

// SphericalToCartesian maps (radius, horizontal angle, vertical angle)
// to a point, where angle (0,0) lands on the +y axis - the straight-ahead
// viewing direction of an observer at the origin.
func SphericalToCartesian(r, hAngleRad, vAngleRad float64) Vec3 {
	return Vec3{
		r * math.Sin(hAngleRad) * math.Cos(vAngleRad),
		r * math.Cos(hAngleRad) * math.Cos(vAngleRad),
		r * math.Sin(vAngleRad),
	}
}
