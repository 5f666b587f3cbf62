package sim

import "math"

// Pos is a position in meters.
type Pos struct {
	X, Y, Z float64
}

// Add is a helper to add Pos.
func (p Pos) Add(p1 Pos) Pos {
	return Pos{X: p.X + p1.X, Y: p.Y + p1.Y, Z: p.Z + p1.Z}
}

// Sub returns the vector from p1 to p.
func (p Pos) Sub(p1 Pos) Pos {
	return Pos{X: p.X - p1.X, Y: p.Y - p1.Y, Z: p.Z - p1.Z}
}

// Scale multiplies all components.
func (p Pos) Scale(f float64) Pos {
	return Pos{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

// OffsetBy performs Add in-place.
func (p *Pos) OffsetBy(p1 Pos) *Pos {
	p.X += p1.X
	p.Y += p1.Y
	p.Z += p1.Z
	return p
}

// Norm is the length of the vector.
func (p Pos) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Pose is the antenna placement: a position and the boresight
// orientation in the horizontal plane.
type Pose struct {
	Pos
	Orientation Angle
}

// Angle is the common representation of angle, supporting multiple units.
type Angle float64

// AngleFromDegrees creates Angle from degrees.
func AngleFromDegrees(d float64) Angle {
	return Angle(normalizeRadians(d * math.Pi / 180.0))
}

// AngleFromRadians creates Angle from radians.
func AngleFromRadians(r float64) Angle {
	return Angle(normalizeRadians(r))
}

// Sub subtracts an Angle.
func (a Angle) Sub(a1 Angle) Angle {
	return Angle(normalizeRadians(float64(a) - float64(a1)))
}

// Degrees gets angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Q97 encodes the angle in degrees as signed Q9.7 fixed point.
func (a Angle) Q97() int16 {
	return int16(math.Round(a.Degrees() * 128))
}

func normalizeRadians(r float64) float64 {
	if r >= 2*math.Pi || r <= -2*math.Pi {
		r = math.Remainder(r, 2*math.Pi)
	}
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r < -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// Observe computes distance, azimuth and elevation of target as seen
// from the pose.
func (p Pose) Observe(target Pos) (dist float64, azimuth, elevation Angle) {
	v := target.Sub(p.Pos)
	dist = v.Norm()
	if dist == 0 {
		return 0, 0, 0
	}
	azimuth = AngleFromRadians(math.Atan2(v.Y, v.X)).Sub(p.Orientation)
	elevation = AngleFromRadians(math.Asin(v.Z / dist))
	return dist, azimuth, elevation
}
