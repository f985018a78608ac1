package game

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns the zero vector unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// HandFrame is one hand's kinematic state for the current tick.
// The tracker derives Velocity from position deltas, so a hand that
// just reappeared carries zero velocity.
type HandFrame struct {
	Position Vec3
	Velocity Vec3
	Present  bool
}

func (f HandFrame) Speed() float64 {
	return f.Velocity.Length()
}

// Hands is the perception sample consumed once at tick start.
type Hands struct {
	Left, Right HandFrame
}

func (h Hands) For(hand Hand) HandFrame {
	if hand == HandLeft {
		return h.Left
	}
	return h.Right
}

// AnyPresent reports whether the tracker sees at least one hand.
func (h Hands) AnyPresent() bool {
	return h.Left.Present || h.Right.Present
}
