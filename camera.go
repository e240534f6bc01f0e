package charts3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultYaw         = 30.0
	DefaultPitch       = 20.0
	DefaultDistance    = 2.5
	DefaultFieldOfView = 45.0

	MaxPitch    = 89.0
	MinDistance = 1.0
	MaxDistance = 50.0

	minFieldOfView = 1.0
	maxFieldOfView = 179.0
)

// halfDiagonal is the radius of the sphere enclosing the unit cube.
var halfDiagonal = math.Sqrt(3) / 2

// Camera is an orbit camera looking at the center of the unit cube. Angles are in
// degrees. A Camera must be created with NewCamera.
type Camera struct {
	yaw      float64
	pitch    float64
	distance float64
	fov      float64

	viewport Rect
	rot      mgl64.Mat3
	focal    float64
}

func NewCamera() Camera {
	c := Camera{
		yaw:      DefaultYaw,
		pitch:    DefaultPitch,
		distance: DefaultDistance,
		fov:      DefaultFieldOfView,
	}
	c.update()
	return c
}

func (c Camera) Yaw() float64 {
	return c.yaw
}

func (c Camera) Pitch() float64 {
	return c.pitch
}

func (c Camera) Distance() float64 {
	return c.distance
}

func (c Camera) FieldOfView() float64 {
	return c.fov
}

func (c Camera) Viewport() Rect {
	return c.viewport
}

func (c *Camera) SetYaw(yaw float64) {
	c.yaw = wrapAngle(yaw)
	c.update()
}

func (c *Camera) SetPitch(pitch float64) {
	c.pitch = mgl64.Clamp(pitch, -MaxPitch, MaxPitch)
	c.update()
}

func (c *Camera) SetAngle(yaw, pitch float64) {
	c.yaw = wrapAngle(yaw)
	c.pitch = mgl64.Clamp(pitch, -MaxPitch, MaxPitch)
	c.update()
}

func (c *Camera) SetDistance(dist float64) {
	c.distance = mgl64.Clamp(dist, MinDistance, MaxDistance)
}

func (c *Camera) SetFieldOfView(fov float64) {
	c.fov = mgl64.Clamp(fov, minFieldOfView, maxFieldOfView)
	c.update()
}

func (c *Camera) SetViewport(r Rect) {
	c.viewport = r
}

// Rotate orbits the camera. Yaw wraps into [0, 360), pitch stops short of the poles.
func (c *Camera) Rotate(dyaw, dpitch float64) {
	c.SetAngle(c.yaw+dyaw, c.pitch+dpitch)
}

func (c *Camera) Zoom(delta float64) {
	c.SetDistance(c.distance + delta)
}

// Project maps a point of the unit cube to the viewport. The returned depth grows
// with the distance to the camera and is only meant for ordering.
func (c Camera) Project(x, y, z float64) (Pos, float64) {
	var (
		v     = c.transform(x, y, z)
		depth = c.distance + v.Z()
		half  = math.Min(c.viewport.W, c.viewport.H) / 2
		mid   = c.viewport.Center()
	)
	if depth < mgl64.Epsilon {
		depth = mgl64.Epsilon
	}
	scale := c.focal / depth * half
	return NewPos(mid.X+v.X()*scale, mid.Y-v.Y()*scale), depth
}

func (c Camera) Depth(x, y, z float64) float64 {
	return c.distance + c.transform(x, y, z).Z()
}

// DepthBounds returns the depth of the nearest and farthest points of the sphere
// enclosing the unit cube.
func (c Camera) DepthBounds() Range {
	return NewRange(c.distance-halfDiagonal, c.distance+halfDiagonal)
}

func (c Camera) transform(x, y, z float64) mgl64.Vec3 {
	return c.rot.Mul3x1(mgl64.Vec3{x - 0.5, y - 0.5, z - 0.5})
}

func (c *Camera) update() {
	var (
		yaw   = mgl64.Rotate3DY(-mgl64.DegToRad(c.yaw))
		pitch = mgl64.Rotate3DX(-mgl64.DegToRad(c.pitch))
	)
	c.rot = pitch.Mul3(yaw)
	c.focal = 1 / math.Tan(mgl64.DegToRad(c.fov)/2)
}

func wrapAngle(angle float64) float64 {
	angle = math.Mod(angle, fullcircle)
	if angle < 0 {
		angle += fullcircle
	}
	return angle
}

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)
