package viewer

import (
	"math"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/gocube_viewer"
)

// CameraDistance is how far every camera preset sits from the cube center.
const CameraDistance = 4.0

// OrbitStep is the yaw or pitch change of one arrow key press.
const OrbitStep = math.Pi / 12

// Camera orbits the cube at a fixed distance. Yaw 0, pitch 0 looks at the
// front face from +X; positive pitch moves toward the top.
type Camera struct {
	Yaw   float64
	Pitch float64
}

// Preset is a named camera position.
type Preset struct {
	Name   string
	Camera Camera
}

// Presets are bound to keys 1 through 6, in order.
var Presets = []Preset{
	{"top", Camera{Pitch: math.Pi / 2}},
	{"bottom", Camera{Pitch: -math.Pi / 2}},
	{"front", Camera{}},
	{"back", Camera{Yaw: math.Pi}},
	{"left", Camera{Yaw: -math.Pi / 2}},
	{"right", Camera{Yaw: math.Pi / 2}},
}

// PresetCamera returns the camera of a named preset.
func PresetCamera(name string) (Camera, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p.Camera, true
		}
	}
	return Camera{}, false
}

// Orbit turns the camera by yaw and pitch steps. Pitch stops at the poles.
func (c Camera) Orbit(dYaw, dPitch float64) Camera {
	c.Yaw = math.Remainder(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, c.Pitch+dPitch))
	return c
}

// Position returns the camera position in world coordinates.
func (c Camera) Position() quaternion.Vec3 {
	pitch := quaternion.FromAxisAngle(quaternion.Vec3{Z: 1}, c.Pitch)
	yaw := quaternion.FromAxisAngle(quaternion.Vec3{Y: 1}, c.Yaw)
	return quaternion.Prod(yaw, pitch).RotateVec3(quaternion.Vec3{X: CameraDistance})
}

// NearestFace returns the face whose outward axis points most directly at
// the camera.
func (c Camera) NearestFace() gocube.Face {
	p := c.Position()
	best, bestDot := gocube.FaceU, math.Inf(-1)
	for _, f := range gocube.Faces {
		if d := p.Dot(toVec(f.Axis())); d > bestDot {
			best, bestDot = f, d
		}
	}
	return best
}

// Name returns the preset name when the camera sits on a preset, else
// "orbit".
func (c Camera) Name() string {
	for _, p := range Presets {
		if math.Abs(math.Remainder(c.Yaw-p.Camera.Yaw, 2*math.Pi)) < 1e-9 && math.Abs(c.Pitch-p.Camera.Pitch) < 1e-9 {
			return p.Name
		}
		// Yaw is irrelevant at the poles.
		if math.Abs(p.Camera.Pitch) == math.Pi/2 && c.Pitch == p.Camera.Pitch {
			return p.Name
		}
	}
	return "orbit"
}
