package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"solarsystem/scene"
)

// viewMode selects how the camera is positioned each frame.
type viewMode int

const (
	viewFree viewMode = iota // fly camera under user control
	viewTop                  // fixed overhead view of the whole system
	viewBody                 // tracking a planet
)

type moveDirection int

const (
	moveForward moveDirection = iota
	moveBackward
	moveLeft
	moveRight
)

// FlyCamera is a first-person camera driven by keyboard and mouse. Yaw
// and pitch are in degrees; pitch is clamped so the view never flips
// over the poles.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32
	Sensitivity float32
	Zoom        float32
}

// NewFlyCamera creates a camera at the given position looking down -Z.
func NewFlyCamera(position mgl32.Vec3, speed, sensitivity float32) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90.0,
		Pitch:       0.0,
		Speed:       speed,
		Sensitivity: sensitivity,
		Zoom:        45.0,
	}
	c.updateVectors()
	return c
}

// Move translates the camera along its local axes.
func (c *FlyCamera) Move(dir moveDirection, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case moveForward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case moveBackward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case moveLeft:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case moveRight:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// Look rotates the camera by a mouse delta in screen pixels.
func (c *FlyCamera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}

	c.updateVectors()
}

// AdjustZoom narrows or widens the field of view from scroll input.
func (c *FlyCamera) AdjustZoom(offset float32) {
	c.Zoom -= offset
	if c.Zoom < 1.0 {
		c.Zoom = 1.0
	}
	if c.Zoom > 45.0 {
		c.Zoom = 45.0
	}
}

func (c *FlyCamera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// cameraPose is the resolved eye/target/up for one frame.
type cameraPose struct {
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3
	fov    float32
}

// computePose resolves the active view mode into a concrete camera pose.
// In free mode the fly camera is authoritative; the other modes derive
// the pose from the scene so they track moving bodies.
func computePose(mode viewMode, focus int, cam *FlyCamera, st *scene.State, topHeight, fov float32) cameraPose {
	switch mode {
	case viewTop:
		return cameraPose{
			eye:    mgl32.Vec3{0, topHeight, 0},
			target: mgl32.Vec3{},
			up:     mgl32.Vec3{0, 0, -1},
			fov:    fov,
		}
	case viewBody:
		body := st.Catalog.Planets[focus]
		pos := st.PlanetPosition(focus)
		return cameraPose{
			eye:    pos.Add(mgl32.Vec3{0, 1.2 * body.Scale, 3.5 * body.Scale}),
			target: pos,
			up:     mgl32.Vec3{0, 1, 0},
			fov:    fov,
		}
	default:
		return cameraPose{
			eye:    cam.Position,
			target: cam.Position.Add(cam.Front),
			up:     cam.Up,
			fov:    cam.Zoom,
		}
	}
}

// viewMatrix builds the view matrix for a pose.
func (p cameraPose) viewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.eye, p.target, p.up)
}
