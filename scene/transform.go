package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BodyTransform builds the model matrix for an orbiting body. The
// composition is translate to the orbit center, rotate by the orbital
// angle about Y, translate out along X by the orbit distance, rotate by
// the spin angle about Y, then scale. Because spin and scale come after
// the radial translation, they never move the body's world position.
func BodyTransform(center mgl32.Vec3, distance, orbitAngle, spinAngle, scale float32) mgl32.Mat4 {
	m := mgl32.Translate3D(center.X(), center.Y(), center.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(orbitAngle))
	m = m.Mul4(mgl32.Translate3D(distance, 0, 0))
	m = m.Mul4(mgl32.HomogRotate3DY(spinAngle))
	m = m.Mul4(mgl32.Scale3D(scale, scale, scale))
	return m
}

// RingTransform builds the model matrix that places a unit orbit ring
// at the given center with the given radius.
func RingTransform(center mgl32.Vec3, radius float32) mgl32.Mat4 {
	return mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(radius, radius, radius))
}

// TransformPosition extracts the world position from a model matrix.
func TransformPosition(m mgl32.Mat4) mgl32.Vec3 {
	c := m.Col(3)
	return mgl32.Vec3{c.X(), c.Y(), c.Z()}
}

// OrbitAngle returns the body's orbital angle at simulation time t,
// wrapped into [0, 2pi). The wrap keeps float32 precision stable when
// the simulation has been running for a long time.
func (b Body) OrbitAngle(t float64) float32 {
	return wrapAngle(float64(b.OrbitRate)*t + float64(b.Phase))
}

// SpinAngle returns the body's rotation about its own axis at time t,
// wrapped into [0, 2pi).
func (b Body) SpinAngle(t float64) float32 {
	return wrapAngle(float64(b.SpinRate) * t)
}

func wrapAngle(a float64) float32 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return float32(a)
}

// State holds the simulation clock and the per-frame model matrices for
// every body in the catalog. Matrices are recomputed in catalog order,
// sun first, so the moon always orbits its parent's position from the
// same frame.
type State struct {
	Catalog *Catalog
	Time    float64

	SunModel     mgl32.Mat4
	PlanetModels []mgl32.Mat4
	MoonModel    mgl32.Mat4

	moonParent int
}

// NewState builds the frame state for a catalog at time zero. The
// catalog must already be validated.
func NewState(c *Catalog) *State {
	s := &State{
		Catalog:      c,
		PlanetModels: make([]mgl32.Mat4, len(c.Planets)),
		moonParent:   -1,
	}
	if c.HasMoon() {
		if i, ok := c.PlanetIndex(c.Moon.Parent); ok {
			s.moonParent = i
		}
	}
	s.recompute()
	return s
}

// Advance moves the simulation clock forward by dt seconds and
// recomputes every model matrix. Negative dt rewinds.
func (s *State) Advance(dt float64) {
	s.Time += dt
	s.recompute()
}

// SetTime jumps the simulation clock to an absolute time.
func (s *State) SetTime(t float64) {
	s.Time = t
	s.recompute()
}

func (s *State) recompute() {
	origin := mgl32.Vec3{}
	sun := s.Catalog.Sun
	s.SunModel = BodyTransform(origin, 0, 0, sun.SpinAngle(s.Time), sun.Scale)

	for i, p := range s.Catalog.Planets {
		s.PlanetModels[i] = BodyTransform(origin, p.Distance, p.OrbitAngle(s.Time), p.SpinAngle(s.Time), p.Scale)
	}

	if s.moonParent >= 0 {
		m := s.Catalog.Moon
		parent := s.PlanetPosition(s.moonParent)
		s.MoonModel = BodyTransform(parent, m.Distance, m.OrbitAngle(s.Time), m.SpinAngle(s.Time), m.Scale)
	}
}

// PlanetPosition returns the world position of the i-th planet this
// frame.
func (s *State) PlanetPosition(i int) mgl32.Vec3 {
	return TransformPosition(s.PlanetModels[i])
}

// MoonPosition returns the world position of the moon this frame. Only
// meaningful when the catalog has a moon.
func (s *State) MoonPosition() mgl32.Vec3 {
	return TransformPosition(s.MoonModel)
}

// MoonParent returns the index of the planet the moon orbits, or -1
// when the catalog has no moon.
func (s *State) MoonParent() int {
	return s.moonParent
}
