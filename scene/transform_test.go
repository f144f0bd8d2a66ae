package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestBodyTransformPositions checks that the orbit composition places
// bodies where the geometry says they should be.
func TestBodyTransformPositions(t *testing.T) {
	tests := []struct {
		name       string
		center     mgl32.Vec3
		distance   float32
		orbitAngle float32
		wantX      float32
		wantY      float32
		wantZ      float32
		epsilon    float32
	}{
		{
			name:       "AngleZeroAlongX",
			center:     mgl32.Vec3{},
			distance:   10.0,
			orbitAngle: 0,
			wantX:      10.0,
			wantY:      0,
			wantZ:      0,
			epsilon:    1e-4,
		},
		{
			name:       "QuarterTurnTowardNegativeZ",
			center:     mgl32.Vec3{},
			distance:   10.0,
			orbitAngle: math.Pi / 2,
			wantX:      0,
			wantY:      0,
			wantZ:      -10.0,
			epsilon:    1e-4,
		},
		{
			name:       "HalfTurnAlongNegativeX",
			center:     mgl32.Vec3{},
			distance:   10.0,
			orbitAngle: math.Pi,
			wantX:      -10.0,
			wantY:      0,
			wantZ:      0,
			epsilon:    1e-4,
		},
		{
			name:       "ThreeQuarterTurnTowardPositiveZ",
			center:     mgl32.Vec3{},
			distance:   10.0,
			orbitAngle: 3 * math.Pi / 2,
			wantX:      0,
			wantY:      0,
			wantZ:      10.0,
			epsilon:    1e-4,
		},
		{
			name:       "OffsetCenterShiftsOrbit",
			center:     mgl32.Vec3{5, 1, -2},
			distance:   2.0,
			orbitAngle: math.Pi / 2,
			wantX:      5,
			wantY:      1,
			wantZ:      -4,
			epsilon:    1e-4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := BodyTransform(tc.center, tc.distance, tc.orbitAngle, 0.7, 1.3)
			pos := TransformPosition(m)

			if abs32(pos.X()-tc.wantX) > tc.epsilon {
				t.Errorf("X coordinate: got %f, want %f", pos.X(), tc.wantX)
			}
			if abs32(pos.Y()-tc.wantY) > tc.epsilon {
				t.Errorf("Y coordinate: got %f, want %f", pos.Y(), tc.wantY)
			}
			if abs32(pos.Z()-tc.wantZ) > tc.epsilon {
				t.Errorf("Z coordinate: got %f, want %f", pos.Z(), tc.wantZ)
			}
		})
	}
}

// TestPositionIgnoresSpinAndScale pins down the invariant that a body's
// world position depends only on the orbit, never on its own rotation
// or size.
func TestPositionIgnoresSpinAndScale(t *testing.T) {
	center := mgl32.Vec3{1, 0, 3}
	base := TransformPosition(BodyTransform(center, 7.5, 1.1, 0, 1))

	spins := []float32{0.5, math.Pi, 5.9}
	scales := []float32{0.1, 1.0, 42.0}

	for _, spin := range spins {
		for _, scale := range scales {
			pos := TransformPosition(BodyTransform(center, 7.5, 1.1, spin, scale))
			if pos.Sub(base).Len() > 1e-4 {
				t.Errorf("spin=%f scale=%f moved body: got %v, want %v", spin, scale, pos, base)
			}
		}
	}
}

func TestOrbitAngleWrap(t *testing.T) {
	tests := []struct {
		name    string
		body    Body
		at      float64
		want    float32
		epsilon float32
	}{
		{
			name:    "StartsAtPhase",
			body:    Body{OrbitRate: 0.5, Phase: 1.25},
			at:      0,
			want:    1.25,
			epsilon: 1e-5,
		},
		{
			name:    "QuarterTurn",
			body:    Body{OrbitRate: math.Pi / 2},
			at:      1.0,
			want:    math.Pi / 2,
			epsilon: 1e-5,
		},
		{
			name:    "WrapsPastFullTurn",
			body:    Body{OrbitRate: math.Pi},
			at:      2.5,
			want:    math.Pi / 2,
			epsilon: 1e-5,
		},
		{
			name:    "NegativeRateWrapsPositive",
			body:    Body{OrbitRate: -math.Pi / 2},
			at:      1.0,
			want:    3 * math.Pi / 2,
			epsilon: 1e-5,
		},
		{
			// The oracle starts from the float32-rounded rate, the
			// same quantity OrbitAngle sees.
			name:    "LongRunStaysPrecise",
			body:    Body{OrbitRate: 0.3},
			at:      1e6,
			want:    float32(math.Mod(float64(float32(0.3))*1e6, 2*math.Pi)),
			epsilon: 1e-3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.body.OrbitAngle(tc.at)
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("angle %f outside [0, 2pi)", got)
			}
			if abs32(got-tc.want) > tc.epsilon {
				t.Errorf("orbit angle: got %f, want %f", got, tc.want)
			}
		})
	}
}

// TestMoonTracksParent checks that the moon keeps its orbit distance
// from its parent planet no matter where the parent has moved to.
func TestMoonTracksParent(t *testing.T) {
	c := DefaultCatalog()
	s := NewState(c)

	earth, ok := c.PlanetIndex("Earth")
	if !ok {
		t.Fatal("default catalog has no Earth")
	}
	if s.MoonParent() != earth {
		t.Fatalf("moon parent: got %d, want %d", s.MoonParent(), earth)
	}

	for _, tm := range []float64{0, 1.5, 17.25, 400, 12345.6} {
		s.SetTime(tm)
		sep := s.MoonPosition().Sub(s.PlanetPosition(earth)).Len()
		if abs32(sep-c.Moon.Distance) > 1e-3 {
			t.Errorf("t=%f: moon separation got %f, want %f", tm, sep, c.Moon.Distance)
		}
	}
}

func TestSunStaysAtOrigin(t *testing.T) {
	s := NewState(DefaultCatalog())
	for _, tm := range []float64{0, 33.3, 9999} {
		s.SetTime(tm)
		pos := TransformPosition(s.SunModel)
		if pos.Len() > 1e-4 {
			t.Errorf("t=%f: sun drifted to %v", tm, pos)
		}
	}
}

func TestStateClock(t *testing.T) {
	s := NewState(DefaultCatalog())

	s.Advance(0.5)
	s.Advance(0.25)
	if math.Abs(s.Time-0.75) > 1e-9 {
		t.Errorf("time after advances: got %f, want 0.75", s.Time)
	}

	s.Advance(-0.75)
	if math.Abs(s.Time) > 1e-9 {
		t.Errorf("time after rewind: got %f, want 0", s.Time)
	}

	s.SetTime(100)
	if s.Time != 100 {
		t.Errorf("time after SetTime: got %f, want 100", s.Time)
	}

	// The matrices must follow the clock, not just the scalar.
	want := TransformPosition(BodyTransform(mgl32.Vec3{},
		s.Catalog.Planets[0].Distance, s.Catalog.Planets[0].OrbitAngle(100), 0, 1))
	got := s.PlanetPosition(0)
	if got.Sub(want).Len() > 1e-3 {
		t.Errorf("planet 0 at t=100: got %v, want %v", got, want)
	}
}

func TestRingTransform(t *testing.T) {
	center := mgl32.Vec3{2, 0, -1}
	m := RingTransform(center, 4)

	// A point on the unit circle should land on the scaled circle
	// around the center.
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{6, 0, -1}
	if p.Sub(want).Len() > 1e-4 {
		t.Errorf("ring point: got %v, want %v", p, want)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
