package scene

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Body describes one object in the scene: where it orbits, how fast it
// moves, and what it looks like. Distances and scales are in scene units,
// rates in radians per second of simulation time. A negative spin rate
// means retrograde rotation.
type Body struct {
	Name      string  `yaml:"name"`
	Distance  float32 `yaml:"distance"`
	Scale     float32 `yaml:"scale"`
	OrbitRate float32 `yaml:"orbitRate"`
	SpinRate  float32 `yaml:"spinRate"`
	Phase     float32 `yaml:"phase"`
	Color     string  `yaml:"color"`
	Texture   string  `yaml:"texture"`
	Parent    string  `yaml:"parent,omitempty"`
	Facts     *Facts  `yaml:"facts,omitempty"`
}

// Facts holds the real-world figures shown in the overlay when a body
// is focused. Distance from the sun is in millions of kilometres,
// periods are in Earth days.
type Facts struct {
	RadiusKm          float64 `yaml:"radiusKm"`
	DistanceMillionKm float64 `yaml:"distanceMillionKm"`
	Moons             int     `yaml:"moons"`
	RotationDays      float64 `yaml:"rotationDays"`
	OrbitDays         float64 `yaml:"orbitDays"`
}

// Catalog is the full scene description: the central sun, the planets
// orbiting it, and a single moon parented to one of the planets.
type Catalog struct {
	Sun     Body   `yaml:"sun"`
	Planets []Body `yaml:"planets"`
	Moon    Body   `yaml:"moon"`
}

// DefaultCatalog returns the built-in nine-body scene. Display values
// (distances, scales, rates) are tuned for legibility, not to scale;
// the Facts blocks carry the real figures.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Sun: Body{
			Name:     "Sun",
			Scale:    3.0,
			SpinRate: 0.03,
			Color:    "#FDB813",
			Texture:  "sun",
		},
		Planets: []Body{
			{
				Name: "Mercury", Distance: 6.0, Scale: 0.25,
				OrbitRate: 0.48, SpinRate: 0.10, Phase: 0.0,
				Color: "#B5B5B5", Texture: "mercury",
				Facts: &Facts{RadiusKm: 2439.7, DistanceMillionKm: 57.9, Moons: 0, RotationDays: 58.65, OrbitDays: 87.97},
			},
			{
				Name: "Venus", Distance: 8.0, Scale: 0.42,
				OrbitRate: 0.35, SpinRate: -0.05, Phase: 0.8,
				Color: "#E8CDA2", Texture: "venus",
				Facts: &Facts{RadiusKm: 6051.8, DistanceMillionKm: 108.2, Moons: 0, RotationDays: -243.02, OrbitDays: 224.70},
			},
			{
				Name: "Earth", Distance: 10.5, Scale: 0.45,
				OrbitRate: 0.30, SpinRate: 0.90, Phase: 1.6,
				Color: "#2E86AB", Texture: "earth",
				Facts: &Facts{RadiusKm: 6371.0, DistanceMillionKm: 149.6, Moons: 1, RotationDays: 1.00, OrbitDays: 365.25},
			},
			{
				Name: "Mars", Distance: 13.0, Scale: 0.32,
				OrbitRate: 0.24, SpinRate: 0.85, Phase: 2.4,
				Color: "#C1440E", Texture: "mars",
				Facts: &Facts{RadiusKm: 3389.5, DistanceMillionKm: 227.9, Moons: 2, RotationDays: 1.03, OrbitDays: 686.97},
			},
			{
				Name: "Jupiter", Distance: 17.0, Scale: 1.30,
				OrbitRate: 0.13, SpinRate: 2.00, Phase: 3.2,
				Color: "#C88B3A", Texture: "jupiter",
				Facts: &Facts{RadiusKm: 69911, DistanceMillionKm: 778.6, Moons: 95, RotationDays: 0.41, OrbitDays: 4332.59},
			},
			{
				Name: "Saturn", Distance: 21.0, Scale: 1.10,
				OrbitRate: 0.096, SpinRate: 1.90, Phase: 4.0,
				Color: "#E4D191", Texture: "saturn",
				Facts: &Facts{RadiusKm: 58232, DistanceMillionKm: 1433.5, Moons: 146, RotationDays: 0.44, OrbitDays: 10759.22},
			},
			{
				Name: "Uranus", Distance: 25.0, Scale: 0.80,
				OrbitRate: 0.068, SpinRate: -1.20, Phase: 4.8,
				Color: "#7DE8E8", Texture: "uranus",
				Facts: &Facts{RadiusKm: 25362, DistanceMillionKm: 2872.5, Moons: 27, RotationDays: -0.72, OrbitDays: 30688.5},
			},
			{
				Name: "Neptune", Distance: 28.5, Scale: 0.78,
				OrbitRate: 0.054, SpinRate: 1.30, Phase: 5.6,
				Color: "#3F54BA", Texture: "neptune",
				Facts: &Facts{RadiusKm: 24622, DistanceMillionKm: 4495.1, Moons: 16, RotationDays: 0.67, OrbitDays: 60182},
			},
		},
		Moon: Body{
			Name: "Moon", Distance: 1.1, Scale: 0.12,
			OrbitRate: 1.40, SpinRate: 1.40, Phase: 0.0,
			Color: "#9A9A9A", Texture: "moon",
			Parent: "Earth",
		},
	}
}

// LoadCatalog reads a complete scene description from a YAML file. The
// file replaces the default catalog entirely, so it must describe the
// whole scene and pass validation.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %v", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %v", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %v", path, err)
	}

	return &c, nil
}

// Validate checks the catalog for values the renderer cannot work with.
func (c *Catalog) Validate() error {
	if c.Sun.Name == "" {
		return fmt.Errorf("sun has no name")
	}
	if c.Sun.Scale <= 0 {
		return fmt.Errorf("sun scale must be positive, got %g", c.Sun.Scale)
	}
	if err := validateColor(c.Sun); err != nil {
		return err
	}

	if len(c.Planets) == 0 {
		return fmt.Errorf("catalog has no planets")
	}
	seen := make(map[string]bool)
	for i, p := range c.Planets {
		if p.Name == "" {
			return fmt.Errorf("planet %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate planet name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Distance <= 0 {
			return fmt.Errorf("planet %s: distance must be positive, got %g", p.Name, p.Distance)
		}
		if p.Scale <= 0 {
			return fmt.Errorf("planet %s: scale must be positive, got %g", p.Name, p.Scale)
		}
		if err := validateColor(p); err != nil {
			return err
		}
	}

	if c.Moon.Name != "" {
		if c.Moon.Parent == "" {
			return fmt.Errorf("moon %s has no parent planet", c.Moon.Name)
		}
		if _, ok := c.PlanetIndex(c.Moon.Parent); !ok {
			return fmt.Errorf("moon %s: parent %q is not a planet in this catalog", c.Moon.Name, c.Moon.Parent)
		}
		if c.Moon.Distance <= 0 {
			return fmt.Errorf("moon %s: distance must be positive, got %g", c.Moon.Name, c.Moon.Distance)
		}
		if c.Moon.Scale <= 0 {
			return fmt.Errorf("moon %s: scale must be positive, got %g", c.Moon.Name, c.Moon.Scale)
		}
		if err := validateColor(c.Moon); err != nil {
			return err
		}
	}

	return nil
}

func validateColor(b Body) error {
	if b.Color == "" {
		return nil
	}
	if _, err := colorful.Hex(b.Color); err != nil {
		return fmt.Errorf("body %s: bad color %q: %v", b.Name, b.Color, err)
	}
	return nil
}

// PlanetIndex returns the index of the named planet.
func (c *Catalog) PlanetIndex(name string) (int, bool) {
	for i, p := range c.Planets {
		if p.Name == name {
			return i, true
		}
	}
	return 0, false
}

// HasMoon reports whether the catalog describes a moon.
func (c *Catalog) HasMoon() bool {
	return c.Moon.Name != ""
}

// MaxOrbitRadius returns the largest orbit distance in the scene, used
// to frame the top-down camera.
func (c *Catalog) MaxOrbitRadius() float32 {
	var max float32
	for _, p := range c.Planets {
		if p.Distance > max {
			max = p.Distance
		}
	}
	return max
}
