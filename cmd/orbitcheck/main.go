package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"solarsystem/scene"
)

// orbitcheck prints body positions at chosen simulation times so orbit
// math can be inspected without opening a window.
func main() {
	var (
		catalogPath = flag.String("catalog", "", "Scene catalog file (default: built-in scene)")
		start       = flag.Float64("t", 0, "Simulation time in seconds")
		steps       = flag.Int("steps", 1, "Number of snapshots to print")
		dt          = flag.Float64("dt", 1.0, "Time between snapshots")
	)
	flag.Parse()

	catalog := scene.DefaultCatalog()
	if *catalogPath != "" {
		var err error
		catalog, err = scene.LoadCatalog(*catalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	fmt.Println("=== Orbit Check ===")
	fmt.Println()

	st := scene.NewState(catalog)

	for step := 0; step < *steps; step++ {
		tm := *start + float64(step)*(*dt)
		st.SetTime(tm)

		fmt.Printf("t = %.2fs\n", tm)
		fmt.Printf("  %-10s %10s %10s %10s %9s\n", "body", "x", "y", "z", "deg")

		for i, p := range catalog.Planets {
			pos := st.PlanetPosition(i)
			deg := float64(p.OrbitAngle(tm)) * 180 / math.Pi
			fmt.Printf("  %-10s %10.3f %10.3f %10.3f %9.2f\n", p.Name, pos.X(), pos.Y(), pos.Z(), deg)

			radius := math.Sqrt(float64(pos.X()*pos.X() + pos.Z()*pos.Z()))
			if math.Abs(radius-float64(p.Distance)) > 1e-3 {
				fmt.Printf("    WARNING: orbit radius %.4f deviates from distance %.4f\n", radius, p.Distance)
			}
		}

		if catalog.HasMoon() {
			pos := st.MoonPosition()
			parent := st.PlanetPosition(st.MoonParent())
			sep := pos.Sub(parent).Len()
			fmt.Printf("  %-10s %10.3f %10.3f %10.3f\n", catalog.Moon.Name, pos.X(), pos.Y(), pos.Z())
			fmt.Printf("  %s orbits %s at %.4f (catalog says %.4f)\n",
				catalog.Moon.Name, catalog.Moon.Parent, sep, catalog.Moon.Distance)
			if math.Abs(float64(sep-catalog.Moon.Distance)) > 1e-3 {
				fmt.Println("    WARNING: moon separation deviates from catalog distance")
			}
		}

		fmt.Println()
	}
}
