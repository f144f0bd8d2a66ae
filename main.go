package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"solarsystem/config"
	"solarsystem/scene"
)

func main() {
	runtime.LockOSThread()

	// Parse command line flags
	var (
		settingsPath = flag.String("settings", "settings.yaml", "Settings file")
		catalogPath  = flag.String("catalog", "", "Scene catalog file (default: catalog.yaml in the asset dir)")
		width        = flag.Int("width", 0, "Window width override")
		height       = flag.Int("height", 0, "Window height override")
		speed        = flag.Float64("speed", 0, "Initial time scale override")
		watch        = flag.Bool("watch", false, "Reload shaders when their files change")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *width > 0 {
		settings.Window.Width = *width
	}
	if *height > 0 {
		settings.Window.Height = *height
	}
	if *speed > 0 {
		settings.Scene.TimeScale = *speed
	}

	catalog, err := loadSceneCatalog(*catalogPath, settings.Scene.AssetDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	fmt.Println("=== Solar System ===")
	fmt.Printf("Window: %dx%d\n", settings.Window.Width, settings.Window.Height)
	fmt.Printf("Bodies: %d planets around %s\n", len(catalog.Planets), catalog.Sun.Name)
	fmt.Printf("Time scale: x%g\n", settings.Scene.TimeScale)

	st := scene.NewState(catalog)

	renderer, err := NewRenderer(settings, catalog, st, *watch)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()

	lastTime := time.Now()
	frameCount := 0
	lastFPSTime := time.Now()

	fmt.Println("\nControls:")
	fmt.Println("  WASD + mouse: Fly camera (free mode)")
	fmt.Println("  Scroll: Zoom in/out")
	fmt.Println("  1-8: Track a planet")
	fmt.Println("  9: Top-down view, 0: Free camera")
	fmt.Println("  Space: Pause, [ / ]: Slower/faster, R: Reset time")
	fmt.Println("  ESC: Exit")
	fmt.Println("\nStarting...")

	// Main loop
	for !renderer.ShouldClose() {
		renderer.PollEvents()

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		renderer.processInput(dt)
		st.Advance(dt * renderer.timeRate())

		renderer.Render()

		// FPS counter
		frameCount++
		if now.Sub(lastFPSTime).Seconds() >= 1.0 {
			fps := float64(frameCount) / now.Sub(lastFPSTime).Seconds()
			renderer.setFPS(fps)
			fmt.Printf("\rFPS: %.1f | Sim time: %.1fs", fps, st.Time)
			frameCount = 0
			lastFPSTime = now
		}
	}

	fmt.Println("\nShutting down...")
}

// loadSceneCatalog picks the explicit catalog file, the one shipped in
// the asset directory, or the built-in default, in that order.
func loadSceneCatalog(path, assetDir string) (*scene.Catalog, error) {
	if path != "" {
		return scene.LoadCatalog(path)
	}

	shipped := filepath.Join(assetDir, "catalog.yaml")
	if _, err := os.Stat(shipped); err == nil {
		return scene.LoadCatalog(shipped)
	}

	fmt.Println("No catalog file found, using built-in scene")
	return scene.DefaultCatalog(), nil
}
