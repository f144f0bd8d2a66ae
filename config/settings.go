package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	Window WindowSettings `yaml:"window"`
	Camera CameraSettings `yaml:"camera"`
	Scene  SceneSettings  `yaml:"scene"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraSettings struct {
	FOV         float32 `yaml:"fov"`
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
}

type SceneSettings struct {
	AssetDir  string  `yaml:"assetDir"`
	TimeScale float64 `yaml:"timeScale"`
}

// Defaults returns the settings used when no settings file exists.
func Defaults() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "Solar System",
			VSync:  true,
		},
		Camera: CameraSettings{
			FOV:         45.0,
			Speed:       12.0,
			Sensitivity: 0.1,
		},
		Scene: SceneSettings{
			AssetDir:  "assets",
			TimeScale: 1.0,
		},
	}
}

// Load reads settings from a YAML file, falling back to defaults when
// the file does not exist. Fields absent from the file keep their
// default values.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return s, nil
		}
		return s, err
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("error parsing %s: %v", path, err)
	}

	if err := s.validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %v", path, err)
	}

	fmt.Printf("Loaded settings: %dx%d, fov %.0f\n", s.Window.Width, s.Window.Height, s.Camera.FOV)

	return s, nil
}

func (s Settings) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("fov must be in (0, 180), got %g", s.Camera.FOV)
	}
	if s.Scene.TimeScale <= 0 {
		return fmt.Errorf("time scale must be positive, got %g", s.Scene.TimeScale)
	}
	return nil
}
