package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	d := Defaults()
	if s != d {
		t.Errorf("missing file: got %+v, want defaults %+v", s, d)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := `window:
  width: 1920
  height: 1080
camera:
  fov: 60
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Window.Width != 1920 || s.Window.Height != 1080 {
		t.Errorf("window size: got %dx%d, want 1920x1080", s.Window.Width, s.Window.Height)
	}
	if s.Camera.FOV != 60 {
		t.Errorf("fov: got %f, want 60", s.Camera.FOV)
	}

	// Fields not present in the file keep their defaults.
	if s.Camera.Speed != Defaults().Camera.Speed {
		t.Errorf("speed: got %f, want default %f", s.Camera.Speed, Defaults().Camera.Speed)
	}
	if s.Scene.AssetDir != "assets" {
		t.Errorf("asset dir: got %q, want assets", s.Scene.AssetDir)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "MalformedYAML",
			data:    "window: [not a map",
			wantErr: "error parsing",
		},
		{
			name:    "ZeroWidth",
			data:    "window:\n  width: 0\n",
			wantErr: "window size",
		},
		{
			name:    "AbsurdFOV",
			data:    "camera:\n  fov: 200\n",
			wantErr: "fov",
		},
		{
			name:    "NegativeTimeScale",
			data:    "scene:\n  timeScale: -2\n",
			wantErr: "time scale",
		},
		{
			// Pausing is the Space key's job, not the config file's.
			name:    "ZeroTimeScale",
			data:    "scene:\n  timeScale: 0\n",
			wantErr: "time scale",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
