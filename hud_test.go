package main

import (
	"strings"
	"testing"

	"solarsystem/scene"
)

func TestFactLines(t *testing.T) {
	c := scene.DefaultCatalog()
	i, ok := c.PlanetIndex("Earth")
	if !ok {
		t.Fatal("no Earth in default catalog")
	}

	lines := factLines(c.Planets[i])
	if len(lines) != 6 {
		t.Fatalf("line count: got %d, want 6", len(lines))
	}
	if lines[0] != "Earth" {
		t.Errorf("first line: got %q, want Earth", lines[0])
	}

	joined := strings.Join(lines, "\n")
	for _, want := range []string{
		"Distance from Sun: 149.6 million km",
		"Radius: 6371.0 km",
		"Moons: 1",
		"Rotation period: 1.00 days",
		"Orbital period: 365.25 days",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("fact lines missing %q in:\n%s", want, joined)
		}
	}
}

func TestFactLinesRetrograde(t *testing.T) {
	c := scene.DefaultCatalog()
	i, ok := c.PlanetIndex("Venus")
	if !ok {
		t.Fatal("no Venus in default catalog")
	}

	joined := strings.Join(factLines(c.Planets[i]), "\n")
	if !strings.Contains(joined, "Rotation period: 243.02 days (retrograde)") {
		t.Errorf("Venus should show retrograde rotation, got:\n%s", joined)
	}
	if strings.Contains(joined, "-243") {
		t.Errorf("rotation shown as negative number:\n%s", joined)
	}
}

func TestFactLinesWithoutFacts(t *testing.T) {
	lines := factLines(scene.Body{Name: "Probe"})
	if len(lines) != 1 || lines[0] != "Probe" {
		t.Errorf("body without facts: got %v, want just the name", lines)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name      string
		mode      viewMode
		focusName string
		timeScale float64
		paused    bool
		want      string
	}{
		{
			name:      "FreeRunning",
			mode:      viewFree,
			timeScale: 1,
			want:      "Time x1 | Free camera",
		},
		{
			name:      "TopDownFast",
			mode:      viewTop,
			timeScale: 16,
			want:      "Time x16 | Top-down view",
		},
		{
			name:      "TrackingSlow",
			mode:      viewBody,
			focusName: "Saturn",
			timeScale: 0.25,
			want:      "Time x0.25 | Tracking Saturn",
		},
		{
			name:      "PausedHidesRate",
			mode:      viewBody,
			focusName: "Mars",
			timeScale: 4,
			paused:    true,
			want:      "Paused | Tracking Mars",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := statusText(tc.mode, tc.focusName, tc.timeScale, tc.paused)
			if got != tc.want {
				t.Errorf("status: got %q, want %q", got, tc.want)
			}
		})
	}
}
