package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"solarsystem/scene"
)

const (
	hudControls = "1-8 planets   9 top-down   0 free   Space pause   [ ] speed   R reset   Esc quit"
	hudFooter   = "Press 0 for free flight"
)

// factLines formats the overlay block for a focused body: its name,
// then the real-world figures when the catalog has them.
func factLines(b scene.Body) []string {
	lines := []string{b.Name}
	if b.Facts == nil {
		return lines
	}

	f := b.Facts
	lines = append(lines,
		fmt.Sprintf("Distance from Sun: %.1f million km", f.DistanceMillionKm),
		fmt.Sprintf("Radius: %.1f km", f.RadiusKm),
		fmt.Sprintf("Moons: %d", f.Moons),
		rotationLine(f.RotationDays),
		fmt.Sprintf("Orbital period: %.2f days", f.OrbitDays),
	)
	return lines
}

// rotationLine formats a rotation period, marking retrograde rotation
// instead of printing a negative duration.
func rotationLine(days float64) string {
	if days < 0 {
		return fmt.Sprintf("Rotation period: %.2f days (retrograde)", -days)
	}
	return fmt.Sprintf("Rotation period: %.2f days", days)
}

// statusText builds the one-line simulation status shown under the
// title.
func statusText(mode viewMode, focusName string, timeScale float64, paused bool) string {
	clock := fmt.Sprintf("Time x%g", timeScale)
	if paused {
		clock = "Paused"
	}

	var view string
	switch mode {
	case viewTop:
		view = "Top-down view"
	case viewBody:
		view = "Tracking " + focusName
	default:
		view = "Free camera"
	}

	return clock + " | " + view
}

// drawHUD renders the text overlay after the 3D scene: title and status
// top-left, frame rate top-right, and the focused body's facts on the
// right edge.
func (r *Renderer) drawHUD() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	white := mgl32.Vec3{1, 1, 1}
	dim := mgl32.Vec3{0.72, 0.72, 0.78}
	w := float32(r.width)
	h := float32(r.height)
	line := r.atlas.lineHeight()

	focusName := ""
	if r.mode == viewBody {
		focusName = r.catalog.Planets[r.focus].Name
	}

	y := h - 36
	r.drawText(r.settings.Window.Title, 16, y, 1.0, white)
	y -= line
	r.drawText(statusText(r.mode, focusName, r.timeScale, r.paused), 16, y, 0.75, dim)
	y -= line * 0.8
	r.drawText(hudControls, 16, y, 0.6, dim)

	fps := fmt.Sprintf("FPS: %.0f", r.fps)
	r.drawText(fps, w-16-r.atlas.textWidth(fps, 0.75), h-36, 0.75, dim)

	if r.mode == viewBody {
		y = h - 96
		for i, ln := range factLines(r.catalog.Planets[r.focus]) {
			scale := float32(0.7)
			color := dim
			if i == 0 {
				scale = 0.95
				color = white
			}
			r.drawText(ln, w-16-r.atlas.textWidth(ln, scale), y, scale, color)
			y -= line * scale * 1.15
		}

		r.drawText(hudFooter, (w-r.atlas.textWidth(hudFooter, 0.7))/2, 24, 0.7, dim)
	}

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
