package main

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// glyphMetrics describes one glyph bitmap in pixels: its size, its
// offset from the pen position, and how far the pen advances after it.
type glyphMetrics struct {
	width    float32
	height   float32
	bearingX float32
	bearingY float32 // baseline to bitmap top
	advance  float32
}

type glyph struct {
	metrics glyphMetrics
	texture uint32 // 0 for glyphs with no bitmap, like space
}

// glyphAtlas rasterizes glyphs from the embedded Go Regular face and
// caches one texture per glyph. Rasterization is plain CPU work; only
// ensure uploads to the GPU.
type glyphAtlas struct {
	face   font.Face
	glyphs map[rune]*glyph
}

// newGlyphAtlas builds an atlas rendering at the given pixel height.
func newGlyphAtlas(pixelSize float64) (*glyphAtlas, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    pixelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %v", err)
	}

	return &glyphAtlas{
		face:   face,
		glyphs: make(map[rune]*glyph),
	}, nil
}

// rasterizeGlyph renders a single glyph into an alpha bitmap. The image
// is nil for glyphs with no visible shape; ok is false when the face
// has no glyph for the rune at all.
func rasterizeGlyph(face font.Face, r rune) (*image.Alpha, glyphMetrics, bool) {
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return nil, glyphMetrics{}, false
	}

	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	m := glyphMetrics{
		width:    float32(w),
		height:   float32(h),
		bearingX: fixedToFloat(bounds.Min.X),
		bearingY: fixedToFloat(-bounds.Min.Y),
		advance:  fixedToFloat(advance),
	}

	if w <= 0 || h <= 0 {
		return nil, m, true
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(string(r))

	return img, m, true
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}

// ensure returns the cached glyph for r, rasterizing and uploading it
// on first use. Returns nil when the face cannot render the rune.
func (a *glyphAtlas) ensure(r rune) *glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}

	img, m, ok := rasterizeGlyph(a.face, r)
	if !ok {
		a.glyphs[r] = nil
		return nil
	}

	g := &glyph{metrics: m}
	if img != nil {
		g.texture = uploadGlyph(img)
	}
	a.glyphs[r] = g
	return g
}

// prewarm rasterizes and uploads the printable ASCII range so the
// overlay never stalls on first display.
func (a *glyphAtlas) prewarm() {
	for r := rune(32); r <= 126; r++ {
		a.ensure(r)
	}
}

func uploadGlyph(img *image.Alpha) uint32 {
	// Glyph bitmaps are one byte per pixel, so rows are not 4-aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()),
		0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	return texture
}

// textWidth measures a string in screen pixels at the given scale. The
// sum matches how drawText advances the pen, so measured boxes line up
// with rendered text.
func (a *glyphAtlas) textWidth(s string, scale float32) float32 {
	var width float32
	for _, r := range s {
		advance, ok := a.face.GlyphAdvance(r)
		if !ok {
			continue
		}
		width += fixedToFloat(advance) * scale
	}
	return width
}

// lineHeight returns the unscaled distance between baselines.
func (a *glyphAtlas) lineHeight() float32 {
	return fixedToFloat(a.face.Metrics().Height)
}

// createTextQuad allocates the dynamic vertex buffer reused by every
// glyph quad.
func (r *Renderer) createTextQuad() {
	gl.GenVertexArrays(1, &r.textVAO)
	gl.BindVertexArray(r.textVAO)

	gl.GenBuffers(1, &r.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// drawText renders a string with its baseline starting at (x, y) in
// window coordinates, origin bottom-left.
func (r *Renderer) drawText(text string, x, y, scale float32, color mgl32.Vec3) {
	gl.UseProgram(r.textProgram)

	projection := mgl32.Ortho2D(0, float32(r.width), 0, float32(r.height))
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.textProgram, gl.Str("projection\x00")), 1, false, &projection[0])
	gl.Uniform3fv(gl.GetUniformLocation(r.textProgram, gl.Str("textColor\x00")), 1, &color[0])
	gl.Uniform1i(gl.GetUniformLocation(r.textProgram, gl.Str("glyph\x00")), 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.textVAO)

	for _, ch := range text {
		g := r.atlas.ensure(ch)
		if g == nil {
			continue
		}

		if g.texture != 0 {
			xpos := x + g.metrics.bearingX*scale
			ypos := y - (g.metrics.height-g.metrics.bearingY)*scale
			w := g.metrics.width * scale
			h := g.metrics.height * scale

			vertices := []float32{
				xpos, ypos + h, 0, 0,
				xpos, ypos, 0, 1,
				xpos + w, ypos, 1, 1,
				xpos, ypos + h, 0, 0,
				xpos + w, ypos, 1, 1,
				xpos + w, ypos + h, 1, 0,
			}

			gl.BindTexture(gl.TEXTURE_2D, g.texture)
			gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
			gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
		}

		x += g.metrics.advance * scale
	}

	gl.BindVertexArray(0)
}
