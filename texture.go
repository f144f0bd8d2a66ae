package main

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"solarsystem/scene"
)

// rgbaImage converts a decoded image to RGBA with zero-based bounds.
func rgbaImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// rgbaFlipped converts a decoded image to RGBA with the rows reversed,
// so row zero is the bottom of the image as OpenGL expects.
func rgbaFlipped(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, h-1-y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// tintRGB resolves a body's hex color to an opaque RGB triple, falling
// back to gray when the color is missing or malformed.
func tintRGB(hex string) (uint8, uint8, uint8) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 128, 128, 128
	}
	return c.RGB255()
}

// ringTint dims a body's tint down to the color of its orbit ring.
func ringTint(hex string) mgl32.Vec3 {
	red, green, blue := tintRGB(hex)
	const dim = 0.45
	return mgl32.Vec3{
		float32(red) / 255 * dim,
		float32(green) / 255 * dim,
		float32(blue) / 255 * dim,
	}
}

// loadTextureFile decodes an image from disk and uploads it as a
// mipmapped 2D texture.
func loadTextureFile(path string) (uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("failed to decode %s: %v", path, err)
	}

	rgba := rgbaFlipped(img)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return texture, nil
}

// solidTexture creates a 1x1 texture of a single color.
func solidTexture(red, green, blue uint8) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	pixel := []uint8{red, green, blue, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixel))

	return texture
}

// loadBodyTexture finds a texture image for a body under the asset
// directory, trying PNG then JPEG. When no image loads, the body gets a
// flat tint from its catalog color so the scene still renders.
func (r *Renderer) loadBodyTexture(b scene.Body) uint32 {
	var lastErr error
	for _, ext := range []string{".png", ".jpg"} {
		path := filepath.Join(r.settings.Scene.AssetDir, "textures", b.Texture+ext)
		if _, err := os.Stat(path); err != nil {
			lastErr = err
			continue
		}
		texture, err := loadTextureFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		return texture
	}

	fmt.Printf("Warning: no texture for %s: %v, using flat color\n", b.Name, lastErr)
	red, green, blue := tintRGB(b.Color)
	return solidTexture(red, green, blue)
}
