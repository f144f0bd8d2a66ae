package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// skyboxVertices is a unit cube drawn from the inside, 36 vertices.
var skyboxVertices = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// cubemapFaces lists the face images in GL_TEXTURE_CUBE_MAP_POSITIVE_X
// order.
var cubemapFaces = []string{"right", "left", "top", "bottom", "front", "back"}

// createSkybox uploads the skybox cube into a VAO.
func (r *Renderer) createSkybox() {
	gl.GenVertexArrays(1, &r.skyboxVAO)
	gl.BindVertexArray(r.skyboxVAO)

	gl.GenBuffers(1, &r.skyboxVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.skyboxVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVertices)*4, unsafe.Pointer(&skyboxVertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// loadCubemap loads the six face images from dir into a cubemap
// texture. All six faces must be present.
func loadCubemap(dir string) (uint32, error) {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)

	for i, face := range cubemapFaces {
		img, err := decodeFaceImage(dir, face)
		if err != nil {
			gl.DeleteTextures(1, &texture)
			return 0, err
		}
		rgba := rgbaImage(img)
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	return texture, nil
}

func decodeFaceImage(dir, face string) (image.Image, error) {
	var lastErr error
	for _, ext := range []string{".png", ".jpg"} {
		path := filepath.Join(dir, face+ext)
		file, err := os.Open(path)
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(file)
		file.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to decode %s: %v", path, err)
			continue
		}
		return img, nil
	}
	return nil, lastErr
}

// fallbackCubemap builds a near-black cubemap so missing skybox images
// degrade to a dark sky instead of an error.
func fallbackCubemap() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)

	pixel := []uint8{8, 8, 16, 255}
	for i := 0; i < 6; i++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixel))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	return texture
}

// drawSkybox renders the skybox last, behind everything already drawn.
// The view matrix is stripped of translation so the sky never moves
// with the camera.
func (r *Renderer) drawSkybox(view, projection mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	gl.UseProgram(r.skyboxProgram)

	skyView := view.Mat3().Mat4()
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.skyboxProgram, gl.Str("view\x00")), 1, false, &skyView[0])
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.skyboxProgram, gl.Str("projection\x00")), 1, false, &projection[0])

	gl.BindVertexArray(r.skyboxVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.cubemap)
	gl.Uniform1i(gl.GetUniformLocation(r.skyboxProgram, gl.Str("skybox\x00")), 0)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}
