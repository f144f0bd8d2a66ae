package main

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// buildRingVertices generates a unit circle in the XZ plane, drawn as a
// line loop. One shared ring is scaled per orbit at draw time.
func buildRingVertices(segments int) []float32 {
	vertices := make([]float32, 0, segments*3)
	for i := 0; i < segments; i++ {
		angle := float32(i) * 2.0 * math32.Pi / float32(segments)
		vertices = append(vertices, math32.Cos(angle), 0, math32.Sin(angle))
	}
	return vertices
}

// createRing uploads the shared orbit ring into a VAO.
func (r *Renderer) createRing() {
	vertices := buildRingVertices(128)

	gl.GenVertexArrays(1, &r.ringVAO)
	gl.BindVertexArray(r.ringVAO)

	gl.GenBuffers(1, &r.ringVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.ringVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	r.ringVertexCount = int32(len(vertices) / 3)

	gl.BindVertexArray(0)
}
