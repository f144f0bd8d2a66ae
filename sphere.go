package main

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// sphereMesh holds a UV sphere as interleaved vertex data: position,
// normal, and texture coordinates, 8 floats per vertex.
type sphereMesh struct {
	vertices []float32
	indices  []uint32
}

// buildSphereMesh generates a unit-radius UV sphere. Every body reuses
// the same mesh and gets its size from the model matrix.
func buildSphereMesh(segments, rings int) sphereMesh {
	var mesh sphereMesh

	for ring := 0; ring <= rings; ring++ {
		theta := float32(ring) * math32.Pi / float32(rings)
		sinTheta := math32.Sin(theta)
		cosTheta := math32.Cos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := float32(seg) * 2.0 * math32.Pi / float32(segments)
			sinPhi := math32.Sin(phi)
			cosPhi := math32.Cos(phi)

			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta

			// Position and normal coincide on a unit sphere.
			mesh.vertices = append(mesh.vertices, x, y, z)
			mesh.vertices = append(mesh.vertices, x, y, z)

			u := float32(seg) / float32(segments)
			v := float32(ring) / float32(rings)
			mesh.vertices = append(mesh.vertices, u, v)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			mesh.indices = append(mesh.indices, current, next, current+1)
			mesh.indices = append(mesh.indices, current+1, next, next+1)
		}
	}

	return mesh
}

// createSphere uploads the shared sphere mesh into a VAO.
func (r *Renderer) createSphere() {
	mesh := buildSphereMesh(48, 32)

	gl.GenVertexArrays(1, &r.sphereVAO)
	gl.BindVertexArray(r.sphereVAO)

	gl.GenBuffers(1, &r.sphereVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.sphereVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.vertices)*4, unsafe.Pointer(&mesh.vertices[0]), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 8*4, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(0)

	// Normal attribute
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 8*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// TexCoord attribute
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, 8*4, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &r.sphereEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.sphereEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.indices)*4, unsafe.Pointer(&mesh.indices[0]), gl.STATIC_DRAW)

	r.sphereIndexCount = int32(len(mesh.indices))

	gl.BindVertexArray(0)
}
