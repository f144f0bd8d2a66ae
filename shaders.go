package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed assets/shaders
var shaderFS embed.FS

// shaderPrograms maps each program to its vertex and fragment shader
// files under assets/shaders.
var shaderPrograms = map[string][2]string{
	"body":   {"body.vert", "body.frag"},
	"ring":   {"ring.vert", "ring.frag"},
	"skybox": {"skybox.vert", "skybox.frag"},
	"text":   {"text.vert", "text.frag"},
}

// loadPrograms builds all shader programs.
func (r *Renderer) loadPrograms() error {
	for name, files := range shaderPrograms {
		program, err := r.buildProgram(name, files)
		if err != nil {
			return err
		}
		*r.programSlot(name) = program
	}
	return nil
}

func (r *Renderer) buildProgram(name string, files [2]string) (uint32, error) {
	vertSource, err := r.shaderSource(files[0])
	if err != nil {
		return 0, err
	}
	fragSource, err := r.shaderSource(files[1])
	if err != nil {
		return 0, err
	}

	program, err := newProgram(vertSource, fragSource)
	if err != nil {
		return 0, fmt.Errorf("failed to build %s program: %v", name, err)
	}
	return program, nil
}

// shaderSource reads a shader file. When live reload is active the
// on-disk copy wins so edits take effect; otherwise the embedded copy
// is used.
func (r *Renderer) shaderSource(file string) (string, error) {
	if r.watcher != nil {
		path := filepath.Join(r.settings.Scene.AssetDir, "shaders", file)
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		}
	}

	data, err := shaderFS.ReadFile("assets/shaders/" + file)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %v", file, err)
	}
	return string(data), nil
}

// reloadShader rebuilds the program that uses a changed shader file.
// A program that fails to compile leaves the previous one in place.
func (r *Renderer) reloadShader(file string) {
	name, ok := programForFile(file)
	if !ok {
		return
	}

	program, err := r.buildProgram(name, shaderPrograms[name])
	if err != nil {
		fmt.Printf("Warning: %v, keeping previous program\n", err)
		return
	}

	slot := r.programSlot(name)
	gl.DeleteProgram(*slot)
	*slot = program
	fmt.Printf("Reloaded %s shaders\n", name)
}

// programForFile resolves a shader filename to the program it belongs
// to.
func programForFile(file string) (string, bool) {
	base := filepath.Base(file)
	for name, files := range shaderPrograms {
		if base == files[0] || base == files[1] {
			return name, true
		}
	}
	return "", false
}

func (r *Renderer) programSlot(name string) *uint32 {
	switch name {
	case "body":
		return &r.bodyProgram
	case "ring":
		return &r.ringProgram
	case "skybox":
		return &r.skyboxProgram
	default:
		return &r.textProgram
	}
}

// newProgram compiles and links a vertex/fragment shader pair.
func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader error: %v", err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader error: %v", err)
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program link error: %s", log)
	}

	return program, nil
}

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return 0, fmt.Errorf("%s", log)
	}

	return shader, nil
}
