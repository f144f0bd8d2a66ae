package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"solarsystem/config"
	"solarsystem/scene"
)

// Renderer owns the window, the GL resources, and the per-frame drawing
// of the scene.
type Renderer struct {
	window   *glfw.Window
	settings config.Settings
	catalog  *scene.Catalog
	state    *scene.State

	// Shader programs
	bodyProgram   uint32
	ringProgram   uint32
	skyboxProgram uint32
	textProgram   uint32

	// Sphere geometry shared by every body
	sphereVAO        uint32
	sphereVBO        uint32
	sphereEBO        uint32
	sphereIndexCount int32

	// Orbit ring geometry
	ringVAO         uint32
	ringVBO         uint32
	ringVertexCount int32

	// Skybox
	skyboxVAO uint32
	skyboxVBO uint32
	cubemap   uint32

	// Body textures, planetTextures parallel to catalog.Planets
	sunTexture     uint32
	planetTextures []uint32
	moonTexture    uint32

	// Text overlay
	atlas   *glyphAtlas
	textVAO uint32
	textVBO uint32

	// Camera
	cam       *FlyCamera
	mode      viewMode
	focus     int
	topHeight float32

	// Mouse state for the free camera
	firstMouse bool
	lastMouseX float64
	lastMouseY float64

	// Time control
	timeScale float64
	paused    bool

	// Shader live reload, nil unless enabled
	watcher *shaderWatcher

	width, height int
	fps           float64
}

// NewRenderer opens the window, compiles the shaders, and uploads all
// static geometry and textures for the catalog.
func NewRenderer(settings config.Settings, catalog *scene.Catalog, st *scene.State, watch bool) (*Renderer, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(settings.Window.Width, settings.Window.Height, settings.Window.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %v", err)
	}

	window.MakeContextCurrent()

	if settings.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version:", version)

	fbWidth, fbHeight := window.GetFramebufferSize()

	r := &Renderer{
		window:     window,
		settings:   settings,
		catalog:    catalog,
		state:      st,
		width:      fbWidth,
		height:     fbHeight,
		cam:        NewFlyCamera(mgl32.Vec3{0, 12, 42}, settings.Camera.Speed, settings.Camera.Sensitivity),
		mode:       viewFree,
		firstMouse: true,
		timeScale:  settings.Scene.TimeScale,
	}

	// Overhead height that keeps the outermost orbit in frame.
	halfFOV := mgl32.DegToRad(settings.Camera.FOV / 2)
	r.topHeight = catalog.MaxOrbitRadius() * 1.05 / math32.Tan(halfFOV)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.01, 0.01, 0.02, 1.0)

	if watch {
		shaderDir := filepath.Join(settings.Scene.AssetDir, "shaders")
		watcher, err := newShaderWatcher(shaderDir)
		if err != nil {
			fmt.Printf("Warning: shader watch disabled: %v\n", err)
		} else {
			r.watcher = watcher
			fmt.Println("Watching", shaderDir, "for shader changes")
		}
	}

	if err := r.loadPrograms(); err != nil {
		return nil, err
	}

	r.createSphere()
	r.createRing()
	r.createSkybox()
	r.createTextQuad()

	r.loadTextures()

	atlas, err := newGlyphAtlas(24)
	if err != nil {
		return nil, fmt.Errorf("failed to build glyph atlas: %v", err)
	}
	r.atlas = atlas
	r.atlas.prewarm()

	r.updateCursorMode()

	// Framebuffer size, not window size: they differ on HiDPI displays.
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.onResize(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(key, scancode, action, mods)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		r.onScroll(xoff, yoff)
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		r.onMouseMove(xpos, ypos)
	})

	return r, nil
}

// loadTextures resolves every body in the catalog to a texture, real or
// flat-tinted, plus the skybox cubemap.
func (r *Renderer) loadTextures() {
	r.sunTexture = r.loadBodyTexture(r.catalog.Sun)

	r.planetTextures = make([]uint32, len(r.catalog.Planets))
	for i, p := range r.catalog.Planets {
		r.planetTextures[i] = r.loadBodyTexture(p)
	}

	if r.catalog.HasMoon() {
		r.moonTexture = r.loadBodyTexture(r.catalog.Moon)
	}

	skyDir := filepath.Join(r.settings.Scene.AssetDir, "textures", "skybox")
	cubemap, err := loadCubemap(skyDir)
	if err != nil {
		fmt.Printf("Warning: skybox from %s: %v, using plain sky\n", skyDir, err)
		cubemap = fallbackCubemap()
	}
	r.cubemap = cubemap
}

// Render draws one frame: bodies, orbit rings, skybox, then the text
// overlay.
func (r *Renderer) Render() {
	r.drainShaderEvents()

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	pose := computePose(r.mode, r.focus, r.cam, r.state, r.topHeight, r.settings.Camera.FOV)
	aspect := float32(r.width) / float32(r.height)
	projection := mgl32.Perspective(mgl32.DegToRad(pose.fov), aspect, 0.1, 400.0)
	view := pose.viewMatrix()

	r.drawBodies(view, projection)
	r.drawRings(view, projection)
	r.drawSkybox(view, projection)
	r.drawHUD()

	r.window.SwapBuffers()
}

// drawBodies renders the sun unlit and every orbiting body with diffuse
// lighting from the sun's position at the origin.
func (r *Renderer) drawBodies(view, projection mgl32.Mat4) {
	gl.UseProgram(r.bodyProgram)

	gl.UniformMatrix4fv(gl.GetUniformLocation(r.bodyProgram, gl.Str("view\x00")), 1, false, &view[0])
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.bodyProgram, gl.Str("projection\x00")), 1, false, &projection[0])
	lightPos := mgl32.Vec3{0, 0, 0}
	gl.Uniform3fv(gl.GetUniformLocation(r.bodyProgram, gl.Str("lightPos\x00")), 1, &lightPos[0])
	gl.Uniform1i(gl.GetUniformLocation(r.bodyProgram, gl.Str("bodyTexture\x00")), 0)

	gl.BindVertexArray(r.sphereVAO)
	gl.ActiveTexture(gl.TEXTURE0)

	r.drawSphere(r.state.SunModel, r.sunTexture, true)

	for i := range r.catalog.Planets {
		r.drawSphere(r.state.PlanetModels[i], r.planetTextures[i], false)
	}

	if r.catalog.HasMoon() {
		r.drawSphere(r.state.MoonModel, r.moonTexture, false)
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) drawSphere(model mgl32.Mat4, texture uint32, emissive bool) {
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.bodyProgram, gl.Str("model\x00")), 1, false, &model[0])

	emissiveInt := int32(0)
	if emissive {
		emissiveInt = 1
	}
	gl.Uniform1i(gl.GetUniformLocation(r.bodyProgram, gl.Str("emissive\x00")), emissiveInt)

	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.DrawElements(gl.TRIANGLES, r.sphereIndexCount, gl.UNSIGNED_INT, nil)
}

// drawRings renders one orbit line per planet, plus the moon's orbit
// around its parent. Each ring is a dimmed version of its body's tint.
func (r *Renderer) drawRings(view, projection mgl32.Mat4) {
	gl.UseProgram(r.ringProgram)

	gl.UniformMatrix4fv(gl.GetUniformLocation(r.ringProgram, gl.Str("view\x00")), 1, false, &view[0])
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.ringProgram, gl.Str("projection\x00")), 1, false, &projection[0])

	gl.BindVertexArray(r.ringVAO)

	origin := mgl32.Vec3{}
	for _, p := range r.catalog.Planets {
		r.drawRing(scene.RingTransform(origin, p.Distance), ringTint(p.Color))
	}

	if parent := r.state.MoonParent(); parent >= 0 {
		model := scene.RingTransform(r.state.PlanetPosition(parent), r.catalog.Moon.Distance)
		r.drawRing(model, ringTint(r.catalog.Moon.Color))
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) drawRing(model mgl32.Mat4, color mgl32.Vec3) {
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.ringProgram, gl.Str("model\x00")), 1, false, &model[0])
	gl.Uniform3fv(gl.GetUniformLocation(r.ringProgram, gl.Str("ringColor\x00")), 1, &color[0])
	gl.DrawArrays(gl.LINE_LOOP, 0, r.ringVertexCount)
}

// drainShaderEvents applies any pending shader reloads without
// blocking the frame.
func (r *Renderer) drainShaderEvents() {
	if r.watcher == nil {
		return
	}
	for {
		select {
		case file, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			r.reloadShader(file)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Warning: shader watcher: %v\n", err)
		default:
			return
		}
	}
}

// processInput applies held-down movement keys to the free camera.
func (r *Renderer) processInput(dt float64) {
	if r.mode != viewFree {
		return
	}

	if r.window.GetKey(glfw.KeyW) == glfw.Press {
		r.cam.Move(moveForward, float32(dt))
	}
	if r.window.GetKey(glfw.KeyS) == glfw.Press {
		r.cam.Move(moveBackward, float32(dt))
	}
	if r.window.GetKey(glfw.KeyA) == glfw.Press {
		r.cam.Move(moveLeft, float32(dt))
	}
	if r.window.GetKey(glfw.KeyD) == glfw.Press {
		r.cam.Move(moveRight, float32(dt))
	}
}

// timeRate is the rate simulation time advances relative to wall time.
func (r *Renderer) timeRate() float64 {
	if r.paused {
		return 0
	}
	return r.timeScale
}

func (r *Renderer) setFPS(fps float64) {
	r.fps = fps
}

// updateCursorMode captures the cursor in free mode and releases it
// otherwise.
func (r *Renderer) updateCursorMode() {
	if r.mode == viewFree {
		r.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		r.firstMouse = true
	} else {
		r.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// Event handlers
func (r *Renderer) onResize(width, height int) {
	r.width = width
	r.height = height
}

func (r *Renderer) onKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch {
	case key == glfw.KeyEscape:
		r.window.SetShouldClose(true)

	case key >= glfw.Key1 && key <= glfw.Key8:
		idx := int(key - glfw.Key1)
		if idx < len(r.catalog.Planets) {
			r.mode = viewBody
			r.focus = idx
			r.updateCursorMode()
			fmt.Println("Tracking", r.catalog.Planets[idx].Name)
		}

	case key == glfw.Key9:
		r.mode = viewTop
		r.updateCursorMode()
		fmt.Println("Top-down view")

	case key == glfw.Key0:
		r.mode = viewFree
		r.updateCursorMode()
		fmt.Println("Free camera")

	case key == glfw.KeySpace:
		r.paused = !r.paused
		if r.paused {
			fmt.Println("Paused")
		} else {
			fmt.Println("Resumed")
		}

	case key == glfw.KeyLeftBracket:
		r.timeScale /= 2
		if r.timeScale < 0.0625 {
			r.timeScale = 0.0625
		}
		fmt.Printf("Time scale: x%g\n", r.timeScale)

	case key == glfw.KeyRightBracket:
		r.timeScale *= 2
		if r.timeScale > 16.0 {
			r.timeScale = 16.0
		}
		fmt.Printf("Time scale: x%g\n", r.timeScale)

	case key == glfw.KeyR:
		r.state.SetTime(0)
		fmt.Println("Simulation time reset")
	}
}

func (r *Renderer) onScroll(xoff, yoff float64) {
	if r.mode != viewFree {
		return
	}
	r.cam.AdjustZoom(float32(yoff))
}

func (r *Renderer) onMouseMove(xpos, ypos float64) {
	if r.mode != viewFree {
		return
	}

	if r.firstMouse {
		r.lastMouseX = xpos
		r.lastMouseY = ypos
		r.firstMouse = false
		return
	}

	dx := float32(xpos - r.lastMouseX)
	dy := float32(r.lastMouseY - ypos) // screen Y grows downward
	r.lastMouseX = xpos
	r.lastMouseY = ypos

	r.cam.Look(dx, dy)
}

// ShouldClose returns true if the window should close
func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents processes window events
func (r *Renderer) PollEvents() {
	glfw.PollEvents()
}

// Terminate cleans up OpenGL resources
func (r *Renderer) Terminate() {
	if r.watcher != nil {
		r.watcher.Close()
	}

	gl.DeleteProgram(r.bodyProgram)
	gl.DeleteProgram(r.ringProgram)
	gl.DeleteProgram(r.skyboxProgram)
	gl.DeleteProgram(r.textProgram)

	gl.DeleteVertexArrays(1, &r.sphereVAO)
	gl.DeleteBuffers(1, &r.sphereVBO)
	gl.DeleteBuffers(1, &r.sphereEBO)
	gl.DeleteVertexArrays(1, &r.ringVAO)
	gl.DeleteBuffers(1, &r.ringVBO)
	gl.DeleteVertexArrays(1, &r.skyboxVAO)
	gl.DeleteBuffers(1, &r.skyboxVBO)
	gl.DeleteVertexArrays(1, &r.textVAO)
	gl.DeleteBuffers(1, &r.textVBO)

	gl.DeleteTextures(1, &r.sunTexture)
	for i := range r.planetTextures {
		gl.DeleteTextures(1, &r.planetTextures[i])
	}
	if r.moonTexture != 0 {
		gl.DeleteTextures(1, &r.moonTexture)
	}
	gl.DeleteTextures(1, &r.cubemap)

	for _, g := range r.atlas.glyphs {
		if g != nil && g.texture != 0 {
			gl.DeleteTextures(1, &g.texture)
		}
	}

	r.window.Destroy()
	glfw.Terminate()
}
