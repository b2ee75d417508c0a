package render

import (
	"fmt"
	"image"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/internal/openglhelper"
	"github.com/leterax/skyview/pkg/overlay"
	"github.com/leterax/skyview/pkg/session"
)

// Renderer owns the window and drives the frame loop
type Renderer struct {
	cfg     *config.Config
	window  *openglhelper.Window
	session *session.Session

	skybox *Skybox
	hud    *HUD

	settingsPanel *overlay.Panel
	fpsPanel      *overlay.Panel
	fps           *overlay.FPSCounter

	isClosed bool
}

// NewRenderer opens the window and loads every GPU resource. Any failure is
// returned; nothing is left allocated.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	sess, err := session.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Create window
	window, err := openglhelper.NewWindow(cfg.Display.Width, cfg.Display.Height, cfg.Display.Title, cfg.Display.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer := &Renderer{
		cfg:           cfg,
		window:        window,
		session:       sess,
		settingsPanel: overlay.NewPanel(overlay.PanelStyle),
		fpsPanel:      overlay.NewPanel(overlay.HUDStyle),
		fps:           overlay.NewFPSCounter(FPSWindow),
	}

	renderer.skybox, err = NewSkybox(cfg, sess.Camera.Far())
	if err != nil {
		window.Close()
		return nil, err
	}
	if err := renderer.skybox.PopulateCubeSampler(); err != nil {
		renderer.skybox.Delete()
		window.Close()
		return nil, err
	}

	renderer.hud, err = NewHUD(cfg)
	if err != nil {
		renderer.skybox.Delete()
		window.Close()
		return nil, err
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetMouseButtonCallback(renderer.mouseButtonCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	renderer.syncCursor()

	return renderer, nil
}

// Run starts the main rendering loop and cleans up when the window closes
func (r *Renderer) Run() {
	defer r.Cleanup()

	for !r.window.ShouldClose() {
		dt := r.session.Tick(glfw.GetTime())
		r.fps.Add(dt)

		finishFrame(r.window, r.session, r.render())
	}
}

// frameTarget is the part of the window a frame ends on
type frameTarget interface {
	SwapBuffers()
	PollEvents()
	SetShouldClose(bool)
}

// finishFrame presents a successfully drawn frame, polls events and closes
// the window once a quit was requested. A failed frame is logged and not
// presented, but events and quit are still handled.
func finishFrame(target frameTarget, sess *session.Session, drawErr error) {
	if drawErr != nil {
		log.Printf("Skipping frame: %v", drawErr)
	} else {
		target.SwapBuffers()
	}
	target.PollEvents()

	if sess.QuitRequested() {
		target.SetShouldClose(true)
	}
}

// render draws the skybox and then the overlay
func (r *Renderer) render() error {
	r.window.Clear(ClearColor)

	cam := r.session.Camera
	if err := r.skybox.Draw(cam.ViewMatrix(), cam.Projection(r.window.AspectRatio())); err != nil {
		return err
	}

	return r.renderOverlay()
}

// renderOverlay builds this frame's panels and draws them
func (r *Renderer) renderOverlay() error {
	width, height := r.window.Size()
	settings := &r.session.Settings

	if settings.ShowUI {
		p := r.settingsPanel
		p.Begin(image.Pt(0, 0))
		p.Heading("General Settings")
		p.Separator()
		p.Checkbox("Show FPS", &settings.ShowFPS)
		p.Label(fmt.Sprintf("Press %s to toggle this menu", r.cfg.Controls.ToggleUI))
		p.Label(fmt.Sprintf("Press %s to toggle FPS display", r.cfg.Controls.ToggleFPS))
		p.Separator()
		if p.Button("Quit") {
			r.session.RequestQuit()
		}
		if err := r.hud.Draw(slotSettings, p.End(), width, height); err != nil {
			return err
		}
	}

	if settings.ShowFPS {
		p := r.fpsPanel
		p.Begin(image.Pt(0, 0))
		p.Label(r.fps.Label())
		frame := p.End()
		frame.Origin = image.Pt(width-frame.Image.Bounds().Dx(), 0)
		if err := r.hud.Draw(slotFPS, frame, width, height); err != nil {
			return err
		}
	}

	return nil
}

// syncCursor captures the cursor unless the settings panel is open
func (r *Renderer) syncCursor() {
	r.window.SetMouseCaptured(!r.session.Settings.ShowUI)
}

// toFramebuffer converts cursor coordinates to framebuffer pixels
func (r *Renderer) toFramebuffer(x, y float64) (int, int) {
	sx, sy := r.window.ContentScale()
	return int(x * sx), int(y * sy)
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.isClosed {
		return
	}
	r.isClosed = true

	r.hud.Delete()
	r.skybox.Delete()

	// Close window
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case Press:
		r.session.KeyDown(session.Key(key))
	case Release:
		r.session.KeyUp(session.Key(key))
	default:
		return
	}

	r.syncCursor()
	if r.session.QuitRequested() {
		r.window.SetShouldClose(true)
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.settingsPanel.MouseMove(r.toFramebuffer(xpos, ypos))
	r.session.PointerMoved(xpos, ypos)
}

func (r *Renderer) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != Press || !r.session.Settings.ShowUI {
		return
	}
	r.settingsPanel.Click(r.toFramebuffer(w.GetCursorPos()))
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}
