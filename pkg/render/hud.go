package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/internal/openglhelper"
	"github.com/leterax/skyview/pkg/overlay"
)

// hudSlot identifies one overlay texture
type hudSlot int

const (
	slotSettings hudSlot = iota
	slotFPS
	slotCount
)

// unit quad, top-left origin
var quadVertices = []float32{
	0, 0,
	1, 0,
	1, 1,
	0, 1,
}

var quadIndices = []uint16{0, 2, 1, 0, 3, 2}

// HUD draws rasterized overlay frames as screen-space quads over the scene.
type HUD struct {
	shader   *openglhelper.Shader
	quad     *openglhelper.Mesh
	textures [slotCount]*openglhelper.Texture2D
}

// NewHUD loads the overlay shader and builds the quad.
func NewHUD(cfg *config.Config) (*HUD, error) {
	shader, err := openglhelper.LoadShaderFromFiles(cfg.Shaders.OverlayVertex, cfg.Shaders.OverlayFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to load overlay shader: %w", err)
	}

	return &HUD{
		shader: shader,
		quad:   openglhelper.NewMesh(quadVertices, quadIndices, openglhelper.Attribute{Index: 0, Components: 2}),
	}, nil
}

// Draw uploads frame into the slot's texture and draws it at frame.Origin on
// a screen of the given framebuffer size.
func (h *HUD) Draw(slot hudSlot, frame overlay.Frame, width, height int) error {
	tex := h.textures[slot]
	if tex == nil {
		var err error
		if tex, err = openglhelper.NewTexture2D(frame.Image); err != nil {
			return fmt.Errorf("failed to create overlay texture: %w", err)
		}
		h.textures[slot] = tex
	} else {
		tex.Update(frame.Image)
	}

	r := frame.Rect()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	// image.RGBA is alpha-premultiplied
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	h.shader.Use()
	h.shader.SetVec4("rect", mgl32.Vec4{float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())})
	h.shader.SetVec2("screen", mgl32.Vec2{float32(width), float32(height)})
	h.shader.SetInt("overlay", 0)

	tex.Bind(0)
	h.quad.Draw()

	gl.Disable(gl.BLEND)

	return openglhelper.CheckError("draw overlay")
}

// Delete releases the shader, quad and textures
func (h *HUD) Delete() {
	for i, tex := range h.textures {
		if tex != nil {
			tex.Delete()
			h.textures[i] = nil
		}
	}
	h.quad.Delete()
	h.shader.Delete()
}
