package render

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/skyview/internal/config"
	"github.com/leterax/skyview/internal/openglhelper"
	"github.com/leterax/skyview/pkg/skybox"
)

// Skybox is the GPU side of the environment cube: six source textures, the
// cube sampler they are blitted into, and the box mesh it is drawn on.
type Skybox struct {
	mesh    *openglhelper.Mesh
	shader  *openglhelper.Shader
	faces   [skybox.FaceCount]*openglhelper.Texture2D
	cubemap *openglhelper.Cubemap

	swapVertical bool
}

// NewSkybox loads the face images named by cfg and builds a box whose
// vertices sit at +-far/2. The cube sampler is allocated empty; call
// PopulateCubeSampler before the first Draw.
func NewSkybox(cfg *config.Config, far float32) (*Skybox, error) {
	start := time.Now()

	faces, err := skybox.LoadFaces(cfg.Skybox.Dir)
	if err != nil {
		if !cfg.Skybox.PlaceholderOnError {
			return nil, fmt.Errorf("failed to load skybox: %w", err)
		}
		log.Printf("Warning: %v; using placeholder faces", err)
		faces = skybox.Placeholder(cfg.Skybox.FaceSize)
	}

	s := &Skybox{swapVertical: cfg.Skybox.SwapVerticalFaces}

	for _, f := range skybox.Faces {
		tex, err := openglhelper.NewTexture2D(skybox.FlipVertical(faces.Image(f)))
		if err != nil {
			s.Delete()
			return nil, fmt.Errorf("failed to upload %s face: %w", f, err)
		}
		s.faces[f] = tex
	}

	s.mesh = openglhelper.NewMesh(skybox.VertexData(far), skybox.Indices(), openglhelper.Attribute{Index: 0, Components: skybox.FloatsPerVertex})

	s.shader, err = openglhelper.LoadShaderFromFiles(cfg.Shaders.SkyboxVertex, cfg.Shaders.SkyboxFragment)
	if err != nil {
		s.Delete()
		return nil, fmt.Errorf("failed to load skybox shader: %w", err)
	}

	s.cubemap, err = openglhelper.NewCubemap(cfg.Skybox.FaceSize)
	if err != nil {
		s.Delete()
		return nil, err
	}

	log.Printf("Loaded %dpx skybox faces from %s in %v", faces.Size, cfg.Skybox.Dir, time.Since(start))
	return s, nil
}

// PopulateCubeSampler copies every face texture into its cube layer.
func (s *Skybox) PopulateCubeSampler() error {
	start := time.Now()

	var errs []error
	for _, t := range skybox.BlitTargets(s.swapVertical) {
		if err := s.cubemap.BlitFrom(int(t.Layer), s.faces[t.Source]); err != nil {
			errs = append(errs, fmt.Errorf("%s into %s: %w", t.Source, t.Layer, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to populate cube sampler: %w", err)
	}

	log.Printf("Populated cube sampler (%dpx) in %v", s.cubemap.Size, time.Since(start))
	return nil
}

// Draw renders the box with depth test LESS and clockwise faces culled.
func (s *Skybox) Draw(view, projection mgl32.Mat4) error {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)

	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)

	s.shader.Use()
	s.shader.SetMat4("view", view)
	s.shader.SetMat4("perspective", projection)
	s.shader.SetInt("skybox", 0)

	s.cubemap.Bind(0)
	s.mesh.Draw()

	return openglhelper.CheckError("draw skybox")
}

// Delete releases all GPU resources. It is safe on a partially built Skybox.
func (s *Skybox) Delete() {
	for i, tex := range s.faces {
		if tex != nil {
			tex.Delete()
			s.faces[i] = nil
		}
	}
	if s.mesh != nil {
		s.mesh.Delete()
		s.mesh = nil
	}
	if s.shader != nil {
		s.shader.Delete()
		s.shader = nil
	}
	if s.cubemap != nil {
		s.cubemap.Delete()
		s.cubemap = nil
	}
}
