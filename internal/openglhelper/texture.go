package openglhelper

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// ErrFramebufferIncomplete is returned when a blit target cannot be completed.
var ErrFramebufferIncomplete = errors.New("framebuffer incomplete")

// Texture2D is an RGBA8 2D texture
type Texture2D struct {
	ID     uint32
	Width  int32
	Height int32
}

// NewTexture2D uploads an RGBA image. Rows are uploaded in image order, so
// callers wanting GL's bottom-left origin must flip first.
func NewTexture2D(img *image.RGBA) (*Texture2D, error) {
	bounds := img.Bounds()
	t := &Texture2D{Width: int32(bounds.Dx()), Height: int32(bounds.Dy())}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.Width, t.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := CheckError("upload texture"); err != nil {
		t.Delete()
		return nil, err
	}
	return t, nil
}

// Update replaces the texture contents, reallocating when the size changed.
func (t *Texture2D) Update(img *image.RGBA) {
	bounds := img.Bounds()
	w, h := int32(bounds.Dx()), int32(bounds.Dy())

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if w != t.Width || h != t.Height {
		t.Width, t.Height = w, h
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Bind binds the texture to the given texture unit
func (t *Texture2D) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture
func (t *Texture2D) Delete() {
	gl.DeleteTextures(1, &t.ID)
}

// Cubemap is a six-layer RGBA8 cube texture addressed by direction
type Cubemap struct {
	ID   uint32
	Size int32
}

// NewCubemap allocates an empty cube map with square faces of size pixels.
func NewCubemap(size int) (*Cubemap, error) {
	c := &Cubemap{Size: int32(size)}

	gl.GenTextures(1, &c.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)

	for layer := uint32(0); layer < 6; layer++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+layer, 0, gl.RGBA8, c.Size, c.Size, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	if err := CheckError("allocate cube map"); err != nil {
		c.Delete()
		return nil, err
	}
	return c, nil
}

// BlitFrom copies src into one layer (0 = +X ... 5 = -Z) through a pair of
// temporary framebuffers, scaling with linear filtering.
func (c *Cubemap) BlitFrom(layer int, src *Texture2D) error {
	var fbos [2]uint32
	gl.GenFramebuffers(2, &fbos[0])
	defer gl.DeleteFramebuffers(2, &fbos[0])

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fbos[0])
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, src.ID, 0)

	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fbos[1])
	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
		gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(layer), c.ID, 0)

	defer func() {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	}()

	if status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("read framebuffer status 0x%x: %w", status, ErrFramebufferIncomplete)
	}
	if status := gl.CheckFramebufferStatus(gl.DRAW_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("draw framebuffer status 0x%x: %w", status, ErrFramebufferIncomplete)
	}

	gl.BlitFramebuffer(
		0, 0, src.Width, src.Height,
		0, 0, c.Size, c.Size,
		gl.COLOR_BUFFER_BIT, gl.LINEAR,
	)

	return CheckError(fmt.Sprintf("blit cube layer %d", layer))
}

// Bind binds the cube map to the given texture unit
func (c *Cubemap) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)
}

// Delete releases the cube map
func (c *Cubemap) Delete() {
	gl.DeleteTextures(1, &c.ID)
}

// GLError is a non-zero value reported by glGetError
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("%s: GL error 0x%x", e.Op, e.Code)
}

// CheckError drains the GL error queue and returns the first error, if any.
func CheckError(op string) error {
	var first error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == nil {
			first = &GLError{Op: op, Code: code}
		}
	}
	return first
}
