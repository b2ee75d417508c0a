package skybox

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

var (
	// ErrNotSquare is returned when a face image is not square
	ErrNotSquare = errors.New("face image is not square")
	// ErrSizeMismatch is returned when faces do not share one resolution
	ErrSizeMismatch = errors.New("face images differ in size")
)

// FaceSet holds the six decoded face images, indexed by Face.
type FaceSet struct {
	Images [FaceCount]*image.RGBA
	Size   int
}

// Image returns the image for the given face.
func (fs *FaceSet) Image(f Face) *image.RGBA {
	return fs.Images[f]
}

// LoadFaces decodes the six face images from dir. Every face must be square
// and all faces must share the same size.
func LoadFaces(dir string) (*FaceSet, error) {
	fs := &FaceSet{}
	for _, f := range Faces {
		path := filepath.Join(dir, f.FileName())
		img, err := loadRGBA(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s face: %w", f, err)
		}

		size := img.Bounds().Dx()
		if img.Bounds().Dy() != size {
			return nil, fmt.Errorf("%s face %s is %dx%d: %w",
				f, path, img.Bounds().Dx(), img.Bounds().Dy(), ErrNotSquare)
		}
		if fs.Size == 0 {
			fs.Size = size
		} else if size != fs.Size {
			return nil, fmt.Errorf("%s face is %d pixels, expected %d: %w", f, size, fs.Size, ErrSizeMismatch)
		}

		fs.Images[f] = img
	}
	return fs, nil
}

// loadRGBA opens and decodes an image file and converts it to RGBA
func loadRGBA(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	im, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return toRGBA(im), nil
}

// toRGBA converts an image to RGBA with a zero origin
func toRGBA(im image.Image) *image.RGBA {
	bounds := im.Bounds()
	if rgba, ok := im.(*image.RGBA); ok && bounds.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), im, bounds.Min, draw.Src)
	return rgba
}

// Resize returns a copy of the face set with every face scaled to size.
// Faces already at that size are shared, not copied.
func (fs *FaceSet) Resize(size int) *FaceSet {
	if size <= 0 || size == fs.Size {
		return fs
	}
	out := &FaceSet{Size: size}
	for i, img := range fs.Images {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		out.Images[i] = dst
	}
	return out
}

// placeholderColors tints each face so orientation stays readable
var placeholderColors = [FaceCount]color.RGBA{
	PositiveX: {200, 60, 60, 255},
	NegativeX: {90, 30, 30, 255},
	PositiveY: {60, 200, 60, 255},
	NegativeY: {30, 90, 30, 255},
	PositiveZ: {60, 60, 200, 255},
	NegativeZ: {30, 30, 90, 255},
}

// Placeholder returns a face set of solid, per-axis colors.
func Placeholder(size int) *FaceSet {
	fs := &FaceSet{Size: size}
	for _, f := range Faces {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.Draw(img, img.Bounds(), image.NewUniform(placeholderColors[f]), image.Point{}, draw.Src)
		fs.Images[f] = img
	}
	return fs
}

// FlipVertical returns a copy of img with its rows reversed, turning a
// top-left origin image into GL's bottom-left layout.
func FlipVertical(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	rowBytes := bounds.Dx() * 4
	h := bounds.Dy()
	for y := 0; y < h; y++ {
		src := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		dst := out.PixOffset(0, h-1-y)
		copy(out.Pix[dst:dst+rowBytes], img.Pix[src:src+rowBytes])
	}
	return out
}
