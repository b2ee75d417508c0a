package skybox

import "fmt"

// Face identifies one side of the cube map, in GL layer order.
type Face int

const (
	PositiveX Face = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// FaceCount is the number of cube faces
const FaceCount = 6

// Faces lists every face in layer order.
var Faces = [FaceCount]Face{PositiveX, NegativeX, PositiveY, NegativeY, PositiveZ, NegativeZ}

var faceFiles = [FaceCount]string{
	PositiveX: "right.png",
	NegativeX: "left.png",
	PositiveY: "top.png",
	NegativeY: "bottom.png",
	PositiveZ: "front.png",
	NegativeZ: "back.png",
}

var faceNames = [FaceCount]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// FileName returns the image file loaded for the face.
func (f Face) FileName() string {
	if f < 0 || f >= FaceCount {
		return ""
	}
	return faceFiles[f]
}

func (f Face) String() string {
	if f < 0 || f >= FaceCount {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// BlitTarget pairs a loaded face image with the cube layer it is copied into.
type BlitTarget struct {
	Source Face
	Layer  Face
}

// BlitTargets returns the face-to-layer copy plan. Each image lands on its
// own layer unless swapVertical is set, in which case top and bottom trade
// places.
func BlitTargets(swapVertical bool) [FaceCount]BlitTarget {
	var targets [FaceCount]BlitTarget
	for i, f := range Faces {
		src := f
		if swapVertical {
			switch f {
			case PositiveY:
				src = NegativeY
			case NegativeY:
				src = PositiveY
			}
		}
		targets[i] = BlitTarget{Source: src, Layer: f}
	}
	return targets
}
