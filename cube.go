package cubekit

import "fmt"

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Left face when solved
	Blue   Color = 3 // Right face when solved
	Red    Color = 4 // Front face when solved
	Orange Color = 5 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// ParseColor converts a single-letter color code back into a Color.
func ParseColor(b byte) (Color, bool) {
	switch b {
	case 'W', 'w':
		return White, true
	case 'Y', 'y':
		return Yellow, true
	case 'G', 'g':
		return Green, true
	case 'B', 'b':
		return Blue, true
	case 'R', 'r':
		return Red, true
	case 'O', 'o':
		return Orange, true
	default:
		return 0, false
	}
}

// Face represents a cube face. The six faces pair up along three axes:
// up/down, left/right and front/back.
type Face int

const (
	FaceU Face = 0 // Up (White)
	FaceD Face = 1 // Down (Yellow)
	FaceF Face = 2 // Front (Red)
	FaceB Face = 3 // Back (Orange)
	FaceR Face = 4 // Right (Blue)
	FaceL Face = 5 // Left (Green)
)

// Faces lists all six faces in storage order.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Name returns the long face name used in move descriptions.
func (f Face) Name() string {
	switch f {
	case FaceU:
		return "up"
	case FaceD:
		return "down"
	case FaceF:
		return "front"
	case FaceB:
		return "back"
	case FaceR:
		return "right"
	case FaceL:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the face on the other end of the same axis.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	default:
		return f
	}
}

// ParseFace converts a face letter into a Face.
func ParseFace(b byte) (Face, bool) {
	switch b {
	case 'U', 'u':
		return FaceU, true
	case 'D', 'd':
		return FaceD, true
	case 'F', 'f':
		return FaceF, true
	case 'B', 'b':
		return FaceB, true
	case 'R', 'r':
		return FaceR, true
	case 'L', 'l':
		return FaceL, true
	default:
		return 0, false
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// NewCube creates a solved cube with the standard scheme:
// white on top, red in front, green on the left.
func NewCube() *Cube {
	c := &Cube{}
	for _, face := range Faces {
		color := SolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// SolvedColor returns the color of a face in the standard scheme.
func SolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Red
	case FaceB:
		return Orange
	case FaceR:
		return Blue
	case FaceL:
		return Green
	default:
		return White
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Get returns the color of a single facelet.
// The index must be in [0,8]; any valid Face is accepted.
func (c *Cube) Get(face Face, index int) (Color, error) {
	if index < 0 || index > 8 {
		return 0, fmt.Errorf("%w: facelet index %d", ErrOutOfRange, index)
	}
	return c.Facelets[face][index], nil
}

// Set overwrites the color of a single facelet. It is a plain value
// update with no adjacency side effects; use Apply for face turns.
func (c *Cube) Set(face Face, index int, color Color) error {
	if index < 0 || index > 8 {
		return fmt.Errorf("%w: facelet index %d", ErrOutOfRange, index)
	}
	c.Facelets[face][index] = color
	return nil
}

// Center returns the center color of a face.
func (c *Cube) Center(face Face) Color {
	return c.Facelets[face][4]
}

// IsSolved returns true if every facelet matches its face's center.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		center := c.Facelets[face][4]
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != center {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[FaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				result += c.Facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[FaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
