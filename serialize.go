package cubekit

import (
	"fmt"
	"strings"
)

// encodeOrder is the fixed face order of the 54-character encoding.
var encodeOrder = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Encode serializes the cube as a 54-character string, one color code
// per facelet, faces concatenated in the order up, down, left, right,
// front, back. The solved cube encodes to
// "WWWWWWWWWYYYYYYYYYGGGGGGGGGBBBBBBBBBRRRRRRRRROOOOOOOOO".
func (c *Cube) Encode() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, face := range encodeOrder {
		for i := 0; i < 9; i++ {
			sb.WriteString(c.Facelets[face][i].String())
		}
	}
	return sb.String()
}

// Decode parses a 54-character encoding back into a Cube. It fails
// with ErrInvalidEncoding if the length is not 54 or any character is
// not a valid color code. No legality checking is performed; pass the
// result through Validate before solving.
func Decode(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: length %d, want 54", ErrInvalidEncoding, len(s))
	}

	c := &Cube{}
	for fi, face := range encodeOrder {
		for i := 0; i < 9; i++ {
			color, ok := ParseColor(s[fi*9+i])
			if !ok {
				return nil, fmt.Errorf("%w: bad color code %q at offset %d", ErrInvalidEncoding, s[fi*9+i], fi*9+i)
			}
			c.Facelets[face][i] = color
		}
	}
	return c, nil
}
