package cubekit

import "fmt"

// slot addresses a single facelet by face and index.
type slot struct {
	face Face
	idx  int
}

// Corner positions, indexed 0-7. Each entry lists the three facelet
// slots meeting at that geometric corner: the up/down slot first, then
// the remaining two clockwise as seen from outside the cube. The
// consistent winding keeps corner orientation additive mod 3 across
// move composition.
const (
	cornerURF = iota
	cornerUFL
	cornerULB
	cornerUBR
	cornerDFR
	cornerDLF
	cornerDBL
	cornerDRB
)

var cornerSlots = [8][3]slot{
	cornerURF: {{FaceU, 8}, {FaceR, 0}, {FaceF, 2}},
	cornerUFL: {{FaceU, 6}, {FaceF, 0}, {FaceL, 2}},
	cornerULB: {{FaceU, 0}, {FaceL, 0}, {FaceB, 2}},
	cornerUBR: {{FaceU, 2}, {FaceB, 0}, {FaceR, 2}},
	cornerDFR: {{FaceD, 2}, {FaceF, 8}, {FaceR, 6}},
	cornerDLF: {{FaceD, 0}, {FaceL, 8}, {FaceF, 6}},
	cornerDBL: {{FaceD, 6}, {FaceB, 8}, {FaceL, 6}},
	cornerDRB: {{FaceD, 8}, {FaceR, 8}, {FaceB, 6}},
}

// Edge positions, indexed 0-11. The up/down slot comes first for the
// eight top/bottom-layer edges; the four middle-layer edges list their
// front/back slot first. Middle-layer edges occupy indices 8-11.
const (
	edgeUR = iota
	edgeUF
	edgeUL
	edgeUB
	edgeDR
	edgeDF
	edgeDL
	edgeDB
	edgeFR
	edgeFL
	edgeBL
	edgeBR
)

var edgeSlots = [12][2]slot{
	edgeUR: {{FaceU, 5}, {FaceR, 1}},
	edgeUF: {{FaceU, 7}, {FaceF, 1}},
	edgeUL: {{FaceU, 3}, {FaceL, 1}},
	edgeUB: {{FaceU, 1}, {FaceB, 1}},
	edgeDR: {{FaceD, 5}, {FaceR, 7}},
	edgeDF: {{FaceD, 1}, {FaceF, 7}},
	edgeDL: {{FaceD, 3}, {FaceL, 7}},
	edgeDB: {{FaceD, 7}, {FaceB, 7}},
	edgeFR: {{FaceF, 5}, {FaceR, 3}},
	edgeFL: {{FaceF, 3}, {FaceL, 5}},
	edgeBL: {{FaceB, 5}, {FaceL, 3}},
	edgeBR: {{FaceB, 3}, {FaceR, 5}},
}

// CornerPiece is the ordered color triple read from one corner
// position, in cornerSlots order. Derived on demand, never stored.
type CornerPiece [3]Color

// EdgePiece is the ordered color pair read from one edge position.
type EdgePiece [2]Color

// Corners reads the eight corner pieces from the cube.
// Order: URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB.
func (c *Cube) Corners() [8]CornerPiece {
	var out [8]CornerPiece
	for pos, slots := range cornerSlots {
		for i, s := range slots {
			out[pos][i] = c.Facelets[s.face][s.idx]
		}
	}
	return out
}

// Edges reads the twelve edge pieces from the cube.
// Order: UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR.
func (c *Cube) Edges() [12]EdgePiece {
	var out [12]EdgePiece
	for pos, slots := range edgeSlots {
		for i, s := range slots {
			out[pos][i] = c.Facelets[s.face][s.idx]
		}
	}
	return out
}

// scheme is the face-to-color assignment fixed by a cube's centers.
type scheme [6]Color

func schemeOf(c *Cube) scheme {
	var s scheme
	for _, f := range Faces {
		s[f] = c.Center(f)
	}
	return s
}

// homeCorner returns the colors corner k shows in a solved cube with
// this scheme, in slot order.
func (s scheme) homeCorner(k int) CornerPiece {
	var p CornerPiece
	for i, sl := range cornerSlots[k] {
		p[i] = s[sl.face]
	}
	return p
}

func (s scheme) homeEdge(k int) EdgePiece {
	var p EdgePiece
	for i, sl := range edgeSlots[k] {
		p[i] = s[sl.face]
	}
	return p
}

// identifyCorner matches an observed corner against the scheme's home
// pieces. It returns the piece index and its orientation: the slot
// index (0-2) at which the piece's up/down-axis color sits. A color
// set matching no real piece, and a matching set arranged with the
// wrong chirality, are both reported as errors.
func (s scheme) identifyCorner(observed CornerPiece) (piece, orientation int, err error) {
	for k := 0; k < 8; k++ {
		home := s.homeCorner(k)
		if !sameColorSet3(observed, home) {
			continue
		}
		// Rotation r matches when the home color j shows at slot (j+r)%3.
		for r := 0; r < 3; r++ {
			if observed[r%3] == home[0] && observed[(1+r)%3] == home[1] && observed[(2+r)%3] == home[2] {
				return k, r, nil
			}
		}
		return 0, 0, fmt.Errorf("%w: corner %v is mirrored", ErrInvalidCornerOrientation, observed)
	}
	return 0, 0, fmt.Errorf("%w: no corner piece has colors %v", ErrInvalidPermutationParity, observed)
}

// identifyEdge matches an observed edge against the scheme's home
// pieces, returning the piece index and flip state (0 or 1).
func (s scheme) identifyEdge(observed EdgePiece) (piece, orientation int, err error) {
	for k := 0; k < 12; k++ {
		home := s.homeEdge(k)
		if observed == home {
			return k, 0, nil
		}
		if observed[0] == home[1] && observed[1] == home[0] {
			return k, 1, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: no edge piece has colors %v", ErrInvalidPermutationParity, observed)
}

func sameColorSet3(a, b CornerPiece) bool {
	var have [6]int
	for _, c := range a {
		have[c]++
	}
	for _, c := range b {
		have[c]--
	}
	return have == [6]int{}
}
