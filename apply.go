package cubekit

// strip identifies three facelets on one face that belong to the
// ring of a neighboring face turn.
type strip struct {
	face Face
	idx  [3]int
}

// rings lists, for each face, the four adjacent-face strips moved by a
// clockwise quarter turn, in the order the contents travel: one quarter
// turn moves the contents of rings[f][i] onto rings[f][i+1] (mod 4).
// The two faces on the turn axis do not appear in their own ring.
var rings = [6][4]strip{
	FaceU: {
		{FaceF, [3]int{0, 1, 2}},
		{FaceL, [3]int{0, 1, 2}},
		{FaceB, [3]int{0, 1, 2}},
		{FaceR, [3]int{0, 1, 2}},
	},
	FaceD: {
		{FaceF, [3]int{6, 7, 8}},
		{FaceR, [3]int{6, 7, 8}},
		{FaceB, [3]int{6, 7, 8}},
		{FaceL, [3]int{6, 7, 8}},
	},
	FaceF: {
		{FaceU, [3]int{6, 7, 8}},
		{FaceR, [3]int{0, 3, 6}},
		{FaceD, [3]int{2, 1, 0}},
		{FaceL, [3]int{8, 5, 2}},
	},
	FaceB: {
		{FaceU, [3]int{2, 1, 0}},
		{FaceL, [3]int{0, 3, 6}},
		{FaceD, [3]int{6, 7, 8}},
		{FaceR, [3]int{8, 5, 2}},
	},
	FaceR: {
		{FaceU, [3]int{2, 5, 8}},
		{FaceB, [3]int{6, 3, 0}},
		{FaceD, [3]int{2, 5, 8}},
		{FaceF, [3]int{2, 5, 8}},
	},
	FaceL: {
		{FaceU, [3]int{0, 3, 6}},
		{FaceF, [3]int{0, 3, 6}},
		{FaceD, [3]int{0, 3, 6}},
		{FaceB, [3]int{8, 5, 2}},
	},
}

// Apply performs the given moves in order. Every move is total: it
// permutes existing facelets and can never fail or leave the cube in
// a partially turned state.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		quarters := m.Turn.QuarterTurns()
		for q := 0; q < quarters; q++ {
			c.rotateFaceCW(m.Face)
			c.cycleRingCW(m.Face)
		}
	}
}

// ApplyNotation parses a space-separated move sequence and applies it.
// The cube is only modified if the whole sequence parses.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// rotateFaceCW rotates a face's own 3x3 grid 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// cycleRingCW advances the four adjacent strips of a face one step
// around the ring. Centers (index 4) are never part of any strip.
func (c *Cube) cycleRingCW(face Face) {
	ring := rings[face]

	var saved [3]Color
	last := ring[3]
	for i := 0; i < 3; i++ {
		saved[i] = c.Facelets[last.face][last.idx[i]]
	}

	for s := 3; s > 0; s-- {
		dst, src := ring[s], ring[s-1]
		for i := 0; i < 3; i++ {
			c.Facelets[dst.face][dst.idx[i]] = c.Facelets[src.face][src.idx[i]]
		}
	}

	first := ring[0]
	for i := 0; i < 3; i++ {
		c.Facelets[first.face][first.idx[i]] = saved[i]
	}
}
