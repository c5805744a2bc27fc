package cubekit

import "sync"

// cubie is the piece-level view of a cube: which corner/edge cubelet
// occupies each position and how it is twisted or flipped. Cubelets
// are numbered by their home position (cornerSlots/edgeSlots order).
//
// A cubie also serves as the action of a move: applying a move to the
// solved cube and extracting the pieces yields exactly the position
// permutation and orientation deltas that move induces.
type cubie struct {
	ep [12]uint8 // edge cubelet at each edge position
	eo [12]uint8 // edge flip at each position (0 or 1)
	cp [8]uint8  // corner cubelet at each corner position
	co [8]uint8  // corner twist at each position (0, 1 or 2)
}

// solvedCubie returns the identity arrangement.
func solvedCubie() cubie {
	var s cubie
	for i := range s.ep {
		s.ep[i] = uint8(i)
	}
	for i := range s.cp {
		s.cp[i] = uint8(i)
	}
	return s
}

// cubieFromCube extracts the piece arrangement of a cube relative to
// the color scheme fixed by its own centers. It fails if any position
// holds an impossible piece (unknown color set or mirrored sticker
// arrangement).
func cubieFromCube(c *Cube) (cubie, error) {
	var s cubie
	sch := schemeOf(c)

	corners := c.Corners()
	for pos, observed := range corners {
		piece, ori, err := sch.identifyCorner(observed)
		if err != nil {
			return cubie{}, err
		}
		s.cp[pos] = uint8(piece)
		s.co[pos] = uint8(ori)
	}

	edges := c.Edges()
	for pos, observed := range edges {
		piece, ori, err := sch.identifyEdge(observed)
		if err != nil {
			return cubie{}, err
		}
		s.ep[pos] = uint8(piece)
		s.eo[pos] = uint8(ori)
	}

	return s, nil
}

// apply composes a move action onto this arrangement: the piece at
// source position a.ep[t] travels to t, picking up the move's
// orientation delta. Orientations add (mod 2 for edges, mod 3 for
// corners) because slot windings are consistent across positions.
func (s *cubie) apply(a *cubie) cubie {
	var n cubie
	for t := 0; t < 12; t++ {
		src := a.ep[t]
		n.ep[t] = s.ep[src]
		n.eo[t] = (s.eo[src] + a.eo[t]) & 1
	}
	for t := 0; t < 8; t++ {
		src := a.cp[t]
		n.cp[t] = s.cp[src]
		n.co[t] = (s.co[src] + a.co[t]) % 3
	}
	return n
}

// moveActions holds the cubie action of each of the 18 moves, indexed
// by moveIndex. The actions are derived from the facelet transition
// engine rather than hand-written tables: each move is applied to a
// solved cube once and the resulting arrangement read back.
var moveActions = sync.OnceValue(func() [18]cubie {
	var actions [18]cubie
	for _, m := range AllMoves {
		c := NewCube()
		c.Apply(m)
		a, err := cubieFromCube(c)
		if err != nil {
			// The transition engine only permutes facelets of a
			// solved cube; extraction cannot fail here.
			panic("cubekit: deriving move action: " + err.Error())
		}
		actions[moveIndex(m)] = a
	}
	return actions
})

// moveIndex maps a Move to its index in AllMoves order.
func moveIndex(m Move) int {
	var t int
	switch m.Turn {
	case CW:
		t = 0
	case CCW:
		t = 1
	case Double:
		t = 2
	}
	return int(m.Face)*3 + t
}

// indexMove is the inverse of moveIndex.
func indexMove(i int) Move {
	return AllMoves[i]
}
