package cubekit

import "fmt"

// ValidateBasic checks the structural invariants of a cube state:
// every face carries exactly 9 facelets, every color appears exactly
// 9 times across the 54 facelets, and the six centers are pairwise
// distinct. It reports the first violated invariant and stops.
func ValidateBasic(c *Cube) error {
	// The array representation fixes the 6x9 shape, so the face
	// configuration check can only trip on hand-built states with
	// out-of-range color values.
	var counts [6]int
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			color := c.Facelets[face][i]
			if int(color) >= len(counts) {
				return fmt.Errorf("%w: face %s holds unknown color %d", ErrInvalidFaceConfiguration, face, color)
			}
			counts[color]++
		}
	}

	for color, count := range counts {
		if count != 9 {
			return &StickerCountError{Color: Color(color), Count: count}
		}
	}

	var seen [6]bool
	for _, face := range Faces {
		center := c.Center(face)
		if seen[center] {
			return fmt.Errorf("%w: color %s is the center of two faces", ErrNonUniqueCenters, center)
		}
		seen[center] = true
	}

	return nil
}

// ValidatePhysical checks whether a structurally valid state is
// physically reachable from solved: the corner twist sum must be
// divisible by 3, the edge flip sum even, and the corner and edge
// permutation parities equal. Pieces are matched against the color
// scheme fixed by the state's own centers; a position holding an
// impossible piece fails the corresponding check.
func ValidatePhysical(c *Cube) error {
	sch := schemeOf(c)

	// Corner orientation. Each corner must show exactly one valid
	// twist of a real piece; the twist values must cancel mod 3.
	var cp [8]uint8
	twistSum := 0
	for pos, observed := range c.Corners() {
		piece, ori, err := sch.identifyCorner(observed)
		if err != nil {
			return err
		}
		cp[pos] = uint8(piece)
		twistSum += ori
	}
	if twistSum%3 != 0 {
		return fmt.Errorf("%w: twist sum %d", ErrInvalidCornerOrientation, twistSum)
	}

	// Edge orientation: flips must cancel mod 2.
	var ep [12]uint8
	flipSum := 0
	for pos, observed := range c.Edges() {
		piece, ori, err := sch.identifyEdge(observed)
		if err != nil {
			return err
		}
		ep[pos] = uint8(piece)
		flipSum += ori
	}
	if flipSum%2 != 0 {
		return fmt.Errorf("%w: flip sum %d", ErrInvalidEdgeOrientation, flipSum)
	}

	// Permutation parity: corners and edges must form permutations
	// (piece color sets are locally unique, so duplicates mean a
	// physically impossible arrangement) with equal parity.
	cornerParity, ok := permutationParity(cp[:])
	if !ok {
		return fmt.Errorf("%w: duplicate corner piece", ErrInvalidPermutationParity)
	}
	edgeParity, ok := permutationParity(ep[:])
	if !ok {
		return fmt.Errorf("%w: duplicate edge piece", ErrInvalidPermutationParity)
	}
	if cornerParity != edgeParity {
		return fmt.Errorf("%w: corner parity %d, edge parity %d", ErrInvalidPermutationParity, cornerParity, edgeParity)
	}

	return nil
}

// Validate runs the basic and physical-legality checks in order,
// short-circuiting on the first failure.
func Validate(c *Cube) error {
	if err := ValidateBasic(c); err != nil {
		return err
	}
	return ValidatePhysical(c)
}

// IsValid reports whether the state passes full validation.
func IsValid(c *Cube) bool {
	return Validate(c) == nil
}

// permutationParity decomposes perm into disjoint cycles and returns
// the parity (0 even, 1 odd) accumulated as (cycle length - 1) per
// cycle. ok is false when perm is not a permutation.
func permutationParity(perm []uint8) (parity int, ok bool) {
	n := len(perm)
	seen := make([]bool, n)
	for _, v := range perm {
		if int(v) >= n || seen[v] {
			return 0, false
		}
		seen[v] = true
	}

	visited := make([]bool, n)
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		length := 0
		for at := start; !visited[at]; at = int(perm[at]) {
			visited[at] = true
			length++
		}
		parity ^= (length - 1) & 1
	}
	return parity, true
}
