package cubekit

import "math/rand/v2"

// GenerateScramble produces n random legal moves suitable for
// scrambling a solved cube. No two consecutive moves turn the same
// face, so the sequence never trivially collapses. n <= 0 yields an
// empty sequence.
func GenerateScramble(n int) []Move {
	return generateScramble(n, func(max int) int { return rand.IntN(max) })
}

// GenerateScrambleWithRand is GenerateScramble with a caller-supplied
// source, for reproducible scrambles.
func GenerateScrambleWithRand(n int, rng *rand.Rand) []Move {
	return generateScramble(n, func(max int) int { return rng.IntN(max) })
}

func generateScramble(n int, intn func(int) int) []Move {
	if n <= 0 {
		return []Move{}
	}

	turns := []Turn{CW, CCW, Double}
	moves := make([]Move, 0, n)
	lastFace := Face(-1)

	for len(moves) < n {
		face := Faces[intn(len(Faces))]
		if face == lastFace {
			continue
		}
		moves = append(moves, Move{Face: face, Turn: turns[intn(len(turns))]})
		lastFace = face
	}

	return moves
}
