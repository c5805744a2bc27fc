package cubekit

import "fmt"

// SolveStep is one move of a solution together with the reduction
// phase that produced it, for UI narration.
type SolveStep struct {
	Move  Move
	Phase SolvePhase
}

// Solution is an ordered move sequence that drives a cube to solved.
type Solution struct {
	Steps []SolveStep
}

// Moves returns the bare move sequence of the solution.
func (s *Solution) Moves() []Move {
	moves := make([]Move, len(s.Steps))
	for i, step := range s.Steps {
		moves[i] = step.Move
	}
	return moves
}

// Notation returns the solution in space-separated cube notation.
func (s *Solution) Notation() string {
	return FormatMoves(s.Moves())
}

// Len returns the number of moves.
func (s *Solution) Len() int {
	return len(s.Steps)
}

// Solver phase tables. Each phase restricts the move set so that the
// invariants established by earlier phases are preserved: after the
// edges are oriented, front/back quarter turns are banned; after the
// corners are oriented and the middle slice gathered, left/right
// quarter turns are banned too; the final phase uses half turns only.
var phaseMoveSets = [4][]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	{0, 1, 2, 3, 4, 5, 8, 11, 12, 13, 14, 15, 16, 17},
	{0, 1, 2, 3, 4, 5, 8, 11, 14, 17},
	{2, 5, 8, 11, 14, 17},
}

// Solve computes a move sequence that drives the given state to the
// solved state. Input failing Validate is refused with the validator's
// error; an already-solved cube yields an empty solution. The solver
// runs a four-phase group reduction (Thistlethwaite), searching each
// phase with a bidirectional breadth-first search over phase keys.
// Each phase's key space is finite and explored at most once per key,
// so Solve always terminates; in practice solutions stay under 50
// moves.
func Solve(c *Cube) (*Solution, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	state, err := cubieFromCube(c)
	if err != nil {
		// Validation already identified every piece.
		return nil, err
	}

	actions := moveActions()
	goal := solvedCubie()
	sol := &Solution{}

	for phase := 0; phase < 4; phase++ {
		path, err := searchPhase(state, goal, phase, &actions)
		if err != nil {
			return nil, err
		}
		for _, m := range mergeMoves(pathMoves(path)) {
			sol.Steps = append(sol.Steps, SolveStep{Move: m, Phase: SolvePhase(phase)})
			state = state.apply(&actions[moveIndex(m)])
		}
	}

	if state != goal {
		return nil, fmt.Errorf("cubekit: solver finished without reaching solved state")
	}
	return sol, nil
}

// pathMoves converts move indices to Moves.
func pathMoves(path []int) []Move {
	moves := make([]Move, len(path))
	for i, mi := range path {
		moves[i] = indexMove(mi)
	}
	return moves
}

// mergeMoves collapses adjacent same-face moves. The seam where the
// two halves of a bidirectional search meet can produce mergeable or
// cancelling pairs.
func mergeMoves(moves []Move) []Move {
	out := moves[:0:0]
	for _, m := range moves {
		if len(out) > 0 && out[len(out)-1].Face == m.Face {
			prev := out[len(out)-1]
			out = out[:len(out)-1]
			if merged, ok := prev.Merge(m); ok {
				out = append(out, merged)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// phaseKey computes the invariant each phase searches on. Two states
// with equal keys are interchangeable for the remainder of the phase:
// the key of a successor depends only on the key of its parent and
// the move applied, so deduplicating on keys is sound.
func phaseKey(s *cubie, phase int) string {
	switch phase {
	case 0:
		// Edge orientation only.
		var buf [12]byte
		for i, v := range s.eo {
			buf[i] = v
		}
		return string(buf[:])
	case 1:
		// Corner orientation plus middle-slice edge membership.
		var buf [20]byte
		for i, v := range s.co {
			buf[i] = v
		}
		for i, v := range s.ep {
			if v >= 8 {
				buf[8+i] = 1
			}
		}
		return string(buf[:])
	case 2:
		// Home slice of every edge, diagonal-pair class of every
		// corner, and corner permutation parity. Reaching the solved
		// key leaves a state solvable by half turns alone.
		var buf [21]byte
		for i, v := range s.ep {
			if v >= 8 {
				buf[i] = 2
			} else {
				buf[i] = v & 1
			}
		}
		for i, v := range s.cp {
			buf[12+i] = v & 5
		}
		parity := byte(0)
		for i := 0; i < 8; i++ {
			for j := i + 1; j < 8; j++ {
				if s.cp[i] > s.cp[j] {
					parity ^= 1
				}
			}
		}
		buf[20] = parity
		return string(buf[:])
	default:
		// Full state.
		var buf [40]byte
		for i, v := range s.ep {
			buf[i] = v
		}
		for i, v := range s.eo {
			buf[12+i] = v
		}
		for i, v := range s.cp {
			buf[24+i] = v
		}
		for i, v := range s.co {
			buf[32+i] = v
		}
		return string(buf[:])
	}
}

// bfsNode is one explored arrangement with the move path that reached
// it from its side's root.
type bfsNode struct {
	state cubie
	path  []int
}

// searchPhase finds a move sequence, drawn from the phase's move set,
// that brings start's phase key to goal's. It runs a breadth-first
// search from both ends simultaneously, expanding the smaller side
// first, and joins the two half-paths when the frontiers meet. Every
// key is visited at most once per side, so the search exhausts the
// reachable key space and terminates even without a depth cap.
func searchPhase(start, goal cubie, phase int, actions *[18]cubie) ([]int, error) {
	startKey := phaseKey(&start, phase)
	goalKey := phaseKey(&goal, phase)
	if startKey == goalKey {
		return nil, nil
	}

	moves := phaseMoveSets[phase]

	visitedF := map[string]bfsNode{startKey: {state: start}}
	visitedB := map[string]bfsNode{goalKey: {state: goal}}
	frontierF := []bfsNode{{state: start}}
	frontierB := []bfsNode{{state: goal}}

	for len(frontierF) > 0 && len(frontierB) > 0 {
		forward := len(frontierF) <= len(frontierB)
		frontier, visited, other := frontierF, visitedF, visitedB
		if !forward {
			frontier, visited, other = frontierB, visitedB, visitedF
		}

		var next []bfsNode
		for _, node := range frontier {
			lastFace := Face(-1)
			if len(node.path) > 0 {
				lastFace = indexMove(node.path[len(node.path)-1]).Face
			}
			for _, mi := range moves {
				if indexMove(mi).Face == lastFace {
					continue
				}
				ns := node.state.apply(&actions[mi])
				key := phaseKey(&ns, phase)
				if _, ok := visited[key]; ok {
					continue
				}
				path := make([]int, len(node.path)+1)
				copy(path, node.path)
				path[len(node.path)] = mi
				nn := bfsNode{state: ns, path: path}
				visited[key] = nn
				next = append(next, nn)

				if match, ok := other[key]; ok {
					if forward {
						return joinPaths(path, match.path), nil
					}
					return joinPaths(match.path, path), nil
				}
			}
		}

		if forward {
			frontierF = next
		} else {
			frontierB = next
		}
	}

	// A validated state always lies in the coset the phase's move set
	// can reach, so an exhausted frontier means the input was not one.
	return nil, fmt.Errorf("cubekit: solver phase %d found no path to the solved coset", phase+1)
}

// joinPaths splices a forward half-path with a backward half-path.
// The backward path was walked from the goal, so it is replayed
// inverted and in reverse order.
func joinPaths(forward, backward []int) []int {
	path := make([]int, 0, len(forward)+len(backward))
	path = append(path, forward...)
	for i := len(backward) - 1; i >= 0; i-- {
		path = append(path, moveIndex(indexMove(backward[i]).Inverse()))
	}
	return path
}
