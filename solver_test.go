package cubekit

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSolveSolvedCube(t *testing.T) {
	sol, err := Solve(NewCube())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Len() != 0 {
		t.Errorf("Solving a solved cube should yield no moves, got %q", sol.Notation())
	}
}

func TestSolveRefusesInvalidCube(t *testing.T) {
	c := NewCube()
	c.Facelets[FaceU][7], c.Facelets[FaceF][1] = c.Facelets[FaceF][1], c.Facelets[FaceU][7]

	if _, err := Solve(c); !errors.Is(err, ErrInvalidEdgeOrientation) {
		t.Errorf("Solve of a flipped-edge cube should fail validation, got %v", err)
	}
}

func TestSolveSingleMove(t *testing.T) {
	c := NewCube()
	c.Apply(R)

	sol, err := Solve(c)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	c.Apply(sol.Moves()...)
	if !c.IsSolved() {
		t.Error("Applying the solution should solve the cube")
		t.Log(c.String())
	}
}

func TestSolveRandomScrambles(t *testing.T) {
	iterations := 1000
	if testing.Short() {
		iterations = 20
	}

	rng := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < iterations; i++ {
		scramble := GenerateScrambleWithRand(5+rng.IntN(46), rng)
		c := NewCube()
		c.Apply(scramble...)

		sol, err := Solve(c)
		if err != nil {
			t.Fatalf("Solve failed for scramble %q: %v", FormatMoves(scramble), err)
		}

		c.Apply(sol.Moves()...)
		if !c.IsSolved() {
			t.Fatalf("Solution %q does not solve scramble %q", sol.Notation(), FormatMoves(scramble))
		}
		if sol.Len() > 50 {
			t.Errorf("Solution of %d moves exceeds the expected 50-move ceiling", sol.Len())
		}
	}
}

func TestSolveDeepSliceSeparation(t *testing.T) {
	// This scramble needs more than 13 moves in the slice-separation
	// phase, past the classic Thistlethwaite stage-3 bound; the search
	// must keep going rather than give up at a fixed depth.
	c := NewCube()
	if err := c.ApplyNotation("D2 F' B F' L2 D2 F2 D' L U' F R' B' R2 D' L2 R B' L' U2 F2 B U2 R B2 F2"); err != nil {
		t.Fatalf("ApplyNotation failed: %v", err)
	}

	sol, err := Solve(c)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	c.Apply(sol.Moves()...)
	if !c.IsSolved() {
		t.Error("Applying the solution should solve the cube")
		t.Log(c.String())
	}
}

func TestSolvePhasesAreOrdered(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < 10; i++ {
		c := NewCube()
		c.Apply(GenerateScrambleWithRand(30, rng)...)

		sol, err := Solve(c)
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}

		last := PhaseOrientEdges
		for _, step := range sol.Steps {
			if step.Phase < last {
				t.Fatalf("Phase %v follows %v in %q", step.Phase, last, sol.Notation())
			}
			last = step.Phase
		}
	}
}

func TestSolveDecodedState(t *testing.T) {
	c := NewCube()
	c.Apply(GenerateScramble(25)...)
	decoded, err := Decode(c.Encode())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	sol, err := Solve(decoded)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	decoded.Apply(sol.Moves()...)
	if !decoded.IsSolved() {
		t.Error("Solution should solve the decoded state")
	}
}

func TestSolveRecoloredCube(t *testing.T) {
	// Homes derive from centers, so a legal state in a different color
	// scheme is solvable too.
	c := NewCube()
	c.Facelets[FaceU], c.Facelets[FaceD] = c.Facelets[FaceD], c.Facelets[FaceU]
	c.Apply(GenerateScramble(20)...)

	sol, err := Solve(c)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	c.Apply(sol.Moves()...)
	if !c.IsSolved() {
		t.Error("Solution should solve the recolored cube")
	}
}

func TestSolutionNotationParsesBack(t *testing.T) {
	c := NewCube()
	c.Apply(GenerateScramble(20)...)

	sol, err := Solve(c)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	moves, err := ParseMoves(sol.Notation())
	if err != nil {
		t.Fatalf("Solution notation should parse: %v", err)
	}
	if len(moves) != sol.Len() {
		t.Errorf("Parsed %d moves, solution has %d", len(moves), sol.Len())
	}
}
