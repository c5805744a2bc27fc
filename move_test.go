package cubekit

import (
	"testing"
)

func TestMoveNotationRoundTrip(t *testing.T) {
	for _, m := range AllMoves {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q) failed: %v", m.Notation(), err)
			continue
		}
		if parsed != m {
			t.Errorf("ParseMove(%q) = %v, want %v", m.Notation(), parsed, m)
		}
	}
}

func TestParseMoveLowercase(t *testing.T) {
	m, err := ParseMove("r'")
	if err != nil {
		t.Fatalf("ParseMove(r') failed: %v", err)
	}
	if m != RPrime {
		t.Errorf("ParseMove(r') = %v, want R'", m)
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	bad := []string{"", "X", "R3", "R''", "R2'", "RU", "2"}
	for _, s := range bad {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should fail", s)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	want := []Move{R, U, RPrime, UPrime}
	if len(moves) != len(want) {
		t.Fatalf("ParseMoves returned %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("Move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesFailsOnFirstBadToken(t *testing.T) {
	if _, err := ParseMoves("R U X U'"); err == nil {
		t.Error("ParseMoves should fail on an invalid token")
	}
	if moves, err := ParseMoves("   "); err != nil || len(moves) != 0 {
		t.Errorf("ParseMoves of whitespace should yield an empty sequence, got %v, %v", moves, err)
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	seq := []Move{R, U2, FPrime, D, LPrime, B2}
	parsed, err := ParseMoves(FormatMoves(seq))
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	for i := range seq {
		if parsed[i] != seq[i] {
			t.Errorf("Move %d = %v, want %v", i, parsed[i], seq[i])
		}
	}
}

func TestMoveInverse(t *testing.T) {
	cases := []struct{ m, want Move }{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{UPrime, U},
	}
	for _, tc := range cases {
		if got := tc.m.Inverse(); got != tc.want {
			t.Errorf("%v.Inverse() = %v, want %v", tc.m, got, tc.want)
		}
	}
}

func TestInverseMovesUndoesSequence(t *testing.T) {
	seq := []Move{R, U2, FPrime, D, LPrime, B2, U}
	c := NewCube()
	c.Apply(seq...)
	c.Apply(InverseMoves(seq)...)
	if !c.IsSolved() {
		t.Error("A sequence followed by its inverse should return to solved")
		t.Log(c.String())
	}
}

func TestMoveMerge(t *testing.T) {
	cases := []struct {
		a, b Move
		want Move
		ok   bool
	}{
		{R, R, R2, true},
		{R, R2, RPrime, true},
		{R2, R2, Move{}, false},    // cancels
		{R, RPrime, Move{}, false}, // cancels
		{RPrime, RPrime, R2, true},
		{R, U, Move{}, false}, // different faces
	}
	for _, tc := range cases {
		got, ok := tc.a.Merge(tc.b)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%v.Merge(%v) = %v, %v; want %v, %v", tc.a, tc.b, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMoveDescription(t *testing.T) {
	if got := RPrime.Description(); got != "Rotate the right face counter-clockwise" {
		t.Errorf("unexpected description: %q", got)
	}
}

func TestAllMovesCoversFullMoveSet(t *testing.T) {
	if len(AllMoves) != 18 {
		t.Fatalf("AllMoves has %d entries, want 18", len(AllMoves))
	}
	seen := map[Move]bool{}
	for _, m := range AllMoves {
		if seen[m] {
			t.Errorf("Duplicate move %v in AllMoves", m)
		}
		seen[m] = true
	}
}
