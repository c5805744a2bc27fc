package cubekit

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// QuarterTurns returns how many clockwise quarter turns implement this
// turn: 1 for CW, 3 for CCW, 2 for Double.
func (t Turn) QuarterTurns() int {
	switch t {
	case CW:
		return 1
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 0
	}
}

func (t Turn) String() string {
	switch t {
	case CW:
		return ""
	case CCW:
		return "'"
	case Double:
		return "2"
	default:
		return "?"
	}
}

// Move represents a single face turn. Moves are immutable values.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return m.Face.String() + m.Turn.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Description returns a human-readable explanation of the move,
// e.g. "Rotate the right face counter-clockwise".
func (m Move) Description() string {
	dir := "clockwise"
	switch m.Turn {
	case CCW:
		dir = "counter-clockwise"
	case Double:
		dir = "180 degrees"
	}
	return fmt.Sprintf("Rotate the %s face %s", m.Face.Name(), dir)
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2 (a half turn is its own inverse).
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// Merge combines two same-face moves into one. It returns the merged
// move, or ok=false if the faces differ or the moves cancel outright.
func (m Move) Merge(other Move) (Move, bool) {
	if m.Face != other.Face {
		return Move{}, false
	}

	combined := int(m.Turn) + int(other.Turn)
	// Values outside [-2,2] wrap; -2 and 2 are both half turns.
	if combined > 2 {
		combined -= 4
	} else if combined < -2 {
		combined += 4
	}

	if combined == 0 {
		return Move{}, false // Moves cancel out
	}
	if combined == -2 {
		combined = 2
	}

	return Move{Face: m.Face, Turn: Turn(combined)}, true
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidNotation for any other letter or trailing content.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	face, ok := ParseFace(s[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
