package cubekit

import (
	"errors"
	"strings"
	"testing"
)

const solvedEncoding = "WWWWWWWWW" + "YYYYYYYYY" + "GGGGGGGGG" + "BBBBBBBBB" + "RRRRRRRRR" + "OOOOOOOOO"

func TestEncodeSolved(t *testing.T) {
	got := NewCube().Encode()
	if got != solvedEncoding {
		t.Errorf("Encode of solved cube = %q, want %q", got, solvedEncoding)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCube()
	c.Apply(GenerateScramble(40)...)

	decoded, err := Decode(c.Encode())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if *decoded != *c {
		t.Error("Decode(Encode(c)) should reproduce c")
		t.Log(c.String())
		t.Log(decoded.String())
	}
}

func TestDecodeSolved(t *testing.T) {
	c, err := Decode(solvedEncoding)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !c.IsSolved() {
		t.Error("Decoded solved encoding should be solved")
	}
}

func TestDecodeLowercase(t *testing.T) {
	c, err := Decode(strings.ToLower(solvedEncoding))
	if err != nil {
		t.Fatalf("Decode of lowercase encoding failed: %v", err)
	}
	if !c.IsSolved() {
		t.Error("Lowercase encoding should decode to the same state")
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		solvedEncoding[:53],  // too short
		solvedEncoding + "W", // too long
		strings.Replace(solvedEncoding, "W", "X", 1), // unknown letter
	}
	for _, s := range cases {
		if _, err := Decode(s); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("Decode(%q...) should return ErrInvalidEncoding, got %v", truncate(s, 12), err)
		}
	}
}

// Decode accepts any well-formed 54-letter string; legality is the
// validator's job, not the codec's.
func TestDecodeDoesNotValidate(t *testing.T) {
	s := strings.Repeat("W", 54)
	c, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode of an all-white string failed: %v", err)
	}
	if err := Validate(c); err == nil {
		t.Error("An all-white cube should fail validation")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
