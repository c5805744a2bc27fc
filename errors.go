package cubekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubekit package.
var (
	// Structural errors: malformed input states.
	ErrInvalidFaceConfiguration = errors.New("cubekit: face does not have exactly 9 facelets")
	ErrInvalidStickerCount      = errors.New("cubekit: color does not appear exactly 9 times")
	ErrNonUniqueCenters         = errors.New("cubekit: center facelets are not pairwise distinct")

	// Physical-legality errors: well-formed but unreachable states.
	ErrInvalidCornerOrientation = errors.New("cubekit: corner orientation sum is not divisible by 3")
	ErrInvalidEdgeOrientation   = errors.New("cubekit: edge orientation sum is not even")
	ErrInvalidPermutationParity = errors.New("cubekit: corner and edge permutation parities disagree")

	// Parsing errors.
	ErrInvalidNotation = errors.New("cubekit: invalid move notation")
	ErrInvalidEncoding = errors.New("cubekit: invalid cube encoding")

	// Range errors.
	ErrOutOfRange = errors.New("cubekit: facelet index out of range")
)

// StickerCountError reports a color whose total facelet count across
// all faces is not exactly 9. It unwraps to ErrInvalidStickerCount.
type StickerCountError struct {
	Color Color
	Count int
}

func (e *StickerCountError) Error() string {
	return fmt.Sprintf("cubekit: color %s appears %d times, want 9", e.Color, e.Count)
}

func (e *StickerCountError) Unwrap() error {
	return ErrInvalidStickerCount
}
