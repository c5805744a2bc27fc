package cubekit

import (
	"errors"
	"testing"
)

func TestValidateSolved(t *testing.T) {
	if err := Validate(NewCube()); err != nil {
		t.Errorf("Solved cube should validate, got %v", err)
	}
}

func TestValidateScrambled(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := NewCube()
		c.Apply(GenerateScramble(30)...)
		if err := Validate(c); err != nil {
			t.Errorf("Scrambled cube should validate, got %v", err)
			t.Log(c.String())
		}
	}
}

func TestValidateStickerCount(t *testing.T) {
	c := NewCube()
	c.Facelets[FaceU][0] = Red // 10 reds, 8 whites

	err := Validate(c)
	if !errors.Is(err, ErrInvalidStickerCount) {
		t.Fatalf("Want ErrInvalidStickerCount, got %v", err)
	}

	var sce *StickerCountError
	if !errors.As(err, &sce) {
		t.Fatal("Error should unwrap to *StickerCountError")
	}
	if sce.Color != White || sce.Count != 8 {
		t.Errorf("StickerCountError = %+v, want White count 8", sce)
	}
}

func TestValidateUnknownColor(t *testing.T) {
	c := NewCube()
	c.Facelets[FaceU][0] = Color(9)
	if err := Validate(c); !errors.Is(err, ErrInvalidFaceConfiguration) {
		t.Errorf("Want ErrInvalidFaceConfiguration, got %v", err)
	}
}

func TestValidateDuplicateCenters(t *testing.T) {
	// Keep color counts balanced so the center check is what trips.
	c := NewCube()
	c.Facelets[FaceD][4] = White
	c.Facelets[FaceU][0] = Yellow
	if err := Validate(c); !errors.Is(err, ErrNonUniqueCenters) {
		t.Errorf("Want ErrNonUniqueCenters, got %v", err)
	}
}

func TestValidateTwistedCorner(t *testing.T) {
	// Rotate the three stickers of one corner in place.
	c := NewCube()
	u, r, f := c.Facelets[FaceU][8], c.Facelets[FaceR][0], c.Facelets[FaceF][2]
	c.Facelets[FaceU][8], c.Facelets[FaceR][0], c.Facelets[FaceF][2] = f, u, r

	if err := Validate(c); !errors.Is(err, ErrInvalidCornerOrientation) {
		t.Errorf("Want ErrInvalidCornerOrientation, got %v", err)
	}
}

func TestValidateFlippedEdge(t *testing.T) {
	c := NewCube()
	c.Facelets[FaceU][7], c.Facelets[FaceF][1] = c.Facelets[FaceF][1], c.Facelets[FaceU][7]

	if err := Validate(c); !errors.Is(err, ErrInvalidEdgeOrientation) {
		t.Errorf("Want ErrInvalidEdgeOrientation, got %v", err)
	}
}

func TestValidateSwappedEdges(t *testing.T) {
	// Exchanging two edge pieces without touching corners leaves the
	// permutation parities unequal.
	c := NewCube()
	c.Facelets[FaceF][1], c.Facelets[FaceR][1] = c.Facelets[FaceR][1], c.Facelets[FaceF][1]
	c.Facelets[FaceU][7], c.Facelets[FaceU][5] = c.Facelets[FaceU][5], c.Facelets[FaceU][7]

	if err := Validate(c); !errors.Is(err, ErrInvalidPermutationParity) {
		t.Errorf("Want ErrInvalidPermutationParity, got %v", err)
	}
}

func TestValidateMirroredCorner(t *testing.T) {
	// Swapping two stickers within a corner produces an arrangement no
	// real corner piece can show.
	c := NewCube()
	c.Facelets[FaceR][0], c.Facelets[FaceF][2] = c.Facelets[FaceF][2], c.Facelets[FaceR][0]

	if err := Validate(c); !errors.Is(err, ErrInvalidCornerOrientation) {
		t.Errorf("Want ErrInvalidCornerOrientation, got %v", err)
	}
}

func TestValidateImpossibleCornerColors(t *testing.T) {
	// Trading stickers between two corners can build color triples
	// that match no piece at all.
	c := NewCube()
	c.Facelets[FaceR][0], c.Facelets[FaceB][2] = c.Facelets[FaceB][2], c.Facelets[FaceR][0]

	if err := Validate(c); !errors.Is(err, ErrInvalidPermutationParity) {
		t.Errorf("Want ErrInvalidPermutationParity, got %v", err)
	}
}

func TestValidateIsSchemeRelative(t *testing.T) {
	// A cube recolored to a different (legal) scheme still validates:
	// homes derive from the state's own centers, not a fixed palette.
	c := NewCube()
	c.Facelets[FaceU], c.Facelets[FaceD] = c.Facelets[FaceD], c.Facelets[FaceU]
	if err := Validate(c); err != nil {
		t.Errorf("Recolored solved cube should validate, got %v", err)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(NewCube()) {
		t.Error("Solved cube should be valid")
	}
	c := NewCube()
	c.Facelets[FaceU][0] = Red
	if IsValid(c) {
		t.Error("Miscounted cube should be invalid")
	}
}

func TestValidateAfterDecode(t *testing.T) {
	c := NewCube()
	c.Apply(GenerateScramble(25)...)
	decoded, err := Decode(c.Encode())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if err := Validate(decoded); err != nil {
		t.Errorf("Round-tripped state should validate, got %v", err)
	}
}
