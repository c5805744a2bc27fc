// Package cubekit provides a complete 3x3 Rubik's cube engine: a
// facelet-level cube model, standard move notation, a legality
// validator, a guaranteed-terminating solver and scramble generation.
//
// # Features
//
//   - Facelet cube model with the full 18-move set
//   - Notation parsing and formatting (R, R', R2, ...)
//   - Canonical 54-character state serialization
//   - Structural and physical legality validation
//   - Four-phase solver with per-move phase attribution
//   - Scramble generation
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := cubekit.NewCube()
//	scramble := cubekit.GenerateScramble(25)
//	cube.Apply(scramble...)
//
//	solution, err := cubekit.Solve(cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", solution.Notation())
//
//	cube.Apply(solution.Moves()...)
//	fmt.Println("Solved:", cube.IsSolved()) // true
//
// # Working With States
//
// States round-trip through a fixed 54-character encoding, nine
// stickers per face in U, D, L, R, F, B order:
//
//	s := cube.Encode()
//	restored, err := cubekit.Decode(s)
//
// Arbitrary states can be built sticker by sticker with Set and then
// checked for legality:
//
//	if err := cubekit.Validate(cube); err != nil {
//	    // not a reachable cube state
//	}
package cubekit
