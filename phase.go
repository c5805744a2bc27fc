package cubekit

// SolvePhase identifies which reduction stage of the solver produced
// a move. Phases progress in order, allowing comparison with < and >.
type SolvePhase int

const (
	// PhaseOrientEdges removes all edge flips, after which front and
	// back quarter turns are no longer needed.
	PhaseOrientEdges SolvePhase = iota

	// PhaseOrientCorners removes all corner twists and gathers the
	// four middle-slice edges into their slice.
	PhaseOrientCorners

	// PhaseSeparateSlices sends every edge to its home slice and
	// pairs up corners so only half turns remain.
	PhaseSeparateSlices

	// PhaseFinish solves the cube using half turns only.
	PhaseFinish
)

// String returns a short key for the phase.
func (p SolvePhase) String() string {
	switch p {
	case PhaseOrientEdges:
		return "orient_edges"
	case PhaseOrientCorners:
		return "orient_corners"
	case PhaseSeparateSlices:
		return "separate_slices"
	case PhaseFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p SolvePhase) DisplayName() string {
	switch p {
	case PhaseOrientEdges:
		return "Orient Edges"
	case PhaseOrientCorners:
		return "Orient Corners"
	case PhaseSeparateSlices:
		return "Separate Slices"
	case PhaseFinish:
		return "Half-Turn Finish"
	default:
		return "Unknown"
	}
}
