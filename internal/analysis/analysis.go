// Package analysis provides statistics over move sequences and solutions.
package analysis

import (
	"github.com/SeamusWaldron/cubekit"
)

// SequenceSummary contains statistics for a move sequence.
type SequenceSummary struct {
	TotalMoves     int                  `json:"total_moves"`
	QuarterTurns   int                  `json:"quarter_turns"` // QTM: half turns count double
	OptimizedMoves int                  `json:"optimized_moves"`
	Efficiency     float64              `json:"efficiency"`
	FaceCounts     map[cubekit.Face]int `json:"face_counts"`
	TurnCounts     map[cubekit.Turn]int `json:"turn_counts"`
	MostUsedFace   cubekit.Face         `json:"most_used_face"`
}

// PhaseStats contains statistics for one solver phase of a solution.
type PhaseStats struct {
	PhaseKey    string `json:"phase_key"`
	DisplayName string `json:"display_name"`
	MoveCount   int    `json:"move_count"`
	Moves       string `json:"moves"`
}

// Summarize computes statistics for a move sequence.
func Summarize(moves []cubekit.Move) *SequenceSummary {
	summary := &SequenceSummary{
		TotalMoves: len(moves),
		FaceCounts: make(map[cubekit.Face]int),
		TurnCounts: make(map[cubekit.Turn]int),
	}

	for _, m := range moves {
		summary.FaceCounts[m.Face]++
		summary.TurnCounts[m.Turn]++
		summary.QuarterTurns += quarterTurnCost(m.Turn)
	}

	summary.OptimizedMoves = len(Optimize(moves))
	if summary.TotalMoves > 0 {
		summary.Efficiency = float64(summary.OptimizedMoves) / float64(summary.TotalMoves)
	}

	maxCount := 0
	for face, count := range summary.FaceCounts {
		if count > maxCount {
			maxCount = count
			summary.MostUsedFace = face
		}
	}

	return summary
}

func quarterTurnCost(t cubekit.Turn) int {
	if t == cubekit.Double {
		return 2
	}
	return 1
}

// Optimize collapses adjacent same-face moves: R R becomes R2, R R'
// disappears. The pass repeats because a cancellation can expose a new
// adjacent pair.
func Optimize(moves []cubekit.Move) []cubekit.Move {
	out := make([]cubekit.Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, m)
		for len(out) >= 2 && out[len(out)-1].Face == out[len(out)-2].Face {
			a, b := out[len(out)-2], out[len(out)-1]
			out = out[:len(out)-2]
			if merged, ok := a.Merge(b); ok {
				out = append(out, merged)
			}
		}
	}
	return out
}

// SummarizePhases breaks a solution down into per-phase statistics.
func SummarizePhases(sol *cubekit.Solution) []PhaseStats {
	var stats []PhaseStats

	for _, step := range sol.Steps {
		key := step.Phase.String()
		if len(stats) == 0 || stats[len(stats)-1].PhaseKey != key {
			stats = append(stats, PhaseStats{
				PhaseKey:    key,
				DisplayName: step.Phase.DisplayName(),
			})
		}

		last := &stats[len(stats)-1]
		last.MoveCount++
		if last.Moves != "" {
			last.Moves += " "
		}
		last.Moves += step.Move.Notation()
	}

	return stats
}
