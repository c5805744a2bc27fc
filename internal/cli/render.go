package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubekit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	okStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
)

// stickerStyles maps each cube color to a terminal style.
var stickerStyles = map[cubekit.Color]lipgloss.Style{
	cubekit.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	cubekit.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	cubekit.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	cubekit.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	cubekit.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	cubekit.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

func sticker(c cubekit.Color) string {
	if style, ok := stickerStyles[c]; ok {
		return style.Render("██")
	}
	return "??"
}

// renderCube draws the cube as a colored unfolded net: U on top, then
// the L F R B band, then D.
func renderCube(c *cubekit.Cube) string {
	var sb strings.Builder

	pad := strings.Repeat(" ", 7)
	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		for col := 0; col < 3; col++ {
			sb.WriteString(sticker(c.Facelets[cubekit.FaceU][row*3+col]))
		}
		sb.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, face := range []cubekit.Face{cubekit.FaceL, cubekit.FaceF, cubekit.FaceR, cubekit.FaceB} {
			for col := 0; col < 3; col++ {
				sb.WriteString(sticker(c.Facelets[face][row*3+col]))
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		sb.WriteString(pad)
		for col := 0; col < 3; col++ {
			sb.WriteString(sticker(c.Facelets[cubekit.FaceD][row*3+col]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderSolution formats a solution grouped by solver phase.
func renderSolution(sol *cubekit.Solution) string {
	if sol.Len() == 0 {
		return okStyle.Render("Already solved!") + "\n"
	}

	var sb strings.Builder
	var phase cubekit.SolvePhase = -1
	var line []string

	flush := func() {
		if len(line) == 0 {
			return
		}
		sb.WriteString("  ")
		sb.WriteString(phaseStyle.Render(phase.DisplayName()))
		sb.WriteString(": ")
		sb.WriteString(moveStyle.Render(strings.Join(line, " ")))
		sb.WriteString("\n")
		line = nil
	}

	for _, step := range sol.Steps {
		if step.Phase != phase {
			flush()
			phase = step.Phase
		}
		line = append(line, step.Move.Notation())
	}
	flush()

	return sb.String()
}
