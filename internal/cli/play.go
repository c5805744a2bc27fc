package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with a cube interactively",
	Long: `Open an interactive cube in the terminal.

Keys:
  u d f b r l    turn a face clockwise
  U D F B R L    turn a face counter-clockwise
  x              scramble
  s              show a solution for the current state
  z              undo the last move
  n              reset to solved
  q              quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel())
	_, err := p.Run()
	return err
}

type playModel struct {
	cube     *cubekit.Cube
	history  []cubekit.Move
	solution *cubekit.Solution
	status   string
	err      error
	quitting bool
}

func newPlayModel() *playModel {
	return &playModel{cube: cubekit.NewCube()}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "x":
			scramble := cubekit.GenerateScramble(25)
			m.cube = cubekit.NewCube()
			m.cube.Apply(scramble...)
			m.history = nil
			m.solution = nil
			m.err = nil
			m.status = "Scrambled: " + cubekit.FormatMoves(scramble)

		case "n":
			m.cube = cubekit.NewCube()
			m.history = nil
			m.solution = nil
			m.err = nil
			m.status = "Reset to solved"

		case "z":
			if len(m.history) > 0 {
				last := m.history[len(m.history)-1]
				m.history = m.history[:len(m.history)-1]
				m.cube.Apply(last.Inverse())
				m.solution = nil
				m.status = "Undid " + last.Notation()
			}

		case "s":
			sol, err := cubekit.Solve(m.cube)
			if err != nil {
				m.err = err
			} else {
				m.solution = sol
				m.err = nil
				m.status = fmt.Sprintf("Solution found (%d moves)", sol.Len())
			}

		default:
			if move, ok := keyToMove(key); ok {
				m.cube.Apply(move)
				m.history = append(m.history, move)
				m.solution = nil
				m.err = nil
				m.status = "Applied " + move.Notation()
			}
		}
	}

	return m, nil
}

// keyToMove maps a face letter key to a move: lowercase turns
// clockwise, uppercase counter-clockwise.
func keyToMove(key string) (cubekit.Move, bool) {
	if len(key) != 1 {
		return cubekit.Move{}, false
	}

	face, ok := cubekit.ParseFace(key[0])
	if !ok {
		return cubekit.Move{}, false
	}

	turn := cubekit.CW
	if key[0] >= 'A' && key[0] <= 'Z' {
		turn = cubekit.CCW
	}
	return cubekit.Move{Face: face, Turn: turn}, true
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("cubekit play"))
	sb.WriteString("\n\n")
	sb.WriteString(renderCube(m.cube))
	sb.WriteString("\n")

	if m.cube.IsSolved() {
		sb.WriteString(okStyle.Render("Solved!"))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(labelStyle.Render(m.status))
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	if m.solution != nil {
		sb.WriteString(renderSolution(m.solution))
	}

	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("u/d/f/b/r/l turn | shift for inverse | x scramble | s solve | z undo | n reset | q quit"))
	sb.WriteString("\n")

	return sb.String()
}
