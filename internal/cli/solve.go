package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
	"github.com/SeamusWaldron/cubekit/internal/analysis"
	"github.com/SeamusWaldron/cubekit/internal/storage"
)

var (
	solveState string
	solveSave  bool
	solveNotes string
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble...]",
	Short: "Solve a cube state",
	Long: `Solve a cube state and print the solution grouped by solver phase.

The state to solve comes from either a scramble sequence applied to a solved
cube, or a 54-character state encoding passed with --state:

  cubekit solve R U R' U' F2 D
  cubekit solve --state WWWWWWOOW...`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveState, "state", "", "54-character state encoding to solve")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Record the solve in the history database")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes to store with the solve")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cube, scramble, err := cubeFromArgs(solveState, args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Print(renderCube(cube))
	}

	started := time.Now()
	sol, err := cubekit.Solve(cube)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(started)

	fmt.Println(titleStyle.Render("Solution") + labelStyle.Render(fmt.Sprintf(" (%d moves, %s)", sol.Len(), elapsed.Round(time.Millisecond))))
	fmt.Print(renderSolution(sol))

	if verbose && sol.Len() > 0 {
		summary := analysis.Summarize(sol.Moves())
		fmt.Println(labelStyle.Render(fmt.Sprintf("QTM %d, most used face %s", summary.QuarterTurns, summary.MostUsedFace)))
	}

	if solveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(storage.KindSolve, cube.Encode(), cubekit.FormatMoves(scramble),
			sol.Notation(), sol.Len(), elapsed.Milliseconds(), solveNotes)
		if err != nil {
			return err
		}
		fmt.Println(labelStyle.Render("Saved as " + id))
	}

	return nil
}

// cubeFromArgs builds the cube to operate on: a decoded state when an
// encoding is given, otherwise a solved cube with the argument moves
// applied. The parsed moves are returned for record keeping.
func cubeFromArgs(state string, args []string) (*cubekit.Cube, []cubekit.Move, error) {
	if state != "" {
		if len(args) > 0 {
			return nil, nil, fmt.Errorf("pass either --state or a scramble, not both")
		}
		cube, err := cubekit.Decode(state)
		if err != nil {
			return nil, nil, err
		}
		return cube, nil, nil
	}

	moves, err := cubekit.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return nil, nil, err
	}
	cube := cubekit.NewCube()
	cube.Apply(moves...)
	return cube, moves, nil
}
