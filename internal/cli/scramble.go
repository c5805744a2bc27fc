package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
	"github.com/SeamusWaldron/cubekit/internal/storage"
)

var (
	scrambleMoves int
	scrambleShow  bool
	scrambleSave  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence.

Prints the scramble in standard notation. With --show the resulting cube
state is rendered and its 54-character encoding printed.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 25, "Number of moves in the scramble")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Render the scrambled cube and its encoding")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Record the scramble in the history database")
}

func runScramble(cmd *cobra.Command, args []string) error {
	moves := cubekit.GenerateScramble(scrambleMoves)
	notation := cubekit.FormatMoves(moves)

	cube := cubekit.NewCube()
	cube.Apply(moves...)

	fmt.Println(moveStyle.Render(notation))

	if scrambleShow {
		fmt.Print(renderCube(cube))
		fmt.Println(labelStyle.Render("State: ") + cube.Encode())
	}

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(storage.KindScramble, cube.Encode(), notation, "", len(moves), 0, "")
		if err != nil {
			return err
		}
		fmt.Println(labelStyle.Render("Saved as " + id))
	}

	return nil
}
