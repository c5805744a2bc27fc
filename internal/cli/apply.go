package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
)

var applyState string

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply moves to a cube state",
	Long: `Apply a move sequence to a cube state and print the result.

Starts from a solved cube, or from the encoding passed with --state:

  cubekit apply R U R' U'
  cubekit apply --state WWWWWWOOW... F2 D'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyState, "state", "", "54-character starting state (default: solved)")
}

func runApply(cmd *cobra.Command, args []string) error {
	cube := cubekit.NewCube()
	if applyState != "" {
		var err error
		cube, err = cubekit.Decode(applyState)
		if err != nil {
			return err
		}
	}

	moves, err := cubekit.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	cube.Apply(moves...)

	fmt.Print(renderCube(cube))
	fmt.Println(labelStyle.Render("State: ") + cube.Encode())
	if cube.IsSolved() {
		fmt.Println(okStyle.Render("Solved!"))
	}
	return nil
}
