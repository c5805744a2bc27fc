package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
)

var validateCmd = &cobra.Command{
	Use:   "validate <state>",
	Short: "Check whether a state encoding is a legal cube",
	Long: `Validate a 54-character state encoding.

Checks the structural invariants (sticker counts, unique centers) and the
physical ones (corner twist, edge flip, permutation parity) and reports the
first violation found.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cube, err := cubekit.Decode(args[0])
	if err != nil {
		return err
	}

	if verbose {
		fmt.Print(renderCube(cube))
	}

	if err := cubekit.Validate(cube); err != nil {
		fmt.Println(errorStyle.Render("Invalid: ") + err.Error())
		// Error already printed; only the exit status matters.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}

	if cube.IsSolved() {
		fmt.Println(okStyle.Render("Valid (solved)"))
	} else {
		fmt.Println(okStyle.Render("Valid"))
	}
	return nil
}
