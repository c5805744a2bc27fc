package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves and scrambles",
	Long:  `Display recent solves and scrambles from the history database, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "Maximum number of records to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Println(labelStyle.Render("No history yet."))
		return nil
	}

	for _, s := range solves {
		line := fmt.Sprintf("%s  %-8s  %3d moves", s.CreatedAt.Format("2006-01-02 15:04:05"), s.Kind, s.MoveCount)
		if s.DurationMs != nil {
			line += fmt.Sprintf("  %dms", *s.DurationMs)
		}
		fmt.Println(line)
		fmt.Println(labelStyle.Render("  id: " + s.SolveID))

		if verbose {
			if s.ScrambleText != nil {
				fmt.Println("  scramble: " + moveStyle.Render(*s.ScrambleText))
			}
			if s.SolutionText != nil {
				fmt.Println("  solution: " + moveStyle.Render(*s.SolutionText))
			}
			if s.Notes != nil {
				fmt.Println("  notes: " + *s.Notes)
			}
		}
	}

	return nil
}
