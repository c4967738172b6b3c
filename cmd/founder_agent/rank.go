package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/founder-fit/internal/observability"
	"github.com/jonathan/founder-fit/internal/ranking"
)

var (
	rankAnswersPath string
	rankJSON        bool
	rankBottom      int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every business model against a set of quiz answers",
	Long:  `Reads quiz answers from a JSON file and prints each business model's fit percentage, best match first.`,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankAnswersPath, "answers", "a", "", "Path to quiz answers JSON file (required)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print raw JSON instead of the formatted ranking")
	rankCmd.Flags().IntVar(&rankBottom, "bottom", 0, "Also print the N worst matches, worst first")
	_ = rankCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	answers, err := loadAnswers(rankAnswersPath)
	if err != nil {
		return err
	}

	ranked := ranking.RankModels(answers)

	if rankJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ranked)
	}

	fmt.Println("Step 2: Ranking business models...")
	observability.NewPrinter(os.Stdout).PrintRankedModels(ranked)

	if rankBottom > 0 {
		fmt.Println("\nWorst matches:")
		for i, model := range ranked.BottomMatches(rankBottom) {
			fmt.Printf("  %d. %s (%d%%)\n", i+1, model.DisplayName, model.Percentage)
		}
	}
	return nil
}
