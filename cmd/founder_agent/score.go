package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/founder-fit/internal/observability"
	"github.com/jonathan/founder-fit/internal/scoring"
)

var (
	scoreAnswersPath string
	scoreJSON        bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the trait profile for a set of quiz answers",
	Long:  `Reads quiz answers from a JSON file and prints the twelve normalized trait scores.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswersPath, "answers", "a", "", "Path to quiz answers JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print raw JSON instead of the formatted profile")
	_ = scoreCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	answers, err := loadAnswers(scoreAnswersPath)
	if err != nil {
		return err
	}

	traits := scoring.ComputeTraitScores(answers)

	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(traits)
	}

	fmt.Println("Step 1: Scoring trait profile...")
	observability.NewPrinter(os.Stdout).PrintTraitScores(traits)
	return nil
}
