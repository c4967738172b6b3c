// Package main provides the entry point for the Founder Fit CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "founder_agent",
	Short: "Founder Fit report engine",
	Long:  "Founder Fit scores entrepreneurial quiz answers into a trait profile, ranks business models against it, and generates a personalized report with AI narratives.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
