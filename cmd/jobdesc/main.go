// Package main provides the entry point for the jobdesc CLI, a client for
// the Job-Description Service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobdesc",
	Short: "Job description management CLI",
	Long:  "jobdesc manages AI-generated job descriptions: similarity-checked creation, versioned edits, approval workflow, bulk document import and export.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
