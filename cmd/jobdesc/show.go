package main

import (
	"context"
	"os"

	"github.com/dhakago/jobdesc-cli/internal/observability"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a job description with its version history",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	client, _, err := clientFromFlags()
	if err != nil {
		return err
	}

	jd, err := client.GetJobDescription(context.Background(), args[0])
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintJobDescription(jd)
	return nil
}
