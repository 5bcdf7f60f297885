package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dhakago/jobdesc-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a job description",
	Long:  "Archive a job description. Archival is terminal and cannot be undone, so it asks for confirmation unless --yes is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

var archiveYes bool

func init() {
	archiveCmd.Flags().BoolVarP(&archiveYes, "yes", "y", false, "Archive without asking for confirmation")

	rootCmd.AddCommand(archiveCmd)
}

func runArchive(_ *cobra.Command, args []string) error {
	client, _, err := clientFromFlags()
	if err != nil {
		return err
	}

	ctx := context.Background()
	jd, err := client.GetJobDescription(ctx, args[0])
	if err != nil {
		return err
	}

	machine := workflow.NewStatusMachine(client, notifier(), stdinConfirmer(archiveYes))
	archived, err := machine.Archive(ctx, jd)
	if err != nil {
		return err
	}
	if !archived {
		fmt.Fprintln(os.Stdout, "Archive cancelled.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Archived %s\n", jd.JobCode)
	return nil
}
