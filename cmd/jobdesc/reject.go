package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dhakago/jobdesc-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var rejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject an approved job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runReject,
}

var rejectReason string

func init() {
	rejectCmd.Flags().StringVarP(&rejectReason, "reason", "r", "", "Rejection reason (required)")

	_ = rejectCmd.MarkFlagRequired("reason")

	rootCmd.AddCommand(rejectCmd)
}

func runReject(_ *cobra.Command, args []string) error {
	client, _, err := clientFromFlags()
	if err != nil {
		return err
	}

	ctx := context.Background()
	jd, err := client.GetJobDescription(ctx, args[0])
	if err != nil {
		return err
	}

	machine := workflow.NewStatusMachine(client, notifier(), nil)
	updated, err := machine.Reject(ctx, jd, rejectReason)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Rejected %s\n", updated.JobCode)
	return nil
}
