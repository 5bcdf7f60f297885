package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dhakago/jobdesc-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var approveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a draft job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprove,
}

var approveBy string

func init() {
	approveCmd.Flags().StringVar(&approveBy, "approved-by", "", "Approver recorded on the record (or configure changed_by)")

	rootCmd.AddCommand(approveCmd)
}

func runApprove(_ *cobra.Command, args []string) error {
	client, cfg, err := clientFromFlags()
	if err != nil {
		return err
	}

	approvedBy := approveBy
	if approvedBy == "" {
		approvedBy = cfg.ChangedBy
	}
	if approvedBy == "" {
		return fmt.Errorf("approver is required (use --approved-by or configure changed_by)")
	}

	ctx := context.Background()
	jd, err := client.GetJobDescription(ctx, args[0])
	if err != nil {
		return err
	}

	machine := workflow.NewStatusMachine(client, notifier(), nil)
	updated, err := machine.Approve(ctx, jd, approvedBy)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Approved %s (v%d unchanged)\n", updated.JobCode, updated.Version)
	return nil
}
