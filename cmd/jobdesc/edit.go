package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dhakago/jobdesc-cli/internal/observability"
	"github.com/dhakago/jobdesc-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a job description, recording a new version",
	Long:  "Edit a job description. Every saved edit appends a version history entry, so a change description and author are required.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editPosition    string
	editDivision    string
	editDepartment  string
	editLevel       string
	editMainPurpose string
	editChangedBy   string
	editChangeDesc  string
)

func init() {
	editCmd.Flags().StringVarP(&editPosition, "position", "p", "", "New position name")
	editCmd.Flags().StringVar(&editDivision, "division", "", "New division name")
	editCmd.Flags().StringVarP(&editDepartment, "department", "d", "", "New department name")
	editCmd.Flags().StringVarP(&editLevel, "level", "l", "", "New job level")
	editCmd.Flags().StringVar(&editMainPurpose, "main-purpose", "", "New main purpose text")
	editCmd.Flags().StringVar(&editChangedBy, "changed-by", "", "Author recorded in the version history (or configure changed_by)")
	editCmd.Flags().StringVarP(&editChangeDesc, "change-description", "m", "", "Reason for the change, recorded in the version history (required)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	client, cfg, err := clientFromFlags()
	if err != nil {
		return err
	}

	changedBy := editChangedBy
	if changedBy == "" {
		changedBy = cfg.ChangedBy
	}
	if changedBy == "" {
		return fmt.Errorf("author is required (use --changed-by or configure changed_by)")
	}

	ctx := context.Background()
	jd, err := client.GetJobDescription(ctx, args[0])
	if err != nil {
		return err
	}

	editor := workflow.NewEditor(client, notifier())
	draft := editor.BeginEdit(jd, changedBy)
	if editPosition != "" {
		draft.Posisi = editPosition
	}
	if editDivision != "" {
		draft.Divisi = editDivision
	}
	if editDepartment != "" {
		draft.Departemen = editDepartment
	}
	if editLevel != "" {
		draft.Level = editLevel
	}
	if editMainPurpose != "" {
		draft.MainPurpose = editMainPurpose
	}
	draft.ChangeDescription = editChangeDesc

	fresh, err := editor.Save(ctx, draft)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobDescription(fresh)
	}
	fmt.Fprintf(os.Stdout, "Updated %s to v%d\n", fresh.JobCode, fresh.Version)
	return nil
}
