package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhakago/jobdesc-cli/internal/masterdata"
	"github.com/dhakago/jobdesc-cli/internal/observability"
	"github.com/dhakago/jobdesc-cli/internal/types"
	"github.com/dhakago/jobdesc-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Bulk import job descriptions from Word documents",
	Long:  "Import one or more .doc/.docx documents as new job descriptions in a single batch. Each file succeeds or fails independently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

var (
	importCompany string
	importNoAI    bool
)

func init() {
	importCmd.Flags().StringVarP(&importCompany, "company", "c", "", "Company code the imports belong to (required)")
	importCmd.Flags().BoolVar(&importNoAI, "no-ai", false, "Import document content as-is instead of AI-enhancing it")

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	client, cfg, err := clientFromFlags()
	if err != nil {
		return err
	}

	companyCode := importCompany
	if companyCode == "" {
		companyCode = cfg.DefaultCompany
	}
	if companyCode == "" {
		return fmt.Errorf("company is required (use --company or configure default_company)")
	}

	ctx := context.Background()

	cache := masterdata.NewCache(client)
	if err := cache.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load master data: %w", err)
	}
	company, ok := cache.CompanyByCode(companyCode)
	if !ok {
		return fmt.Errorf("unknown company code %q", companyCode)
	}

	files := make([]types.ImportFile, 0, len(args))
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, types.ImportFile{
			Filename: filepath.Base(path),
			Content:  content,
		})
	}

	// The upload endpoint takes the company code, as the frontend sends it.
	importer := workflow.NewImporter(client, notifier())
	outcome, err := importer.Submit(ctx, files, company.Code, !importNoAI)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintImportOutcome(outcome)

	if len(outcome.Result.Failed) > 0 {
		return fmt.Errorf("%d of %d file(s) failed to import", len(outcome.Result.Failed), len(outcome.Accepted))
	}
	return nil
}
