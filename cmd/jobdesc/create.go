package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dhakago/jobdesc-cli/internal/masterdata"
	"github.com/dhakago/jobdesc-cli/internal/observability"
	"github.com/dhakago/jobdesc-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new AI-generated job description",
	Long:  "Create a new job description: check for similar existing positions first, then generate a draft unless an existing one should be reused.",
	RunE:  runCreate,
}

var (
	createCompany     string
	createPosition    string
	createDivision    string
	createDepartment  string
	createLevel       string
	createReportsTo   string
	createDescription string
	createTemplate    string
	createSkipCheck   bool
	createYes         bool
)

func init() {
	createCmd.Flags().StringVarP(&createCompany, "company", "c", "", "Company code (required)")
	createCmd.Flags().StringVarP(&createPosition, "position", "p", "", "Position name (required)")
	createCmd.Flags().StringVar(&createDivision, "division", "", "Division name")
	createCmd.Flags().StringVarP(&createDepartment, "department", "d", "", "Department name (required)")
	createCmd.Flags().StringVarP(&createLevel, "level", "l", "", "Job level name")
	createCmd.Flags().StringVar(&createReportsTo, "reports-to", "", "Structural superior of the position")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Short free-text description to seed generation")
	createCmd.Flags().StringVar(&createTemplate, "use-template", "", "ID of a similar job description to print as reference before generating")
	createCmd.Flags().BoolVar(&createSkipCheck, "skip-check", false, "Skip the similarity check")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Generate even when similar job descriptions exist")

	rootCmd.AddCommand(createCmd)
}

func runCreate(_ *cobra.Command, _ []string) error {
	client, cfg, err := clientFromFlags()
	if err != nil {
		return err
	}

	companyCode := createCompany
	if companyCode == "" {
		companyCode = cfg.DefaultCompany
	}
	if companyCode == "" {
		return fmt.Errorf("company is required (use --company or configure default_company)")
	}

	ctx := context.Background()

	// Resolve the company code against master data.
	cache := masterdata.NewCache(client)
	if err := cache.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load master data: %w", err)
	}
	company, ok := cache.CompanyByCode(companyCode)
	if !ok {
		return fmt.Errorf("unknown company code %q", companyCode)
	}
	if !company.IsActive {
		return fmt.Errorf("company %s is inactive", company.Code)
	}

	printer := observability.NewPrinter(os.Stdout)
	creation := workflow.NewCreation(client, notifier())
	creation.Form = workflow.CreationForm{
		CompanyID:        company.ID,
		Posisi:           createPosition,
		Divisi:           createDivision,
		Departemen:       createDepartment,
		Level:            createLevel,
		ReportsTo:        createReportsTo,
		ShortDescription: createDescription,
	}

	if !createSkipCheck {
		matches, err := creation.CheckSimilarity(ctx)
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			printer.PrintMatches(matches)

			if createTemplate != "" {
				template, err := creation.UseAsTemplate(ctx, createTemplate)
				if err != nil {
					return err
				}
				printer.PrintJobDescription(template)
			}

			if !createYes {
				if !stdinConfirmer(false).Confirm("Similar job descriptions exist. Generate anyway?") {
					fmt.Fprintln(os.Stdout, "Creation cancelled.")
					return nil
				}
			}
		}
	}

	jd, err := creation.Generate(ctx)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintJobDescription(jd)
	}
	fmt.Fprintf(os.Stdout, "Created %s (%s) as draft v%d\n", jd.JobCode, jd.JobInformation.Posisi, jd.Version)
	fmt.Fprintf(os.Stdout, "ID: %s\n", jd.ID)
	return nil
}
