package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dhakago/jobdesc-cli/internal/masterdata"
	"github.com/spf13/cobra"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List companies, departments and job levels",
	Long:  "List the reference data the service knows: companies (SBUs), the departments of a selected company, and job levels.",
	RunE:  runCompanies,
}

var (
	companiesCompany string
	companiesAll     bool
)

func init() {
	companiesCmd.Flags().StringVarP(&companiesCompany, "company", "c", "", "Company code to list departments for")
	companiesCmd.Flags().BoolVar(&companiesAll, "all", false, "Include inactive entries")

	rootCmd.AddCommand(companiesCmd)
}

func runCompanies(_ *cobra.Command, _ []string) error {
	client, _, err := clientFromFlags()
	if err != nil {
		return err
	}

	ctx := context.Background()
	cache := masterdata.NewCache(client)
	if err := cache.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load master data: %w", err)
	}

	companies := cache.ActiveCompanies()
	if companiesAll {
		companies = cache.Companies()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tACTIVE")
	for _, c := range companies {
		fmt.Fprintf(w, "%s\t%s\t%t\n", c.Code, c.Name, c.IsActive)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	levels := cache.Levels()
	if len(levels) > 0 {
		fmt.Fprintln(os.Stdout, "\nJob levels:")
		for _, l := range levels {
			fmt.Fprintf(os.Stdout, "  %s\n", l.Name)
		}
	}

	if companiesCompany == "" {
		return nil
	}

	company, ok := cache.CompanyByCode(companiesCompany)
	if !ok {
		return fmt.Errorf("unknown company code %q", companiesCompany)
	}
	if err := cache.SelectCompany(ctx, company.ID); err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	departments := cache.ActiveDepartments()
	if companiesAll {
		departments, _ = cache.Departments()
	}

	fmt.Fprintf(os.Stdout, "\nDepartments of %s:\n", company.Name)
	dw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(dw, "CODE\tNAME\tTYPE\tACTIVE")
	for _, d := range departments {
		fmt.Fprintf(dw, "%s\t%s\t%s\t%t\n", d.Code, d.Name, d.Type, d.IsActive)
	}
	return dw.Flush()
}
