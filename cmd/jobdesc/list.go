package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dhakago/jobdesc-cli/internal/api"
	"github.com/dhakago/jobdesc-cli/internal/masterdata"
	"github.com/dhakago/jobdesc-cli/internal/types"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job descriptions",
	Long:  "List job descriptions, optionally filtered by company, department, level, status, or a search term.",
	RunE:  runList,
}

var (
	listCompany    string
	listDepartment string
	listLevel      string
	listStatus     string
	listSearch     string
	listLimit      int
)

func init() {
	listCmd.Flags().StringVarP(&listCompany, "company", "c", "", "Company code to filter by")
	listCmd.Flags().StringVarP(&listDepartment, "department", "d", "", "Department name to filter by")
	listCmd.Flags().StringVarP(&listLevel, "level", "l", "", "Job level to filter by")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Status to filter by (draft, approved, rejected, archived)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search term matched against position names")
	listCmd.Flags().IntVar(&listLimit, "limit", api.DefaultListLimit, "Maximum number of records")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	client, _, err := clientFromFlags()
	if err != nil {
		return err
	}

	status := types.Status(listStatus)
	if listStatus != "" && !status.Valid() {
		return fmt.Errorf("unknown status %q", listStatus)
	}
	// Departments are only meaningful relative to a company.
	if listDepartment != "" && listCompany == "" {
		return fmt.Errorf("--department requires --company")
	}

	ctx := context.Background()

	companyID := ""
	if listCompany != "" {
		cache := masterdata.NewCache(client)
		if err := cache.Refresh(ctx); err != nil {
			return fmt.Errorf("failed to load master data: %w", err)
		}
		company, ok := cache.CompanyByCode(listCompany)
		if !ok {
			return fmt.Errorf("unknown company code %q", listCompany)
		}
		companyID = company.ID
	}

	records, err := client.ListJobDescriptions(ctx, api.ListParams{
		CompanyID:  companyID,
		Departemen: listDepartment,
		Level:      listLevel,
		Status:     status,
		Search:     listSearch,
		Limit:      listLimit,
	})
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No job descriptions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tPOSITION\tDEPARTMENT\tSTATUS\tVER\tUPDATED")
	for _, jd := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\tv%d\t%s\n",
			jd.JobCode,
			jd.JobInformation.Posisi,
			jd.JobInformation.Departemen,
			jd.Status,
			jd.Version,
			jd.UpdatedAt.Format("2006-01-02"),
		)
	}
	return w.Flush()
}
