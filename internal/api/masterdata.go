package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dhakago/jobdesc-cli/internal/types"
)

// ListCompanies returns all companies (SBUs) known to the service.
func (c *Client) ListCompanies(ctx context.Context) ([]types.Company, error) {
	var companies []types.Company
	if err := c.doJSON(ctx, http.MethodGet, "/companies", nil, nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// ListDepartments returns departments, filtered to one company when
// companyID is non-empty. Departments are only meaningful relative to the
// company they were fetched for.
func (c *Client) ListDepartments(ctx context.Context, companyID string) ([]types.Department, error) {
	var query url.Values
	if companyID != "" {
		query = url.Values{"companyId": {companyID}}
	}

	var departments []types.Department
	if err := c.doJSON(ctx, http.MethodGet, "/departments", query, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// ListJobLevels returns all job levels.
func (c *Client) ListJobLevels(ctx context.Context) ([]types.JobLevel, error) {
	var levels []types.JobLevel
	if err := c.doJSON(ctx, http.MethodGet, "/job-levels", nil, nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}
