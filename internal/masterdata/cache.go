// Package masterdata caches reference data (companies, departments, job
// levels) fetched from the Job-Description Service. The cache is a pure read
// cache: only its own refresh operations write it, consumers get copies.
package masterdata

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dhakago/jobdesc-cli/internal/types"
)

// Fetcher is the subset of the service client the cache needs.
type Fetcher interface {
	ListCompanies(ctx context.Context) ([]types.Company, error)
	ListDepartments(ctx context.Context, companyID string) ([]types.Department, error)
	ListJobLevels(ctx context.Context) ([]types.JobLevel, error)
}

// Cache holds the last-fetched reference data. Departments are governed by
// the selected company: a department response is stored only if the selection
// has not changed since the request was issued, so an out-of-order response
// for a previously selected company is discarded rather than presented as
// valid for the current one.
type Cache struct {
	api Fetcher

	mu          sync.Mutex
	companies   []types.Company
	levels      []types.JobLevel
	departments []types.Department
	selected    string // governing company key for departments
}

// NewCache creates an empty cache backed by the given fetcher.
func NewCache(api Fetcher) *Cache {
	return &Cache{api: api}
}

// Refresh fetches companies and job levels concurrently, plus the department
// list for the currently selected company when one is set.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	selected := c.selected
	c.mu.Unlock()

	var (
		companies   []types.Company
		levels      []types.JobLevel
		departments []types.Department
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		companies, err = c.api.ListCompanies(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		levels, err = c.api.ListJobLevels(gCtx)
		return err
	})
	if selected != "" {
		g.Go(func() error {
			var err error
			departments, err = c.api.ListDepartments(gCtx, selected)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.companies = companies
	c.levels = levels
	if selected != "" && c.selected == selected {
		c.departments = departments
	}
	return nil
}

// SelectCompany changes the governing company and fetches its departments.
// The cached department list is cleared immediately so stale data for the
// previous company is never readable, and the fetched response is stored
// only if the selection still matches when it arrives.
func (c *Cache) SelectCompany(ctx context.Context, companyID string) error {
	c.mu.Lock()
	c.selected = companyID
	c.departments = nil
	c.mu.Unlock()

	if companyID == "" {
		return nil
	}

	departments, err := c.api.ListDepartments(ctx, companyID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected != companyID {
		// Selection changed while the fetch was in flight; the response is
		// stale and must not be presented for the new company.
		return nil
	}
	if err != nil {
		return err
	}
	c.departments = departments
	return nil
}

// SelectedCompany returns the governing company key for departments.
func (c *Cache) SelectedCompany() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Companies returns a copy of the cached company list.
func (c *Cache) Companies() []types.Company {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Company, len(c.companies))
	copy(out, c.companies)
	return out
}

// ActiveCompanies returns the active companies, the set offered in forms.
func (c *Cache) ActiveCompanies() []types.Company {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []types.Company
	for _, company := range c.companies {
		if company.IsActive {
			out = append(out, company)
		}
	}
	return out
}

// Departments returns a copy of the cached department list for the currently
// selected company, along with the company key it belongs to.
func (c *Cache) Departments() ([]types.Department, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Department, len(c.departments))
	copy(out, c.departments)
	return out, c.selected
}

// ActiveDepartments returns the active departments for the selected company.
func (c *Cache) ActiveDepartments() []types.Department {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []types.Department
	for _, dept := range c.departments {
		if dept.IsActive {
			out = append(out, dept)
		}
	}
	return out
}

// Levels returns a copy of the cached job level list.
func (c *Cache) Levels() []types.JobLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.JobLevel, len(c.levels))
	copy(out, c.levels)
	return out
}

// CompanyByCode finds a cached company by its code.
func (c *Cache) CompanyByCode(code string) (types.Company, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, company := range c.companies {
		if company.Code == code {
			return company, true
		}
	}
	return types.Company{}, false
}

// CompanyByID finds a cached company by its id.
func (c *Cache) CompanyByID(id string) (types.Company, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, company := range c.companies {
		if company.ID == id {
			return company, true
		}
	}
	return types.Company{}, false
}

// LevelByName finds a cached job level by its display name.
func (c *Cache) LevelByName(name string) (types.JobLevel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, level := range c.levels {
		if level.Name == name {
			return level, true
		}
	}
	return types.JobLevel{}, false
}
