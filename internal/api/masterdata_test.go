package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCompanies(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": "comp-1", "code": "ATT", "name": "PT Attigo", "isActive": true},
			{"id": "comp-2", "code": "OLD", "name": "PT Lama", "isActive": false}
		]`))
	}))

	companies, err := client.ListCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "ATT", companies[0].Code)
	assert.False(t, companies[1].IsActive)
}

func TestListDepartmentsScopedToCompany(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departments", r.URL.Path)
		assert.Equal(t, "comp-1", r.URL.Query().Get("companyId"))
		_, _ = w.Write([]byte(`[
			{"id": "dep-1", "companyId": "comp-1", "code": "IT", "name": "Information Technology", "type": "department", "isActive": true}
		]`))
	}))

	departments, err := client.ListDepartments(context.Background(), "comp-1")
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "comp-1", departments[0].CompanyID)
}

func TestListDepartmentsUnfiltered(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("companyId"))
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.ListDepartments(context.Background(), "")
	require.NoError(t, err)
}

func TestListJobLevels(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/job-levels", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": "lvl-1", "name": "Staff", "isActive": true}]`))
	}))

	levels, err := client.ListJobLevels(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "Staff", levels[0].Name)
}
