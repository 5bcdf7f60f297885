package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/dhakago/jobdesc-cli/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecord = `{
	"id": "jd-1",
	"jobCode": "JD-2025-001",
	"status": "draft",
	"version": 1,
	"aiGenerated": true,
	"mainPurpose": "Analyzes operational data",
	"jobInformation": {"posisi": "Data Analyst", "departemen": "IT"},
	"versions": [{"version": 1, "changedBy": "system", "changeDescription": "Initial version", "createdAt": "2025-06-01T00:00:00Z"}]
}`

func TestListParamsQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := ListParams{}.query()
		assert.Equal(t, "100", q.Get("limit"))
		assert.Empty(t, q.Get("companyId"))
	})

	t.Run("all filters", func(t *testing.T) {
		q := ListParams{
			CompanyID:  "comp-1",
			Departemen: "IT",
			Level:      "Staff",
			Status:     types.StatusApproved,
			Search:     "analyst",
			Limit:      25,
		}.query()
		assert.Equal(t, "comp-1", q.Get("companyId"))
		assert.Equal(t, "IT", q.Get("departemen"))
		assert.Equal(t, "Staff", q.Get("level"))
		assert.Equal(t, "approved", q.Get("status"))
		assert.Equal(t, "analyst", q.Get("search"))
		assert.Equal(t, "25", q.Get("limit"))
	})
}

func TestListJobDescriptions(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/job-descriptions", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": [` + testRecord + `]}`))
	}))

	records, err := client.ListJobDescriptions(context.Background(), ListParams{Status: types.StatusDraft})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "JD-2025-001", records[0].JobCode)
	assert.Equal(t, "draft", gotQuery.Get("status"))
}

func TestGetJobDescription(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/job-descriptions/jd-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": ` + testRecord + `}`))
	}))

	jd, err := client.GetJobDescription(context.Background(), "jd-1")
	require.NoError(t, err)
	assert.Equal(t, "jd-1", jd.ID)
	assert.Equal(t, types.StatusDraft, jd.Status)
	require.Len(t, jd.Versions, 1)
	assert.NoError(t, jd.ValidateVersionLog())
}

func TestGetJobDescriptionSchemaViolation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Missing jobCode and version zero break the record contract.
		_, _ = w.Write([]byte(`{"data": {"id": "jd-1", "status": "draft", "version": 0}}`))
	}))

	_, err := client.GetJobDescription(context.Background(), "jd-1")
	require.Error(t, err)

	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
	assert.Equal(t, "get job description", contractErr.Operation)
}

func TestCheckSimilaritySortsMatches(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/job-descriptions/check-similarity", r.URL.Path)

		var req types.CheckSimilarityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Data Analyst", req.Posisi)

		// Deliberately out of order; the client must not trust it.
		_, _ = w.Write([]byte(`{"similarMatches": [
			{"id": "a", "jobCode": "JD-A", "posisi": "Data Analyst", "departemen": "IT", "status": "approved", "version": 2, "similarity": 60, "createdAt": "2025-01-01T00:00:00Z"},
			{"id": "b", "jobCode": "JD-B", "posisi": "Data Analyst Senior", "departemen": "IT", "status": "draft", "version": 1, "similarity": 95, "createdAt": "2025-02-01T00:00:00Z"}
		]}`))
	}))

	matches, err := client.CheckSimilarity(context.Background(), types.CheckSimilarityRequest{Posisi: "Data Analyst", Departemen: "IT"})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "JD-B", matches[0].JobCode)
	assert.Equal(t, "JD-A", matches[1].JobCode)
}

func TestCheckSimilarityEmptyIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"similarMatches": []}`))
	}))

	matches, err := client.CheckSimilarity(context.Background(), types.CheckSimilarityRequest{Posisi: "Unicorn Wrangler", Departemen: "IT"})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCheckSimilarityScoreOutOfRange(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"similarMatches": [
			{"id": "a", "jobCode": "JD-A", "posisi": "Data Analyst", "departemen": "IT", "status": "draft", "version": 1, "similarity": 140, "createdAt": "2025-01-01T00:00:00Z"}
		]}`))
	}))

	_, err := client.CheckSimilarity(context.Background(), types.CheckSimilarityRequest{Posisi: "Data Analyst", Departemen: "IT"})
	require.Error(t, err)

	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
}

func TestGenerate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/job-descriptions/generate", r.URL.Path)
		assert.Equal(t, "test-secret", r.Header.Get("x-session-secret"))

		var wire map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&wire))
		assert.Equal(t, "IT Manager", wire["atasan_structural"])

		_, _ = w.Write([]byte(`{"data": ` + testRecord + `}`))
	}))

	jd, err := client.Generate(context.Background(), types.GenerateRequest{
		CompanyID:  "comp-1",
		Posisi:     "Data Analyst",
		Departemen: "IT",
		ReportsTo:  "IT Manager",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, jd.Version)
	assert.Equal(t, types.StatusDraft, jd.Status)
	assert.True(t, jd.AIGenerated)
}

func TestUpdateAndTransitions(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"data": ` + testRecord + `}`))
	}))

	ctx := context.Background()
	_, err := client.Update(ctx, "jd-1", types.UpdateRequest{ChangedBy: "hr.admin", ChangeDescription: "Clarified purpose"})
	require.NoError(t, err)
	_, err = client.Approve(ctx, "jd-1", "manager")
	require.NoError(t, err)
	_, err = client.Reject(ctx, "jd-1", "Outdated")
	require.NoError(t, err)
	require.NoError(t, client.Archive(ctx, "jd-1"))

	assert.Equal(t, []string{
		"PUT /job-descriptions/jd-1",
		"POST /job-descriptions/jd-1/approve",
		"POST /job-descriptions/jd-1/reject",
		"DELETE /job-descriptions/jd-1",
	}, paths)
}

func TestExport(t *testing.T) {
	content := []byte("%PDF-1.7 fake document bytes")
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/job-descriptions/jd-1/export/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(content)
	}))

	var buf bytes.Buffer
	require.NoError(t, client.Export(context.Background(), "jd-1", ExportPDF, &buf))
	assert.Equal(t, content, buf.Bytes())
}

func TestExportUnsupportedFormat(t *testing.T) {
	client, err := New("https://jobdesc.example.com/api", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = client.Export(context.Background(), "jd-1", ExportFormat("xlsx"), &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xlsx")
}
