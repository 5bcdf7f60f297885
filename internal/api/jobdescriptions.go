package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dhakago/jobdesc-cli/internal/schemas"
	"github.com/dhakago/jobdesc-cli/internal/types"
)

// ListParams filters a job description listing.
type ListParams struct {
	CompanyID  string
	Departemen string
	Level      string
	Status     types.Status
	Search     string
	Limit      int
}

// DefaultListLimit matches the page size the service caps listings at.
const DefaultListLimit = 100

func (p ListParams) query() url.Values {
	q := url.Values{}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	if p.CompanyID != "" {
		q.Set("companyId", p.CompanyID)
	}
	if p.Departemen != "" {
		q.Set("departemen", p.Departemen)
	}
	if p.Level != "" {
		q.Set("level", p.Level)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// listEnvelope is the paged wrapper around listing responses.
type listEnvelope struct {
	Data []types.JobDescription `json:"data"`
}

// recordEnvelope wraps a single record response. The raw payload is kept so
// it can be schema-checked before decoding.
type recordEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// decodeRecord schema-checks and decodes a single-record envelope.
func decodeRecord(operation string, env recordEnvelope) (*types.JobDescription, error) {
	if len(env.Data) == 0 {
		return nil, &ContractError{Operation: operation, Cause: fmt.Errorf("response has no data field")}
	}
	if err := schemas.ValidateJobDescription(env.Data); err != nil {
		return nil, &ContractError{Operation: operation, Cause: err}
	}
	var jd types.JobDescription
	if err := json.Unmarshal(env.Data, &jd); err != nil {
		return nil, &ContractError{Operation: operation, Cause: err}
	}
	return &jd, nil
}

// ListJobDescriptions returns a filtered page of job descriptions. Records in
// listings omit their version history.
func (c *Client) ListJobDescriptions(ctx context.Context, params ListParams) ([]types.JobDescription, error) {
	var env listEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/job-descriptions", params.query(), nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetJobDescription returns the full record including its version history.
func (c *Client) GetJobDescription(ctx context.Context, id string) (*types.JobDescription, error) {
	var env recordEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/job-descriptions/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return nil, err
	}
	return decodeRecord("get job description", env)
}

// similarityEnvelope wraps a similarity check response.
type similarityEnvelope struct {
	SimilarMatches []types.SimilarityMatch `json:"similarMatches"`
}

// CheckSimilarity returns candidate matches for a proposed position, ordered
// by similarity descending with creation-time tiebreak. An empty list is a
// normal outcome, not an error.
func (c *Client) CheckSimilarity(ctx context.Context, req types.CheckSimilarityRequest) ([]types.SimilarityMatch, error) {
	var env similarityEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/job-descriptions/check-similarity", nil, req, &env); err != nil {
		return nil, err
	}
	matches := env.SimilarMatches
	types.SortMatches(matches)
	for _, m := range matches {
		if m.Similarity < 0 || m.Similarity > 100 {
			return nil, &ContractError{
				Operation: "check similarity",
				Cause:     fmt.Errorf("similarity %d for %s outside [0,100]", m.Similarity, m.JobCode),
			}
		}
	}
	return matches, nil
}

// Generate asks the service to create a new AI-generated job description.
// The created record starts at version 1 with status draft.
func (c *Client) Generate(ctx context.Context, req types.GenerateRequest) (*types.JobDescription, error) {
	var env recordEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/job-descriptions/generate", nil, req, &env); err != nil {
		return nil, err
	}
	return decodeRecord("generate job description", env)
}

// Update edits an existing record. The server appends the version snapshot
// and owns the new version number and timestamps.
func (c *Client) Update(ctx context.Context, id string, req types.UpdateRequest) (*types.JobDescription, error) {
	var env recordEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/job-descriptions/"+url.PathEscape(id), nil, req, &env); err != nil {
		return nil, err
	}
	return decodeRecord("update job description", env)
}

// Approve transitions a draft record to approved.
func (c *Client) Approve(ctx context.Context, id, approvedBy string) (*types.JobDescription, error) {
	var env recordEnvelope
	req := types.ApproveRequest{ApprovedBy: approvedBy}
	if err := c.doJSON(ctx, http.MethodPost, "/job-descriptions/"+url.PathEscape(id)+"/approve", nil, req, &env); err != nil {
		return nil, err
	}
	return decodeRecord("approve job description", env)
}

// Reject transitions an approved record to rejected.
func (c *Client) Reject(ctx context.Context, id, reason string) (*types.JobDescription, error) {
	var env recordEnvelope
	req := types.RejectRequest{Reason: reason}
	if err := c.doJSON(ctx, http.MethodPost, "/job-descriptions/"+url.PathEscape(id)+"/reject", nil, req, &env); err != nil {
		return nil, err
	}
	return decodeRecord("reject job description", env)
}

// Archive archives a record. Archival is the service's notion of delete;
// records are never hard-deleted.
func (c *Client) Archive(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/job-descriptions/"+url.PathEscape(id), nil, nil, nil)
}

// ExportFormat is a supported export document format.
type ExportFormat string

// Supported export formats.
const (
	ExportPDF  ExportFormat = "pdf"
	ExportDOCX ExportFormat = "docx"
)

// Export streams the rendered document for a record to w.
func (c *Client) Export(ctx context.Context, id string, format ExportFormat, w io.Writer) error {
	switch format {
	case ExportPDF, ExportDOCX:
	default:
		return &RemoteError{Message: fmt.Sprintf("unsupported export format %q", format)}
	}
	path := "/job-descriptions/" + url.PathEscape(id) + "/export/" + string(format)
	return c.doStream(ctx, http.MethodGet, path, w)
}
