// Package workflow implements the job-description lifecycle workflows:
// similarity-gated creation, versioned editing, status transitions, and bulk
// import reconciliation. Workflows validate input before any network call and
// report outcomes through a Notifier port.
package workflow

import (
	"context"

	"github.com/dhakago/jobdesc-cli/internal/types"
)

// CreationState is the state of the similarity-gated creation workflow.
type CreationState string

// Creation workflow states. Failed is reachable from Checking and
// Generating; the form survives failures so the user can retry.
const (
	StateIdle         CreationState = "idle"
	StateChecking     CreationState = "checking"
	StateNoMatches    CreationState = "no_matches"
	StateMatchesFound CreationState = "matches_found"
	StateGenerating   CreationState = "generating"
	StateDone         CreationState = "done"
	StateFailed       CreationState = "failed"
)

// CreationForm holds the user input for a new job description.
type CreationForm struct {
	CompanyID        string
	Posisi           string
	Divisi           string
	Departemen       string
	Level            string
	ReportsTo        string
	ShortDescription string
}

// CreationAPI is the subset of the service client the creation workflow needs.
type CreationAPI interface {
	CheckSimilarity(ctx context.Context, req types.CheckSimilarityRequest) ([]types.SimilarityMatch, error)
	Generate(ctx context.Context, req types.GenerateRequest) (*types.JobDescription, error)
	GetJobDescription(ctx context.Context, id string) (*types.JobDescription, error)
}

// Creation orchestrates "check for duplicates, then either reuse or
// generate" for a single new job description.
type Creation struct {
	api    CreationAPI
	notify Notifier

	state   CreationState
	Form    CreationForm
	matches []types.SimilarityMatch
	created *types.JobDescription
}

// NewCreation creates an idle creation workflow. A nil notifier discards
// notifications.
func NewCreation(api CreationAPI, notify Notifier) *Creation {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Creation{api: api, notify: notify, state: StateIdle}
}

// State returns the current workflow state.
func (w *Creation) State() CreationState {
	return w.state
}

// Matches returns the candidates found by the last similarity check.
func (w *Creation) Matches() []types.SimilarityMatch {
	return w.matches
}

// Created returns the record produced by a successful Generate.
func (w *Creation) Created() *types.JobDescription {
	return w.created
}

// CheckSimilarity checks the service for existing job descriptions similar
// to the form's position. Position and department are required; a missing
// field fails with ValidationError before any request is sent. An empty
// match list is the normal "unique position" outcome, not an error.
func (w *Creation) CheckSimilarity(ctx context.Context) ([]types.SimilarityMatch, error) {
	if w.state == StateChecking || w.state == StateGenerating {
		return nil, &InvalidTransitionError{From: string(w.state), Action: "check similarity"}
	}

	req := types.CheckSimilarityRequest{
		Posisi:     w.Form.Posisi,
		Departemen: w.Form.Departemen,
		Divisi:     w.Form.Divisi,
		CompanyID:  w.Form.CompanyID,
	}
	if err := req.Validate(); err != nil {
		w.notify.Errorf("Position name and department are required")
		return nil, &ValidationError{Field: "posisi/departemen", Message: "position and department are required", Cause: err}
	}

	w.state = StateChecking
	w.matches = nil

	matches, err := w.api.CheckSimilarity(ctx, req)
	if err != nil {
		w.state = StateFailed
		w.notify.Errorf("Failed to check similarity: %v", err)
		return nil, err
	}

	w.matches = matches
	if len(matches) > 0 {
		w.state = StateMatchesFound
		w.notify.Successf("Found %d similar job description(s)", len(matches))
	} else {
		w.state = StateNoMatches
		w.notify.Successf("No similar jobs found. Ready to create new one")
	}
	return matches, nil
}

// UseAsTemplate fetches the full record of a selected match for reference.
// It never mutates workflow state: the caller may still generate afterwards.
func (w *Creation) UseAsTemplate(ctx context.Context, id string) (*types.JobDescription, error) {
	jd, err := w.api.GetJobDescription(ctx, id)
	if err != nil {
		w.notify.Errorf("Failed to load template: %v", err)
		return nil, err
	}
	w.notify.Successf("Template %s loaded", jd.JobCode)
	return jd, nil
}

// Generate creates a new job description from the form. Company, position
// and department are required; a missing field fails with ValidationError
// before any request is sent. On remote failure the workflow keeps the form
// intact so the request can be retried. On success the transient fields are
// reset but the selected company is kept for the next entry in a batch.
func (w *Creation) Generate(ctx context.Context) (*types.JobDescription, error) {
	if w.state == StateChecking || w.state == StateGenerating || w.state == StateDone {
		return nil, &InvalidTransitionError{From: string(w.state), Action: "generate"}
	}

	req := types.GenerateRequest{
		CompanyID:        w.Form.CompanyID,
		Posisi:           w.Form.Posisi,
		Divisi:           w.Form.Divisi,
		Departemen:       w.Form.Departemen,
		Level:            w.Form.Level,
		ReportsTo:        w.Form.ReportsTo,
		ShortDescription: w.Form.ShortDescription,
	}
	if err := req.Validate(); err != nil {
		w.notify.Errorf("Please fill in required fields")
		return nil, &ValidationError{Field: "companyId/posisi/departemen", Message: "company, position and department are required", Cause: err}
	}

	prev := w.state
	w.state = StateGenerating

	jd, err := w.api.Generate(ctx, req)
	if err != nil {
		// Form survives so the user can retry without re-entering fields.
		w.state = prev
		w.notify.Errorf("Failed to create job description: %v", err)
		return nil, err
	}

	w.created = jd
	w.state = StateDone
	w.Form = CreationForm{CompanyID: w.Form.CompanyID}
	w.matches = nil
	w.notify.Successf("Job description %s created", jd.JobCode)
	return jd, nil
}

// Reset returns the workflow to idle for another round, keeping the selected
// company.
func (w *Creation) Reset() {
	w.state = StateIdle
	w.matches = nil
	w.created = nil
	w.Form = CreationForm{CompanyID: w.Form.CompanyID}
}
