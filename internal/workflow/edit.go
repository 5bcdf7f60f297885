package workflow

import (
	"context"
	"fmt"

	"github.com/dhakago/jobdesc-cli/internal/types"
)

// EditAPI is the subset of the service client the edit manager needs.
type EditAPI interface {
	Update(ctx context.Context, id string, req types.UpdateRequest) (*types.JobDescription, error)
	GetJobDescription(ctx context.Context, id string) (*types.JobDescription, error)
}

// EditDraft is an editable copy of a job description's current content plus
// the required change description for the version history.
type EditDraft struct {
	ID          string
	Posisi      string
	Divisi      string
	Departemen  string
	Level       string
	MainPurpose string

	ChangedBy         string
	ChangeDescription string

	baseVersion int
}

// BaseVersion returns the version the draft was seeded from.
func (d *EditDraft) BaseVersion() int {
	return d.baseVersion
}

// Editor governs mutation of existing job descriptions, making every content
// edit auditable through the version history.
type Editor struct {
	api    EditAPI
	notify Notifier
}

// NewEditor creates an Editor. A nil notifier discards notifications.
func NewEditor(api EditAPI, notify Notifier) *Editor {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Editor{api: api, notify: notify}
}

// BeginEdit seeds an editable draft from the record's current content. The
// change description starts empty and must be filled before saving.
func (e *Editor) BeginEdit(jd *types.JobDescription, changedBy string) *EditDraft {
	levelName := ""
	if jd.Level != nil {
		levelName = jd.Level.Name
	}
	return &EditDraft{
		ID:          jd.ID,
		Posisi:      jd.JobInformation.Posisi,
		Divisi:      jd.JobInformation.Divisi,
		Departemen:  jd.JobInformation.Departemen,
		Level:       levelName,
		MainPurpose: jd.MainPurpose,
		ChangedBy:   changedBy,
		baseVersion: jd.Version,
	}
}

// Save submits the draft. An empty change description is a hard precondition
// failure: Save returns ValidationError without sending a request. On
// success the record is re-fetched from the server, which is the sole
// authority for version numbering and timestamps; the new version is never
// computed locally. Every accepted save increases the version by exactly 1
// and appends exactly one snapshot.
func (e *Editor) Save(ctx context.Context, draft *EditDraft) (*types.JobDescription, error) {
	req := types.UpdateRequest{
		Posisi:            draft.Posisi,
		Divisi:            draft.Divisi,
		Departemen:        draft.Departemen,
		Level:             draft.Level,
		MainPurpose:       draft.MainPurpose,
		ChangedBy:         draft.ChangedBy,
		ChangeDescription: draft.ChangeDescription,
	}
	if err := req.Validate(); err != nil {
		e.notify.Errorf("Please provide change description")
		return nil, &ValidationError{Field: "changeDescription", Message: "change description is required", Cause: err}
	}

	if _, err := e.api.Update(ctx, draft.ID, req); err != nil {
		e.notify.Errorf("Failed to save changes: %v", err)
		return nil, err
	}

	fresh, err := e.api.GetJobDescription(ctx, draft.ID)
	if err != nil {
		e.notify.Errorf("Saved, but failed to reload record: %v", err)
		return nil, err
	}
	if err := fresh.ValidateVersionLog(); err != nil {
		return nil, fmt.Errorf("version history inconsistent after save: %w", err)
	}

	e.notify.Successf("Job description updated to v%d", fresh.Version)
	return fresh, nil
}
