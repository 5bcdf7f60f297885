package workflow

import (
	"context"

	"github.com/dhakago/jobdesc-cli/internal/types"
)

// Confirmer gates destructive actions. The network call is issued only after
// Confirm answers true; declining is the manual "cancel before commit" since
// no undo exists.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// StatusAPI is the subset of the service client the status machine needs.
type StatusAPI interface {
	Approve(ctx context.Context, id, approvedBy string) (*types.JobDescription, error)
	Reject(ctx context.Context, id, reason string) (*types.JobDescription, error)
	Archive(ctx context.Context, id string) error
}

// StatusMachine governs the draft/approved/rejected/archived lifecycle.
// Allowed edges:
//
//	draft    --approve--> approved
//	approved --reject --> rejected
//	draft, approved, rejected --archive--> archived
//
// Archived is terminal. Transitions never change the record's version.
type StatusMachine struct {
	api     StatusAPI
	notify  Notifier
	confirm Confirmer
}

// NewStatusMachine creates a StatusMachine. A nil notifier discards
// notifications; a nil confirmer declines every destructive action.
func NewStatusMachine(api StatusAPI, notify Notifier, confirm Confirmer) *StatusMachine {
	if notify == nil {
		notify = NopNotifier{}
	}
	if confirm == nil {
		confirm = ConfirmerFunc(func(string) bool { return false })
	}
	return &StatusMachine{api: api, notify: notify, confirm: confirm}
}

// Approve transitions a draft record to approved. Calling it from any other
// status is a caller error and issues no network call.
func (m *StatusMachine) Approve(ctx context.Context, jd *types.JobDescription, approverID string) (*types.JobDescription, error) {
	if jd.Status != types.StatusDraft {
		return nil, &InvalidTransitionError{From: string(jd.Status), Action: "approve"}
	}
	req := types.ApproveRequest{ApprovedBy: approverID}
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Field: "approvedBy", Message: "approver is required", Cause: err}
	}

	updated, err := m.api.Approve(ctx, jd.ID, approverID)
	if err != nil {
		m.notify.Errorf("Failed to approve: %v", err)
		return nil, err
	}
	m.notify.Successf("Job description %s approved", updated.JobCode)
	return updated, nil
}

// Reject transitions an approved record to rejected. The reason is required.
func (m *StatusMachine) Reject(ctx context.Context, jd *types.JobDescription, reason string) (*types.JobDescription, error) {
	if jd.Status != types.StatusApproved {
		return nil, &InvalidTransitionError{From: string(jd.Status), Action: "reject"}
	}
	req := types.RejectRequest{Reason: reason}
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Field: "reason", Message: "rejection reason is required", Cause: err}
	}

	updated, err := m.api.Reject(ctx, jd.ID, reason)
	if err != nil {
		m.notify.Errorf("Failed to reject: %v", err)
		return nil, err
	}
	m.notify.Successf("Job description %s rejected", updated.JobCode)
	return updated, nil
}

// Archive archives a record from draft, approved or rejected. Archival is
// irreversible, so the confirmer must answer yes before the request is
// issued; declining returns false with no error and no network call. The
// returned bool reports whether the record was archived.
func (m *StatusMachine) Archive(ctx context.Context, jd *types.JobDescription) (bool, error) {
	if jd.Status.Terminal() {
		return false, &InvalidTransitionError{From: string(jd.Status), Action: "archive"}
	}
	if !jd.Status.Valid() {
		return false, &InvalidTransitionError{From: string(jd.Status), Action: "archive"}
	}

	if !m.confirm.Confirm("Archive job description " + jd.JobCode + "? This cannot be undone.") {
		m.notify.Infof("Archive cancelled")
		return false, nil
	}

	if err := m.api.Archive(ctx, jd.ID); err != nil {
		m.notify.Errorf("Failed to archive: %v", err)
		return false, err
	}
	m.notify.Successf("Job description %s archived", jd.JobCode)
	return true, nil
}
