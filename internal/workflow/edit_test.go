package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/dhakago/jobdesc-cli/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordWithHistory(version int) *types.JobDescription {
	jd := draftRecord(version)
	for i := 1; i <= version; i++ {
		jd.Versions = append(jd.Versions, types.VersionSnapshot{
			Version:   i,
			ChangedBy: "hr.admin",
		})
	}
	return jd
}

func TestBeginEditSeedsFromCurrentContent(t *testing.T) {
	jd := draftRecord(2)
	jd.MainPurpose = "Analyzes operational data"
	jd.Level = &types.JobLevel{ID: "lvl-1", Name: "Staff"}

	editor := NewEditor(&fakeAPI{}, nil)
	draft := editor.BeginEdit(jd, "hr.admin")

	assert.Equal(t, "jd-1", draft.ID)
	assert.Equal(t, "Data Analyst", draft.Posisi)
	assert.Equal(t, "Staff", draft.Level)
	assert.Equal(t, "Analyzes operational data", draft.MainPurpose)
	assert.Equal(t, "hr.admin", draft.ChangedBy)
	assert.Equal(t, 2, draft.BaseVersion())
	assert.Empty(t, draft.ChangeDescription, "change description must be entered per edit")
}

func TestSaveRequiresChangeDescription(t *testing.T) {
	api := &fakeAPI{}
	editor := NewEditor(api, nil)
	draft := editor.BeginEdit(draftRecord(1), "hr.admin")
	draft.Posisi = "Senior Data Analyst"
	// ChangeDescription left empty.

	_, err := editor.Save(context.Background(), draft)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "changeDescription", validationErr.Field)
	assert.Zero(t, api.updateCalls, "nothing may be sent without a change description")
}

func TestSaveRefreshesFromServer(t *testing.T) {
	api := &fakeAPI{
		updated: recordWithHistory(2),
		record:  recordWithHistory(2),
	}
	editor := NewEditor(api, nil)
	draft := editor.BeginEdit(draftRecord(1), "hr.admin")
	draft.Posisi = "Senior Data Analyst"
	draft.ChangeDescription = "Promoted position scope"

	fresh, err := editor.Save(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Version)
	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 1, api.getCalls, "the saved record is re-read from the server")
}

func TestSaveRemoteFailure(t *testing.T) {
	api := &fakeAPI{err: errors.New("conflict")}
	editor := NewEditor(api, nil)
	draft := editor.BeginEdit(draftRecord(1), "hr.admin")
	draft.ChangeDescription = "Clarified duties"

	_, err := editor.Save(context.Background(), draft)
	require.Error(t, err)
	assert.Equal(t, 1, api.updateCalls)
}

func TestSaveDetectsInconsistentHistory(t *testing.T) {
	// Server claims v3 but returns only one history entry.
	broken := draftRecord(3)
	broken.Versions = []types.VersionSnapshot{{Version: 1, ChangedBy: "hr.admin"}}

	api := &fakeAPI{updated: broken, record: broken}
	editor := NewEditor(api, nil)
	draft := editor.BeginEdit(draftRecord(2), "hr.admin")
	draft.ChangeDescription = "Clarified duties"

	_, err := editor.Save(context.Background(), draft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version history inconsistent")
}
