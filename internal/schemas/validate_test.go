package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobDescription_Valid(t *testing.T) {
	document := []byte(`{
		"id": "jd-1",
		"jobCode": "JD-2025-001",
		"status": "draft",
		"version": 1,
		"aiGenerated": true,
		"jobInformation": {"posisi": "Data Analyst", "departemen": "IT"},
		"versions": [{"version": 1, "changedBy": "system"}]
	}`)

	assert.NoError(t, ValidateJobDescription(document))
}

func TestValidateJobDescription_MissingRequired(t *testing.T) {
	document := []byte(`{"id": "jd-1", "status": "draft"}`)

	err := ValidateJobDescription(document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJobDescription_UnknownStatus(t *testing.T) {
	document := []byte(`{"id": "jd-1", "jobCode": "JD-2025-001", "status": "pending", "version": 1}`)

	err := ValidateJobDescription(document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJobDescription_VersionBelowOne(t *testing.T) {
	document := []byte(`{"id": "jd-1", "jobCode": "JD-2025-001", "status": "draft", "version": 0}`)

	err := ValidateJobDescription(document)
	require.Error(t, err)
}

func TestValidateJobDescription_NotJSON(t *testing.T) {
	err := ValidateJobDescription([]byte(`not json at all`))
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "unparseable document should be SchemaLoadError type")
}

func TestValidateBulkImportResult_Valid(t *testing.T) {
	document := []byte(`{
		"success": [{"filename": "a.docx", "jobCode": "JD-010", "posisi": "Staff Akuntansi"}],
		"failed": [{"filename": "b.doc", "error": "could not parse document structure"}]
	}`)

	assert.NoError(t, ValidateBulkImportResult(document))
}

func TestValidateBulkImportResult_EmptyLists(t *testing.T) {
	document := []byte(`{"success": [], "failed": []}`)
	assert.NoError(t, ValidateBulkImportResult(document))
}

func TestValidateBulkImportResult_MissingFailedList(t *testing.T) {
	document := []byte(`{"success": []}`)

	err := ValidateBulkImportResult(document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateBulkImportResult_SuccessEntryMissingJobCode(t *testing.T) {
	document := []byte(`{
		"success": [{"filename": "a.docx", "posisi": "Staff Akuntansi"}],
		"failed": []
	}`)

	err := ValidateBulkImportResult(document)
	require.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "jobCode", Message: "jobCode is required"},
	}}
	assert.Contains(t, err.Error(), "jobCode")
	assert.Contains(t, err.Error(), "schema validation failed")
}
