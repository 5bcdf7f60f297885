package workflow

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhakago/jobdesc-cli/internal/types"
)

// AutoCloseDelay is how long a fully successful import stays visible before
// the workflow auto-advances.
const AutoCloseDelay = 2 * time.Second

// acceptedExtensions are the document types the importer supports.
var acceptedExtensions = map[string]bool{
	".doc":  true,
	".docx": true,
}

// ImportAPI is the subset of the service client the reconciler needs.
type ImportAPI interface {
	BulkImport(ctx context.Context, files []types.ImportFile, companyID string, useAI bool) (*types.BulkImportResult, string, error)
}

// ImportOutcome is the reconciled result of one bulk import submission.
type ImportOutcome struct {
	Result   types.BulkImportResult
	Message  string
	Accepted []string
	Dropped  []string
}

// AutoClose reports whether the workflow may auto-advance: only when every
// accepted file imported successfully. Any failure keeps the outcome open
// until dismissed, so partial success is never silently discarded.
func (o *ImportOutcome) AutoClose() bool {
	return len(o.Result.Failed) == 0
}

// FilterFiles splits files into the accepted-extension set and the dropped
// filenames. Rejected files never reach the outgoing batch.
func FilterFiles(files []types.ImportFile) (accepted []types.ImportFile, dropped []string) {
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Filename))
		if acceptedExtensions[ext] {
			accepted = append(accepted, f)
		} else {
			dropped = append(dropped, f.Filename)
		}
	}
	return accepted, dropped
}

// Importer orchestrates a one-shot multi-document import. Each file is an
// independent unit of work on the server: one malformed file cannot block
// the rest.
type Importer struct {
	api    ImportAPI
	notify Notifier
}

// NewImporter creates an Importer. A nil notifier discards notifications.
func NewImporter(api ImportAPI, notify Notifier) *Importer {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Importer{api: api, notify: notify}
}

// Submit filters the files to the supported extensions and sends the
// remainder as a single batch. A missing company or an empty accepted set
// fails with ValidationError before any request. The response partition is
// verified: every accepted file appears in exactly one of the success and
// failed lists, exactly once.
func (i *Importer) Submit(ctx context.Context, files []types.ImportFile, companyID string, useAI bool) (*ImportOutcome, error) {
	if companyID == "" {
		i.notify.Errorf("Please select a company")
		return nil, &ValidationError{Field: "companyId", Message: "company is required"}
	}
	if len(files) == 0 {
		i.notify.Errorf("Please select files to upload")
		return nil, &ValidationError{Field: "files", Message: "at least one file is required"}
	}

	accepted, dropped := FilterFiles(files)
	if len(dropped) > 0 {
		i.notify.Errorf("%d file(s) skipped (only .doc/.docx allowed)", len(dropped))
	}
	if len(accepted) == 0 {
		return nil, &ValidationError{Field: "files", Message: "no supported files remain after filtering"}
	}

	acceptedNames := make([]string, len(accepted))
	for n, f := range accepted {
		acceptedNames[n] = f.Filename
	}

	result, message, err := i.api.BulkImport(ctx, accepted, companyID, useAI)
	if err != nil {
		i.notify.Errorf("Upload failed: %v", err)
		return nil, err
	}
	if err := result.VerifyPartition(acceptedNames); err != nil {
		i.notify.Errorf("Upload result inconsistent: %v", err)
		return nil, err
	}

	outcome := &ImportOutcome{
		Result:   *result,
		Message:  message,
		Accepted: acceptedNames,
		Dropped:  dropped,
	}
	if message != "" {
		i.notify.Successf("%s", message)
	}
	i.notify.Infof("Imported %d file(s), %d failed", len(result.Success), len(result.Failed))
	return outcome, nil
}
