package types

import (
	"fmt"
	"strings"
)

// ImportFile is one source document submitted to the bulk importer.
type ImportFile struct {
	Filename string
	Content  []byte
}

// FileSuccess records a source file that was imported as a new job description.
type FileSuccess struct {
	Filename string `json:"filename"`
	JobCode  string `json:"jobCode"`
	Posisi   string `json:"posisi"`
}

// FileFailure records a source file the server could not import.
type FileFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BulkImportResult partitions a bulk import batch into per-file outcomes.
// Every submitted file resolves to exactly one of the two lists.
type BulkImportResult struct {
	Success []FileSuccess `json:"success"`
	Failed  []FileFailure `json:"failed"`
}

// VerifyPartition checks that the success and failed lists together contain
// exactly the submitted filenames, each exactly once. A violation means the
// server broke the bulk-import contract.
func (r *BulkImportResult) VerifyPartition(submitted []string) error {
	seen := make(map[string]int, len(r.Success)+len(r.Failed))
	for _, s := range r.Success {
		seen[s.Filename]++
	}
	for _, f := range r.Failed {
		seen[f.Filename]++
	}

	if len(r.Success)+len(r.Failed) != len(submitted) {
		return fmt.Errorf("result covers %d files, submitted %d", len(r.Success)+len(r.Failed), len(submitted))
	}

	var problems []string
	for _, name := range submitted {
		switch seen[name] {
		case 0:
			problems = append(problems, fmt.Sprintf("%s missing from result", name))
		case 1:
			delete(seen, name)
		default:
			problems = append(problems, fmt.Sprintf("%s appears %d times", name, seen[name]))
			delete(seen, name)
		}
	}
	for name := range seen {
		problems = append(problems, fmt.Sprintf("%s was not submitted", name))
	}

	if len(problems) > 0 {
		return fmt.Errorf("bulk import result is not a partition of the batch: %s", strings.Join(problems, "; "))
	}
	return nil
}
