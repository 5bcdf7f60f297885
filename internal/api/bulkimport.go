package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dhakago/jobdesc-cli/internal/schemas"
	"github.com/dhakago/jobdesc-cli/internal/types"
)

// bulkImportResponse is the raw bulk import response. Results are kept raw
// for the schema check.
type bulkImportResponse struct {
	Message string          `json:"message"`
	Results json.RawMessage `json:"results"`
}

// BulkImport submits a batch of source documents as one multipart request.
// The server processes each file independently; the returned result
// partitions the batch into per-file successes and failures. The returned
// string is the server's human-readable summary message.
func (c *Client) BulkImport(ctx context.Context, files []types.ImportFile, companyID string, useAI bool) (*types.BulkImportResult, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := mw.CreateFormFile("files", f.Filename)
		if err != nil {
			return nil, "", &RemoteError{Message: fmt.Sprintf("failed to encode file %s", f.Filename), Cause: err}
		}
		if _, err := io.Copy(part, bytes.NewReader(f.Content)); err != nil {
			return nil, "", &RemoteError{Message: fmt.Sprintf("failed to encode file %s", f.Filename), Cause: err}
		}
	}
	if err := mw.WriteField("companyId", companyID); err != nil {
		return nil, "", &RemoteError{Message: "failed to encode batch fields", Cause: err}
	}
	if err := mw.WriteField("useAI", strconv.FormatBool(useAI)); err != nil {
		return nil, "", &RemoteError{Message: "failed to encode batch fields", Cause: err}
	}
	if err := mw.Close(); err != nil {
		return nil, "", &RemoteError{Message: "failed to finalize multipart body", Cause: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/bulk-upload/word-files", nil, &buf)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", &RemoteError{Message: "bulk import request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &RemoteError{StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &RemoteError{StatusCode: resp.StatusCode, Message: extractMessage(respBody)}
	}

	var parsed bulkImportResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, "", &RemoteError{StatusCode: resp.StatusCode, Message: "failed to decode response body", Cause: err}
	}
	if len(parsed.Results) == 0 {
		return nil, "", &ContractError{Operation: "bulk import", Cause: fmt.Errorf("response has no results field")}
	}
	if err := schemas.ValidateBulkImportResult(parsed.Results); err != nil {
		return nil, "", &ContractError{Operation: "bulk import", Cause: err}
	}

	var result types.BulkImportResult
	if err := json.Unmarshal(parsed.Results, &result); err != nil {
		return nil, "", &ContractError{Operation: "bulk import", Cause: err}
	}
	return &result, parsed.Message, nil
}
