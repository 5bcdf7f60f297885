package api

import (
	"encoding/json"
	"fmt"
)

// RemoteError represents a network failure or non-2xx response from the
// Job-Description Service. The message is taken from the response body when
// the server provided one.
type RemoteError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *RemoteError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("remote error: %s: %v", e.Message, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("remote error (HTTP %d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("remote error: %s", e.Message)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// ContractError reports a 2xx response whose payload violates the service
// contract (schema mismatch, broken result partition). The local state is
// left unchanged, like any other remote failure.
type ContractError struct {
	Operation string
	Cause     error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: response violates service contract: %v", e.Operation, e.Cause)
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}

// errorBody is the error envelope the service uses for non-2xx responses.
// Some endpoints use "message", some "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// extractMessage pulls a human-readable message out of an error response
// body, falling back to a generic message when the body is not parseable.
func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return "request failed"
}
