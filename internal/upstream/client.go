// Package upstream talks to the external GraphQL platform that is the system
// of record for every entity. All route handlers go through the single
// Execute entry point instead of repeating the fetch/header/error-branching
// boilerplate per call.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrMissingAPIKey is returned when the upstream API key is not configured.
// This is a deployment failure surfaced at request time.
var ErrMissingAPIKey = errors.New("missing API key")

// Executor is the interface services consume; tests substitute a mock.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any, out any) error
}

// ResponseError is one entry of the GraphQL errors array.
type ResponseError struct {
	Message string         `json:"message"`
	Path    []any          `json:"path,omitempty"`
	Ext     map[string]any `json:"extensions,omitempty"`
}

// TransportError carries the raw GraphQL errors array from a response whose
// top-level errors field was non-empty.
type TransportError struct {
	Errors []ResponseError
}

func (e *TransportError) Error() string {
	if len(e.Errors) == 0 {
		return "upstream returned errors"
	}
	return "upstream error: " + e.Errors[0].Message
}

// MutationIssue is one entry of a mutation payload's errors array.
type MutationIssue struct {
	Message string `json:"message"`
}

// MutationError reports a mutation-level {success:false} payload. Only the
// first error message is surfaced; the rest are discarded.
type MutationError struct {
	Message string
}

func (e *MutationError) Error() string {
	return e.Message
}

// MutationStatus is the {success, errors} envelope every upstream mutation
// payload carries.
type MutationStatus struct {
	Success bool            `json:"success"`
	Errors  []MutationIssue `json:"errors"`
}

// Err converts a failed status into a *MutationError, or nil on success.
func (s MutationStatus) Err() error {
	if s.Success {
		return nil
	}
	msg := "mutation failed"
	if len(s.Errors) > 0 && s.Errors[0].Message != "" {
		msg = s.Errors[0].Message
	}
	return &MutationError{Message: msg}
}

// Client executes GraphQL operations against a fixed endpoint with a bearer
// API key. It holds no per-request state and is safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Client. An empty apiKey is allowed here; Execute reports
// ErrMissingAPIKey per call so handlers can map it to a 500.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

// Execute posts {query, variables} and decodes the data field into out.
// A non-empty top-level errors array yields a *TransportError; network and
// decode failures propagate as-is.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return fmt.Errorf("decoding upstream response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return &TransportError{Errors: gqlResp.Errors}
	}

	if out == nil {
		return nil
	}
	if len(gqlResp.Data) == 0 {
		return fmt.Errorf("upstream response had no data (HTTP %d)", resp.StatusCode)
	}
	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("decoding upstream data: %w", err)
	}
	return nil
}
