package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
)

// execCall records one upstream call for assertions on call counts, order
// and variables.
type execCall struct {
	query string
	vars  map[string]any
}

// mockExec is a hand-rolled upstream.Executor. respond inspects the query
// document and fills out; leaving it nil makes every call a no-op success.
// Safe for concurrent use because the fan-out paths call it from several
// goroutines.
type mockExec struct {
	mu      sync.Mutex
	calls   []execCall
	respond func(query string, vars map[string]any, out any) error
}

func (m *mockExec) Execute(ctx context.Context, query string, vars map[string]any, out any) error {
	m.mu.Lock()
	m.calls = append(m.calls, execCall{query: query, vars: vars})
	m.mu.Unlock()
	if m.respond != nil {
		return m.respond(query, vars, out)
	}
	return nil
}

func (m *mockExec) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// fill unmarshals a JSON fixture into the out parameter of Execute.
func fill(t *testing.T, out any, raw string) {
	t.Helper()
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
}
