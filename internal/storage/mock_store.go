package storage

import (
	"context"
	"sync"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

// MockStore is an in-memory DocumentStore for testing.
type MockStore struct {
	mu     sync.RWMutex
	docs   map[string][]byte
	failOn map[string]error
	calls  MockCalls
	writes []string
}

// MockCalls tracks method invocations for test verification.
type MockCalls struct {
	Read  int
	Write int
}

// NewMockStore creates an in-memory store seeded with docs.
func NewMockStore(docs map[string]string) *MockStore {
	m := &MockStore{
		docs:   make(map[string][]byte, len(docs)),
		failOn: make(map[string]error),
	}
	for path, content := range docs {
		m.docs[path] = []byte(content)
	}
	return m
}

// FailWrite makes every later Write to path return err.
func (m *MockStore) FailWrite(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOn[path] = err
}

// Read returns the stored document.
func (m *MockStore) Read(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Read++

	data, ok := m.docs[path]
	if !ok {
		return nil, ferrors.WrapError(ErrNotFound{Path: path}, ferrors.CategoryNotFound, "document not found").
			WithContext("path", path).
			Build()
	}
	return append([]byte(nil), data...), nil
}

// Write stores the document, or fails if FailWrite was set for path.
func (m *MockStore) Write(_ context.Context, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls.Write++

	if err, ok := m.failOn[path]; ok {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write document failed").
			Fatal().
			WithContext("path", path).
			Build()
	}
	m.docs[path] = append([]byte(nil), data...)
	m.writes = append(m.writes, path)
	return nil
}

// Get returns the current content of path and whether it exists.
func (m *MockStore) Get(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.docs[path]
	return string(data), ok
}

// Calls returns the invocation counters.
func (m *MockStore) Calls() MockCalls {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Writes returns the paths written so far, in order.
func (m *MockStore) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.writes...)
}
