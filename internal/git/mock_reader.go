package git

import "context"

// MockReader is a test double for RepositoryReader.
// It allows tests to provide predefined log text without needing a real Git repository.
type MockReader struct {
	Log   string
	Error error
}

// NewMockReader creates a new MockReader with the given data.
func NewMockReader(log string, err error) *MockReader {
	return &MockReader{
		Log:   log,
		Error: err,
	}
}

// ReadLog returns the predefined log text or error.
func (m *MockReader) ReadLog(_ context.Context) (string, error) {
	return m.Log, m.Error
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*MockReader)(nil)
