package services

import (
	"context"
	"sync"
)

// MockLLM is a mock implementation of LLMService for testing
type MockLLM struct {
	GenerateReplyFunc func(ctx context.Context, userPrompt string) (string, error)

	// Track calls for testing
	GenerateReplyCalls []string

	mu sync.Mutex // protects all fields above
}

// Ensure MockLLM implements LLMService
var _ LLMService = (*MockLLM)(nil)

// NewMockLLM creates a new mock LLM service
func NewMockLLM() *MockLLM {
	return &MockLLM{
		GenerateReplyCalls: make([]string, 0),
	}
}

// GenerateReply mocks model output generation
func (m *MockLLM) GenerateReply(ctx context.Context, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateReplyCalls = append(m.GenerateReplyCalls, userPrompt)

	if m.GenerateReplyFunc != nil {
		return m.GenerateReplyFunc(ctx, userPrompt)
	}

	// Default behavior - a minimal valid payload
	return `{"npc_reply":"Mock response","mentions":[],"tone":"neutral"}`, nil
}

// SetGenerateReplyError sets up the mock to return an error on GenerateReply
func (m *MockLLM) SetGenerateReplyError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateReplyFunc = func(ctx context.Context, userPrompt string) (string, error) {
		return "", err
	}
}

// SetGenerateReplyResponse sets up the mock to return a fixed payload
func (m *MockLLM) SetGenerateReplyResponse(raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateReplyFunc = func(ctx context.Context, userPrompt string) (string, error) {
		return raw, nil
	}
}

// GetCalls returns a copy of the call tracking data in a thread-safe way
func (m *MockLLM) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]string, len(m.GenerateReplyCalls))
	copy(calls, m.GenerateReplyCalls)
	return calls
}

// Reset clears all call tracking
func (m *MockLLM) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateReplyCalls = make([]string, 0)
	m.GenerateReplyFunc = nil
}
