// File: internal/mocks/mocks.go
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xkilldash9x/synapse-cli/api/schemas"
)

// -- LLM Client Mock --

// MockLLMClient mocks the schemas.LLMClient interface.
type MockLLMClient struct {
	mock.Mock
}

// Generate provides a mock function for LLM calls.
func (m *MockLLMClient) Generate(ctx context.Context, req schemas.GenerationRequest) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// Close provides a mock function for releasing client resources.
func (m *MockLLMClient) Close() error {
	return m.Called().Error(0)
}

// -- Graph Store Mock --

// MockGraphStore mocks the schemas.GraphStore interface.
type MockGraphStore struct {
	mock.Mock
}

func (m *MockGraphStore) AddNode(ctx context.Context, node schemas.Node) error {
	return m.Called(ctx, node).Error(0)
}

func (m *MockGraphStore) AddEdge(ctx context.Context, edge schemas.Edge) error {
	return m.Called(ctx, edge).Error(0)
}

func (m *MockGraphStore) GetNode(ctx context.Context, id string) (schemas.Node, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return schemas.Node{}, args.Error(1)
	}
	return args.Get(0).(schemas.Node), args.Error(1)
}

func (m *MockGraphStore) GetNodeByName(ctx context.Context, name string) (schemas.Node, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return schemas.Node{}, args.Error(1)
	}
	return args.Get(0).(schemas.Node), args.Error(1)
}

func (m *MockGraphStore) GetEdge(ctx context.Context, id string) (schemas.Edge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return schemas.Edge{}, args.Error(1)
	}
	return args.Get(0).(schemas.Edge), args.Error(1)
}

func (m *MockGraphStore) GetOutgoingEdges(ctx context.Context, nodeID string) ([]schemas.Edge, error) {
	args := m.Called(ctx, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Edge), args.Error(1)
}

func (m *MockGraphStore) GetIncomingEdges(ctx context.Context, nodeID string) ([]schemas.Edge, error) {
	args := m.Called(ctx, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Edge), args.Error(1)
}

func (m *MockGraphStore) GetNeighbors(ctx context.Context, nodeID string) ([]schemas.Node, error) {
	args := m.Called(ctx, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.Node), args.Error(1)
}

func (m *MockGraphStore) Stats(ctx context.Context) (schemas.GraphStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return schemas.GraphStats{}, args.Error(1)
	}
	return args.Get(0).(schemas.GraphStats), args.Error(1)
}

// -- Question Analyzer Mock --

// MockQuestionAnalyzer mocks the detector surface the pipeline consumes
// (schemas.EntityDetector plus schemas.IntentExtractor).
type MockQuestionAnalyzer struct {
	mock.Mock
}

func (m *MockQuestionAnalyzer) Detect(text string) []schemas.EntityMatch {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]schemas.EntityMatch)
}

func (m *MockQuestionAnalyzer) Intents(text string) []schemas.RelationshipType {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]schemas.RelationshipType)
}
