package schemas

import (
	"context"
)

// -- Graph Store Interface --

// GraphStore defines the read/write interface for the knowledge graph. The
// pipeline only ever reads from it; writes happen once, at dataset load. The
// abstraction keeps the pipeline independent of how the graph is populated.
type GraphStore interface {
	// AddNode adds a new node to the graph.
	AddNode(ctx context.Context, node Node) error
	// AddEdge adds a new edge between two existing nodes.
	AddEdge(ctx context.Context, edge Edge) error
	// GetNode retrieves a node by its unique ID.
	GetNode(ctx context.Context, id string) (Node, error)
	// GetNodeByName retrieves a node by its exact display name
	// (case-insensitive).
	GetNodeByName(ctx context.Context, name string) (Node, error)
	// GetEdge retrieves an edge by its unique ID.
	GetEdge(ctx context.Context, id string) (Edge, error)
	// GetOutgoingEdges returns the edges leaving a node, in insertion order.
	GetOutgoingEdges(ctx context.Context, nodeID string) ([]Edge, error)
	// GetIncomingEdges returns the edges arriving at a node, in insertion order.
	GetIncomingEdges(ctx context.Context, nodeID string) ([]Edge, error)
	// GetNeighbors retrieves all nodes directly connected to a node, outgoing
	// neighbors first, each in edge insertion order.
	GetNeighbors(ctx context.Context, nodeID string) ([]Node, error)
	// Stats summarizes the graph contents.
	Stats(ctx context.Context) (GraphStats, error)
}

// -- Entity Detection Interfaces --

// EntityDetector scans question text for known entities. Implementations are
// pluggable: the rest of the pipeline depends only on this single method, so
// a future NER or embedding based detector can replace the name matcher
// without touching anything downstream.
type EntityDetector interface {
	// Detect returns the entities recognized in the text, deduplicated by
	// canonical name, in the detector's scan order.
	Detect(text string) []EntityMatch
}

// IntentExtractor reports which relationship types a question appears to ask
// about. Purely advisory: results surface in logs and the REPL, retrieval
// never depends on them.
type IntentExtractor interface {
	// Intents returns the relationship types suggested by the text.
	Intents(text string) []RelationshipType
}

// -- LLM Client Interface --

// LLMClient defines a standard interface for interacting with a Large
// Language Model, abstracting the specifics of the underlying provider
// (Groq, Gemini).
type LLMClient interface {
	// Generate produces a text completion based on the provided request.
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	// Close cleans up any resources held by the client.
	Close() error
}
