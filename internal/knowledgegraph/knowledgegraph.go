package knowledgegraph

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
)

// InMemoryKG provides a fast, ephemeral, in-memory implementation of the
// GraphStore interface. The dataset is loaded into it once at startup and
// treated as immutable afterwards, so adds reject duplicates instead of
// overwriting.
type InMemoryKG struct {
	nodes         map[string]schemas.Node
	edges         map[string]schemas.Edge // Key: edge ID
	names         map[string]string       // Key: lowercased display name, Value: node ID
	outgoingEdges map[string][]string     // Key: node ID, Value: edge IDs in insertion order
	incomingEdges map[string][]string     // Key: node ID, Value: edge IDs in insertion order
	mu            sync.RWMutex
	log           *zap.Logger
}

// Ensures InMemoryKG correctly implements the GraphStore interface at compile time.
var _ schemas.GraphStore = (*InMemoryKG)(nil)

// NewInMemoryKG creates a new, empty in-memory knowledge graph.
func NewInMemoryKG(logger *zap.Logger) (*InMemoryKG, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryKG{
		nodes:         make(map[string]schemas.Node),
		edges:         make(map[string]schemas.Edge),
		names:         make(map[string]string),
		outgoingEdges: make(map[string][]string),
		incomingEdges: make(map[string][]string),
		log:           logger.Named("InMemoryKG"),
	}, nil
}

// AddNode adds a node to the graph. Both the ID and the display name must be
// unique; name lookups are case-insensitive, so names that differ only in
// casing collide.
func (kg *InMemoryKG) AddNode(ctx context.Context, node schemas.Node) error {
	kg.mu.Lock()
	defer kg.mu.Unlock()

	if node.ID == "" {
		return fmt.Errorf("node must have an id")
	}
	if node.Name == "" {
		return fmt.Errorf("node '%s' must have a display name", node.ID)
	}
	if _, exists := kg.nodes[node.ID]; exists {
		return fmt.Errorf("node with id '%s' already exists", node.ID)
	}
	nameKey := strings.ToLower(node.Name)
	if existingID, exists := kg.names[nameKey]; exists {
		return fmt.Errorf("node name '%s' already taken by node '%s'", node.Name, existingID)
	}

	kg.nodes[node.ID] = node.Clone()
	kg.names[nameKey] = node.ID
	kg.log.Debug("Node added", zap.String("ID", node.ID), zap.String("Type", string(node.Type)))
	return nil
}

// AddEdge adds an edge to the graph. Both endpoints must already exist and
// the edge ID must be unique; the per-node indexes record the edge in
// insertion order, which downstream traversal relies on for determinism.
func (kg *InMemoryKG) AddEdge(ctx context.Context, edge schemas.Edge) error {
	kg.mu.Lock()
	defer kg.mu.Unlock()

	if edge.ID == "" {
		return fmt.Errorf("edge must have an id")
	}
	if _, exists := kg.nodes[edge.From]; !exists {
		return fmt.Errorf("source node with id '%s' not found for edge", edge.From)
	}
	if _, exists := kg.nodes[edge.To]; !exists {
		return fmt.Errorf("destination node with id '%s' not found for edge", edge.To)
	}
	if _, exists := kg.edges[edge.ID]; exists {
		return fmt.Errorf("edge with id '%s' already exists", edge.ID)
	}

	kg.edges[edge.ID] = edge.Clone()
	kg.outgoingEdges[edge.From] = append(kg.outgoingEdges[edge.From], edge.ID)
	kg.incomingEdges[edge.To] = append(kg.incomingEdges[edge.To], edge.ID)

	kg.log.Debug("Edge added",
		zap.String("ID", edge.ID),
		zap.String("From", edge.From),
		zap.String("To", edge.To),
		zap.String("Type", string(edge.Type)))
	return nil
}

// GetNode retrieves a node by its ID.
func (kg *InMemoryKG) GetNode(ctx context.Context, id string) (schemas.Node, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	node, ok := kg.nodes[id]
	if !ok {
		return schemas.Node{}, fmt.Errorf("node with id '%s' not found", id)
	}
	return node.Clone(), nil
}

// GetNodeByName retrieves a node by its exact display name. The comparison is
// case-insensitive; partial names do not match.
func (kg *InMemoryKG) GetNodeByName(ctx context.Context, name string) (schemas.Node, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	id, ok := kg.names[strings.ToLower(name)]
	if !ok {
		return schemas.Node{}, fmt.Errorf("node with name '%s' not found", name)
	}
	return kg.nodes[id].Clone(), nil
}

// GetEdge retrieves an edge by its ID.
func (kg *InMemoryKG) GetEdge(ctx context.Context, id string) (schemas.Edge, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	edge, ok := kg.edges[id]
	if !ok {
		return schemas.Edge{}, fmt.Errorf("edge with id '%s' not found", id)
	}
	return edge.Clone(), nil
}

// GetOutgoingEdges retrieves the edges leaving a node, in insertion order.
func (kg *InMemoryKG) GetOutgoingEdges(ctx context.Context, nodeID string) ([]schemas.Edge, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()
	return kg.collectEdges(nodeID, kg.outgoingEdges)
}

// GetIncomingEdges retrieves the edges arriving at a node, in insertion order.
func (kg *InMemoryKG) GetIncomingEdges(ctx context.Context, nodeID string) ([]schemas.Edge, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()
	return kg.collectEdges(nodeID, kg.incomingEdges)
}

// collectEdges resolves a node's edge-ID index into edge values. Assumes the
// caller holds at least a read lock.
func (kg *InMemoryKG) collectEdges(nodeID string, index map[string][]string) ([]schemas.Edge, error) {
	if _, ok := kg.nodes[nodeID]; !ok {
		return nil, fmt.Errorf("node with id '%s' not found", nodeID)
	}

	edgeIDs := index[nodeID]
	edges := make([]schemas.Edge, 0, len(edgeIDs))
	for _, edgeID := range edgeIDs {
		edge, ok := kg.edges[edgeID]
		if !ok {
			kg.log.Warn("Inconsistency found: edge ID in index but not in edges map", zap.String("edge_id", edgeID))
			continue
		}
		edges = append(edges, edge.Clone())
	}
	return edges, nil
}

// GetNeighbors finds all nodes directly connected to the given node, outgoing
// neighbors first, each group in edge insertion order, deduplicated by ID.
func (kg *InMemoryKG) GetNeighbors(ctx context.Context, nodeID string) ([]schemas.Node, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	if _, ok := kg.nodes[nodeID]; !ok {
		return nil, fmt.Errorf("node with id '%s' not found", nodeID)
	}

	seen := make(map[string]bool)
	neighbors := make([]schemas.Node, 0)
	appendNeighbor := func(id string) {
		if seen[id] {
			return
		}
		node, ok := kg.nodes[id]
		if !ok {
			kg.log.Warn("Inconsistency found: neighbor node not found", zap.String("node_id", id))
			return
		}
		seen[id] = true
		neighbors = append(neighbors, node.Clone())
	}

	for _, edgeID := range kg.outgoingEdges[nodeID] {
		if edge, ok := kg.edges[edgeID]; ok {
			appendNeighbor(edge.To)
		}
	}
	for _, edgeID := range kg.incomingEdges[nodeID] {
		if edge, ok := kg.edges[edgeID]; ok {
			appendNeighbor(edge.From)
		}
	}
	return neighbors, nil
}

// Stats summarizes the graph contents for display.
func (kg *InMemoryKG) Stats(ctx context.Context) (schemas.GraphStats, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	stats := schemas.GraphStats{
		NodeCount:   len(kg.nodes),
		EdgeCount:   len(kg.edges),
		NodesByType: make(map[schemas.NodeType]int),
	}
	for _, node := range kg.nodes {
		stats.NodesByType[node.Type]++
	}
	return stats, nil
}
