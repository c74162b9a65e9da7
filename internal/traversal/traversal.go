// Package traversal implements the bounded breadth-first walk that turns
// retrieved start nodes into a connected neighborhood of nodes and edges.
package traversal

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
	"github.com/xkilldash9x/synapse-cli/internal/config"
)

// Traverser walks the graph breadth-first from one or more start nodes up to
// a fixed depth. All ordering is deterministic: the frontier is expanded in
// visit order, neighbors are taken outgoing-first in edge insertion order,
// and the resulting edge list is collected per visited node in visit order.
// Running the same traversal twice over an unchanged store yields identical
// results.
type Traverser struct {
	store           schemas.GraphStore
	maxDepth        int
	includeIncoming bool
	log             *zap.Logger
}

// NewTraverser builds a Traverser over the given store.
func NewTraverser(store schemas.GraphStore, cfg config.GraphConfig, logger *zap.Logger) (*Traverser, error) {
	if store == nil {
		return nil, errors.New("a graph store is required")
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative, got %d", cfg.MaxDepth)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Traverser{
		store:           store,
		maxDepth:        cfg.MaxDepth,
		includeIncoming: cfg.IncludeIncoming,
		log:             logger.Named("Traverser"),
	}, nil
}

// Traverse expands breadth-first from the given start nodes. Every node is
// visited at most once. The returned edges connect visited nodes only: an
// edge whose far endpoint lies beyond the depth limit is excluded, so every
// fact rendered from the result can name both of its endpoints.
//
// A start node with no edges yields a single-node visited set and an empty
// edge list; that is a valid result, not an error. An unknown start node ID
// is an error.
func (t *Traverser) Traverse(ctx context.Context, startIDs []string) (schemas.TraversalResult, error) {
	result := schemas.TraversalResult{
		StartIDs:   make([]string, 0, len(startIDs)),
		VisitedIDs: make([]string, 0),
		Edges:      make([]schemas.Edge, 0),
	}

	visited := make(map[string]bool)
	frontier := make([]string, 0, len(startIDs))

	for _, id := range startIDs {
		if visited[id] {
			continue
		}
		if _, err := t.store.GetNode(ctx, id); err != nil {
			return schemas.TraversalResult{}, fmt.Errorf("invalid traversal start: %w", err)
		}
		visited[id] = true
		result.StartIDs = append(result.StartIDs, id)
		result.VisitedIDs = append(result.VisitedIDs, id)
		frontier = append(frontier, id)
	}

	for depth := 0; depth < t.maxDepth && len(frontier) > 0; depth++ {
		next := make([]string, 0)
		for _, id := range frontier {
			neighbors, err := t.neighborIDs(ctx, id)
			if err != nil {
				return schemas.TraversalResult{}, err
			}
			for _, neighborID := range neighbors {
				if visited[neighborID] {
					continue
				}
				visited[neighborID] = true
				result.VisitedIDs = append(result.VisitedIDs, neighborID)
				next = append(next, neighborID)
			}
		}
		frontier = next
	}

	seenEdges := make(map[string]bool)
	for _, id := range result.VisitedIDs {
		incident, err := t.incidentEdges(ctx, id)
		if err != nil {
			return schemas.TraversalResult{}, err
		}
		for _, edge := range incident {
			if seenEdges[edge.ID] || !visited[edge.From] || !visited[edge.To] {
				continue
			}
			seenEdges[edge.ID] = true
			result.Edges = append(result.Edges, edge)
		}
	}

	t.log.Debug("Traversal complete",
		zap.Strings("start_ids", result.StartIDs),
		zap.Int("visited", len(result.VisitedIDs)),
		zap.Int("edges", len(result.Edges)),
	)
	return result, nil
}

// neighborIDs lists the IDs adjacent to a node in expansion order: targets of
// outgoing edges first, then sources of incoming edges when the walk follows
// both directions. Duplicates are fine; the caller's visited set absorbs them.
func (t *Traverser) neighborIDs(ctx context.Context, nodeID string) ([]string, error) {
	outgoing, err := t.store.GetOutgoingEdges(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to expand node '%s': %w", nodeID, err)
	}

	ids := make([]string, 0, len(outgoing))
	for _, edge := range outgoing {
		ids = append(ids, edge.To)
	}

	if t.includeIncoming {
		incoming, err := t.store.GetIncomingEdges(ctx, nodeID)
		if err != nil {
			return nil, fmt.Errorf("failed to expand node '%s': %w", nodeID, err)
		}
		for _, edge := range incoming {
			ids = append(ids, edge.From)
		}
	}
	return ids, nil
}

// incidentEdges returns the edges considered for collection at a node,
// mirroring the walk's directionality.
func (t *Traverser) incidentEdges(ctx context.Context, nodeID string) ([]schemas.Edge, error) {
	outgoing, err := t.store.GetOutgoingEdges(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect edges for node '%s': %w", nodeID, err)
	}
	if !t.includeIncoming {
		return outgoing, nil
	}

	incoming, err := t.store.GetIncomingEdges(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect edges for node '%s': %w", nodeID, err)
	}
	return append(outgoing, incoming...), nil
}
