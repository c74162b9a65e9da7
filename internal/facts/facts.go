// Package facts renders traversed edges into the natural-language statements
// that make up the LLM context. Templates are fixed per relationship type;
// edge attributes are appended in a fixed order so the same edge always
// renders to the same sentence.
package facts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
)

// FormatFact renders one edge as a sentence using the resolved display names
// of its endpoints. Attribute annotations follow the sentence in a fixed
// order: year, amount, role (leadership edges only), product. Attributes the
// templates don't know about are ignored.
func FormatFact(edge schemas.Edge, sourceName, targetName string) string {
	var sentence string
	switch edge.Type {
	case schemas.RelationshipFounded:
		sentence = fmt.Sprintf("%s founded %s", sourceName, targetName)
	case schemas.RelationshipCoFounded:
		sentence = fmt.Sprintf("%s co-founded %s", sourceName, targetName)
	case schemas.RelationshipLeads:
		sentence = fmt.Sprintf("%s leads %s", sourceName, targetName)
	case schemas.RelationshipWorksAt:
		sentence = fmt.Sprintf("%s works at %s", sourceName, targetName)
	case schemas.RelationshipInvestedIn:
		sentence = fmt.Sprintf("%s invested in %s", sourceName, targetName)
	case schemas.RelationshipAcquired:
		sentence = fmt.Sprintf("%s acquired %s", sourceName, targetName)
	case schemas.RelationshipPartnersWith:
		sentence = fmt.Sprintf("%s partners with %s", sourceName, targetName)
	case schemas.RelationshipSupplies:
		sentence = fmt.Sprintf("%s supplies to %s", sourceName, targetName)
	default:
		sentence = fmt.Sprintf("%s %s %s", sourceName, edge.Type, targetName)
	}

	// cast tolerates values that went through a JSON round-trip, where every
	// number comes back as float64.
	parts := make([]string, 0, 4)
	if v, ok := edge.Properties["year"]; ok {
		parts = append(parts, "in "+cast.ToString(v))
	}
	if v, ok := edge.Properties["amount"]; ok {
		parts = append(parts, "("+cast.ToString(v)+")")
	}
	if v, ok := edge.Properties["role"]; ok && edge.Type == schemas.RelationshipLeads {
		parts = append(parts, "as "+cast.ToString(v))
	}
	if v, ok := edge.Properties["product"]; ok {
		parts = append(parts, "("+cast.ToString(v)+")")
	}

	if len(parts) > 0 {
		sentence += " " + strings.Join(parts, " ")
	}
	return sentence
}

// Builder assembles context documents from traversal results, resolving node
// IDs to display names through the graph store.
type Builder struct {
	store schemas.GraphStore
	log   *zap.Logger
}

// NewBuilder returns a Builder over the given store.
func NewBuilder(store schemas.GraphStore, logger *zap.Logger) (*Builder, error) {
	if store == nil {
		return nil, errors.New("a graph store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		store: store,
		log:   logger.Named("ContextBuilder"),
	}, nil
}

// BuildContext renders every traversed edge and deduplicates the resulting
// sentences by exact string equality, keeping first occurrences in order. The
// entity names carried on the document come from the detector matches, in
// match order.
func (b *Builder) BuildContext(ctx context.Context, traversal schemas.TraversalResult, entities []schemas.EntityMatch) (schemas.ContextDocument, error) {
	doc := schemas.ContextDocument{
		Entities: make([]string, 0, len(entities)),
		Facts:    make([]string, 0, len(traversal.Edges)),
	}
	for _, entity := range entities {
		doc.Entities = append(doc.Entities, entity.Name)
	}

	names := make(map[string]string)
	resolve := func(id string) (string, error) {
		if name, ok := names[id]; ok {
			return name, nil
		}
		node, err := b.store.GetNode(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to resolve fact endpoint: %w", err)
		}
		names[id] = node.Name
		return node.Name, nil
	}

	seen := make(map[string]bool)
	for _, edge := range traversal.Edges {
		sourceName, err := resolve(edge.From)
		if err != nil {
			return schemas.ContextDocument{}, err
		}
		targetName, err := resolve(edge.To)
		if err != nil {
			return schemas.ContextDocument{}, err
		}

		fact := FormatFact(edge, sourceName, targetName)
		if seen[fact] {
			continue
		}
		seen[fact] = true
		doc.Facts = append(doc.Facts, fact)
	}

	b.log.Debug("Context document assembled",
		zap.Int("entities", len(doc.Entities)),
		zap.Int("facts", len(doc.Facts)),
	)
	return doc, nil
}
