// Package dataset holds the fixed demonstration graph: a handful of tech
// founders and companies with typed relationships between them. The data is
// static; every accessor returns defensive copies so callers can never
// corrupt the canonical literals.
package dataset

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
)

// -- People --

var people = []schemas.Node{
	{ID: "p1", Name: "Elon Musk", Type: schemas.NodePerson, Properties: schemas.Properties{"role": "CEO"}},
	{ID: "p2", Name: "Sam Altman", Type: schemas.NodePerson, Properties: schemas.Properties{"role": "CEO"}},
	{ID: "p3", Name: "Satya Nadella", Type: schemas.NodePerson, Properties: schemas.Properties{"role": "CEO"}},
	{ID: "p4", Name: "Jensen Huang", Type: schemas.NodePerson, Properties: schemas.Properties{"role": "CEO"}},
	{ID: "p5", Name: "Demis Hassabis", Type: schemas.NodePerson, Properties: schemas.Properties{"role": "CEO"}},
}

// -- Companies --

var companies = []schemas.Node{
	{ID: "c1", Name: "Tesla", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "automotive"}},
	{ID: "c2", Name: "SpaceX", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "aerospace"}},
	{ID: "c3", Name: "OpenAI", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "AI"}},
	{ID: "c4", Name: "Microsoft", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "technology"}},
	{ID: "c5", Name: "NVIDIA", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "semiconductors"}},
	{ID: "c6", Name: "DeepMind", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "AI"}},
	{ID: "c7", Name: "Google", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "technology"}},
	{ID: "c8", Name: "Neuralink", Type: schemas.NodeCompany, Properties: schemas.Properties{"industry": "neurotechnology"}},
}

// -- Relationships --
// Edge IDs r1..r17 encode insertion order; traversal tie-breaking and fact
// ordering both lean on it.

var relationships = []schemas.Edge{
	// Elon Musk's connections.
	{ID: "r1", From: "p1", To: "c1", Type: schemas.RelationshipFounded, Properties: schemas.Properties{"year": 2003}},
	{ID: "r2", From: "p1", To: "c2", Type: schemas.RelationshipFounded, Properties: schemas.Properties{"year": 2002}},
	{ID: "r3", From: "p1", To: "c8", Type: schemas.RelationshipFounded, Properties: schemas.Properties{"year": 2016}},
	{ID: "r4", From: "p1", To: "c1", Type: schemas.RelationshipLeads, Properties: schemas.Properties{"role": "CEO"}},
	{ID: "r5", From: "p1", To: "c2", Type: schemas.RelationshipLeads, Properties: schemas.Properties{"role": "CEO"}},

	// Sam Altman's connections.
	{ID: "r6", From: "p2", To: "c3", Type: schemas.RelationshipLeads, Properties: schemas.Properties{"role": "CEO"}},
	{ID: "r7", From: "p2", To: "c3", Type: schemas.RelationshipCoFounded, Properties: schemas.Properties{"year": 2015}},

	// Satya Nadella's connections.
	{ID: "r8", From: "p3", To: "c4", Type: schemas.RelationshipLeads, Properties: schemas.Properties{"role": "CEO"}},

	// Jensen Huang's connections.
	{ID: "r9", From: "p4", To: "c5", Type: schemas.RelationshipFounded, Properties: schemas.Properties{"year": 1993}},
	{ID: "r10", From: "p4", To: "c5", Type: schemas.RelationshipLeads, Properties: schemas.Properties{"role": "CEO"}},

	// Demis Hassabis's connections.
	{ID: "r11", From: "p5", To: "c6", Type: schemas.RelationshipFounded, Properties: schemas.Properties{"year": 2010}},
	{ID: "r12", From: "p5", To: "c6", Type: schemas.RelationshipLeads, Properties: schemas.Properties{"role": "CEO"}},

	// Company-to-company relationships.
	{ID: "r13", From: "c4", To: "c3", Type: schemas.RelationshipInvestedIn, Properties: schemas.Properties{"amount": "$13B", "year": 2023}},
	{ID: "r14", From: "c4", To: "c3", Type: schemas.RelationshipPartnersWith, Properties: schemas.Properties{"type": "strategic"}},
	{ID: "r15", From: "c7", To: "c6", Type: schemas.RelationshipAcquired, Properties: schemas.Properties{"year": 2014}},
	{ID: "r16", From: "c5", To: "c3", Type: schemas.RelationshipSupplies, Properties: schemas.Properties{"product": "GPUs"}},
	{ID: "r17", From: "c5", To: "c4", Type: schemas.RelationshipPartnersWith, Properties: schemas.Properties{"type": "hardware"}},
}

// -- Aliases --
// Short and informal forms people actually type. Ordered; the detector scans
// canonical names first, then these.

var aliases = []schemas.NameAlias{
	{Alias: "elon", Canonical: "Elon Musk"},
	{Alias: "musk", Canonical: "Elon Musk"},
	{Alias: "sam", Canonical: "Sam Altman"},
	{Alias: "altman", Canonical: "Sam Altman"},
	{Alias: "satya", Canonical: "Satya Nadella"},
	{Alias: "nadella", Canonical: "Satya Nadella"},
	{Alias: "jensen", Canonical: "Jensen Huang"},
	{Alias: "huang", Canonical: "Jensen Huang"},
	{Alias: "demis", Canonical: "Demis Hassabis"},
	{Alias: "hassabis", Canonical: "Demis Hassabis"},
}

// Nodes returns deep copies of every dataset node, people first, then
// companies, each group in declaration order.
func Nodes() []schemas.Node {
	out := make([]schemas.Node, 0, len(people)+len(companies))
	for _, n := range people {
		out = append(out, n.Clone())
	}
	for _, n := range companies {
		out = append(out, n.Clone())
	}
	return out
}

// Edges returns deep copies of every dataset edge in insertion order.
func Edges() []schemas.Edge {
	out := make([]schemas.Edge, 0, len(relationships))
	for _, e := range relationships {
		out = append(out, e.Clone())
	}
	return out
}

// Aliases returns a copy of the ordered alias table.
func Aliases() []schemas.NameAlias {
	out := make([]schemas.NameAlias, len(aliases))
	copy(out, aliases)
	return out
}

// Load seeds the given store with the full dataset. It fails on the first
// node or edge the store rejects, which for a fresh store never happens.
func Load(ctx context.Context, store schemas.GraphStore, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("Dataset")

	nodes := Nodes()
	for _, node := range nodes {
		if err := store.AddNode(ctx, node); err != nil {
			return fmt.Errorf("failed to load dataset node '%s': %w", node.ID, err)
		}
	}

	edges := Edges()
	for _, edge := range edges {
		if err := store.AddEdge(ctx, edge); err != nil {
			return fmt.Errorf("failed to load dataset edge '%s': %w", edge.ID, err)
		}
	}

	log.Info("Knowledge graph dataset loaded",
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", len(edges)),
	)
	return nil
}
