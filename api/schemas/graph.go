package schemas

// -- Canonical Knowledge Graph Data Model --

// NodeType represents the specific type of an entity (node) in the knowledge graph.
type NodeType string

const (
	NodePerson  NodeType = "person"
	NodeCompany NodeType = "company"
)

// RelationshipType defines the semantic type of a relationship (edge) between
// two nodes in the knowledge graph.
type RelationshipType string

const (
	RelationshipFounded      RelationshipType = "founded"
	RelationshipCoFounded    RelationshipType = "co_founded"
	RelationshipLeads        RelationshipType = "leads"
	RelationshipWorksAt      RelationshipType = "works_at"
	RelationshipInvestedIn   RelationshipType = "invested_in"
	RelationshipAcquired     RelationshipType = "acquired"
	RelationshipPartnersWith RelationshipType = "partners_with"
	RelationshipSupplies     RelationshipType = "supplies"
)

// Properties is a generic map for storing node or edge attributes. Values are
// expected to be primitives (strings, numbers) so they can be rendered into
// fact strings without further structure.
type Properties map[string]interface{}

// DeepCopy creates a true copy of the Properties map, preventing external
// modifications to internal graph state.
func (p Properties) DeepCopy() Properties {
	if p == nil {
		return nil
	}
	cp := make(Properties, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}

// Node represents a single entity in the Knowledge Graph. Nodes are created
// once at dataset load and are immutable for the lifetime of a run.
type Node struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"` // Display name, unique within the dataset.
	Type       NodeType   `json:"type"`
	Properties Properties `json:"properties,omitempty"`
}

// Clone creates a deep copy of a Node so callers receive a copy of the node,
// not a pointer into the internal state of the in-memory graph.
func (n Node) Clone() Node {
	n.Properties = n.Properties.DeepCopy()
	return n
}

// Edge represents a directed, typed relationship between two nodes in the
// Knowledge Graph. It connects a 'from' node to a 'to' node and can carry its
// own set of properties (founding year, investment amount, and so on).
type Edge struct {
	ID         string           `json:"id"`
	From       string           `json:"from"` // The ID of the source node.
	To         string           `json:"to"`   // The ID of the target node.
	Type       RelationshipType `json:"type"`
	Properties Properties       `json:"properties,omitempty"`
}

// Clone creates a deep copy of an Edge in the same way as Node.Clone.
func (e Edge) Clone() Edge {
	e.Properties = e.Properties.DeepCopy()
	return e
}

// GraphStats summarizes the contents of a loaded graph for display.
type GraphStats struct {
	NodeCount   int              `json:"node_count"`
	EdgeCount   int              `json:"edge_count"`
	NodesByType map[NodeType]int `json:"nodes_by_type"`
}
