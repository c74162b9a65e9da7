package schemas

import (
	"fmt"
	"strings"
)

// -- Query Processing Schemas --

// NameAlias maps a short or informal form ("musk") to the canonical display
// name of a dataset node ("Elon Musk"). Alias tables are ordered; detectors
// consult them after the canonical names themselves.
type NameAlias struct {
	Alias     string `json:"alias"`
	Canonical string `json:"canonical"`
}

// EntityMatch records one entity recognized in a question. It is transient:
// produced by the detector, consumed during node retrieval, and kept on the
// pipeline state only for reporting.
type EntityMatch struct {
	Name        string   `json:"name"`         // Canonical display name from the dataset.
	Type        NodeType `json:"type"`         // person or company.
	MatchedText string   `json:"matched_text"` // The candidate string that actually matched.
	Position    int      `json:"position"`     // Byte index of the first occurrence in the lowercased question.
}

// QuestionAnalysis bundles everything the detector can say about a question.
type QuestionAnalysis struct {
	Question string             `json:"question"`
	Entities []EntityMatch      `json:"entities"`
	Intents  []RelationshipType `json:"intents"` // Advisory; retrieval never depends on these.
}

// TraversalResult holds the outcome of one bounded breadth-first walk.
// VisitedIDs preserves visit order; Edges preserves discovery order and never
// contains an edge whose endpoints were not both visited.
type TraversalResult struct {
	StartIDs   []string `json:"start_ids"`
	VisitedIDs []string `json:"visited_ids"`
	Edges      []Edge   `json:"edges"`
}

// -- Context Schemas --

// NoRelevantInformation is the sentinel context used when a traversal produced
// no facts at all.
const NoRelevantInformation = "No relevant information found in the knowledge graph."

// ContextDocument is the deduplicated, ordered set of facts assembled for one
// question, together with the entity names they concern. Its rendered form is
// passed verbatim into the LLM prompt.
type ContextDocument struct {
	Entities []string `json:"entities"`
	Facts    []string `json:"facts"`
}

// Empty reports whether the document contains no facts.
func (d ContextDocument) Empty() bool {
	return len(d.Facts) == 0
}

// String renders the document in the fixed layout the answer prompt expects.
func (d ContextDocument) String() string {
	if d.Empty() {
		return NoRelevantInformation
	}

	var b strings.Builder
	if len(d.Entities) > 0 {
		fmt.Fprintf(&b, "Information about: %s\n\n", strings.Join(d.Entities, ", "))
	}
	b.WriteString("Known facts:")
	for _, fact := range d.Facts {
		b.WriteString("\n- ")
		b.WriteString(fact)
	}
	return b.String()
}
