// Package detector recognizes dataset entities and relationship intents in
// free-form question text. Matching is deliberately crude substring work; the
// pipeline only depends on the schemas.EntityDetector interface, so a smarter
// implementation can slot in without touching anything else.
package detector

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
)

// candidate is one scannable form: the lowercased text searched for in the
// question and the canonical entity it stands for.
type candidate struct {
	text      string
	canonical string
	nodeType  schemas.NodeType
}

// intentRule pairs a relationship type with the keyword stems that suggest a
// question is asking about it. Rules are ordered; output follows rule order.
type intentRule struct {
	relation schemas.RelationshipType
	stems    []string
}

var intentRules = []intentRule{
	{relation: schemas.RelationshipFounded, stems: []string{"found", "start", "creat", "establish"}},
	{relation: schemas.RelationshipLeads, stems: []string{"lead", "run", "ceo", "head", "manage"}},
	{relation: schemas.RelationshipWorksAt, stems: []string{"work", "employ"}},
	{relation: schemas.RelationshipInvestedIn, stems: []string{"invest", "fund", "money"}},
	{relation: schemas.RelationshipAcquired, stems: []string{"acquir", "bought", "purchase"}},
	{relation: schemas.RelationshipPartnersWith, stems: []string{"partner", "collaborat", "work with"}},
	{relation: schemas.RelationshipSupplies, stems: []string{"supply", "provide", "sell"}},
}

// NameMatchDetector finds known entities by case-insensitive substring match.
// Candidates are scanned in known-name-list order: every canonical display
// name first (in the order the nodes were given), then every alias form.
// Output order therefore follows the known-name list, not the order of
// appearance in the question.
type NameMatchDetector struct {
	candidates []candidate
	log        *zap.Logger
}

var _ schemas.EntityDetector = (*NameMatchDetector)(nil)
var _ schemas.IntentExtractor = (*NameMatchDetector)(nil)

// NewNameMatchDetector builds a detector over the given vocabulary. Every
// alias must refer to one of the given nodes; the detector and the graph
// store share a closed world, and this is where it is enforced.
func NewNameMatchDetector(nodes []schemas.Node, aliases []schemas.NameAlias, logger *zap.Logger) (*NameMatchDetector, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	byLowerName := make(map[string]candidate, len(nodes))
	candidates := make([]candidate, 0, len(nodes)+len(aliases))

	for _, node := range nodes {
		if strings.TrimSpace(node.Name) == "" {
			return nil, fmt.Errorf("entity node '%s' must have a display name", node.ID)
		}
		lower := strings.ToLower(node.Name)
		if _, exists := byLowerName[lower]; exists {
			return nil, fmt.Errorf("duplicate entity name '%s'", node.Name)
		}
		c := candidate{text: lower, canonical: node.Name, nodeType: node.Type}
		byLowerName[lower] = c
		candidates = append(candidates, c)
	}

	for _, alias := range aliases {
		if strings.TrimSpace(alias.Alias) == "" {
			return nil, fmt.Errorf("alias for '%s' must not be empty", alias.Canonical)
		}
		target, ok := byLowerName[strings.ToLower(alias.Canonical)]
		if !ok {
			return nil, fmt.Errorf("alias '%s' refers to unknown entity '%s'", alias.Alias, alias.Canonical)
		}
		candidates = append(candidates, candidate{
			text:      strings.ToLower(alias.Alias),
			canonical: target.canonical,
			nodeType:  target.nodeType,
		})
	}

	log := logger.Named("EntityDetector")
	log.Debug("Name-match detector initialized", zap.Int("candidates", len(candidates)))

	return &NameMatchDetector{
		candidates: candidates,
		log:        log,
	}, nil
}

// Detect scans the question for known entities. No match is not an error; the
// returned slice is simply empty.
func (d *NameMatchDetector) Detect(text string) []schemas.EntityMatch {
	lower := strings.ToLower(text)
	matches := make([]schemas.EntityMatch, 0)
	seen := make(map[string]bool)

	for _, c := range d.candidates {
		idx := strings.Index(lower, c.text)
		if idx < 0 || seen[c.canonical] {
			continue
		}
		seen[c.canonical] = true
		matches = append(matches, schemas.EntityMatch{
			Name:        c.canonical,
			Type:        c.nodeType,
			MatchedText: c.text,
			Position:    idx,
		})
	}
	return matches
}

// Intents reports which relationship types the question seems to ask about,
// in fixed rule order. Purely advisory; retrieval never filters on it.
func (d *NameMatchDetector) Intents(text string) []schemas.RelationshipType {
	lower := strings.ToLower(text)
	intents := make([]schemas.RelationshipType, 0)

	for _, rule := range intentRules {
		for _, stem := range rule.stems {
			if strings.Contains(lower, stem) {
				intents = append(intents, rule.relation)
				break
			}
		}
	}
	return intents
}

// Analyze bundles entity detection and intent extraction for one question.
func (d *NameMatchDetector) Analyze(text string) schemas.QuestionAnalysis {
	return schemas.QuestionAnalysis{
		Question: text,
		Entities: d.Detect(text),
		Intents:  d.Intents(text),
	}
}
