package siteqa

import "context"

// Knowledgebase bundles a site with its extracted items. It is the unit
// of export: one scraped site serialized as a single JSON document.
type Knowledgebase struct {
	Site  *Site   `json:"site"`
	Items []*Item `json:"items"`
}

// Validate returns an error if the knowledgebase contains invalid fields.
func (kb *Knowledgebase) Validate() error {
	if kb.Site == nil {
		return Errorf(EINVALID, "knowledgebase site required")
	}
	return kb.Site.Validate()
}

// KnowledgebaseWriter persists a knowledgebase snapshot.
type KnowledgebaseWriter interface {
	WriteKnowledgebase(ctx context.Context, kb *Knowledgebase) error
}
