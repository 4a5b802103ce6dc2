package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// ErrTemplateNotFound is returned when a template is not found in the catalog
var ErrTemplateNotFound = goerr.New("template not found")

// Template is a named preset supplying default metadata for a new project of
// a given type
type Template struct {
	ID              types.TemplateType `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Icon            string             `json:"icon"`
	Features        []string           `json:"features"`
	DefaultMetadata *MetadataPatch     `json:"defaultMetadata,omitempty"`
}

// TemplateCatalog holds the process-wide set of project templates. It is
// populated once at startup and read-only afterwards; there is no mutation
// path at runtime.
type TemplateCatalog struct {
	entries map[types.TemplateType]*Template
	order   []types.TemplateType // preserves registration order
}

// NewTemplateCatalog creates a catalog pre-populated with the built-in
// templates
func NewTemplateCatalog() *TemplateCatalog {
	c := &TemplateCatalog{
		entries: make(map[types.TemplateType]*Template),
	}
	for _, tpl := range builtinTemplates() {
		// Built-ins are static and validated by tests; registration cannot fail
		if err := c.Register(tpl); err != nil {
			panic(err)
		}
	}
	return c
}

// Register adds a template to the catalog. The template's default metadata
// must itself be valid full-metadata input, so seeding a project from a
// template shares the ordinary validation path.
func (c *TemplateCatalog) Register(tpl *Template) error {
	if !tpl.ID.IsValid() {
		return goerr.New("invalid template ID", goerr.V("id", tpl.ID))
	}
	if tpl.Name == "" {
		return goerr.New("template name is required", goerr.V("id", tpl.ID))
	}
	if tpl.DefaultMetadata != nil {
		if _, err := ValidateMetadata(tpl.DefaultMetadata); err != nil {
			return goerr.Wrap(err, "invalid template default metadata", goerr.V("id", tpl.ID))
		}
	}

	if _, exists := c.entries[tpl.ID]; !exists {
		c.order = append(c.order, tpl.ID)
	}
	c.entries[tpl.ID] = tpl
	return nil
}

// Get retrieves a template by ID
func (c *TemplateCatalog) Get(id types.TemplateType) (*Template, error) {
	tpl, ok := c.entries[id]
	if !ok {
		return nil, goerr.Wrap(ErrTemplateNotFound, "template not found", goerr.V("id", id))
	}
	return tpl, nil
}

// List returns templates in registration order. A non-empty filter restricts
// the result to the template with that ID.
func (c *TemplateCatalog) List(filterID types.TemplateType) []*Template {
	result := make([]*Template, 0, len(c.order))
	for _, id := range c.order {
		if filterID != "" && id != filterID {
			continue
		}
		result = append(result, c.entries[id])
	}
	return result
}

// GroupByCategory groups templates by their category, preserving
// registration order within each group
func GroupByCategory(templates []*Template) map[string][]*Template {
	grouped := make(map[string][]*Template)
	for _, tpl := range templates {
		grouped[tpl.Category] = append(grouped[tpl.Category], tpl)
	}
	return grouped
}
