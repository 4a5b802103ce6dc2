package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Templates holds CLI flags for the template catalog overlay
type Templates struct {
	path string
}

// Flags returns CLI flags for template configuration
func (t *Templates) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "templates",
			Usage:       "Path to a TOML file with additional project templates",
			Sources:     cli.EnvVars("NEXBOARD_TEMPLATES"),
			Destination: &t.path,
		},
	}
}

// TemplateFile is the TOML schema of a template overlay file
type TemplateFile struct {
	Templates []TemplateEntry `toml:"template"`
}

// TemplateEntry represents one template definition in the overlay file
type TemplateEntry struct {
	ID          string            `toml:"id"`
	Name        string            `toml:"name"`
	Description string            `toml:"description"`
	Category    string            `toml:"category"`
	Icon        string            `toml:"icon"`
	Features    []string          `toml:"features"`
	Tags        []string          `toml:"tags"`
	Settings    *TemplateSettings `toml:"settings"`
	Fields      []TemplateField   `toml:"field"`
	Milestones  []TemplateStone   `toml:"milestone"`
}

// TemplateSettings mirrors the settings section of project metadata
type TemplateSettings struct {
	AllowPublicAccess bool   `toml:"allow_public_access"`
	RequireApproval   bool   `toml:"require_approval"`
	AutoArchive       bool   `toml:"auto_archive"`
	NotificationLevel string `toml:"notification_level"`
}

// TemplateField mirrors a preset custom field definition
type TemplateField struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Required    bool     `toml:"required"`
	Description string   `toml:"description"`
	Options     []string `toml:"options"`
	Order       *int     `toml:"order"`
}

// TemplateStone mirrors a preset milestone
type TemplateStone struct {
	Name        string `toml:"name"`
	Date        string `toml:"date"`
	Description string `toml:"description"`
}

// Metadata converts the entry's preset sections into a metadata payload
// suitable for the ordinary full-metadata validation path
func (e *TemplateEntry) Metadata() *model.MetadataPatch {
	patch := &model.MetadataPatch{}

	if id := types.TemplateType(e.ID); id.IsValid() {
		patch.Template = &id
	}

	if len(e.Tags) > 0 {
		tags := make([]string, len(e.Tags))
		copy(tags, e.Tags)
		patch.Tags = &tags
	}

	if e.Settings != nil {
		patch.Settings = &model.Settings{
			AllowPublicAccess: e.Settings.AllowPublicAccess,
			RequireApproval:   e.Settings.RequireApproval,
			AutoArchive:       e.Settings.AutoArchive,
			NotificationLevel: types.NotificationLevel(e.Settings.NotificationLevel),
		}
	}

	if len(e.Fields) > 0 {
		fields := make([]model.CustomFieldInput, len(e.Fields))
		for i, f := range e.Fields {
			fields[i] = model.CustomFieldInput{
				ID:          f.ID,
				Name:        f.Name,
				Type:        types.FieldType(f.Type),
				Required:    f.Required,
				Description: f.Description,
				Options:     f.Options,
				Order:       f.Order,
			}
		}
		patch.CustomFields = &fields
	}

	if len(e.Milestones) > 0 {
		milestones := make([]model.Milestone, len(e.Milestones))
		for i, m := range e.Milestones {
			milestones[i] = model.Milestone{
				Name:        m.Name,
				Date:        m.Date,
				Description: m.Description,
			}
		}
		patch.Milestones = &milestones
	}

	return patch
}

// LoadTemplateFile parses and converts an overlay file without registering
// it; used by the validate command
func LoadTemplateFile(path string) ([]*model.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read template file", goerr.V("path", path))
	}

	var file TemplateFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse template file", goerr.V("path", path))
	}

	seen := make(map[string]bool)
	templates := make([]*model.Template, 0, len(file.Templates))
	for _, entry := range file.Templates {
		if seen[entry.ID] {
			return nil, goerr.New("duplicate template ID", goerr.V("id", entry.ID))
		}
		seen[entry.ID] = true

		templates = append(templates, &model.Template{
			ID:              types.TemplateType(entry.ID),
			Name:            entry.Name,
			Description:     entry.Description,
			Category:        entry.Category,
			Icon:            entry.Icon,
			Features:        entry.Features,
			DefaultMetadata: entry.Metadata(),
		})
	}

	return templates, nil
}

// Configure builds the template catalog: built-in templates, overlaid with
// the configured file when present. Overlay entries replace built-ins with
// the same ID.
func (t *Templates) Configure() (*model.TemplateCatalog, error) {
	catalog := model.NewTemplateCatalog()
	if t.path == "" {
		return catalog, nil
	}

	templates, err := LoadTemplateFile(t.path)
	if err != nil {
		return nil, err
	}

	for _, tpl := range templates {
		if err := catalog.Register(tpl); err != nil {
			return nil, goerr.Wrap(err, "failed to register template", goerr.V("id", tpl.ID))
		}
	}

	return catalog, nil
}
