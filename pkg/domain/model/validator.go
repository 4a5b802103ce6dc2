package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateMetadata validates a full or partial metadata payload and returns
// its normalized form. Unknown keys are dropped at decode time; present keys
// are validated recursively. The result is either a fully validated update
// or a non-empty list of field errors, never both.
func ValidateMetadata(in *MetadataPatch) (*MetadataUpdate, error) {
	var errs ValidationErrors
	out := &MetadataUpdate{}

	if in.Template != nil {
		if *in.Template != "" && !in.Template.IsValid() {
			errs.Add("template", "must be one of: "+joinTemplateTypes())
		} else {
			out.Template = in.Template
		}
	}

	if in.Budget != nil {
		b := *in.Budget
		if b.Allocated < 0 {
			errs.Add("budget.allocated", "must be a non-negative number")
		}
		if b.Spent < 0 {
			errs.Add("budget.spent", "must be a non-negative number")
		}
		if !b.Currency.IsValid() {
			errs.Add("budget.currency", "must be one of: "+joinCurrencies())
		}
		out.Budget = &b
	}

	if in.Client != nil {
		c := *in.Client
		if c.Name == "" {
			errs.Add("client.name", "is required")
		}
		if c.Email != "" && !emailPattern.MatchString(c.Email) {
			errs.Add("client.email", "must be a valid email address")
		}
		out.Client = &c
	}

	if in.Milestones != nil {
		ms := make([]Milestone, len(*in.Milestones))
		copy(ms, *in.Milestones)
		if err := ValidateMilestones(ms); err != nil {
			errs = append(errs, err.(ValidationErrors)...)
		} else {
			out.Milestones = &ms
		}
	}

	if in.CustomFields != nil {
		fields, err := ValidateCustomFields(*in.CustomFields)
		if err != nil {
			errs = append(errs, err.(ValidationErrors)...)
		} else {
			out.CustomFields = &fields
		}
	}

	if in.Tags != nil {
		tags := uniqueStrings(*in.Tags)
		out.Tags = &tags
	}

	if in.Settings != nil {
		s := *in.Settings
		if s.NotificationLevel != "" && !s.NotificationLevel.IsValid() {
			errs.Add("settings.notificationLevel", "must be one of: "+joinNotificationLevels())
		} else {
			s.NotificationLevel = s.NotificationLevel.Normalize()
			out.Settings = &s
		}
	}

	if in.Integration != nil {
		i := *in.Integration
		out.Integration = &i
	}

	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateMilestones validates a bare milestone sequence
func ValidateMilestones(milestones []Milestone) error {
	var errs ValidationErrors

	for i, m := range milestones {
		if strings.TrimSpace(m.Name) == "" {
			errs.Add(fmt.Sprintf("milestones[%d].name", i), "is required")
		}
		if !datePattern.MatchString(m.Date) {
			errs.Add(fmt.Sprintf("milestones[%d].date", i), "must be a valid date (YYYY-MM-DD)")
		}
	}

	return errs.OrNil()
}

// ValidateCustomFields validates a bare custom field definition sequence and
// returns the normalized fields. Definitions submitted without an ID get a
// generated one; definitions submitted without an explicit order get their
// insertion index.
func ValidateCustomFields(inputs []CustomFieldInput) ([]CustomField, error) {
	var errs ValidationErrors
	fields := make([]CustomField, 0, len(inputs))
	seenIDs := make(map[string]bool)

	for i, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			errs.Add(fmt.Sprintf("customFields[%d].name", i), "is required")
		}
		if !in.Type.IsValid() {
			errs.Add(fmt.Sprintf("customFields[%d].type", i), "must be one of: "+joinFieldTypes())
			continue
		}
		if in.Type.HasOptions() && len(in.Options) == 0 {
			errs.Add(fmt.Sprintf("customFields[%d].options", i), "are required for select and multiselect fields")
			continue
		}

		field := CustomField{
			ID:          in.ID,
			Name:        in.Name,
			Type:        in.Type,
			Value:       in.Value,
			Required:    in.Required,
			Description: in.Description,
		}
		if in.Options != nil {
			field.Options = make([]string, len(in.Options))
			copy(field.Options, in.Options)
		}
		if field.ID == "" {
			field.ID = uuid.NewString()
		}
		if in.Order != nil {
			field.Order = *in.Order
		} else {
			field.Order = i
		}

		if seenIDs[field.ID] {
			errs.Add(fmt.Sprintf("customFields[%d].id", i), fmt.Sprintf("duplicate field id '%s'", field.ID))
			continue
		}
		seenIDs[field.ID] = true

		// Definitions may be created before any value exists, so an empty
		// value passes here even for required fields. The required check
		// applies when a value is submitted through the value map.
		if !isEmptyValue(in.Value) {
			validated, err := ValidateFieldValue(field, in.Value)
			if err != nil {
				errs.Add(fmt.Sprintf("customFields[%d].value", i), err.Error())
				continue
			}
			field.Value = validated
		}

		fields = append(fields, field)
	}

	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return fields, nil
}

// ValidateFieldValues validates a field-id to raw-value map against the
// project's existing field definitions. Each submitted ID must reference an
// existing field; values are validated by the field engine. Errors aggregate
// one entry per offending field.
func ValidateFieldValues(fields []CustomField, values map[string]any) (map[string]any, error) {
	var errs ValidationErrors
	out := make(map[string]any, len(values))

	defs := make(map[string]CustomField, len(fields))
	for _, f := range fields {
		defs[f.ID] = f
	}

	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		def, ok := defs[id]
		if !ok {
			errs.Add(id, fmt.Sprintf("custom field '%s' not found", id))
			continue
		}

		validated, err := ValidateFieldValue(def, values[id])
		if err != nil {
			errs.Add(id, err.Error())
			continue
		}
		out[id] = validated
	}

	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func joinFieldTypes() string {
	all := types.AllFieldTypes()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func joinTemplateTypes() string {
	all := types.AllTemplateTypes()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func joinCurrencies() string {
	all := types.AllCurrencies()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

func joinNotificationLevels() string {
	all := types.AllNotificationLevels()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.String()
	}
	return strings.Join(names, ", ")
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
