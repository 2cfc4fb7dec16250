package model

import (
	"sort"
	"time"
)

// FieldRecord is the wire representation of a Field. Every attribute is
// present in the payload; empty rule maps and option lists serialise as empty
// containers rather than null.
type FieldRecord struct {
	Name            string   `json:"name"`
	Label           string   `json:"label"`
	Type            string   `json:"type"`
	Required        bool     `json:"required"`
	ValidationRules Rules    `json:"validationRules"`
	Options         []string `json:"options"`
	DefaultValue    any      `json:"defaultValue"`
	Placeholder     string   `json:"placeholder"`
	HelpText        string   `json:"helpText"`
	Order           int      `json:"order"`
}

// SectionRecord is the wire representation of a Section.
type SectionRecord struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Fields      []FieldRecord `json:"fields"`
	Order       int           `json:"order"`
}

// FormRecord is the wire representation of a Form. Timestamps are rendered in
// RFC 3339 / ISO-8601 UTC.
type FormRecord struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Sections    []SectionRecord `json:"sections"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// Record produces an immutable transport snapshot of the field.
func (f Field) Record() FieldRecord {
	rules := make(Rules, len(f.ValidationRules))
	for key, value := range f.ValidationRules {
		rules[key] = value
	}
	options := make([]string, len(f.Options))
	copy(options, f.Options)

	return FieldRecord{
		Name:            f.Name,
		Label:           f.Label,
		Type:            string(f.Type),
		Required:        f.Required,
		ValidationRules: rules,
		Options:         options,
		DefaultValue:    f.DefaultValue,
		Placeholder:     f.Placeholder,
		HelpText:        f.HelpText,
		Order:           f.order,
	}
}

// Record produces a transport snapshot with fields sorted by their assigned
// order. Insertion order should already match, but serialization does not
// assume the backing slice was never rearranged.
func (s *Section) Record() SectionRecord {
	fields := make([]FieldRecord, 0, len(s.fields))
	for _, field := range s.fields {
		fields = append(fields, field.Record())
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	return SectionRecord{
		Title:       s.Title,
		Description: s.Description,
		Fields:      fields,
		Order:       s.order,
	}
}

// Record produces a transport snapshot with sections sorted by their assigned
// order, applying the same defensive pass as Section.Record.
func (f *Form) Record() FormRecord {
	sections := make([]SectionRecord, 0, len(f.sections))
	for _, section := range f.sections {
		sections = append(sections, section.Record())
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	return FormRecord{
		ID:          f.ID,
		Title:       f.Title,
		Category:    f.Category,
		Subcategory: f.Subcategory,
		Description: f.Description,
		Type:        string(f.Type),
		Status:      string(f.Status),
		Sections:    sections,
		CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   f.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
