package model

import "time"

// Form is an ordered tree of sections representing one intake questionnaire
// for a category/subcategory pair. Metadata (id, timestamps, type, status) is
// fixed at construction; the builder never touches UpdatedAt afterwards.
type Form struct {
	ID          string
	Title       string
	Category    string
	Subcategory string
	Description string
	Type        FormType
	Status      FormStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	sections []*Section
}

// NewForm constructs an empty intake form in draft status.
func NewForm(id, title, category, subcategory, description string, now time.Time) *Form {
	return &Form{
		ID:          id,
		Title:       title,
		Category:    category,
		Subcategory: subcategory,
		Description: description,
		Type:        FormTypeIntake,
		Status:      FormStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddSection appends a section, assigning its order from the zero-based
// insertion position. Previously appended sections are untouched.
func (f *Form) AddSection(section *Section) {
	section.order = len(f.sections)
	f.sections = append(f.sections, section)
}

// Sections returns the owned section sequence in storage order.
func (f *Form) Sections() []*Section {
	out := make([]*Section, len(f.sections))
	copy(out, f.sections)
	return out
}

// Section returns the section with the given title and whether it exists.
func (f *Form) Section(title string) (*Section, bool) {
	for _, section := range f.sections {
		if section.Title == title {
			return section, true
		}
	}
	return nil, false
}

// FieldByName searches every section for the named field.
func (f *Form) FieldByName(name string) (Field, bool) {
	for _, section := range f.sections {
		if field, ok := section.Field(name); ok {
			return field, true
		}
	}
	return Field{}, false
}
