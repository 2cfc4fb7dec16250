package model

// Section is an ordered collection of fields under a shared title. Sections
// own their fields exclusively; append is the only mutation and assigns each
// field's order from its zero-based insertion position.
type Section struct {
	Title       string
	Description string

	fields []Field
	order  int
}

// NewSection constructs an empty section.
func NewSection(title, description string) *Section {
	return &Section{
		Title:       title,
		Description: description,
	}
}

// AddField appends a field, assigning its order before insertion. Previously
// appended fields keep their order values unchanged.
func (s *Section) AddField(field Field) {
	field.order = len(s.fields)
	s.fields = append(s.fields, field)
}

// Fields returns a copy of the owned field sequence in storage order.
func (s *Section) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the named field and whether it exists.
func (s *Section) Field(name string) (Field, bool) {
	for _, field := range s.fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Order reports the zero-based position assigned by the owning form.
func (s *Section) Order() int {
	return s.order
}
