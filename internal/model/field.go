package model

import (
	"errors"
	"fmt"
)

var (
	errFieldNameRequired  = errors.New("model: field name is required")
	errFieldLabelRequired = errors.New("model: field label is required")

	// ErrMissingOptions signals a choice field (select, multiselect, radio)
	// constructed without any selectable values. This is rejected instead of
	// producing a field no renderer can present.
	ErrMissingOptions = errors.New("model: choice field requires options")

	// ErrUnexpectedOptions signals options supplied for a type that does not
	// present an enumerated choice.
	ErrUnexpectedOptions = errors.New("model: options are only valid for select, multiselect, and radio fields")
)

// Field describes a single form input. Name is the machine key, unique within
// the owning section; order is assigned when the field is appended to a
// section and is never set by callers.
type Field struct {
	Name            string
	Label           string
	Type            FieldType
	Required        bool
	ValidationRules Rules
	Options         []string
	DefaultValue    any
	Placeholder     string
	HelpText        string

	order int
}

// Order reports the zero-based position assigned by the owning section.
func (f Field) Order() int {
	return f.order
}

// FieldOption configures optional field attributes during construction.
type FieldOption func(*Field)

// Required marks the field as mandatory.
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// WithRules attaches validation rules.
func WithRules(rules Rules) FieldOption {
	return func(f *Field) { f.ValidationRules = rules }
}

// WithOptions supplies the selectable values for choice fields.
func WithOptions(values ...string) FieldOption {
	return func(f *Field) { f.Options = values }
}

// WithDefault sets the initial value.
func WithDefault(value any) FieldOption {
	return func(f *Field) { f.DefaultValue = value }
}

// WithPlaceholder sets the input placeholder text.
func WithPlaceholder(text string) FieldOption {
	return func(f *Field) { f.Placeholder = text }
}

// WithHelpText attaches explanatory text shown alongside the input.
func WithHelpText(text string) FieldOption {
	return func(f *Field) { f.HelpText = text }
}

// NewField constructs a Field, enforcing the structural invariants: name and
// label are required, the type must be a member of the enumeration, and choice
// types must carry at least one option.
func NewField(name, label string, fieldType FieldType, options ...FieldOption) (Field, error) {
	field := Field{
		Name:  name,
		Label: label,
		Type:  fieldType,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&field)
	}

	if field.Name == "" {
		return Field{}, errFieldNameRequired
	}
	if field.Label == "" {
		return Field{}, errFieldLabelRequired
	}
	if !field.Type.Valid() {
		return Field{}, fmt.Errorf("model: field %q has unknown type %q", field.Name, field.Type)
	}
	if field.Type.NeedsOptions() && len(field.Options) == 0 {
		return Field{}, fmt.Errorf("%w: field %q (%s)", ErrMissingOptions, field.Name, field.Type)
	}
	if !field.Type.NeedsOptions() && len(field.Options) > 0 {
		return Field{}, fmt.Errorf("%w: field %q (%s)", ErrUnexpectedOptions, field.Name, field.Type)
	}
	return field, nil
}

// MustField constructs a Field and panics on structural errors. Intended for
// the static routine tables where every field literal is exercised by tests.
func MustField(name, label string, fieldType FieldType, options ...FieldOption) Field {
	field, err := NewField(name, label, fieldType, options...)
	if err != nil {
		panic(err)
	}
	return field
}
