package model

// FieldType is the closed enumeration of input kinds an intake form can carry.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiselect FieldType = "multiselect"
	FieldTypeDate        FieldType = "date"
	FieldTypeNumber      FieldType = "number"
	FieldTypeEmail       FieldType = "email"
	FieldTypeTel         FieldType = "tel"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeFile        FieldType = "file"
)

// Valid reports whether the value is a member of the enumeration.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeMultiselect,
		FieldTypeDate, FieldTypeNumber, FieldTypeEmail, FieldTypeTel,
		FieldTypeCheckbox, FieldTypeRadio, FieldTypeFile:
		return true
	}
	return false
}

// NeedsOptions reports whether the type presents an enumerated choice and
// therefore requires a non-empty option list at construction time.
func (t FieldType) NeedsOptions() bool {
	switch t {
	case FieldTypeSelect, FieldTypeMultiselect, FieldTypeRadio:
		return true
	}
	return false
}

// FormType distinguishes the lifecycle role of a form. The builder only
// produces intake forms; the remaining values exist for downstream flows.
type FormType string

const (
	FormTypeIntake        FormType = "intake"
	FormTypeSupplementary FormType = "supplementary"
	FormTypeReview        FormType = "review"
	FormTypeAppeal        FormType = "appeal"
)

// FormStatus tracks a form through its processing lifecycle.
type FormStatus string

const (
	FormStatusDraft      FormStatus = "draft"
	FormStatusSubmitted  FormStatus = "submitted"
	FormStatusValidated  FormStatus = "validated"
	FormStatusProcessing FormStatus = "processing"
	FormStatusCompleted  FormStatus = "completed"
	FormStatusError      FormStatus = "error"
)

// Canonical validation-rule keys. Length limits and numeric bounds carry
// integer or float values; pattern rules carry the expression verbatim.
const (
	RuleMinLength = "min_length"
	RuleMaxLength = "max_length"
	RulePattern   = "pattern"
	RuleMin       = "min"
	RuleMax       = "max"
)

// Rules is the validation-rule mapping attached to a field.
type Rules = map[string]any
