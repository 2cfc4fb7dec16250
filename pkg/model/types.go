// Package model re-exports the intake form model for public consumption.
package model

import internalmodel "github.com/caseflow/go-intake/internal/model"

// FieldType re-exports the closed field-type enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText        = internalmodel.FieldTypeText
	FieldTypeTextarea    = internalmodel.FieldTypeTextarea
	FieldTypeSelect      = internalmodel.FieldTypeSelect
	FieldTypeMultiselect = internalmodel.FieldTypeMultiselect
	FieldTypeDate        = internalmodel.FieldTypeDate
	FieldTypeNumber      = internalmodel.FieldTypeNumber
	FieldTypeEmail       = internalmodel.FieldTypeEmail
	FieldTypeTel         = internalmodel.FieldTypeTel
	FieldTypeCheckbox    = internalmodel.FieldTypeCheckbox
	FieldTypeRadio       = internalmodel.FieldTypeRadio
	FieldTypeFile        = internalmodel.FieldTypeFile
)

// FormType re-exports the form lifecycle-role enumeration.
type FormType = internalmodel.FormType

const (
	FormTypeIntake        = internalmodel.FormTypeIntake
	FormTypeSupplementary = internalmodel.FormTypeSupplementary
	FormTypeReview        = internalmodel.FormTypeReview
	FormTypeAppeal        = internalmodel.FormTypeAppeal
)

// FormStatus re-exports the form status enumeration.
type FormStatus = internalmodel.FormStatus

const (
	FormStatusDraft      = internalmodel.FormStatusDraft
	FormStatusSubmitted  = internalmodel.FormStatusSubmitted
	FormStatusValidated  = internalmodel.FormStatusValidated
	FormStatusProcessing = internalmodel.FormStatusProcessing
	FormStatusCompleted  = internalmodel.FormStatusCompleted
	FormStatusError      = internalmodel.FormStatusError
)

// Validation-rule keys.
const (
	RuleMinLength = internalmodel.RuleMinLength
	RuleMaxLength = internalmodel.RuleMaxLength
	RulePattern   = internalmodel.RulePattern
	RuleMin       = internalmodel.RuleMin
	RuleMax       = internalmodel.RuleMax
)

type Rules = internalmodel.Rules
type Field = internalmodel.Field
type FieldOption = internalmodel.FieldOption
type Section = internalmodel.Section
type Form = internalmodel.Form
type FieldRecord = internalmodel.FieldRecord
type SectionRecord = internalmodel.SectionRecord
type FormRecord = internalmodel.FormRecord

// Structural construction errors.
var (
	ErrMissingOptions    = internalmodel.ErrMissingOptions
	ErrUnexpectedOptions = internalmodel.ErrUnexpectedOptions
)

// Constructors and field options, re-exported for callers assembling custom
// forms outside the builder.
var (
	NewField        = internalmodel.NewField
	MustField       = internalmodel.MustField
	NewSection      = internalmodel.NewSection
	NewForm         = internalmodel.NewForm
	Required        = internalmodel.Required
	WithRules       = internalmodel.WithRules
	WithOptions     = internalmodel.WithOptions
	WithDefault     = internalmodel.WithDefault
	WithPlaceholder = internalmodel.WithPlaceholder
	WithHelpText    = internalmodel.WithHelpText
)
