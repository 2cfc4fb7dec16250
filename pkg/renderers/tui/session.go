package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/caseflow/go-intake/pkg/model"
	"github.com/caseflow/go-intake/pkg/submission"
)

// maxAttempts bounds re-prompting after validation failures so a scripted
// driver that keeps producing invalid input fails instead of spinning.
const maxAttempts = 3

// Option configures a Session.
type Option func(*Session)

// WithDriver injects a prompt driver. Defaults to the survey terminal driver.
func WithDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session drives an interactive fill of one intake form.
type Session struct {
	driver PromptDriver
}

// NewSession constructs a session with the given options.
func NewSession(options ...Option) *Session {
	s := &Session{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Fill walks every section and field of the form in order, prompting per
// field type and validating each answer before moving on. The returned map is
// keyed by field name and holds validated, coerced values. Optional fields
// answered with an empty value are omitted.
func (s *Session) Fill(ctx context.Context, form *model.Form) (map[string]any, error) {
	if form == nil {
		return nil, errors.New("tui: form is required")
	}

	answers := make(map[string]any)
	for _, section := range form.Sections() {
		header := section.Title
		if section.Description != "" {
			header = fmt.Sprintf("%s — %s", section.Title, section.Description)
		}
		if err := s.driver.Info(ctx, header); err != nil {
			return nil, err
		}

		for _, field := range section.Fields() {
			value, err := s.fillField(ctx, field)
			if err != nil {
				return nil, err
			}
			if value != nil {
				answers[field.Name] = value
			}
		}
	}
	return answers, nil
}

func (s *Session) fillField(ctx context.Context, field model.Field) (any, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := s.prompt(ctx, field)
		if err != nil {
			return nil, err
		}
		if s, ok := raw.(string); ok && s == skipOption && !field.Required {
			return nil, nil
		}

		validated, err := submission.ValidateField(field, raw)
		if err == nil {
			return validated, nil
		}

		var fe *submission.FieldError
		message := err.Error()
		if errors.As(err, &fe) {
			message = fe.Message
		}
		if infoErr := s.driver.Info(ctx, fmt.Sprintf("✗ %s", message)); infoErr != nil {
			return nil, infoErr
		}
	}
	return nil, fmt.Errorf("tui: field %q: no valid answer after %d attempts", field.Name, maxAttempts)
}

func (s *Session) prompt(ctx context.Context, field model.Field) (any, error) {
	message := field.Label
	if field.Required {
		message += " (required)"
	}
	defaultValue := ""
	if field.DefaultValue != nil {
		defaultValue = fmt.Sprint(field.DefaultValue)
	}

	switch field.Type {
	case model.FieldTypeTextarea:
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: defaultValue,
			Help:    helpFor(field),
		})
	case model.FieldTypeSelect, model.FieldTypeRadio:
		return s.driver.Select(ctx, SelectConfig{
			Message: message,
			Options: choiceOptions(field),
			Default: defaultValue,
			Help:    helpFor(field),
		})
	case model.FieldTypeMultiselect:
		return s.driver.MultiSelect(ctx, SelectConfig{
			Message: message,
			Options: field.Options,
			Help:    helpFor(field),
		})
	case model.FieldTypeCheckbox:
		return s.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Help:    helpFor(field),
		})
	case model.FieldTypeDate:
		return s.driver.Input(ctx, InputConfig{
			Message: message + " [YYYY-MM-DD]",
			Default: defaultValue,
			Help:    helpFor(field),
		})
	default:
		return s.driver.Input(ctx, InputConfig{
			Message: message,
			Default: defaultValue,
			Help:    helpFor(field),
		})
	}
}

// choiceOptions appends a skip entry for optional choice fields so the user
// can decline without picking an arbitrary value.
const skipOption = "(skip)"

func choiceOptions(field model.Field) []string {
	if field.Required {
		return field.Options
	}
	return append(append([]string{}, field.Options...), skipOption)
}

func helpFor(field model.Field) string {
	if field.HelpText != "" {
		return field.HelpText
	}
	return field.Placeholder
}
