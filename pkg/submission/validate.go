// Package submission validates answer sets against a built intake form. The
// rule vocabulary (min_length, max_length, pattern, min, max) matches what the
// builder attaches to its fields; type handling follows the field's declared
// FieldType.
package submission

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/caseflow/go-intake/pkg/model"
)

// FieldError reports a validation failure for a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("submission: field %q: %s", e.Field, e.Message)
}

func fieldErr(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// Result aggregates the outcome of validating one answer set.
type Result struct {
	IsValid   bool
	Errors    map[string]string
	Validated map[string]any
}

const dateLayout = "2006-01-02"

var emailFallbackPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate sanitises the answers and checks every field of the form against
// them. Missing optional fields are skipped; every failure is recorded under
// the field name, so one pass reports all problems.
func Validate(form *model.Form, answers map[string]any) Result {
	result := Result{
		IsValid:   true,
		Errors:    map[string]string{},
		Validated: map[string]any{},
	}
	if form == nil {
		return result
	}

	clean := Sanitize(answers)
	for _, section := range form.Sections() {
		for _, field := range section.Fields() {
			value, present := clean[field.Name]
			if !present {
				value = nil
			}
			validated, err := ValidateField(field, value)
			if err != nil {
				result.IsValid = false
				var fe *FieldError
				if ok := asFieldError(err, &fe); ok {
					result.Errors[fe.Field] = fe.Message
				} else {
					result.Errors[field.Name] = err.Error()
				}
				continue
			}
			if validated != nil {
				result.Validated[field.Name] = validated
			}
		}
	}
	return result
}

func asFieldError(err error, target **FieldError) bool {
	fe, ok := err.(*FieldError)
	if ok {
		*target = fe
	}
	return ok
}

// ValidateField checks a single value against the field's type and rules,
// returning the coerced value. A nil value for an optional field returns
// (nil, nil).
func ValidateField(field model.Field, value any) (any, error) {
	if isEmpty(value) {
		if field.Required {
			return nil, fieldErr(field.Name, "This field is required")
		}
		return nil, nil
	}

	switch field.Type {
	case model.FieldTypeText, model.FieldTypeTextarea:
		return validateString(field, value)
	case model.FieldTypeEmail:
		return validateEmail(field, value)
	case model.FieldTypeTel:
		return validatePhone(field, value)
	case model.FieldTypeNumber:
		return validateNumber(field, value)
	case model.FieldTypeDate:
		return validateDate(field, value)
	case model.FieldTypeSelect, model.FieldTypeRadio:
		return validateChoice(field, value)
	case model.FieldTypeMultiselect:
		return validateMultiChoice(field, value)
	case model.FieldTypeCheckbox:
		return validateBool(field, value)
	case model.FieldTypeFile:
		// Opaque reference produced by the upload layer; nothing to check.
		return toString(value), nil
	default:
		return nil, fieldErr(field.Name, fmt.Sprintf("unsupported field type %q", field.Type))
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

func validateString(field model.Field, value any) (any, error) {
	s := toString(value)
	rules := field.ValidationRules

	if min, ok := ruleInt(rules, model.RuleMinLength); ok && len(s) < min {
		return nil, fieldErr(field.Name, fmt.Sprintf("Minimum length is %d characters", min))
	}
	if max, ok := ruleInt(rules, model.RuleMaxLength); ok && len(s) > max {
		return nil, fieldErr(field.Name, fmt.Sprintf("Maximum length is %d characters", max))
	}
	if pattern, ok := rules[model.RulePattern].(string); ok && pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fieldErr(field.Name, "Field has an invalid validation pattern")
		}
		if !re.MatchString(s) {
			return nil, fieldErr(field.Name, "Value does not match required pattern")
		}
	}
	return s, nil
}

func validateEmail(field model.Field, value any) (any, error) {
	s := toString(value)
	pattern := emailFallbackPattern
	if raw, ok := field.ValidationRules[model.RulePattern].(string); ok && raw != "" {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fieldErr(field.Name, "Field has an invalid validation pattern")
		}
		pattern = re
	}
	if !pattern.MatchString(s) {
		return nil, fieldErr(field.Name, "Invalid email format")
	}
	return s, nil
}

var nonDigits = regexp.MustCompile(`\D`)

// validatePhone normalises to bare digits before checking length, accepting
// formatted input like "+1 (555) 010-2000".
func validatePhone(field model.Field, value any) (any, error) {
	cleaned := nonDigits.ReplaceAllString(toString(value), "")
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return nil, fieldErr(field.Name, "Invalid phone number length")
	}
	return cleaned, nil
}

func validateNumber(field model.Field, value any) (any, error) {
	var parsed float64
	switch v := value.(type) {
	case float64:
		parsed = v
	case float32:
		parsed = float64(v)
	case int:
		parsed = float64(v)
	case int64:
		parsed = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fieldErr(field.Name, "Value must be a number")
		}
		parsed = f
	default:
		return nil, fieldErr(field.Name, "Value must be a number")
	}

	rules := field.ValidationRules
	if min, ok := ruleFloat(rules, model.RuleMin); ok && parsed < min {
		return nil, fieldErr(field.Name, fmt.Sprintf("Minimum value is %v", min))
	}
	if max, ok := ruleFloat(rules, model.RuleMax); ok && parsed > max {
		return nil, fieldErr(field.Name, fmt.Sprintf("Maximum value is %v", max))
	}
	return parsed, nil
}

func validateDate(field model.Field, value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(v))
		if err != nil {
			return nil, fieldErr(field.Name, "Invalid date format. Use YYYY-MM-DD")
		}
		return parsed, nil
	default:
		return nil, fieldErr(field.Name, "Invalid date format. Use YYYY-MM-DD")
	}
}

func validateChoice(field model.Field, value any) (any, error) {
	s := toString(value)
	for _, option := range field.Options {
		if s == option {
			return s, nil
		}
	}
	return nil, fieldErr(field.Name, fmt.Sprintf("Invalid selection. Must be one of %v", field.Options))
}

func validateMultiChoice(field model.Field, value any) (any, error) {
	var values []string
	switch v := value.(type) {
	case []string:
		values = v
	case []any:
		for _, item := range v {
			values = append(values, toString(item))
		}
	case string:
		values = []string{v}
	default:
		return nil, fieldErr(field.Name, "Value must be a list of selections")
	}

	allowed := make(map[string]struct{}, len(field.Options))
	for _, option := range field.Options {
		allowed[option] = struct{}{}
	}
	out := make([]string, 0, len(values))
	for _, item := range values {
		s := strings.TrimSpace(item)
		if _, ok := allowed[s]; !ok {
			return nil, fieldErr(field.Name, fmt.Sprintf("Invalid selection. Must be one of %v", field.Options))
		}
		out = append(out, s)
	}
	return out, nil
}

func validateBool(field model.Field, value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fieldErr(field.Name, "Value must be true or false")
		}
		return parsed, nil
	default:
		return nil, fieldErr(field.Name, "Value must be true or false")
	}
}

func ruleInt(rules model.Rules, key string) (int, bool) {
	switch v := rules[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func ruleFloat(rules model.Rules, key string) (float64, bool) {
	switch v := rules[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
