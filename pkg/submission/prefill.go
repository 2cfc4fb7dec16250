package submission

import "github.com/caseflow/go-intake/pkg/model"

// FilterPrefill reduces an externally produced answer map (for example, data
// extracted from a case narrative) to the values that belong on the form and
// pass its field validation. Unknown keys and invalid values are dropped
// silently; prefill is best-effort, not a submission.
func FilterPrefill(form *model.Form, prefilled map[string]any) map[string]any {
	if form == nil || len(prefilled) == 0 {
		return map[string]any{}
	}

	clean := Sanitize(prefilled)
	out := make(map[string]any, len(clean))
	for _, section := range form.Sections() {
		for _, field := range section.Fields() {
			value, ok := clean[field.Name]
			if !ok || isEmpty(value) {
				continue
			}
			validated, err := ValidateField(field, value)
			if err != nil || validated == nil {
				continue
			}
			out[field.Name] = validated
		}
	}
	return out
}
