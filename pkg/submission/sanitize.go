package submission

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips markup from every string value in the answer set before
// validation runs. Non-string values pass through untouched; the original map
// is not modified.
func Sanitize(answers map[string]any) map[string]any {
	if answers == nil {
		return nil
	}
	out := make(map[string]any, len(answers))
	for key, value := range answers {
		switch v := value.(type) {
		case string:
			out[key] = strings.TrimSpace(strictPolicy.Sanitize(v))
		case []string:
			cleaned := make([]string, len(v))
			for i, item := range v {
				cleaned[i] = strings.TrimSpace(strictPolicy.Sanitize(item))
			}
			out[key] = cleaned
		default:
			out[key] = value
		}
	}
	return out
}
