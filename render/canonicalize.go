package render

import (
	"strings"
	"time"

	"processcheck-backend/models"
)

// Canonicalize recursively rewrites every timestamp inside v into its
// ISO-8601 textual form, collapsing a "+00:00" UTC offset to the literal
// "Z" suffix. Maps and sequences are walked with keys and order untouched;
// every other value passes through unchanged. The function is idempotent;
// cyclic structures are not supported inputs.
func Canonicalize(v any) any {
	switch value := v.(type) {
	case time.Time:
		return formatTimestamp(value)
	case *time.Time:
		if value == nil {
			return nil
		}
		return formatTimestamp(*value)
	case models.Fields:
		out := make(models.Fields, len(value))
		for i, field := range value {
			out[i] = models.Field{Key: field.Key, Value: Canonicalize(field.Value)}
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			out[key] = Canonicalize(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = Canonicalize(item)
		}
		return out
	default:
		return v
	}
}

func formatTimestamp(t time.Time) string {
	s := t.Format(time.RFC3339)
	if strings.HasSuffix(s, "+00:00") {
		s = strings.TrimSuffix(s, "+00:00") + "Z"
	}
	return s
}
