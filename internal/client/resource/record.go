package resource

import (
	"strconv"
	"strings"

	"github.com/iudanet/folioadmin/internal/client/api"
)

// Record is an opaque server record. Only the id is interpreted by the engine;
// everything else is read through the kind's schema and card renderer.
type Record map[string]any

// ID returns the server-assigned identifier.
func (r Record) ID() string {
	return r.String("id")
}

// String returns a field as text; numbers are formatted, missing fields are "".
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Bool возвращает true только для JSON true
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Strings returns a list field. Non-array values yield nil, blank items are dropped.
func (r Record) Strings(key string) []string {
	items, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Records converts a decoded collection body. Anything but a JSON array is an
// empty collection; non-object elements are skipped.
func Records(body any) []Record {
	items, ok := body.([]any)
	if !ok {
		return []Record{}
	}
	out := make([]Record, 0, len(items))
	for _, it := range items {
		if obj, ok := it.(map[string]any); ok {
			out = append(out, Record(obj))
		}
	}
	return out
}

// Find returns the record with id or nil.
func Find(records []Record, id string) Record {
	for _, r := range records {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// ParseResponse decodes a collection response. ok is false when the body is absent
// or is not JSON at all; a valid non-array body is an empty collection.
func ParseResponse(resp *api.Response) ([]Record, bool) {
	var body any
	if !api.DecodeJSONSafe(resp, &body) {
		return nil, false
	}
	return Records(body), true
}
