package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReadJSONSafe decodes the response body. It returns nil when the body is absent or
// malformed and never panics.
func ReadJSONSafe(resp *Response) any {
	if resp == nil || len(resp.Body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return nil
	}
	return v
}

// DecodeJSONSafe decodes the body into v and reports whether that worked.
func DecodeJSONSafe(resp *Response, v any) bool {
	if resp == nil || len(resp.Body) == 0 {
		return false
	}
	return json.Unmarshal(resp.Body, v) == nil
}

// ErrorMessage выбирает лучшее доступное сообщение об ошибке:
// непустое поле error из тела, иначе fallback с HTTP статусом, иначе сам fallback.
func ErrorMessage(resp *Response, body any, fallback string) string {
	if msg := StringField(body, "error"); strings.TrimSpace(msg) != "" {
		return msg
	}
	if resp != nil && resp.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", fallback, resp.StatusCode)
	}
	return fallback
}

// Succeeded reports whether body is an envelope with an explicit success: true.
func Succeeded(body any) bool {
	obj, ok := body.(map[string]any)
	if !ok {
		return false
	}
	ok, _ = obj["success"].(bool)
	return ok
}

// StringField возвращает строковое поле объекта или "" для любой другой формы
func StringField(body any, key string) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}
