package form

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by Validate when a value breaks a field constraint.
var ErrInvalid = errors.New("invalid input")

// Violation describes one field whose value breaks its declared constraint.
type Violation struct {
	Field   string
	Message string
}

// Invalid returns constraint violations in schema order: numbers outside Min..Max
// (when a range is declared) or not numbers at all, and files that do not match
// Accept. Empty values are left to Missing.
func (f *Form) Invalid() []Violation {
	var out []Violation
	for _, fld := range f.Fields {
		if msg := f.check(fld); msg != "" {
			out = append(out, Violation{Field: fld.Name, Message: msg})
		}
	}
	return out
}

// Validate joins every violation into one error wrapping ErrInvalid.
func (f *Form) Validate() error {
	violations := f.Invalid()
	if len(violations) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Message)
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, " "))
}

func (f *Form) check(fld Field) string {
	label := fld.Label
	if label == "" {
		label = fld.Name
	}

	switch fld.Input {
	case InputNumber:
		raw := strings.TrimSpace(f.Value(fld.Name))
		if raw == "" {
			return ""
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Sprintf("%s must be a whole number.", label)
		}
		if fld.Min < fld.Max && (n < fld.Min || n > fld.Max) {
			return fmt.Sprintf("%s must be between %d and %d.", label, fld.Min, fld.Max)
		}
	case InputFile:
		path := f.File(fld.Name)
		if path == "" || fld.Accept == "" {
			return ""
		}
		if !Accepts(fld.Accept, path) {
			return fmt.Sprintf("%s must be a file of type %s.", label, fld.Accept)
		}
	}
	return ""
}

// Accepts reports whether path matches an accept list such as "image/*",
// ".pdf" or "application/pdf,image/png". The type is guessed from the extension.
func Accepts(accept, path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	typ, _, _ := mime.ParseMediaType(mime.TypeByExtension(ext))

	for _, token := range strings.Split(accept, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		switch {
		case token == "":
			continue
		case strings.HasPrefix(token, "."):
			if ext == token {
				return true
			}
		case strings.HasSuffix(token, "/*"):
			if typ != "" && strings.HasPrefix(typ, strings.TrimSuffix(token, "*")) {
				return true
			}
		case typ == token:
			return true
		}
	}
	return false
}
