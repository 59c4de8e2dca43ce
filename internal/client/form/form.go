package form

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Input описывает тип поля ввода
type Input string

const (
	InputText     Input = "text"
	InputTextarea Input = "textarea"
	InputNumber   Input = "number"
	InputMonth    Input = "month"
	InputDate     Input = "date"
	InputCheckbox Input = "checkbox"
	InputFile     Input = "file"
	// InputStatic is read-only text (message detail view).
	InputStatic Input = "static"
)

// Field is one declarative entry of a resource field schema.
type Field struct {
	Name     string // ключ в записи и в теле запроса
	Label    string
	Input    Input
	Accept   string // для InputFile, например "image/*"
	Clears   string // для InputCheckbox: при отмеченном чекбоксе это поле отправляется пустым
	Min      int
	Max      int
	Required bool
	// List marks a comma-separated input that is sent as an array of strings.
	List bool
	// Stringify sends a List field as a JSON-encoded string instead of an array.
	Stringify bool
}

// Form holds the current input of a rendered form. Safe for concurrent use.
type Form struct {
	values      map[string]string
	files       map[string]string
	Fields      []Field
	SubmitLabel string
	mu          sync.RWMutex
}

// New создает пустую форму по схеме полей
func New(fields []Field, submitLabel string) *Form {
	return &Form{
		Fields:      fields,
		SubmitLabel: submitLabel,
		values:      make(map[string]string),
		files:       make(map[string]string),
	}
}

// Field возвращает описание поля по имени
func (f *Form) Field(name string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

// Value returns the raw text of a field as the operator typed it.
func (f *Form) Value(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[name]
}

// Set sets the raw text of a field.
func (f *Form) Set(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
}

// Checked reports whether a checkbox field is ticked.
func (f *Form) Checked(name string) bool {
	return parseBool(f.Value(name))
}

// SetChecked ticks or clears a checkbox field.
func (f *Form) SetChecked(name string, checked bool) {
	f.Set(name, strconv.FormatBool(checked))
}

// File возвращает путь к выбранному файлу ("" если файл не выбран)
func (f *Form) File(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.files[name]
}

// SetFile выбирает локальный файл для file-поля
func (f *Form) SetFile(name, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if path == "" {
		delete(f.files, name)
		return
	}
	f.files[name] = path
}

// Values returns a copy of all raw values.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Missing returns labels of required fields that are still empty, in schema order.
func (f *Form) Missing() []string {
	var missing []string
	for _, fld := range f.Fields {
		if !fld.Required || fld.Input == InputStatic || fld.Input == InputCheckbox {
			continue
		}
		if fld.Input == InputFile {
			if f.File(fld.Name) == "" {
				missing = append(missing, fld.Label)
			}
			continue
		}
		if strings.TrimSpace(f.Value(fld.Name)) == "" {
			missing = append(missing, fld.Label)
		}
	}
	return missing
}

// Populate fills the form from a server record. List fields are joined with ", ",
// dropping blank entries, so the form never shows empty tokens.
func (f *Form) Populate(record map[string]any) {
	for _, fld := range f.Fields {
		if fld.Input == InputFile {
			continue
		}
		raw := record[fld.Name]
		switch {
		case fld.List:
			f.Set(fld.Name, JoinList(toStrings(raw)))
		case fld.Input == InputCheckbox:
			f.SetChecked(fld.Name, truthy(raw))
		case fld.Input == InputNumber:
			s := stringify(raw)
			if s == "" {
				s = "0"
			}
			f.Set(fld.Name, s)
		default:
			f.Set(fld.Name, stringify(raw))
		}
	}
}

// SplitList разбивает строку по запятым, обрезает пробелы и отбрасывает пустые элементы.
// Никогда не возвращает nil, чтобы в JSON уходил [] а не null.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList is the inverse of SplitList for form population.
func JoinList(items []string) string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			kept = append(kept, it)
		}
	}
	return strings.Join(kept, ", ")
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			out = append(out, stringify(it))
		}
		return out
	case string:
		// некоторые бэкенды хранят массивы строкой JSON или через запятую
		if items, ok := decodeStringList(t); ok {
			return items
		}
		return SplitList(t)
	default:
		return nil
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return parseBool(t)
	case float64:
		return t != 0
	default:
		return false
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "y", "1":
		return true
	default:
		return false
	}
}
