package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Encoded is a ready-to-send request body.
type Encoded struct {
	ContentType string
	Body        []byte
}

// Payload собирает значения формы для отправки: применяет правило Clears,
// приводит числа, чекбоксы и списки к типам записи. File-поля не входят в payload.
func (f *Form) Payload() map[string]any {
	cleared := make(map[string]bool)
	for _, fld := range f.Fields {
		if fld.Input == InputCheckbox && fld.Clears != "" && f.Checked(fld.Name) {
			cleared[fld.Clears] = true
		}
	}

	out := make(map[string]any, len(f.Fields))
	for _, fld := range f.Fields {
		switch {
		case fld.Input == InputFile || fld.Input == InputStatic:
			continue
		case cleared[fld.Name]:
			out[fld.Name] = ""
		case fld.List:
			out[fld.Name] = SplitList(f.Value(fld.Name))
		case fld.Input == InputCheckbox:
			out[fld.Name] = f.Checked(fld.Name)
		case fld.Input == InputNumber:
			n, err := strconv.Atoi(strings.TrimSpace(f.Value(fld.Name)))
			if err != nil {
				// нечисловой ввод уходит как null
				out[fld.Name] = nil
				continue
			}
			out[fld.Name] = n
		default:
			out[fld.Name] = f.Value(fld.Name)
		}
	}
	return out
}

// JSON encodes the payload as a JSON object. List fields marked Stringify are sent
// as a JSON string holding the array.
func (f *Form) JSON() (*Encoded, error) {
	payload := f.Payload()
	for _, fld := range f.Fields {
		if !fld.List || !fld.Stringify {
			continue
		}
		items, ok := payload[fld.Name].([]string)
		if !ok {
			continue
		}
		s, err := encodeStringList(items)
		if err != nil {
			return nil, err
		}
		payload[fld.Name] = s
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form: %w", err)
	}
	return &Encoded{Body: data, ContentType: "application/json"}, nil
}

// Multipart encodes the payload as multipart/form-data. Lists always travel as JSON
// strings; selected files are attached under their field name.
func (f *Form) Multipart() (*Encoded, error) {
	payload := f.Payload()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.Fields {
		if fld.Input == InputStatic {
			continue
		}
		if fld.Input == InputFile {
			path := f.File(fld.Name)
			if path == "" {
				continue
			}
			if err := attachFile(w, fld.Name, path); err != nil {
				return nil, err
			}
			continue
		}

		var value string
		switch v := payload[fld.Name].(type) {
		case []string:
			s, err := encodeStringList(v)
			if err != nil {
				return nil, err
			}
			value = s
		case nil:
			value = ""
		default:
			value = fmt.Sprint(v)
		}
		if err := w.WriteField(fld.Name, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", fld.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return &Encoded{Body: buf.Bytes(), ContentType: w.FormDataContentType()}, nil
}

// FileMultipart builds a multipart body carrying a single file under field.
func FileMultipart(field, path string) (*Encoded, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := attachFile(w, field, path); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return &Encoded{Body: buf.Bytes(), ContentType: w.FormDataContentType()}, nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return nil
}

func encodeStringList(items []string) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}
	return string(data), nil
}

func decodeStringList(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return nil, false
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, false
	}
	return items, true
}
