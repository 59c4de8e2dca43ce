package iocli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/folioadmin/internal/client/form"
)

// ErrRequired is returned by FillForm when required fields stay empty.
var ErrRequired = errors.New("required fields are empty")

// FillForm prompts for every editable field of f. An empty answer keeps the
// current value; "-" clears it. Checkbox fields take y/n, file fields take a path.
// Fields that are empty but required, or break their constraint, are asked again
// once; if they are still wrong ErrRequired or form.ErrInvalid is returned.
func FillForm(io IO, f *form.Form) error {
	for _, fld := range f.Fields {
		if err := promptField(io, f, fld); err != nil {
			return err
		}
	}

	retry := make(map[string]bool)
	if missing := f.Missing(); len(missing) > 0 {
		io.Printf("Please fill in: %s\n", strings.Join(missing, ", "))
		labels := make(map[string]bool, len(missing))
		for _, label := range missing {
			labels[label] = true
		}
		for _, fld := range f.Fields {
			if fld.Required && labels[fld.Label] {
				retry[fld.Name] = true
			}
		}
	}
	for _, v := range f.Invalid() {
		io.Println(v.Message)
		retry[v.Field] = true
	}
	if len(retry) == 0 {
		return nil
	}

	for _, fld := range f.Fields {
		if retry[fld.Name] {
			if err := promptField(io, f, fld); err != nil {
				return err
			}
		}
	}
	if missing := f.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequired, strings.Join(missing, ", "))
	}
	return f.Validate()
}

func promptField(io IO, f *form.Form, fld form.Field) error {
	label := fld.Label
	if label == "" {
		label = fld.Name
	}

	switch fld.Input {
	case form.InputStatic:
		return nil
	case form.InputCheckbox:
		def := "n"
		if f.Checked(fld.Name) {
			def = "y"
		}
		answer, err := io.ReadInput(fmt.Sprintf("%s [y/n] (%s): ", label, def))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", fld.Name, err)
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			f.SetChecked(fld.Name, true)
		case "n", "no":
			f.SetChecked(fld.Name, false)
		}
		return nil
	case form.InputFile:
		answer, err := io.ReadInput(fmt.Sprintf("%s (file path, empty to keep): ", label))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", fld.Name, err)
		}
		if answer != "" {
			f.SetFile(fld.Name, answer)
		}
		return nil
	}

	prompt := label + ": "
	if cur := f.Value(fld.Name); cur != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, cur)
	}
	answer, err := io.ReadInput(prompt)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fld.Name, err)
	}
	switch answer {
	case "":
	case "-":
		f.Set(fld.Name, "")
	default:
		f.Set(fld.Name, answer)
	}
	return nil
}
