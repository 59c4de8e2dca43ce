package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/folioadmin/internal/client/form"
)

func experienceForm() *form.Form {
	return form.New([]form.Field{
		{Name: "title", Label: "Job Title", Input: form.InputText, Required: true},
		{Name: "achievements", Label: "Achievements", Input: form.InputTextarea, List: true},
		{Name: "current", Label: "Current", Input: form.InputCheckbox},
		{Name: "image", Label: "Image", Input: form.InputFile},
		{Name: "note", Label: "Note", Input: form.InputStatic},
	}, "Add")
}

func TestFillForm(t *testing.T) {
	var out bytes.Buffer
	io := NewStream(strings.NewReader("Engineer\nshipped, led\ny\n/tmp/a.png\n"), &out)
	f := experienceForm()

	require.NoError(t, FillForm(io, f))

	assert.Equal(t, "Engineer", f.Value("title"))
	assert.Equal(t, "shipped, led", f.Value("achievements"))
	assert.True(t, f.Checked("current"))
	assert.Equal(t, "/tmp/a.png", f.File("image"))
	assert.NotContains(t, out.String(), "Note")
}

func TestFillForm_KeepAndClear(t *testing.T) {
	var out bytes.Buffer
	io := NewStream(strings.NewReader("\n-\n\n\n"), &out)
	f := experienceForm()
	f.Set("title", "Engineer")
	f.Set("achievements", "a, b")
	f.SetChecked("current", true)

	require.NoError(t, FillForm(io, f))

	assert.Equal(t, "Engineer", f.Value("title"))
	assert.Equal(t, "", f.Value("achievements"))
	assert.True(t, f.Checked("current"))
	assert.Contains(t, out.String(), "Job Title [Engineer]: ")
	assert.Contains(t, out.String(), "Current [y/n] (y): ")
}

func TestFillForm_RequiredAskedAgain(t *testing.T) {
	var out bytes.Buffer
	io := NewStream(strings.NewReader("\n\nn\n\nEngineer\n"), &out)
	f := experienceForm()

	require.NoError(t, FillForm(io, f))

	assert.Equal(t, "Engineer", f.Value("title"))
	assert.Contains(t, out.String(), "Please fill in: Job Title")
}

func TestFillForm_RequiredStillEmpty(t *testing.T) {
	var out bytes.Buffer
	io := NewStream(strings.NewReader("\n\n\n\n\n"), &out)

	err := FillForm(io, experienceForm())
	require.ErrorIs(t, err, ErrRequired)
}

func TestFillForm_InputClosed(t *testing.T) {
	var out bytes.Buffer
	io := NewStream(strings.NewReader(""), &out)

	require.Error(t, FillForm(io, experienceForm()))
}

func skillForm() *form.Form {
	return form.New([]form.Field{
		{Name: "name", Label: "Skill Name", Input: form.InputText, Required: true},
		{Name: "level", Label: "Level (%)", Input: form.InputNumber, Min: 0, Max: 100, Required: true},
	}, "Add")
}

func TestFillForm_OutOfRangeAskedAgain(t *testing.T) {
	var out bytes.Buffer
	io := NewStream(strings.NewReader("Go\n150\n95\n"), &out)
	f := skillForm()

	require.NoError(t, FillForm(io, f))

	assert.Equal(t, "95", f.Value("level"))
	assert.Contains(t, out.String(), "Level (%) must be between 0 and 100.")
	assert.Equal(t, 1, strings.Count(out.String(), "Skill Name"))
}

func TestFillForm_StillOutOfRange(t *testing.T) {
	var out bytes.Buffer
	io := NewStream(strings.NewReader("Go\n150\n\n"), &out)

	err := FillForm(io, skillForm())
	require.ErrorIs(t, err, form.ErrInvalid)
}
