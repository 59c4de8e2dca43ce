package form

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "x, y , , z", want: []string{"x", "y", "z"}},
		{in: "a, , b", want: []string{"a", "b"}},
		{in: "", want: []string{}},
		{in: " , ,", want: []string{}},
		{in: "Go", want: []string{"Go"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

// TestListRoundTrip: form text → array → form text drops blank tokens.
func TestListRoundTrip(t *testing.T) {
	items := SplitList("x, y , , z")
	assert.Equal(t, []string{"x", "y", "z"}, items)
	assert.Equal(t, "x, y, z", JoinList(items))
}

func TestForm_Populate(t *testing.T) {
	f := New([]Field{
		{Name: "title", Input: InputText},
		{Name: "tags", Input: InputText, List: true},
		{Name: "achievements", Input: InputTextarea, List: true},
		{Name: "current", Input: InputCheckbox},
		{Name: "level", Input: InputNumber},
		{Name: "image", Input: InputFile},
	}, "Update")

	f.Populate(map[string]any{
		"title":        "Hello",
		"tags":         []any{"go", "", "cli"},
		"achievements": `["shipped","led"]`,
		"current":      true,
		"image":        "/uploads/x.png",
	})

	assert.Equal(t, "Hello", f.Value("title"))
	assert.Equal(t, "go, cli", f.Value("tags"))
	assert.Equal(t, "shipped, led", f.Value("achievements"))
	assert.True(t, f.Checked("current"))
	assert.Equal(t, "0", f.Value("level"))
	assert.Empty(t, f.File("image"))
}

func TestForm_Missing(t *testing.T) {
	f := New([]Field{
		{Name: "name", Label: "Name", Input: InputText, Required: true},
		{Name: "category", Label: "Category", Input: InputText, Required: true},
		{Name: "note", Label: "Note", Input: InputText},
	}, "Add")
	f.Set("name", "Go")
	f.Set("category", "   ")

	assert.Equal(t, []string{"Category"}, f.Missing())
}

// TestForm_PayloadCurrentClearsEndDate: a ticked "current" box sends an empty endDate.
func TestForm_PayloadCurrentClearsEndDate(t *testing.T) {
	f := New([]Field{
		{Name: "endDate", Input: InputMonth},
		{Name: "current", Input: InputCheckbox, Clears: "endDate"},
	}, "Update")
	f.Set("endDate", "2024-05")
	f.SetChecked("current", true)

	payload := f.Payload()
	assert.Equal(t, "", payload["endDate"])
	assert.Equal(t, true, payload["current"])

	f.SetChecked("current", false)
	assert.Equal(t, "2024-05", f.Payload()["endDate"])
}

func TestForm_JSON(t *testing.T) {
	f := New([]Field{
		{Name: "name", Input: InputText},
		{Name: "level", Input: InputNumber},
		{Name: "tags", Input: InputText, List: true},
		{Name: "achievements", Input: InputTextarea, List: true, Stringify: true},
	}, "Add")
	f.Set("name", "Go")
	f.Set("level", "90")
	f.Set("tags", "a, , b")
	f.Set("achievements", "one, two")

	enc, err := f.JSON()
	require.NoError(t, err)
	assert.Equal(t, "application/json", enc.ContentType)

	var got map[string]any
	require.NoError(t, json.Unmarshal(enc.Body, &got))
	assert.Equal(t, "Go", got["name"])
	assert.Equal(t, float64(90), got["level"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	assert.Equal(t, `["one","two"]`, got["achievements"])
}

func TestForm_JSONNonNumericLevel(t *testing.T) {
	f := New([]Field{{Name: "level", Input: InputNumber}}, "Add")
	f.Set("level", "lots")

	enc, err := f.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":null}`, string(enc.Body))
}

func TestForm_Multipart(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0o600))

	f := New([]Field{
		{Name: "title", Input: InputText},
		{Name: "tags", Input: InputText, List: true},
		{Name: "image", Input: InputFile},
	}, "Add")
	f.Set("title", "Post")
	f.Set("tags", "go, testing")
	f.SetFile("image", imgPath)

	enc, err := f.Multipart()
	require.NoError(t, err)

	fields, files := readMultipart(t, enc)
	assert.Equal(t, "Post", fields["title"])
	assert.Equal(t, `["go","testing"]`, fields["tags"])
	assert.Equal(t, "png-bytes", files["image"])
}

func TestForm_MultipartWithoutFile(t *testing.T) {
	f := New([]Field{
		{Name: "title", Input: InputText},
		{Name: "image", Input: InputFile},
	}, "Add")
	f.Set("title", "Post")

	enc, err := f.Multipart()
	require.NoError(t, err)

	fields, files := readMultipart(t, enc)
	assert.Equal(t, "Post", fields["title"])
	assert.Empty(t, files)
}

func TestFileMultipart_MissingFile(t *testing.T) {
	_, err := FileMultipart("resume", filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}

func readMultipart(t *testing.T, enc *Encoded) (map[string]string, map[string]string) {
	t.Helper()
	_, params, err := mime.ParseMediaType(enc.ContentType)
	require.NoError(t, err)

	r := multipart.NewReader(strings.NewReader(string(enc.Body)), params["boundary"])
	fields := make(map[string]string)
	files := make(map[string]string)
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			files[part.FormName()] = string(data)
			continue
		}
		fields[part.FormName()] = string(data)
	}
	return fields, files
}

func TestForm_Invalid(t *testing.T) {
	fields := []Field{
		{Name: "level", Label: "Level (%)", Input: InputNumber, Min: 0, Max: 100},
		{Name: "year", Label: "Year", Input: InputNumber},
		{Name: "image", Label: "Image", Input: InputFile, Accept: "image/*"},
	}

	tests := []struct {
		name  string
		level string
		year  string
		image string
		want  []Violation
	}{
		{name: "valid", level: "90", year: "1999", image: "me.png"},
		{name: "empty values are left to Missing", level: "", year: "", image: ""},
		{name: "bounds are inclusive", level: "100"},
		{
			name:  "above max",
			level: "150",
			want:  []Violation{{Field: "level", Message: "Level (%) must be between 0 and 100."}},
		},
		{
			name:  "below min",
			level: "-1",
			want:  []Violation{{Field: "level", Message: "Level (%) must be between 0 and 100."}},
		},
		{
			name: "no range declared",
			year: "-5",
		},
		{
			name:  "not a number",
			level: "lots",
			want:  []Violation{{Field: "level", Message: "Level (%) must be a whole number."}},
		},
		{
			name:  "wrong file type",
			image: "cv.pdf",
			want:  []Violation{{Field: "image", Message: "Image must be a file of type image/*."}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(fields, "Add")
			f.Set("level", tt.level)
			f.Set("year", tt.year)
			f.SetFile("image", tt.image)

			assert.Equal(t, tt.want, f.Invalid())
			if tt.want == nil {
				assert.NoError(t, f.Validate())
			} else {
				assert.ErrorIs(t, f.Validate(), ErrInvalid)
			}
		})
	}
}

func TestAccepts(t *testing.T) {
	assert.True(t, Accepts("image/*", "/tmp/a.PNG"))
	assert.True(t, Accepts("image/*", "a.jpeg"))
	assert.False(t, Accepts("image/*", "a.pdf"))
	assert.False(t, Accepts("image/*", "noext"))
	assert.True(t, Accepts(".pdf, .doc", "cv.pdf"))
	assert.True(t, Accepts("application/pdf", "cv.pdf"))
	assert.False(t, Accepts("application/pdf", "cv.txt"))
}
