package resource

import (
	"fmt"
	"net/url"

	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// Transport is the request body shape a kind is saved with.
type Transport int

const (
	TransportJSON Transport = iota
	TransportMultipart
)

func (t Transport) String() string {
	switch t {
	case TransportJSON:
		return "json"
	case TransportMultipart:
		return "multipart"
	default:
		return fmt.Sprintf("Transport(%d)", int(t))
	}
}

// Kind is one row of the schema table: everything the generic controller needs to
// list, edit and delete a resource collection.
type Kind struct {
	// Name is the collection name and the API path segment.
	Name string
	// Label начинает сообщения об успехе: "Skill added."
	Label string
	// Noun is used in confirm prompts and failures: "Delete this skill?"
	Noun string
	// Plural is used when the list cannot be loaded.
	Plural string

	CreateTitle  string
	EditTitle    string
	CreateSubmit string
	EditSubmit   string

	Fields []form.Field
	// Card renders the summary of a record. Buttons it sets are kept, otherwise
	// edit and delete are added.
	Card      func(r Record) ui.Card
	Transport Transport
	// CountsOnList refreshes the dashboard counts after every list render.
	CountsOnList bool
}

// Path returns the collection endpoint.
func (k Kind) Path() string {
	return "/api/" + k.Name
}

// ItemPath returns the endpoint of one record.
func (k Kind) ItemPath(id string) string {
	return k.Path() + "/" + url.PathEscape(id)
}

// NewForm builds an empty form from the schema.
func (k Kind) NewForm(edit bool) *form.Form {
	submit := k.CreateSubmit
	if edit {
		submit = k.EditSubmit
	}
	return form.New(k.Fields, submit)
}

// Encode serializes the form according to the kind's transport.
func (k Kind) Encode(f *form.Form) (*form.Encoded, error) {
	if k.Transport == TransportMultipart {
		return f.Multipart()
	}
	return f.JSON()
}

// RenderCard renders r, falling back to a bare card when the kind has no renderer.
func (k Kind) RenderCard(r Record) ui.Card {
	var card ui.Card
	if k.Card != nil {
		card = k.Card(r)
	}
	card.ID = r.ID()
	card.Kind = k.Name
	if card.Buttons == nil {
		card.Buttons = []ui.Button{
			{Label: "✏️", Event: ui.Event{Action: ui.ActionEdit, Kind: k.Name, ID: card.ID}},
			{Label: "🗑️", Event: ui.Event{Action: ui.ActionDelete, Kind: k.Name, ID: card.ID}},
		}
	}
	return card
}

func (k Kind) loadFailed() string {
	return fmt.Sprintf("Couldn't load %s. Please try again.", k.Plural)
}

func (k Kind) saveFailed() string {
	return fmt.Sprintf("Couldn't save that %s. Please try again.", k.Noun)
}

func (k Kind) deleteFailed() string {
	return fmt.Sprintf("Couldn't delete that %s. Please try again.", k.Noun)
}

func (k Kind) deletePrompt() string {
	return fmt.Sprintf("Delete this %s? This can't be undone.", k.Noun)
}

func (k Kind) deleted() string {
	return capitalize(k.Noun) + " deleted."
}

func (k Kind) saved(edit bool) string {
	if edit {
		return k.Label + " updated."
	}
	return k.Label + " added."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
