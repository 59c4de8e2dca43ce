package iocli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/modal"
	"github.com/iudanet/folioadmin/internal/client/notify"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// Terminal renders every region of the dashboard page as text. It implements the ui
// views, the notification display, the confirm step and the login navigator; the
// modal presenter is available through Presenter.
type Terminal struct {
	io         IO
	cards      map[string][]ui.Card
	counts     map[string]int
	redirected chan struct{}
	// AssumeYes answers every confirm prompt with yes.
	AssumeYes bool
	mu        sync.Mutex
}

var (
	_ ui.ListView    = (*Terminal)(nil)
	_ ui.CountsView  = (*Terminal)(nil)
	_ ui.ProfileView = (*Terminal)(nil)
	_ ui.Confirmer   = (*Terminal)(nil)
	_ notify.Display = (*Terminal)(nil)
	_ api.Navigator  = (*Terminal)(nil)
)

// NewTerminal создает терминальное представление поверх io
func NewTerminal(io IO) *Terminal {
	return &Terminal{
		io:         io,
		cards:      make(map[string][]ui.Card),
		counts:     make(map[string]int),
		redirected: make(chan struct{}),
	}
}

// IO returns the underlying terminal IO.
func (t *Terminal) IO() IO {
	return t.io
}

// Render prints one list region and remembers its cards.
func (t *Terminal) Render(kind string, cards []ui.Card) {
	t.mu.Lock()
	t.cards[kind] = cards
	t.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "== %s (%d) ==\n", Title(kind), len(cards))
	if len(cards) == 0 {
		b.WriteString("  No items yet.\n")
	}
	for _, c := range cards {
		writeCard(&b, c)
	}
	_, _ = t.io.Write([]byte(b.String()))
}

// Cards returns the cards last rendered for kind.
func (t *Terminal) Cards(kind string) []ui.Card {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cards[kind]
}

// SetCount stores a dashboard count. Counts are printed by PrintCounts.
func (t *Terminal) SetCount(kind string, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[kind] = n
}

// Count returns the last rendered count for kind.
func (t *Terminal) Count(kind string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[kind]
}

// PrintCounts prints the summary counts in the given order.
func (t *Terminal) PrintCounts(kinds []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, k := range kinds {
		label := Title(k)
		if k == "messages" {
			label = "Unread messages"
		}
		t.io.Printf("  %-16s %d\n", label, t.counts[k])
	}
}

// ShowProfile prints the profile form and both previews as one block.
func (t *Terminal) ShowProfile(f *form.Form, image, resume string) {
	var b strings.Builder
	b.WriteString("== Profile ==\n")
	for _, fld := range f.Fields {
		writeProfileLine(&b, fld.Label+":", f.Value(fld.Name))
	}
	writeProfileLine(&b, "Image:", image)
	writeProfileLine(&b, "Resume:", resume)
	_, _ = t.io.Write([]byte(b.String()))
}

func (t *Terminal) SetImage(src string) {
	var b strings.Builder
	writeProfileLine(&b, "Image:", src)
	_, _ = t.io.Write([]byte(b.String()))
}

func (t *Terminal) SetResume(href string, visible bool) {
	if !visible {
		href = ""
	}
	var b strings.Builder
	writeProfileLine(&b, "Resume:", href)
	_, _ = t.io.Write([]byte(b.String()))
}

func writeProfileLine(b *strings.Builder, label, value string) {
	if value == "" {
		value = "(none)"
	}
	fmt.Fprintf(b, "  %-10s %s\n", label, value)
}

// Show prints a notification. Only the newest one is ever on screen, so a line per
// notification is enough.
func (t *Terminal) Show(n notify.Notification) {
	mark := "✔"
	if n.Kind == notify.KindError {
		mark = "✖"
	}
	t.io.Printf("%s %s\n", mark, n.Message)
}

// Hide does nothing: printed lines cannot be taken back.
func (t *Terminal) Hide() {}

// ShowModal prints the modal header. It is the modal.Presenter Show method under
// an adapter, since Show is taken by the notification display.
func (t *Terminal) ShowModal(title string, f *form.Form) {
	t.io.Printf("── %s ──\n", title)
	for _, fld := range f.Fields {
		if fld.Input == form.InputStatic {
			t.io.Printf("  %-8s %s\n", fld.Label+":", f.Value(fld.Name))
		}
	}
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (t *Terminal) Confirm(prompt string) bool {
	if t.AssumeYes {
		return true
	}
	answer, err := t.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Redirect sends the operator to the login surface.
func (t *Terminal) Redirect(target string) {
	t.io.Println("Please sign in again: run 'folioadmin login'.")
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.redirected:
	default:
		close(t.redirected)
	}
}

// Redirected is closed once Redirect has been called.
func (t *Terminal) Redirected() <-chan struct{} {
	return t.redirected
}

// Presenter adapts the terminal to modal.Presenter.
func (t *Terminal) Presenter() modal.Presenter {
	return modalPresenter{t}
}

type modalPresenter struct {
	t *Terminal
}

func (p modalPresenter) Show(title string, f *form.Form) {
	p.t.ShowModal(title, f)
}

func (p modalPresenter) Hide() {}

// Title turns a collection name into a heading.
func Title(kind string) string {
	if kind == "" {
		return ""
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

func writeCard(b *strings.Builder, c ui.Card) {
	fmt.Fprintf(b, "- [%s] %s\n", c.ID, c.Title)
	for _, line := range c.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintf(b, "    %s\n", line)
	}
	if len(c.Badges) > 0 {
		badges := make([]string, 0, len(c.Badges))
		for _, bd := range c.Badges {
			if bd.Text != "" {
				badges = append(badges, "["+bd.Text+"]")
			}
		}
		if len(badges) > 0 {
			fmt.Fprintf(b, "    %s\n", strings.Join(badges, " "))
		}
	}
	if len(c.Buttons) > 0 {
		actions := make([]string, 0, len(c.Buttons))
		for _, btn := range c.Buttons {
			actions = append(actions, btn.Label+" "+string(btn.Event.Action))
		}
		fmt.Fprintf(b, "    %s\n", strings.Join(actions, "  "))
	}
}
