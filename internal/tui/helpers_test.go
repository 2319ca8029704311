package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/contactdeskhq/contactdesk/internal/model"
)

// fakeAPI is a func-field stand-in for the HTTP client.
type fakeAPI struct {
	createFunc func(ctx context.Context, in model.ContactInput) (*model.Contact, error)
	listFunc   func(ctx context.Context) ([]model.Contact, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (f *fakeAPI) CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, in)
	}
	return &model.Contact{
		ID:        "new-id",
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (f *fakeAPI) ListContacts(ctx context.Context) ([]model.Contact, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) DeleteContact(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func keyEsc() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

// sampleContacts is a small fixed set, newest first.
func sampleContacts() []model.Contact {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return []model.Contact{
		{ID: "3", Name: "Carol", Email: "carol@example.com", Phone: "555-0003", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "2", Name: "Alice", Email: "alice@example.com", Phone: "555-0002", CreatedAt: base.Add(time.Hour)},
		{ID: "1", Name: "Bob", Email: "bob@example.com", Phone: "555-0001", CreatedAt: base},
	}
}

func loadedList(contacts []model.Contact) listState {
	ls := newListState()
	ls, _ = ls.Update(contactListMsg{Contacts: contacts}, &fakeAPI{})
	return ls
}

func typeString(fs formState, api API, s string) formState {
	for _, r := range s {
		fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, api)
	}
	return fs
}

// filledForm types valid values into every field of a fresh form.
func filledForm(api API) formState {
	fs := newFormState()
	fs = typeString(fs, api, "Jane Doe")
	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyEnter}, api)
	fs = typeString(fs, api, "jane@example.com")
	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyEnter}, api)
	fs = typeString(fs, api, "555-1234")
	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyEnter}, api)
	fs = typeString(fs, api, "Hello")
	return fs
}
