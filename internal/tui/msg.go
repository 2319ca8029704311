// Package tui implements the interactive terminal client: a submission form
// pane and a contact list pane over the contactdesk HTTP API. The list holds
// the full contact set fetched once at startup and is updated optimistically
// from mutation responses, never by implicit re-fetching.
package tui

import (
	"context"

	"github.com/contactdeskhq/contactdesk/internal/model"
)

// API is the surface of the HTTP client the TUI depends on.
// *client.Client satisfies it; tests substitute fakes.
type API interface {
	CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// contactListMsg carries the result of a contact list fetch.
type contactListMsg struct {
	Contacts []model.Contact
	Err      error
}

// contactCreatedMsg reports a successful submission. The form resets itself
// and the list prepends the stored contact.
type contactCreatedMsg struct {
	Contact *model.Contact
}

// createFailedMsg reports a rejected or failed submission. Fields is non-nil
// when the server returned per-field validation messages; Err covers network
// and server failures.
type createFailedMsg struct {
	Fields map[string]string
	Err    error
}

// contactDeletedMsg reports a confirmed server-side deletion.
type contactDeletedMsg struct {
	ID string
}

// deleteFailedMsg reports a failed deletion. NotFound means the server no
// longer has the contact.
type deleteFailedMsg struct {
	ID       string
	NotFound bool
	Err      error
}

// clearSuccessMsg clears the form's transient success message.
type clearSuccessMsg struct{}
