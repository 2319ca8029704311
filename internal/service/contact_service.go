package service

import (
	"context"
	"fmt"

	"github.com/contactdeskhq/contactdesk/internal/model"
)

// ContactService defines the business logic for contact records.
type ContactService interface {
	// Create validates the candidate fields, and on success persists a new
	// contact with a fresh id and creation timestamp. A constraint failure
	// is returned as *ValidationError and nothing is persisted.
	Create(ctx context.Context, in model.ContactInput) (*model.Contact, error)

	// ListAll returns every stored contact, newest first.
	ListAll(ctx context.Context) ([]*model.Contact, error)

	// DeleteByID removes the contact with the given id. A missing id is
	// reported as repository.ErrNotFound.
	DeleteByID(ctx context.Context, id string) error
}

// ValidationError reports per-field constraint violations for a rejected
// submission. Fields maps field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
