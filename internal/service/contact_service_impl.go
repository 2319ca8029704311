package service

import (
	"context"
	"time"

	"github.com/contactdeskhq/contactdesk/internal/model"
	"github.com/contactdeskhq/contactdesk/internal/repository"
	"github.com/contactdeskhq/contactdesk/internal/validate"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Create is the authoritative validation gate: it re-checks every field
// regardless of what the client reported, normalizes the values, stamps
// CreatedAt and persists. The repository assigns the identifier.
func (s *contactServiceImpl) Create(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	if errs := validate.Fields(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	norm := validate.Normalize(in)
	c := &model.Contact{
		Name:      norm.Name,
		Email:     norm.Email,
		Phone:     norm.Phone,
		Message:   norm.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListAll returns every stored contact ordered newest first.
func (s *contactServiceImpl) ListAll(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.ListAll(ctx)
}

// DeleteByID removes one contact, passing through repository.ErrNotFound.
func (s *contactServiceImpl) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
