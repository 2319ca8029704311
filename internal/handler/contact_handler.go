package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactdeskhq/contactdesk/internal/model"
	"github.com/contactdeskhq/contactdesk/internal/repository"
	"github.com/contactdeskhq/contactdesk/internal/service"
)

// ContactHandler translates HTTP requests into ContactService operations and
// maps results and errors to the JSON envelopes of the public API.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// createResponse is the JSON body for a successful POST /api/contacts.
type createResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *model.Contact `json:"data"`
}

// Create handles POST /api/contacts.
// Validation failures return 400 with a field→message map; nothing is stored.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	contact, err := h.contacts.Create(r.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Message: "Validation error",
				Errors:  vErr.Fields,
			})
			return
		}
		slog.Error("failed to create contact", "error", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		Success: true,
		Message: "Contact saved successfully",
		Data:    contact,
	})
}

// listResponse is the JSON body for GET /api/contacts.
type listResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []*model.Contact `json:"data"`
}

// List handles GET /api/contacts. The response is ordered newest first; an
// empty store yields an empty array, not an error.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list contacts", "error", err)
		writeServerError(w)
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(contacts),
		Data:    contacts,
	})
}

// deleteResponse is the JSON body for a successful DELETE /api/contacts/{id}.
type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.contacts.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{
				Success: false,
				Message: "Contact not found",
			})
			return
		}
		slog.Error("failed to delete contact", "error", err, "id", id)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{
		Success: true,
		Message: "Contact deleted successfully",
	})
}
