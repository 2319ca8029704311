// Package client is the HTTP client for the contactdesk API, used by the
// terminal frontend. It decodes the API's JSON envelopes back into typed
// results and errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/contactdeskhq/contactdesk/internal/model"
)

// ErrNotFound is returned when a delete targets an id the server no longer has.
var ErrNotFound = errors.New("contact not found")

// FieldError is returned when the server rejects a submission with per-field
// validation messages. The server's map is authoritative and replaces any
// client-side result.
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("server rejected %d field(s)", len(e.Fields))
}

// Client talks to the contactdesk HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API at baseURL. Every request runs to
// completion within the given timeout; there is no cancellation or retry.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope covers every response shape the API produces.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Count   int               `json:"count"`
	Errors  map[string]string `json:"errors"`
	Error   string            `json:"error"`
}

// CreateContact submits candidate fields and returns the stored contact.
// A 400 with per-field messages comes back as *FieldError.
func (c *Client) CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contacts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env struct {
		envelope
		Data *model.Contact `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusCreated && env.Data != nil:
		return env.Data, nil
	case resp.StatusCode == http.StatusBadRequest && len(env.Errors) > 0:
		return nil, &FieldError{Fields: env.Errors}
	default:
		return nil, fmt.Errorf("create contact: %s", statusOrMessage(resp.StatusCode, env.Message))
	}
}

// ListContacts fetches every stored contact, newest first.
func (c *Client) ListContacts(ctx context.Context) ([]model.Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/contacts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env struct {
		envelope
		Data []model.Contact `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		return nil, fmt.Errorf("list contacts: %s", statusOrMessage(resp.StatusCode, env.Message))
	}
	return env.Data, nil
}

// DeleteContact removes one contact by id. A 404 is reported as ErrNotFound.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/contacts/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("delete contact: %s", statusOrMessage(resp.StatusCode, env.Message))
	}
}

func statusOrMessage(status int, message string) string {
	if message != "" {
		return message
	}
	return http.StatusText(status)
}
