// Package validate holds the field acceptance rules for contact submissions.
// The same rules run on both surfaces: the TUI form uses them as a
// pre-submission check, and the server runs them again as the authoritative
// gate. Client-side results are advisory only.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/contactdeskhq/contactdesk/internal/model"
)

const (
	MinNameLength    = 2
	MaxNameLength    = 100
	MaxMessageLength = 500
)

var (
	// emailPattern accepts local@domain.tld with word characters and
	// optional dot/hyphen separators; the final segment is 2-3 characters.
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

	// phonePattern allows digits, spaces, hyphens, parentheses and plus signs.
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

// Fields checks candidate values against the field constraints and returns a
// field→message map for every field that fails. An empty map means the input
// is valid. Rules apply to trimmed values; Fields itself has no side effects.
func Fields(in model.ContactInput) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case len([]rune(name)) < MinNameLength:
		errs["name"] = fmt.Sprintf("Name must be at least %d characters", MinNameLength)
	case len([]rune(name)) > MaxNameLength:
		errs["name"] = fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength)
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}

	phone := strings.TrimSpace(in.Phone)
	switch {
	case phone == "":
		errs["phone"] = "Phone number is required"
	case !phonePattern.MatchString(phone):
		errs["phone"] = "Please enter a valid phone number"
	}

	if len([]rune(strings.TrimSpace(in.Message))) > MaxMessageLength {
		errs["message"] = fmt.Sprintf("Message cannot exceed %d characters", MaxMessageLength)
	}

	return errs
}

// Normalize returns the input with every field trimmed and the email
// lower-cased, the form in which a valid contact is stored.
func Normalize(in model.ContactInput) model.ContactInput {
	return model.ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
}
