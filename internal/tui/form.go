package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contactdeskhq/contactdesk/internal/client"
	"github.com/contactdeskhq/contactdesk/internal/model"
	"github.com/contactdeskhq/contactdesk/internal/validate"
)

// successDisplay is how long the submission success message stays visible.
const successDisplay = 3 * time.Second

type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldPhone
	fieldMessage
	fieldCount
)

// fieldKeys are the wire names the validation error map is keyed by.
var fieldKeys = [fieldCount]string{"name", "email", "phone", "message"}

var fieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Message"}

var fieldPlaceholders = [fieldCount]string{
	"Jane Doe",
	"jane@example.com",
	"+1 (555) 123-4567",
	"Optional message",
}

// formState manages the submission form pane: four editable fields, a
// per-field error map, the in-flight flag and the transient success message.
type formState struct {
	inputs     [fieldCount]textinput.Model
	focus      formField
	errs       map[string]string
	submitting bool
	success    string
	submitErr  string
}

func newFormState() formState {
	var fs formState
	fs.errs = make(map[string]string)
	for i := range fs.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = "> "
		fs.inputs[i] = ti
	}
	fs.inputs[fieldName].Focus()
	return fs
}

// setWidth adjusts the text inputs to the pane width.
func (fs formState) setWidth(w int) formState {
	inner := w - 6
	if inner < 10 {
		inner = 10
	}
	for i := range fs.inputs {
		fs.inputs[i].Width = inner
	}
	return fs
}

// focusCurrent gives keyboard focus to the current field.
func (fs formState) focusCurrent() (formState, tea.Cmd) {
	cmd := fs.inputs[fs.focus].Focus()
	return fs, cmd
}

// blurAll removes keyboard focus from every field.
func (fs formState) blurAll() formState {
	for i := range fs.inputs {
		fs.inputs[i].Blur()
	}
	return fs
}

// submitContact returns a tea.Cmd that posts the candidate fields and wraps
// the outcome in a contactCreatedMsg or createFailedMsg.
func submitContact(api API, in model.ContactInput) tea.Cmd {
	return func() tea.Msg {
		c, err := api.CreateContact(context.Background(), in)
		if err != nil {
			var fe *client.FieldError
			if errors.As(err, &fe) {
				return createFailedMsg{Fields: fe.Fields}
			}
			return createFailedMsg{Err: err}
		}
		return contactCreatedMsg{Contact: c}
	}
}

// clearSuccessAfter schedules the success message to clear itself.
func clearSuccessAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearSuccessMsg{}
	})
}

// Update processes messages for the form state.
func (fs formState) Update(msg tea.Msg, api API) (formState, tea.Cmd) {
	switch msg := msg.(type) {
	case contactCreatedMsg:
		fs.submitting = false
		fs.submitErr = ""
		fs.errs = make(map[string]string)
		for i := range fs.inputs {
			fs.inputs[i].SetValue("")
		}
		fs.success = "Contact submitted successfully!"
		return fs, clearSuccessAfter(successDisplay)

	case createFailedMsg:
		fs.submitting = false
		if len(msg.Fields) > 0 {
			// Server validation is authoritative; replace the local map.
			fs.errs = msg.Fields
			fs.submitErr = ""
		} else {
			fs.submitErr = "Could not submit contact. Please try again."
		}
		return fs, nil

	case clearSuccessMsg:
		fs.success = ""
		return fs, nil

	case tea.KeyMsg:
		// The submit control stays disabled until the in-flight request resolves.
		if fs.submitting {
			return fs, nil
		}
		return fs.handleKey(msg, api)
	}

	return fs, nil
}

func (fs formState) handleKey(msg tea.KeyMsg, api API) (formState, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if fs.focus == fieldMessage {
			return fs.submit(api)
		}
		return fs.moveFocus(1)
	case "ctrl+s":
		return fs.submit(api)
	case "down":
		return fs.moveFocus(1)
	case "up", "shift+tab":
		return fs.moveFocus(-1)
	}

	before := fs.inputs[fs.focus].Value()
	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	if fs.inputs[fs.focus].Value() != before {
		// Editing a field clears its error and any stale success message.
		delete(fs.errs, fieldKeys[fs.focus])
		fs.success = ""
		fs.submitErr = ""
	}
	return fs, cmd
}

func (fs formState) moveFocus(delta int) (formState, tea.Cmd) {
	fs.inputs[fs.focus].Blur()
	next := int(fs.focus) + delta
	if next < 0 {
		next = int(fieldCount) - 1
	}
	if next >= int(fieldCount) {
		next = 0
	}
	fs.focus = formField(next)
	cmd := fs.inputs[fs.focus].Focus()
	return fs, cmd
}

// submit runs the field rules locally first. Invalid input never reaches the
// network; the errors render inline instead.
func (fs formState) submit(api API) (formState, tea.Cmd) {
	in := fs.input()
	if errs := validate.Fields(in); len(errs) > 0 {
		fs.errs = errs
		fs.success = ""
		return fs, nil
	}

	fs.submitting = true
	fs.submitErr = ""
	fs.success = ""
	return fs, submitContact(api, in)
}

// input collects the current field values.
func (fs formState) input() model.ContactInput {
	return model.ContactInput{
		Name:    fs.inputs[fieldName].Value(),
		Email:   fs.inputs[fieldEmail].Value(),
		Phone:   fs.inputs[fieldPhone].Value(),
		Message: fs.inputs[fieldMessage].Value(),
	}
}

// View renders the form pane.
func (fs formState) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Submit a Contact"))
	b.WriteString("\n\n")

	for i := range fs.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(fs.inputs[i].View())
		b.WriteString("\n")
		if msg := fs.errs[fieldKeys[i]]; msg != "" {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case fs.submitting:
		b.WriteString(dimStyle.Render("Submitting..."))
	case fs.success != "":
		b.WriteString(successStyle.Render(fs.success))
	case fs.submitErr != "":
		b.WriteString(errorStyle.Render(fs.submitErr))
	default:
		b.WriteString(dimStyle.Render("enter advances · ctrl+s submits"))
	}

	return b.String()
}
