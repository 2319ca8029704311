package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/contactdeskhq/contactdesk/internal/model"
)

func newSizedModel(api API, w, h int) Model {
	m := NewModel(api)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func TestNewModel_DefaultFocus(t *testing.T) {
	m := NewModel(&fakeAPI{})
	if m.focus != FocusForm {
		t.Errorf("focus = %d, want FocusForm (%d)", m.focus, FocusForm)
	}
}

func TestModel_InitFetchesContacts(t *testing.T) {
	called := false
	api := &fakeAPI{
		listFunc: func(ctx context.Context) ([]model.Contact, error) {
			called = true
			return sampleContacts(), nil
		},
	}
	m := NewModel(api)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should return a command")
	}
	execCmd(cmd)
	if !called {
		t.Error("Init should fetch the contact list once")
	}
}

// execCmd runs a command tree, unwrapping batches.
func execCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			execCmd(c)
		}
	}
}

func TestModel_TabTogglesFocus(t *testing.T) {
	m := newSizedModel(&fakeAPI{}, 100, 40)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.focus != FocusList {
		t.Errorf("after first Tab: focus = %d, want FocusList (%d)", m.focus, FocusList)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.focus != FocusForm {
		t.Errorf("after second Tab: focus = %d, want FocusForm (%d)", m.focus, FocusForm)
	}
	if !m.form.inputs[m.form.focus].Focused() {
		t.Error("returning to the form should restore keyboard focus")
	}
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newSizedModel(&fakeAPI{}, 100, 40)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce tea.QuitMsg")
	}
}

func TestModel_QTypesIntoForm(t *testing.T) {
	m := newSizedModel(&fakeAPI{}, 100, 40)

	updated, cmd := m.Update(keyRunes("q"))
	m = updated.(Model)
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q while the form has focus must type, not quit")
		}
	}
	if got := m.form.inputs[fieldName].Value(); got != "q" {
		t.Errorf("expected q typed into the name field, got %q", got)
	}
}

func TestModel_QQuitsInList(t *testing.T) {
	m := newSizedModel(&fakeAPI{}, 100, 40)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("q in the list pane should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
}

func TestModel_QDoesNotQuitWhileArmed(t *testing.T) {
	m := newSizedModel(&fakeAPI{}, 100, 40)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	updated, _ = m.Update(contactListMsg{Contacts: sampleContacts()})
	m = updated.(Model)
	updated, _ = m.Update(keyRunes("d"))
	m = updated.(Model)
	if m.list.confirmID == "" {
		t.Fatal("expected an armed row")
	}

	_, cmd := m.Update(keyRunes("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("q must not quit while a delete confirmation is armed")
		}
	}
}

func TestModel_WindowSizeMsg(t *testing.T) {
	m := NewModel(&fakeAPI{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = updated.(Model)

	if m.width != 120 || m.height != 50 {
		t.Errorf("size = %dx%d, want 120x50", m.width, m.height)
	}
}

func TestModel_CreatedMsg_ReachesBothPanes(t *testing.T) {
	m := newSizedModel(&fakeAPI{}, 100, 40)
	updated, _ := m.Update(contactListMsg{Contacts: sampleContacts()})
	m = updated.(Model)

	updated, _ = m.Update(contactCreatedMsg{Contact: &model.Contact{ID: "4", Name: "Dave"}})
	m = updated.(Model)

	if len(m.list.contacts) != 4 || m.list.contacts[0].ID != "4" {
		t.Error("list should prepend the created contact")
	}
	if m.form.success == "" {
		t.Error("form should show the success message")
	}
}

// TestModel_Teatest_Smoke runs the whole program against a fake API.
func TestModel_Teatest_Smoke(t *testing.T) {
	api := &fakeAPI{
		listFunc: func(ctx context.Context) ([]model.Contact, error) {
			return sampleContacts(), nil
		},
	}

	tm := teatest.NewTestModel(t, NewModel(api), teatest.WithInitialTermSize(100, 40))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return len(bts) > 0
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(keyRunes("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
