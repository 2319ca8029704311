package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of cells consumed by a pane's borders.
const borderChrome = 2

// Focus identifies which pane has keyboard focus.
type Focus int

const (
	FocusForm Focus = iota // Submission form pane.
	FocusList              // Contact list pane.
)

// Model is the root Bubble Tea model: form pane on the left, list pane on
// the right, Tab toggling focus between them.
type Model struct {
	api    API
	focus  Focus
	width  int
	height int
	form   formState
	list   listState
	help   help.Model
}

// NewModel creates the root model with form focus and a loading list.
func NewModel(api API) Model {
	return Model{
		api:  api,
		form: newFormState(),
		list: newListState(),
		help: help.New(),
	}
}

// Init fetches the contact list once; every later list change comes from
// mutation responses or an explicit refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchContacts(m.api), textinput.Blink)
}

// Update routes key messages to the focused pane and everything else to both.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		formW, _ := PaneWidths(msg.Width)
		m.form = m.form.setWidth(formW - borderChrome)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.toggleFocus()
		case "q":
			if m.focus == FocusList && m.list.confirmID == "" {
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		if m.focus == FocusForm {
			m.form, cmd = m.form.Update(msg, m.api)
		} else {
			m.list, cmd = m.list.Update(msg, m.api)
		}
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg, m.api)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg, m.api)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) toggleFocus() (Model, tea.Cmd) {
	if m.focus == FocusForm {
		m.focus = FocusList
		m.form = m.form.blurAll()
		return m, nil
	}
	m.focus = FocusForm
	var cmd tea.Cmd
	m.form, cmd = m.form.focusCurrent()
	return m, cmd
}

// contentHeight returns the usable height for pane content.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	formW, listW := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var formStyle, listStyle lipgloss.Style
	if m.focus == FocusForm {
		formStyle = FocusedBorder()
		listStyle = UnfocusedBorder()
	} else {
		formStyle = UnfocusedBorder()
		listStyle = FocusedBorder()
	}

	formPane := formStyle.
		Width(formW - borderChrome).
		Height(contentHeight).
		Render(m.form.View())
	listPane := listStyle.
		Width(listW - borderChrome).
		Height(contentHeight).
		Render(m.list.View(listW - borderChrome))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, formPane, listPane)
	helpView := m.help.View(m.keyMap())

	return lipgloss.JoinVertical(lipgloss.Left, panes, helpView)
}

// keyMap picks the help bindings for the current focus and confirmation state.
func (m Model) keyMap() help.KeyMap {
	if m.focus == FocusForm {
		return formKeyMap
	}
	if m.list.confirmID != "" {
		return armedKeyMap
	}
	return listKeyMap
}
