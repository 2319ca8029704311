package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/contactdeskhq/contactdesk/internal/client"
	"github.com/contactdeskhq/contactdesk/internal/model"
)

// sortKey identifies the column the list is ordered by.
type sortKey string

const (
	sortByName    sortKey = "name"
	sortByEmail   sortKey = "email"
	sortByPhone   sortKey = "phone"
	sortByCreated sortKey = "createdAt"
)

// listState manages the contact list pane: the fetched set, the derived sort
// order, cursor position and the single armed delete confirmation.
type listState struct {
	// contacts keeps the fetched order (newest first). The displayed order
	// is re-derived by sorted(); this slice is never reordered.
	contacts []model.Contact
	loading  bool
	err      error
	cursor   int
	key      sortKey
	asc      bool
	// confirmID is the one row armed for delete confirmation. It is a
	// single identifier: arming another row supersedes this one.
	confirmID string
	deleting  bool
	notice    string
}

func newListState() listState {
	return listState{loading: true, key: sortByCreated, asc: false}
}

// fetchContacts returns a tea.Cmd that loads the full contact list.
func fetchContacts(api API) tea.Cmd {
	return func() tea.Msg {
		contacts, err := api.ListContacts(context.Background())
		return contactListMsg{Contacts: contacts, Err: err}
	}
}

// deleteContact returns a tea.Cmd that issues the delete for one contact.
func deleteContact(api API, id string) tea.Cmd {
	return func() tea.Msg {
		err := api.DeleteContact(context.Background(), id)
		switch {
		case err == nil:
			return contactDeletedMsg{ID: id}
		case errors.Is(err, client.ErrNotFound):
			return deleteFailedMsg{ID: id, NotFound: true}
		default:
			return deleteFailedMsg{ID: id, Err: err}
		}
	}
}

// Update processes messages for the list state.
func (ls listState) Update(msg tea.Msg, api API) (listState, tea.Cmd) {
	switch msg := msg.(type) {
	case contactListMsg:
		ls.loading = false
		ls.confirmID = ""
		ls.cursor = 0
		if msg.Err != nil {
			ls.err = msg.Err
			ls.contacts = nil
			return ls, nil
		}
		ls.err = nil
		ls.contacts = append([]model.Contact(nil), msg.Contacts...)
		return ls, nil

	case contactCreatedMsg:
		// Prepend the confirmed contact; no re-fetch.
		ls.contacts = append([]model.Contact{*msg.Contact}, ls.contacts...)
		return ls, nil

	case contactDeletedMsg:
		ls = ls.remove(msg.ID)
		ls.deleting = false
		ls.confirmID = ""
		return ls, nil

	case deleteFailedMsg:
		ls.deleting = false
		ls.confirmID = ""
		if msg.NotFound {
			// Gone server-side either way; drop the row locally too.
			ls = ls.remove(msg.ID)
			ls.notice = "Contact was already deleted"
		} else {
			ls.notice = "Failed to delete contact. Please try again."
		}
		return ls, nil

	case tea.KeyMsg:
		if ls.loading {
			return ls, nil
		}
		return ls.handleKey(msg, api)
	}

	return ls, nil
}

func (ls listState) handleKey(msg tea.KeyMsg, api API) (listState, tea.Cmd) {
	ls.notice = ""

	switch msg.String() {
	case "up", "k":
		if ls.cursor > 0 {
			ls.cursor--
		}
	case "down", "j":
		if ls.cursor < len(ls.contacts)-1 {
			ls.cursor++
		}
	case "n":
		ls = ls.toggleSort(sortByName)
	case "e":
		ls = ls.toggleSort(sortByEmail)
	case "p":
		ls = ls.toggleSort(sortByPhone)
	case "t":
		ls = ls.toggleSort(sortByCreated)
	case "r":
		if !ls.deleting {
			ls.loading = true
			ls.err = nil
			return ls, fetchContacts(api)
		}
	case "d":
		if row, ok := ls.current(); ok && !ls.deleting {
			ls.confirmID = row.ID
		}
	case "enter":
		if ls.confirmID != "" && !ls.deleting {
			ls.deleting = true
			return ls, deleteContact(api, ls.confirmID)
		}
	case "esc":
		ls.confirmID = ""
	}

	return ls, nil
}

// toggleSort flips the direction when the key is unchanged and resets to
// ascending when a new key is chosen.
func (ls listState) toggleSort(k sortKey) listState {
	if ls.key == k {
		ls.asc = !ls.asc
	} else {
		ls.key = k
		ls.asc = true
	}
	if ls.cursor >= len(ls.contacts) {
		ls.cursor = 0
	}
	return ls
}

// sorted re-derives the display order over a copy of the fetched set.
// String columns compare with locale-aware collation, the timestamp column
// chronologically.
func (ls listState) sorted() []model.Contact {
	out := append([]model.Contact(nil), ls.contacts...)
	coll := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !ls.asc {
			a, b = b, a
		}
		switch ls.key {
		case sortByName:
			return coll.CompareString(a.Name, b.Name) < 0
		case sortByEmail:
			return coll.CompareString(a.Email, b.Email) < 0
		case sortByPhone:
			return coll.CompareString(a.Phone, b.Phone) < 0
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
	return out
}

// current returns the contact under the cursor in display order.
func (ls listState) current() (model.Contact, bool) {
	rows := ls.sorted()
	if ls.cursor < 0 || ls.cursor >= len(rows) {
		return model.Contact{}, false
	}
	return rows[ls.cursor], true
}

// remove drops one contact from the fetched set by id.
func (ls listState) remove(id string) listState {
	kept := ls.contacts[:0:0]
	for _, c := range ls.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	ls.contacts = kept
	if ls.cursor >= len(ls.contacts) && ls.cursor > 0 {
		ls.cursor = len(ls.contacts) - 1
	}
	return ls
}

// sortIndicator mirrors the column headers' sort arrows.
func (ls listState) sortIndicator(k sortKey) string {
	if ls.key != k {
		return "⇅"
	}
	if ls.asc {
		return "↑"
	}
	return "↓"
}

// View renders the list pane at the given inner width.
func (ls listState) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contact List"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Total Contacts: %d", len(ls.contacts))))
	b.WriteString("\n\n")

	switch {
	case ls.loading:
		b.WriteString(dimStyle.Render("Loading contacts..."))
		return b.String()
	case ls.err != nil:
		b.WriteString(errorStyle.Render("Could not load contacts. Is the server running?"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("press r to retry"))
		return b.String()
	case len(ls.contacts) == 0:
		b.WriteString(dimStyle.Render("No contacts yet. Submit the form to add your first contact."))
		return b.String()
	}

	const markerWidth = 2 // display cells taken by CursorMarker
	nameW, emailW, phoneW := width/5, width*3/10, width/5
	dateW := width - nameW - emailW - phoneW - markerWidth
	if dateW < 12 {
		dateW = 12
	}

	b.WriteString(strings.Repeat(" ", markerWidth))
	b.WriteString(headerStyle.Render(
		cell("Name "+ls.sortIndicator(sortByName), nameW) +
			cell("Email "+ls.sortIndicator(sortByEmail), emailW) +
			cell("Phone "+ls.sortIndicator(sortByPhone), phoneW) +
			cell("Date "+ls.sortIndicator(sortByCreated), dateW)))
	b.WriteString("\n")

	for i, c := range ls.sorted() {
		marker := strings.Repeat(" ", markerWidth)
		if i == ls.cursor {
			marker = CursorMarker
		}
		row := marker +
			cell(c.Name, nameW) +
			cell(c.Email, emailW) +
			cell(c.Phone, phoneW) +
			cell(c.CreatedAt.Local().Format("Jan 2, 2006 15:04"), dateW)
		b.WriteString(row)
		b.WriteString("\n")
		if c.ID == ls.confirmID {
			prompt := "  Delete this contact? [enter] confirm  [esc] cancel"
			if ls.deleting {
				prompt = "  Deleting..."
			}
			b.WriteString(armedStyle.Render(prompt))
			b.WriteString("\n")
		}
	}

	if ls.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(ls.notice))
	}

	return b.String()
}
