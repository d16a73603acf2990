// Package tui implements the interactive contacts browser for rolo browse:
// a two-pane Bubble Tea view with the contact list on the left and the
// selected contact's details on the right.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/finchley/rolo/internal/book"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// Item is one contact row in the browser.
type Item struct {
	Name     string
	Phones   []string
	Birthday string // DD.MM.YYYY display form, empty when unset.
	Upcoming bool   // Birthday falls inside the configured window.
}

// ItemsFromBook flattens the address book into browser items in insertion
// order, flagging contacts whose birthday falls in [today, today+windowDays].
func ItemsFromBook(bk *book.AddressBook, today time.Time, windowDays int) []Item {
	upcoming := make(map[string]bool)
	for _, e := range bk.UpcomingBirthdays(today, windowDays) {
		upcoming[e.Name] = true
	}

	items := make([]Item, 0, bk.Len())
	for _, rec := range bk.Records() {
		it := Item{Name: rec.Name.String(), Upcoming: upcoming[rec.Name.String()]}
		for _, p := range rec.Phones {
			it.Phones = append(it.Phones, p.String())
		}
		if rec.Birthday != nil {
			it.Birthday = rec.Birthday.String()
		}
		items = append(items, it)
	}
	return items
}

// Model is the Bubble Tea model for the contacts browser.
type Model struct {
	items  []Item
	cursor int
	width  int
	height int
	help   help.Model
	keys   browseKeys
	done   bool
}

// NewModel creates a browser over the given items.
func NewModel(items []Item) Model {
	return Model{
		items: items,
		help:  help.New(),
		keys:  BrowseKeyMap(),
	}
}

// Init returns the initial command. The browser is static; there is none.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if len(m.items) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.items) - 1
				}
			}
			return m, nil

		case "down", "j":
			if len(m.items) > 0 {
				m.cursor++
				if m.cursor >= len(m.items) {
					m.cursor = 0
				}
			}
			return m, nil

		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the two panes plus the help bar.
func (m Model) View() string {
	if m.done {
		return ""
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	paneHeight := m.height - helpBarHeight - borderChrome
	if paneHeight < 0 {
		paneHeight = 0
	}

	left := FocusedBorder().Width(leftWidth).Height(paneHeight).Render(m.viewList())
	right := UnfocusedBorder().Width(rightWidth).Height(paneHeight).Render(m.viewDetail())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, panes, helpView)
}

// viewList renders the contact list with the cursor marker and birthday badge.
func (m Model) viewList() string {
	if len(m.items) == 0 {
		return "No contacts."
	}

	var s string
	for i, it := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = CursorMarker
		}
		line := marker + it.Name
		if it.Upcoming {
			line += " " + UpcomingBadge()
		}
		s += line + "\n"
	}
	return s
}

// viewDetail renders the selected contact's phones and birthday.
func (m Model) viewDetail() string {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return "Select a contact."
	}

	it := m.items[m.cursor]
	s := TitleStyle().Render(it.Name) + "\n\n"

	if len(it.Phones) == 0 {
		s += "No phones.\n"
	}
	for _, p := range it.Phones {
		s += fmt.Sprintf("Phone: %s\n", p)
	}

	if it.Birthday != "" {
		s += fmt.Sprintf("Birthday: %s\n", it.Birthday)
	} else {
		s += "Birthday: not set\n"
	}
	return s
}

// Selected returns the currently selected item, or false for an empty list.
func (m Model) Selected() (Item, bool) {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return Item{}, false
	}
	return m.items[m.cursor], true
}
