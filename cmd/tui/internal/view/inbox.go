package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/carlot/internal/inbox"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
)

// summaryItem wraps a conversation row to implement list.Item.
type summaryItem struct {
	s inbox.Summary
}

func (i summaryItem) Title() string {
	return fmt.Sprintf("%s · %s", i.s.DealerName, i.s.VehicleInfo)
}

func (i summaryItem) Description() string { return i.s.LastMessage }

func (i summaryItem) FilterValue() string { return i.s.DealerName }

type InboxModel struct {
	CommonModel
	inbox *inbox.Inbox

	search textinput.Model
	list   list.Model
	tab    inbox.Tab
}

func NewInboxModel(in *inbox.Inbox) InboxModel {
	ti := textinput.New()
	ti.Placeholder = "Search dealers, vehicles, messages"
	ti.Prompt = "/ "
	ti.Width = 40

	l := list.New([]list.Item{}, summaryDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	m := InboxModel{
		inbox:  in,
		search: ti,
		list:   l,
	}
	m.refresh()

	return m
}

func (m InboxModel) Title() string {
	title := navigation.Title(navigation.ScreenInbox)
	if n := m.inbox.UnreadTotal(); n > 0 {
		title += fmt.Sprintf(" (%d unread)", n)
	}

	return title
}

func (m InboxModel) ShortHelp() string {
	if m.search.Focused() {
		return "Type to search | Enter/Esc: done"
	}

	return "Esc: back | Enter: open | Tab: next tab | /: search"
}

func (m InboxModel) Init() tea.Cmd {
	return nil
}

func (m InboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)

		return m, nil

	case TickMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.search.Blur()
				return m, nil
			}

			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refresh()

			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "/":
			return m, m.search.Focus()
		case "tab":
			m.tab = m.tab.Next()
			m.refresh()

			return m, nil
		case "enter":
			i, ok := m.list.SelectedItem().(summaryItem)
			if !ok {
				return m, nil
			}

			return m, navigate(navigation.ScreenChat, navigation.ChatParams{
				ConversationID: i.s.ID,
				VehicleID:      i.s.VehicleID,
				DealerName:     i.s.DealerName,
			})
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *InboxModel) refresh() {
	rows := m.inbox.Filter(m.search.Value(), m.tab)

	items := make([]list.Item, len(rows))
	for i, s := range rows {
		items[i] = summaryItem{s: s}
	}

	m.list.SetItems(items)
}

func (m InboxModel) View() string {
	tabs := make([]string, 0, 4)
	for _, t := range inbox.Tabs() {
		label := t.String()
		if t == m.tab {
			label = activeStyle("[" + label + "]")
		} else {
			label = faint.Render(" " + label + " ")
		}

		tabs = append(tabs, label)
	}

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = faint.Render("No conversations.")
	}

	return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.search.View(),
		"",
		strings.Join(tabs, " "),
		"",
		body,
	))
}

// summaryDelegate renders conversation rows in the list.
type summaryDelegate struct{}

func (d summaryDelegate) Height() int                             { return 2 }
func (d summaryDelegate) Spacing() int                            { return 1 }
func (d summaryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d summaryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(summaryItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	badge := ""
	if i.s.UnreadCount > 0 {
		badge = " " + lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Render(fmt.Sprintf(" %d ", i.s.UnreadCount))
	}

	meta := faint.Render(fmt.Sprintf("[%s] %s", i.s.Status, FormatAgo(i.s.UpdatedAt)))

	fmt.Fprintf(w, "  %s%s  %s\n", title, badge, meta)
	fmt.Fprintf(w, "    %s", faint.Render(truncate(i.Description(), 70)))
}
