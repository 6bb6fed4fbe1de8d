package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/carlot/internal/listing"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

type ListingsModel struct {
	CommonModel
	listings *listing.Service

	table    table.Model
	items    []*listing.Listing
	counts   map[listing.Status]int
	filter   listing.ListFilter
	loading  bool
	err      error
	status   string
	deleting bool
}

func NewListingsModel(svc *listing.Service, status *listing.Status) ListingsModel {
	columns := []table.Column{
		{Title: "Published", Width: 12},
		{Title: "Status", Width: 11},
		{Title: "Price", Width: 10},
		{Title: "Title", Width: 40},
		{Title: "Description", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return ListingsModel{
		listings: svc,
		table:    t,
		filter:   listing.ListFilter{Status: status},
		loading:  true,
	}
}

func (m ListingsModel) Title() string { return navigation.Title(navigation.ScreenListings) }

func (m ListingsModel) ShortHelp() string {
	if m.deleting {
		return "y: confirm delete | any other key: cancel"
	}

	return "Esc: back | a: publish | n: next status | d: delete | s: status filter | r: refresh"
}

func (m ListingsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListingsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.items = msg.items
		m.counts = msg.counts
		m.refreshTable()

		return m, nil

	case listingActionMsg:
		m.status = msg.done
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil

	case tea.KeyMsg:
		if m.deleting {
			m.deleting = false
			if msg.String() == "y" {
				if l := m.selected(); l != nil {
					return m, m.deleteCmd(l)
				}
			}

			m.status = ""

			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m, navigate(navigation.ScreenPublishListing, navigation.VehicleParams{})
		case "s":
			m.filter.Status = nextFilter(m.filter.Status)
			return m, m.loadCmd()
		case "n":
			if l := m.selected(); l != nil {
				return m, m.advanceCmd(l)
			}

			return m, nil
		case "d":
			if l := m.selected(); l != nil {
				m.deleting = true
				m.status = fmt.Sprintf("Delete %q?", l.Title)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// nextFilter cycles all -> available -> pending -> sold -> all.
func nextFilter(cur *listing.Status) *listing.Status {
	if cur == nil {
		return new(listing.StatusAvailable)
	}

	if next := cur.Next(); next != listing.StatusAvailable {
		return &next
	}

	return nil
}

func (m ListingsModel) selected() *listing.Listing {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	return m.items[idx]
}

func (m *ListingsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, l := range m.items {
		rows = append(rows, table.Row{
			FormatDate(l.CreatedAt),
			string(l.Status),
			vehicle.FormatCompactPrice(l.Price),
			l.Title,
			truncate(l.Description, 30),
		})
	}

	m.table.SetRows(rows)
}

func (m ListingsModel) View() string {
	if m.loading {
		return padded.Render("Loading listings...")
	}

	if m.err != nil {
		return padded.Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	filterLabel := "All"
	if m.filter.Status != nil {
		filterLabel = string(*m.filter.Status)
	}

	tallies := make([]string, 0, len(m.counts))
	for _, st := range listing.Statuses() {
		tallies = append(tallies, fmt.Sprintf("%s %d", st, m.counts[st]))
	}

	header := fmt.Sprintf("Filter: [s] Status: %s | %s", activeStyle(filterLabel), faint.Render(strings.Join(tallies, " · ")))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if len(m.items) == 0 {
		content += "\n" + faint.Render("No listings. Press a to publish one.")
	}

	if m.status != "" {
		content = faint.Render(m.status) + "\n" + content
	}

	return padded.Render(content)
}

// Messages

type loadListingsMsg struct {
	items  []*listing.Listing
	counts map[listing.Status]int
	err    error
}

func (m ListingsModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.listings.List(ctx, filter)
		if err != nil {
			return loadListingsMsg{err: err}
		}

		counts, err := m.listings.Counts(ctx)

		return loadListingsMsg{items: items, counts: counts, err: err}
	}
}

type listingActionMsg struct {
	done string
	err  error
}

func (m ListingsModel) advanceCmd(l *listing.Listing) tea.Cmd {
	id, next := l.ID, l.Status.Next()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.listings.UpdateStatus(ctx, id, next)

		return listingActionMsg{done: fmt.Sprintf("Marked %s", next), err: err}
	}
}

func (m ListingsModel) deleteCmd(l *listing.Listing) tea.Cmd {
	id, title := l.ID, l.Title

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.listings.Delete(ctx, id)

		return listingActionMsg{done: fmt.Sprintf("Deleted %q", title), err: err}
	}
}
