package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

type CatalogModel struct {
	CommonModel
	catalog *vehicle.Catalog

	table    table.Model
	search   textinput.Model
	vehicles []vehicle.Vehicle
}

func NewCatalogModel(c *vehicle.Catalog) CatalogModel {
	columns := []table.Column{
		{Title: "Vehicle", Width: 40},
		{Title: "Price", Width: 10},
		{Title: "Odometer", Width: 12},
		{Title: "Location", Width: 18},
		{Title: "PPSR", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	ti := textinput.New()
	ti.Placeholder = "Search make, model, body type..."
	ti.Prompt = "/ "
	ti.Width = 40

	m := CatalogModel{
		catalog: c,
		table:   t,
		search:  ti,
	}
	m.applySearch()

	return m
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return s
}

func (m CatalogModel) Title() string { return navigation.Title(navigation.ScreenCatalog) }

func (m CatalogModel) ShortHelp() string {
	if m.search.Focused() {
		return "Type to search | Enter/Esc: done"
	}

	return "Esc: back | Enter: view | /: search"
}

func (m CatalogModel) Init() tea.Cmd {
	return nil
}

func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.search.Blur()
				m.table.Focus()

				return m, nil
			}

			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.applySearch()

			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "/":
			m.table.Blur()
			return m, m.search.Focus()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.vehicles) {
				return m, nil
			}

			return m, navigate(navigation.ScreenVehicleDetail, navigation.VehicleParams{VehicleID: m.vehicles[idx].ID})
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *CatalogModel) applySearch() {
	m.vehicles = m.catalog.Filter(m.search.Value())

	rows := make([]table.Row, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		ppsr := string(v.PPSR.Status)
		if ppsr == "" {
			ppsr = "-"
		}

		rows = append(rows, table.Row{
			v.Title(),
			vehicle.FormatCompactPrice(v.Ask()),
			FormatKM(v.OdometerKM),
			v.Location,
			ppsr,
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m CatalogModel) View() string {
	header := fmt.Sprintf("%s  %s", m.search.View(), faint.Render(strconv.Itoa(len(m.vehicles))+" vehicles"))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	))
}
