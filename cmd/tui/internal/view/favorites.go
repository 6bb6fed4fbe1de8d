package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/carlot/internal/favorite"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

// vehicleItem wraps a vehicle to implement list.Item.
type vehicleItem struct {
	v vehicle.Vehicle
}

func (i vehicleItem) Title() string {
	return fmt.Sprintf("%s  %s", i.v.Title(), accent.Render(vehicle.FormatFullPrice(i.v.Ask())))
}

func (i vehicleItem) Description() string {
	return fmt.Sprintf("%s · %s", FormatKM(i.v.OdometerKM), i.v.Location)
}

func (i vehicleItem) FilterValue() string { return i.v.Title() }

type FavoritesModel struct {
	CommonModel
	catalog   *vehicle.Catalog
	favorites *favorite.Service

	list    list.Model
	loading bool
	status  string
}

func NewFavoritesModel(c *vehicle.Catalog, favs *favorite.Service) FavoritesModel {
	l := list.New([]list.Item{}, vehicleDelegate{}, 80, 20)
	l.Title = "Saved vehicles"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return FavoritesModel{
		catalog:   c,
		favorites: favs,
		list:      l,
		loading:   true,
	}
}

func (m FavoritesModel) Title() string { return navigation.Title(navigation.ScreenFavorites) }

func (m FavoritesModel) ShortHelp() string {
	return "Esc: back | Enter: view | x: remove | /: filter"
}

func (m FavoritesModel) Init() tea.Cmd {
	return m.loadCmd()
}

type loadFavoritesMsg struct {
	vehicles []vehicle.Vehicle
	err      error
}

type removeFavoriteMsg struct {
	err error
}

func (m FavoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)

		return m, nil

	case loadFavoritesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		items := make([]list.Item, len(msg.vehicles))
		for i, v := range msg.vehicles {
			items[i] = vehicleItem{v: v}
		}

		m.status = ""
		if len(items) == 0 {
			m.status = "No favorites yet. Press f on a vehicle to save it."
		}

		return m, m.list.SetItems(items)

	case removeFavoriteMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error removing: %v", msg.err)
			return m, nil
		}

		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}

			return m, Back
		case "enter":
			if i, ok := m.list.SelectedItem().(vehicleItem); ok {
				return m, navigate(navigation.ScreenVehicleDetail, navigation.VehicleParams{VehicleID: i.v.ID})
			}

			return m, nil
		case "x":
			if i, ok := m.list.SelectedItem().(vehicleItem); ok {
				return m, m.removeCmd(i.v.ID)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m FavoritesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ids, err := m.favorites.List(ctx)
		if err != nil {
			return loadFavoritesMsg{err: err}
		}

		vs := make([]vehicle.Vehicle, 0, len(ids))
		for _, id := range ids {
			// Favorites can outlive a replaced catalog file.
			if v, ok := m.catalog.Lookup(id); ok {
				vs = append(vs, v)
			}
		}

		return loadFavoritesMsg{vehicles: vs}
	}
}

func (m FavoritesModel) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.favorites.Toggle(ctx, id)

		return removeFavoriteMsg{err: err}
	}
}

func (m FavoritesModel) View() string {
	if m.loading {
		return padded.Render("Loading favorites...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = faint.Render(m.status) + "\n\n"
	}

	return padded.Render(statusLine + m.list.View())
}

// vehicleDelegate renders vehicles in the list.
type vehicleDelegate struct{}

func (d vehicleDelegate) Height() int                             { return 2 }
func (d vehicleDelegate) Spacing() int                            { return 0 }
func (d vehicleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d vehicleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(vehicleItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + i.v.Title())
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", faint.Render(i.Description()))
}
