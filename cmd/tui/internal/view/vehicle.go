package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carlot/internal/favorite"
	"github.com/MrJamesThe3rd/carlot/internal/inbox"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

type VehicleModel struct {
	CommonModel
	vehicle   vehicle.Vehicle
	favorites *favorite.Service
	inbox     *inbox.Inbox

	viewport viewport.Model
	favorite bool
	status   string
}

func NewVehicleModel(v vehicle.Vehicle, favs *favorite.Service, in *inbox.Inbox) VehicleModel {
	vp := viewport.New(80, 20)

	m := VehicleModel{
		vehicle:   v,
		favorites: favs,
		inbox:     in,
		viewport:  vp,
	}
	m.viewport.SetContent(m.details())

	return m
}

func (m VehicleModel) Title() string { return m.vehicle.Title() }

func (m VehicleModel) ShortHelp() string {
	return "Esc: back | f: favorite | m: message dealer | p: publish listing | ↑/↓: scroll"
}

func (m VehicleModel) Init() tea.Cmd {
	id := m.vehicle.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		fav, err := m.favorites.IsFavorite(ctx, id)

		return favoriteMsg{favorite: fav, err: err}
	}
}

type favoriteMsg struct {
	favorite bool
	toggled  bool
	err      error
}

func (m VehicleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-8, 5)

		return m, nil

	case favoriteMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.favorite = msg.favorite
		if msg.toggled {
			m.status = "Removed from favorites"
			if m.favorite {
				m.status = "Saved to favorites"
			}
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "f":
			return m, m.toggleCmd()
		case "m":
			return m, navigate(navigation.ScreenChat, m.chatParams())
		case "p":
			return m, navigate(navigation.ScreenPublishListing, navigation.VehicleParams{VehicleID: m.vehicle.ID})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m VehicleModel) toggleCmd() tea.Cmd {
	id := m.vehicle.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		fav, err := m.favorites.Toggle(ctx, id)

		return favoriteMsg{favorite: fav, toggled: true, err: err}
	}
}

// chatParams reuses the latest conversation about this vehicle or opens a new one.
func (m VehicleModel) chatParams() navigation.ChatParams {
	v := m.vehicle

	if s, ok := m.inbox.FindByVehicle(v.ID); ok {
		return navigation.ChatParams{ConversationID: s.ID, VehicleID: v.ID, DealerName: s.DealerName}
	}

	dealer := v.Seller.Dealership
	if dealer == "" {
		dealer = v.Seller.Name
	}

	s := inbox.Summary{
		ID:          uuid.New(),
		DealerName:  dealer,
		Status:      inbox.DealActive,
		VehicleID:   v.ID,
		VehicleInfo: v.Title(),
		UpdatedAt:   time.Now(),
	}
	m.inbox.Add(s)

	return navigation.ChatParams{ConversationID: s.ID, VehicleID: v.ID, DealerName: dealer}
}

func (m VehicleModel) details() string {
	v := m.vehicle

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", heading.Render(v.Title()))
	fmt.Fprintf(&b, "%s\n\n", faint.Render(vehicle.ImageFor(v.ImageKey)))

	fmt.Fprintf(&b, "Asking   %s\n", accent.Render(vehicle.FormatFullPrice(v.Ask())))
	if v.AskingPrice > 0 && v.AskingPrice != v.Price {
		fmt.Fprintf(&b, "Listed   %s\n", vehicle.FormatFullPrice(v.Price))
	}

	if v.TradePrice > 0 || v.RetailPrice > 0 {
		fmt.Fprintf(&b, "Guide    trade %s · retail %s\n",
			vehicle.FormatCompactPrice(v.TradePrice), vehicle.FormatCompactPrice(v.RetailPrice))
	}

	b.WriteString("\n")

	specs := [][2]string{
		{"Body", v.BodyType},
		{"Gearbox", v.Transmission},
		{"Fuel", v.FuelType},
		{"Colour", v.Colour},
		{"Odometer", FormatKM(v.OdometerKM)},
		{"Location", v.Location},
		{"Condition", v.Condition},
	}

	for _, s := range specs {
		if s[1] != "" {
			fmt.Fprintf(&b, "%-10s %s\n", s[0], s[1])
		}
	}

	if v.PPSR.Status != "" {
		fmt.Fprintf(&b, "\n%s %s", heading.Render("PPSR"), v.PPSR.Status)
		if v.PPSR.Reference != "" {
			fmt.Fprintf(&b, " (%s)", v.PPSR.Reference)
		}

		if !v.PPSR.CheckedAt.IsZero() {
			fmt.Fprintf(&b, ", checked %s", FormatDate(v.PPSR.CheckedAt))
		}

		b.WriteString("\n")
	}

	r := v.Report
	if r.Overall() > 0 {
		fmt.Fprintf(&b, "\n%s %d/10\n", heading.Render("Condition report"), r.Overall())
		fmt.Fprintf(&b, "Exterior %d · Interior %d · Mechanical %d · Tyres %d\n", r.Exterior, r.Interior, r.Mechanical, r.Tyres)

		if r.Notes != "" {
			fmt.Fprintf(&b, "%s\n", faint.Render(r.Notes))
		}
	}

	if len(v.Extras) > 0 {
		fmt.Fprintf(&b, "\n%s\n", heading.Render("Extras"))
		for _, e := range v.Extras {
			fmt.Fprintf(&b, "  • %s\n", e)
		}
	}

	s := v.Seller
	fmt.Fprintf(&b, "\n%s\n", heading.Render("Seller"))
	fmt.Fprintf(&b, "%s", s.Name)
	if s.Dealership != "" {
		fmt.Fprintf(&b, ", %s", s.Dealership)
	}

	if s.Rating > 0 {
		fmt.Fprintf(&b, "  ★ %.1f", s.Rating)
	}

	b.WriteString("\n")

	return b.String()
}

func (m VehicleModel) View() string {
	fav := faint.Render("☆ not saved")
	if m.favorite {
		fav = activeStyle("★ saved")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, fav, "", m.viewport.View())

	if m.status != "" {
		content = faint.Render(m.status) + "\n" + content
	}

	return padded.Render(content)
}
