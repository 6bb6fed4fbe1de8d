package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/carlot/internal/listing"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

// publishFields is shared with the form so bindings survive model copies.
type publishFields struct {
	vehicleID   string
	title       string
	price       string
	description string
}

type PublishModel struct {
	CommonModel
	catalog  *vehicle.Catalog
	listings *listing.Service

	form   *huh.Form
	fields *publishFields
	status string
}

func NewPublishModel(c *vehicle.Catalog, svc *listing.Service, vehicleID string) PublishModel {
	f := &publishFields{vehicleID: vehicleID}
	if v, ok := c.Lookup(vehicleID); ok {
		f.title = v.Title()
		f.price = vehicle.FormatFullPrice(v.Ask())
	} else {
		f.vehicleID = c.Get("").ID
	}

	options := make([]huh.Option[string], 0, c.Len())
	for _, v := range c.List() {
		options = append(options, huh.NewOption(v.Title(), v.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("vehicle").
				Title("Vehicle").
				Options(options...).
				Value(&f.vehicleID),

			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder("Leave blank to use the vehicle name").
				CharLimit(120).
				Value(&f.title),

			huh.NewInput().
				Key("price").
				Title("Price").
				Placeholder("$37,300").
				Value(&f.price).
				Validate(func(s string) error {
					p, err := vehicle.ParsePrice(s)
					if err != nil {
						return err
					}

					if p == 0 {
						return errors.New("price must be above zero")
					}

					return nil
				}),

			huh.NewText().
				Key("description").
				Title("Description").
				CharLimit(2000).
				Value(&f.description),
		),
	).WithWidth(60).WithShowHelp(false)

	return PublishModel{
		catalog:  c,
		listings: svc,
		form:     form,
		fields:   f,
	}
}

func (m PublishModel) Title() string { return navigation.Title(navigation.ScreenPublishListing) }

func (m PublishModel) ShortHelp() string { return "Navigate form | Esc: cancel" }

func (m PublishModel) Init() tea.Cmd {
	return m.form.Init()
}

type publishedMsg struct {
	listing *listing.Listing
	err     error
}

func (m PublishModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case publishedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error publishing: %v", msg.err)
			return m, nil
		}

		return m, Back

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.form.State == huh.StateCompleted {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.publishCmd()
}

func (m PublishModel) publishCmd() tea.Cmd {
	v := m.catalog.Get(m.fields.vehicleID)

	title := strings.TrimSpace(m.fields.title)
	if title == "" {
		title = v.Title()
	}

	// Validated by the form.
	price, _ := vehicle.ParsePrice(m.fields.price)

	params := listing.CreateParams{
		VehicleID:   v.ID,
		Title:       title,
		Price:       price,
		Description: strings.TrimSpace(m.fields.description),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		l, err := m.listings.Publish(ctx, params)

		return publishedMsg{listing: l, err: err}
	}
}

func (m PublishModel) View() string {
	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render("Publish Listing\n\n" + m.form.View())

	if m.status != "" {
		panel = errStyle.Render(m.status) + "\n" + panel
	}

	return padded.Render(panel)
}
