package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/carlot/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/carlot/internal/config"
	"github.com/MrJamesThe3rd/carlot/internal/database"
	"github.com/MrJamesThe3rd/carlot/internal/favorite"
	favoriteStore "github.com/MrJamesThe3rd/carlot/internal/favorite/store"
	"github.com/MrJamesThe3rd/carlot/internal/inbox"
	"github.com/MrJamesThe3rd/carlot/internal/listing"
	listingStore "github.com/MrJamesThe3rd/carlot/internal/listing/store"
	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/negotiation"
	"github.com/MrJamesThe3rd/carlot/internal/payment"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle/csvcatalog"
)

const tickInterval = 250 * time.Millisecond

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

type menuItem struct {
	label  string
	screen navigation.Screen
	params navigation.Params
}

var menu = []menuItem{
	{"Browse Vehicles", navigation.ScreenCatalog, navigation.NoParams{}},
	{"Favorites", navigation.ScreenFavorites, navigation.NoParams{}},
	{"My Listings", navigation.ScreenListings, navigation.ListingsParams{}},
	{"Messages", navigation.ScreenInbox, navigation.NoParams{}},
}

type model struct {
	appName string
	deps    view.Deps
	queue   *negotiation.Queue

	// stack is nil while the menu is shown.
	stack   *navigation.Stack
	current view.View
	size    tea.WindowSizeMsg
	err     error
}

func initialModel() (model, func()) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.App.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("failed to open log file", "path", cfg.App.LogFile, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	catalog, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		slog.Error("failed to load catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}

	favRepo, listingRepo, closeStore := openStores(cfg)

	queue := negotiation.NewQueue()
	negCfg := negotiation.Config{
		MaxRounds:     cfg.Negotiation.MaxRounds,
		ResponseDelay: cfg.Negotiation.ResponseDelay,
		FollowUpDelay: cfg.Negotiation.FollowUpDelay,
	}

	deps := view.Deps{
		Catalog:   catalog,
		Favorites: favorite.NewService(favRepo),
		Listings:  listing.NewService(listingRepo),
		Inbox:     inbox.Seed(catalog, time.Now()),
		Chats:     view.NewChats(catalog, negCfg, queue, payment.NewSimulated()),
	}

	cleanup := func() {
		queue.Close()
		closeStore()
		_ = logFile.Close()
	}

	return model{appName: cfg.App.Name, deps: deps, queue: queue}, cleanup
}

func loadCatalog(path string) (*vehicle.Catalog, error) {
	if path == "" {
		return vehicle.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vs, err := csvcatalog.Load(f)
	if err != nil {
		return nil, err
	}

	if len(vs) == 0 {
		return nil, fmt.Errorf("no vehicles in %s", path)
	}

	slog.Info("catalog imported", "path", path, "vehicles", len(vs))

	return vehicle.NewCatalog(vs), nil
}

func openStores(cfg *config.Config) (favorite.Repository, listing.Repository, func()) {
	if cfg.Store.Driver == config.StoreMemory {
		slog.Info("using in-memory store")
		return favoriteStore.NewMemory(), listingStore.NewMemory(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.Name)

	return favoriteStore.New(db), listingStore.New(db), closer(db)
}

func closer(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case tickMsg:
		n := m.queue.Advance(tickInterval)
		if n == 0 || m.current == nil {
			return m, tick()
		}

		var cmd tea.Cmd
		m, cmd = m.forward(view.TickMsg{Fired: n})

		return m, tea.Batch(cmd, tick())
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == nil {
			return m.updateMenu(msg)
		}
	case view.NavigateMsg:
		if m.stack == nil {
			return m, nil
		}

		m.stack.Push(msg.Route)
		return m.show(msg.Route)
	case view.ErrorMsg:
		slog.Error("screen error", "error", msg.Err)
		m.err = msg.Err

		return m, nil
	case view.BackMsg:
		if m.stack == nil {
			return m, nil
		}

		if _, ok := m.stack.Pop(); !ok {
			m.stack, m.current = nil, nil
			return m, nil
		}

		return m.show(m.stack.Current())
	}

	if m.current == nil {
		return m, nil
	}

	return m.forward(msg)
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); s {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		item := menu[s[0]-'1']

		r, err := navigation.NewRoute(item.screen, item.params)
		if err != nil {
			m.err = err
			return m, nil
		}

		m.stack = navigation.NewStack(r)

		return m.show(r)
	}

	return m, nil
}

// show builds a fresh screen for r so it reloads its data.
func (m model) show(r navigation.Route) (tea.Model, tea.Cmd) {
	v, err := view.New(r, m.deps)
	if err != nil {
		slog.Error("failed to open screen", "screen", r.Screen, "error", err)
		m.err = err

		return m, nil
	}

	m.err = nil
	m.current = v

	cmds := []tea.Cmd{v.Init()}
	if m.size.Width > 0 {
		sized, cmd := m.current.Update(m.size)
		m.current = sized.(view.View)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) forward(msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.current.Update(msg)
	m.current = next.(view.View)

	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

func (m model) View() string {
	if m.current == nil {
		body := m.appName + "\n\n"
		for i, item := range menu {
			body += fmt.Sprintf("%d. %s", i+1, item.label)
			if item.screen == navigation.ScreenInbox {
				if n := m.deps.Inbox.UnreadTotal(); n > 0 {
					body += fmt.Sprintf(" (%d unread)", n)
				}
			}

			body += "\n"
		}

		body += "\nq. Quit"

		if m.err != nil {
			body += "\n\n" + m.err.Error()
		}

		return lipgloss.NewStyle().Padding(2).Render(body)
	}

	crumb := ""
	if m.stack.Depth() > 1 {
		crumb = helpStyle.Render(fmt.Sprintf("(%d deep)", m.stack.Depth()))
	}

	footer := helpStyle.Render(m.current.ShortHelp())
	if m.err != nil {
		footer = helpStyle.Render("Error: "+m.err.Error()) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(m.current.Title()), crumb),
		m.current.View(),
		footer,
	)
}

func main() {
	m, cleanup := initialModel()
	defer cleanup()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
