package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/carlot/internal/navigation"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// NavigateMsg asks the root model to push a route.
type NavigateMsg struct {
	Route navigation.Route
}

// TickMsg is sent to the current screen after scheduled follow-ups have fired.
type TickMsg struct {
	Fired int
}

func navigate(screen navigation.Screen, params navigation.Params) tea.Cmd {
	return func() tea.Msg {
		r, err := navigation.NewRoute(screen, params)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return NavigateMsg{Route: r}
	}
}

// ErrorMsg reports a failure no screen owns, such as a bad route.
type ErrorMsg struct {
	Err error
}

var (
	faint    = lipgloss.NewStyle().Faint(true)
	accent   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	heading  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	padded   = lipgloss.NewStyle().Padding(1)
)

func activeStyle(s string) string {
	return accent.Render(s)
}
