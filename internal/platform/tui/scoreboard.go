package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mzheleznov/tui-tunnel/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores     = 100 // Max scores to load
	tableMinWidth = 46
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("14")).
	Padding(0, 1)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID   string
	title    string
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard for one game's score history.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) (ScoreboardModel, error) {
	scores, err := store.TopScores(gameID, maxScores)
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("scoreboard: %w", err)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Ticks", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(scores))
	for i, e := range scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Ticks),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height-6),
	)

	h := help.New()
	h.ShowAll = false

	return ScoreboardModel{
		gameID: gameID,
		title:  title,
		table:  tbl,
		help:   h,
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}, nil
}

// Init initializes the scoreboard.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 6)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render(fmt.Sprintf("High Scores - %s", m.title))

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = "\n  No scores recorded yet.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive score table for a game.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	if width < tableMinWidth {
		width = tableMinWidth
	}
	model, err := NewScoreboardModel(store, gameID, title, width, height)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
