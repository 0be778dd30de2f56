package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/g2048/internal/config"
	"github.com/vovakirdan/g2048/internal/core"
	"github.com/vovakirdan/g2048/internal/games/t2048"
	"github.com/vovakirdan/g2048/internal/presenter"
)

// noticeStyle renders the one-line status under the help bar.
var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for one game of 2048.
type Model struct {
	engine    *t2048.Engine
	presenter *presenter.Presenter
	board     *BoardView
	screen    *core.Screen
	config    core.RuntimeConfig
	tui       config.TUIConfig
	keys      KeyMap
	help      help.Model
	notice    string
	quitting  bool
}

// NewModel creates a Bubble Tea model driving engine.
func NewModel(engine *t2048.Engine, cfg core.RuntimeConfig, tuiCfg config.TUIConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	board := NewBoardView(cfg.TicksFor(tuiCfg.HighlightMS), cfg.TicksFor(tuiCfg.ScoreFlashMS))
	p := presenter.New(engine, board)
	p.Render()

	h := help.New()
	h.ShowAll = false

	return Model{
		engine:    engine,
		presenter: p,
		board:     board,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:    cfg,
		tui:       tuiCfg,
		keys:      DefaultKeyMap(),
		help:      h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Last line is reserved for the help bar.
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.board.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.notice = "saved " + path
		}
	case core.ActionNone:
	default:
		if m.presenter.HandleAction(action) {
			m.notice = ""
		}
	}
	return m, nil
}

// saveScreenshot writes the current board as plain text into the
// configured screenshot directory and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	dir, err := config.ExpandHome(m.tui.ScreenshotDir)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	m.board.Render(m.screen)

	filename := fmt.Sprintf("2048_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot save screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = noticeStyle.Render(m.notice)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Engine returns the engine the model drives.
func (m Model) Engine() *t2048.Engine {
	return m.engine
}

// Board returns the terminal surface.
func (m Model) Board() *BoardView {
	return m.board
}

// Run starts the Bubble Tea program for engine.
func Run(engine *t2048.Engine, cfg core.RuntimeConfig, tuiCfg config.TUIConfig) error {
	model := NewModel(engine, cfg, tuiCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
