// Package tui implements the live process table behind --watch.
package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pranshuparmar/devps/internal/device"
	"github.com/pranshuparmar/devps/internal/output"
	"github.com/pranshuparmar/devps/pkg/model"
)

const refreshInterval = 2 * time.Second

// tickMsg signals a refresh tick
type tickMsg time.Time

// processesMsg contains refreshed process data
type processesMsg struct {
	processes []model.Process
	err       error
}

type Model struct {
	table  table.Model
	keys   KeyMap
	enum   device.Enumerator
	count  int
	err    error
	width  int
	height int
}

func New(enum device.Enumerator) Model {
	columns := []table.Column{
		{Title: "PID", Width: 8},
		{Title: "Name", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{
		table: t,
		keys:  DefaultKeyMap(),
		enum:  enum,
	}
}

// Start runs the watch loop until the user quits.
func Start(enum device.Enumerator) error {
	p := tea.NewProgram(New(enum), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshProcesses(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) refreshProcesses() tea.Cmd {
	return func() tea.Msg {
		procs, err := m.enum.EnumerateProcesses(model.ScopeMinimal)
		if err != nil {
			return processesMsg{err: err}
		}
		output.SortProcesses(procs)
		return processesMsg{processes: procs}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refreshProcesses()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 4) // title + footer
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refreshProcesses(), tick())

	case processesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.count = len(msg.processes)
		rows := make([]table.Row, 0, len(msg.processes))
		for _, p := range msg.processes {
			rows = append(rows, table.Row{strconv.Itoa(p.PID), p.Name})
		}
		m.table.SetRows(rows)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	title := titleStyle.Render("devps watch")
	if m.err != nil {
		return title + "\n" + errorStyle.Render("error: "+m.err.Error()) + "\n" +
			footerStyle.Render("q quit · r refresh")
	}
	footer := footerStyle.Render(fmt.Sprintf("%d processes · ↑/↓ scroll · r refresh · q quit", m.count))
	return title + "\n" + m.table.View() + "\n" + footer
}
