// Package tui renders a mission plan as an interactive terminal panel.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"mission-copilot/internal/mission"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minMapHeight  = 6
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff00"))
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	focusStyle = paneStyle.BorderForeground(lipgloss.Color("#00ffff"))
)

type pane int

const (
	statsPane pane = iota
	tracksPane
)

type model struct {
	plan    *mission.Plan
	stats   table.Model
	tracks  table.Model
	details viewport.Model
	focus   pane
	width   int
	height  int
	wrap    bool
	showMap bool
	help    bool
}

func newModel(p *mission.Plan) model {
	stats := table.New(
		table.WithColumns([]table.Column{
			{Title: "Metric", Width: 18},
			{Title: "Value", Width: 18},
		}),
		table.WithRows(statsRows(p)),
		table.WithFocused(true),
	)
	stats.SetHeight(len(stats.Rows()) + 1)

	tracks := table.New(
		table.WithColumns([]table.Column{
			{Title: "Sat", Width: 4},
			{Title: "Color", Width: 8},
			{Title: "Points", Width: 6},
			{Title: "Start", Width: 17},
			{Title: "End", Width: 17},
		}),
		table.WithRows(trackRows(p)),
	)
	tracks.SetHeight(len(tracks.Rows()) + 1)

	m := model{
		plan:    p,
		stats:   stats,
		tracks:  tracks,
		details: viewport.New(defaultWidth, 6),
		wrap:    true,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.refreshDetails()
	return m
}

func statsRows(p *mission.Plan) []table.Row {
	s, params := p.Stats, p.Parameters
	return []table.Row{
		{"Region", p.Region.Name},
		{"Altitude", fmt.Sprintf("%.0f km", params.AltitudeKm)},
		{"Inclination", fmt.Sprintf("%.1f°", params.InclinationDeg)},
		{"Satellites", fmt.Sprintf("%d", params.Satellites)},
		{"Period", fmt.Sprintf("%.1f min", s.PeriodMinutes)},
		{"Swath", fmt.Sprintf("%.0f km", s.SwathWidthKm)},
		{"Coverage radius", fmt.Sprintf("%.0f km", s.CoverageRadiusM/1000)},
		{"Daily passes", fmt.Sprintf("%d", s.DailyPasses)},
		{"Coverage", fmt.Sprintf("%d%%", s.CoveragePercent)},
		{"Revisit", s.RevisitTime},
	}
}

func trackRows(p *mission.Plan) []table.Row {
	rows := make([]table.Row, 0, len(p.Tracks))
	for _, t := range p.Tracks {
		if len(t.Path) == 0 {
			continue
		}
		first, last := t.Path[0], t.Path[len(t.Path)-1]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", t.Satellite()),
			t.Color,
			fmt.Sprintf("%d", len(t.Path)),
			fmt.Sprintf("%.2f,%.2f", first.Lat(), first.Lon()),
			fmt.Sprintf("%.2f,%.2f", last.Lat(), last.Lon()),
		})
	}
	return rows
}

func (m *model) refreshDetails() {
	var b strings.Builder
	if m.plan.Description != "" {
		b.WriteString(m.plan.Description + "\n")
	}
	if len(m.plan.Stations) > 0 {
		names := make([]string, len(m.plan.Stations))
		for i, s := range m.plan.Stations {
			names[i] = fmt.Sprintf("%s (%.2f, %.2f)", s.Name, s.Coordinates[0], s.Coordinates[1])
		}
		b.WriteString("Stations: " + strings.Join(names, ", ") + "\n")
	}
	for _, sub := range m.plan.Substitutions {
		fmt.Fprintf(&b, "default %s = %v\n", sub.Field, sub.Value)
	}
	content := strings.TrimRight(b.String(), "\n")
	if m.wrap && m.details.Width > 0 {
		content = wordwrap.String(content, m.details.Width)
	}
	m.details.SetContent(content)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.details.Width = msg.Width
		m.refreshDetails()
		return m, nil
	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "?", "h", "esc":
				m.help = false
			case "q", "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "?", "h":
			m.help = true
			return m, nil
		case "tab":
			m.toggleFocus()
			return m, nil
		case "w":
			m.wrap = !m.wrap
			m.refreshDetails()
			return m, nil
		case "m":
			m.showMap = !m.showMap
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case statsPane:
		m.stats, cmd = m.stats.Update(msg)
	case tracksPane:
		m.tracks, cmd = m.tracks.Update(msg)
	}
	var vpCmd tea.Cmd
	m.details, vpCmd = m.details.Update(msg)
	return m, tea.Batch(cmd, vpCmd)
}

func (m *model) toggleFocus() {
	if m.focus == statsPane {
		m.focus = tracksPane
		m.stats.Blur()
		m.tracks.Focus()
		return
	}
	m.focus = statsPane
	m.tracks.Blur()
	m.stats.Focus()
}

func (m model) View() string {
	if m.help {
		return m.renderHelp()
	}
	title := titleStyle.Render(m.title())

	statsStyle, tracksStyle := focusStyle, paneStyle
	if m.focus == tracksPane {
		statsStyle, tracksStyle = paneStyle, focusStyle
	}
	tables := lipgloss.JoinHorizontal(lipgloss.Top,
		statsStyle.Render(m.stats.View()),
		tracksStyle.Render(m.tracks.View()),
	)

	sections := []string{title, tables}
	if m.showMap {
		mapHeight := m.height - lipgloss.Height(title) - lipgloss.Height(tables) - 3
		sections = append(sections, renderMap(m.plan, m.width, max(mapHeight, minMapHeight)))
	} else {
		sections = append(sections, m.details.View())
	}
	sections = append(sections, dimStyle.Render("tab focus • w wrap • m map • ? help • q quit"))
	return strings.Join(sections, "\n")
}

func (m model) title() string {
	name := m.plan.Name
	if name == "" {
		name = "mission"
	}
	return fmt.Sprintf("%s  %s", name, dimStyle.Render(m.plan.ID))
}

func (m model) renderHelp() string {
	keys := [][2]string{
		{"tab", "switch between statistics and tracks"},
		{"↑/↓", "move within the focused table"},
		{"w", "toggle word wrap of the details pane"},
		{"m", "toggle the ground-track map"},
		{"? / h", "toggle this help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keys") + "\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-6s", k[0])), k[1])
	}
	return strings.TrimRight(b.String(), "\n")
}
