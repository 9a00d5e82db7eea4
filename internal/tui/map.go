package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mission-copilot/internal/mission"
)

// renderMap draws ground tracks on an equirectangular character grid.
// Track samples use the 1-based satellite number, stations use '*'.
func renderMap(p *mission.Plan, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	grid := make([][]string, height)
	for y := range grid {
		row := make([]string, width)
		for x := range row {
			row[x] = dimStyle.Render(".")
		}
		grid[y] = row
	}
	// equator and prime meridian
	eq := project(0, 0, width, height)
	for x := 0; x < width; x++ {
		grid[eq[1]][x] = dimStyle.Render("-")
	}
	for y := 0; y < height; y++ {
		grid[y][eq[0]] = dimStyle.Render("|")
	}

	for _, t := range p.Tracks {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color))
		mark := style.Render(strconv.Itoa(t.Satellite() % 10))
		for _, pt := range t.Path {
			xy := project(pt.Lat(), pt.Lon(), width, height)
			grid[xy[1]][xy[0]] = mark
		}
	}
	star := keyStyle.Render("*")
	for _, s := range p.Stations {
		xy := project(s.Coordinates[0], s.Coordinates[1], width, height)
		grid[xy[1]][xy[0]] = star
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// project maps lat/lon to grid cells, clamping latitudes outside ±90.
func project(lat, lon float64, width, height int) [2]int {
	lat = min(max(lat, -90), 90)
	x := int((lon + 180) / 360 * float64(width-1))
	y := int((90 - lat) / 180 * float64(height-1))
	return [2]int{min(max(x, 0), width-1), min(max(y, 0), height-1)}
}
