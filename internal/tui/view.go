package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.l.SetSize(28-2, contentHeight-2)
	}

	header := titleStyle.Render(" geoplot ─ layered vector viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	mapWidth := contentWidth - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapHeight := contentHeight

	mapView := lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderMap(max(8, mapWidth), max(4, mapHeight)))

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderMap projects the backend's attached scene into a braille canvas
// of w x h cells. Hidden layers are detached from the scene, so they
// simply do not appear.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	bounds, ok := m.backend.viewBounds()
	if !ok {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render("no visible layers"))
	}
	pr := newProjection(bounds, w, h, m.zoom, m.offsetX, m.offsetY)
	renderScene(m.backend.scene, br, pr)
	return strings.Join(br.toLines(), "\n")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"Tab layers",
		"Enter show/hide",
		"x remove",
		"s snapshot",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
