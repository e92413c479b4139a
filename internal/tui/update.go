package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// while the list filter is active it owns the keyboard
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshLayers()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "enter", " ":
			if it, ok := m.l.SelectedItem().(layerItem); ok {
				m.toggleLayer(it.info.Name, it.info.Visible)
			}
		case "x":
			if it, ok := m.l.SelectedItem().(layerItem); ok {
				if err := m.plotter.Remove(it.info.Name); err != nil {
					m.status = "remove failed: " + err.Error()
				} else {
					m.status = fmt.Sprintf("removed layer %q", it.info.Name)
				}
				m.refreshLayers()
			}
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "s":
			if err := m.backend.RasterizeToFile("geoplot.txt"); err != nil {
				m.status = "snapshot failed: " + err.Error()
			} else {
				m.status = "snapshot written to geoplot.txt"
			}
		case "h":
			m.helpVisible = !m.helpVisible
		// pan keys belong to the map pane alone; the sidebar list
		// scrolls with j/k and never sees the arrows
		case "up":
			m.offsetY -= 1
			return m, nil
		case "down":
			m.offsetY += 1
			return m, nil
		case "left":
			m.offsetX -= 2
			return m, nil
		case "right":
			m.offsetX += 2
			return m, nil
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) toggleLayer(name string, visible bool) {
	var err error
	if visible {
		err = m.plotter.Hide(name)
	} else {
		err = m.plotter.Show(name)
	}
	if err != nil {
		m.status = "toggle failed: " + err.Error()
		return
	}
	if visible {
		m.status = fmt.Sprintf("layer %q hidden", name)
	} else {
		m.status = fmt.Sprintf("layer %q shown", name)
	}
	m.refreshLayers()
}
