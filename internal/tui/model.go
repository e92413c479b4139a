package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geoplot/internal/plot"
)

// Model is the interactive viewer over one plotting session. Layer
// visibility toggles go through the session's registry, so the scene
// the map pane renders always reflects the registry state.
type Model struct {
	width  int
	height int

	plotter *plot.Plotter
	backend *Backend

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	l list.Model
}

// layerItem adapts a registry snapshot entry to the sidebar list.
type layerItem struct {
	info plot.LayerInfo
}

func (it layerItem) Title() string {
	title := swatch(it.info.Color) + " " + it.info.Name
	if !it.info.Visible {
		title = hiddenStyle.Render(it.info.Name) + " (hidden)"
	}
	return title
}

func (it layerItem) Description() string {
	return fmt.Sprintf("%d primitives", it.info.Count)
}

func (it layerItem) FilterValue() string { return it.info.Name }

// New builds a viewer over plotter and its terminal backend.
func New(plotter *plot.Plotter, backend *Backend) Model {
	m := Model{
		plotter:     plotter,
		backend:     backend,
		showSidebar: true,
		helpVisible: true,
		zoom:        1.0,
		status:      "geoplot ready",
	}
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Layers"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.refreshLayers()
	return m
}

// refreshLayers rebuilds the sidebar items from the registry snapshot.
func (m *Model) refreshLayers() {
	infos := m.plotter.Layers()
	items := make([]list.Item, len(infos))
	for i, info := range infos {
		items[i] = layerItem{info: info}
	}
	m.l.SetItems(items)
}

func (m Model) Init() tea.Cmd { return nil }
