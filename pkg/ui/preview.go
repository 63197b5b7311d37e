// Package ui implements the rsx preview TUI: a profile picker next to a
// live metrics pane, driven by the same monitor/scaler pipeline library
// consumers use.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KJ-GM/responsive-csx/pkg/device"
	"github.com/KJ-GM/responsive-csx/pkg/profile"
	"github.com/KJ-GM/responsive-csx/pkg/scale"
)

// fontScaleSteps are the accessibility settings the f key cycles through.
var fontScaleSteps = []float64{0.85, 1.0, 1.15, 1.3, 1.5, 2.0}

// CatalogReloadedMsg is sent into the program when a watched catalog file
// changes on disk.
type CatalogReloadedMsg struct {
	Reload profile.Reload
}

// PreviewModel is the root bubbletea model.
type PreviewModel struct {
	catalog profile.Catalog
	list    list.Model

	sim     *profile.SimHost
	monitor *device.Monitor
	scaler  scale.Scaler

	width  int
	height int

	showHelp  bool
	status    string
	statusErr bool
}

// NewPreviewModel creates the preview on the given catalog, starting with
// the named profile (or the first one if the name is empty or unknown).
func NewPreviewModel(catalog profile.Catalog, start string) *PreviewModel {
	p, ok := catalog.Find(start)
	if !ok {
		p = catalog[0]
	}

	sim := profile.NewSimHost(p)
	monitor := device.NewMonitor(sim)

	items := make([]list.Item, len(catalog))
	for i, pr := range catalog {
		items[i] = ProfileItem{Profile: pr}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Device Profiles"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	return &PreviewModel{
		catalog: catalog,
		list:    l,
		sim:     sim,
		monitor: monitor,
		scaler:  scale.New(monitor),
		status:  fmt.Sprintf("previewing %s", p.Name),
	}
}

// Close cancels the monitor's host subscription. Call after the program
// exits.
func (m *PreviewModel) Close() {
	m.monitor.Close()
}

// Monitor exposes the live monitor, mainly for tests.
func (m *PreviewModel) Monitor() *device.Monitor {
	return m.monitor
}

// Init implements tea.Model
func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(ListPaneWidth-2, max(m.height-4, MinContentHeight))
		return m, nil

	case CatalogReloadedMsg:
		if msg.Reload.Err != nil {
			m.status = fmt.Sprintf("catalog reload failed: %v", msg.Reload.Err)
			m.statusErr = true
			return m, nil
		}
		m.setCatalog(msg.Reload.Catalog)
		m.status = fmt.Sprintf("catalog reloaded (%d profiles)", len(m.catalog))
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		// While the list filter is open, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "enter":
			if item, ok := m.list.SelectedItem().(ProfileItem); ok {
				m.sim.Apply(item.Profile)
				m.status = fmt.Sprintf("previewing %s", item.Profile.Name)
				m.statusErr = false
			}
			return m, nil
		case "r":
			m.sim.Rotate()
			return m, nil
		case "f":
			m.cycleFontScale()
			return m, nil
		case "c":
			text := summary(m.monitor.Metrics())
			if err := clipboard.WriteAll(text); err != nil {
				m.status = fmt.Sprintf("clipboard: %v", err)
				m.statusErr = true
			} else {
				m.status = "metrics copied to clipboard"
				m.statusErr = false
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *PreviewModel) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return renderHelp(m.width)
	}

	contentHeight := max(m.height-2, MinContentHeight)
	metricsWidth := m.width - 2
	showList := m.width >= BreakpointNarrow
	if showList {
		metricsWidth = m.width - ListPaneWidth - 4
	}

	metrics := renderMetrics(m.monitor.Metrics(), m.scaler, metricsWidth)
	metricsPane := PanelStyle.
		Width(metricsWidth).
		Height(contentHeight).
		Render(metrics)

	var body string
	if showList {
		listPane := FocusedPanelStyle.
			Width(ListPaneWidth).
			Height(contentHeight).
			Render(m.list.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, listPane, metricsPane)
	} else {
		body = metricsPane
	}

	status := m.status
	if m.statusErr {
		status = ErrorStyle.Render(status)
	}
	bar := StatusBarStyle.Width(m.width).Render(
		status + "  •  enter apply · r rotate · f font scale · c copy · ? help · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}

// setCatalog swaps the profile list, keeping the current preview target.
func (m *PreviewModel) setCatalog(cat profile.Catalog) {
	m.catalog = cat
	items := make([]list.Item, len(cat))
	for i, pr := range cat {
		items[i] = ProfileItem{Profile: pr}
	}
	m.list.SetItems(items)
}

// cycleFontScale advances the simulated accessibility setting.
func (m *PreviewModel) cycleFontScale() {
	cur := m.sim.FontScale()
	next := fontScaleSteps[0]
	for i, fs := range fontScaleSteps {
		if cur < fs-1e-9 {
			next = fs
			break
		}
		if i == len(fontScaleSteps)-1 {
			next = fontScaleSteps[0]
		}
	}
	m.sim.SetFontScale(next)
	m.status = fmt.Sprintf("font scale %g", next)
	m.statusErr = false
}
