// Package ui implements the interactive quadrant dashboard: a scatter chart
// of algorithm families on the complexity-fit/data-fit plane with spotlight,
// filter and task-context controls.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quadrantlab/algoquad/internal/dataset"
	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/config"
	"github.com/quadrantlab/algoquad/pkg/debug"
	"github.com/quadrantlab/algoquad/pkg/export"
	"github.com/quadrantlab/algoquad/pkg/model"
	"github.com/quadrantlab/algoquad/pkg/watcher"
)

// statusDuration is how long a transient status message stays visible.
const statusDuration = 3 * time.Second

type viewKind int

const (
	viewChart viewKind = iota
	viewFilter
	viewMethodology
	viewHelp
)

// Messages.
type (
	// FileChangedMsg signals that the watched dataset file settled after a
	// change and should be reloaded.
	FileChangedMsg struct{}

	reloadedMsg struct {
		ds  *model.Dataset
		err error
	}

	exportDoneMsg struct {
		path string
		err  error
	}

	clearStatusMsg struct{}
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	theme Theme

	ds     *model.Dataset
	source dataset.Source
	st     analysis.State
	attrs  []analysis.PointAttrs

	cursor        int // index into attrs
	width, height int
	view          viewKind
	status        string
	compactHeader bool

	filterForm  *huh.Form
	filterValue *[]string
	methodology viewport.Model

	exportDir    string
	exportFormat string

	fileWatcher *watcher.Watcher
}

// NewModel builds the dashboard model for a loaded dataset.
func NewModel(ds *model.Dataset, source dataset.Source, cfg config.Config) Model {
	st := analysis.DefaultState()
	if ctx, err := model.ParseTaskContext(cfg.UI.DefaultContext); err == nil {
		st.Context = ctx
	}
	if cfg.UI.FadeOpacity > 0 && cfg.UI.FadeOpacity <= 1 {
		st.Fade = cfg.UI.FadeOpacity
	}

	m := Model{
		theme:         DefaultTheme(lipgloss.DefaultRenderer()),
		ds:            ds,
		source:        source,
		st:            st,
		exportDir:     cfg.Export.Dir,
		exportFormat:  cfg.Export.Format,
		compactHeader: cfg.UI.CompactHeader,
		width:         100,
		height:        32,
	}
	m.recompute()
	return m
}

// WithWatcher attaches a started file watcher for live reload.
func (m Model) WithWatcher(w *watcher.Watcher) Model {
	m.fileWatcher = w
	return m
}

// State exposes the current selection state, mainly for tests and export.
func (m Model) State() analysis.State { return m.st }

// CursorName returns the family under the cursor, or "".
func (m Model) CursorName() string {
	if m.cursor < 0 || m.cursor >= len(m.attrs) {
		return ""
	}
	return m.attrs[m.cursor].Name
}

func (m *Model) recompute() {
	m.attrs = analysis.Attributes(m.ds, m.st)
	if m.cursor >= len(m.attrs) {
		m.cursor = len(m.attrs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	if m.fileWatcher != nil {
		return watchCmd(m.fileWatcher)
	}
	return nil
}

func watchCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return FileChangedMsg{}
	}
}

func reloadCmd(source dataset.Source) tea.Cmd {
	return func() tea.Msg {
		ds, _, err := dataset.Load(source.Path)
		return reloadedMsg{ds: ds, err: err}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FileChangedMsg:
		debug.Log("dataset change detected: %s", m.source.Path)
		cmds := []tea.Cmd{reloadCmd(m.source)}
		if m.fileWatcher != nil {
			cmds = append(cmds, watchCmd(m.fileWatcher))
		}
		return m, tea.Batch(cmds...)

	case reloadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.err)
			return m, clearStatusCmd()
		}
		m.ds = msg.ds
		m.pruneSelection()
		m.recompute()
		m.status = "dataset reloaded"
		return m, clearStatusCmd()

	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.status = "exported " + msg.path
		}
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.view {
	case viewFilter:
		return m.updateFilter(msg)
	case viewMethodology:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc", "m":
				m.view = viewChart
				return m, nil
			case "ctrl+c":
				return m.quit()
			}
		}
		var cmd tea.Cmd
		m.methodology, cmd = m.methodology.Update(msg)
		return m, cmd
	case viewHelp:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc", "?":
				m.view = viewChart
			case "ctrl+c":
				return m.quit()
			}
		}
		return m, nil
	default:
		return m.updateChart(msg)
	}
}

// pruneSelection drops filter and spotlight entries that no longer exist
// after a reload, so the view never pins state to a vanished family.
func (m *Model) pruneSelection() {
	if m.st.Spotlight != analysis.SpotlightAll {
		if _, ok := m.ds.ByName(m.st.Spotlight); !ok {
			m.st.Spotlight = analysis.SpotlightAll
		}
	}
	if m.st.Visible == nil {
		return
	}
	kept := m.st.Visible[:0]
	for _, n := range m.st.Visible {
		if _, ok := m.ds.ByName(n); ok {
			kept = append(kept, n)
		}
	}
	m.st.Visible = kept
}

func (m Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m.quit()
	}

	form, cmd := m.filterForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.filterForm = f
	}

	switch m.filterForm.State {
	case huh.StateCompleted:
		selected := *m.filterValue
		if len(selected) == m.ds.Len() {
			m.st.Visible = nil // full selection means no filter
		} else {
			m.st.Visible = selected
		}
		m.view = viewChart
		m.filterForm = nil
		m.recompute()
		return m, nil
	case huh.StateAborted:
		m.view = viewChart
		m.filterForm = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) updateChart(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m.quit()

	case "j", "down":
		if m.cursor < len(m.attrs)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "enter":
		name := m.CursorName()
		if name == "" {
			break
		}
		if m.st.Spotlight == name {
			m.st.Spotlight = analysis.SpotlightAll
		} else {
			m.st.Spotlight = name
		}
		m.recompute()

	case "a":
		m.st.Spotlight = analysis.SpotlightAll
		m.st.Visible = nil
		m.recompute()

	case "g":
		return m.setContext(model.ContextGeneral)
	case "s":
		return m.setContext(model.ContextSafety)
	case "h":
		return m.setContext(model.ContextSchedule)
	case "c":
		return m.setContext(model.ContextCost)
	case "tab":
		return m.setContext(m.st.Context.Next())

	case "f":
		names := m.ds.Names()
		m.filterForm, m.filterValue = newFilterForm(names, m.st.Visible)
		m.view = viewFilter
		return m, m.filterForm.Init()

	case "y":
		return m.yank()

	case "e":
		return m, m.exportCmd()

	case "E":
		return m, m.batchExportCmd()

	case "m":
		vp := viewport.New(min(m.width, 80), max(m.height-2, 8))
		vp.SetContent(renderMethodology(min(m.width, 80)))
		m.methodology = vp
		m.view = viewMethodology

	case "?":
		m.view = viewHelp
	}
	return m, nil
}

func (m Model) setContext(ctx model.TaskContext) (tea.Model, tea.Cmd) {
	m.st.Context = ctx
	m.recompute()
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.fileWatcher != nil {
		m.fileWatcher.Stop()
	}
	// Remember the active context so the next session resumes there.
	if err := config.SaveState(config.State{LastContext: m.st.Context.String()}); err != nil {
		debug.Log("saving view state: %v", err)
	}
	return m, tea.Quit
}

// yank copies the cursor family's legend line to the system clipboard.
func (m Model) yank() (tea.Model, tea.Cmd) {
	name := m.CursorName()
	if name == "" {
		return m, nil
	}
	a := m.attrs[m.cursor]
	line := fmt.Sprintf("%s, %.1f%% (C=%.2f, D=%.2f) [%s]", a.Name, a.Percent, a.X, a.Y, a.Quadrant)
	if err := clipboard.WriteAll(line); err != nil {
		m.status = fmt.Sprintf("clipboard: %v", err)
	} else {
		m.status = "copied " + name
	}
	return m, clearStatusCmd()
}

func (m Model) exportCmd() tea.Cmd {
	path := filepath.Join(m.exportDir, fmt.Sprintf("quadrants-%s.%s", m.st.Context, m.exportFormat))
	ds, st, format := m.ds, m.st, m.exportFormat
	return func() tea.Msg {
		err := export.SaveChartSnapshot(export.ChartSnapshotOptions{
			Path:    path,
			Format:  format,
			Dataset: ds,
			State:   st,
		})
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) batchExportCmd() tea.Cmd {
	ds, dir, format := m.ds, m.exportDir, m.exportFormat
	return func() tea.Msg {
		paths, err := export.SaveBatch(export.BatchOptions{
			Dir:     dir,
			Format:  format,
			Dataset: ds,
		})
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: fmt.Sprintf("%d charts to %s", len(paths), filepath.Dir(paths[0]))}
	}
}

// --- view ------------------------------------------------------------------

func (m Model) View() string {
	switch m.view {
	case viewFilter:
		if m.filterForm != nil {
			return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.filterForm.View())
		}
		m.view = viewChart
	case viewMethodology:
		footer := m.theme.MutedText.Render("j/k scroll · m or esc to return")
		return lipgloss.JoinVertical(lipgloss.Left, m.methodology.View(), footer)
	case viewHelp:
		return m.helpView()
	}

	panelW := 44
	if m.width < 80 {
		panelW = m.width / 2
	}
	chartW := m.width - panelW - 4
	chartH := m.height - 6
	if chartH < 8 {
		chartH = 8
	}

	chart := renderChart(m.theme, m.attrs, m.CursorName(), chartW, chartH)
	legend := renderLegend(m.theme, m.attrs, m.CursorName(), panelW-2)
	detail := renderDetail(m.theme, m.ds, m.attrs, m.st, m.CursorName(), panelW-2)

	panel := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Panel.Width(panelW).Render(legend),
		m.theme.Panel.Width(panelW).Render(detail),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, chart, "  ", panel)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		renderAxisCaption(m.theme, m.width),
		m.statusView(),
	)
}

func (m Model) headerView() string {
	title := m.theme.Header.Render("aq · algorithm quadrants")
	ctx := m.theme.KeyHint.Render("context: " + m.st.Context.String())
	if m.compactHeader {
		return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", ctx)
	}
	src := m.theme.MutedText.Render(m.source.String())
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", ctx, "  ", src)
}

func (m Model) statusView() string {
	if m.status != "" {
		return m.theme.StatusBar.Render(truncate(m.status, m.width-2))
	}
	hints := "j/k select · enter spotlight · a all · g/s/h/c context · f filter · e export · m methodology · ? help · q quit"
	return m.theme.StatusBar.Render(truncate(hints, m.width-2))
}

func (m Model) helpView() string {
	rows := []struct{ key, desc string }{
		{"j / k", "move the cursor through visible families"},
		{"enter", "spotlight the cursor family; again to clear"},
		{"a", "show all: clear spotlight and filter"},
		{"g", "general context (bubble size = frequency)"},
		{"s", "safety-critical context"},
		{"h", "schedule-critical context"},
		{"c", "cost-critical context"},
		{"tab", "cycle contexts"},
		{"f", "filter visible families"},
		{"y", "copy the cursor family's summary line"},
		{"e", "export chart snapshot"},
		{"E", "export one snapshot per context"},
		{"m", "methodology notes"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var sb strings.Builder
	sb.WriteString(m.theme.PanelTitle.Render("Keys"))
	sb.WriteString("\n\n")
	for _, r := range rows {
		sb.WriteString("  ")
		sb.WriteString(m.theme.KeyHint.Render(padRight(r.key, 8)))
		sb.WriteString(r.desc)
		sb.WriteByte('\n')
	}
	sb.WriteString("\n")
	sb.WriteString(m.theme.MutedText.Render("press ? or esc to return"))
	return sb.String()
}
