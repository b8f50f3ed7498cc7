// Package tui provides a Bubble Tea terminal user interface for
// album-collage.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/album-collage/internal/build"
	"github.com/handiism/album-collage/internal/config"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateBuilding
	StatePreview
	StateExport
	StateError
)

// numField indexes into Model.fields.
type numField int

const (
	fieldColumns numField = iota
	fieldRows
	fieldCellSize
	fieldMargin
	fieldFontSize
	fieldPadding
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Columns", "Rows", "Cell px", "Margin px", "Font size", "Padding",
}

// eventLog buffers progress events emitted from fetch goroutines until
// the UI's next tick drains them on the update loop.
type eventLog struct {
	mu     sync.Mutex
	events []build.ProgressEvent
}

func (l *eventLog) add(e build.ProgressEvent) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

func (l *eventLog) drain() []build.ProgressEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.events
	l.events = nil
	return out
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	entries  textarea.Model
	fields   [fieldCount]textinput.Model
	exportIn textinput.Model
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings

	// focus: 0 = textarea, 1..fieldCount = fields[focus-1].
	focus int

	manager *build.Manager
	result  *build.Result
	events  *eventLog
	logs    []build.ProgressEvent

	fieldErr  string
	exportErr string
	saved     string
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ta := textarea.New()
	ta.Placeholder = "Artist - Album, one per line"
	ta.SetWidth(44)
	ta.SetHeight(12)
	ta.Focus()

	var fields [fieldCount]textinput.Model
	defaults := [fieldCount]int{
		settings.Columns, settings.Rows, settings.CellSize,
		settings.MarginWidth, settings.FontSize, settings.Padding,
	}
	for i := range fields {
		ti := textinput.New()
		ti.SetValue(strconv.Itoa(defaults[i]))
		ti.CharLimit = 5
		ti.Width = 6
		fields[i] = ti
	}

	exportIn := textinput.New()
	exportIn.SetValue(settings.OutputPath)
	exportIn.CharLimit = 250
	exportIn.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateInput,
		entries:  ta,
		fields:   fields,
		exportIn: exportIn,
		spinner:  sp,
		progress: prog,
		settings: settings,
		events:   &eventLog{},
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Message types
type (
	// BuildDoneMsg is sent when a collage build finishes.
	BuildDoneMsg struct {
		Result *build.Result
		Err    error
	}

	// ExportDoneMsg is sent when an export attempt finishes.
	ExportDoneMsg struct {
		Path string
		Err  error
	}

	// TickMsg drives progress polling during a build.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case TickMsg:
		m.logs = append(m.logs, m.events.drain()...)
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		if m.state == StateBuilding && m.manager != nil {
			fetched, total := m.manager.GetProgress()
			var percent float64
			if total > 0 {
				percent = float64(fetched) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tick())
		}

	case BuildDoneMsg:
		if m.state != StateBuilding {
			// Build was cancelled and the user is editing again.
			return m, nil
		}
		m.logs = append(m.logs, m.events.drain()...)
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.result = msg.Result
			m.saved = ""
			m.state = StatePreview
		}

	case ExportDoneMsg:
		if msg.Err != nil {
			m.exportErr = msg.Err.Error()
		} else {
			m.exportErr = ""
			m.saved = msg.Path
			m.state = StatePreview
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.updateFocused(msg)...)

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses; handled reports whether the key was
// consumed and must not reach the focused input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit, true

	case "esc":
		switch m.state {
		case StateInput:
			return m, tea.Quit, true
		case StateBuilding:
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.state = StateInput
			return m, nil, true
		case StateExport:
			m.state = StatePreview
			m.exportErr = ""
			return m, nil, true
		case StatePreview, StateError:
			m.state = StateInput
			return m, nil, true
		}

	case "tab", "shift+tab":
		if m.state == StateInput {
			if msg.String() == "tab" {
				m.focus = (m.focus + 1) % (int(fieldCount) + 1)
			} else {
				m.focus = (m.focus + int(fieldCount)) % (int(fieldCount) + 1)
			}
			m.applyFocus()
			return m, nil, true
		}

	case "ctrl+b":
		if m.state == StateInput {
			return m.startBuild()
		}

	case "ctrl+e":
		if m.state == StateInput {
			m.entries.SetValue(strings.Join(exampleEntries, "\n"))
			return m, nil, true
		}

	case "enter":
		if m.state == StateExport {
			return m.startExport()
		}

	case "s":
		if m.state == StatePreview {
			m.state = StateExport
			m.exportIn.Focus()
			return m, textinput.Blink, true
		}

	case "e":
		if m.state == StatePreview {
			m.state = StateInput
			m.applyFocus()
			return m, nil, true
		}

	case "r":
		if m.state == StateError {
			m.state = StateInput
			m.err = nil
			m.applyFocus()
			return m, nil, true
		}

	case "q":
		if m.state == StatePreview || m.state == StateError {
			return m, tea.Quit, true
		}
	}

	return m, nil, false
}

// updateFocused forwards msg to whichever input owns the focus.
func (m *Model) updateFocused(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.state {
	case StateInput:
		if m.focus == 0 {
			m.entries, cmd = m.entries.Update(msg)
		} else {
			m.fields[m.focus-1], cmd = m.fields[m.focus-1].Update(msg)
		}
		cmds = append(cmds, cmd)
	case StateExport:
		m.exportIn, cmd = m.exportIn.Update(msg)
		cmds = append(cmds, cmd)
	}

	return cmds
}

func (m *Model) applyFocus() {
	m.entries.Blur()
	for i := range m.fields {
		m.fields[i].Blur()
	}
	if m.state != StateInput {
		return
	}
	if m.focus == 0 {
		m.entries.Focus()
	} else {
		m.fields[m.focus-1].Focus()
	}
}

// readSettings validates the numeric fields into m.settings.
func (m *Model) readSettings() error {
	values := [fieldCount]*int{
		&m.settings.Columns, &m.settings.Rows, &m.settings.CellSize,
		&m.settings.MarginWidth, &m.settings.FontSize, &m.settings.Padding,
	}
	for i, field := range m.fields {
		n, err := strconv.Atoi(strings.TrimSpace(field.Value()))
		if err != nil {
			return fmt.Errorf("%s: not a number: %q", strings.ToLower(fieldLabels[i]), field.Value())
		}
		*values[i] = n
	}
	return m.settings.Validate()
}

func (m Model) startBuild() (Model, tea.Cmd, bool) {
	if strings.TrimSpace(m.entries.Value()) == "" {
		m.fieldErr = "enter at least one Artist - Album line"
		return m, nil, true
	}
	if err := m.readSettings(); err != nil {
		m.fieldErr = err.Error()
		return m, nil, true
	}
	m.fieldErr = ""

	manager, err := build.NewManager(m.settings, m.events.add)
	if err != nil {
		m.fieldErr = err.Error()
		return m, nil, true
	}
	m.manager = manager
	m.logs = nil
	m.state = StateBuilding

	raw := m.entries.Value()
	ctx := m.ctx
	buildCmd := func() tea.Msg {
		result, err := manager.Build(ctx, raw)
		return BuildDoneMsg{Result: result, Err: err}
	}

	return m, tea.Batch(buildCmd, m.spinner.Tick, m.tick()), true
}

func (m Model) startExport() (Model, tea.Cmd, bool) {
	path := strings.TrimSpace(m.exportIn.Value())
	if path == "" {
		m.exportErr = "enter an output path"
		return m, nil, true
	}

	manager := m.manager
	exportCmd := func() tea.Msg {
		return ExportDoneMsg{Path: path, Err: manager.Export(path)}
	}
	return m, exportCmd, true
}

// tick returns a command polling build progress.
func (m Model) tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎨 Album Collage Maker"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Fetch album covers and compose them into a grid"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateBuilding:
		b.WriteString(m.viewBuilding())
	case StatePreview:
		b.WriteString(m.viewPreview())
	case StateExport:
		b.WriteString(m.viewExport())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Albums (Artist - Album), one per line:"))
	b.WriteString("\n\n")
	b.WriteString(m.entries.View())
	b.WriteString("\n\n")

	var row []string
	for i, field := range m.fields {
		row = append(row, fmt.Sprintf("%s %s", labelStyle.Render(fieldLabels[i]+":"), field.View()))
	}
	b.WriteString(strings.Join(row[:3], "  "))
	b.WriteString("\n")
	b.WriteString(strings.Join(row[3:], "  "))
	b.WriteString("\n")

	if m.fieldErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.fieldErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewBuilding() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching covers..."))
	b.WriteString("\n\n")

	fetched, total := 0, 0
	if m.manager != nil {
		f, t := m.manager.GetProgress()
		fetched, total = int(f), int(t)
	}
	b.WriteString(m.progress.View())
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Covers: %d/%d", fetched, total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewPreview() string {
	var b strings.Builder

	if m.result == nil || m.result.Image == nil {
		return errorStyle.Render("nothing to preview")
	}

	bounds := m.result.Image.Bounds()
	header := fmt.Sprintf("Preview (%dx%d, %d covers", bounds.Dx(), bounds.Dy(), len(m.result.Entries))
	if m.result.Placeholders > 0 {
		header += fmt.Sprintf(", %d placeholders", m.result.Placeholders)
	}
	if m.result.Dropped > 0 {
		header += fmt.Sprintf(", %d dropped", m.result.Dropped)
	}
	header += ")"
	b.WriteString(subtitleStyle.Render(header))
	b.WriteString("\n\n")

	cols := m.width - 4
	rows := m.height - 10
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	b.WriteString(RenderImage(m.result.Image, cols, rows))
	b.WriteString("\n")

	if m.saved != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render("✓ Saved: " + m.saved))
		b.WriteString("\n")
	}
	for _, w := range m.result.Warnings {
		b.WriteString(warningStyle.Render("! " + w))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewExport() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Export to (.png, .jpg):"))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.exportIn.View()))
	b.WriteString("\n")

	if m.exportErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.exportErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Build failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString("  " + m.err.Error())
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case build.LevelError:
			style = errorStyle
			prefix = "✗"
		case build.LevelWarning:
			style = warningStyle
			prefix = "!"
		case build.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case build.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "ctrl+b: build • ctrl+e: example • tab: next field • esc: quit"
	case StateBuilding:
		return "esc: cancel"
	case StatePreview:
		return "s: save • e: edit • q: quit"
	case StateExport:
		return "enter: save • esc: back"
	case StateError:
		return "r: edit • q: quit"
	}
	return ""
}

var exampleEntries = []string{
	"Radiohead - In Rainbows",
	"Kanye West - My Beautiful Dark Twisted Fantasy",
	"Lorde - Melodrama",
	"Daft Punk - Discovery",
	"Kendrick Lamar - To Pimp a Butterfly",
	"Taylor Swift - 1989",
	"Bon Iver - For Emma, Forever Ago",
	"Tame Impala - Currents",
	"Beyoncé - Lemonade",
	"Frank Ocean - Blonde",
	"Arctic Monkeys - AM",
	"Phoebe Bridgers - Punisher",
	"The Strokes - Is This It",
	"Fleetwood Mac - Rumours",
	"Tyler, The Creator - IGOR",
	"The Weeknd - After Hours",
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
