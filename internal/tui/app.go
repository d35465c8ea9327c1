// Package tui is the interactive periodic table: a filterable card grid,
// a detail view with the orbit visualizer, and an error screen.
package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/filter"
	"github.com/san-kum/ptable/internal/orbit"
	"github.com/san-kum/ptable/internal/palette"
)

const (
	defaultWidth     = 80
	defaultHeight    = 24
	defaultLoadDelay = 300 * time.Millisecond
	spinInterval     = 80 * time.Millisecond
)

type view int

const (
	viewLoading view = iota
	viewTable
	viewDetail
	viewError
)

func (v view) String() string {
	switch v {
	case viewLoading:
		return "loading"
	case viewTable:
		return "table"
	case viewDetail:
		return "detail"
	case viewError:
		return "error"
	}
	return "unknown"
}

// frameMsg is one display-refresh callback. It only advances the session
// whose token it carries.
type frameMsg struct {
	token uuid.UUID
	at    time.Time
}

type loadedMsg struct{}

type spinMsg struct{}

type Options struct {
	Catalog       *catalog.Catalog
	Host          *orbit.Host
	Theme         palette.Theme
	FrameInterval time.Duration
	LoadDelay     time.Duration
	Logger        *log.Logger
}

type Model struct {
	cat      *catalog.Catalog
	host     *orbit.Host
	log      *log.Logger
	interval time.Duration
	delay    time.Duration

	theme  palette.Theme
	styles palette.Styles

	view       view
	filter     filter.State
	categories []string
	search     textinput.Model
	visible    []catalog.Element
	cursor     int
	offset     int
	selected   catalog.Element

	spin   int
	debug  bool
	err    error
	stale  uint64
	width  int
	height int
}

func New(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Theme.Name == "" {
		opts.Theme = palette.ThemeDark
	}
	if opts.Host == nil {
		opts.Host = orbit.NewHost(orbit.DefaultConfig(), orbit.WithTheme(opts.Theme))
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = opts.Host.Config().FrameInterval
	}
	if opts.LoadDelay <= 0 {
		opts.LoadDelay = defaultLoadDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		cat:        opts.Catalog,
		host:       opts.Host,
		log:        opts.Logger,
		interval:   opts.FrameInterval,
		delay:      opts.LoadDelay,
		categories: filter.Categories(opts.Catalog),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.setTheme(opts.Theme)
	m.reset()
	m.view = viewLoading
	return m
}

func newSearch() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name, symbol, or number"
	ti.Prompt = "/ "
	ti.CharLimit = 32
	ti.Width = 36
	return ti
}

// reset puts the model back to a fresh table.
func (m *Model) reset() {
	m.host.Unmount()
	m.filter = filter.New()
	m.search = newSearch()
	m.cursor, m.offset = 0, 0
	m.selected = catalog.Element{}
	m.err = nil
	m.view = viewTable
	m.refilter()
}

func (m *Model) refilter() {
	m.filter.Query = m.search.Value()
	m.visible = m.filter.Apply(m.cat.All())
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m *Model) setTheme(t palette.Theme) {
	m.theme = t
	m.styles = palette.NewStyles(t)
	m.host.SetTheme(t)
}

func (m *Model) fail(err error) {
	m.log.Error("application error", "view", m.view, "err", err)
	if m.host != nil {
		m.host.Unmount()
	}
	m.err = err
	m.view = viewError
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(m.delay, func(time.Time) tea.Msg { return loadedMsg{} }),
		spinTick(),
	)
}

func spinTick() tea.Cmd {
	return tea.Tick(spinInterval, func(time.Time) tea.Msg { return spinMsg{} })
}

func (m Model) scheduleFrame(token uuid.UUID) tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg{token: token, at: t} })
}

func (m Model) Update(msg tea.Msg) (out tea.Model, cmd tea.Cmd) {
	defer func() {
		if p := recover(); p != nil {
			m.fail(fmt.Errorf("panic: %v", p))
			out, cmd = m, nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll()
		return m, nil
	case spinMsg:
		if m.view != viewLoading {
			return m, nil
		}
		m.spin++
		return m, spinTick()
	case loadedMsg:
		if m.view == viewLoading {
			m.view = viewTable
			m.log.Info("catalog loaded", "elements", m.cat.Len())
		}
		return m, nil
	case frameMsg:
		return m.frame(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// frame advances the visualizer and reschedules only while the token is
// live. Stale frames are dropped without a reschedule.
func (m Model) frame(msg frameMsg) (Model, tea.Cmd) {
	if m.view != viewDetail || !m.host.Frame(msg.token, msg.at) {
		if s := m.host.Active(); s == nil || s.Token() != msg.token {
			m.stale++
		}
		return m, nil
	}
	return m, m.scheduleFrame(msg.token)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.host.Unmount()
		return m, tea.Quit
	}

	if m.view == viewError {
		switch msg.String() {
		case "r":
			m.reset()
			m.log.Info("reloaded after error")
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	if !m.search.Focused() {
		switch msg.String() {
		case "t":
			m.setTheme(m.theme.Toggle())
			return m, nil
		case "ctrl+d":
			m.debug = !m.debug
			return m, nil
		}
	}

	switch m.view {
	case viewTable:
		return m.tableKey(msg)
	case viewDetail:
		return m.detailKey(msg)
	}
	return m, nil
}

// open shows the detail view for e, replacing any running visualization.
func (m Model) open(e catalog.Element) (Model, tea.Cmd) {
	m.selected = e
	m.view = viewDetail
	s := m.host.Mount(orbit.SubjectOf(e))
	if !s.Animated() {
		return m, nil
	}
	return m, m.scheduleFrame(s.Token())
}

func (m Model) back() (Model, tea.Cmd) {
	m.host.Unmount()
	m.view = viewTable
	m.scroll()
	return m, nil
}

func (m Model) View() (out string) {
	defer func() {
		if p := recover(); p != nil {
			m.log.Error("render panic", "view", m.view, "err", p)
			out = m.errorView(fmt.Errorf("panic: %v", p))
		}
	}()

	var body string
	switch m.view {
	case viewLoading:
		body = m.loadingView()
	case viewTable:
		body = m.tableView()
	case viewDetail:
		body = m.detailView()
	case viewError:
		body = m.errorView(m.err)
	}
	if m.debug {
		body += "\n" + m.debugView()
	}
	return body
}

func (m Model) loadingView() string {
	return "\n  " + m.styles.Title.Render(palette.Spinner(m.spin)) + " " +
		m.styles.Subtle.Render("Loading periodic table...") + "\n"
}

func (m Model) errorView(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return "\n  " + m.styles.Error.Render("Something went wrong") + "\n\n" +
		"  " + m.styles.Text.Render(msg) + "\n\n" +
		"  " + m.styles.KeyHint.Render("r reload  q quit") + "\n"
}

// Run starts the program in the alternate screen.
func Run(opts Options) error {
	m := New(opts)
	defer m.host.Unmount()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
