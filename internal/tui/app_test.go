package tui

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ptable/internal/catalog"
	"github.com/san-kum/ptable/internal/filter"
	"github.com/san-kum/ptable/internal/orbit"
	"github.com/san-kum/ptable/internal/palette"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlD = tea.KeyMsg{Type: tea.KeyCtrlD}
)

func newTestModel(t *testing.T, opts ...orbit.HostOption) Model {
	t.Helper()
	host := orbit.NewHost(orbit.DefaultConfig(), append([]orbit.HostOption{orbit.WithRand(rand.New(rand.NewSource(1)))}, opts...)...)
	m := New(Options{Catalog: catalog.Default(), Host: host})
	return update(t, m, loadedMsg{})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	out, _ := m.Update(msg)
	return out.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	out, cmd := m.Update(msg)
	return out.(Model), cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, k)
	}
	return m
}

func TestLoadingThenTable(t *testing.T) {
	m := New(Options{})
	if m.view != viewLoading {
		t.Fatalf("expected loading view, got %s", m.view)
	}
	if !strings.Contains(m.View(), "Loading periodic table") {
		t.Error("loading view should show a spinner message")
	}
	m = update(t, m, spinMsg{})
	if m.spin != 1 {
		t.Errorf("expected spinner to advance, got %d", m.spin)
	}

	m = update(t, m, loadedMsg{})
	if m.view != viewTable {
		t.Fatalf("expected table view, got %s", m.view)
	}
	if !strings.Contains(m.View(), "Found 118 elements") {
		t.Error("table should report all elements")
	}
	if _, cmd := updateCmd(t, m, spinMsg{}); cmd != nil {
		t.Error("spinner should stop once loaded")
	}
}

func TestSearchFilters(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("/"))
	if !m.search.Focused() {
		t.Fatal("slash should focus the search box")
	}
	m = press(t, m, runes("2"), runes("6"))
	if len(m.visible) != 1 || m.visible[0].Symbol != "Fe" {
		t.Fatalf("expected only Fe, got %d elements", len(m.visible))
	}
	if !strings.Contains(m.View(), "Found 1 elements") {
		t.Error("count line not updated")
	}

	m = press(t, m, esc)
	if m.search.Focused() {
		t.Error("esc should blur the search box")
	}
	m = press(t, m, esc)
	if len(m.visible) != 118 {
		t.Errorf("second esc should clear the query, got %d", len(m.visible))
	}
}

func TestEmptyState(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("/"), runes("z"), runes("z"), runes("z"))
	if len(m.visible) != 0 {
		t.Fatalf("expected no matches, got %d", len(m.visible))
	}
	if !strings.Contains(m.View(), "No elements found") {
		t.Error("expected empty-state message")
	}
	m = press(t, m, esc, enter)
	if m.view != viewTable {
		t.Error("enter on an empty grid should not open anything")
	}
}

func TestCategoryCycle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("C"))
	if m.filter.Category != filter.Radioactive {
		t.Fatalf("expected radioactive, got %s", m.filter.Category)
	}
	if len(m.visible) != 37 {
		t.Errorf("expected 37 radioactive elements, got %d", len(m.visible))
	}

	m = press(t, m, runes("c"))
	if m.filter.Category != filter.All {
		t.Errorf("expected wrap to all, got %s", m.filter.Category)
	}
	m = press(t, m, runes("c"))
	if m.filter.Category != m.categories[1] {
		t.Errorf("expected %s, got %s", m.categories[1], m.filter.Category)
	}
}

func TestGridNavigation(t *testing.T) {
	m := newTestModel(t)
	cols := m.columns()
	if cols != 6 {
		t.Fatalf("expected 6 columns at 80 wide, got %d", cols)
	}

	m = press(t, m, runes("j"))
	if m.cursor != cols {
		t.Errorf("down: expected %d, got %d", cols, m.cursor)
	}
	m = press(t, m, runes("l"), runes("k"))
	if m.cursor != 1 {
		t.Errorf("right+up: expected 1, got %d", m.cursor)
	}
	m = press(t, m, runes("h"), runes("h"))
	if m.cursor != 0 {
		t.Errorf("left should stop at 0, got %d", m.cursor)
	}
	m = press(t, m, runes("G"))
	if m.cursor != 117 {
		t.Errorf("end: expected 117, got %d", m.cursor)
	}
	if m.offset == 0 {
		t.Error("grid should scroll to keep the cursor visible")
	}
}

func TestSelectMountsSession(t *testing.T) {
	m := newTestModel(t)
	m, cmd := updateCmd(t, m, enter)

	if m.view != viewDetail {
		t.Fatalf("expected detail view, got %s", m.view)
	}
	if m.selected.Symbol != "H" {
		t.Errorf("expected hydrogen, got %s", m.selected.Symbol)
	}
	s := m.host.Active()
	if s == nil || !s.Animated() {
		t.Fatal("expected an animated session")
	}
	if cmd == nil {
		t.Error("expected the first frame to be scheduled")
	}

	view := m.View()
	for _, want := range []string{"Properties", "Common Reactions", "2H₂ + O₂ → 2H₂O"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestDetailZoomKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, enter)
	s := m.host.Active()

	m = press(t, m, runes("+"))
	if z := s.Scene().Camera.Zoom; z <= 1 {
		t.Errorf("+ should zoom in, got %v", z)
	}
	m = press(t, m, runes("-"), runes("-"))
	if z := s.Scene().Camera.Zoom; z >= 1 {
		t.Errorf("- should zoom out, got %v", z)
	}
	if m.view != viewDetail || m.host.Active() != s {
		t.Error("zooming should keep the same session on screen")
	}
}

func TestFrameAdvancesActiveSession(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, enter)
	token := m.host.Active().Token()

	m, cmd := updateCmd(t, m, frameMsg{token: token, at: time.Now()})
	if cmd == nil {
		t.Error("live frame should reschedule")
	}
	if m.host.Active().Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", m.host.Active().Frames())
	}
}

func TestStaleFrameIsDropped(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, enter)
	old := m.host.Active()

	m = press(t, m, runes("n"))
	if m.selected.Symbol != "He" {
		t.Fatalf("expected helium, got %s", m.selected.Symbol)
	}
	if !old.Disposed() {
		t.Fatal("previous session should be disposed")
	}

	m, cmd := updateCmd(t, m, frameMsg{token: old.Token(), at: time.Now()})
	if cmd != nil {
		t.Error("stale frame must not reschedule")
	}
	if old.Frames() != 0 {
		t.Error("stale frame must not advance the old session")
	}
	if m.stale != 1 {
		t.Errorf("expected 1 stale frame, got %d", m.stale)
	}

	if _, cmd := updateCmd(t, m, frameMsg{token: m.host.Active().Token(), at: time.Now()}); cmd == nil {
		t.Error("current session should keep running")
	}
}

func TestPreviousWrapsAround(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, enter, runes("p"))
	if m.selected.Symbol != "Og" {
		t.Errorf("expected Og, got %s", m.selected.Symbol)
	}
	if m.cursor != 117 {
		t.Errorf("cursor should follow the element, got %d", m.cursor)
	}
}

func TestBackDisposesSession(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, enter)
	s := m.host.Active()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.view != viewTable {
		t.Fatalf("expected table view, got %s", m.view)
	}
	if m.host.Active() != nil || !s.Disposed() {
		t.Error("going back should dispose the session")
	}
	if !m.host.Viewport().Empty() {
		t.Error("viewport should be empty after teardown")
	}
	if _, cmd := updateCmd(t, m, frameMsg{token: s.Token(), at: time.Now()}); cmd != nil {
		t.Error("frame after teardown must not reschedule")
	}
}

func TestFallbackSchedulesNothing(t *testing.T) {
	m := newTestModel(t, orbit.WithSurfaceFactory(orbit.Unavailable))
	m, cmd := updateCmd(t, m, enter)
	if cmd != nil {
		t.Error("badge fallback should not schedule frames")
	}
	if !m.host.Active().Fallback() {
		t.Error("expected badge fallback")
	}
	if !strings.Contains(m.View(), "Hydrogen") && !strings.Contains(m.View(), "H") {
		t.Error("badge should show the symbol")
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("t"))
	if m.theme.Name != palette.ThemeLight.Name || m.host.Theme().Name != "light" {
		t.Fatalf("expected light theme, got %s", m.theme.Name)
	}
	m = press(t, m, runes("t"))
	if m.theme.Name != "dark" {
		t.Errorf("expected dark theme, got %s", m.theme.Name)
	}

	m = press(t, m, runes("/"), runes("t"))
	if m.theme.Name != "dark" || m.search.Value() != "t" {
		t.Error("t should type into a focused search box")
	}
}

func TestDebugPanel(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, ctrlD)
	if !m.debug || !strings.Contains(m.View(), "stale frames") {
		t.Error("ctrl+d should show the debug panel")
	}
	m = press(t, m, enter)
	if !strings.Contains(m.View(), "electrons") {
		t.Error("debug panel should describe the active scene")
	}
	m = press(t, m, ctrlD)
	if m.debug {
		t.Error("ctrl+d should hide the debug panel")
	}
}

func TestPanicShowsErrorScreen(t *testing.T) {
	m := newTestModel(t)
	host := m.host
	m.host = nil

	m = press(t, m, runes("t"))
	if m.view != viewError || m.err == nil {
		t.Fatalf("expected error view, got %s", m.view)
	}
	if !strings.Contains(m.View(), "Something went wrong") {
		t.Error("error screen not rendered")
	}

	m.host = host
	m = press(t, m, runes("r"))
	if m.view != viewTable || m.err != nil {
		t.Errorf("reload should return to a fresh table, got %s", m.view)
	}
	if len(m.visible) != 118 {
		t.Errorf("reload should clear filters, got %d", len(m.visible))
	}
}

func TestQuitDisposesSession(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, enter)
	s := m.host.Active()
	_, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !s.Disposed() {
		t.Error("quitting should dispose the session")
	}
}

func TestRenderCard(t *testing.T) {
	cat := catalog.Default()
	u, _ := cat.Find("U")
	card := renderCard(u, false, palette.ThemeDark)
	if !strings.Contains(card, "☢") {
		t.Error("radioactive card should carry the marker")
	}
	if !strings.Contains(card, "Uranium") {
		t.Error("card should show the name")
	}

	rf, _ := cat.Find("Rutherfordium")
	if !strings.Contains(renderCard(rf, true, palette.ThemeDark), "Rutherfo...") {
		t.Error("long names should be truncated")
	}
}

func TestCardHeightIsUniform(t *testing.T) {
	for _, e := range catalog.Default().All() {
		for _, focused := range []bool{false, true} {
			card := renderCard(e, focused, palette.ThemeDark)
			if h := lipgloss.Height(card); h != cardHeight {
				t.Errorf("%s (focused=%v): height %d, want %d", e.Name, focused, h, cardHeight)
			}
			if w := lipgloss.Width(card); w != cardWidth {
				t.Errorf("%s (focused=%v): width %d, want %d", e.Name, focused, w, cardWidth)
			}
		}
	}
}

func TestLiveRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Fe", "ctrl+c to stop")
	r.Start()
	r.Draw("a\nb")
	r.Stop()

	out := buf.String()
	if r.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", r.Frames())
	}
	for _, want := range []string{hideCursor, clearScreen, "Fe  frame 1", "  a\n  b\n", "ctrl+c to stop", showCursor} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
