package orbit

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/san-kum/ptable/internal/palette"
)

var ErrViewportBusy = errors.New("orbit: viewport owned by another session")

// Viewport is the single drawing region shared by successive sessions.
// Only its current owner may write to it.
type Viewport struct {
	Cols, Rows int
	owner      uuid.UUID
	content    string
}

func (v *Viewport) Owner() uuid.UUID { return v.owner }
func (v *Viewport) Content() string  { return v.content }
func (v *Viewport) Empty() bool      { return v.owner == uuid.Nil && v.content == "" }

// Claim transfers ownership to id. It fails while another session holds it.
func (v *Viewport) Claim(id uuid.UUID) error {
	if v.owner != uuid.Nil && v.owner != id {
		return fmt.Errorf("%w: held by %s", ErrViewportBusy, v.owner)
	}
	v.owner = id
	v.content = ""
	return nil
}

// Write replaces the content when id owns the viewport.
func (v *Viewport) Write(id uuid.UUID, content string) bool {
	if id == uuid.Nil || v.owner != id {
		return false
	}
	v.content = content
	return true
}

// Release clears the content and drops ownership held by id.
func (v *Viewport) Release(id uuid.UUID) {
	if v.owner != id {
		return
	}
	v.owner = uuid.Nil
	v.content = ""
}

// Session is one visualization of one element. Its token identifies the
// frame callbacks scheduled for it; once disposed the token is dead.
type Session struct {
	id        uuid.UUID
	subject   Subject
	scene     *Scene
	surface   Surface
	badge     *Badge
	reason    error
	viewport  *Viewport
	lastFrame time.Time
	frames    uint64
	disposed  bool
	log       *log.Logger
}

func (s *Session) Token() uuid.UUID  { return s.id }
func (s *Session) Subject() Subject  { return s.subject }
func (s *Session) Scene() *Scene     { return s.scene }
func (s *Session) Badge() *Badge     { return s.badge }
func (s *Session) Reason() error     { return s.reason }
func (s *Session) Frames() uint64    { return s.frames }
func (s *Session) Disposed() bool    { return s.disposed }
func (s *Session) Surface() Surface  { return s.surface }
func (s *Session) Fallback() bool    { return s.badge != nil }
func (s *Session) Animated() bool    { return !s.disposed && s.scene != nil && s.surface != nil }

// advance runs one frame. A panic turns the session into a fallback.
func (s *Session) advance(now time.Time, theme palette.Theme) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			s.degrade("frame", fmt.Errorf("%w: %v", ErrPanic, p), theme)
			ok = false
		}
	}()

	elapsed := s.scene.Config.FrameInterval
	if !s.lastFrame.IsZero() {
		elapsed = now.Sub(s.lastFrame)
	}
	elapsed = min(max(elapsed, 0), maxFrameStep)
	s.lastFrame = now

	s.scene = Tick(s.scene, elapsed)
	s.surface.Clear()
	if err := s.surface.Draw(s.scene); err != nil {
		s.degrade("draw", err, theme)
		return false
	}
	s.viewport.Write(s.id, s.surface.String())
	s.frames++
	return true
}

func (s *Session) degrade(stage string, err error, theme palette.Theme) {
	s.reason = &FallbackError{Stage: stage, Wrapped: err}
	s.log.Error("orbit visualizer degraded to badge", "session", s.id, "element", s.subject.Symbol, "err", s.reason)
	s.releaseScene()
	s.badge = NewBadge(s.subject, s.viewport.Cols, s.viewport.Rows)
	s.viewport.Write(s.id, s.badge.Render(theme))
}

func (s *Session) releaseScene() {
	if s.surface != nil {
		s.surface.Release()
	}
	s.surface = nil
	s.scene = nil
}

// Dispose stops frames, releases the scene and surface, then clears the
// viewport. Calling it again is a no-op.
func (s *Session) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.releaseScene()
	s.viewport.Release(s.id)
	s.log.Debug("session disposed", "session", s.id, "element", s.subject.Symbol, "frames", s.frames)
}

// Host owns the viewport and the at-most-one active session.
type Host struct {
	cfg      Config
	theme    palette.Theme
	factory  SurfaceFactory
	rng      *rand.Rand
	log      *log.Logger
	viewport *Viewport
	active   *Session
}

type HostOption func(*Host)

func WithLogger(l *log.Logger) HostOption            { return func(h *Host) { h.log = l } }
func WithRand(r *rand.Rand) HostOption               { return func(h *Host) { h.rng = r } }
func WithSurfaceFactory(f SurfaceFactory) HostOption { return func(h *Host) { h.factory = f } }
func WithTheme(t palette.Theme) HostOption           { return func(h *Host) { h.theme = t } }

func NewHost(cfg Config, opts ...HostOption) *Host {
	h := &Host{
		cfg:     cfg,
		theme:   palette.ThemeDark,
		factory: NewBrailleSurface,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	if !cfg.FitsCamera() {
		h.log.Warn("outer orbit exceeds the camera view", "electron_cap", cfg.ElectronCap, "outer_radius", cfg.Radius(cfg.ElectronCap-1))
	}
	h.viewport = &Viewport{Cols: cfg.ViewportCols, Rows: cfg.ViewportRows}
	return h
}

func (h *Host) Config() Config        { return h.cfg }
func (h *Host) Active() *Session      { return h.active }
func (h *Host) Viewport() *Viewport   { return h.viewport }
func (h *Host) Theme() palette.Theme  { return h.theme }
func (h *Host) View() string          { return h.viewport.Content() }

// Mount tears down the current session and starts one for subject. The
// old session's token is invalid before the new session claims the
// viewport.
func (h *Host) Mount(subject Subject) *Session {
	h.Unmount()

	s := &Session{
		id:       uuid.New(),
		subject:  subject,
		viewport: h.viewport,
		log:      h.log,
	}
	if err := h.viewport.Claim(s.id); err != nil {
		// Unmount released the previous owner, so this is a bug in the host.
		h.log.Error("viewport claim failed", "session", s.id, "err", err)
	}

	res := Build(subject, h.cfg, h.rng, h.factory, h.theme)
	if res.Animated() {
		s.scene, s.surface = res.Scene, res.Surface
		h.viewport.Write(s.id, s.surface.String())
		h.log.Debug("session mounted", "session", s.id, "element", subject.Symbol, "electrons", s.scene.ElectronCount())
	} else {
		s.badge, s.reason = res.Badge, res.Reason
		h.viewport.Write(s.id, s.badge.Render(h.theme))
		h.log.Warn("orbit visualizer fell back to badge", "session", s.id, "element", subject.Symbol, "err", res.Reason)
	}
	h.active = s
	return s
}

// Frame advances the active session if token belongs to it. It reports
// whether another frame should be scheduled.
func (h *Host) Frame(token uuid.UUID, now time.Time) bool {
	s := h.active
	if s == nil || s.id != token || !s.Animated() {
		return false
	}
	return s.advance(now, h.theme)
}

// Unmount disposes the active session, if any. Safe to repeat.
func (h *Host) Unmount() {
	if h.active == nil {
		return
	}
	s := h.active
	h.active = nil
	s.Dispose()
}

// SetTheme applies a theme to future sessions and repaints the active one.
func (h *Host) SetTheme(t palette.Theme) {
	h.theme = t
	s := h.active
	if s == nil || s.disposed {
		return
	}
	switch {
	case s.Animated():
		s.surface.SetTheme(t)
		s.surface.Clear()
		h.repaint(s)
	case s.badge != nil:
		h.viewport.Write(s.id, s.badge.Render(t))
	}
}

// Zoom moves the active session's camera in or out and repaints. It
// reports whether anything was zoomed; badges have no camera.
func (h *Host) Zoom(in bool) bool {
	s := h.active
	if s == nil || !s.Animated() {
		return false
	}
	if in {
		s.scene.Camera.ZoomIn()
	} else {
		s.scene.Camera.ZoomOut()
	}
	h.repaint(s)
	return true
}

func (h *Host) repaint(s *Session) {
	s.surface.Clear()
	if err := s.surface.Draw(s.scene); err != nil {
		s.degrade("draw", err, h.theme)
		return
	}
	h.viewport.Write(s.id, s.surface.String())
}
