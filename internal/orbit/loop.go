package orbit

import (
	"context"
	"time"
)

// Run drives the active session from a ticker until ctx is done or the
// session stops animating, handing each rendered frame to draw.
func (h *Host) Run(ctx context.Context, interval time.Duration, draw func(string)) error {
	s := h.active
	if s == nil {
		return nil
	}
	draw(h.View())
	if !s.Animated() {
		return nil
	}
	if interval <= 0 {
		interval = h.cfg.FrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	token := s.Token()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !h.Frame(token, now) {
				draw(h.View())
				return nil
			}
			draw(h.View())
		}
	}
}
