package render

import (
	"time"

	"git.lost.host/meutraa/termdraw/internal/region"
)

type Renderer interface {
	Init() error
	Deinit() error
	// Frame draws r, writing only what changed since the last frame
	Frame(r *region.Region) error
	RenderLoop(
		period time.Duration,
		frame func(now time.Time) (*region.Region, bool),
		wait func(deadline time.Time) bool,
	) error
}
