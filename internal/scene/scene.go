// Package scene generates the frames of the demo animations.
package scene

import (
	"time"

	"git.lost.host/meutraa/termdraw/internal/region"
)

type Scene interface {
	// Update advances the animation to now
	Update(now time.Time)
	// Render draws the current frame into r
	Render(r *region.Region)
	// Quit asks the scene to wind down; Done reports when it has
	Quit()
	Done() bool
}

// Layout is the text and art of the station scene.
type Layout struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Serial   string   `yaml:"serial"`
	Status   string   `yaml:"status"`
	Tasks    []string `yaml:"tasks"`
	Art      []string `yaml:"art"`
}

// ArtWidth is the width of the widest art line.
func (l *Layout) ArtWidth() int {
	w := 0
	for _, line := range l.Art {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w
}
