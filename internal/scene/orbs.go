package scene

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/termdraw/internal/region"
	"git.lost.host/meutraa/termdraw/internal/theme"
)

const (
	startMessage = "press q to quit..."
	quitRate     = 6
)

var (
	mission = []string{
		"kick butt",
		"have fun",
		"don't cheat",
		"love our customers",
		"change computing forever",
	}
	principles = []string{"integrity", "honesty", "decency"}
	values     = []string{
		"candor", "courage", "curiosity", "diversity", "empathy",
		"humor", "optimism", "resilience", "responsibility", "rigor",
		"teamwork", "thriftiness", "transparency", "urgency", "versatility",
	}
)

// Orb is a word fading in and back out along a colour ramp.
type Orb struct {
	Word    string
	X, Y    int
	Frame   int // position along the ramp, up then back down
	Rate    int // ramp steps per frame
	Starter bool
	Ramp    []region.Colour
}

// Colour returns the colour for the current frame, or false once the orb has
// faded out.
func (o *Orb) Colour() (region.Colour, bool) {
	n := len(o.Ramp)
	switch {
	case o.Frame < n:
		return o.Ramp[o.Frame], true
	case o.Frame < n*2:
		return o.Ramp[n-1-(o.Frame-n)], true
	}
	return region.Default, false
}

// Orbs floats words on random rows. It starts with a prompt; once the prompt
// has faded the spawner runs until the user quits.
type Orbs struct {
	width, height int
	theme         theme.Theme
	rng           *rand.Rand

	orbs     []*Orb
	inUse    map[string]bool
	started  bool
	quitting bool
	done     bool
}

func NewOrbs(width, height int, th theme.Theme, rng *rand.Rand) *Orbs {
	x := (width - len(startMessage)) / 2
	if x < 0 {
		x = 0
	}
	return &Orbs{
		width:  width,
		height: height,
		theme:  th,
		rng:    rng,
		orbs: []*Orb{{
			Word:    startMessage,
			X:       x,
			Y:       height / 2,
			Rate:    1,
			Starter: true,
			Ramp:    th.Ramp(theme.Blue),
		}},
		inUse: map[string]bool{},
	}
}

func (s *Orbs) Orbs() []*Orb { return s.orbs }

func (s *Orbs) Update(now time.Time) {
	for _, orb := range s.orbs {
		orb.Frame += orb.Rate
	}

	active := s.orbs[:0]
	for _, orb := range s.orbs {
		if _, ok := orb.Colour(); ok {
			active = append(active, orb)
			continue
		}
		if orb.Starter {
			s.started = true
		}
		delete(s.inUse, orb.Word)
	}
	for i := len(active); i < len(s.orbs); i++ {
		s.orbs[i] = nil
	}
	s.orbs = active

	if s.started && !s.quitting {
		if s.rng.Float64() < 0.25 {
			s.spawn()
		}
	} else if len(s.orbs) == 0 {
		s.done = true
	}
}

func (s *Orbs) spawn() {
	if s.height <= 0 {
		return
	}
	for attempt := 0; attempt < 10; attempt++ {
		// Only one word per row, so words never overlap
		y := s.rng.Intn(s.height)
		if s.rowInUse(y) {
			continue
		}

		var words []string
		var ramp []region.Colour
		rate := 1
		which := s.rng.Intn(101)
		switch {
		case which < 55:
			words, ramp = values, s.theme.Ramp(theme.Grey)
			rate = 1 + s.rng.Intn(3)
		case which < 85:
			words, ramp = principles, s.theme.Ramp(theme.Green)
		default:
			words, ramp = mission, s.theme.Ramp(theme.Blue)
		}

		word := words[s.rng.Intn(len(words))]
		if s.inUse[word] {
			continue
		}
		x := 0
		if room := s.width - len(word); room > 0 {
			x = s.rng.Intn(room)
		}
		s.inUse[word] = true
		s.orbs = append(s.orbs, &Orb{Word: word, X: x, Y: y, Rate: rate, Ramp: ramp})
		return
	}
}

func (s *Orbs) rowInUse(y int) bool {
	for _, orb := range s.orbs {
		if orb.Y == y {
			return true
		}
	}
	return false
}

func (s *Orbs) Render(r *region.Region) {
	r.Clear()
	for _, orb := range s.orbs {
		c, ok := orb.Colour()
		if !ok {
			continue
		}
		r.DrawStringStyled(orb.X, orb.Y, orb.Word, region.Format{Fg: c})
	}
}

// Quit makes every orb fade out faster.
func (s *Orbs) Quit() {
	s.quitting = true
	for _, orb := range s.orbs {
		orb.Rate = quitRate
	}
}

func (s *Orbs) Done() bool { return s.done }
