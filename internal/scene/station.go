package scene

import (
	"math/rand"
	"strings"
	"time"

	"git.lost.host/meutraa/termdraw/internal/region"
	"git.lost.host/meutraa/termdraw/internal/theme"
)

const (
	headerHeight = 3
	footerHeight = 2
	ringSize     = 1000
	ringIdle     = 4 * time.Second
	clockFormat  = "2006-Jan-02 15:04:05"

	textX = 10
	textY = 6
)

type Severity uint8

const (
	Info Severity = iota
	Warning
	Critical
)

type LogLine struct {
	Text     string
	Severity Severity
}

// Station is a status screen: coloured bands, a clock, a block of art and a
// scrolling log of made up tasks.
type Station struct {
	layout   *Layout
	palette  theme.Palette
	location *time.Location
	hostname string
	rng      *rand.Rand

	ring     []LogLine
	ringLast time.Time
	now      time.Time
	quit     bool
}

func NewStation(layout *Layout, th theme.Theme, location *time.Location, hostname string, rng *rand.Rand) *Station {
	return &Station{
		layout:   layout,
		palette:  th.Palette(),
		location: location,
		hostname: hostname,
		rng:      rng,
	}
}

func (s *Station) Log() []LogLine { return s.ring }

func (s *Station) Update(now time.Time) {
	s.now = now
	if len(s.layout.Tasks) == 0 {
		return
	}
	if s.rng.Float64() < 0.30 || now.Sub(s.ringLast) > ringIdle {
		level := s.rng.Float64()
		severity := Info
		if level >= 0.9 {
			severity = Critical
		} else if level >= 0.8 {
			severity = Warning
		}
		task := s.layout.Tasks[s.rng.Intn(len(s.layout.Tasks))]
		s.ring = append(s.ring, LogLine{
			Text:     s.clock() + " " + strings.ToLower(strings.TrimSpace(task)),
			Severity: severity,
		})
		s.ringLast = now
	}
	if over := len(s.ring) - ringSize; over > 0 {
		s.ring = append(s.ring[:0], s.ring[over:]...)
	}
}

func (s *Station) clock() string {
	return strings.ToUpper(s.now.In(s.location).Format(clockFormat))
}

func (s *Station) Render(r *region.Region) {
	w, h := r.Width(), r.Height()
	p := s.palette

	band := region.Format{Fg: p.GreenLight, Bg: p.GreenDark}
	highlight := region.Format{Fg: p.Yellow, Bg: p.GreenDark}
	body := region.Format{Fg: p.OffWhite, Bg: p.GreenDarkest}

	r.Clear()
	r.FillRect(0, 0, w, headerHeight, ' ', band)
	r.FillRect(0, headerHeight, w, h-footerHeight-1-headerHeight, ' ', body)
	r.FillRect(0, h-footerHeight-1, w, footerHeight+1, ' ', band)

	r.DrawStringStyled(3, 1, s.layout.Title, band)
	r.DrawStringStyled(w-3-len([]rune(s.layout.Subtitle)), 1, s.layout.Subtitle, band)

	footer := "STATION: " + strings.ToUpper(s.hostname)
	r.DrawStringStyled(3, h-2, footer, highlight)
	clock := s.clock()
	r.DrawStringStyled(w-3-len(clock), h-2, clock, highlight)

	artX := w - s.layout.ArtWidth() - 1
	artY := h - footerHeight - len(s.layout.Art) - 2
	for y, line := range s.layout.Art {
		for x, ch := range []rune(line) {
			if ch == '#' {
				r.SetCharStyled(artX+x, artY+y, ' ', band)
			}
		}
	}

	// Text keeps whatever background is already painted under it
	text := region.Format{Fg: p.OffWhite, Bg: region.UseExisting}
	formats := map[Severity]region.Format{
		Info:     text,
		Warning:  region.Format{Fg: p.Yellow, Bg: region.UseExisting},
		Critical: region.Format{Fg: p.Red, Bg: region.UseExisting},
	}

	r.DrawStringStyled(textX, textY, s.layout.Serial, text)
	r.DrawStringStyled(textX, textY+2, s.layout.Status, text)

	boxTop := textY + 4
	boxHeight := h - footerHeight - 2 - boxTop
	if boxHeight < 0 {
		boxHeight = 0
	}
	first := 0
	if len(s.ring) > boxHeight {
		first = len(s.ring) - boxHeight
	} else {
		boxHeight = len(s.ring)
	}
	for y := 0; y < boxHeight; y++ {
		line := s.ring[first+y]
		r.DrawStringStyled(textX+5, boxTop+y, line.Text, formats[line.Severity])
	}
}

func (s *Station) Quit()      { s.quit = true }
func (s *Station) Done() bool { return s.quit }
