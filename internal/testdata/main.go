package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/termdraw/internal/region"
)

type span struct {
	X, Y    int
	Text    string
	Bold    bool
	Reverse bool
	Fg      *uint8 // 256 colour index
	Bg      *uint8
}

type frame struct {
	Rows  []string
	Spans []span
}

// Frames is a short animation on a 12x4 grid: text moving, restyling and
// disappearing between frames.
const frames = `[
	{"Rows": ["hello       ", "            ", "  status: ok", "            "]},
	{"Rows": ["hello world ", "            ", "  status: ok", "            "],
	 "Spans": [{"X": 6, "Y": 0, "Text": "world", "Bold": true, "Fg": 208}]},
	{"Rows": ["hello world ", "  > x       ", "  status: ok", "           #"],
	 "Spans": [{"X": 2, "Y": 2, "Text": "status", "Reverse": true},
	           {"X": 0, "Y": 3, "Text": "            ", "Bg": 22}]},
	{"Rows": ["h llo w rld ", "  > x y     ", "  STATUS: ok", "#          #"],
	 "Spans": [{"X": 2, "Y": 2, "Text": "STATUS", "Fg": 1, "Bg": 15}]},
	{"Rows": ["            ", "            ", "            ", "            "]}
]`

// Lines builds a region of the given size holding rows in the default style.
func Lines(width, height int, rows ...string) *region.Region {
	r := region.New(width, height)
	for y, row := range rows {
		r.DrawString(0, y, row)
	}
	return r
}

// GetFrames decodes the fixture animation.
func GetFrames() ([]*region.Region, error) {
	var fs []frame
	if err := json.Unmarshal([]byte(frames), &fs); nil != err {
		return nil, err
	}
	regions := make([]*region.Region, 0, len(fs))
	for _, f := range fs {
		r := Lines(12, 4, f.Rows...)
		for _, s := range f.Spans {
			format := region.Format{Bold: s.Bold, Reverse: s.Reverse}
			if nil != s.Fg {
				format.Fg = region.Indexed256(*s.Fg)
			}
			if nil != s.Bg {
				format.Bg = region.Indexed256(*s.Bg)
			}
			r.DrawStringStyled(s.X, s.Y, s.Text, format)
		}
		regions = append(regions, r)
	}
	return regions, nil
}
