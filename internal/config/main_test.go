package config

import (
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	err := Parse([]string{"station", "--no-line-glitch", "-p", "100ms", "--truecolour", "--stats", "frames.db"})
	if nil != err {
		t.Fatal(err)
	}
	if *Scene != SceneStation {
		t.Errorf("scene = %q", *Scene)
	}
	if *LineGlitch {
		t.Error("line glitch still enabled")
	}
	if *FramePeriod != 100*time.Millisecond {
		t.Errorf("frame period = %v", *FramePeriod)
	}
	if !*TrueColour || *Stats != "frames.db" {
		t.Errorf("truecolour = %v, stats = %q", *TrueColour, *Stats)
	}
}

func TestParseDefaults(t *testing.T) {
	if err := Parse(nil); nil != err {
		t.Fatal(err)
	}
	if *Scene != SceneOrbs || !*LineGlitch || *FramePeriod != 80*time.Millisecond || *Seed != 0 {
		t.Errorf("defaults: scene %q, line glitch %v, period %v, seed %d", *Scene, *LineGlitch, *FramePeriod, *Seed)
	}
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("TERMDRAW_SEED", "7")
	t.Setenv("TERMDRAW_TIMEZONE", "UTC")
	if err := Parse(nil); nil != err {
		t.Fatal(err)
	}
	if *Seed != 7 || *Timezone != "UTC" {
		t.Errorf("seed %d, timezone %q", *Seed, *Timezone)
	}
}

func TestParseRejectsUnknownScene(t *testing.T) {
	if err := Parse([]string{"tetris"}); nil == err {
		t.Error("unknown scene accepted")
	}
}

func TestParseStartsClean(t *testing.T) {
	err := Parse([]string{"--truecolour", "--stats", "a.db", "--layout", "a.yaml", "--log", "a.log"})
	if nil != err {
		t.Fatal(err)
	}
	if err := Parse(nil); nil != err {
		t.Fatal(err)
	}
	if *TrueColour || *Stats != "" || *Layout != "" || *LogFile != "" {
		t.Errorf("values kept: truecolour %v, stats %q, layout %q, log %q", *TrueColour, *Stats, *Layout, *LogFile)
	}
}

var lineGlitchSetTests = []struct {
	args     []string
	env      string
	expected bool
}{
	{nil, "", false},
	{[]string{"--line-glitch"}, "", true},
	{[]string{"--no-line-glitch"}, "", true},
	{nil, "false", true},
}

func TestLineGlitchSet(t *testing.T) {
	for _, test := range lineGlitchSetTests {
		if test.env != "" {
			t.Setenv("TERMDRAW_LINE_GLITCH", test.env)
		}
		if err := Parse(test.args); nil != err {
			t.Fatal(err)
		}
		if got := LineGlitchSet(); got != test.expected {
			t.Errorf("%v env %q: LineGlitchSet() = %v", test.args, test.env, got)
		}
	}
}
