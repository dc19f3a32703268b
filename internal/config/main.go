package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	SceneOrbs    = "orbs"
	SceneStation = "station"
)

var (
	app = kingpin.New("termdraw", "Full screen terminal animations drawn by diffing frames.").Version("0.1.0")

	Scene       = app.Arg("scene", "Animation to run").Default(SceneOrbs).Enum(SceneOrbs, SceneStation)
	FramePeriod = app.Flag("frame-period", "Time between frames").Default("80ms").Short('p').Envar("TERMDRAW_FRAME_PERIOD").Duration()
	LineGlitch  = app.Flag("line-glitch", "Terminal can write the bottom-right cell without scrolling").Default("true").Envar(lineGlitchEnv).Action(setLineGlitch).Bool()
	TrueColour  = app.Flag("truecolour", "Use 24-bit colour ramps").Default("false").Short('t').Envar("TERMDRAW_TRUECOLOUR").Bool()
	Layout      = app.Flag("layout", "Station layout file (YAML)").Default("").Short('l').Envar("TERMDRAW_LAYOUT").String()
	Stats       = app.Flag("stats", "SQLite database recording frame statistics").Default("").Short('s').Envar("TERMDRAW_STATS").String()
	Timezone    = app.Flag("timezone", "Time zone of the station clock").Default("Local").Envar("TERMDRAW_TIMEZONE").String()
	Seed        = app.Flag("seed", "Random seed, 0 picks one from the clock").Default("0").Envar("TERMDRAW_SEED").Int64()
	LogFile     = app.Flag("log", "Write logs to this file").Default("").Envar("TERMDRAW_LOG").String()

	lineGlitchSet bool
)

const lineGlitchEnv = "TERMDRAW_LINE_GLITCH"

func setLineGlitch(*kingpin.ParseContext) error {
	lineGlitchSet = true
	return nil
}

// LineGlitchSet reports whether the last Parse took --line-glitch from the
// command line or the environment rather than its default.
func LineGlitchSet() bool {
	return lineGlitchSet
}

// Parse reads flags from args. Variables in a .env file in the working
// directory are loaded first so they can supply any TERMDRAW_* setting.
func Parse(args []string) error {
	if err := godotenv.Load(); nil != err && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	lineGlitchSet = false
	if _, err := app.Parse(args); nil != err {
		return err
	}
	if _, ok := os.LookupEnv(lineGlitchEnv); ok {
		lineGlitchSet = true
	}
	return nil
}
