package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"git.lost.host/meutraa/termdraw/internal/config"
	"git.lost.host/meutraa/termdraw/internal/draw"
	"git.lost.host/meutraa/termdraw/internal/parser"
	"git.lost.host/meutraa/termdraw/internal/region"
	"git.lost.host/meutraa/termdraw/internal/scene"
	"git.lost.host/meutraa/termdraw/internal/stats"
	"git.lost.host/meutraa/termdraw/internal/theme"
)

type Program struct {
	Parser   parser.Parser
	Recorder stats.Recorder // nil unless --stats is given
	Theme    theme.Theme

	Draw *draw.Draw

	scene   scene.Scene
	frame   *region.Region
	session stats.Session
}

func (p *Program) Init(width, height int, now time.Time) error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	if *config.TrueColour {
		p.Theme = theme.NewTrueColourTheme()
	} else {
		p.Theme = &theme.DefaultTheme{}
	}

	seed := *config.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	log.Println("seed", seed)
	rng := rand.New(rand.NewSource(seed))

	p.Draw = draw.New(width, height)
	p.Draw.SetLineGlitch(*config.LineGlitch)
	p.frame = region.New(width, height)

	switch *config.Scene {
	case config.SceneStation:
		layout, err := p.Parser.Parse(*config.Layout)
		if nil != err {
			return err
		}
		location, err := time.LoadLocation(*config.Timezone)
		if nil != err {
			return fmt.Errorf("unable to load time zone: %w", err)
		}
		hostname, err := os.Hostname()
		if nil != err {
			log.Println(err, "unable to get hostname")
			hostname = "localhost"
		}
		p.scene = scene.NewStation(layout, p.Theme, location, hostname, rng)
		// The bands reach the bottom-right cell, so unless the terminal is
		// known to handle it that cell is left alone
		if !config.LineGlitchSet() {
			p.Draw.SetLineGlitch(false)
		}
		// Paint the whole screen in the band colour before the first frame,
		// so the area outside the bands never flashes the terminal default
		p.Draw.QueuePreamble(draw.Style(region.Format{Bg: p.Theme.Palette().GreenDark}) + "\033[2J")
	default:
		p.scene = scene.NewOrbs(width, height, p.Theme, rng)
	}

	if *config.Stats != "" {
		recorder := &stats.DefaultRecorder{}
		if err := recorder.Init(*config.Stats); nil != err {
			return fmt.Errorf("unable to open stats database: %w", err)
		}
		p.Recorder = recorder
	}
	p.session = stats.Session{
		Scene:   *config.Scene,
		Width:   width,
		Height:  height,
		Started: now,
	}
	return nil
}

// Update advances the scene, reporting false once it has finished.
func (p *Program) Update(now time.Time) bool {
	p.scene.Update(now)
	return !p.scene.Done()
}

func (p *Program) Render() *region.Region {
	p.scene.Render(p.frame)
	return p.frame
}

func (p *Program) Quit() {
	p.scene.Quit()
}

// Deinit stores the session statistics and logs the history of the scene.
func (p *Program) Deinit() {
	if nil == p.Recorder {
		return
	}
	defer p.Recorder.Deinit()

	if err := p.Recorder.Save(p.session); nil != err {
		log.Println(err, "unable to save session")
		return
	}
	history, err := p.Recorder.Load(p.session.Scene)
	if nil != err {
		log.Println(err, "unable to load history")
		return
	}
	for _, h := range history {
		s := stats.Summarise(h.Frames)
		log.Printf("%v %dx%d: %d frames, %.1f bytes/frame (max %d), %d cells, %d moves, %d styles\n",
			h.Started.Format(time.RFC3339), h.Width, h.Height,
			s.Frames, s.BytesPerFrame(), s.MaxBytes, s.Cells, s.Moves, s.Styles)
	}
}
