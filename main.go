package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.lost.host/meutraa/termdraw/internal/config"
	"git.lost.host/meutraa/termdraw/internal/input"
	"git.lost.host/meutraa/termdraw/internal/region"
	"git.lost.host/meutraa/termdraw/internal/render"
	"github.com/eiannone/keyboard"
)

func main() {
	if err := run(); nil != err {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	// stdout is the screen, so logs only go to a file
	log.SetOutput(io.Discard)
	if *config.LogFile != "" {
		f, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if nil != err {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	width, height, err := render.Size(os.Stdout)
	if nil != err {
		return err
	}

	p := &Program{}
	if err := p.Init(width, height, time.Now()); nil != err {
		return err
	}
	defer p.Deinit()

	events := make(chan input.Event, 16)
	if err := input.ReadInput(events); nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := input.Close(); nil != err {
			log.Println(err, "unable to close keyboard")
		}
	}()

	var r render.Renderer = &render.DefaultRenderer{
		Out:      os.Stdout,
		Draw:     p.Draw,
		Recorder: p.Recorder,
	}
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println(err)
		}
	}()

	// Raw mode turns Ctrl-C into a key press, but a signal from elsewhere
	// still has to leave the terminal usable
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		for range signals {
			events <- input.Event{Key: keyboard.KeyCtrlC}
		}
	}()

	return r.RenderLoop(*config.FramePeriod, func(now time.Time) (*region.Region, bool) {
		if !p.Update(now) {
			return nil, false
		}
		return p.Render(), true
	}, func(deadline time.Time) bool {
		for {
			e, ok := input.Poll(events, deadline)
			if !ok {
				return true
			}
			switch e.Action() {
			case input.Interrupt:
				log.Println("interrupted")
				return false
			case input.Quit:
				p.Quit()
			}
		}
	})
}
