package input

import (
	"log"
	"time"

	"github.com/eiannone/keyboard"
)

type Action uint8

const (
	None Action = iota
	// Quit asks the scene to wind down
	Quit
	// Interrupt leaves immediately
	Interrupt
)

type Event struct {
	Rune rune
	Key  keyboard.Key
}

func (e Event) Action() Action {
	switch {
	case e.Key == keyboard.KeyCtrlC, e.Key == keyboard.KeyEsc:
		return Interrupt
	case e.Rune == 'q', e.Rune == 'Q':
		return Quit
	}
	return None
}

// ReadInput opens the keyboard and forwards key presses to events until the
// keyboard is closed or fails.
func ReadInput(events chan<- Event) error {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return err
	}
	go func() {
		for key := range keys {
			if nil != key.Err {
				log.Println(key.Err, "unable to read keyboard input")
				return
			}
			events <- Event{Rune: key.Rune, Key: key.Key}
		}
	}()
	return nil
}

// Close releases the keyboard and restores its input mode.
func Close() error {
	return keyboard.Close()
}

// Poll waits for the next event until deadline. It reports false when the
// deadline passed or the channel closed first.
func Poll(events <-chan Event, deadline time.Time) (Event, bool) {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		select {
		case e, ok := <-events:
			return e, ok
		default:
			return Event{}, false
		}
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case e, ok := <-events:
		return e, ok
	case <-timer.C:
		return Event{}, false
	}
}
