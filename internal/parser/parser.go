package parser

import "git.lost.host/meutraa/termdraw/internal/scene"

type Parser interface {
	Parse(file string) (*scene.Layout, error)
}
