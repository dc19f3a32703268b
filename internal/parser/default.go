package parser

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"git.lost.host/meutraa/termdraw/internal/scene"
	"gopkg.in/yaml.v3"
)

//go:embed station.yaml
var defaultLayout []byte

type DefaultParser struct{}

// Parse reads a station layout. An empty file name selects the built in
// layout.
func (p *DefaultParser) Parse(file string) (*scene.Layout, error) {
	data := defaultLayout
	if file != "" {
		var err error
		data, err = os.ReadFile(file)
		if nil != err {
			return nil, fmt.Errorf("unable to read layout: %w", err)
		}
	}
	return p.decode(data)
}

func (p *DefaultParser) decode(data []byte) (*scene.Layout, error) {
	var layout scene.Layout
	if err := yaml.Unmarshal(data, &layout); nil != err {
		return nil, fmt.Errorf("unable to parse layout: %w", err)
	}

	tasks := layout.Tasks[:0]
	for _, task := range layout.Tasks {
		task = strings.TrimSpace(task)
		if task != "" {
			tasks = append(tasks, task)
		}
	}
	layout.Tasks = tasks
	if len(layout.Tasks) == 0 {
		return nil, errors.New("layout has no tasks")
	}

	// Trailing blank art lines would only push the art upwards
	for len(layout.Art) > 0 && strings.TrimSpace(layout.Art[len(layout.Art)-1]) == "" {
		layout.Art = layout.Art[:len(layout.Art)-1]
	}
	return &layout, nil
}
