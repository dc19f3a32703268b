package parser

import (
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/termdraw/internal/scene"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultLayout(t *testing.T) {
	var p Parser = &DefaultParser{}
	layout, err := p.Parse("")
	if nil != err {
		t.Fatal(err)
	}
	if layout.Title == "" || len(layout.Tasks) < 10 || layout.ArtWidth() != 14 {
		t.Errorf("title %q, %d tasks, art width %d", layout.Title, len(layout.Tasks), layout.ArtWidth())
	}
}

var decodeTests = []struct {
	name     string
	yaml     string
	expected *scene.Layout
	fails    bool
}{
	{
		name: "trims tasks and art",
		yaml: "title: T\ntasks: [' a ', '', b]\nart: ['#', '', '  ']\n",
		expected: &scene.Layout{
			Title: "T",
			Tasks: []string{"a", "b"},
			Art:   []string{"#"},
		},
	},
	{name: "no tasks", yaml: "title: T\n", fails: true},
	{name: "blank tasks", yaml: "tasks: ['  ']\n", fails: true},
	{name: "not yaml", yaml: "tasks: [\n", fails: true},
}

func TestDecode(t *testing.T) {
	p := &DefaultParser{}
	for _, test := range decodeTests {
		layout, err := p.decode([]byte(test.yaml))
		if test.fails {
			if nil == err {
				t.Errorf("%s: no error", test.name)
			}
			continue
		}
		if nil != err {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if diff := cmp.Diff(test.expected, layout); diff != "" {
			t.Errorf("%s (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestParseFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(file, []byte("subtitle: S\ntasks: [x]\n"), 0o644); nil != err {
		t.Fatal(err)
	}
	layout, err := (&DefaultParser{}).Parse(file)
	if nil != err {
		t.Fatal(err)
	}
	if layout.Subtitle != "S" || len(layout.Tasks) != 1 {
		t.Errorf("got %+v", layout)
	}

	if _, err := (&DefaultParser{}).Parse(filepath.Join(t.TempDir(), "missing.yaml")); nil == err {
		t.Error("missing file parsed")
	}
}
