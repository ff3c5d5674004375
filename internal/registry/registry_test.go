package registry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/core"
)

type stubGame struct {
	id     string
	logger *log.Logger
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) SetLogger(l *log.Logger) { g.logger = l }

func TestRegisterAndList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	joined := strings.Join(ids, ",")
	if !strings.Contains(joined, "aa-stub") || !strings.Contains(joined, "zz-stub") {
		t.Fatalf("List() = %v", ids)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
	for _, info := range list {
		if info.ID == "aa-stub" && info.Title != "Stub aa-stub" {
			t.Errorf("title = %q", info.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}

func TestCreate(t *testing.T) {
	Register("log-stub", func() Game { return &stubGame{id: "log-stub"} })

	var buf bytes.Buffer
	logger := log.New(&buf)

	g, err := Create("log-stub", logger)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.(*stubGame).logger != logger {
		t.Error("Create should pass the logger to games that accept one")
	}

	g, err = Create("log-stub", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.(*stubGame).logger != nil {
		t.Error("nil logger should not be passed on")
	}

	if _, err := Create("missing", nil); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
	if !Exists("log-stub") || Exists("missing") {
		t.Error("Exists reports wrong result")
	}
}
