package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
)

type stubGame struct {
	id    string
	title string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func registerStub(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id, title: title} })
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "zz_stub", "Stub Mode")

	if !Exists("zz_stub") {
		t.Fatal("Exists(zz_stub) = false")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" || g.Title() != "Stub Mode" {
		t.Errorf("got %s/%s", g.ID(), g.Title())
	}

	other, _ := Create("zz_stub")
	g.Step(core.NewInputFrame())
	if other.State().Score != 0 {
		t.Error("Create must return independent instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_mode")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no_such_mode") {
		t.Errorf("error %q should name the id", err)
	}
	if Exists("no_such_mode") {
		t.Error("Exists(no_such_mode) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "zz_dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	registerStub(t, "zz_b", "B")
	registerStub(t, "zz_a", "A")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}

	titles := map[string]string{}
	for _, info := range list {
		titles[info.ID] = info.Title
	}
	if titles["zz_a"] != "A" || titles["zz_b"] != "B" {
		t.Errorf("titles = %v", titles)
	}
}
