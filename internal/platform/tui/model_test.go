package tui

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/progress"
	"github.com/vovakirdan/omnitrix-arcade/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	if r == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type stubGame struct {
	frames  []core.InputFrame
	resets  int
	resized []int
	state   core.GameState
	result  *core.MissionResult
	save    progress.SaveData
	renders int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) { g.renders++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Resize(w, h int) { g.resized = append(g.resized, w, h) }
func (g *stubGame) UpdateSave(s progress.SaveData) { g.save = s }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := core.StepResult{State: g.state, Result: g.result}
	g.result = nil
	return res
}

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestLatch(t *testing.T) {
	t.Run("held actions last holdTicks", func(t *testing.T) {
		l := NewInputLatch(3)
		l.Press(core.ActionLeft)
		for i := 0; i < 3; i++ {
			if !l.Frame().Has(core.ActionLeft) {
				t.Fatalf("tick %d lost the held action", i)
			}
		}
		if l.Frame().Has(core.ActionLeft) {
			t.Error("held action outlived its latch")
		}
	})

	t.Run("one-shot actions last one tick", func(t *testing.T) {
		l := NewInputLatch(3)
		l.Press(core.ActionOmnitrix)
		l.Choose(2)
		f := l.Frame()
		if !f.Has(core.ActionOmnitrix) || f.Choice != 2 {
			t.Fatalf("frame = %+v", f)
		}
		f = l.Frame()
		if f.Has(core.ActionOmnitrix) || f.Choice != 0 {
			t.Errorf("one-shot repeated: %+v", f)
		}
	})

	t.Run("opposite direction cancels", func(t *testing.T) {
		l := NewInputLatch(5)
		l.Press(core.ActionLeft)
		l.Press(core.ActionRight)
		f := l.Frame()
		if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
			t.Errorf("frame = %+v", f.Actions)
		}
	})

	t.Run("release", func(t *testing.T) {
		l := NewInputLatch(5)
		l.Press(core.ActionUp)
		l.Press(core.ActionPause)
		l.Release()
		if f := l.Frame(); len(f.Actions) != 0 {
			t.Errorf("frame after release = %+v", f.Actions)
		}
	})
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		actions []core.Action
		choice  int
	}{
		{"a moves left", runeKey('a'), []core.Action{core.ActionLeft}, 0},
		{"space attacks", runeKey(' '), []core.Action{core.ActionAttack}, 0},
		{"w moves up and jumps", runeKey('w'), []core.Action{core.ActionUp, core.ActionJump}, 0},
		{"digit picks", runeKey('3'), nil, 3},
		{"tab transforms", tea.KeyMsg{Type: tea.KeyTab}, []core.Action{core.ActionOmnitrix}, 0},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}, 0},
		{"escape backs", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionBack}, 0},
		{"unbound", runeKey('z'), nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, choice := km.MapKey(tt.msg)
			if !slices.Equal(actions, tt.actions) || choice != tt.choice {
				t.Errorf("MapKey = %v, %d; want %v, %d", actions, choice, tt.actions, tt.choice)
			}
		})
	}
}

func TestModelKeysReachGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testConfig, Options{HoldTicks: 2})
	m.Init()

	m = update(t, m, runeKey('d'))
	m = update(t, m, runeKey('o'))
	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg{})
	}

	if len(g.frames) != 3 {
		t.Fatalf("steps = %d", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionRight) || !g.frames[0].Has(core.ActionOmnitrix) {
		t.Errorf("first frame = %v", g.frames[0].Actions)
	}
	if !g.frames[1].Has(core.ActionRight) || g.frames[1].Has(core.ActionOmnitrix) {
		t.Errorf("second frame = %v", g.frames[1].Actions)
	}
	if g.frames[2].Has(core.ActionRight) {
		t.Errorf("third frame = %v", g.frames[2].Actions)
	}
}

func TestModelResize(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testConfig, Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize reset the game: resets = %d", g.resets)
	}
	if !slices.Equal(g.resized, []int{120, 40}) {
		t.Errorf("resized = %v", g.resized)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testConfig, Options{})
	m.Init()

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during play: resets = %d", g.resets)
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want restart after game over", g.resets)
	}
}

func TestModelRecordsResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	g := &stubGame{}
	rec := NewRecorder(store, nil, "hard", true)
	m := NewModel(g, testConfig, Options{Recorder: rec})
	m.Init()

	g.state = core.GameState{Score: 1200, GameOver: true}
	g.result = &core.MissionResult{MissionID: "bellwood_0", Alien: "heatblast", Score: 1200, Stars: 2, Completed: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Mode != "stub" || runs[0].Difficulty != "hard" || runs[0].Stars != 2 {
		t.Fatalf("runs = %+v", runs)
	}

	save, err := store.LoadSave()
	if err != nil {
		t.Fatal(err)
	}
	if save.Stars("bellwood_0") != 2 {
		t.Errorf("saved stars = %d", save.Stars("bellwood_0"))
	}
	if g.save.Stars("bellwood_0") != 2 {
		t.Error("game did not receive the updated save")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 1200 {
		t.Errorf("scores = %+v, want one entry", scores)
	}
}

func TestRecorderWithoutPersistence(t *testing.T) {
	rec := NewRecorder(nil, nil, "", false)
	unlocked := rec.RecordResult("arena", core.MissionResult{MissionID: "bellwood_0", Stars: 1, Completed: true})
	if rec.Save().Stars("bellwood_0") != 1 {
		t.Error("in-memory save not advanced")
	}
	if len(unlocked) != 0 && !rec.Save().HasAlien(unlocked[0]) {
		t.Errorf("unlocked %v missing from save", unlocked)
	}

	if got := rec.RecordResult("classic", core.MissionResult{MissionID: "classic_1", Completed: true}); got != nil {
		t.Errorf("side-scroller result unlocked %v", got)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testConfig, Options{AllowBack: true})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back during play")
	}
	g.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused ignored")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColor(0, 0, 'a', "#ff0000")
	s.SetColor(1, 0, 'b', "#ff0000")
	s.SetColor(2, 0, 'c', core.ColorGreen)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen lost %q: %q", want, out)
		}
	}
}
