package registry

import (
	"testing"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

type stubGame struct {
	id     string
	state  core.GameState
	report func(int)
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.state = core.GameState{Phase: core.PhaseIdle} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }
func (g *stubGame) OnGameOver(fn func(int))              { g.report = fn }

func registerStub(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id} })
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "stub-a")

	if !Exists("stub-a") {
		t.Fatal("Exists() = false, expected true")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	info, ok := Lookup("stub-a")
	if !ok || info.Title != "Stub stub-a" {
		t.Errorf("Lookup() = %+v, %v, expected the stub title", info, ok)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("Create() for an unknown id should fail")
	}
	if Exists("nope") {
		t.Error("Exists() for an unknown id should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "stub-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestListSorted(t *testing.T) {
	registerStub(t, "stub-z")
	registerStub(t, "stub-b")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	registerStub(t, "stub-fresh")

	a, _ := Create("stub-fresh")
	b, _ := Create("stub-fresh")
	if a == b {
		t.Error("Create() should return a new instance every call")
	}
}
