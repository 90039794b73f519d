package registry

import (
	"testing"

	"github.com/vovakirdan/salad-chef/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                { return g.id }
func (g stubGame) Title() string                             { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)                  {}
func (g stubGame) Step(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                       {}
func (g stubGame) State() core.GameState                     { return core.GameState{} }
func (g stubGame) Players() []core.PlayerID                  { return []core.PlayerID{core.Player1} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{"stub_b"} })
	Register("stub_a", func() Game { return stubGame{"stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist")
	}
	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID = %q, want stub_b", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("expected an error for an unknown game")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] > ids[1] {
		t.Errorf("List not sorted: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{"stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{"stub_dup"} })
}
