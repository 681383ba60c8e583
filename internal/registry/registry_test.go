package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/infestation/internal/core"
)

type stubScenario struct {
	id    string
	state core.GameState
}

func (s *stubScenario) ID() string               { return s.id }
func (s *stubScenario) Title() string            { return "Stub " + s.id }
func (s *stubScenario) Reset(core.RuntimeConfig) { s.state = core.GameState{} }
func (s *stubScenario) Render(*core.Screen)      {}
func (s *stubScenario) State() core.GameState    { return s.state }
func (s *stubScenario) Step(core.InputFrame) core.StepResult {
	s.state.Tick++
	return core.StepResult{State: s.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Scenario { return &stubScenario{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}
	s, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.ID() != "stub_a" {
		t.Errorf("Create().ID() = %q, expected %q", s.ID(), "stub_a")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("List() title = %q, expected %q", info.Title, "Stub stub_a")
			}
		}
	}
	if !found {
		t.Error("List() missing stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	if !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("Create() error = %v, expected ErrUnknownScenario", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Scenario { return &stubScenario{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() duplicate expected panic")
		}
	}()
	Register("stub_dup", func() Scenario { return &stubScenario{id: "stub_dup"} })
}
