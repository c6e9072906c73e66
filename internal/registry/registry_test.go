package registry

import (
	"testing"

	"github.com/mzheleznov/tui-tunnel/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })

	if !Exists("stub-a") {
		t.Fatal("registered game not found")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID = %q, expected stub-a", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected an error for an unknown game ID")
	}
	if Exists("no-such-game") {
		t.Error("Exists reported an unregistered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestListSortedByID(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z", title: "Z"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "B"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("List not sorted: %v", games)
		}
	}

	found := false
	for _, g := range games {
		if g.ID == "stub-b" && g.Title == "B" {
			found = true
		}
	}
	if !found {
		t.Error("List missing a registered game with its title")
	}
}
