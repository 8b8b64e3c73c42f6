package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ksenzov/perspective-painters/internal/game"
	"github.com/ksenzov/perspective-painters/internal/provider/mock"
)

func newTestModel(prov game.Provider) SessionModel {
	return NewSessionModel(prov, nil, 100, 40, time.Second)
}

// press sends a key through Update and returns the updated model and command.
func press(t *testing.T, m SessionModel, key string) (SessionModel, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, cmd := m.Update(msg)
	model, ok := updated.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", updated)
	}
	return model, cmd
}

func apply(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", updated)
	}
	return model, cmd
}

func TestEnterStartsDefaultScenario(t *testing.T) {
	m := newTestModel(nil)
	if m.Session().Mode() != game.ModeIntro {
		t.Fatalf("initial mode = %v, want intro", m.Session().Mode())
	}

	m, _ = press(t, m, "enter")
	if m.Session().Mode() != game.ModePlaying {
		t.Fatalf("mode after enter = %v, want playing", m.Session().Mode())
	}
	if m.Session().Scenario().Title != game.DefaultScenario().Title {
		t.Errorf("scenario = %q, want the built-in default", m.Session().Scenario().Title)
	}
}

func TestNewStoryRequestsScenario(t *testing.T) {
	prov := &mock.Provider{ScenarioErr: game.ErrTransport}
	m := newTestModel(prov)

	m, cmd := press(t, m, "n")
	if m.Session().Mode() != game.ModeLoading {
		t.Fatalf("mode after n = %v, want loading", m.Session().Mode())
	}
	if cmd == nil {
		t.Fatal("expected a batched command from entering loading")
	}
}

func TestScenarioMsgInstallsProviderScenario(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "n")
	gen := m.Session().Generation()

	sc := &game.Scenario{
		Title:      "The Quiet Pond",
		Goal:       "Help the duck find its way home",
		SceneEmoji: "🦆",
		Order:      []string{"RANGER", "DUCK", "FROG"},
		Characters: map[string]game.Character{
			"RANGER": {Name: "Ranger Riley", Emoji: "🧑", Thought: "The duck looks lost.", Action: game.Action{Name: "Point toward the river"}},
			"DUCK":   {Name: "Daisy the Duck", Emoji: "🦆", Thought: "Where is everyone?", Action: game.Action{Name: "Quack loudly"}},
			"FROG":   {Name: "Fred the Frog", Emoji: "🐸", Thought: "Nice weather today.", Action: game.Action{Name: "Hop on a lily pad"}},
		},
		Solution: "RANGER",
	}

	m, _ = apply(t, m, scenarioMsg{gen: gen, scenario: sc})
	if m.Session().Mode() != game.ModePlaying {
		t.Fatalf("mode = %v, want playing", m.Session().Mode())
	}
	if m.Session().Scenario().Title != "The Quiet Pond" {
		t.Errorf("scenario = %q, want the provider scenario", m.Session().Scenario().Title)
	}
	if m.Session().ActiveKey() != "RANGER" {
		t.Errorf("active key = %q, want first ordered key", m.Session().ActiveKey())
	}
}

func TestScenarioMsgFailureFallsBackToDefault(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "n")
	gen := m.Session().Generation()

	m, _ = apply(t, m, scenarioMsg{gen: gen, err: fmt.Errorf("%w: boom", game.ErrTransport)})
	if m.Session().Mode() != game.ModePlaying {
		t.Fatalf("mode = %v, want playing", m.Session().Mode())
	}
	if m.Session().Scenario().Title != game.DefaultScenario().Title {
		t.Errorf("scenario = %q, want the built-in default", m.Session().Scenario().Title)
	}
}

func TestNumberKeysSelectViewpoints(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")
	order := m.Session().Scenario().Order

	m, _ = press(t, m, "2")
	if m.Session().ActiveKey() != order[1] {
		t.Errorf("active key after 2 = %q, want %q", m.Session().ActiveKey(), order[1])
	}
	m, _ = press(t, m, "3")
	if m.Session().ActiveKey() != order[2] {
		t.Errorf("active key after 3 = %q, want %q", m.Session().ActiveKey(), order[2])
	}
	m, _ = press(t, m, "1")
	if m.Session().ActiveKey() != order[0] {
		t.Errorf("active key after 1 = %q, want %q", m.Session().ActiveKey(), order[0])
	}
}

func TestTabCyclesAndWraps(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")
	order := m.Session().Scenario().Order

	m, _ = press(t, m, "tab")
	if m.Session().ActiveKey() != order[1] {
		t.Errorf("after tab: active = %q, want %q", m.Session().ActiveKey(), order[1])
	}
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "tab")
	if m.Session().ActiveKey() != order[0] {
		t.Errorf("after 3x tab: active = %q, want wrap to %q", m.Session().ActiveKey(), order[0])
	}
	m, _ = press(t, m, "shift+tab")
	if m.Session().ActiveKey() != order[2] {
		t.Errorf("after shift+tab: active = %q, want wrap back to %q", m.Session().ActiveKey(), order[2])
	}
}

func TestSolvingMovesToSuccess(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")

	// The default scenario's first viewpoint is the solution.
	m, _ = press(t, m, "enter")
	if m.Session().Mode() != game.ModeSuccess {
		t.Fatalf("mode = %v, want success", m.Session().Mode())
	}
}

func TestSecondWrongAttemptFiresHintRequest(t *testing.T) {
	prov := &mock.Provider{HintResult: "Look up in the tree!"}
	m := newTestModel(prov)
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "2") // the child is not the solution

	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Fatal("first wrong attempt should not request a hint")
	}
	m, cmd = press(t, m, "enter")
	if cmd == nil {
		t.Fatal("second wrong attempt should request a hint")
	}

	msg := cmd()
	hm, ok := msg.(hintMsg)
	if !ok {
		t.Fatalf("command produced %T, want hintMsg", msg)
	}
	m, _ = apply(t, m, hm)
	if m.Session().CoachHint() != "Look up in the tree!" {
		t.Errorf("coach hint = %q", m.Session().CoachHint())
	}
	if prov.CountHintCalls() != 1 {
		t.Errorf("hint calls = %d, want 1", prov.CountHintCalls())
	}
}

func TestNilProviderHintFallsBackOffline(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "2")
	m, _ = press(t, m, "enter")
	m, cmd := press(t, m, "enter")
	if cmd == nil {
		t.Fatal("expected a hint request")
	}

	m, _ = apply(t, m, cmd())
	if m.Session().CoachHint() != game.FallbackHintOffline {
		t.Errorf("coach hint = %q, want offline fallback", m.Session().CoachHint())
	}
}

func TestStaleHintMsgIgnoredAfterViewChange(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "2")
	m, _ = press(t, m, "enter")
	m, cmd := press(t, m, "enter")
	hm := cmd().(hintMsg)

	// The player moves on before the hint lands.
	m, _ = press(t, m, "3")
	m, _ = apply(t, m, hm)
	if m.Session().CoachHint() != "" {
		t.Errorf("stale hint applied: %q", m.Session().CoachHint())
	}
}

func TestStaleScenarioMsgIgnored(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "n")
	staleGen := m.Session().Generation() - 1

	m, _ = apply(t, m, scenarioMsg{gen: staleGen, err: errors.New("late")})
	if m.Session().Mode() != game.ModeLoading {
		t.Errorf("stale scenario reply changed mode to %v", m.Session().Mode())
	}
}

func TestQuitFromAnyMode(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")
	m, cmd := press(t, m, "q")
	if !m.IsQuitting() {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
}

func TestLoadingIgnoresGameKeys(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "n")

	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "2")
	if m.Session().Mode() != game.ModeLoading {
		t.Errorf("mode = %v, loading should ignore game keys", m.Session().Mode())
	}
}

func TestViewRendersGoalAndCharacters(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")

	out := m.View()
	sc := m.Session().Scenario()
	if !containsAll(out, sc.Title, sc.Goal) {
		t.Errorf("playing view missing title or goal:\n%s", out)
	}
	for _, key := range sc.Order {
		if !containsAll(out, sc.Characters[key].Name) {
			t.Errorf("playing view missing character %q", sc.Characters[key].Name)
		}
	}
}

func TestViewShowsHint(t *testing.T) {
	m := newTestModel(nil)
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "2")
	m, _ = press(t, m, "enter")
	m, cmd := press(t, m, "enter")
	m, _ = apply(t, m, cmd())

	if !containsAll(m.View(), "💡") {
		t.Error("playing view should show the hint box")
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
