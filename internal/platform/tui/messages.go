package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ksenzov/perspective-painters/internal/game"
)

// scenarioMsg carries the outcome of an asynchronous scenario request.
// The generation tag lets the session discard a reply the player has
// already moved past.
type scenarioMsg struct {
	gen      uint64
	scenario *game.Scenario
	err      error
}

// hintMsg carries the outcome of an asynchronous hint request.
type hintMsg struct {
	gen  uint64
	text string
	err  error
}

// requestScenario returns a command that asks the provider for a new
// scenario. The command runs off the update loop; only the resulting
// message touches session state.
func requestScenario(prov game.Provider, timeout time.Duration, gen uint64) tea.Cmd {
	return func() tea.Msg {
		if prov == nil {
			return scenarioMsg{gen: gen, err: fmt.Errorf("%w: no provider configured", game.ErrTransport)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		sc, err := prov.GenerateScenario(ctx)
		return scenarioMsg{gen: gen, scenario: sc, err: err}
	}
}

// requestHint returns a command that asks the provider for a coaching hint.
func requestHint(prov game.Provider, timeout time.Duration, gen uint64, req game.HintRequest) tea.Cmd {
	return func() tea.Msg {
		if prov == nil {
			return hintMsg{gen: gen, err: fmt.Errorf("%w: no provider configured", game.ErrTransport)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := prov.GenerateHint(ctx, req)
		return hintMsg{gen: gen, text: text, err: err}
	}
}
