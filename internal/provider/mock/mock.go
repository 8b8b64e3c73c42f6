// Package mock provides an in-memory [game.Provider] for unit tests.
//
// The mock is safe for concurrent use, records calls, and exposes exported
// fields for configuring return values:
//
//	prov := &mock.Provider{
//	    ScenarioResult: sc,
//	    HintResult:     "try looking up!",
//	}
package mock

import (
	"context"
	"sync"

	"github.com/ksenzov/perspective-painters/internal/game"
)

// HintCall records the arguments of a single GenerateHint invocation.
type HintCall struct {
	Req game.HintRequest
}

// Provider is a mock implementation of [game.Provider].
type Provider struct {
	mu sync.Mutex

	// ScenarioResult is returned by GenerateScenario when ScenarioErr is nil.
	ScenarioResult *game.Scenario

	// ScenarioErr is returned by GenerateScenario.
	ScenarioErr error

	// HintResult is returned by GenerateHint when HintErr is nil.
	HintResult string

	// HintErr is returned by GenerateHint.
	HintErr error

	// ScenarioCalls counts GenerateScenario invocations.
	ScenarioCalls int

	// HintCalls records all GenerateHint invocations.
	HintCalls []HintCall
}

var _ game.Provider = (*Provider)(nil)

// GenerateScenario implements game.Provider.
func (p *Provider) GenerateScenario(ctx context.Context) (*game.Scenario, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ScenarioCalls++
	if p.ScenarioErr != nil {
		return nil, p.ScenarioErr
	}
	return p.ScenarioResult, nil
}

// GenerateHint implements game.Provider.
func (p *Provider) GenerateHint(ctx context.Context, req game.HintRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.HintCalls = append(p.HintCalls, HintCall{Req: req})
	if p.HintErr != nil {
		return "", p.HintErr
	}
	return p.HintResult, nil
}

// CountHintCalls returns the number of recorded GenerateHint invocations.
func (p *Provider) CountHintCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.HintCalls)
}
