package game

import (
	"context"
	"errors"
)

// Provider generates new scenarios and coaching hints from a remote
// language-model service. The session never assumes a provider is reliable
// or well-formed: scenario output is validated before install, and every
// failure falls back to built-in content.
//
// Implementations must wrap their failures in ErrTransport or ErrMalformed
// so the session can pick the right fallback. Structural validation of a
// scenario is the session's job, not the provider's.
type Provider interface {
	// GenerateScenario requests one new scenario. The returned scenario is
	// parsed but not validated.
	GenerateScenario(ctx context.Context) (*Scenario, error)

	// GenerateHint requests a short encouragement referencing the current
	// goal and viewpoint.
	GenerateHint(ctx context.Context, req HintRequest) (string, error)
}

// HintRequest carries the context a hint prompt is built from.
type HintRequest struct {
	Goal             string
	CharacterName    string
	CharacterThought string
}

// Failure kinds for provider interactions. Implementations wrap these with
// fmt.Errorf("%w: ...") so callers can branch with errors.Is.
var (
	// ErrTransport means the request could not be sent or the response
	// could not be retrieved.
	ErrTransport = errors.New("provider transport failure")

	// ErrMalformed means a response arrived but was not usable: invalid
	// JSON, no candidates, or an empty reply.
	ErrMalformed = errors.New("provider malformed response")
)
