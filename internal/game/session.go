package game

import "errors"

// Mode is the current UI mode of a session.
type Mode int

const (
	// ModeIntro is the initial title screen.
	ModeIntro Mode = iota
	// ModePlaying is the active puzzle.
	ModePlaying
	// ModeSuccess is shown after the solving action was performed.
	ModeSuccess
	// ModeLoading is shown while a new scenario is being generated.
	// It is only entered from Intro or Success and always leaves to Playing.
	ModeLoading
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModePlaying:
		return "playing"
	case ModeSuccess:
		return "success"
	case ModeLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// HintAfterAttempts is the wrong-attempt count at which a coaching hint is
// requested. Exactly one request fires when the count reaches this value;
// further wrong attempts stay quiet until the viewpoint or scenario changes.
const HintAfterAttempts = 2

// Fixed coach lines used when hint generation fails.
const (
	// FallbackHintMalformed is shown when the provider answered but the
	// reply was empty or unusable.
	FallbackHintMalformed = "Hmm, look closely! One of these painters sees exactly what the goal needs."

	// FallbackHintOffline is shown when the provider could not be reached.
	FallbackHintOffline = "You're doing great! Try another point of view and see what changes."
)

// ActionResult reports what happened when the active character performed
// their action.
type ActionResult struct {
	// Solved is true when the active viewpoint was the scenario's solution;
	// the session is now in Success mode.
	Solved bool

	// WrongAttempts is the wrong-attempt count after this action.
	WrongAttempts int

	// NeedHint instructs the caller to fire exactly one hint request,
	// tagged with HintGen so a late reply can be discarded.
	NeedHint bool

	// HintGen is the generation the hint request belongs to.
	HintGen uint64
}

// Session is the single mutable game state: current mode, active scenario,
// active viewpoint, wrong-attempt counter, and coach hint. It is created
// once and mutated in place for the life of the process.
//
// Session is not safe for concurrent use. Callers doing asynchronous
// provider requests must serialize all writes (the Bubble Tea update loop
// does this naturally) and route responses through FinishLoading/ApplyHint,
// which discard anything from a stale generation.
type Session struct {
	mode          Mode
	scenario      *Scenario
	activeKey     string
	wrongAttempts int
	coachHint     string

	// generation increments whenever the scenario or viewpoint changes, so
	// that responses to superseded requests are never applied.
	generation uint64
}

// NewSession creates a session in Intro mode with no scenario.
func NewSession() *Session {
	return &Session{mode: ModeIntro}
}

// Mode returns the current UI mode.
func (s *Session) Mode() Mode { return s.mode }

// Scenario returns the active scenario, nil before Start.
func (s *Session) Scenario() *Scenario { return s.scenario }

// ActiveKey returns the key of the active viewpoint.
func (s *Session) ActiveKey() string { return s.activeKey }

// ActiveCharacter returns the active character. The zero value is returned
// before Start.
func (s *Session) ActiveCharacter() Character {
	if s.scenario == nil {
		return Character{}
	}
	return s.scenario.Characters[s.activeKey]
}

// WrongAttempts returns the wrong-attempt count for the active viewpoint.
func (s *Session) WrongAttempts() int { return s.wrongAttempts }

// CoachHint returns the current coach hint, empty if none is shown.
func (s *Session) CoachHint() string { return s.coachHint }

// Generation returns the current generation tag. Asynchronous requests
// carry it so their responses can be matched against the state they were
// issued for.
func (s *Session) Generation() uint64 { return s.generation }

// Start moves Intro -> Playing with the built-in default scenario.
// It does nothing outside Intro mode.
func (s *Session) Start() {
	if s.mode != ModeIntro {
		return
	}
	s.install(DefaultScenario())
}

// SelectViewpoint makes key the active viewpoint. Selecting resets the
// wrong-attempt counter, clears the hint, and invalidates any in-flight
// hint request. Unknown keys and calls outside Playing mode are rejected.
func (s *Session) SelectViewpoint(key string) bool {
	if s.mode != ModePlaying {
		return false
	}
	if _, ok := s.scenario.Characters[key]; !ok {
		return false
	}
	if key == s.activeKey {
		return true
	}
	s.activeKey = key
	s.wrongAttempts = 0
	s.coachHint = ""
	s.generation++
	return true
}

// PerformAction performs the active character's action. When the active
// viewpoint is the solution the session moves to Success regardless of
// prior wrong attempts. Otherwise the wrong-attempt counter increments,
// and on exactly the HintAfterAttempts'th wrong attempt the result asks
// the caller to request one coaching hint.
func (s *Session) PerformAction() ActionResult {
	if s.mode != ModePlaying {
		return ActionResult{WrongAttempts: s.wrongAttempts}
	}
	if s.activeKey == s.scenario.Solution {
		s.mode = ModeSuccess
		return ActionResult{Solved: true, WrongAttempts: s.wrongAttempts}
	}
	s.wrongAttempts++
	return ActionResult{
		WrongAttempts: s.wrongAttempts,
		NeedHint:      s.wrongAttempts == HintAfterAttempts,
		HintGen:       s.generation,
	}
}

// BeginLoading moves to Loading mode for a scenario request and returns the
// generation the request must carry. Loading is reachable only from Intro
// and Success; ok is false otherwise and no transition happens.
func (s *Session) BeginLoading() (gen uint64, ok bool) {
	if s.mode != ModeIntro && s.mode != ModeSuccess {
		return 0, false
	}
	s.mode = ModeLoading
	s.coachHint = ""
	return s.generation, true
}

// FinishLoading completes a scenario request. The transition to Playing is
// unconditional for a current-generation response: a valid scenario is
// normalized and installed, anything else (transport failure, parse
// failure, validation rejection) installs the built-in default. A stale
// generation is discarded without touching state.
//
// The return value reports whether the provider's scenario was the one
// installed, so callers can archive accepted scenarios.
func (s *Session) FinishLoading(gen uint64, sc *Scenario, err error) bool {
	if s.mode != ModeLoading || gen != s.generation {
		return false
	}
	if err == nil && sc != nil {
		sc.Normalize()
		if sc.Validate() == nil {
			s.install(sc)
			return true
		}
	}
	s.install(DefaultScenario())
	return false
}

// ApplyHint completes a hint request. A reply for the current generation
// sets the coach hint to the returned text, or to one of the two fixed
// encouragement lines when the request failed. Stale replies (the player
// already changed viewpoint or scenario) are discarded. The mode never
// changes.
func (s *Session) ApplyHint(gen uint64, text string, err error) {
	if gen != s.generation || s.mode != ModePlaying {
		return
	}
	switch {
	case err == nil && text != "":
		s.coachHint = text
	case err != nil && errors.Is(err, ErrTransport):
		s.coachHint = FallbackHintOffline
	default:
		s.coachHint = FallbackHintMalformed
	}
}

// install makes sc the active scenario: first ordered key active, counters
// and hint reset, mode Playing, and a fresh generation so stale responses
// die.
func (s *Session) install(sc *Scenario) {
	s.scenario = sc
	s.activeKey = sc.FirstKey()
	s.wrongAttempts = 0
	s.coachHint = ""
	s.mode = ModePlaying
	s.generation++
}
