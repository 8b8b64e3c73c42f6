package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ksenzov/perspective-painters/internal/game"
	"github.com/ksenzov/perspective-painters/internal/storage"
)

// SessionModel is the Bubble Tea model driving one game session. All state
// transitions go through the embedded *game.Session; provider requests run
// as commands and come back as messages, so every write to the session
// happens on the single update goroutine.
type SessionModel struct {
	session   *game.Session
	prov      game.Provider
	store     *storage.Store
	timeout   time.Duration
	keyMapper *KeyMapper
	spin      spinner.Model
	width     int
	height    int
	quitting  bool
}

// NewSessionModel creates a session model. prov and store may be nil: with
// a nil provider every generation request falls back to the built-in
// scenario, and a nil store just skips history recording.
func NewSessionModel(prov game.Provider, store *storage.Store, width, height int, timeout time.Duration) SessionModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
	)

	return SessionModel{
		session:   game.NewSession(),
		prov:      prov,
		store:     store,
		timeout:   timeout,
		keyMapper: NewKeyMapper(),
		spin:      sp,
		width:     width,
		height:    height,
	}
}

// Session exposes the underlying state machine, mainly for tests.
func (m SessionModel) Session() *game.Session {
	return m.session
}

// IsQuitting returns true once the player asked to leave.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Init initializes the model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.session.Mode() != game.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scenarioMsg:
		return m.handleScenario(msg)

	case hintMsg:
		m.session.ApplyHint(msg.gen, msg.text, msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch m.session.Mode() {
	case game.ModeIntro:
		switch action {
		case ActionConfirm:
			m.session.Start()
			return m, nil
		case ActionNewStory:
			return m.beginLoading()
		}

	case game.ModePlaying:
		return m.handlePlayingAction(action)

	case game.ModeSuccess:
		if action == ActionConfirm || action == ActionNewStory {
			return m.beginLoading()
		}

	case game.ModeLoading:
		// Only quit is honored while a scenario is being painted.
	}

	return m, nil
}

// handlePlayingAction routes an action while a puzzle is active.
func (m SessionModel) handlePlayingAction(action Action) (tea.Model, tea.Cmd) {
	sc := m.session.Scenario()

	switch action {
	case ActionNextView:
		m.session.SelectViewpoint(m.neighborKey(1))
	case ActionPrevView:
		m.session.SelectViewpoint(m.neighborKey(-1))
	case ActionView1, ActionView2, ActionView3:
		idx := int(action - ActionView1)
		if idx < len(sc.Order) {
			m.session.SelectViewpoint(sc.Order[idx])
		}
	case ActionConfirm:
		res := m.session.PerformAction()
		switch {
		case res.Solved:
			m.savePlay(true, res.WrongAttempts)
		case res.NeedHint:
			ch := m.session.ActiveCharacter()
			req := game.HintRequest{
				Goal:             sc.Goal,
				CharacterName:    ch.Name,
				CharacterThought: ch.Thought,
			}
			return m, requestHint(m.prov, m.timeout, res.HintGen, req)
		}
	}

	return m, nil
}

// handleScenario completes an asynchronous scenario request. Accepted
// provider scenarios are archived; everything else already fell back to
// the default inside the session.
func (m SessionModel) handleScenario(msg scenarioMsg) (tea.Model, tea.Cmd) {
	installed := m.session.FinishLoading(msg.gen, msg.scenario, msg.err)
	if installed && m.store != nil {
		//nolint:errcheck // Best-effort archive, game continues regardless
		m.store.SaveScenario(m.session.Scenario())
	}
	return m, nil
}

// beginLoading starts a scenario request and the loading spinner.
func (m SessionModel) beginLoading() (tea.Model, tea.Cmd) {
	gen, ok := m.session.BeginLoading()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(
		requestScenario(m.prov, m.timeout, gen),
		m.spin.Tick,
	)
}

// quit records an abandoned round and leaves.
func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	if m.session.Mode() == game.ModePlaying {
		m.savePlay(false, m.session.WrongAttempts())
	}
	m.quitting = true
	return m, tea.Quit
}

// savePlay records a round outcome.
func (m SessionModel) savePlay(solved bool, wrongAttempts int) {
	if m.store == nil || m.session.Scenario() == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SavePlay(m.session.Scenario().Title, solved, wrongAttempts)
}

// neighborKey returns the viewpoint key offset from the active one in
// presentation order, wrapping around.
func (m SessionModel) neighborKey(offset int) string {
	sc := m.session.Scenario()
	n := len(sc.Order)
	for i, key := range sc.Order {
		if key == m.session.ActiveKey() {
			return sc.Order[((i+offset)%n+n)%n]
		}
	}
	return sc.FirstKey()
}

// View renders the current mode.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.Mode() {
	case game.ModeIntro:
		return m.viewIntro()
	case game.ModeLoading:
		return m.viewLoading()
	case game.ModeSuccess:
		return m.viewSuccess()
	default:
		return m.viewPlaying()
	}
}

// Run starts a local Bubble Tea program for one session.
func Run(prov game.Provider, store *storage.Store, width, height int, timeout time.Duration) error {
	model := NewSessionModel(prov, store, width, height, timeout)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
