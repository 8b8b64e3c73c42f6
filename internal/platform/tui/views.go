package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	cardWidth         = 24 // Width of one character card
	minWidthForCards  = 78 // Below this the cards stack vertically
	hintBoxMaxWidth   = 72
	goalBannerPadding = 1
)

// theme holds the lipgloss styles for the session views.
type theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	GoalBanner lipgloss.Style

	CardActive   lipgloss.Style
	CardInactive lipgloss.Style
	CardName     lipgloss.Style
	CardThought  lipgloss.Style
	CardAction   lipgloss.Style

	HintBox    lipgloss.Style
	SuccessBig lipgloss.Style
	Controls   lipgloss.Style
	Dim        lipgloss.Style
}

// newTheme creates the default color theme.
func newTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		GoalBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, goalBannerPadding),

		CardActive: lipgloss.NewStyle().
			Width(cardWidth).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(0, 1),
		CardInactive: lipgloss.NewStyle().
			Width(cardWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		CardName: lipgloss.NewStyle().
			Bold(true),
		CardThought: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true),
		CardAction: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),

		HintBox: lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(0, 1),
		SuccessBig: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		Controls: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

var defaultTheme = newTheme()

// viewIntro renders the title screen.
func (m SessionModel) viewIntro() string {
	th := defaultTheme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(th.Title.Render("🎨 Perspective Painters"))
	b.WriteString("\n\n")
	b.WriteString(th.Subtitle.Render("Every painter sees the scene differently."))
	b.WriteString("\n")
	b.WriteString(th.Subtitle.Render("Look through each point of view and find whose action fits the goal!"))
	b.WriteString("\n\n")
	b.WriteString(th.Controls.Render("enter: start  •  n: paint a new story  •  q: quit"))
	b.WriteString("\n")

	return m.center(b.String())
}

// viewLoading renders the spinner while a scenario is generated.
func (m SessionModel) viewLoading() string {
	th := defaultTheme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.spin.View())
	b.WriteString(" ")
	b.WriteString(th.Subtitle.Render("Painting a new story..."))
	b.WriteString("\n\n")
	b.WriteString(th.Controls.Render("q: quit"))
	b.WriteString("\n")

	return m.center(b.String())
}

// viewPlaying renders the puzzle: goal banner, the three character cards
// with the active one highlighted, and the hint box when a hint is shown.
func (m SessionModel) viewPlaying() string {
	th := defaultTheme
	sc := m.session.Scenario()

	var b strings.Builder
	b.WriteString("\n")

	title := sc.SceneEmoji + " " + sc.Title
	b.WriteString(th.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(th.GoalBanner.Render("Goal: " + sc.Goal))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(sc.Order))
	for i, key := range sc.Order {
		cards = append(cards, m.renderCard(i, key))
	}
	if m.width >= minWidthForCards {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	}
	b.WriteString("\n")

	if hint := m.session.CoachHint(); hint != "" {
		box := th.HintBox.MaxWidth(hintBoxMaxWidth).Render("💡 " + hint)
		b.WriteString("\n")
		b.WriteString(box)
		b.WriteString("\n")
	}

	if n := m.session.WrongAttempts(); n > 0 {
		b.WriteString("\n")
		b.WriteString(th.Dim.Render(fmt.Sprintf("Tries from this view: %d", n)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.Controls.Render("1-3/tab: switch view  •  enter: do their action  •  q: quit"))
	b.WriteString("\n")

	return m.center(b.String())
}

// renderCard renders one character card. The active viewpoint shows the
// character's inner thought and action; the others only show who they are.
func (m SessionModel) renderCard(index int, key string) string {
	th := defaultTheme
	ch := m.session.Scenario().Characters[key]
	active := key == m.session.ActiveKey()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d. %s %s", index+1, ch.Emoji, th.CardName.Render(ch.Name)))
	b.WriteString("\n")
	if active {
		b.WriteString("\n")
		b.WriteString(th.CardThought.Render("“" + ch.Thought + "”"))
		b.WriteString("\n\n")
		b.WriteString(th.CardAction.Render(ch.Action.Icon + " " + ch.Action.Name))
	} else {
		b.WriteString("\n")
		b.WriteString(th.Dim.Render("press " + fmt.Sprint(index+1) + " to see"))
	}

	if active {
		return th.CardActive.Render(b.String())
	}
	return th.CardInactive.Render(b.String())
}

// viewSuccess renders the celebration screen.
func (m SessionModel) viewSuccess() string {
	th := defaultTheme
	sc := m.session.Scenario()
	ch := m.session.ActiveCharacter()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(th.SuccessBig.Render("🎉 " + sc.Title + " — solved!"))
	b.WriteString("\n\n")
	b.WriteString(th.Subtitle.Render(fmt.Sprintf("%s %s saw what the scene needed: %s %s",
		ch.Emoji, ch.Name, ch.Action.Icon, ch.Action.Name)))
	b.WriteString("\n\n")
	b.WriteString(th.Controls.Render("enter/n: paint a new story  •  q: quit"))
	b.WriteString("\n")

	return m.center(b.String())
}

// center places the content in the middle of the terminal when the size is
// known; otherwise returns it as-is.
func (m SessionModel) center(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
