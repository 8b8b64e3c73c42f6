// Package game contains the pure session and scenario logic for
// Perspective Painters. It has no UI or network dependencies (especially no
// Bubble Tea) so the state machine stays fully testable.
package game

import (
	"fmt"
	"strings"
)

// CharacterCount is the number of viewpoints every scenario must offer.
const CharacterCount = 3

// Action is the single thing a character can do from their viewpoint.
type Action struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Character is one of the three viewpoints of a scenario.
type Character struct {
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Thought string `json:"thought"`
	Action  Action `json:"action"`
}

// Scenario is a single puzzle: a goal, three characters, and which
// character's action actually solves the goal.
//
// Order holds the character keys in presentation order. Character maps in
// generated JSON carry meaning in their key order (the first key is the
// starting viewpoint), so the order is kept explicitly instead of relying on
// map iteration.
type Scenario struct {
	Title      string
	Goal       string
	SceneEmoji string
	Order      []string
	Characters map[string]Character
	Solution   string
}

// Character returns the character for the given key.
func (sc *Scenario) Character(key string) (Character, bool) {
	ch, ok := sc.Characters[key]
	return ch, ok
}

// FirstKey returns the default starting viewpoint.
func (sc *Scenario) FirstKey() string {
	if len(sc.Order) == 0 {
		return ""
	}
	return sc.Order[0]
}

// Normalize trims surrounding whitespace from every text field.
// Called on provider output before validation.
func (sc *Scenario) Normalize() {
	sc.Title = strings.TrimSpace(sc.Title)
	sc.Goal = strings.TrimSpace(sc.Goal)
	sc.SceneEmoji = strings.TrimSpace(sc.SceneEmoji)
	sc.Solution = strings.TrimSpace(sc.Solution)
	for i, key := range sc.Order {
		sc.Order[i] = strings.TrimSpace(key)
	}
	normalized := make(map[string]Character, len(sc.Characters))
	for key, ch := range sc.Characters {
		ch.Name = strings.TrimSpace(ch.Name)
		ch.Emoji = strings.TrimSpace(ch.Emoji)
		ch.Thought = strings.TrimSpace(ch.Thought)
		ch.Action.Name = strings.TrimSpace(ch.Action.Name)
		ch.Action.Icon = strings.TrimSpace(ch.Action.Icon)
		normalized[strings.TrimSpace(key)] = ch
	}
	sc.Characters = normalized
}

// Validate checks the scenario invariants:
// exactly three distinct character keys, a solution key that names one of
// them, and a non-empty thought and action name for every character.
//
// A solution key that matches no character is a hard failure. The original
// game silently substituted a random character in that case, which masks
// bad generator output; callers are expected to fall back to the default
// scenario instead.
func (sc *Scenario) Validate() error {
	if len(sc.Order) != CharacterCount {
		return fmt.Errorf("game: scenario has %d characters, want %d", len(sc.Order), CharacterCount)
	}
	if len(sc.Characters) != CharacterCount {
		return fmt.Errorf("game: scenario has %d character entries, want %d", len(sc.Characters), CharacterCount)
	}
	seen := make(map[string]bool, CharacterCount)
	for _, key := range sc.Order {
		if key == "" {
			return fmt.Errorf("game: scenario has an empty character key")
		}
		if seen[key] {
			return fmt.Errorf("game: duplicate character key %q", key)
		}
		seen[key] = true

		ch, ok := sc.Characters[key]
		if !ok {
			return fmt.Errorf("game: ordered key %q has no character entry", key)
		}
		if ch.Thought == "" {
			return fmt.Errorf("game: character %q has an empty thought", key)
		}
		if ch.Action.Name == "" {
			return fmt.Errorf("game: character %q has an empty action name", key)
		}
	}
	if !seen[sc.Solution] {
		return fmt.Errorf("game: solution %q is not a character key", sc.Solution)
	}
	return nil
}

// Built-in character keys of the default scenario.
const (
	KeyFirefighter = "FIREFIGHTER"
	KeyChild       = "CHILD"
	KeyCat         = "CAT"
)

// DefaultScenario returns the built-in scenario used at the first
// Intro -> Playing transition and as the fallback whenever scenario
// generation fails or produces invalid data.
func DefaultScenario() *Scenario {
	return &Scenario{
		Title:      "The Stuck Kitten",
		Goal:       "A kitten is stuck high in the old oak tree. Help it get down safely!",
		SceneEmoji: "🌳",
		Order:      []string{KeyFirefighter, KeyChild, KeyCat},
		Characters: map[string]Character{
			KeyFirefighter: {
				Name:    "Sam the Firefighter",
				Emoji:   "🧑‍🚒",
				Thought: "My ladder reaches all the way up to the highest branch.",
				Action:  Action{Name: "Raise the ladder", Icon: "🪜"},
			},
			KeyChild: {
				Name:    "Mia",
				Emoji:   "🧒",
				Thought: "Maybe the kitten will jump down if I wave my sandwich at it.",
				Action:  Action{Name: "Wave the sandwich", Icon: "🥪"},
			},
			KeyCat: {
				Name:    "Whiskers",
				Emoji:   "🐱",
				Thought: "I could meow encouragingly from down here.",
				Action:  Action{Name: "Meow loudly", Icon: "📢"},
			},
		},
		Solution: KeyFirefighter,
	}
}
