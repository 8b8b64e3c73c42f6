package anyllm

import "fmt"

// systemPrompt frames every request. The game is for young children, so the
// model is steered toward short, warm, concrete language.
const systemPrompt = `You are the scenario writer for "Perspective Painters", a puzzle game for children aged 5-8. The game shows a goal and three characters; the player switches between the characters' viewpoints to find the one whose action achieves the goal. Keep language simple, warm, and concrete. Never use scary or violent themes.`

// scenarioPrompt asks for one new puzzle as a bare JSON document. The shape
// is spelled out inline; key order of "characters" is the presentation
// order, first key is the starting viewpoint.
const scenarioPrompt = `Write one new scenario as a single JSON object and nothing else: no prose, no markdown fences.

The object must have exactly this shape:
{
  "title": "short scenario title",
  "goal": "one sentence stating the problem to solve",
  "sceneEmoji": "one emoji for the scene",
  "solution": "KEY_OF_SOLVING_CHARACTER",
  "characters": {
    "KEY_ONE": {
      "name": "character name",
      "emoji": "one emoji",
      "thought": "what this character is thinking, first person, one sentence",
      "action": { "name": "short action label", "icon": "one emoji" }
    },
    "KEY_TWO": { ... },
    "KEY_THREE": { ... }
  }
}

Rules:
- exactly three characters with distinct UPPER_SNAKE keys
- "solution" must be one of the three character keys
- exactly one character's action truly achieves the goal; the other two are plausible but ineffective
- every thought and action name must be non-empty`

// hintPrompt asks for one encouraging coach line for a player stuck on the
// wrong viewpoint.
func hintPrompt(goal, characterName, characterThought string) string {
	return fmt.Sprintf(`The player is stuck. The goal is: %q.
They are currently seeing the world as %s, who thinks: %q.
That viewpoint does not solve the goal. Reply with one short, encouraging
sentence (no more than 20 words) nudging them to try a different point of
view, without naming the correct character. Reply with the sentence only.`,
		goal, characterName, characterThought)
}
