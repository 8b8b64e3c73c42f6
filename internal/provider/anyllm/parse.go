package anyllm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ksenzov/perspective-painters/internal/game"
)

// scenarioWire mirrors the JSON shape the model is asked to produce.
// Characters stays raw so its key order can be recovered.
type scenarioWire struct {
	Title      string          `json:"title"`
	Goal       string          `json:"goal"`
	SceneEmoji string          `json:"sceneEmoji"`
	Solution   string          `json:"solution"`
	Characters json.RawMessage `json:"characters"`
}

// DecodeScenario parses a model reply into a scenario. The reply may be
// wrapped in markdown code fences. Character key order in the JSON object is
// preserved into Scenario.Order, since the first key is the starting
// viewpoint. Structural validation is left to the caller; this only
// distinguishes parseable JSON from garbage.
func DecodeScenario(reply string) (*game.Scenario, error) {
	data := []byte(stripFences(reply))

	var wire scenarioWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrMalformed, err)
	}
	if len(wire.Characters) == 0 {
		return nil, fmt.Errorf("%w: missing characters object", game.ErrMalformed)
	}

	order, characters, err := decodeCharacters(wire.Characters)
	if err != nil {
		return nil, err
	}

	return &game.Scenario{
		Title:      wire.Title,
		Goal:       wire.Goal,
		SceneEmoji: wire.SceneEmoji,
		Solution:   wire.Solution,
		Order:      order,
		Characters: characters,
	}, nil
}

// decodeCharacters walks the characters object token by token so the key
// order survives (encoding/json maps forget it).
func decodeCharacters(raw json.RawMessage) ([]string, map[string]game.Character, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: characters: %v", game.ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("%w: characters is not an object", game.ErrMalformed)
	}

	var order []string
	characters := make(map[string]game.Character)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: characters: %v", game.ErrMalformed, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: non-string character key", game.ErrMalformed)
		}

		var ch game.Character
		if err := dec.Decode(&ch); err != nil {
			return nil, nil, fmt.Errorf("%w: character %q: %v", game.ErrMalformed, key, err)
		}
		order = append(order, key)
		characters[key] = ch
	}

	return order, characters, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag. Models asked for bare JSON still add one often enough.
func stripFences(reply string) string {
	s := strings.TrimSpace(reply)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		first := strings.TrimSpace(s[:idx])
		if first == "" || !strings.ContainsAny(first, "{}") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
