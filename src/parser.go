// parser.go
package adbot

import (
	"strings"
	"unicode/utf8"
)

const (
	// SceneSeparator splits the raw model response into strategy and scene
	// chunks. The generation prompt instructs the model to emit it verbatim.
	SceneSeparator = "|||"

	// StrategyMarker tags the leading strategy chunk of a response.
	StrategyMarker = "[STRATEGY]"

	// DefaultStrategy is reported when the response carries no strategy
	// marker at all.
	DefaultStrategy = "無策略分析"

	// minSceneRunes guards against stray empty segments from the split.
	minSceneRunes = 10
)

// sceneLabels are scanned in this order for every chunk.
var sceneLabels = []string{"Time", "Visual", "Voiceover", "Dialogue", "SFX", "Text", "Video Prompt"}

func defaultSceneFields() map[string]string {
	return map[string]string{
		"Time":         "N/A",
		"Visual":       "無",
		"Voiceover":    "無",
		"Dialogue":     "無",
		"SFX":          "無",
		"Text":         "無",
		"Video Prompt": "",
	}
}

// ParseScript splits a raw model response into a strategy paragraph and an
// ordered list of scene records. The grammar is best-effort: nothing is
// validated, missing pieces degrade to sentinel defaults, and a response
// that yields no usable chunks returns the default strategy with zero
// scenes rather than an error.
func ParseScript(raw string) (string, []SceneRecord) {
	chunks := strings.Split(raw, SceneSeparator)

	strategy := DefaultStrategy
	candidates := chunks
	if strings.Contains(raw, StrategyMarker) {
		strategy = strings.TrimSpace(strings.ReplaceAll(chunks[0], StrategyMarker, ""))
		candidates = chunks[1:]
	}

	var scenes []SceneRecord
	for _, chunk := range candidates {
		trimmed := strings.TrimSpace(chunk)
		if utf8.RuneCountInString(trimmed) < minSceneRunes {
			continue
		}
		scenes = append(scenes, parseScene(trimmed))
	}
	return strategy, scenes
}

// parseScene extracts the seven known fields from one scene chunk. For each
// label the first line containing "<Label>:" wins; the value is everything
// after that line's first colon. A value holding another label's text after
// its own is attributed to the earlier label scan, a known ambiguity of
// substring matching that is kept as-is.
func parseScene(chunk string) SceneRecord {
	lines := strings.Split(chunk, "\n")
	fields := defaultSceneFields()

	for _, label := range sceneLabels {
		needle := label + ":"
		for _, line := range lines {
			if !strings.Contains(line, needle) {
				continue
			}
			if _, after, ok := strings.Cut(line, ":"); ok {
				fields[label] = strings.TrimSpace(after)
			}
			break
		}
	}

	return SceneRecord{
		Time:        fields["Time"],
		Visual:      fields["Visual"],
		Voiceover:   fields["Voiceover"],
		Dialogue:    fields["Dialogue"],
		SFX:         fields["SFX"],
		Text:        fields["Text"],
		VideoPrompt: fields["Video Prompt"],
	}
}

// IsSilent reports whether an audio field holds one of the "nothing here"
// sentinels the model tends to emit. Silent voiceover and dialogue lines are
// suppressed when rendering.
func IsSilent(value string) bool {
	return value == "None" || value == "無"
}
