// parser_test.go
package adbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScriptRoundTrip(t *testing.T) {
	raw := "[STRATEGY]\nX\n|||\nScene 1\nTime: 5s\nVisual: hero jumps\n|||"

	strategy, scenes := ParseScript(raw)

	assert.Equal(t, "X", strategy)
	require.Len(t, scenes, 1)
	assert.Equal(t, "5s", scenes[0].Time)
	assert.Equal(t, "hero jumps", scenes[0].Visual)
	assert.Equal(t, "無", scenes[0].Voiceover)
	assert.Equal(t, "無", scenes[0].Dialogue)
	assert.Equal(t, "無", scenes[0].SFX)
	assert.Equal(t, "無", scenes[0].Text)
	assert.Equal(t, "", scenes[0].VideoPrompt)
}

func TestParseScriptWithoutMarker(t *testing.T) {
	raw := "Scene 1\nTime: 10s\nVisual: a castle under siege\n|||\nScene 2\nTime: 20s\nVisual: the gates fall"

	strategy, scenes := ParseScript(raw)

	assert.Equal(t, DefaultStrategy, strategy)
	require.Len(t, scenes, 2, "without a marker every chunk is a scene candidate")
	assert.Equal(t, "10s", scenes[0].Time)
	assert.Equal(t, "20s", scenes[1].Time)
}

func TestParseScriptEmptyInput(t *testing.T) {
	strategy, scenes := ParseScript("")

	assert.Equal(t, DefaultStrategy, strategy)
	assert.Empty(t, scenes)
}

func TestParseScriptMarkerOnly(t *testing.T) {
	strategy, scenes := ParseScript("[STRATEGY]\n打中痛點，先抑後揚。")

	assert.Equal(t, "打中痛點，先抑後揚。", strategy)
	assert.Empty(t, scenes)
}

func TestParseScriptDiscardsShortChunks(t *testing.T) {
	raw := "[STRATEGY]\nplan\n|||\n \n|||\nshort\n|||\nScene 1\nTime: 5s\nVisual: boss fight\n|||"

	_, scenes := ParseScript(raw)

	require.Len(t, scenes, 1)
	assert.Equal(t, "boss fight", scenes[0].Visual)
}

func TestParseScriptShortChunkCountsRunes(t *testing.T) {
	// Five CJK characters are fifteen bytes but still below the ten-character
	// guard: the length check counts runes, not bytes.
	raw := "[STRATEGY]\np\n|||\n特效爆炸音\n|||\nScene 1\nVisual: 十個字以上的正式分鏡內容\n|||"

	_, scenes := ParseScript(raw)

	require.Len(t, scenes, 1)
	assert.Equal(t, "十個字以上的正式分鏡內容", scenes[0].Visual)
}

func TestParseScriptFirstLabelMatchWins(t *testing.T) {
	raw := "[STRATEGY]\nplan\n|||\nScene 1\nTime: 5s\nVisual: first shot\nVisual: second shot\n|||"

	_, scenes := ParseScript(raw)

	require.Len(t, scenes, 1)
	assert.Equal(t, "first shot", scenes[0].Visual)
}

func TestParseScriptValueAfterFirstColonOfLine(t *testing.T) {
	// Substring matching attributes a later label embedded in a value to the
	// earlier scan; the value runs from the line's first colon.
	raw := "[STRATEGY]\nplan\n|||\nScene 1\nVisual: a big Text: overlay here\n|||"

	_, scenes := ParseScript(raw)

	require.Len(t, scenes, 1)
	assert.Equal(t, "a big Text: overlay here", scenes[0].Visual)
	assert.Equal(t, "a big Text: overlay here", scenes[0].Text)
}

func TestParseScriptEmptyFieldValueKeptVerbatim(t *testing.T) {
	raw := "[STRATEGY]\nplan\n|||\nScene 1\nTime: 15s\nDialogue: \nVisual: market square\n|||"

	_, scenes := ParseScript(raw)

	require.Len(t, scenes, 1)
	assert.Equal(t, "", scenes[0].Dialogue, "explicit empty value is stored, not defaulted")
}

func TestParseScriptAllFieldsPopulated(t *testing.T) {
	raw := "[STRATEGY]\nplan\n|||\n" +
		"Scene 1\nTime: 0-5s\nVisual: neon street\nVoiceover: 快逃！\nDialogue: 撐住！\n" +
		"SFX: thunder\nText: 今晚開打\nVideo Prompt: cyberpunk alley, rain, tracking shot\n|||"

	_, scenes := ParseScript(raw)

	require.Len(t, scenes, 1)
	s := scenes[0]
	assert.Equal(t, "0-5s", s.Time)
	assert.Equal(t, "neon street", s.Visual)
	assert.Equal(t, "快逃！", s.Voiceover)
	assert.Equal(t, "撐住！", s.Dialogue)
	assert.Equal(t, "thunder", s.SFX)
	assert.Equal(t, "今晚開打", s.Text)
	assert.Equal(t, "cyberpunk alley, rain, tracking shot", s.VideoPrompt)
}

func TestParseScriptSceneOrderPreserved(t *testing.T) {
	raw := "[STRATEGY]\nplan\n|||\nScene 1\nTime: 0-5s\nVisual: a\n|||\nScene 2\nTime: 5-10s\nVisual: b\n|||\nScene 3\nTime: 10-15s\nVisual: c\n|||"

	_, scenes := ParseScript(raw)

	require.Len(t, scenes, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{scenes[0].Visual, scenes[1].Visual, scenes[2].Visual})
}

func TestIsSilent(t *testing.T) {
	assert.True(t, IsSilent("None"))
	assert.True(t, IsSilent("無"))
	assert.False(t, IsSilent(""))
	assert.False(t, IsSilent("快逃！"))
}
