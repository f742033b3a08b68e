// prompts.go
package adbot

import "fmt"

// System prompts for the two call kinds. The research call plays a producer
// doing competitive analysis; the generation call plays a creative director.
const (
	ResearchSystemPrompt   = "You are a Senior Game Producer."
	GenerationSystemPrompt = "You are a World-Class Game Creative Director."
)

// ResearchPrompt asks the model to profile a game: genre, core loop, selling
// points and a detailed visual analysis. The output feeds GameProfile and is
// shown to the user for correction, so it is requested in Traditional
// Chinese.
func ResearchPrompt(gameName string, platform Platform) string {
	return fmt.Sprintf(`Analyze game "%s" on "%s".

**Task:**
1. Identify Genre & Core Loop.
2. Identify 3 USP (Unique Selling Points).
3. **Visual Analysis:** Describe the art style, color palette, UI style, and character proportions in detail.

**If image is provided:** Use it to describe the Visual Style accurately.

Output strictly in Traditional Chinese:
Genre: [類型]
Core Loop: [核心玩法]
USP: [3個賣點]
Visual Style: [美術風格 - 詳細描述]
`, gameName, platform)
}

// GenerationPrompt folds every ad parameter into the single user prompt for
// the generation call and pins the '|||' output grammar that ParseScript
// expects.
func GenerationPrompt(req GenerationRequest) string {
	prompt := fmt.Sprintf(`**INPUTS:**
- Game Profile: %s
- Region: %s
- Duration: %ds
- Tone: %s
- Format: %s
- Audience: %s (%s, Age %d-%d)
- Context: Time: %s, Holiday: %s
- User Note: %s

**TASK:**
1. **Psych Strategy:** Map Game USP to User Pain Points.
2. **Script:** Scene-by-scene breakdown.
   - Voiceover/Dialogue: Native Language of %s.
   - Visuals: Traditional Chinese.
   - Audio: Separate Voiceover/Dialogue/SFX.
3. **Video Prompt:** English for Sora/Veo3 (Focus on Motion & Physics).

**OUTPUT FORMAT (Separator '|||'):**

[STRATEGY]
心理戰略: [Analysis]
|||
Scene 1
Time: [Seconds]
Visual: [Desc]
Voiceover: [Script]
Dialogue: [Script]
SFX: [Desc]
Text: [Overlay]
Video Prompt: [English Prompt]
|||
(Repeat)
`,
		req.Profile.RawAnalysis,
		req.Region,
		req.DurationSeconds,
		req.Tone,
		req.Format,
		req.Audience.Identity, req.Audience.Gender, req.Audience.AgeMin, req.Audience.AgeMax,
		req.Context.TimeSlot, req.Context.Holiday,
		req.DirectorNote,
		req.Region,
	)
	return prompt
}
