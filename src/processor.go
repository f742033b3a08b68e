// processor.go
package adbot

import (
	"context"
	"fmt"
	"image"
	"strings"
)

// ResearchGame runs the research call: one blocking round trip that profiles
// the game, optionally seeded with a screenshot for visual analysis. The
// returned profile's RawAnalysis is meant to be corrected by the user before
// generation.
func ResearchGame(ctx context.Context, gen Generator, gameName string, platform Platform, screenshot image.Image) (GameProfile, error) {
	if strings.TrimSpace(gameName) == "" {
		return GameProfile{}, fmt.Errorf("game name is required")
	}

	analysis, err := gen.Generate(ctx, ResearchSystemPrompt, ResearchPrompt(gameName, platform), screenshot)
	if err != nil {
		return GameProfile{}, fmt.Errorf("researching game: %w", err)
	}

	return GameProfile{
		Name:        gameName,
		Platform:    platform,
		RawAnalysis: analysis,
	}, nil
}

// GenerateScript runs the generation call and parses the response. Parse
// quality never fails the call: a malformed response degrades to the default
// strategy and however many scenes survived.
func GenerateScript(ctx context.Context, gen Generator, req GenerationRequest) (ScriptResult, error) {
	raw, err := gen.Generate(ctx, GenerationSystemPrompt, GenerationPrompt(req), nil)
	if err != nil {
		return ScriptResult{}, fmt.Errorf("generating script: %w", err)
	}

	strategy, scenes := ParseScript(raw)
	log.Info().Int("scenes", len(scenes)).Str("game", req.Profile.Name).Msg("script parsed")

	return ScriptResult{
		Strategy: strategy,
		Scenes:   scenes,
		GameName: req.Profile.Name,
	}, nil
}
