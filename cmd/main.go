package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	adbot "github.com/opd-ai/adbot/src"
)

var (
	engine     = flag.String("engine", "gemini", "LLM engine to use: gemini or openai")
	model      = flag.String("model", "", "Model name (defaults to the engine's default)")
	gameName   = flag.String("game", "", "Name of the game to advertise")
	platform   = flag.String("platform", string(adbot.PlatformMobile), "Target platform of the game")
	screenshot = flag.String("screenshot", "", "Optional path to a gameplay screenshot")
	region     = flag.String("region", "台灣 (繁中)", "Target market region")
	gender     = flag.String("gender", "不限", "Target audience gender")
	tone       = flag.String("tone", "熱血中二", "Tone of the ad")
	format     = flag.String("format", "CG 動畫大片", "Presentation format of the ad")
	timeSlot   = flag.String("timeslot", "全天候", "Viewing time slot of the audience")
	duration   = flag.Int("duration", 30, "Ad duration in seconds")
	output     = flag.String("out", "", "Output .docx path (defaults to <game>_廣告腳本.docx)")
	timeout    = flag.Duration("timeout", 3*time.Minute, "Overall deadline for the LLM calls")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	if *gameName == "" {
		fmt.Println("Please provide a game name with -game")
		os.Exit(1)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if adbot.Engine(*engine) == adbot.EngineOpenAI {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Printf("Please set %s_API_KEY environment variable\n", strings.ToUpper(*engine))
		os.Exit(1)
	}

	client, err := adbot.NewClient(adbot.EngineConfig{
		Engine: adbot.Engine(*engine),
		APIKey: apiKey,
		Model:  *model,
	})
	if err != nil {
		fmt.Printf("Error creating client: %v\n", err)
		os.Exit(1)
	}

	var img image.Image
	if *screenshot != "" {
		f, err := os.Open(*screenshot)
		if err != nil {
			fmt.Printf("Error opening screenshot: %v\n", err)
			os.Exit(1)
		}
		img, err = adbot.DecodeImage(f)
		f.Close()
		if err != nil {
			fmt.Printf("Error decoding screenshot: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Printf("Researching %s...\n", *gameName)
	profile, err := adbot.ResearchGame(ctx, client, *gameName, adbot.Platform(*platform), img)
	if err != nil {
		fmt.Printf("Error researching game: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generating ad script...")
	result, err := adbot.GenerateScript(ctx, client, adbot.GenerationRequest{
		Profile:         profile,
		Region:          *region,
		DurationSeconds: *duration,
		Tone:            *tone,
		Format:          *format,
		Audience:        adbot.Audience{Gender: *gender},
		Context:         adbot.AdContext{TimeSlot: *timeSlot},
	})
	if err != nil {
		fmt.Printf("Error generating script: %v\n", err)
		os.Exit(1)
	}

	doc, err := adbot.BuildScriptDocument(*gameName, result.Strategy, result.Scenes)
	if err != nil {
		fmt.Printf("Error building document: %v\n", err)
		os.Exit(1)
	}

	path := *output
	if path == "" {
		path = adbot.ExportFileName(*gameName)
	}
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		fmt.Printf("Error saving document: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Script generation complete! %d scenes written to %s\n", len(result.Scenes), path)
}
