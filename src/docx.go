// docx.go
package adbot

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"
)

// DocxMIME is the content type of the exported document.
const DocxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Field colors carried over from the original deliverable layout.
const (
	colorVoiceover   = "0070C0"
	colorDialogue    = "7030A0"
	colorSFX         = "C00000"
	colorVideoPrompt = "505050"
)

// Half-point run sizes for the pseudo-heading levels.
const (
	sizeTitle    = "52"
	sizeHeading1 = "32"
	sizeHeading2 = "28"
	sizeSmall    = "18"
)

// ExportFileName returns the download name for a game's script document.
func ExportFileName(gameName string) string {
	return gameName + "_廣告腳本.docx"
}

// BuildScriptDocument assembles the parsed script into a complete .docx byte
// stream: centered title, strategy section, then one subsection per scene
// with the fields in fixed order. Voiceover and dialogue lines are dropped
// when they hold a silence sentinel; everything else always renders.
func BuildScriptDocument(gameName, strategy string, scenes []SceneRecord) (*bytes.Buffer, error) {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(fmt.Sprintf("廣告腳本企劃書: %s", gameName)).Size(sizeTitle).Bold()
	title.Justification("center")

	heading := doc.AddParagraph()
	heading.AddText("🧠 行銷心理戰略").Size(sizeHeading1).Bold()
	doc.AddParagraph().AddText(strategy)
	doc.AddParagraph()

	scriptHeading := doc.AddParagraph()
	scriptHeading.AddText("📋 分鏡詳細腳本").Size(sizeHeading1).Bold()

	for i, scene := range scenes {
		sceneHeading := doc.AddParagraph()
		sceneHeading.AddText(fmt.Sprintf("Scene %d (%s)", i+1, scene.Time)).Size(sizeHeading2).Bold()

		p := doc.AddParagraph()
		p.AddText("🎥 畫面: ").Bold()
		p.AddText(scene.Visual + "\n")

		p.AddText("📝 壓字: ").Bold()
		p.AddText(scene.Text + "\n")

		if !IsSilent(scene.Voiceover) {
			p.AddText("🗣️ 旁白: ").Bold().Color(colorVoiceover)
			p.AddText(scene.Voiceover + "\n")
		}

		if !IsSilent(scene.Dialogue) {
			p.AddText("💬 對話: ").Bold().Color(colorDialogue)
			p.AddText(scene.Dialogue + "\n")
		}

		p.AddText("🔊 音效: ").Bold().Color(colorSFX)
		p.AddText(scene.SFX + "\n")

		promptLine := doc.AddParagraph()
		promptLine.AddText("Video AI Prompt: ").Bold().Size(sizeSmall)
		promptLine.AddText(scene.VideoPrompt).Italic().Size(sizeSmall).Color(colorVideoPrompt)

		doc.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return &buf, nil
}
