// preview.go
package adbot

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
)

const (
	previewBaseURL = "https://image.pollinations.ai/prompt/"
	previewModel   = "flux"

	portraitWidth  = 576
	portraitHeight = 1024
)

// ScenePreview is a ready-to-fetch request against the external preview
// service. Only the URL is built here; fetching and rendering the image is
// the caller's business.
type ScenePreview struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ratio  string `json:"ratio"`
}

// NewScenePreview derives a preview request from a scene's video prompt.
// Phone games get a 9:16 portrait frame, everything else 16:9 landscape.
// A fresh random seed defeats caching on the service side, so two calls
// with the same inputs may render different images.
func NewScenePreview(videoPrompt, gameName string, platform Platform) ScenePreview {
	width, height, ratio := portraitHeight, portraitWidth, "16:9"
	if platform.IsMobile() {
		width, height, ratio = portraitWidth, portraitHeight, "9:16"
	}

	prompt := url.PathEscape(fmt.Sprintf("%s, %s style, best quality", videoPrompt, gameName))
	seed := rand.Intn(10000)

	return ScenePreview{
		URL: fmt.Sprintf("%s%s?width=%d&height=%d&seed=%d&nologo=true&model=%s",
			previewBaseURL, prompt, width, height, seed, previewModel),
		Width:  width,
		Height: height,
		Ratio:  ratio,
	}
}

func containsMobileToken(platform string) bool {
	return strings.Contains(platform, "手機")
}
