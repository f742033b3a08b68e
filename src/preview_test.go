// preview_test.go
package adbot

import (
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScenePreviewMobileIsPortrait(t *testing.T) {
	p := NewScenePreview("hero jumps", "絕區零", PlatformMobile)

	assert.Equal(t, 576, p.Width)
	assert.Equal(t, 1024, p.Height)
	assert.Equal(t, "9:16", p.Ratio)
	assert.Contains(t, p.URL, "width=576")
	assert.Contains(t, p.URL, "height=1024")
}

func TestNewScenePreviewOtherPlatformsAreLandscape(t *testing.T) {
	for _, platform := range []Platform{PlatformPC, PlatformConsole, PlatformWeb, Platform("抽卡手遊以外")} {
		p := NewScenePreview("hero jumps", "絕區零", platform)

		assert.Equal(t, 1024, p.Width, "platform %q", platform)
		assert.Equal(t, 576, p.Height, "platform %q", platform)
		assert.Equal(t, "16:9", p.Ratio, "platform %q", platform)
	}
}

func TestNewScenePreviewMobileTokenAnywhere(t *testing.T) {
	p := NewScenePreview("x", "g", Platform("某種手機平台"))

	assert.Equal(t, "9:16", p.Ratio)
}

func TestNewScenePreviewURLShape(t *testing.T) {
	p := NewScenePreview("cyberpunk alley, rain", "絕區零", PlatformPC)

	u, err := url.Parse(p.URL)
	require.NoError(t, err)
	assert.Equal(t, "image.pollinations.ai", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/prompt/"))

	q := u.Query()
	assert.Equal(t, "1024", q.Get("width"))
	assert.Equal(t, "576", q.Get("height"))
	assert.Equal(t, "true", q.Get("nologo"))
	assert.Equal(t, "flux", q.Get("model"))

	seed, err := strconv.Atoi(q.Get("seed"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seed, 0)
	assert.Less(t, seed, 10000)

	// url.Parse decodes the path, which should carry the prompt plus the
	// fixed style suffix.
	assert.Equal(t, "/prompt/cyberpunk alley, rain, 絕區零 style, best quality", u.Path)
	assert.NotContains(t, u.EscapedPath(), " ", "raw path must be percent-encoded")
}
