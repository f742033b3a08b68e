// types.go
package adbot

// Platform identifies the kind of device the advertised game runs on. The
// values double as the display labels shown to the marketer, so they carry
// the original Traditional Chinese wording.
type Platform string

const (
	PlatformMobile  Platform = "手機遊戲"
	PlatformPC      Platform = "PC/Steam"
	PlatformConsole Platform = "主機"
	PlatformWeb     Platform = "網頁遊戲"
)

// Platforms lists the selectable game platforms in display order.
var Platforms = []Platform{PlatformMobile, PlatformPC, PlatformConsole, PlatformWeb}

// IsMobile reports whether the platform should be treated as a phone target
// for vertical-video purposes. Anything that is not a phone is landscape.
func (p Platform) IsMobile() bool {
	return containsMobileToken(string(p))
}

// GameProfile is the editable strategy document produced by the research
// call. RawAnalysis is free text authored by the model and then corrected by
// the user before generation.
type GameProfile struct {
	Name        string   `json:"name"`
	Platform    Platform `json:"platform"`
	RawAnalysis string   `json:"raw_analysis"`
}

// Audience describes who the ad is aimed at.
type Audience struct {
	Gender   string `json:"gender"`
	AgeMin   int    `json:"age_min"`
	AgeMax   int    `json:"age_max"`
	Identity string `json:"identity"`
}

// AdContext captures when the ad is expected to be seen.
type AdContext struct {
	TimeSlot string `json:"time_slot"`
	Holiday  string `json:"holiday"`
}

// GenerationRequest holds every knob for one generation call. It is built
// fresh per request and never outlives the session.
type GenerationRequest struct {
	Profile         GameProfile `json:"profile"`
	Region          string      `json:"region"`
	DurationSeconds int         `json:"duration_seconds"`
	Tone            string      `json:"tone"`
	Format          string      `json:"format"`
	Audience        Audience    `json:"audience"`
	Context         AdContext   `json:"context"`
	DirectorNote    string      `json:"director_note,omitempty"`
}

// SceneRecord is one storyboard entry parsed out of the model response.
// Every field is always present: labels missing from the source chunk keep
// their sentinel defaults from ParseScript.
type SceneRecord struct {
	Time        string `json:"time"`
	Visual      string `json:"visual"`
	Voiceover   string `json:"voiceover"`
	Dialogue    string `json:"dialogue"`
	SFX         string `json:"sfx"`
	Text        string `json:"text"`
	VideoPrompt string `json:"video_prompt"`
}

// ScriptResult is the parsed outcome of one successful generation call.
type ScriptResult struct {
	Strategy string        `json:"strategy"`
	Scenes   []SceneRecord `json:"scenes"`
	GameName string        `json:"game_name"`
}

// Option catalogs for the frontend widgets. Free-text entries are allowed
// for tone and format; these are only the suggested values.
var (
	Regions = []string{
		"台灣 (繁中)", "日本 (日文)", "美國 (英文)", "韓國 (韓文)", "中國大陸 (簡中)", "東南亞",
	}

	Tones = []string{"搞笑諧音", "熱血中二", "懸疑驚悚", "感人共鳴", "專業硬核"}

	Formats = []string{"戰力飆升", "失敗挑戰", "CG 動畫大片", "實機試玩", "真人情境劇"}

	TimeSlots = []string{
		"通勤/上學 (早上)", "午休時間 (中午)", "下班/放學 (晚上)", "深夜時段 (半夜)", "全天候",
	}

	Genders = []string{"不限", "男性", "女性"}

	Durations = []int{15, 30, 45, 60}
)
