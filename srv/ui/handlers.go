// srv/ui/handlers.go
package ui

import (
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	adbot "github.com/opd-ai/adbot/src"
)

const maxUploadBytes = 10 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (ui *ScriptUI) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOptions serves the option catalogs so the frontend can build its
// widgets without hardcoding them twice.
func (ui *ScriptUI) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"engines":       []adbot.Engine{adbot.EngineGemini, adbot.EngineOpenAI},
		"openai_models": adbot.OpenAIModels,
		"platforms":     adbot.Platforms,
		"regions":       adbot.Regions,
		"tones":         adbot.Tones,
		"formats":       adbot.Formats,
		"time_slots":    adbot.TimeSlots,
		"genders":       adbot.Genders,
		"durations":     adbot.Durations,
	})
}

type createSessionRequest struct {
	Engine adbot.Engine `json:"engine"`
	APIKey string       `json:"api_key"`
	Model  string       `json:"model"`
}

func (ui *ScriptUI) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.APIKey == "" {
		writeError(w, http.StatusBadRequest, "api key is required")
		return
	}
	if req.Engine != adbot.EngineGemini && req.Engine != adbot.EngineOpenAI {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown engine %q", req.Engine))
		return
	}

	model := req.Model
	if model == "" {
		if req.Engine == adbot.EngineGemini {
			model = adbot.DefaultGeminiModel
		} else {
			model = adbot.DefaultOpenAIModel
		}
	}

	session := ui.createSession(adbot.EngineConfig{
		Engine: req.Engine,
		APIKey: req.APIKey,
		Model:  model,
	})
	ui.logger.Info().Str("session", session.ID).Str("engine", string(req.Engine)).Msg("session created")

	writeJSON(w, http.StatusCreated, map[string]string{
		"session_id": session.ID,
		"engine":     string(req.Engine),
		"model":      model,
	})
}

func (ui *ScriptUI) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	session, found := ui.getSession(chi.URLParam(r, "sessionID"))
	if !found {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return session, true
}

// handleConnect runs the one-line connection test so the user can verify
// key and model before spending a real call.
func (ui *ScriptUI) handleConnect(w http.ResponseWriter, r *http.Request) {
	session, ok := ui.sessionFromRequest(w, r)
	if !ok {
		return
	}

	gen, err := ui.newClient(session.Engine)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := gen.Generate(r.Context(), "System", "Hello, say hi!", nil)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleResearch runs the research call and installs the resulting profile,
// wiping any script generated from a previous profile.
func (ui *ScriptUI) handleResearch(w http.ResponseWriter, r *http.Request) {
	session, ok := ui.sessionFromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	gameName := strings.TrimSpace(r.FormValue("game_name"))
	if gameName == "" {
		writeError(w, http.StatusBadRequest, "game name is required")
		return
	}
	platform := adbot.Platform(r.FormValue("platform"))
	if platform == "" {
		platform = adbot.PlatformMobile
	}

	var screenshot image.Image
	if file, _, err := r.FormFile("screenshot"); err == nil {
		defer file.Close()
		screenshot, err = adbot.DecodeImage(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	gen, err := ui.newClient(session.Engine)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := adbot.ResearchGame(r.Context(), gen, gameName, platform, screenshot)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	session.mu.Lock()
	session.setProfile(profile)
	session.mu.Unlock()

	ui.logger.Info().Str("session", session.ID).Str("game", gameName).Msg("research completed")
	writeJSON(w, http.StatusOK, profile)
}

type editProfileRequest struct {
	RawAnalysis string `json:"raw_analysis"`
}

// handleEditProfile applies the user's corrections to the researched
// profile before generation.
func (ui *ScriptUI) handleEditProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := ui.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req editProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Profile == nil {
		writeError(w, http.StatusBadRequest, "no profile to edit; run research first")
		return
	}
	session.Profile.RawAnalysis = req.RawAnalysis
	writeJSON(w, http.StatusOK, session.Profile)
}

type generateScriptRequest struct {
	Region          string          `json:"region"`
	DurationSeconds int             `json:"duration_seconds"`
	Tone            string          `json:"tone"`
	Format          string          `json:"format"`
	Audience        adbot.Audience  `json:"audience"`
	Context         adbot.AdContext `json:"context"`
	DirectorNote    string          `json:"director_note"`
}

type sceneView struct {
	Index int `json:"index"`
	adbot.SceneRecord
	Preview *adbot.ScenePreview `json:"preview,omitempty"`
}

type scriptResponse struct {
	Strategy string      `json:"strategy"`
	GameName string      `json:"game_name"`
	Scenes   []sceneView `json:"scenes"`
}

// handleGenerateScript runs the generation call against the session's
// edited profile, parses the result and decorates each scene with a preview
// request for the frontend.
func (ui *ScriptUI) handleGenerateScript(w http.ResponseWriter, r *http.Request) {
	session, ok := ui.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req generateScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Profile == nil {
		writeError(w, http.StatusBadRequest, "no game profile; run research first")
		return
	}

	gen, err := ui.newClient(session.Engine)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := adbot.GenerateScript(r.Context(), gen, adbot.GenerationRequest{
		Profile:         *session.Profile,
		Region:          req.Region,
		DurationSeconds: req.DurationSeconds,
		Tone:            req.Tone,
		Format:          req.Format,
		Audience:        req.Audience,
		Context:         req.Context,
		DirectorNote:    req.DirectorNote,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	session.Script = &result

	ui.logger.Info().Str("session", session.ID).Int("scenes", len(result.Scenes)).Msg("script generated")
	writeJSON(w, http.StatusOK, ui.scriptView(session, result))
}

func (ui *ScriptUI) scriptView(session *Session, result adbot.ScriptResult) scriptResponse {
	resp := scriptResponse{
		Strategy: result.Strategy,
		GameName: result.GameName,
		Scenes:   make([]sceneView, 0, len(result.Scenes)),
	}
	for i, scene := range result.Scenes {
		view := sceneView{Index: i + 1, SceneRecord: scene}
		if scene.VideoPrompt != "" {
			preview := adbot.NewScenePreview(scene.VideoPrompt, result.GameName, session.Profile.Platform)
			view.Preview = &preview
		}
		resp.Scenes = append(resp.Scenes, view)
	}
	return resp
}

// handleExportScript streams the assembled .docx for the latest script.
func (ui *ScriptUI) handleExportScript(w http.ResponseWriter, r *http.Request) {
	session, ok := ui.sessionFromRequest(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.Script == nil {
		writeError(w, http.StatusNotFound, "no script generated yet")
		return
	}

	buf, err := adbot.BuildScriptDocument(session.Script.GameName, session.Script.Strategy, session.Script.Scenes)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := adbot.ExportFileName(session.Script.GameName)
	w.Header().Set("Content-Type", adbot.DocxMIME)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	w.Write(buf.Bytes())
}
