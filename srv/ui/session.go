// srv/ui/session.go
package ui

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	adbot "github.com/opd-ai/adbot/src"
)

// Session holds one marketer's working state: the engine credentials they
// supplied, the editable game profile and the latest script. The engine
// config never leaves process memory. User actions within a session are
// serialized by the mutex; sessions never see each other.
type Session struct {
	ID        string
	Engine    adbot.EngineConfig
	Profile   *adbot.GameProfile
	Script    *adbot.ScriptResult
	CreatedAt time.Time

	mu sync.Mutex
}

func (ui *ScriptUI) createSession(cfg adbot.EngineConfig) *Session {
	session := &Session{
		ID:        uuid.New().String(),
		Engine:    cfg,
		CreatedAt: time.Now(),
	}
	ui.sessions.Set(session.ID, session, cache.DefaultExpiration)
	return session
}

func (ui *ScriptUI) getSession(sessionID string) (*Session, bool) {
	if sessionID == "" {
		return nil, false
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, false
	}
	value, found := ui.sessions.Get(sessionID)
	if !found {
		return nil, false
	}
	return value.(*Session), true
}

// setProfile installs a fresh research result and clears any prior script:
// a new research pass invalidates everything generated from the old profile.
func (s *Session) setProfile(profile adbot.GameProfile) {
	s.Profile = &profile
	s.Script = nil
}
