// Package playerservice coordinates the single audio playback session
// shared across all views.
//
// The session status is all-zero or fully set, except that IsPlaying may
// be false while a URL is retained (paused, not stopped). There is only
// one way to start a session and starting a new one replaces the
// previous one wholesale.
package playerservice

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maniartech/signals"

	"github.com/alfurqan/alfurqan/internal/app"
)

// MediaPlayer is the playback primitive the service drives.
// Implementations report track end and unrecoverable faults through the
// callbacks and must suppress faults of loads that were superseded by a
// newer Play call.
type MediaPlayer interface {
	Play(url string) error
	Pause()
	Resume()
	Stop()
	SetVolume(v float64)
	SetRate(r float64)
	Position() time.Duration
	Duration() time.Duration
	Seek(d time.Duration) error
	SetOnEnded(func())
	SetOnError(func(error))
}

// SettingsStore is the slice of the user settings the service reads
// and mirrors playback parameters into.
type SettingsStore interface {
	RepeatMode() app.RepeatMode
	Volume() float64
	SetVolume(v float64)
	PlaybackRate() float64
	SetPlaybackRate(v float64)
}

// PlayerService is the single source of truth for the playback session.
type PlayerService struct {
	// StatusChanged fires with the new status after every transition.
	StatusChanged signals.Signal[app.AudioStatus]

	player   MediaPlayer
	settings SettingsStore
	resolve  func(surahID, ayahID int) string

	mu     sync.Mutex
	status app.AudioStatus
}

type Params struct {
	MediaPlayer MediaPlayer
	Settings    SettingsStore
	// ResolveURL derives the audio URL for an ayah,
	// e.g. from the reciter selected in the settings.
	ResolveURL func(surahID, ayahID int) string
}

// New creates a new PlayerService and returns it.
func New(arg Params) *PlayerService {
	s := &PlayerService{
		StatusChanged: signals.New[app.AudioStatus](),
		player:        arg.MediaPlayer,
		settings:      arg.Settings,
		resolve:       arg.ResolveURL,
	}
	s.player.SetOnEnded(s.handleTrackEnd)
	s.player.SetOnError(s.handleFault)
	s.player.SetVolume(s.settings.Volume())
	s.player.SetRate(s.settings.PlaybackRate())
	return s
}

// Status returns the current session status.
func (s *PlayerService) Status() app.AudioStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// PlayAyah starts a new playback session for one ayah,
// replacing any current session wholesale.
// This is the only way a new session starts.
func (s *PlayerService) PlayAyah(ctx context.Context, surahID, ayahID int, url string) {
	s.mu.Lock()
	s.status = app.AudioStatus{
		IsPlaying: true,
		SurahID:   surahID,
		AyahID:    ayahID,
		URL:       url,
	}
	st := s.status
	s.mu.Unlock()
	if err := s.player.Play(url); err != nil {
		slog.Error("Failed to start playback", "url", url, "error", err)
		s.Stop(ctx)
		return
	}
	s.StatusChanged.Emit(ctx, st)
}

// Pause suspends playback without ending the session.
// It is a no-op when no session is active.
func (s *PlayerService) Pause(ctx context.Context) {
	s.mu.Lock()
	if !s.status.IsActive() || !s.status.IsPlaying {
		s.mu.Unlock()
		return
	}
	s.status.IsPlaying = false
	st := s.status
	s.mu.Unlock()
	s.player.Pause()
	s.StatusChanged.Emit(ctx, st)
}

// Resume continues a paused session.
// It is a no-op when no session is active.
func (s *PlayerService) Resume(ctx context.Context) {
	s.mu.Lock()
	if !s.status.IsActive() || s.status.IsPlaying {
		s.mu.Unlock()
		return
	}
	s.status.IsPlaying = true
	st := s.status
	s.mu.Unlock()
	s.player.Resume()
	s.StatusChanged.Emit(ctx, st)
}

// Stop ends the session and resets the status to all-zero.
func (s *PlayerService) Stop(ctx context.Context) {
	s.mu.Lock()
	s.status = app.AudioStatus{}
	s.mu.Unlock()
	s.player.Stop()
	s.StatusChanged.Emit(ctx, app.AudioStatus{})
}

// PlayNext advances the session to the next ayah.
// The ayah number is not validated against the surah's verse count, so
// advancing past the last verse produces a URL for a missing asset and
// the player's own fault path ends the session.
// It is a no-op when no session is active.
func (s *PlayerService) PlayNext(ctx context.Context) {
	s.mu.Lock()
	if !s.status.IsActive() {
		s.mu.Unlock()
		return
	}
	surahID, ayahID := s.status.SurahID, s.status.AyahID+1
	s.mu.Unlock()
	s.PlayAyah(ctx, surahID, ayahID, s.resolve(surahID, ayahID))
}

// PlayPrev moves the session to the previous ayah.
// It is a no-op when no session is active or already at ayah 1.
func (s *PlayerService) PlayPrev(ctx context.Context) {
	s.mu.Lock()
	if !s.status.IsActive() || s.status.AyahID <= 1 {
		s.mu.Unlock()
		return
	}
	surahID, ayahID := s.status.SurahID, s.status.AyahID-1
	s.mu.Unlock()
	s.PlayAyah(ctx, surahID, ayahID, s.resolve(surahID, ayahID))
}

// SetVolume applies the volume to the player and mirrors it into the
// persisted settings.
func (s *PlayerService) SetVolume(v float64) {
	s.player.SetVolume(v)
	s.settings.SetVolume(v)
}

// SetRate applies the playback rate to the player and mirrors it into
// the persisted settings.
func (s *PlayerService) SetRate(v float64) {
	s.player.SetRate(v)
	s.settings.SetPlaybackRate(v)
}

// Position returns the playback position within the current track.
func (s *PlayerService) Position() time.Duration {
	return s.player.Position()
}

// Duration returns the length of the current track.
func (s *PlayerService) Duration() time.Duration {
	return s.player.Duration()
}

// Seek moves the playback position within the current track.
func (s *PlayerService) Seek(d time.Duration) error {
	return s.player.Seek(d)
}

// handleTrackEnd branches on the repeat mode when a track finishes.
func (s *PlayerService) handleTrackEnd() {
	ctx := context.Background()
	s.mu.Lock()
	if !s.status.IsActive() {
		s.mu.Unlock()
		return
	}
	st := s.status
	s.mu.Unlock()
	switch s.settings.RepeatMode() {
	case app.RepeatOne:
		// replay the same track, session identity unchanged
		if err := s.player.Play(st.URL); err != nil {
			slog.Error("Failed to replay track", "url", st.URL, "error", err)
			s.Stop(ctx)
		}
	case app.RepeatAll:
		s.PlayNext(ctx)
	default:
		s.Stop(ctx)
	}
}

// handleFault force-stops the session on an unrecoverable player fault.
// Benign faults from superseded loads never reach this point.
func (s *PlayerService) handleFault(err error) {
	slog.Warn("Playback fault, ending session", "error", err)
	s.Stop(context.Background())
}
