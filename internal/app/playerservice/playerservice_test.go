package playerservice_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alfurqan/alfurqan/internal/app"
	"github.com/alfurqan/alfurqan/internal/app/playerservice"
)

type fakePlayer struct {
	played  []string
	paused  bool
	stopped bool
	volume  float64
	rate    float64
	onEnded func()
	onError func(error)
}

func (p *fakePlayer) Play(url string) error {
	p.played = append(p.played, url)
	p.paused = false
	p.stopped = false
	return nil
}
func (p *fakePlayer) Pause()                  { p.paused = true }
func (p *fakePlayer) Resume()                 { p.paused = false }
func (p *fakePlayer) Stop()                   { p.stopped = true }
func (p *fakePlayer) SetVolume(v float64)     { p.volume = v }
func (p *fakePlayer) SetRate(r float64)       { p.rate = r }
func (p *fakePlayer) Position() time.Duration { return 0 }
func (p *fakePlayer) Duration() time.Duration { return 0 }
func (p *fakePlayer) Seek(time.Duration) error {
	return nil
}
func (p *fakePlayer) SetOnEnded(f func())      { p.onEnded = f }
func (p *fakePlayer) SetOnError(f func(error)) { p.onError = f }

type fakeSettings struct {
	repeatMode app.RepeatMode
	volume     float64
	rate       float64
}

func (s *fakeSettings) RepeatMode() app.RepeatMode { return s.repeatMode }
func (s *fakeSettings) Volume() float64            { return s.volume }
func (s *fakeSettings) SetVolume(v float64)        { s.volume = v }
func (s *fakeSettings) PlaybackRate() float64      { return s.rate }
func (s *fakeSettings) SetPlaybackRate(v float64)  { s.rate = v }

func resolveURL(surahID, ayahID int) string {
	return fmt.Sprintf("https://audio.example.com/%03d%03d.mp3", surahID, ayahID)
}

func newService(repeat app.RepeatMode) (*playerservice.PlayerService, *fakePlayer, *fakeSettings) {
	p := &fakePlayer{}
	st := &fakeSettings{repeatMode: repeat, volume: 1.0, rate: 1.0}
	s := playerservice.New(playerservice.Params{
		MediaPlayer: p,
		Settings:    st,
		ResolveURL:  resolveURL,
	})
	return s, p, st
}

func TestPlayAyah(t *testing.T) {
	ctx := context.Background()
	t.Run("starts a session with all fields set", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		// when
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		// then
		got := s.Status()
		assert.True(t, got.IsPlaying)
		assert.True(t, got.IsActive())
		assert.Equal(t, 2, got.SurahID)
		assert.Equal(t, 255, got.AyahID)
		assert.Equal(t, []string{"https://audio.example.com/002255.mp3"}, p.played)
	})
	t.Run("starting a new session replaces the previous one wholesale", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		// when
		s.PlayAyah(ctx, 36, 1, resolveURL(36, 1))
		// then
		got := s.Status()
		assert.Equal(t, 36, got.SurahID)
		assert.Equal(t, 1, got.AyahID)
		assert.Len(t, p.played, 2)
	})
}

func TestPauseResume(t *testing.T) {
	ctx := context.Background()
	t.Run("pause keeps identity fields and clears playing flag", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		// when
		s.Pause(ctx)
		// then
		got := s.Status()
		assert.False(t, got.IsPlaying)
		assert.True(t, got.IsActive())
		assert.Equal(t, 255, got.AyahID)
		assert.True(t, p.paused)
	})
	t.Run("resume continues a paused session", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		s.Pause(ctx)
		// when
		s.Resume(ctx)
		// then
		assert.True(t, s.Status().IsPlaying)
		assert.False(t, p.paused)
	})
	t.Run("resume without a session is a no-op", func(t *testing.T) {
		// given
		s, _, _ := newService(app.RepeatNone)
		// when
		s.Resume(ctx)
		// then
		assert.Equal(t, app.AudioStatus{}, s.Status())
	})
}

func TestStop(t *testing.T) {
	ctx := context.Background()
	t.Run("stop resets the status to all-zero from any state", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		s.Pause(ctx)
		// when
		s.Stop(ctx)
		// then
		assert.Equal(t, app.AudioStatus{}, s.Status())
		assert.True(t, p.stopped)
	})
}

func TestPlayNextPrev(t *testing.T) {
	ctx := context.Background()
	t.Run("next then prev returns to the same ayah", func(t *testing.T) {
		// given
		s, _, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 10, resolveURL(2, 10))
		// when
		s.PlayNext(ctx)
		s.PlayPrev(ctx)
		// then
		got := s.Status()
		assert.Equal(t, 2, got.SurahID)
		assert.Equal(t, 10, got.AyahID)
	})
	t.Run("prev at ayah 1 is a no-op", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 1, resolveURL(2, 1))
		// when
		s.PlayPrev(ctx)
		// then
		assert.Equal(t, 1, s.Status().AyahID)
		assert.Len(t, p.played, 1)
	})
	t.Run("next without a session is a no-op", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		// when
		s.PlayNext(ctx)
		// then
		assert.Equal(t, app.AudioStatus{}, s.Status())
		assert.Empty(t, p.played)
	})
}

func TestTrackEnd(t *testing.T) {
	ctx := context.Background()
	t.Run("repeat one replays the same track", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatOne)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		// when
		p.onEnded()
		// then
		got := s.Status()
		assert.True(t, got.IsPlaying)
		assert.Equal(t, 2, got.SurahID)
		assert.Equal(t, 255, got.AyahID)
		assert.Equal(t, []string{
			"https://audio.example.com/002255.mp3",
			"https://audio.example.com/002255.mp3",
		}, p.played)
	})
	t.Run("repeat all advances to the next ayah", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatAll)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		// when
		p.onEnded()
		// then
		got := s.Status()
		assert.True(t, got.IsPlaying)
		assert.Equal(t, 256, got.AyahID)
	})
	t.Run("repeat none ends the session", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		// when
		p.onEnded()
		// then
		assert.Equal(t, app.AudioStatus{}, s.Status())
	})
	t.Run("track end without a session is a no-op", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatAll)
		// when
		p.onEnded()
		// then
		assert.Equal(t, app.AudioStatus{}, s.Status())
		assert.Empty(t, p.played)
	})
}

func TestPlayerFault(t *testing.T) {
	ctx := context.Background()
	t.Run("an unrecoverable fault force-stops the session", func(t *testing.T) {
		// given
		s, p, _ := newService(app.RepeatNone)
		s.PlayAyah(ctx, 2, 255, resolveURL(2, 255))
		// when
		p.onError(assert.AnError)
		// then
		assert.Equal(t, app.AudioStatus{}, s.Status())
		assert.True(t, p.stopped)
	})
}

func TestVolumeAndRate(t *testing.T) {
	t.Run("volume is applied and mirrored into settings", func(t *testing.T) {
		// given
		s, p, st := newService(app.RepeatNone)
		// when
		s.SetVolume(0.4)
		// then
		assert.InDelta(t, 0.4, p.volume, 0.001)
		assert.InDelta(t, 0.4, st.volume, 0.001)
	})
	t.Run("rate is applied and mirrored into settings", func(t *testing.T) {
		// given
		s, p, st := newService(app.RepeatNone)
		// when
		s.SetRate(1.5)
		// then
		assert.InDelta(t, 1.5, p.rate, 0.001)
		assert.InDelta(t, 1.5, st.rate, 0.001)
	})
}
