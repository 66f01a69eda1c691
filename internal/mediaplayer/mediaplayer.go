// Package mediaplayer is the audio output primitive of the app.
//
// It streams MP3 resources over HTTP and plays them through the system
// speaker. Only one resource plays at a time. A Play call supersedes any
// in-flight load, and faults of superseded loads are swallowed so rapid
// track skipping does not surface spurious errors.
package mediaplayer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// ErrDecode is reported for resources the decoder can not process.
var ErrDecode = errors.New("undecodable audio resource")

const (
	outputSampleRate = beep.SampleRate(44100)
	speakerBufLen    = time.Second / 10
	resampleQuality  = 4
)

// Player plays one MP3 resource at a time through the system speaker.
type Player struct {
	httpClient *http.Client

	mu        sync.Mutex
	gen       int // load generation, bumped on every Play and Stop
	streamer  beep.StreamSeekCloser
	format    beep.Format
	ctrl      *beep.Ctrl
	resampler *beep.Resampler
	volume    *effects.Volume
	vol       float64
	rate      float64
	onEnded   func()
	onError   func(error)
}

type Params struct {
	// optional
	HTTPClient *http.Client
}

// New creates a new Player, initializes the speaker and returns it.
func New(arg Params) (*Player, error) {
	if err := speaker.Init(outputSampleRate, outputSampleRate.N(speakerBufLen)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &Player{vol: 1.0, rate: 1.0}
	if arg.HTTPClient != nil {
		p.httpClient = arg.HTTPClient
	} else {
		p.httpClient = http.DefaultClient
	}
	return p, nil
}

// SetOnEnded registers the callback fired when a track plays to its end.
func (p *Player) SetOnEnded(f func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEnded = f
}

// SetOnError registers the callback fired on unrecoverable faults.
func (p *Player) SetOnError(f func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onError = f
}

// Play loads a resource and starts playing it,
// superseding any current or in-flight load.
// Load and decode faults are reported through the error callback
// unless the load was superseded in the meantime.
func (p *Player) Play(url string) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()
	go p.load(url, gen)
	return nil
}

func (p *Player) load(url string, gen int) {
	data, err := p.fetch(url)
	if err != nil {
		p.reportIfCurrent(gen, err)
		return
	}
	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		p.reportIfCurrent(gen, fmt.Errorf("%w: %s", ErrDecode, err))
		return
	}
	p.start(streamer, format, gen)
}

func (p *Player) start(streamer beep.StreamSeekCloser, format beep.Format, gen int) {
	p.mu.Lock()
	if gen != p.gen {
		// superseded while loading, abandon silently
		p.mu.Unlock()
		streamer.Close()
		return
	}
	p.closeCurrentLocked()
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer}
	p.resampler = beep.ResampleRatio(
		resampleQuality,
		p.rate*float64(format.SampleRate)/float64(outputSampleRate),
		p.ctrl,
	)
	p.volume = &effects.Volume{
		Streamer: p.resampler,
		Base:     2,
		Volume:   volumeGain(p.vol),
		Silent:   p.vol <= 0,
	}
	seq := beep.Seq(p.volume, beep.Callback(func() {
		p.handleEnded(gen)
	}))
	p.mu.Unlock()
	speaker.Clear()
	speaker.Play(seq)
}

// PlayStream starts playing a live MP3 stream,
// superseding any current or in-flight load.
// Live streams have no defined length, so Duration reports zero
// and Seek is not meaningful.
func (p *Player) PlayStream(url string) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()
	go func() {
		r, err := p.httpClient.Get(url)
		if err != nil {
			p.reportIfCurrent(gen, err)
			return
		}
		if r.StatusCode != http.StatusOK {
			r.Body.Close()
			p.reportIfCurrent(gen, fmt.Errorf("get %s: %s", url, r.Status))
			return
		}
		streamer, format, err := mp3.Decode(r.Body)
		if err != nil {
			r.Body.Close()
			p.reportIfCurrent(gen, fmt.Errorf("%w: %s", ErrDecode, err))
			return
		}
		p.start(streamer, format, gen)
	}()
	return nil
}

func (p *Player) fetch(url string) ([]byte, error) {
	r, err := p.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: %s", url, r.Status)
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (p *Player) reportIfCurrent(gen int, err error) {
	p.mu.Lock()
	f := p.onError
	current := gen == p.gen
	p.mu.Unlock()
	if current && f != nil {
		f(err)
	}
}

func (p *Player) handleEnded(gen int) {
	p.mu.Lock()
	f := p.onEnded
	current := gen == p.gen
	p.mu.Unlock()
	if current && f != nil {
		f()
	}
}

// Pause suspends the output without unloading the resource.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Resume continues a paused output.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

// Stop unloads the current resource and silences the output.
func (p *Player) Stop() {
	speaker.Clear()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.closeCurrentLocked()
}

func (p *Player) closeCurrentLocked() {
	if p.streamer != nil {
		p.streamer.Close()
	}
	p.streamer = nil
	p.ctrl = nil
	p.resampler = nil
	p.volume = nil
}

// SetVolume sets the output volume in the range 0 to 1.
func (p *Player) SetVolume(v float64) {
	v = min(max(v, 0), 1)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vol = v
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume = volumeGain(v)
	p.volume.Silent = v <= 0
	speaker.Unlock()
}

// SetRate sets the playback speed, 1.0 being normal speed.
func (p *Player) SetRate(r float64) {
	if r <= 0 {
		r = 1.0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rate = r
	if p.resampler == nil {
		return
	}
	speaker.Lock()
	p.resampler.SetRatio(r * float64(p.format.SampleRate) / float64(outputSampleRate))
	speaker.Unlock()
}

// Position returns the playback position within the current resource.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position())
}

// Duration returns the length of the current resource.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Len())
}

// Seek moves the playback position within the current resource.
func (p *Player) Seek(d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return nil
	}
	speaker.Lock()
	defer speaker.Unlock()
	n := min(max(p.format.SampleRate.N(d), 0), p.streamer.Len()-1)
	if err := p.streamer.Seek(n); err != nil {
		return fmt.Errorf("seek to %s: %w", d, err)
	}
	return nil
}

// volumeGain converts a linear volume in 0..1 to the exponential
// gain the volume effect expects.
func volumeGain(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}
