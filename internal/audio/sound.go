// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect lengths
const (
	CrashDuration   = 450 * time.Millisecond
	RestartDuration = 180 * time.Millisecond
)

// SoundManager plays effects through a shared mixer.
// A manager that was never initialized, or whose device failed to open,
// silently ignores Play calls.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager at the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayCrash plays a short burst of decaying noise over a low thud.
func (sm *SoundManager) PlayCrash() {
	sm.play(NewCrashGenerator(sampleRate, time.Now().UnixNano()))
}

// PlayRestart plays a rising chirp.
func (sm *SoundManager) PlayRestart() {
	sm.play(NewChirpGenerator(sampleRate, 330, 880, RestartDuration))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// withVolume scales a stream linearly. beep volumes are logarithmic, so a
// zero volume is mapped to silence instead of log(0).
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CrashGenerator produces the crash effect. It ends after CrashDuration.
type CrashGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	seed  int64
}

// NewCrashGenerator creates a crash generator with a noise seed.
func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{
		sr:    sr,
		total: sr.N(CrashDuration),
		seed:  seed & 0x7fffffff,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Fast attack, exponential tail
		env := math.Exp(-t * 9)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		thud := math.Sin(2 * math.Pi * (70 - 30*t) * t)

		sample := env * (0.45*noise + 0.45*thud)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error { return nil }

// ChirpGenerator sweeps a sine from one frequency to another.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	total    int
	phase    float64
}

// NewChirpGenerator creates a sweep lasting d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		total: max(1, sr.N(d)),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		frac := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*frac

		// Short fade at both ends avoids clicks
		env := math.Min(1, math.Min(frac*20, (1-frac)*10))

		sample := 0.4 * env * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error { return nil }
