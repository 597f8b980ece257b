// Package audio plays short feedback sounds. Every method is a no-op until
// Initialize succeeds, so the editor runs unchanged without an audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termpaint/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager owns the speaker and mixes feedback sounds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume (0..1)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// clampVolume limits v to 0..1, NaN is silent
func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}

// Initialize sets up the speaker, a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds will be heard
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume changes the volume for sounds started afterwards
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.volume = clampVolume(v)
	sm.mu.Unlock()
}

// Volume returns the current volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayFill plays a rising chirp after a bucket fill
// Larger fills get a slightly higher second note
func (sm *SoundManager) PlayFill(cells int) {
	high := constants.FillToneHigh
	if cells > constants.FillLargeThreshold {
		high *= 1.5
	}
	sm.play(func(vol float64) (beep.Streamer, error) {
		return chirp(sampleRate, constants.FillToneLow, high, constants.FillToneStep, vol)
	})
}

// PlayTool plays a short click on tool selection
func (sm *SoundManager) PlayTool() {
	sm.play(func(vol float64) (beep.Streamer, error) {
		return tone(sampleRate, constants.ToolClickFreq, constants.ToolClickDuration,
			time.Millisecond, constants.ToolClickDuration/2, vol)
	})
}

// play builds and mixes a sound, generator errors drop the sound
func (sm *SoundManager) play(build func(vol float64) (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := build(sm.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
