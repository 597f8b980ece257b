package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trades latency for underruns
	AudioBufferDuration = 100 * time.Millisecond
)

// Fill Chirp
const (
	FillToneLow  = 440.0
	FillToneHigh = 660.0
	FillToneStep = 60 * time.Millisecond

	// FillLargeThreshold is the cell count above which the chirp rises higher
	FillLargeThreshold = 200
)

// Tool Click
const (
	ToolClickFreq     = 1200.0
	ToolClickDuration = 25 * time.Millisecond
)
