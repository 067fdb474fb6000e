package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDeath
	SoundLose
	SoundMenuSelect
)

// String returns the sound's log name.
func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundDeath:
		return "death"
	case SoundLose:
		return "lose"
	case SoundMenuSelect:
		return "menu_select"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	Enabled         bool
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// ToneConfig describes a synthesized sound: a sequence of notes rendered
// with a short attack/release envelope.
type ToneConfig struct {
	Notes   []float64 // Hz, 0 is a rest
	NoteLen time.Duration
	Attack  time.Duration
	Release time.Duration
	Wave    string // "sine", "square", "saw", "noise"
	Volume  float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	SFX   map[SoundID]ToneConfig
	Music ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		Enabled:         true,
		SampleRate:      44100,
		DefaultMusicVol: 0.35,
		DefaultSFXVol:   0.8,
	}

	Sound = SoundConfig{
		SFX: map[SoundID]ToneConfig{
			SoundJump: {
				Notes:   []float64{660, 880},
				NoteLen: 40 * time.Millisecond,
				Attack:  2 * time.Millisecond,
				Release: 20 * time.Millisecond,
				Wave:    "square",
				Volume:  0.35,
			},
			SoundDeath: {
				Notes:   []float64{0},
				NoteLen: 180 * time.Millisecond,
				Attack:  1 * time.Millisecond,
				Release: 150 * time.Millisecond,
				Wave:    "noise",
				Volume:  0.6,
			},
			SoundLose: {
				Notes:   []float64{523.25, 392, 329.63, 261.63},
				NoteLen: 160 * time.Millisecond,
				Attack:  5 * time.Millisecond,
				Release: 80 * time.Millisecond,
				Wave:    "saw",
				Volume:  0.4,
			},
			SoundMenuSelect: {
				Notes:   []float64{987.77, 1318.51},
				NoteLen: 60 * time.Millisecond,
				Attack:  2 * time.Millisecond,
				Release: 30 * time.Millisecond,
				Wave:    "square",
				Volume:  0.3,
			},
		},
		Music: ToneConfig{
			Notes: []float64{
				261.63, 329.63, 392, 329.63,
				293.66, 349.23, 440, 349.23,
				246.94, 293.66, 392, 293.66,
				261.63, 329.63, 392, 523.25,
			},
			NoteLen: 180 * time.Millisecond,
			Attack:  10 * time.Millisecond,
			Release: 60 * time.Millisecond,
			Wave:    "sine",
			Volume:  0.5,
		},
	}
}
