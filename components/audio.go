package components

import (
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
)

// MusicCommand is a pending request for the music source.
type MusicCommand int

const (
	MusicNone MusicCommand = iota
	MusicPlay
	MusicStop
)

// AudioData stores per-world audio requests (singleton component). The audio
// system drains it once per frame.
type AudioData struct {
	PendingSFX   []cfg.SoundID
	PendingMusic MusicCommand
	MusicPlaying bool
}

var Audio = donburi.NewComponentType[AudioData]()
