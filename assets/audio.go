package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/flappy-cat/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound PCM for an audio context
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	music    []byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a
// player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	_, err := l.sfxBytes(id)
	return err
}

func (l *AudioLoader) sfxBytes(id config.SoundID) ([]byte, error) {
	if pcm, ok := l.sfxCache[id]; ok {
		return pcm, nil
	}
	tone, ok := config.Sound.SFX[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %s", id)
	}
	pcm, err := SynthesizeTone(tone, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", id, err)
	}
	l.sfxCache[id] = pcm
	return pcm, nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	pcm, err := l.sfxBytes(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(pcm), nil
}

// LoadMusic returns a looping player for the background tune.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	if l.music == nil {
		pcm, err := SynthesizeTone(config.Sound.Music, l.context.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("synthesize music: %w", err)
		}
		l.music = pcm
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(l.music), int64(len(l.music)))
	return l.context.NewPlayer(loop)
}
