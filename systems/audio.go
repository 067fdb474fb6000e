package systems

import (
	"sync"

	"github.com/automoto/flappy-cat/assets"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

var audioSingleton = NewSingleton(components.Audio, func() components.AudioData {
	return components.AudioData{PendingSFX: make([]cfg.SoundID, 0, 8)}
})

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return audioSingleton.Get(e.World)
}

// PreloadAllSFX synthesizes all sound effects at startup so the first play
// does not stall.
func PreloadAllSFX() {
	if !cfg.Audio.Enabled {
		return
	}
	initGlobalAudio()

	for id := range cfg.Sound.SFX {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Warn().Err(err).Stringer("sound", id).Msg("preload sfx")
		}
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// PlayMusic queues the looping background tune
func PlayMusic(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingMusic = components.MusicPlay
	audioData.MusicPlaying = true
}

// StopMusic queues an immediate stop of the background tune
func StopMusic(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingMusic = components.MusicStop
	audioData.MusicPlaying = false
}

// UpdateAudio drains queued audio requests into ebiten players
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	music := audioData.PendingMusic
	pending := audioData.PendingSFX
	audioData.PendingMusic = components.MusicNone
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if !cfg.Audio.Enabled {
		return
	}
	initGlobalAudio()

	switch music {
	case components.MusicPlay:
		startMusic()
	case components.MusicStop:
		stopMusic()
	}

	for _, soundID := range pending {
		playSFX(soundID)
	}
}

func playSFX(soundID cfg.SoundID) {
	if cfg.Audio.DefaultSFXVol <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Warn().Err(err).Stringer("sound", soundID).Msg("play sfx")
		return
	}

	player.SetVolume(cfg.Audio.DefaultSFXVol)
	player.Play()
}

func startMusic() {
	stopMusic()

	player, err := globalAudioLoader.LoadMusic()
	if err != nil {
		log.Warn().Err(err).Msg("play music")
		return
	}

	player.SetVolume(cfg.Audio.DefaultMusicVol)
	player.Play()
	globalMusicPlayer = player
}

func stopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
}
