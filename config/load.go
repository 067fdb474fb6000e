package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by Load.
const (
	EnvLogLevel       = "FLAPPY_LOG_LEVEL"
	EnvAudioEnabled   = "FLAPPY_AUDIO_ENABLED"
	EnvMusicVolume    = "FLAPPY_MUSIC_VOLUME" // 0-100
	EnvSFXVolume      = "FLAPPY_SFX_VOLUME"   // 0-100
	EnvSeed           = "FLAPPY_SEED"
	EnvShowColliders  = "FLAPPY_SHOW_COLLIDERS"
	EnvInvincible     = "FLAPPY_INVINCIBLE"
	EnvPipeSpeed      = "FLAPPY_PIPE_SPEED"
	EnvSpawnInterval  = "FLAPPY_SPAWN_INTERVAL"
	EnvStopTime       = "FLAPPY_STOP_TIME"
	EnvJumpVelocity   = "FLAPPY_JUMP_VELOCITY"
	defaultLogLevel   = "info"
	volumePercentBase = 100.0
)

// LogLevel is the zerolog level name picked up by Load.
var LogLevel = defaultLogLevel

// Load reads an optional .env file (or the given files) and applies FLAPPY_*
// overrides on top of the defaults set in init. Invalid values are skipped and
// reported together in the returned error.
func Load(files ...string) error {
	// A missing .env file is the normal case.
	_ = godotenv.Load(files...)

	var errs []error

	if v := os.Getenv(EnvLogLevel); v != "" {
		LogLevel = v
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			Audio.Enabled = b
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAudioEnabled, err))
		}
	}

	if err := loadVolume(EnvMusicVolume, &Audio.DefaultMusicVol); err != nil {
		errs = append(errs, err)
	}
	if err := loadVolume(EnvSFXVolume, &Audio.DefaultSFXVol); err != nil {
		errs = append(errs, err)
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			C.Seed = n
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		}
	}

	for name, dst := range map[string]*bool{
		EnvShowColliders: &Debug.ShowColliders,
		EnvInvincible:    &Debug.Invincible,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		*dst = b
	}

	for name, dst := range map[string]*float64{
		EnvPipeSpeed:     &Pipes.MovementSpeed,
		EnvSpawnInterval: &Pipes.SpawnInterval,
		EnvStopTime:      &Game.StopTimeOnGameOver,
		EnvJumpVelocity:  &Player.JumpVelocity,
	} {
		if err := loadPositive(name, dst); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func loadVolume(name string, dst *float64) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	vol := float64(n) / volumePercentBase
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	*dst = vol
	return nil
}

func loadPositive(name string, dst *float64) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if f <= 0 {
		return fmt.Errorf("%s: must be positive, got %v", name, f)
	}
	*dst = f
	return nil
}
