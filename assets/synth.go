package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/automoto/flappy-cat/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ErrEmptyTone is returned for a tone without notes or note length.
var ErrEmptyTone = errors.New("tone has no notes")

// ParseWave maps a config wave name to a WaveType.
func ParseWave(name string) (WaveType, error) {
	switch name {
	case "sine", "":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "saw":
		return WaveSaw, nil
	case "noise":
		return WaveNoise, nil
	}
	return WaveSine, fmt.Errorf("unknown wave %q", name)
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of the wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attackSamples:
			vol = float64(e.position) / float64(e.attackSamples)
		case e.position >= releaseStart && e.releaseSamples > 0:
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		vol = math.Max(0, math.Min(1, vol))

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so a zero volume is mapped to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ToneStreamer renders a tone as a finite streamer: one enveloped note after
// another, a 0 Hz note being a rest (except for noise, which has no pitch).
func ToneStreamer(tone config.ToneConfig, rate beep.SampleRate) (beep.Streamer, error) {
	if len(tone.Notes) == 0 || tone.NoteLen <= 0 {
		return nil, ErrEmptyTone
	}
	wave, err := ParseWave(tone.Wave)
	if err != nil {
		return nil, err
	}

	notes := make([]beep.Streamer, 0, len(tone.Notes))
	for _, freq := range tone.Notes {
		if freq <= 0 && wave != WaveNoise {
			notes = append(notes, beep.Silence(rate.N(tone.NoteLen)))
			continue
		}
		osc := NewOscillator(freq, tone.NoteLen, wave, rate)
		notes = append(notes, NewEnvelope(osc, tone.NoteLen, tone.Attack, tone.Release, rate))
	}

	return newVolume(beep.Seq(notes...), tone.Volume), nil
}

// RenderPCM drains a finite streamer into signed 16-bit little-endian stereo
// PCM, the format ebiten's audio context plays.
func RenderPCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("render pcm: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// SynthesizeTone is ToneStreamer followed by RenderPCM.
func SynthesizeTone(tone config.ToneConfig, sampleRate int) ([]byte, error) {
	s, err := ToneStreamer(tone, beep.SampleRate(sampleRate))
	if err != nil {
		return nil, err
	}
	return RenderPCM(s)
}
