package assets

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/automoto/flappy-cat/config"
	"github.com/gopxl/beep"
)

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 20*time.Millisecond, wave, rate)
		samples := make([][2]float64, 256)
		n, ok := osc.Stream(samples)
		if !ok || n != len(samples) {
			t.Fatalf("wave %d: expected %d samples, got %d (ok=%v)", wave, len(samples), n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Fatalf("wave %d: expected identical channels at %d", wave, i)
			}
		}
	}
}

func TestOscillatorStopsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 10*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 64)
	n, _ := osc.Stream(samples)
	if n != 10 {
		t.Errorf("Expected 10 samples, got %d", n)
	}
	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Errorf("Expected a drained oscillator, got n=%d ok=%v", n, ok)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full level in sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade out, got %f then %f", samples[90][0], samples[99][0])
	}
}

func TestSynthesizeToneLength(t *testing.T) {
	rate := 8000
	tone := config.ToneConfig{
		Notes:   []float64{440, 0, 660},
		NoteLen: 50 * time.Millisecond,
		Attack:  time.Millisecond,
		Release: 10 * time.Millisecond,
		Wave:    "square",
		Volume:  0.5,
	}

	pcm, err := SynthesizeTone(tone, rate)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	perNote := beep.SampleRate(rate).N(tone.NoteLen)
	want := len(tone.Notes) * perNote * 4 // 2 channels x 16 bit
	if len(pcm) != want {
		t.Fatalf("Expected %d bytes, got %d", want, len(pcm))
	}

	// The middle note is a rest.
	for i := perNote; i < 2*perNote; i++ {
		if v := binary.LittleEndian.Uint16(pcm[i*4:]); v != 0 {
			t.Fatalf("Expected silence in the rest at frame %d, got %d", i, int16(v))
		}
	}

	var peak int16
	for i := 0; i < perNote; i++ {
		v := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		t.Error("Expected the first note to be audible")
	}
}

func TestSynthesizeConfiguredSounds(t *testing.T) {
	for id, tone := range config.Sound.SFX {
		pcm, err := SynthesizeTone(tone, config.Audio.SampleRate)
		if err != nil {
			t.Errorf("%s: %v", id, err)
			continue
		}
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Errorf("%s: expected whole stereo frames, got %d bytes", id, len(pcm))
		}
	}

	if _, err := SynthesizeTone(config.Sound.Music, config.Audio.SampleRate); err != nil {
		t.Errorf("music: %v", err)
	}
}

func TestSynthesizeToneErrors(t *testing.T) {
	if _, err := SynthesizeTone(config.ToneConfig{NoteLen: time.Second}, 8000); !errors.Is(err, ErrEmptyTone) {
		t.Errorf("Expected ErrEmptyTone, got %v", err)
	}
	bad := config.ToneConfig{Notes: []float64{440}, NoteLen: time.Second, Wave: "triangle"}
	if _, err := SynthesizeTone(bad, 8000); err == nil {
		t.Error("Expected an error for an unknown wave")
	}
}
