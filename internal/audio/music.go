// Package audio plays the looping background music.
// A nil *Music is a valid silent player, so callers never need to check
// whether music could be loaded.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// ErrNoMusic is returned when no music path is configured.
var ErrNoMusic = errors.New("audio: no music configured")

// Music is a decoded mp3 track looped forever with volume and mute control.
type Music struct {
	mu      sync.Mutex
	stream  beep.StreamSeekCloser
	format  beep.Format
	volume  *effects.Volume
	level   float64
	muted   bool
	playing bool
}

// Open decodes the mp3 file at path. It does not touch the audio device.
func Open(path string) (*Music, error) {
	if path == "" {
		return nil, ErrNoMusic
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: %s: %w", path, err)
	}
	return m, nil
}

// Decode builds a player from an mp3 stream. The reader is closed by Close.
func Decode(rc io.ReadCloser) (*Music, error) {
	stream, format, err := mp3.Decode(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("cannot decode mp3: %w", err)
	}
	return newMusic(stream, format), nil
}

func newMusic(stream beep.StreamSeekCloser, format beep.Format) *Music {
	m := &Music{stream: stream, format: format, level: 1}
	m.volume = &effects.Volume{
		Streamer: beep.Loop(-1, stream),
		Base:     2,
	}
	m.apply()
	return m
}

// Play initialises the speaker at the track's sample rate and starts
// looping. Calling Play twice is a no-op.
func (m *Music) Play() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing {
		return nil
	}
	sr := m.format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot initialise speaker: %w", err)
	}
	speaker.Play(m.volume)
	m.playing = true
	return nil
}

// SetVolume sets the loudness from 0 (silent) to 1 (full).
func (m *Music) SetVolume(level float64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.level = math.Max(0, math.Min(1, level))
	m.locked(m.apply)
}

// SetMuted silences or restores the music without stopping the loop.
func (m *Music) SetMuted(muted bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = muted
	m.locked(m.apply)
}

// Muted reports whether the music is muted.
func (m *Music) Muted() bool {
	if m == nil {
		return true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Volume returns the configured loudness level.
func (m *Music) Volume() float64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// Close stops playback and releases the decoder.
func (m *Music) Close() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing {
		speaker.Clear()
		speaker.Close()
		m.playing = false
	}
	return m.stream.Close()
}

// apply maps level and mute onto the volume effect. Must be called with
// the speaker locked when playing.
func (m *Music) apply() {
	m.volume.Silent = m.muted || m.level <= 0
	if m.level > 0 {
		m.volume.Volume = math.Log2(m.level)
	}
}

// locked runs fn while holding the speaker lock if playback started.
func (m *Music) locked(fn func()) {
	if !m.playing {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}
