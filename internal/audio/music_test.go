package audio

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	if !errors.Is(err, ErrNoMusic) {
		t.Errorf("Open(\"\") = %v, expected ErrNoMusic", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "background_music.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() = %v, expected a not-exist error", err)
	}
}

func TestOpenGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.mp3")
	if err := os.WriteFile(path, []byte("definitely not an mp3"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil || !strings.Contains(err.Error(), "cannot decode mp3") {
		t.Errorf("Open() = %v, expected a decode error", err)
	}
}

func TestDecodeClosesReaderOnError(t *testing.T) {
	rc := &trackingReader{Reader: strings.NewReader("junk")}
	if _, err := Decode(rc); err == nil {
		t.Fatal("Decode() should fail on junk")
	}
	if !rc.closed {
		t.Error("reader should be closed after a failed decode")
	}
}

func TestNilMusicIsSilent(t *testing.T) {
	var m *Music

	if err := m.Play(); err != nil {
		t.Errorf("Play() on nil = %v", err)
	}
	m.SetVolume(0.5)
	m.SetMuted(false)
	if !m.Muted() {
		t.Error("nil music should report muted")
	}
	if m.Volume() != 0 {
		t.Error("nil music should report zero volume")
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() on nil = %v", err)
	}
}

func TestVolumeAndMute(t *testing.T) {
	m := &Music{level: 1, volume: &effects.Volume{Streamer: beep.Silence(-1), Base: 2}}
	m.apply()

	tests := []struct {
		name       string
		level      float64
		muted      bool
		wantSilent bool
		wantVolume float64
		wantLevel  float64
	}{
		{"full", 1, false, false, 0, 1},
		{"half", 0.5, false, false, -1, 0.5},
		{"quarter", 0.25, false, false, -2, 0.25},
		{"zero is silent", 0, false, true, -2, 0},
		{"clamped above", 3, false, false, 0, 1},
		{"muted", 1, true, true, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m.SetVolume(tc.level)
			m.SetMuted(tc.muted)

			if m.volume.Silent != tc.wantSilent {
				t.Errorf("Silent = %v, expected %v", m.volume.Silent, tc.wantSilent)
			}
			if math.Abs(m.volume.Volume-tc.wantVolume) > 1e-9 {
				t.Errorf("Volume = %v, expected %v", m.volume.Volume, tc.wantVolume)
			}
			if m.Volume() != tc.wantLevel {
				t.Errorf("level = %v, expected %v", m.Volume(), tc.wantLevel)
			}
			if m.Muted() != tc.muted {
				t.Errorf("Muted() = %v, expected %v", m.Muted(), tc.muted)
			}
		})
	}
}

type trackingReader struct {
	io.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}
