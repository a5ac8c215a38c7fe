package audio

import (
	"fmt"
	"io"
)

// DefaultSampleRate is used by devices that do not impose one.
const DefaultSampleRate = 44100

// Device plays rendered PCM.
type Device interface {
	SampleRate() int
	Play(pcm []byte) error
}

// Opener acquires a Device. It is called at most once per Player.
type Opener func() (Device, error)

type bell struct {
	w io.Writer
}

// OpenBell returns an Opener that rings the terminal bell on w for every
// effect. Used for SSH sessions, where the server's speaker is useless.
func OpenBell(w io.Writer) Opener {
	return func() (Device, error) {
		if w == nil {
			return nil, fmt.Errorf("audio: no writer for bell")
		}
		return bell{w: w}, nil
	}
}

func (b bell) SampleRate() int { return DefaultSampleRate }

func (b bell) Play([]byte) error {
	_, err := io.WriteString(b.w, "\a")
	return err
}

type silent struct{}

// OpenSilent returns an Opener for a device that discards everything.
func OpenSilent() Opener {
	return func() (Device, error) { return silent{}, nil }
}

func (silent) SampleRate() int   { return DefaultSampleRate }
func (silent) Play([]byte) error { return nil }
