//go:build nospeaker

package speaker

import (
	"errors"

	"github.com/vovakirdan/memory-match/internal/audio"
)

// ErrDisabled is returned when the binary was built without speaker support.
var ErrDisabled = errors.New("speaker: built without audio output (nospeaker)")

// Open returns an Opener that always fails.
func Open() audio.Opener {
	return func() (audio.Device, error) {
		return nil, ErrDisabled
	}
}
