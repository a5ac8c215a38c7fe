//go:build !nospeaker

package speaker

import (
	"fmt"
	"sync"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/memory-match/internal/audio"
)

// keepPlayers bounds how many recent players stay referenced so the garbage
// collector does not cut a sound short.
const keepPlayers = 8

type speaker struct {
	mu      sync.Mutex
	ctx     *ebitenaudio.Context
	players []*ebitenaudio.Player
}

// Open returns an Opener for the system audio output.
func Open() audio.Opener {
	return func() (dev audio.Device, err error) {
		// ebiten panics when the audio driver cannot be set up.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("speaker: cannot open audio output: %v", r)
			}
		}()

		ctx := ebitenaudio.CurrentContext()
		if ctx == nil {
			ctx = ebitenaudio.NewContext(audio.DefaultSampleRate)
		}
		return &speaker{ctx: ctx}, nil
	}
}

func (s *speaker) SampleRate() int {
	return s.ctx.SampleRate()
}

func (s *speaker) Play(pcm []byte) error {
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.Play()

	s.mu.Lock()
	s.players = append(s.players, p)
	if len(s.players) > keepPlayers {
		s.players = s.players[len(s.players)-keepPlayers:]
	}
	s.mu.Unlock()
	return nil
}
