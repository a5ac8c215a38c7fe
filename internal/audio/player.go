// Package audio plays the game's sound effects.
//
// Effects are fixed tone programs rendered to PCM on first use. The output
// device is acquired lazily; if that fails every effect becomes a no-op and
// the failure is only logged.
package audio

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Sounds is the set of effects the game triggers.
type Sounds interface {
	Match()
	NoMatch()
	Click()
	Win()
}

// Player implements Sounds on top of a lazily opened Device.
type Player struct {
	open   Opener
	logger *log.Logger

	once     sync.Once
	device   Device
	rendered map[string][]byte
}

var _ Sounds = (*Player)(nil)

// NewPlayer creates a player that opens its device on the first effect.
func NewPlayer(open Opener, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{open: open, logger: logger}
}

// Match plays the pair-found chirp.
func (p *Player) Match() { p.play(EffectMatch) }

// NoMatch plays the gentle miss tone.
func (p *Player) NoMatch() { p.play(EffectNoMatch) }

// Click plays the button blip.
func (p *Player) Click() { p.play(EffectClick) }

// Win plays the completion melody.
func (p *Player) Win() { p.play(EffectWin) }

// Available reports whether a device was acquired. It acquires one if no
// effect has been played yet.
func (p *Player) Available() bool {
	p.init()
	return p.device != nil
}

func (p *Player) init() {
	p.once.Do(func() {
		dev, err := p.open()
		if err != nil {
			p.logger.Warn("audio not available", "error", err)
			return
		}
		p.device = dev
		p.logger.Debug("audio initialized", "sample_rate", dev.SampleRate())

		p.rendered = make(map[string][]byte, 4)
		for _, e := range []Effect{EffectMatch, EffectNoMatch, EffectClick, EffectWin} {
			p.rendered[e.Name] = Render(e, dev.SampleRate())
		}
	})
}

func (p *Player) play(e Effect) {
	p.init()
	if p.device == nil {
		return
	}
	if err := p.device.Play(p.rendered[e.Name]); err != nil {
		p.logger.Warn("error playing sound", "effect", e.Name, "error", err)
	}
}
