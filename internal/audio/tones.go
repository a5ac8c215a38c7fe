package audio

import (
	"math"
)

// Tone is one oscillator voice: a sine wave whose frequency and gain follow
// exponential ramps. Times are in seconds relative to the start of the effect.
type Tone struct {
	Offset   float64 // Start time
	Duration float64 // Stop time, relative to Offset
	Freq     float64 // Start frequency in Hz
	FreqTo   float64 // Target frequency; 0 keeps Freq
	FreqRamp float64 // Time to reach FreqTo
	Gain     float64 // Start gain (0..1)
	GainTo   float64 // Target gain
	GainRamp float64 // Time to reach GainTo
}

// Effect is a fixed sequence of tones.
type Effect struct {
	Name  string
	Tones []Tone
}

// Length returns the effect length in seconds.
func (e Effect) Length() float64 {
	var end float64
	for _, t := range e.Tones {
		end = math.Max(end, t.Offset+t.Duration)
	}
	return end
}

// Notes used by the effects.
const (
	NoteE4 = 329.63
	NoteG4 = 392.00
	NoteC5 = 523.25
	NoteD5 = 587.33
	NoteE5 = 659.25
	NoteG5 = 783.99
)

var (
	// EffectMatch is a short happy rising chirp.
	EffectMatch = Effect{Name: "match", Tones: []Tone{
		{Duration: 0.2, Freq: NoteC5, FreqTo: NoteE5, FreqRamp: 0.1, Gain: 0.3, GainTo: 0.01, GainRamp: 0.2},
	}}

	// EffectNoMatch is a gentle falling tone.
	EffectNoMatch = Effect{Name: "no-match", Tones: []Tone{
		{Duration: 0.15, Freq: NoteG4, FreqTo: NoteE4, FreqRamp: 0.1, Gain: 0.2, GainTo: 0.01, GainRamp: 0.15},
	}}

	// EffectClick is a quiet blip for buttons.
	EffectClick = Effect{Name: "click", Tones: []Tone{
		{Duration: 0.05, Freq: 800, Gain: 0.1, GainTo: 0.01, GainRamp: 0.05},
	}}

	// EffectWin plays C5 D5 E5 G5.
	EffectWin = winMelody(0.15, NoteC5, NoteD5, NoteE5, NoteG5)
)

func winMelody(step float64, notes ...float64) Effect {
	e := Effect{Name: "win"}
	for i, f := range notes {
		e.Tones = append(e.Tones, Tone{
			Offset:   float64(i) * step,
			Duration: step,
			Freq:     f,
			Gain:     0.3,
			GainTo:   0.01,
			GainRamp: step,
		})
	}
	return e
}

// expRamp moves exponentially from a to b over ramp seconds and holds b after.
func expRamp(a, b, ramp, t float64) float64 {
	if b == 0 || ramp <= 0 || a <= 0 {
		return a
	}
	if t >= ramp {
		return b
	}
	return a * math.Pow(b/a, t/ramp)
}

// Render mixes the effect into signed 16-bit little-endian stereo PCM.
func Render(e Effect, sampleRate int) []byte {
	n := int(math.Round(e.Length() * float64(sampleRate)))
	mix := make([]float64, n)

	for _, tone := range e.Tones {
		start := int(tone.Offset * float64(sampleRate))
		count := int(tone.Duration * float64(sampleRate))
		phase := 0.0
		for i := 0; i < count && start+i < n; i++ {
			t := float64(i) / float64(sampleRate)
			freq := expRamp(tone.Freq, tone.FreqTo, tone.FreqRamp, t)
			gain := expRamp(tone.Gain, tone.GainTo, tone.GainRamp, t)
			mix[start+i] += math.Sin(phase) * gain
			phase += 2 * math.Pi * freq / float64(sampleRate)
		}
	}

	buf := make([]byte, n*4)
	for i, v := range mix {
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(s)
			buf[idx+1] = byte(s >> 8)
		}
	}
	return buf
}
