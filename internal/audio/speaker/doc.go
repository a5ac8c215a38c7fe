// Package speaker plays sound effects on the local audio output through
// ebiten's audio context. On Linux the driver needs cgo and ALSA headers;
// build with -tags nospeaker to leave it out, which makes play fall back to
// silence.
package speaker
