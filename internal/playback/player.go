// Package playback keeps one caption active in sync with a media clock.
package playback

import "time"

// Player is the playable-media collaborator: something that reports a
// playback position and duration and accepts seek and volume requests.
// Decoding and transport control live behind this interface.
type Player interface {
	// Position retrieves the current playback offset.
	Position() (time.Duration, error)

	// Duration retrieves the total length of the loaded media.
	Duration() (time.Duration, error)

	// Seek moves playback to an absolute offset.
	Seek(offset time.Duration) error

	// SetVolume sets the playback volume in the range [0, 1].
	SetVolume(level float64) error
}
