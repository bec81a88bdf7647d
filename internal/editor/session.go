// Package editor binds the caption engine, the overlay positioner and the
// playable-media collaborator into one authoring session.
package editor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/0xguv/overcue/internal/caption"
	"github.com/0xguv/overcue/internal/config"
	"github.com/0xguv/overcue/internal/overlay"
	"github.com/0xguv/overcue/internal/playback"
)

// Session is the state behind one open editor: the cue sequence in sync
// with the player clock, and the overlay box the user positions over the
// frame. The host playback loop drives Refresh; pointer events go straight
// to the Positioner.
type Session struct {
	Engine     *playback.Engine
	Positioner *overlay.Positioner

	player playback.Player
}

func NewSession(cues []caption.Caption, player playback.Player) *Session {
	return &Session{
		Engine:     playback.NewEngine(cues),
		Positioner: overlay.NewPositioner(overlay.DefaultAnchor, overlay.Size{Width: 320, Height: 80}),
		player:     player,
	}
}

// NewSessionFromConfig applies the user's configured overlay defaults.
func NewSessionFromConfig(
	cues []caption.Caption,
	player playback.Player,
	cfg *config.Config,
) *Session {
	s := NewSession(cues, player)
	s.Positioner = overlay.NewPositioner(
		overlay.Anchor{X: cfg.Overlay.AnchorX, Y: cfg.Overlay.AnchorY},
		overlay.Size{Width: cfg.Overlay.Width, Height: cfg.Overlay.Height},
	)
	return s
}

// Refresh polls the player position, updates the active cue derivation and
// returns the text the overlay should render.
func (s *Session) Refresh() (string, error) {
	pos, err := s.player.Position()
	if err != nil {
		return "", fmt.Errorf("failed to read playback position: %w", err)
	}
	s.Engine.OnTimeUpdate(pos)
	return s.Engine.ActiveText(), nil
}

// Select jumps playback to the start of a cue, the timeline-click behavior.
func (s *Session) Select(id int) error {
	return s.Engine.SeekTo(s.player, id)
}

// SetVolume forwards a volume change to the player, clamped to [0, 1].
func (s *Session) SetVolume(level float64) error {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	return s.player.SetVolume(level)
}

// export payload: the edited cues plus where the overlay sits
type exportData struct {
	Captions  []exportCue       `json:"captions"`
	Placement overlay.Placement `json:"placement"`
}

type exportCue struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Export writes the session state as JSON for the surrounding save/burn
// layer: cue timings in seconds plus the overlay placement.
func (s *Session) Export(w io.Writer) error {
	cues := s.Engine.Captions()
	data := exportData{
		Captions:  make([]exportCue, 0, len(cues)),
		Placement: s.Positioner.Placement(),
	}
	for _, cue := range cues {
		data.Captions = append(data.Captions, exportCue{
			ID:    cue.ID,
			Start: cue.Start.Seconds(),
			End:   cue.End.Seconds(),
			Text:  cue.Text,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
