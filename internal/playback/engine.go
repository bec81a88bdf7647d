package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/0xguv/overcue/internal/caption"
)

// Engine owns the caption sequence after parsing and derives which cue is
// active for the current playback position. The active flag is a projection
// recomputed from scratch on every clock update, never patched
// incrementally.
type Engine struct {
	mu      sync.Mutex
	cues    []caption.Caption
	current string
}

func NewEngine(cues []caption.Caption) *Engine {
	e := &Engine{}
	e.Load(cues)
	return e
}

// Load replaces the whole caption sequence. Previous cues and their active
// state are discarded.
func (e *Engine) Load(cues []caption.Caption) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cues = make([]caption.Caption, len(cues))
	copy(e.cues, cues)
	for i := range e.cues {
		e.cues[i].Active = false
	}
	e.current = ""
}

// OnTimeUpdate recomputes the active flag of every cue for the given
// playback position. The interval test is inclusive on both ends, so
// overlapping cues may all be marked active; the visible text comes from
// the first active cue in sequence order.
func (e *Engine) OnTimeUpdate(t time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = ""
	for i := range e.cues {
		e.cues[i].Active = e.cues[i].Contains(t)
		if e.cues[i].Active && e.current == "" {
			e.current = e.cues[i].Text
		}
	}
}

// ActiveText returns the text of the first active cue, or the empty string
// when no cue covers the last reported position.
func (e *Engine) ActiveText() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Lookup finds a cue by ID.
func (e *Engine) Lookup(id int) (caption.Caption, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, cue := range e.cues {
		if cue.ID == id {
			return cue, true
		}
	}
	return caption.Caption{}, false
}

// UpdateText replaces the text of the cue with the given ID, leaving timing
// and active state untouched. Unknown IDs are a no-op.
func (e *Engine) UpdateText(id int, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.cues {
		if e.cues[i].ID == id {
			e.cues[i].Text = text
			if e.cues[i].Active {
				// keep the visible text consistent with the edit
				e.refreshCurrentLocked()
			}
			return
		}
	}
}

func (e *Engine) refreshCurrentLocked() {
	e.current = ""
	for _, cue := range e.cues {
		if cue.Active {
			e.current = cue.Text
			return
		}
	}
}

// Captions returns a snapshot of the sequence for list rendering.
func (e *Engine) Captions() []caption.Caption {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]caption.Caption, len(e.cues))
	copy(out, e.cues)
	return out
}

// SeekTo asks the player to jump to the start of the cue with the given ID,
// the behavior behind selecting a cue in a timeline list.
func (e *Engine) SeekTo(p Player, id int) error {
	cue, ok := e.Lookup(id)
	if !ok {
		return fmt.Errorf("no caption with id %d", id)
	}
	if err := p.Seek(cue.Start); err != nil {
		return fmt.Errorf("seek to %s failed: %w", caption.FormatTimecode(cue.Start), err)
	}
	return nil
}
