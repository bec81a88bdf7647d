package overlay

// interaction mode of the positioner
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

// part of the overlay a pointer-down landed on
type Region int

const (
	RegionBody Region = iota
	RegionResizeHandle
)

// anchor percentages are held inside a fixed margin so the overlay can
// never be dragged fully off-frame
const (
	minPercent = 10
	maxPercent = 90
)

// floor for resize operations, keeps the box from degenerating
const (
	MinWidth  = 80
	MinHeight = 32
)

// ephemeral pointer session, created on pointer-down and destroyed on
// pointer-up
type session struct {
	mode Mode

	// dragging: offset between the pointer and the anchor at grab time,
	// in pixel space, so moves preserve the grab point
	dragStart Point

	// resizing: pointer and size captured at session start
	resizeStart Point
	startSize   Size
}

// Positioner is the pointer-driven state machine behind the caption
// overlay. It owns the anchor and size; a rendering layer reads them back
// and redraws, it is never a source of truth.
type Positioner struct {
	anchor  Anchor
	size    Size
	session *session
}

// DefaultAnchor is the classic lower-center subtitle position.
var DefaultAnchor = Anchor{X: 50, Y: 15}

func NewPositioner(anchor Anchor, size Size) *Positioner {
	return &Positioner{anchor: anchor, size: size}
}

func (p *Positioner) Anchor() Anchor { return p.anchor }
func (p *Positioner) Size() Size     { return p.size }
func (p *Positioner) Mode() Mode {
	if p.session == nil {
		return ModeIdle
	}
	return p.session.mode
}

// Placement returns the current position/size payload.
func (p *Positioner) Placement() Placement {
	return Placement{Anchor: p.anchor, Size: p.size}
}

// PointerDown starts a drag or resize session depending on where the
// pointer landed. A pointer-down while a session is already active is
// ignored until pointer-up.
func (p *Positioner) PointerDown(pt Point, region Region, c Container) {
	if p.session != nil {
		return
	}

	switch region {
	case RegionResizeHandle:
		p.session = &session{
			mode:        ModeResizing,
			resizeStart: pt,
			startSize:   p.size,
		}
	default:
		anchorPx := anchorToPixel(p.anchor, c)
		p.session = &session{
			mode:      ModeDragging,
			dragStart: Point{X: pt.X - anchorPx.X, Y: pt.Y - anchorPx.Y},
		}
	}
}

// PointerMove advances the active session. Moves while idle are ignored.
func (p *Positioner) PointerMove(pt Point, c Container) {
	if p.session == nil {
		return
	}

	switch p.session.mode {
	case ModeDragging:
		if c.Width <= 0 || c.Height <= 0 {
			// degenerate container, leave the anchor unchanged
			return
		}
		anchorPx := Point{
			X: pt.X - p.session.dragStart.X,
			Y: pt.Y - p.session.dragStart.Y,
		}
		a := pixelToAnchor(anchorPx, c)
		p.anchor = Anchor{
			X: clamp(a.X, minPercent, maxPercent),
			Y: clamp(a.Y, minPercent, maxPercent),
		}
	case ModeResizing:
		// bottom-right handle: the pointer delta grows the box
		p.size = Size{
			Width:  max(p.session.startSize.Width+(pt.X-p.session.resizeStart.X), MinWidth),
			Height: max(p.session.startSize.Height+(pt.Y-p.session.resizeStart.Y), MinHeight),
		}
	}
}

// PointerUp ends any active session, wherever the pointer is. Leaving the
// container does not cancel a session; only pointer-up does.
func (p *Positioner) PointerUp() {
	p.session = nil
}
