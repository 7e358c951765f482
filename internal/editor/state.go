package editor

import "seatwise/internal/geometry"

// state is the designer's interaction mode. Exactly one state is active at a
// time; pointer events move the session between them. The marker method keeps
// the set of states closed.
type state interface {
	editorState()
}

// idle is the rest state: no drag or pan in progress.
type idle struct{}

// draggingSection tracks a section drag. grab is the offset from the section
// origin to the pointer at drag start, so the section does not jump under the
// cursor.
type draggingSection struct {
	sectionID string
	grab      geometry.Point
}

// draggingLabel tracks a section label drag. Label offsets are cosmetic and
// live on the session, not the layout document.
type draggingLabel struct {
	sectionID string
	grab      geometry.Point
}

// panning tracks a canvas pan: the pointer position at pan start and the pan
// the viewport had then.
type panning struct {
	start     geometry.Point
	originPan geometry.Point
}

func (idle) editorState()            {}
func (draggingSection) editorState() {}
func (draggingLabel) editorState()   {}
func (panning) editorState()         {}

// Mode names reported to clients.
const (
	ModeIdle            = "idle"
	ModeDraggingSection = "dragging_section"
	ModeDraggingLabel   = "dragging_label"
	ModePanning         = "panning"
)

func modeName(s state) string {
	switch s.(type) {
	case draggingSection:
		return ModeDraggingSection
	case draggingLabel:
		return ModeDraggingLabel
	case panning:
		return ModePanning
	default:
		return ModeIdle
	}
}
