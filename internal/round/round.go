// Package round generates ChromaPulse targets: which color must be pressed
// and where it is shown on the board.
package round

import (
	"fmt"

	"github.com/vovakirdan/chromapulse/internal/core"
)

// Board geometry
const (
	CircleCount   = 10              // Circles on the ring
	SlotOutcomes  = CircleCount + 2 // Circles plus the two edge indicators
	slotEdgeLeft  = CircleCount     // Slot index of the left edge
	slotEdgeRight = CircleCount + 1 // Slot index of the right edge
)

// SlotKind is where a target is displayed.
type SlotKind int

const (
	SlotCircle SlotKind = iota
	SlotEdgeLeft
	SlotEdgeRight
)

// String returns the slot kind as used by the presentation layer.
func (k SlotKind) String() string {
	switch k {
	case SlotCircle:
		return "circle"
	case SlotEdgeLeft:
		return "edge-left"
	case SlotEdgeRight:
		return "edge-right"
	default:
		return "unknown"
	}
}

// Slot is a target position. Circle is the ring index for SlotCircle and -1
// for the edges.
type Slot struct {
	Kind   SlotKind
	Circle int
}

// CircleSlot returns the slot for ring position i.
func CircleSlot(i int) Slot {
	return Slot{Kind: SlotCircle, Circle: i}
}

// EdgeSlot returns the slot for an edge indicator.
func EdgeSlot(kind SlotKind) Slot {
	return Slot{Kind: kind, Circle: -1}
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	if s.Kind == SlotCircle {
		return fmt.Sprintf("circle(%d)", s.Circle)
	}
	return s.Kind.String()
}

// Round is one live target.
type Round struct {
	Color core.GameColor
	Slot  Slot
}

// Decor holds the cosmetic colors shown alongside a round. Only the edge
// that carries the target is constrained; everything else is random.
type Decor struct {
	LeftRect  core.GameColor
	RightRect core.GameColor
	EdgeLeft  core.GameColor
	EdgeRight core.GameColor
}
