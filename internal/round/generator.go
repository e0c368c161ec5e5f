package round

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/chromapulse/internal/core"
)

// Advance delay tuning (milliseconds)
const (
	advanceBaseMS   = 350
	advanceMinMS    = 50
	advanceSpeedMS  = 50
	advanceJitterMS = 150
)

// Generator draws rounds from a seeded RNG.
// It remembers the last circle it produced so a circle target never
// appears twice in a row.
type Generator struct {
	rng        *rand.Rand
	palette    core.Palette
	lastCircle int
}

// NewGenerator creates a generator with the given RNG seed.
// A nil or empty palette selects core.DefaultPalette.
func NewGenerator(seed int64, palette core.Palette) *Generator {
	if len(palette) == 0 {
		palette = core.DefaultPalette
	}
	g := &Generator{palette: palette}
	g.Reset(seed)
	return g
}

// Reset reseeds the RNG and forgets the previous circle.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.lastCircle = -1
}

// Palette returns the colors rounds are drawn from.
func (g *Generator) Palette() core.Palette {
	return g.palette
}

// Next draws the next round and its decoration.
func (g *Generator) Next() (Round, Decor) {
	target := g.palette[g.rng.Intn(len(g.palette))]

	var slot Slot
	switch idx := g.rng.Intn(SlotOutcomes); {
	case idx < CircleCount:
		for idx == g.lastCircle {
			idx = g.rng.Intn(CircleCount)
		}
		slot = CircleSlot(idx)
		g.lastCircle = idx
	case idx == slotEdgeLeft:
		slot = EdgeSlot(SlotEdgeLeft)
		g.lastCircle = -1
	default:
		slot = EdgeSlot(SlotEdgeRight)
		g.lastCircle = -1
	}

	decor := Decor{
		LeftRect:  g.randomColor(),
		RightRect: g.randomColor(),
	}
	switch slot.Kind {
	case SlotEdgeLeft:
		decor.EdgeLeft = target
		decor.EdgeRight = g.randomColor()
	case SlotEdgeRight:
		decor.EdgeRight = target
		decor.EdgeLeft = g.randomColor()
	default:
		decor.EdgeLeft = g.randomColor()
		decor.EdgeRight = g.randomColor()
	}

	return Round{Color: target, Slot: slot}, decor
}

// AdvanceDelay returns the randomized pause after a correct hit:
// max(50, 350 - sqrt(speed)*50) plus up to 150ms of jitter.
func (g *Generator) AdvanceDelay(speedMultiplier float64) time.Duration {
	base := math.Max(advanceMinMS, advanceBaseMS-math.Sqrt(speedMultiplier)*advanceSpeedMS)
	jitter := g.rng.Float64() * advanceJitterMS
	return time.Duration((base + jitter) * float64(time.Millisecond))
}

func (g *Generator) randomColor() core.GameColor {
	return g.palette[g.rng.Intn(len(g.palette))]
}
