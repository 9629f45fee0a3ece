package engine

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// OfferSize is the number of blocks in every freshly dealt offered set.
const OfferSize = 3

// Source supplies uniformly distributed choices in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// IDSource hands out block identifiers.
type IDSource interface {
	NextID() BlockID
}

// UUIDs generates random UUIDv4 block IDs. With a nil Reader it uses the
// process-wide crypto source; a seeded reader makes IDs reproducible.
type UUIDs struct {
	Reader io.Reader
}

// NextID returns a new UUID string.
func (u UUIDs) NextID() BlockID {
	if u.Reader == nil {
		return BlockID(uuid.NewString())
	}
	id, err := uuid.NewRandomFromReader(u.Reader)
	if err != nil {
		return BlockID(uuid.NewString())
	}
	return BlockID(id.String())
}

// CounterIDs generates "<prefix><n>" IDs from a monotonic counter.
type CounterIDs struct {
	Prefix string
	next   int
}

// NextID returns the next sequential ID.
func (c *CounterIDs) NextID() BlockID {
	c.next++
	return BlockID(fmt.Sprintf("%s%d", c.Prefix, c.next))
}

// deal builds a brand-new offered set for the given level.
func (e *Engine) deal(level int) []Block {
	templates := AllShapeTemplates()
	palette := e.paletteFor(level)

	blocks := make([]Block, 0, OfferSize)
	for range OfferSize {
		shape := templates[e.cfg.Source.Intn(len(templates))]
		color := palette[e.cfg.Source.Intn(len(palette))]
		blocks = append(blocks, Block{
			ID:    e.cfg.IDs.NextID(),
			Shape: shape,
			Color: color,
		})
	}
	return blocks
}

// paletteFor returns the colours available at the given level.
func (e *Engine) paletteFor(level int) []Color {
	palette := e.cfg.Palette
	if e.cfg.SpecialFromLevel > 0 && level >= e.cfg.SpecialFromLevel && len(e.cfg.SpecialPalette) > 0 {
		palette = append(append([]Color(nil), palette...), e.cfg.SpecialPalette...)
	}
	return palette
}
