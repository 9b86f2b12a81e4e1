package models

import (
	"time"

	"github.com/google/uuid"
)

// Position is one entry of a sport's position catalog. IDs are unique within
// a sport only.
type Position struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description,omitempty"`
}

// Sport owns an ordered position catalog and the stats schema its players use.
type Sport struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StatsKind   StatsKind  `json:"statsKind"`
	Positions   []Position `json:"positions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Catalog returns an id-indexed view of the sport's positions.
func (s *Sport) Catalog() *PositionCatalog {
	return NewPositionCatalog(s.Positions)
}

// PositionCatalog keeps positions in order and indexed by id so catalogs can
// be looked up and diffed.
type PositionCatalog struct {
	positions []Position
	index     map[string]int
}

func NewPositionCatalog(positions []Position) *PositionCatalog {
	c := &PositionCatalog{
		positions: make([]Position, len(positions)),
		index:     make(map[string]int, len(positions)),
	}
	copy(c.positions, positions)
	for i, p := range c.positions {
		c.index[p.ID] = i
	}
	return c
}

// Positions returns the catalog in order. Never nil.
func (c *PositionCatalog) Positions() []Position {
	out := make([]Position, len(c.positions))
	copy(out, c.positions)
	return out
}

func (c *PositionCatalog) Len() int { return len(c.positions) }

func (c *PositionCatalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

func (c *PositionCatalog) Get(id string) (Position, bool) {
	i, ok := c.index[id]
	if !ok {
		return Position{}, false
	}
	return c.positions[i], true
}

// Removed returns the positions of c whose ids are absent from next.
func (c *PositionCatalog) Removed(next *PositionCatalog) []Position {
	var removed []Position
	for _, p := range c.positions {
		if !next.Has(p.ID) {
			removed = append(removed, p)
		}
	}
	return removed
}
