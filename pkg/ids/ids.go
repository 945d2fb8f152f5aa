// Package ids issues the integer identifiers stored in collection snapshots.
//
// The persisted shape keeps the original millisecond-epoch ids, but the
// generator enforces strict monotonicity within a process so that rapid
// successive creates can never collide.
package ids

import (
	"sync"
	"time"
)

type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Next returns a unique, strictly increasing id.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
