package snake

import "github.com/vkarpenko/tui-sims/internal/core"

// Snapshot captures the read-only per-frame state handed to external
// collaborators: the ordered body (tail first, head last), food, and status.
type Snapshot struct {
	Cols, Rows     int
	Body           []core.Point
	Head           core.Point
	Food           core.Point
	Dir            Direction
	Dead           bool
	Length         int
	StepEveryTicks int
}

// Snapshot returns the current engine snapshot. The body slice is a copy.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Cols:           e.cols,
		Rows:           e.rows,
		Body:           append([]core.Point(nil), e.body...),
		Head:           e.body[len(e.body)-1],
		Food:           e.food,
		Dir:            e.dir,
		Dead:           e.dead,
		Length:         len(e.body),
		StepEveryTicks: e.stepEveryTicks,
	}
}
