package game

import (
	"fmt"
	"strings"
)

// DebugReport renders the last lastTicks of SimLog activity around the
// current tick, with a summary header. The interactive host copies this
// to the clipboard on a key press for bug reports.
func DebugReport(log *SimLog, currentTick, lastTicks int, body *Body, w Weapon) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	fromTick := currentTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Trigger-Step debug report ---\n")
	fmt.Fprintf(&b, "tick_range=[%d..%d] ticks=%d\n", fromTick, currentTick, currentTick-fromTick+1)
	if body != nil {
		fmt.Fprintf(&b, "body pos=(%.2f,%.2f,%.2f) vel=(%.2f,%.2f,%.2f) height=%.2f\n",
			body.Pos.X, body.Pos.Y, body.Pos.Z,
			body.Vel.X, body.Vel.Y, body.Vel.Z, body.Height)
	}
	if w != nil {
		fmt.Fprintf(&b, "weapon mag=%d/%d reserve=%d\n", w.AmmoCurrent(), w.AmmoCapacity(), w.AmmoReserve())
	}
	b.WriteString("\n== timeline ==\n")
	dump := log.Dump(fromTick, currentTick)
	if dump == "" {
		b.WriteString("(no entries in window)\n")
	} else {
		b.WriteString(dump)
	}
	return b.String()
}
