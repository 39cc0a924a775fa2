package libgnim

import (
	"github.com/johnperry-math/Groebner-Nim/gnim"
)

// maxReduceSteps bounds a single Reduce call. Every shipped ordering
// strictly decreases a point per rewrite so the bound is never reached;
// it guards a hypothetical Ordering for which termination does not hold.
const maxReduceSteps = 1 << 16

// Reduce rewrites stick by the generators in by until no generator's head
// dominates either of its points. Running out of reducers is the only
// success condition; a stick whose points have met is fully reduced to the
// trivial stick. The generator list is never modified.
func Reduce(stick gnim.Stick, by []gnim.Stick, ord gnim.Ordering) gnim.Stick {
	for step := 0; step < maxReduceSteps; step++ {
		if stick.IsTrivial() {
			return stick
		}

		head, tail := stick.Head(ord), stick.Tail(ord)

		target := head
		g, found := findReducer(by, head, ord)
		if !found {
			target = tail
			g, found = findReducer(by, tail, ord)
		}
		if !found {
			return stick // fully reduced, possibly non-trivial
		}

		// Rewrite the dominated point: subtract the reducer's head,
		// add its tail, and keep the other point unchanged.
		moved := target.Sub(g.Head(ord)).Add(g.Tail(ord))
		if target == head {
			stick = gnim.NewStick(moved, tail)
		} else {
			stick = gnim.NewStick(head, moved)
		}
	}
	return stick
}

func findReducer(by []gnim.Stick, pt gnim.Point, ord gnim.Ordering) (gnim.Stick, bool) {
	for _, g := range by {
		if g.IsTrivial() {
			continue
		}
		if g.Head(ord).SouthwestOf(pt) {
			return g, true
		}
	}
	return gnim.Stick{}, false
}
