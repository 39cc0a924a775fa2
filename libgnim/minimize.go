package libgnim

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

func stickComparator(a, b interface{}) int {
	return a.(gnim.Stick).Compare(b.(gnim.Stick))
}

// Minimize reduces a generating set to its canonical minimal form: a
// generator whose head another generator's head strictly dominates is
// dropped, and a survivor whose tail some other head dominates is
// tail-reduced one step (its head is re-paired with that generator's tail).
// The result is deduplicated and returned in canonical stick order.
func Minimize(basis []gnim.Stick, ord gnim.Ordering) []gnim.Stick {
	canonic := redblacktree.NewWith(stickComparator)

	for i, f := range basis {
		if f.IsTrivial() {
			continue
		}

		head := f.Head(ord)
		redundant := false
		for j, g := range basis {
			if j == i || g.IsTrivial() {
				continue
			}
			gh := g.Head(ord)
			if gh != head && gh.SouthwestOf(head) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}

		kept := f
		tail := f.Tail(ord)
		for j, g := range basis {
			if j == i || g.IsTrivial() {
				continue
			}
			if g.Head(ord).SouthwestOf(tail) {
				kept = gnim.NewStick(head, g.Tail(ord))
				break
			}
		}
		if !kept.IsTrivial() {
			canonic.Put(kept, nil)
		}
	}

	out := make([]gnim.Stick, 0, canonic.Size())
	it := canonic.Iterator()
	for it.Next() {
		out = append(out, it.Key().(gnim.Stick))
	}
	return out
}

// SameBasis reports whether the two generating sets minimize to the same
// canonical set under ord. Order and duplicates in either input are
// irrelevant.
func SameBasis(a, b []gnim.Stick, ord gnim.Ordering) bool {
	ma, mb := Minimize(a, ord), Minimize(b, ord)
	if len(ma) != len(mb) {
		return false
	}
	for i := range ma {
		if ma[i] != mb[i] {
			return false
		}
	}
	return true
}
