// Package libgnim implements the Groebner-Nim rewriting engine: S-stick
// construction, reduction, the completion loop with its pruning criteria,
// basis minimization, the configuration grammar, and the interactive
// session that drives a single game on top of it all.
package libgnim

import (
	"github.com/johnperry-math/Groebner-Nim/gnim"
)

// SPair builds the S-stick of two generators under ord. The lattice join of
// the two heads is the meeting point (the LCM of the leading monomials);
// each tail is translated by the offset that would carry its head there.
// The result is trivial exactly when the pair cancels on its own.
func SPair(s1, s2 gnim.Stick, ord gnim.Ordering) gnim.Stick {
	h1, h2 := s1.Head(ord), s2.Head(ord)
	meet := h1.Join(h2)
	t1 := s1.Tail(ord).Add(meet.Sub(h1))
	t2 := s2.Tail(ord).Add(meet.Sub(h2))
	return gnim.NewStick(t1, t2)
}

// Pair is a pending pair of working-list indices, stored with I < J.
type Pair struct {
	I, J int
}

func orderedPair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}
	return Pair{I: i, J: j}
}

// pairLess orders the pending queue: the pair whose heads' join the
// ordering does not prefer comes first, giving a "least LCM first"
// selection strategy.
func pairLess(work []gnim.Stick, a, b Pair, ord gnim.Ordering) bool {
	ja := work[a.I].Head(ord).Join(work[a.J].Head(ord))
	jb := work[b.I].Head(ord).Join(work[b.J].Head(ord))
	if ja == jb {
		return false
	}
	return ord.Prefer(ja, jb) == jb
}
