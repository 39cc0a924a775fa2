package libgnim

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

// BuchbergerBasis completes input to a generating set closed under S-stick
// reduction and reports how many pair combinations were needed. The count
// excludes any trailing run of pairs that reduced to nothing after the last
// productive one -- that is the score shown to the player, so it stays.
func BuchbergerBasis(input []gnim.Stick, ord gnim.Ordering) ([]gnim.Stick, int) {
	return complete(input, ord, nil)
}

func complete(input []gnim.Stick, ord gnim.Ordering, trace *[]Pair) ([]gnim.Stick, int) {
	work := append([]gnim.Stick(nil), input...)

	var queue []Pair
	for i := 0; i < len(work); i++ {
		for j := i + 1; j < len(work); j++ {
			queue = append(queue, Pair{I: i, J: j})
		}
	}

	considered := hashset.New()
	queue = pruneQueue(queue, work, ord, nil) // seed pass: gcd criterion only
	sortQueue(queue, work, ord)

	computed, trailingTrivial := 0, 0
	for len(queue) > 0 {
		computed++
		next := queue[0]
		queue = queue[1:]
		considered.Add(next)
		if trace != nil {
			*trace = append(*trace, next)
		}

		reduced := Reduce(SPair(work[next.I], work[next.J], ord), work, ord)
		if reduced.IsTrivial() {
			trailingTrivial++
		} else {
			n := len(work)
			work = append(work, reduced)
			for i := 0; i < n; i++ {
				queue = append(queue, Pair{I: i, J: n})
			}
			trailingTrivial = 0
		}

		sortQueue(queue, work, ord)
		queue = pruneQueue(queue, work, ord, considered)
	}

	return work, computed - trailingTrivial
}

func sortQueue(queue []Pair, work []gnim.Stick, ord gnim.Ordering) {
	sort.SliceStable(queue, func(a, b int) bool {
		return pairLess(work, queue[a], queue[b], ord)
	})
}

// pruneQueue drops pending pairs that cannot contribute a new generator.
// A nil considered set applies the gcd criterion alone.
func pruneQueue(queue []Pair, work []gnim.Stick, ord gnim.Ordering, considered *hashset.Set) []Pair {
	kept := queue[:0]
	for _, pr := range queue {
		if pruneGCD(work, pr, ord) {
			continue
		}
		if considered != nil && pruneLCM(work, pr, ord, considered) {
			continue
		}
		kept = append(kept, pr)
	}
	return kept
}

// pruneGCD is Buchberger's first criterion: heads lying on opposite
// coordinate axes are coprime, so their S-stick always reduces to trivial.
func pruneGCD(work []gnim.Stick, pr Pair, ord gnim.Ordering) bool {
	h1 := work[pr.I].Head(ord)
	h2 := work[pr.J].Head(ord)
	return (h1.X == 0 && h2.Y == 0) || (h1.Y == 0 && h2.X == 0)
}

// pruneLCM is the chain criterion: a pair is redundant when a third
// generator's head divides the pair's join and both of its own pairs have
// already been considered.
func pruneLCM(work []gnim.Stick, pr Pair, ord gnim.Ordering, considered *hashset.Set) bool {
	join := work[pr.I].Head(ord).Join(work[pr.J].Head(ord))
	for k := range work {
		if k == pr.I || k == pr.J {
			continue
		}
		if !work[k].Head(ord).SouthwestOf(join) {
			continue
		}
		if considered.Contains(orderedPair(pr.I, k)) && considered.Contains(orderedPair(pr.J, k)) {
			return true
		}
	}
	return false
}
