package libgnim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

func TestBuchbergerProductivePair(t *testing.T) {
	ord := gnim.GrevLex{}
	a := gnim.NewStick(gnim.Point{X: 1, Y: 1}, gnim.Point{X: 0, Y: 1})
	b := gnim.NewStick(gnim.Point{X: 2, Y: 1}, gnim.Point{X: 0, Y: 2})

	basis, count := BuchbergerBasis([]gnim.Stick{a, b}, ord)

	// One productive pair yields (0,1)-(0,2); the follow-up pair reduces to
	// trivial and the last is chain-pruned, so only the productive pair
	// counts toward the score.
	c := gnim.NewStick(gnim.Point{X: 0, Y: 1}, gnim.Point{X: 0, Y: 2})
	require.Equal(t, []gnim.Stick{a, b, c}, basis)
	require.Equal(t, 1, count)
}

func TestBuchbergerCoprimeHeadsNeedNoWork(t *testing.T) {
	ord := gnim.GrevLex{}
	origin := gnim.Point{}
	input := []gnim.Stick{
		gnim.NewStick(origin, gnim.Point{X: 0, Y: 2}),
		gnim.NewStick(origin, gnim.Point{X: 2, Y: 0}),
	}

	// Heads (0,2) and (2,0) sit on opposite axes, so the only pair is
	// pruned before any S-stick forms.
	basis, count := BuchbergerBasis(input, ord)
	require.Equal(t, input, basis)
	require.Zero(t, count)

	require.Equal(t, Minimize(basis, ord), Minimize(Minimize(basis, ord), ord))
}

func TestBuchbergerAlreadyComplete(t *testing.T) {
	ord := gnim.GrevLex{}
	a := gnim.NewStick(gnim.Point{X: 1, Y: 1}, gnim.Point{X: 0, Y: 1})
	c := gnim.NewStick(gnim.Point{X: 0, Y: 1}, gnim.Point{X: 0, Y: 2})

	// The single pair's S-stick reduces to trivial; a trailing run of
	// non-productive pairs never counts.
	basis, count := BuchbergerBasis([]gnim.Stick{a, c}, ord)
	require.Equal(t, []gnim.Stick{a, c}, basis)
	require.Zero(t, count)
}

func TestPrunedPairNeverProcessed(t *testing.T) {
	ord := gnim.GrevLex{}
	origin := gnim.Point{}
	input := []gnim.Stick{
		gnim.NewStick(origin, gnim.Point{X: 5, Y: 0}),
		gnim.NewStick(origin, gnim.Point{X: 0, Y: 3}),
		gnim.NewStick(gnim.Point{X: 1, Y: 1}, gnim.Point{X: 0, Y: 1}),
	}

	var trace []Pair
	complete(input, ord, &trace)

	require.NotContains(t, trace, Pair{I: 0, J: 1},
		"a coprime-axis-head pair must never reach the processing loop")
}

func TestPairLessOrdersByJoin(t *testing.T) {
	ord := gnim.GrevLex{}
	work := []gnim.Stick{
		gnim.NewStick(gnim.Point{X: 1, Y: 1}, gnim.Point{X: 0, Y: 1}),
		gnim.NewStick(gnim.Point{X: 2, Y: 1}, gnim.Point{X: 0, Y: 2}),
		gnim.NewStick(gnim.Point{X: 0, Y: 1}, gnim.Point{X: 0, Y: 2}),
	}

	// Joins: {0,2} -> (1,2), {1,2} -> (2,2). The lesser join comes first.
	require.True(t, pairLess(work, Pair{I: 0, J: 2}, Pair{I: 1, J: 2}, ord))
	require.False(t, pairLess(work, Pair{I: 1, J: 2}, Pair{I: 0, J: 2}, ord))

	// Equal joins never report less, keeping the sort stable.
	require.False(t, pairLess(work, Pair{I: 0, J: 2}, Pair{I: 0, J: 2}, ord))
}
