package libgnim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnperry-math/Groebner-Nim/gnim"
	"github.com/johnperry-math/Groebner-Nim/libgnim"
)

func TestRandomConfigDeterministic(t *testing.T) {
	a := libgnim.RandomConfig(rand.New(rand.NewSource(42)), libgnim.Medium)
	b := libgnim.RandomConfig(rand.New(rand.NewSource(42)), libgnim.Medium)
	require.Equal(t, a, b)
}

func TestRandomConfigWellFormed(t *testing.T) {
	sizes := map[libgnim.Difficulty]int{
		libgnim.Easy:   3,
		libgnim.Medium: 4,
		libgnim.Hard:   6,
	}
	rng := rand.New(rand.NewSource(7))

	for d, want := range sizes {
		cfg := libgnim.RandomConfig(rng, d)
		require.Len(t, cfg, want)

		seen := map[gnim.Stick]bool{}
		for _, st := range cfg {
			require.False(t, st.IsTrivial())
			require.False(t, seen[st], "dealt sticks must be distinct")
			seen[st] = true
		}
	}
}
