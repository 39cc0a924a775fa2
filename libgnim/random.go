package libgnim

import (
	"math/rand"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

// Difficulty selects the size and spread of a random starting configuration.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) params() (sticks, span int) {
	switch d {
	case Medium:
		return 4, 6
	case Hard:
		return 6, 9
	default:
		return 3, 4
	}
}

// RandomConfig deals a deduplicated configuration of distinct-point sticks
// inside a difficulty-scaled box. Deterministic for a given rng.
func RandomConfig(rng *rand.Rand, d Difficulty) []gnim.Stick {
	want, span := d.params()

	seen := NewStickSet()
	defer seen.Close()

	cfg := make([]gnim.Stick, 0, want)
	for len(cfg) < want {
		a := gnim.Point{X: rng.Intn(span + 1), Y: rng.Intn(span + 1)}
		b := gnim.Point{X: rng.Intn(span + 1), Y: rng.Intn(span + 1)}
		if a == b {
			continue
		}
		st := gnim.NewStick(a, b)
		if seen.TryAdd(st) {
			cfg = append(cfg, st)
		}
	}
	return cfg
}
