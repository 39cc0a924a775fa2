package gnim

import (
	"fmt"
	"strings"
)

// OrderKind discriminates the closed set of Ordering implementations.
type OrderKind byte

const (
	OrderGrevLex OrderKind = 1 + iota
	OrderLex
	OrderWeightedGrevLex
)

// Ordering picks the preferred of two points -- the game's stand-in for a
// monomial order. Prefer is total, deterministic, and returns its second
// argument on ties, so Prefer(p, p) == p always holds.
//
// The set of implementations is closed: GrevLex, Lex, and WeightedGrevLex
// are the three orderings the game defines, and Kind() lets consumers
// (catalog keys, script bindings) switch over them exhaustively.
type Ordering interface {
	Prefer(p1, p2 Point) Point
	Kind() OrderKind
	String() string
}

// GrevLex favors the larger coordinate sum, breaking ties by larger x.
type GrevLex struct{}

func (GrevLex) Prefer(p1, p2 Point) Point {
	s1, s2 := p1.X+p1.Y, p2.X+p2.Y
	if s1 > s2 {
		return p1
	}
	if s1 < s2 {
		return p2
	}
	if p1.X > p2.X {
		return p1
	}
	return p2
}

func (GrevLex) Kind() OrderKind { return OrderGrevLex }
func (GrevLex) String() string  { return "grevlex" }

// Lex favors the larger x coordinate, breaking ties by larger y.
type Lex struct{}

func (Lex) Prefer(p1, p2 Point) Point {
	if p1.X > p2.X {
		return p1
	}
	if p1.X < p2.X {
		return p2
	}
	if p1.Y > p2.Y {
		return p1
	}
	return p2
}

func (Lex) Kind() OrderKind { return OrderLex }
func (Lex) String() string  { return "lex" }

// WeightedGrevLex applies non-negative integer weights to each coordinate
// before the GrevLex rule. Each instance owns its weights, so adjusting one
// session's ordering cannot be observed by another.
type WeightedGrevLex struct {
	wx, wy int
}

// NewWeightedGrevLex returns a weighted ordering, rejecting negative weights.
func NewWeightedGrevLex(wx, wy int) (*WeightedGrevLex, error) {
	w := &WeightedGrevLex{}
	if err := w.SetWeights(wx, wy); err != nil {
		return nil, err
	}
	return w, nil
}

// SetWeights replaces both weights, affecting all subsequent Prefer calls
// on this instance. Fails with ErrNegativeWeight if either is negative.
func (w *WeightedGrevLex) SetWeights(wx, wy int) error {
	if wx < 0 || wy < 0 {
		return ErrNegativeWeight
	}
	w.wx, w.wy = wx, wy
	return nil
}

// Weights returns the current weights.
func (w *WeightedGrevLex) Weights() (wx, wy int) {
	return w.wx, w.wy
}

func (w *WeightedGrevLex) Prefer(p1, p2 Point) Point {
	s1 := w.wx*p1.X + w.wy*p1.Y
	s2 := w.wx*p2.X + w.wy*p2.Y
	if s1 > s2 {
		return p1
	}
	if s1 < s2 {
		return p2
	}
	if p1.X > p2.X {
		return p1
	}
	return p2
}

func (w *WeightedGrevLex) Kind() OrderKind { return OrderWeightedGrevLex }

func (w *WeightedGrevLex) String() string {
	return fmt.Sprintf("wgrevlex:%d,%d", w.wx, w.wy)
}

// OrderingByName parses "grevlex", "lex", or "wgrevlex:<wx>,<wy>".
// The empty string defaults to grevlex, the game's usual order.
func OrderingByName(name string) (Ordering, error) {
	switch {
	case name == "" || name == "grevlex":
		return GrevLex{}, nil
	case name == "lex":
		return Lex{}, nil
	case strings.HasPrefix(name, "wgrevlex:"):
		var wx, wy int
		if _, err := fmt.Sscanf(name[len("wgrevlex:"):], "%d,%d", &wx, &wy); err != nil {
			return nil, ErrBadOrderingName
		}
		return NewWeightedGrevLex(wx, wy)
	}
	return nil, ErrBadOrderingName
}
