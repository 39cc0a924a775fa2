package libgnim

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

// ConfigExpr is the textual form of a starting configuration:
//
//	(0,0)-(0,2); (0,0)-(2,0)
//
// Stick.String round-trips through this grammar.
type ConfigExpr struct {
	Sticks []*StickExpr `parser:"(@@ (\";\" @@)*)?"`
}

type StickExpr struct {
	A *PointExpr `parser:"@@"`
	B *PointExpr `parser:"\"-\" @@"`
}

type PointExpr struct {
	X int `parser:"\"(\" @Int"`
	Y int `parser:"\",\" @Int \")\""`
}

var parseConfigExpr = participle.MustBuild[ConfigExpr]()

// ParseConfig reads a configuration expression into sticks. Degenerate
// sticks fail with ErrDegenerateStick; duplicate sticks are dropped
// silently; an empty result fails with ErrEmptyConfig.
func ParseConfig(expr string) ([]gnim.Stick, error) {
	parsed, err := parseConfigExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrapf(gnim.ErrBadConfigExpr, "%v", err)
	}

	seen := NewStickSet()
	defer seen.Close()

	sticks := make([]gnim.Stick, 0, len(parsed.Sticks))
	for _, se := range parsed.Sticks {
		a := gnim.Point{X: se.A.X, Y: se.A.Y}
		b := gnim.Point{X: se.B.X, Y: se.B.Y}
		if a == b {
			return nil, errors.Wrapf(gnim.ErrDegenerateStick, "%v-%v", a, b)
		}
		st := gnim.NewStick(a, b)
		if seen.TryAdd(st) {
			sticks = append(sticks, st)
		}
	}

	if len(sticks) == 0 {
		return nil, gnim.ErrEmptyConfig
	}
	return sticks, nil
}

// FormatConfig renders sticks back into the grammar's textual form.
func FormatConfig(sticks []gnim.Stick) string {
	out := ""
	for i, st := range sticks {
		if i > 0 {
			out += "; "
		}
		out += st.String()
	}
	return out
}
