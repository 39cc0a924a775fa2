package gnim

import "encoding/binary"

// Stick is an unordered pair of lattice points -- one generator of the
// game's binomial ideal. The two points are stored in a fixed coordinate
// order (smaller x first, then smaller y), not the game's Ordering, so that
// equal point sets compare and hash equal no matter the construction order;
// a Stick is an ordinary comparable struct and works directly as a map key.
//
// A Stick whose points coincide has "vanished": it is the trivial result of
// a reduction and never belongs to a live configuration.
type Stick struct {
	p, q Point
}

// NewStick forms the canonical stick over the two given points.
func NewStick(a, b Point) Stick {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return Stick{p: a, q: b}
}

// Points returns both points in canonical storage order.
func (st Stick) Points() (Point, Point) {
	return st.p, st.q
}

// IsTrivial reports whether the two points coincide.
func (st Stick) IsTrivial() bool {
	return st.p == st.q
}

// Head returns whichever of the stick's points ord prefers.
func (st Stick) Head(ord Ordering) Point {
	return ord.Prefer(st.p, st.q)
}

// Tail returns the point Head does not return.
func (st Stick) Tail(ord Ordering) Point {
	if ord.Prefer(st.p, st.q) == st.p {
		return st.q
	}
	return st.p
}

// Compare orders sticks by the same fixed coordinate comparison canonical
// storage uses; it is the comparator behind canonical basis sets and
// catalog keys.
func (st Stick) Compare(other Stick) int {
	for _, d := range [4]int{
		st.p.X - other.p.X,
		st.p.Y - other.p.Y,
		st.q.X - other.q.X,
		st.q.Y - other.q.Y,
	} {
		if d != 0 {
			return d
		}
	}
	return 0
}

func (st Stick) String() string {
	return st.p.String() + "-" + st.q.String()
}

// AppendKeyTo appends a compact encoding of the stick (four uvarints in
// canonical point order), suitable as an LSM key fragment.
func (st Stick) AppendKeyTo(out []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte
	for _, v := range [4]int{st.p.X, st.p.Y, st.q.X, st.q.Y} {
		n := binary.PutUvarint(scrap[:], uint64(v))
		out = append(out, scrap[:n]...)
	}
	return out
}

// StickFromKey reads one stick written by AppendKeyTo and returns the
// remaining bytes.
func StickFromKey(in []byte) (Stick, []byte, error) {
	var vals [4]int
	for i := range vals {
		v, n := binary.Uvarint(in)
		if n <= 0 {
			return Stick{}, in, ErrBadStickKey
		}
		vals[i] = int(v)
		in = in[n:]
	}
	return NewStick(Point{X: vals[0], Y: vals[1]}, Point{X: vals[2], Y: vals[3]}), in, nil
}
