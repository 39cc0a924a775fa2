package libgnim

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

const selIdle = -1

// Session drives one game on top of the engine. It owns the live
// configuration with its per-stick display colors and region flags, the
// move-record history, the selection state machine, and the lazily
// memoized solution.
//
// At most one move is in flight per session: an event-driven host disables
// input until the move's presentation completes and then calls
// CommitPending. Headless hosts commit immediately.
type Session struct {
	ord       gnim.Ordering
	presenter gnim.Presenter
	catalog   gnim.Catalog

	initial []gnim.Stick // the starting configuration, kept for the solution

	sticks  []gnim.Stick
	colors  []gnim.Color
	regions []bool
	dedupe  StickSet

	moves      *hashset.Set // Pair records in canonical index order; only Reset clears it
	selected   int
	candidates map[int]bool

	pending      *gnim.Stick
	pendingColor gnim.Color
	animSeq      int

	solution *gnim.Solution
}

// NewSession starts a session over the given configuration. Trivial and
// duplicate sticks in cfg are dropped; at least one live stick must remain.
func NewSession(cfg []gnim.Stick, ord gnim.Ordering) (*Session, error) {
	s := &Session{
		ord:      ord,
		selected: selIdle,
		moves:    hashset.New(),
	}
	if err := s.install(cfg); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) install(cfg []gnim.Stick) error {
	if s.dedupe != nil {
		s.dedupe.Close()
	}
	s.dedupe = NewStickSet()
	s.sticks, s.colors, s.regions = nil, nil, nil

	for _, st := range cfg {
		s.tryAddStick(st)
	}
	if len(s.sticks) == 0 {
		return gnim.ErrEmptyConfig
	}
	s.initial = append([]gnim.Stick(nil), s.sticks...)
	return nil
}

// tryAddStick appends st with the next palette color. Trivial sticks and
// sticks already in the configuration are never added.
func (s *Session) tryAddStick(st gnim.Stick) bool {
	if st.IsTrivial() || !s.dedupe.TryAdd(st) {
		return false
	}
	s.sticks = append(s.sticks, st)
	s.colors = append(s.colors, gnim.Palette[(len(s.sticks)-1)%len(gnim.Palette)])
	s.regions = append(s.regions, false)
	return true
}

// AttachPresenter wires the display host; nil runs the session headless.
func (s *Session) AttachPresenter(p gnim.Presenter) { s.presenter = p }

// AttachCatalog wires an optional solution catalog consulted by Solution.
func (s *Session) AttachCatalog(cat gnim.Catalog) { s.catalog = cat }

// Ordering returns the session's monomial order.
func (s *Session) Ordering() gnim.Ordering { return s.ord }

// Sticks returns a copy of the live configuration.
func (s *Session) Sticks() []gnim.Stick {
	return append([]gnim.Stick(nil), s.sticks...)
}

// NumSticks returns the size of the live configuration.
func (s *Session) NumSticks() int { return len(s.sticks) }

// Color returns the display color of stick i, or "" if i is out of range.
func (s *Session) Color(i int) gnim.Color {
	if i < 0 || i >= len(s.colors) {
		return ""
	}
	return s.colors[i]
}

// RegionShown reports stick i's region-visible flag.
func (s *Session) RegionShown(i int) bool {
	return i >= 0 && i < len(s.regions) && s.regions[i]
}

// ShowRegion sets stick i's region-visible flag; out of range is a no-op.
func (s *Session) ShowRegion(i int, shown bool) {
	if i >= 0 && i < len(s.regions) {
		s.regions[i] = shown
		s.render()
	}
}

// Selected returns the highlighted stick index, or -1 when idle.
func (s *Session) Selected() int { return s.selected }

// IsCandidate reports whether stick i is highlighted as a legal partner for
// the current selection.
func (s *Session) IsCandidate(i int) bool { return s.candidates[i] }

// MovesPlayed returns the number of distinct pairs combined so far.
func (s *Session) MovesPlayed() int { return s.moves.Size() }

// Select drives the selection state machine. Out-of-range indices are
// ignored. With nothing selected, stick i becomes highlighted and every
// stick not yet paired with it becomes a candidate partner. Selecting a
// candidate plays the move; selecting anything else deselects.
func (s *Session) Select(i int) {
	if i < 0 || i >= len(s.sticks) {
		return
	}

	if s.selected == selIdle {
		s.selected = i
		s.candidates = make(map[int]bool)
		for j := range s.sticks {
			if j != i && !s.moves.Contains(orderedPair(i, j)) {
				s.candidates[j] = true
			}
		}
		s.render()
		return
	}

	if i == s.selected || !s.candidates[i] {
		s.clearSelection()
		s.render()
		return
	}

	first := s.selected
	s.clearSelection()
	s.Combine(first, i) // indices came from the candidate map, so Combine can't fail
	s.render()
}

func (s *Session) clearSelection() {
	s.selected = selIdle
	s.candidates = nil
}

// Combine plays the move pairing sticks i and j, returning the reduced
// stick and whether it was queued for addition. Out-of-range indices are a
// caller bug and fail with ErrIndexRange. Replaying an already-used pair is
// a silent no-op: the move history, configuration, and colors are untouched.
//
// A non-trivial result is not added to the configuration here; it waits in
// the pending slot until CommitPending so the host's presentation can
// complete first. A still-pending stick from an earlier move is committed
// before the new move runs.
func (s *Session) Combine(i, j int) (gnim.Stick, bool, error) {
	if i < 0 || i >= len(s.sticks) || j < 0 || j >= len(s.sticks) || i == j {
		return gnim.Stick{}, false, gnim.ErrIndexRange
	}

	move := orderedPair(i, j)
	if s.moves.Contains(move) {
		return gnim.Stick{}, false, nil
	}

	s.CommitPending()
	s.moves.Add(move)

	a, b := s.sticks[i], s.sticks[j]
	reduced := Reduce(SPair(a, b, s.ord), s.sticks, s.ord)
	if reduced.IsTrivial() {
		return reduced, false, nil
	}

	color := gnim.Palette[len(s.sticks)%len(gnim.Palette)]
	s.pending = &reduced
	s.pendingColor = color
	if s.presenter != nil {
		s.presenter.AnimateCombine(a, b, reduced, color, s.animSeq)
	}
	s.animSeq++
	return reduced, true, nil
}

// PendingColor returns the color the queued new stick will take on commit.
func (s *Session) PendingColor() gnim.Color {
	if s.pending == nil {
		return ""
	}
	return s.pendingColor
}

// Pending returns a copy of the queued new stick, or nil.
func (s *Session) Pending() *gnim.Stick {
	if s.pending == nil {
		return nil
	}
	cp := *s.pending
	return &cp
}

// CommitPending appends the queued new stick to the configuration once the
// host's presentation for the move has finished. Returns true if the
// configuration grew (a pending stick equal to an existing one is dropped).
func (s *Session) CommitPending() bool {
	if s.pending == nil {
		return false
	}
	st := *s.pending
	s.pending = nil
	added := s.tryAddStick(st)
	if added {
		s.render()
	}
	return added
}

// Solution computes the canonical minimal basis for the starting
// configuration, lazily, once per session. An attached catalog is consulted
// first and receives fresh results.
func (s *Session) Solution() gnim.Solution {
	if s.solution != nil {
		return *s.solution
	}

	if s.catalog != nil {
		if sol, err := s.catalog.LookupSolution(s.initial, s.ord); err == nil && sol != nil {
			s.solution = sol
			return *sol
		}
	}

	basis, count := BuchbergerBasis(s.initial, s.ord)
	sol := gnim.Solution{
		Basis:     Minimize(basis, s.ord),
		MoveCount: count,
	}
	s.solution = &sol

	if s.catalog != nil && !s.catalog.IsReadOnly() {
		s.catalog.TryAddSolution(s.initial, s.ord, sol)
	}
	return sol
}

// IsOver reports whether the current configuration is equivalent to the
// canonical solution under the session's ordering.
func (s *Session) IsOver() bool {
	sol := s.Solution()
	return SameBasis(s.sticks, sol.Basis, s.ord)
}

// Reset replaces the configuration and clears all session state, as if the
// session had been created fresh over cfg.
func (s *Session) Reset(cfg []gnim.Stick) error {
	s.moves = hashset.New()
	s.clearSelection()
	s.pending = nil
	s.solution = nil
	s.animSeq = 0
	if err := s.install(cfg); err != nil {
		return err
	}
	s.render()
	return nil
}

// Close releases session resources. The session must not be used after.
func (s *Session) Close() {
	if s.dedupe != nil {
		s.dedupe.Close()
		s.dedupe = nil
	}
}

func (s *Session) render() {
	if s.presenter != nil {
		s.presenter.RenderConfig(s.Sticks())
	}
}
