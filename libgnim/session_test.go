package libgnim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnperry-math/Groebner-Nim/gnim"
	"github.com/johnperry-math/Groebner-Nim/libgnim"
	"github.com/johnperry-math/Groebner-Nim/libgnim/catalog"
)

func newTestSession(t *testing.T, expr string) *libgnim.Session {
	t.Helper()
	cfg, err := libgnim.ParseConfig(expr)
	require.NoError(t, err)
	s, err := libgnim.NewSession(cfg, gnim.GrevLex{})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

// recorder captures presenter commands for inspection.
type recorder struct {
	renders  int
	combines []int // delay counts, in emit order
}

func (r *recorder) RenderConfig(sticks []gnim.Stick) { r.renders++ }

func (r *recorder) AnimateCombine(a, b, result gnim.Stick, color gnim.Color, delay int) {
	r.combines = append(r.combines, delay)
}

func TestSessionDeduplicatesConfig(t *testing.T) {
	a := gnim.NewStick(gnim.Point{X: 1, Y: 1}, gnim.Point{X: 3, Y: 3})
	s, err := libgnim.NewSession([]gnim.Stick{a, a}, gnim.GrevLex{})
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, 1, s.NumSticks())
}

func TestSessionRejectsEmptyConfig(t *testing.T) {
	_, err := libgnim.NewSession(nil, gnim.GrevLex{})
	require.ErrorIs(t, err, gnim.ErrEmptyConfig)

	pt := gnim.Point{X: 1, Y: 1}
	_, err = libgnim.NewSession([]gnim.Stick{gnim.NewStick(pt, pt)}, gnim.GrevLex{})
	require.ErrorIs(t, err, gnim.ErrEmptyConfig)
}

func TestSessionCombineAndCommit(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")

	reduced, queued, err := s.Combine(0, 1)
	require.NoError(t, err)
	require.True(t, queued)
	require.Equal(t, gnim.NewStick(gnim.Point{X: 0, Y: 1}, gnim.Point{X: 0, Y: 2}), reduced)

	// The new stick waits in the pending slot until the host commits it.
	require.Equal(t, 2, s.NumSticks())
	require.NotNil(t, s.Pending())
	require.Equal(t, gnim.Palette[2], s.PendingColor())

	require.True(t, s.CommitPending())
	require.Equal(t, 3, s.NumSticks())
	require.Nil(t, s.Pending())
	require.Equal(t, gnim.Palette[2], s.Color(2))
	require.Equal(t, 1, s.MovesPlayed())
}

func TestSessionReplayedPairIsNoOp(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")

	_, queued, err := s.Combine(0, 1)
	require.NoError(t, err)
	require.True(t, queued)
	s.CommitPending()

	before := s.Sticks()

	// Same pair again, both index orders: nothing may change.
	for _, pr := range [][2]int{{0, 1}, {1, 0}} {
		_, queued, err = s.Combine(pr[0], pr[1])
		require.NoError(t, err)
		require.False(t, queued)
	}
	require.Equal(t, before, s.Sticks())
	require.Equal(t, 1, s.MovesPlayed())
}

func TestSessionCombineBadIndices(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")

	for _, pr := range [][2]int{{-1, 0}, {0, 2}, {1, 1}} {
		_, _, err := s.Combine(pr[0], pr[1])
		require.ErrorIs(t, err, gnim.ErrIndexRange)
	}
	require.Zero(t, s.MovesPlayed())
}

func TestSessionTrivialCombineRecordsMove(t *testing.T) {
	// This configuration is already complete; the pair reduces to nothing
	// but still spends the move.
	s := newTestSession(t, "(0,1)-(1,1); (0,1)-(0,2)")

	reduced, queued, err := s.Combine(0, 1)
	require.NoError(t, err)
	require.False(t, queued)
	require.True(t, reduced.IsTrivial())
	require.Nil(t, s.Pending())
	require.Equal(t, 1, s.MovesPlayed())
	require.Equal(t, 2, s.NumSticks())
}

func TestSessionSelectStateMachine(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")

	s.Select(99) // out of range: ignored
	require.Equal(t, -1, s.Selected())

	s.Select(0)
	require.Equal(t, 0, s.Selected())
	require.True(t, s.IsCandidate(1))
	require.False(t, s.IsCandidate(0))

	// Reselecting the highlighted stick deselects.
	s.Select(0)
	require.Equal(t, -1, s.Selected())

	// Selecting a candidate plays the move.
	s.Select(0)
	s.Select(1)
	require.Equal(t, -1, s.Selected())
	require.Equal(t, 1, s.MovesPlayed())
	require.NotNil(t, s.Pending())
	s.CommitPending()

	// The used pair no longer offers itself as a candidate.
	s.Select(0)
	require.False(t, s.IsCandidate(1))
	require.True(t, s.IsCandidate(2))
}

func TestSessionAutoCommitsPendingOnNextMove(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2); (4,0)-(5,5)")

	_, queued, err := s.Combine(0, 1)
	require.NoError(t, err)
	require.True(t, queued)

	// A second move lands the first move's stick before running.
	_, _, err = s.Combine(0, 2)
	require.NoError(t, err)
	require.Equal(t, 4, s.NumSticks())
	require.Equal(t, 2, s.MovesPlayed())
}

func TestSessionPresenterCommands(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2); (4,0)-(5,5)")
	rec := &recorder{}
	s.AttachPresenter(rec)

	_, _, err := s.Combine(0, 1)
	require.NoError(t, err)
	s.CommitPending()

	// Combining with the far stick is productive too: its S-stick grinds
	// down to (0,1)-(4,0), which nothing dominates.
	_, _, err = s.Combine(0, 2)
	require.NoError(t, err)
	s.CommitPending()

	// Delay counts increase monotonically across the session.
	require.Equal(t, []int{0, 1}, rec.combines)
	require.Positive(t, rec.renders)
}

func TestSessionRegionFlags(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")

	require.False(t, s.RegionShown(0))
	s.ShowRegion(0, true)
	require.True(t, s.RegionShown(0))
	s.ShowRegion(0, false)
	require.False(t, s.RegionShown(0))

	s.ShowRegion(99, true) // out of range: ignored
	require.False(t, s.RegionShown(99))
}

func TestSessionSolutionAndIsOver(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")

	sol := s.Solution()
	require.Equal(t, 1, sol.MoveCount)
	require.Equal(t, []gnim.Stick{
		gnim.NewStick(gnim.Point{X: 0, Y: 1}, gnim.Point{X: 0, Y: 2}),
		gnim.NewStick(gnim.Point{X: 0, Y: 1}, gnim.Point{X: 1, Y: 1}),
	}, sol.Basis)

	require.False(t, s.IsOver())

	_, _, err := s.Combine(0, 1)
	require.NoError(t, err)
	s.CommitPending()
	require.True(t, s.IsOver())
}

func TestSessionAlreadyMinimalIsOverImmediately(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (0,1)-(0,2)")

	require.True(t, s.IsOver())
	require.Zero(t, s.Solution().MoveCount)
}

func TestSessionMemoizesSolutionInCatalog(t *testing.T) {
	cat, err := catalog.OpenCatalog(nil, gnim.CatalogOpts{})
	require.NoError(t, err)
	defer cat.Close()

	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")
	s.AttachCatalog(cat)

	sol := s.Solution()
	require.EqualValues(t, 1, cat.NumSolutions(), "a fresh solution lands in the catalog")

	// A second session over the same configuration reads it back.
	s2 := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")
	s2.AttachCatalog(cat)
	require.Equal(t, sol, s2.Solution())
	require.EqualValues(t, 1, cat.NumSolutions())
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, "(0,1)-(1,1); (2,1)-(0,2)")

	_, _, err := s.Combine(0, 1)
	require.NoError(t, err)

	cfg, err := libgnim.ParseConfig("(0,1)-(0,2); (0,1)-(1,1)")
	require.NoError(t, err)
	require.NoError(t, s.Reset(cfg))

	require.Equal(t, 2, s.NumSticks())
	require.Zero(t, s.MovesPlayed())
	require.Nil(t, s.Pending())
	require.Equal(t, -1, s.Selected())
	require.True(t, s.IsOver(), "the fresh configuration is already minimal")
}
