package gnim

// Color is a display color slot owned by a session. The engine never
// interprets it; it only hands it to the presenter.
type Color string

// Palette is the cycle of display colors sessions deal out to sticks.
var Palette = []Color{
	"crimson", "royalblue", "seagreen", "darkorange",
	"purple", "goldenrod", "teal", "hotpink",
}

// Solution is a minimized basis together with the number of pair
// combinations the engine needed to reach it.
type Solution struct {
	Basis     []Stick
	MoveCount int
}

// Presenter receives fire-and-forget display commands from a session.
// A session never waits on its presenter, and its state transitions stay
// correct with a nil presenter (headless play).
type Presenter interface {

	// RenderConfig asks the host to redraw the whole configuration.
	RenderConfig(sticks []Stick)

	// AnimateCombine asks the host to animate sticks a and b converging
	// into result, drawn with the given color. delay is an opaque
	// scheduling count the session passes through unchanged.
	AnimateCombine(a, b, result Stick, color Color, delay int)
}

// CatalogOpts specifies params for opening a solution catalog.
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
}

// Catalog wraps a database of memoized game solutions, keyed by starting
// configuration and ordering.
type Catalog interface {

	// LookupSolution returns the stored solution for the given starting
	// configuration under ord, or nil if none is stored.
	LookupSolution(cfg []Stick, ord Ordering) (*Solution, error)

	// TryAddSolution stores sol if the configuration has no entry yet.
	// Returns true if sol was added.
	TryAddSolution(cfg []Stick, ord Ordering, sol Solution) (bool, error)

	// NumSolutions returns the number of stored solutions.
	NumSolutions() int64

	// IsReadOnly reports whether this catalog was opened read-only.
	IsReadOnly() bool

	// Close flushes and closes this catalog.
	Close() error
}

// WorkspaceContext is a container for open / active Catalog instances.
type WorkspaceContext interface {

	// AttachCatalog adds the given catalog to this workspace.
	AttachCatalog(cat Catalog)

	// DetachCatalog removes the given catalog from this workspace.
	DetachCatalog(cat Catalog)

	// Close closes all attached catalogs, then the workspace itself.
	Close()

	// Done signals when Close() has completed.
	Done() <-chan struct{}
}
