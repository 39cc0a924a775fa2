package libgnim

import (
	"sync"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

// NewWorkspace returns a WorkspaceContext that tracks open catalogs and
// closes them all when the workspace closes.
func NewWorkspace() gnim.WorkspaceContext {
	return &workspace{
		done: make(chan struct{}),
	}
}

type workspace struct {
	mu      sync.Mutex
	open    []gnim.Catalog
	closing bool
	done    chan struct{}
}

func (ws *workspace) AttachCatalog(cat gnim.Catalog) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.open = append(ws.open, cat)
}

func (ws *workspace) DetachCatalog(cat gnim.Catalog) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	for i, open := range ws.open {
		if open == cat {
			ws.open = append(ws.open[:i], ws.open[i+1:]...)
			break
		}
	}
}

func (ws *workspace) Close() {
	ws.mu.Lock()
	if ws.closing {
		ws.mu.Unlock()
		return
	}
	ws.closing = true
	open := append([]gnim.Catalog(nil), ws.open...)
	ws.mu.Unlock()

	// Each Close detaches the catalog from this workspace.
	for _, cat := range open {
		cat.Close()
	}
	close(ws.done)
}

func (ws *workspace) Done() <-chan struct{} {
	return ws.done
}
