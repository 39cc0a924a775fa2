// Package catalog persists computed game solutions in a badger database so
// a configuration solved once is never solved again.
package catalog

import (
	"encoding/binary"
	"runtime"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

/***

Catalog database format:

	gCatalogStateKey => major vers, minor vers, solution count (uvarints)

	configKey => solution

	configKey := ordering kind (byte), wx, wy (uvarints),
	             stick count (uvarint), sticks sorted canonically (LSM)
	solution  := move count (uvarint), stick count (uvarint), sticks (LSM)

Every ordering kind is >= 1, so config keys can never collide with the
state entry.

***/

var gCatalogStateKey = []byte{0x00, 0x00, 0x01}

const (
	catalogMajorVers = 2024
	catalogMinorVers = 1
)

type catalog struct {
	ctx          gnim.WorkspaceContext
	readOnly     bool
	stateDirty   bool
	numSolutions uint64
	db           *badger.DB
}

// OpenCatalog opens a new or existing solution catalog. With no DbPathName
// the catalog lives in memory and vanishes on Close.
func OpenCatalog(ctx gnim.WorkspaceContext, opts gnim.CatalogOpts) (gnim.Catalog, error) {
	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single writer, so skip the bookkeeping
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gnim.ErrBadCatalogParam, "DbPathName must be specified for a read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	if ctx != nil {
		ctx.AttachCatalog(cat)
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
	}
	if err != nil {
		cat.Close()
		return nil, err
	}

	klog.V(2).Infof("opened solution catalog %q (%d solutions)", opts.DbPathName, cat.numSolutions)
	return cat, nil
}

func (cat *catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var fields [3]uint64
			for i := range fields {
				v, n := binary.Uvarint(val)
				if n <= 0 {
					return errors.New("corrupt catalog state entry")
				}
				fields[i] = v
				val = val[n:]
			}
			if fields[0] != catalogMajorVers || fields[1] != catalogMinorVers {
				return errors.Errorf("catalog version %d.%d is incompatible", fields[0], fields[1])
			}
			cat.numSolutions = fields[2]
			return nil
		})
	})
}

func (cat *catalog) flushState() {
	if !cat.stateDirty || cat.readOnly || cat.db == nil {
		return
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		var buf [3 * binary.MaxVarintLen64]byte
		n := binary.PutUvarint(buf[:], catalogMajorVers)
		n += binary.PutUvarint(buf[n:], catalogMinorVers)
		n += binary.PutUvarint(buf[n:], cat.numSolutions)
		return txn.Set(gCatalogStateKey, append([]byte(nil), buf[:n]...))
	})
	if err != nil {
		panic(err)
	}
	cat.stateDirty = false
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		if cat.ctx != nil {
			cat.ctx.DetachCatalog(cat)
			cat.ctx = nil
		}
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumSolutions() int64 {
	return int64(cat.numSolutions)
}

// formConfigKey appends the catalog key for cfg under ord: the ordering
// discriminant and weights, then the sticks in canonical order so that the
// same configuration always forms the same key.
func formConfigKey(key []byte, cfg []gnim.Stick, ord gnim.Ordering) []byte {
	key = append(key, byte(ord.Kind()))

	wx, wy := 1, 1
	if weighted, isWeighted := ord.(*gnim.WeightedGrevLex); isWeighted {
		wx, wy = weighted.Weights()
	}

	var scrap [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scrap[:], uint64(wx))
	key = append(key, scrap[:n]...)
	n = binary.PutUvarint(scrap[:], uint64(wy))
	key = append(key, scrap[:n]...)

	sorted := append([]gnim.Stick(nil), cfg...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	n = binary.PutUvarint(scrap[:], uint64(len(sorted)))
	key = append(key, scrap[:n]...)
	for _, st := range sorted {
		key = st.AppendKeyTo(key)
	}
	return key
}

func appendSolution(out []byte, sol gnim.Solution) []byte {
	var scrap [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scrap[:], uint64(sol.MoveCount))
	out = append(out, scrap[:n]...)
	n = binary.PutUvarint(scrap[:], uint64(len(sol.Basis)))
	out = append(out, scrap[:n]...)
	for _, st := range sol.Basis {
		out = st.AppendKeyTo(out)
	}
	return out
}

func readSolution(val []byte) (gnim.Solution, error) {
	var sol gnim.Solution

	moveCount, n := binary.Uvarint(val)
	if n <= 0 {
		return sol, gnim.ErrBadStickKey
	}
	val = val[n:]

	count, n := binary.Uvarint(val)
	if n <= 0 {
		return sol, gnim.ErrBadStickKey
	}
	val = val[n:]

	sol.MoveCount = int(moveCount)
	sol.Basis = make([]gnim.Stick, 0, count)
	for i := uint64(0); i < count; i++ {
		st, rest, err := gnim.StickFromKey(val)
		if err != nil {
			return sol, err
		}
		sol.Basis = append(sol.Basis, st)
		val = rest
	}
	return sol, nil
}

func (cat *catalog) LookupSolution(cfg []gnim.Stick, ord gnim.Ordering) (*gnim.Solution, error) {
	var keyBuf [256]byte
	key := formConfigKey(keyBuf[:0], cfg, ord)

	var sol *gnim.Solution
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			got, err := readSolution(val)
			if err != nil {
				return err
			}
			sol = &got
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "solution lookup failed")
	}
	return sol, nil
}

func (cat *catalog) TryAddSolution(cfg []gnim.Stick, ord gnim.Ordering, sol gnim.Solution) (bool, error) {
	if cat.readOnly {
		return false, errors.WithStack(gnim.ErrCatalogReadOnly)
	}

	var keyBuf [256]byte
	key := formConfigKey(keyBuf[:0], cfg, ord)

	added := false
	err := cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil // already solved
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true

		// Alloc scrap bufs since commit retains them past this frame
		return txn.Set(append([]byte(nil), key...), appendSolution(nil, sol))
	})
	if err != nil {
		return false, errors.Wrap(err, "solution store failed")
	}

	if added {
		cat.numSolutions++
		cat.stateDirty = true
	}
	return added, nil
}
