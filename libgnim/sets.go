package libgnim

import (
	"github.com/dgraph-io/badger/v3"

	"github.com/johnperry-math/Groebner-Nim/gnim"
)

// StickSet allows adding canonical stick encodings and returning whether an
// equal stick has already been added.
type StickSet interface {

	// TryAdd adds the given stick if it is not already present.
	//
	// If an equal stick is already in this StickSet, this call has no effect
	// and TryAdd() returns false. Otherwise st is added and true is returned.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(st gnim.Stick) bool

	// Close removes all previously added items from this set.
	//
	// If you make subsequent calls to TryAdd(), be sure you call Close()
	// when you're done.
	Close()
}

func NewStickSet() StickSet {
	return &stickSet{}
}

type stickSet struct {
	lsmSet
}

func (set *stickSet) TryAdd(st gnim.Stick) bool {
	var buf [16]byte
	key := st.AppendKeyTo(buf[:0])
	return set.tryAdd(key)
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(append([]byte(nil), key...), nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
