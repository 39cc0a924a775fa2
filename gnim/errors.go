package gnim

import "errors"

// Errors
var (
	ErrNegativeWeight  = errors.New("ordering weights must be non-negative")
	ErrBadOrderingName = errors.New("unknown ordering name")
	ErrIndexRange      = errors.New("stick index out of range")
	ErrDegenerateStick = errors.New("stick endpoints must be distinct")
	ErrBadConfigExpr   = errors.New("bad configuration expression")
	ErrBadStickKey     = errors.New("bad stick key encoding")
	ErrEmptyConfig     = errors.New("configuration must contain at least one stick")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrCatalogReadOnly = errors.New("catalog is in read-only mode")
)
