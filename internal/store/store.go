// Package store provides the persistence repositories. Lookups return
// (nil, nil) on a miss; writes translate duplicate-key violations into
// ErrDuplicateKey so callers can map them to conflicts.
package store

import "errors"

// ErrDuplicateKey is returned by writes that violate a uniqueness
// constraint at the storage level.
var ErrDuplicateKey = errors.New("store: duplicate key")
