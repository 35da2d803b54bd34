package rbtree

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by [Tree.At] when the key is not
	// present in the queried version.
	ErrKeyNotFound = errors.New("key not found")

	// ErrOrphanNode is returned when iteration is attempted from a
	// node that is not reachable from the iterator's version, for
	// example after mixing iterators across versions.
	ErrOrphanNode = errors.New("node not reachable from version")

	// ErrSentinelVersion is returned by [Tree.RemoveVersion] for the
	// registry sentinel, which represents the empty map and must
	// outlive every published version.
	ErrSentinelVersion = errors.New("cannot remove the sentinel version")

	// ErrVersionNotFound is returned by [Tree.RemoveVersion] for a
	// version that has already been removed.
	ErrVersionNotFound = errors.New("version already removed")
)
