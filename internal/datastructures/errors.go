package datastructures

import "errors"

var (
	// ErrInvalidArgument is returned for a nil node where one is required, a node
	// used as its own anchor, or an insertion of a node that is already linked.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyList is returned when a node-targeted mutation hits an empty list.
	ErrEmptyList = errors.New("list is empty")
	// ErrNotFound is returned when a node reference does not belong to the list.
	ErrNotFound = errors.New("node not in list")
	// ErrCorrupted is returned by Validate when a structural invariant is broken.
	ErrCorrupted = errors.New("list corrupted")
)
