package repo

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrCorruptSnapshot is returned when a persisted cart document can
	// no longer be decoded; callers reset to an empty cart.
	ErrCorruptSnapshot = errors.New("corrupt cart snapshot")
	ErrDuplicate       = errors.New("already exists")
)
