package repository

import "errors"

var (
	// ErrNotFound reports a status update against an unknown order id.
	ErrNotFound = errors.New("order not found")

	// ErrDegraded reports that a mutation could not reach the remote store
	// and was applied to the local cache only. Callers may treat it as a
	// qualified success.
	ErrDegraded = errors.New("remote store unavailable, saved locally")
)
