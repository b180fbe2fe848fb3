// Package common defines shared sentinel errors used across the portfolio
// core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNotFound is returned when a requested record or storage key is absent.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when a privileged operation runs without a
	// fresh successful password check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrFileRead is returned when an upload source cannot be read.
	ErrFileRead = errors.New("file read failed")

	// ErrStorageUnavailable is returned when the persistence medium rejects a
	// write. In-memory state keeps the change; durability is lost until the
	// medium recovers.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
