// Package storage is the persistence boundary of the portfolio: a local
// key-value store where each key holds one self-contained JSON document.
// Values are read-modify-written as whole units; there is a single writer.
package storage

import "context"

// Logical keys of the persisted documents.
const (
	KeyProfile      = "profile"
	KeyResume       = "resumeFile"
	KeyCoverLetter  = "coverLetterFile"
	KeyCertificates = "certificates"
)

// Storage holds one text value per key. Get returns common.ErrNotFound for
// absent keys; write failures are reported so the caller can surface lost
// durability while keeping its in-memory state.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
