// Package picker abstracts file selection for uploads. The core asks for
// files matching an accept filter and receives fully buffered byte payloads
// with metadata; how the files are chosen is the renderer's business.
package picker

import (
	"context"
	"strings"
)

// File is one selected file, fully read into memory.
type File struct {
	Name string
	Type string
	Data []byte
}

// Request describes a selection: which types are acceptable and whether more
// than one file may be chosen.
type Request struct {
	// Accept lists acceptable entries: extensions like ".pdf", exact MIME
	// types, or wildcard patterns like "image/*". Empty means anything.
	Accept []string

	Multiple bool
}

// Picker asks the user to select files. A nil, empty result with nil error
// means the dialog was cancelled; nothing should change.
type Picker interface {
	Pick(ctx context.Context, req Request) ([]File, error)
}

// Accept filters used by the portfolio views.
var (
	AcceptDocuments    = []string{".pdf", ".doc", ".docx"}
	AcceptCertificates = []string{"image/*", ".pdf"}
)

// Matches reports whether a file with the given name and MIME type passes the
// accept filter.
func Matches(accept []string, name, mimeType string) bool {
	if len(accept) == 0 {
		return true
	}
	for _, entry := range accept {
		switch {
		case strings.HasPrefix(entry, "."):
			if strings.HasSuffix(strings.ToLower(name), strings.ToLower(entry)) {
				return true
			}
		case strings.HasSuffix(entry, "/*"):
			if strings.HasPrefix(mimeType, strings.TrimSuffix(entry, "*")) {
				return true
			}
		default:
			if mimeType == entry {
				return true
			}
		}
	}
	return false
}
