package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Artifact is a fully buffered uploaded document: the resume, the cover
// letter, or one certificate. Payload bytes live entirely in memory; the
// persisted form is a JSON document whose data field is an RFC 2397 data URL,
// so the original bytes are always recoverable losslessly.
type Artifact struct {
	// ID is set only for certificates, generated at upload time.
	ID string

	// Name is the user-visible file name, mutable via rename.
	Name string

	// Type is the declared MIME type of the payload.
	Type string

	// Data is the full file content.
	Data []byte

	// AddedAt is the upload timestamp, immutable once set.
	AddedAt time.Time
}

type artifactJSON struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Data    string    `json:"data"`
	AddedAt time.Time `json:"addedAt"`
}

func (a Artifact) MarshalJSON() ([]byte, error) {
	return json.Marshal(artifactJSON{
		ID:      a.ID,
		Name:    a.Name,
		Type:    a.Type,
		Data:    EncodeDataURL(a.Type, a.Data),
		AddedAt: a.AddedAt,
	})
}

func (a *Artifact) UnmarshalJSON(b []byte) error {
	var j artifactJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}

	mimeType, data, err := DecodeDataURL(j.Data)
	if err != nil {
		return fmt.Errorf("artifact %q: %w", j.Name, err)
	}
	if j.Type == "" {
		j.Type = mimeType
	}

	a.ID = j.ID
	a.Name = j.Name
	a.Type = j.Type
	a.Data = data
	a.AddedAt = j.AddedAt
	return nil
}

// EncodeDataURL renders payload bytes as a base64 data URL:
// data:<mime>;base64,<payload>.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL reverses EncodeDataURL, returning the embedded MIME type and
// the original bytes.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL: missing payload")
	}
	mimeType, encoded := strings.CutSuffix(meta, ";base64")
	if !encoded {
		return "", nil, fmt.Errorf("malformed data URL: not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URL payload: %w", err)
	}
	return mimeType, data, nil
}
