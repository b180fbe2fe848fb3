package picker

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/raghul07102002/holofolio/internal/common"
)

// FS picks files from the local filesystem. SelectPaths plays the role of
// the file dialog: the CLI wires it to an interactive path prompt.
type FS struct {
	SelectPaths func(ctx context.Context, req Request) ([]string, error)
}

// Pick resolves the selected paths into buffered files. A path that cannot
// be read or does not pass the accept filter is skipped; the surviving files
// are still returned, together with the joined per-file errors. One bad file
// never aborts the batch.
func (p *FS) Pick(ctx context.Context, req Request) ([]File, error) {
	paths, err := p.SelectPaths(ctx, req)
	if err != nil {
		return nil, err
	}
	if !req.Multiple && len(paths) > 1 {
		paths = paths[:1]
	}

	var (
		files []File
		errs  []error
	)
	for _, path := range paths {
		f, err := ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !Matches(req.Accept, f.Name, f.Type) {
			errs = append(errs, fmt.Errorf("%s: type %s not accepted", f.Name, f.Type))
			continue
		}
		files = append(files, *f)
	}

	return files, errors.Join(errs...)
}

// ReadFile buffers one file from disk, detecting its MIME type from the
// extension with a content-sniff fallback.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, common.ErrFileRead, err)
	}

	return &File{
		Name: filepath.Base(path),
		Type: DetectType(path, data),
		Data: data,
	}, nil
}

// DetectType returns the MIME type for a file name, sniffing the content when
// the extension is unknown.
func DetectType(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return "application/octet-stream"
	}
	return mediaType
}
