package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/raghul07102002/holofolio/internal/common"
	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/picker"
	"github.com/raghul07102002/holofolio/internal/storage"
)

// Certificates returns a copy of the certificate list in insertion order.
func (s *Store) Certificates() []models.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Artifact, len(s.certs))
	for i := range s.certs {
		out[i] = *copyArtifact(&s.certs[i])
	}
	return out
}

// Certificate returns the certificate with the given id, or
// common.ErrNotFound.
func (s *Store) Certificate(id string) (*models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return copyArtifact(&s.certs[i]), nil
	}
	return nil, common.ErrNotFound
}

// UploadMany appends one certificate per file, each with a freshly generated
// unique id, in selection order. The list is persisted after every appended
// item, so a failure mid-batch never loses the items already added. Requires
// a fresh authentication covering the whole batch.
func (s *Store) UploadMany(ctx context.Context, files []picker.File) ([]models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFreshAuth(); err != nil {
		s.sink.Failure("Uploading requires the admin password")
		return nil, err
	}

	var (
		added []models.Artifact
		errs  []error
	)
	for _, f := range files {
		a := models.Artifact{
			ID:      newID(),
			Name:    f.Name,
			Type:    f.Type,
			Data:    slices.Clone(f.Data),
			AddedAt: nowFn().UTC(),
		}
		s.certs = append(s.certs, a)
		if err := s.persist(ctx, storage.KeyCertificates, s.certs); err != nil {
			errs = append(errs, err)
		}
		added = append(added, *copyArtifact(&a))
	}

	if len(added) > 0 {
		s.sink.Success(fmt.Sprintf("%d certificate(s) uploaded successfully!", len(added)))
	}
	return added, errors.Join(errs...)
}

// RenameCertificate updates the display name of the certificate with the
// given id and persists the list. Renaming never reorders. Returns whether
// the id was found. Requires a fresh authentication.
func (s *Store) RenameCertificate(ctx context.Context, id, newName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFreshAuth(); err != nil {
		s.sink.Failure("Renaming requires the admin password")
		return false, err
	}

	i := s.indexOf(id)
	if i < 0 {
		s.sink.Failure("Certificate not found")
		return false, nil
	}

	s.certs[i].Name = newName
	if err := s.persist(ctx, storage.KeyCertificates, s.certs); err != nil {
		return true, err
	}

	s.sink.Success("Certificate renamed successfully!")
	return true, nil
}

// RemoveCertificate deletes the certificate with the given id and persists
// the remaining list; the relative order of the survivors is unchanged.
// Returns whether the id was found. No undo. Requires a fresh authentication.
func (s *Store) RemoveCertificate(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFreshAuth(); err != nil {
		s.sink.Failure("Deleting requires the admin password")
		return false, err
	}

	i := s.indexOf(id)
	if i < 0 {
		s.sink.Failure("Certificate not found")
		return false, nil
	}

	s.certs = append(s.certs[:i], s.certs[i+1:]...)
	if err := s.persist(ctx, storage.KeyCertificates, s.certs); err != nil {
		return true, err
	}

	s.sink.Success("Certificate deleted successfully!")
	return true, nil
}

// indexOf returns the position of the certificate with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(id string) int {
	for i := range s.certs {
		if s.certs[i].ID == id {
			return i
		}
	}
	return -1
}
