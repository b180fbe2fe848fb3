package store

import (
	"context"
	"slices"

	"github.com/raghul07102002/holofolio/internal/common"
	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/picker"
	"github.com/raghul07102002/holofolio/internal/storage"
)

// Slot names one of the singleton artifact slots.
type Slot string

const (
	SlotResume      Slot = "resume"
	SlotCoverLetter Slot = "coverLetter"
)

func (s Slot) storageKey() string {
	if s == SlotCoverLetter {
		return storage.KeyCoverLetter
	}
	return storage.KeyResume
}

// Label returns the user-facing name of the slot.
func (s Slot) Label() string {
	if s == SlotCoverLetter {
		return "Cover letter"
	}
	return "Resume"
}

// UploadSingleton replaces the artifact in the given slot wholesale with the
// uploaded file; the old payload is discarded, never merged. Requires a fresh
// authentication. The returned artifact is the caller's copy.
func (s *Store) UploadSingleton(ctx context.Context, slot Slot, f picker.File) (*models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFreshAuth(); err != nil {
		s.sink.Failure("Uploading requires the admin password")
		return nil, err
	}

	a := &models.Artifact{
		Name:    f.Name,
		Type:    f.Type,
		Data:    slices.Clone(f.Data),
		AddedAt: nowFn().UTC(),
	}

	s.singletons[slot] = a
	if err := s.persist(ctx, slot.storageKey(), a); err != nil {
		return copyArtifact(a), err
	}

	s.sink.Success(slot.Label() + " uploaded successfully!")
	return copyArtifact(a), nil
}

// DownloadSingleton returns the stored artifact for the slot, or
// common.ErrNotFound when the slot is empty. The caller is responsible for
// reporting that nothing is available. No side effects.
func (s *Store) DownloadSingleton(slot Slot) (*models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.singletons[slot]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyArtifact(a), nil
}

func copyArtifact(a *models.Artifact) *models.Artifact {
	c := *a
	c.Data = slices.Clone(a.Data)
	return &c
}
