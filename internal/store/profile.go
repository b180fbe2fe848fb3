package store

import (
	"context"

	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/storage"
)

// Profile returns a copy of the current profile.
func (s *Store) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile shallow-merges the non-nil fields of u into the profile and
// writes it through before returning. Field contents are free-form text and
// stored as-is. Requires a fresh authentication.
func (s *Store) UpdateProfile(ctx context.Context, u models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFreshAuth(); err != nil {
		s.sink.Failure("Editing the profile requires the admin password")
		return err
	}

	s.profile.Apply(u)
	if err := s.persist(ctx, storage.KeyProfile, s.profile); err != nil {
		return err
	}

	s.sink.Success("Profile updated successfully!")
	return nil
}
