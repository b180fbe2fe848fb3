// Package store owns the durable state of the portfolio: the profile, the
// authentication flag, and the uploaded artifacts. Every mutation is gated by
// a fresh password check and written through to storage before returning.
package store

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raghul07102002/holofolio/internal/common"
	"github.com/raghul07102002/holofolio/internal/logging"
	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/notify"
	"github.com/raghul07102002/holofolio/internal/storage"
)

// Test seams.
var (
	nowFn = time.Now
	newID = uuid.NewString
)

// Store mediates all reads and writes of portfolio state. One instance per
// running application; renderers hold read references and dispatch intents.
type Store struct {
	storage storage.Storage
	secret  string
	log     logging.Logger
	sink    notify.Sink

	mu         sync.Mutex
	authed     bool
	profile    models.Profile
	singletons map[Slot]*models.Artifact
	certs      []models.Artifact
}

// New builds a Store over st, loading persisted state or falling back to the
// hard-coded defaults. A storage read failure degrades to defaults with a
// warning so the session stays usable; corrupt persisted JSON is an error.
func New(ctx context.Context, st storage.Storage, secret string, log logging.Logger, sink notify.Sink) (*Store, error) {
	s := &Store{
		storage:    st,
		secret:     secret,
		log:        log,
		sink:       sink,
		singletons: map[Slot]*models.Artifact{},
	}

	s.profile = models.DefaultProfile()
	if raw, ok := s.loadRaw(ctx, storage.KeyProfile); ok {
		if err := json.Unmarshal([]byte(raw), &s.profile); err != nil {
			return nil, fmt.Errorf("corrupt profile document: %w", err)
		}
	}

	for _, slot := range []Slot{SlotResume, SlotCoverLetter} {
		raw, ok := s.loadRaw(ctx, slot.storageKey())
		if !ok {
			continue
		}
		var a models.Artifact
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			return nil, fmt.Errorf("corrupt %s document: %w", slot.storageKey(), err)
		}
		s.singletons[slot] = &a
	}

	if raw, ok := s.loadRaw(ctx, storage.KeyCertificates); ok {
		if err := json.Unmarshal([]byte(raw), &s.certs); err != nil {
			return nil, fmt.Errorf("corrupt certificates document: %w", err)
		}
	}

	return s, nil
}

// Authenticate compares the candidate secret against the configured one.
// It sets the flag on a match and actively revokes it otherwise; there is no
// lockout or attempt counting. A successful call arms exactly one mutation
// (see requireFreshAuth).
func (s *Store) Authenticate(candidate string) bool {
	ok := subtle.ConstantTimeCompare([]byte(candidate), []byte(s.secret)) == 1

	s.mu.Lock()
	s.authed = ok
	s.mu.Unlock()

	return ok
}

// IsAuthenticated reports whether an authentication is currently armed.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

// Logout revokes any armed authentication. Callers also use it to abort a
// privileged action whose follow-up prompt (file dialog, edit form) was
// cancelled, so a stale armed flag cannot leak into the next action.
func (s *Store) Logout() {
	s.mu.Lock()
	s.authed = false
	s.mu.Unlock()
}

// requireFreshAuth consumes the armed authentication. Every privileged
// action re-authenticates: one successful Authenticate call admits exactly
// one mutation, matching the per-action password prompts of the UI.
// Callers must hold s.mu.
func (s *Store) requireFreshAuth() error {
	if !s.authed {
		return common.ErrUnauthorized
	}
	s.authed = false
	return nil
}

// persist writes one document through to storage. On failure the in-memory
// state keeps the change: the session stays usable, durability is lost until
// the medium recovers. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := s.storage.Set(ctx, key, string(data)); err != nil {
		s.log.Error(ctx, "persist failed", "key", key, "error", err)
		s.sink.Failure("Saving failed; changes are kept for this session only")
		return err
	}

	return nil
}

func (s *Store) loadRaw(ctx context.Context, key string) (string, bool) {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "storage read failed, using defaults", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}
