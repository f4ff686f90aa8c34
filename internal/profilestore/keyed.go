// Package profilestore persists saved profile collections as one JSON array
// per owner in a key-value store.
package profilestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lexdraft/internal/domain"
	"lexdraft/internal/port"
)

// DefaultKeyPrefix names the entry holding a collection.
const DefaultKeyPrefix = "saved_profiles"

// KeyedStore implements port.ProfileStore on top of a port.KeyValueStore.
type KeyedStore struct {
	kv     port.KeyValueStore
	prefix string
}

// NewKeyedStore creates a KeyedStore. An empty prefix uses DefaultKeyPrefix.
func NewKeyedStore(kv port.KeyValueStore, prefix string) *KeyedStore {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultKeyPrefix
	}
	return &KeyedStore{kv: kv, prefix: prefix}
}

// Key returns the storage key of owner's collection.
func (s *KeyedStore) Key(owner string) string {
	return s.prefix + ":" + owner
}

// Load returns owner's profiles in storage order. Records written before a
// field existed get that field's default, and the default-profile invariant
// is re-established.
func (s *KeyedStore) Load(ctx context.Context, owner string) ([]domain.SavedProfile, error) {
	raw, found, err := s.kv.Get(ctx, s.Key(owner))
	if err != nil {
		return nil, fmt.Errorf("profilestore.Load: %w", err)
	}
	if !found || len(strings.TrimSpace(string(raw))) == 0 {
		return []domain.SavedProfile{}, nil
	}

	var profiles []domain.SavedProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("profilestore.Load: decoding %s: %w", s.Key(owner), err)
	}
	if profiles == nil {
		profiles = []domain.SavedProfile{}
	}
	for i := range profiles {
		if !domain.ValidPartyType(profiles[i].Type) {
			profiles[i].Type = domain.PartyTypeIndividual
		}
	}
	domain.NormalizeDefaults(profiles)
	return profiles, nil
}

// SaveAll replaces owner's whole collection.
func (s *KeyedStore) SaveAll(ctx context.Context, owner string, profiles []domain.SavedProfile) error {
	if profiles == nil {
		profiles = []domain.SavedProfile{}
	}
	raw, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("profilestore.SaveAll: %w", err)
	}
	if err := s.kv.Set(ctx, s.Key(owner), raw); err != nil {
		return fmt.Errorf("profilestore.SaveAll: %w", err)
	}
	return nil
}
