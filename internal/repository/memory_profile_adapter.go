package repository

import (
	"context"
	"encoding/json"
	"sync"

	"horror-oracle/internal/domain"
)

// MemoryProfileAdapter keeps profiles in process memory. Used in tests and
// when no database path is configured; profiles then last for the process
// lifetime only.
type MemoryProfileAdapter struct {
	mu       sync.RWMutex
	profiles map[string][]byte
}

// NewMemoryProfileAdapter creates an empty in-memory profile store.
func NewMemoryProfileAdapter() domain.ProfileRepository {
	return &MemoryProfileAdapter{profiles: make(map[string][]byte)}
}

func (m *MemoryProfileAdapter) Load(ctx context.Context, userID string) (*domain.UserProfile, error) {
	m.mu.RLock()
	raw, ok := m.profiles[userID]
	m.mu.RUnlock()
	if !ok {
		return domain.NewDefaultProfile(userID), nil
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return domain.NewDefaultProfile(userID), nil
	}
	return &profile, nil
}

func (m *MemoryProfileAdapter) Save(ctx context.Context, profile *domain.UserProfile) error {
	if profile == nil || profile.UserID == "" {
		return domain.NewInvalidInputError("profile with user id is required")
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return domain.NewInternalError("failed to serialize profile", err)
	}

	m.mu.Lock()
	m.profiles[profile.UserID] = raw
	m.mu.Unlock()
	return nil
}
