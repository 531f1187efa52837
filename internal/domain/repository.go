package domain

import "context"

// ProfileRepository is the persistence port for user profiles. Load never
// fails for an unknown user: it returns a fresh default profile. A stored
// profile that cannot be deserialized is likewise recovered to defaults;
// corruption is logged by the adapter, never surfaced.
type ProfileRepository interface {
	Load(ctx context.Context, userID string) (*UserProfile, error)
	Save(ctx context.Context, profile *UserProfile) error
}
