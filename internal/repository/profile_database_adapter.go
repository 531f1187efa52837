package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const profileSchema = `
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id    TEXT PRIMARY KEY,
	profile    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// NewSQLiteDB opens the profile database and bootstraps the schema. The
// driver is pure Go, so no system sqlite is required.
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}
	if _, err := db.Exec(profileSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create profile schema: %w", err)
	}
	return db, nil
}

// ProfileDatabaseAdapter persists profiles as JSON documents keyed by user
// id. The profile shape evolves with the engine; a document column avoids a
// migration per added stat.
type ProfileDatabaseAdapter struct {
	db *sqlx.DB
}

// NewProfileDatabaseAdapter creates a new instance of ProfileDatabaseAdapter.
func NewProfileDatabaseAdapter(db *sqlx.DB) domain.ProfileRepository {
	return &ProfileDatabaseAdapter{db: db}
}

// Load returns the stored profile for userID. Unknown users and corrupt
// rows both yield a fresh default profile; Load never fails the request
// over missing state.
func (r *ProfileDatabaseAdapter) Load(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var raw string
	query := "SELECT profile FROM user_profiles WHERE user_id = $1"
	err := r.db.GetContext(ctx, &raw, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.NewDefaultProfile(userID), nil
		}
		return nil, domain.NewInternalError("failed to load profile", err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		logger.Get().Warn("Stored profile corrupt, resetting to defaults",
			zap.String("user_id", userID),
			zap.Error(domain.NewProfileCorruptError(userID, err)))
		return domain.NewDefaultProfile(userID), nil
	}
	if len(profile.QuizHistory) > domain.QuizHistoryReadLimit {
		profile.QuizHistory = profile.QuizHistory[len(profile.QuizHistory)-domain.QuizHistoryReadLimit:]
	}
	return &profile, nil
}

// Save upserts the profile document.
func (r *ProfileDatabaseAdapter) Save(ctx context.Context, profile *domain.UserProfile) error {
	if profile == nil || profile.UserID == "" {
		return domain.NewInvalidInputError("profile with user id is required")
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return domain.NewInternalError("failed to serialize profile", err)
	}

	query := `INSERT INTO user_profiles (user_id, profile, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT(user_id) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, profile.UserID, string(raw), time.Now()); err != nil {
		return domain.NewInternalError("failed to save profile", err)
	}
	return nil
}
