package recommender

import (
	"context"
	"encoding/json"
	"fmt"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"

	"go.uber.org/zap"
)

const curatorSystemPrompt = `You are the Horror Oracle's Film Curator, keeper of the cursed filmography.
Recommend 2-3 real horror films matched to the player's taste and recent performance.
Respond with ONLY a JSON array, no prose, of this shape:
[{"title": "...", "year": 1978, "director": "...", "subgenre": "...", "difficulty_level": "beginner|intermediate|advanced|expert", "why_recommended": "...", "oracle_message": "in-character one-liner"}]`

// Recommender suggests films from the player's profile and the last quiz
// context. A pure function of its inputs when offline.
type Recommender struct {
	backends []domain.GenerationBackend
}

// New creates a recommender over the given backend tiers.
func New(backends ...domain.GenerationBackend) *Recommender {
	return &Recommender{backends: backends}
}

// Recommend returns ranked film suggestions. Backend tiers are consulted in
// order; the static table keyed by favorite theme serves when they all
// fail.
func (r *Recommender) Recommend(ctx context.Context, profile *domain.UserProfile, rc domain.RecommendContext) []domain.MovieRef {
	if movies := r.queryBackends(ctx, profile, rc); movies != nil {
		return movies
	}

	favoriteTheme := domain.ThemeGeneralHorror
	if profile != nil && profile.FavoriteTheme != "" {
		favoriteTheme = profile.FavoriteTheme
	}
	return fallbackFor(favoriteTheme)
}

func (r *Recommender) queryBackends(ctx context.Context, profile *domain.UserProfile, rc domain.RecommendContext) []domain.MovieRef {
	if len(r.backends) == 0 {
		return nil
	}
	l := logger.Get()

	favoriteTheme := domain.ThemeGeneralHorror
	preferredTone := domain.ToneCreepy
	if profile != nil {
		if profile.FavoriteTheme != "" {
			favoriteTheme = profile.FavoriteTheme
		}
		if profile.PreferredTone != "" {
			preferredTone = profile.PreferredTone
		}
	}

	userPrompt := fmt.Sprintf(
		"Favorite theme: %s\nPreferred tone: %s\nRecent quiz theme: %s\nPerformance: %s\nOracle emotion: %s",
		favoriteTheme, preferredTone, rc.RecentTheme, rc.PerformanceTier, rc.OracleEmotion)

	for _, backend := range r.backends {
		raw, err := backend.Complete(ctx, curatorSystemPrompt, userPrompt)
		if err != nil {
			l.Warn("Recommendation tier failed",
				zap.String("backend", backend.Name()),
				zap.Error(err))
			continue
		}

		var movies []domain.MovieRef
		if err := json.Unmarshal([]byte(raw), &movies); err != nil || len(movies) == 0 {
			l.Warn("Recommendation payload invalid",
				zap.String("backend", backend.Name()))
			continue
		}
		valid := true
		for _, m := range movies {
			if m.Title == "" {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		return movies
	}
	return nil
}

var fallbackFilms = map[string][]domain.MovieRef{
	"slasher": {
		{Title: "Halloween", Year: 1978, Director: "John Carpenter", Subgenre: "slasher", DifficultyLevel: "intermediate"},
		{Title: "Friday the 13th", Year: 1980, Director: "Sean S. Cunningham", Subgenre: "slasher", DifficultyLevel: "beginner"},
	},
	"psychological": {
		{Title: "The Shining", Year: 1980, Director: "Stanley Kubrick", Subgenre: "psychological", DifficultyLevel: "advanced"},
		{Title: "Psycho", Year: 1960, Director: "Alfred Hitchcock", Subgenre: "psychological", DifficultyLevel: "intermediate"},
	},
	"supernatural": {
		{Title: "The Exorcist", Year: 1973, Director: "William Friedkin", Subgenre: "supernatural", DifficultyLevel: "advanced"},
		{Title: "The Conjuring", Year: 2013, Director: "James Wan", Subgenre: "supernatural", DifficultyLevel: "intermediate"},
	},
}

var fallbackDefault = []domain.MovieRef{
	{Title: "The Exorcist", Year: 1973, Director: "William Friedkin", Subgenre: "general_horror", DifficultyLevel: "intermediate"},
	{Title: "Halloween", Year: 1978, Director: "John Carpenter", Subgenre: "slasher", DifficultyLevel: "intermediate"},
}

// fallbackFor returns the curated picks for a theme, annotated with a
// deterministic reason line.
func fallbackFor(theme string) []domain.MovieRef {
	picks, ok := fallbackFilms[theme]
	if !ok {
		picks = fallbackDefault
	}

	movies := make([]domain.MovieRef, len(picks))
	copy(movies, picks)
	for i := range movies {
		movies[i].WhyRecommended = "A cornerstone of " + movies[i].Subgenre + " horror."
		movies[i].OracleMessage = "The Oracle has seen this one... many times. Watch it in the dark."
	}
	return movies
}
