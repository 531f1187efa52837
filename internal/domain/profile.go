package domain

import (
	"time"
)

// Difficulty is the four-level quiz difficulty ladder.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// DifficultyLadder is ordered from easiest to hardest. Promotion and
// demotion move exactly one rung and never leave the ladder.
var DifficultyLadder = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

// DifficultyIndex returns the ladder position for d, defaulting to
// intermediate for unknown values.
func DifficultyIndex(d Difficulty) int {
	for i, level := range DifficultyLadder {
		if level == d {
			return i
		}
	}
	return 1
}

// DifficultyToFloat maps a ladder level to the internal 0.0-1.0 scale used
// by question generation.
func DifficultyToFloat(d Difficulty) float64 {
	switch d {
	case DifficultyBeginner:
		return 0.3
	case DifficultyIntermediate:
		return 0.5
	case DifficultyAdvanced:
		return 0.7
	case DifficultyExpert:
		return 0.9
	default:
		return 0.5
	}
}

// MaxPreferredThemes caps the preferred-theme set on a profile.
const MaxPreferredThemes = 5

// QuizHistoryReadLimit caps how many history entries Load returns.
const QuizHistoryReadLimit = 20

// QuizResult is an append-only summary of one completed chamber.
type QuizResult struct {
	Theme      string     `json:"theme"`
	Difficulty Difficulty `json:"difficulty"`
	Score      int        `json:"score"`
	Total      int        `json:"total"`
	Accuracy   float64    `json:"accuracy"`
	Grade      string     `json:"grade"`
	PlayedAt   time.Time  `json:"played_at"`
}

// UserProfile is the durable per-user skill and affect profile. It is owned
// exclusively by the profile store; every numeric stat stays within [0,100]
// no matter how many updates are applied.
type UserProfile struct {
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Bravery       int        `json:"bravery"`
	LoreKnowledge int        `json:"lore_knowledge"`
	Logic         int        `json:"logic"`
	FearLevel     int        `json:"fear_level"`

	DifficultyLevel Difficulty `json:"difficulty_level"`
	FavoriteTheme   string     `json:"favorite_theme"`
	PreferredThemes []string   `json:"preferred_themes"`
	PreferredTone   string     `json:"preferred_tone"`

	QuizHistory             []QuizResult `json:"quiz_history"`
	ChambersCompleted       int          `json:"chambers_completed"`
	TotalQuestionsAnswered  int          `json:"total_questions_answered"`
	PerfectQuizzes          int          `json:"perfect_quizzes"`
	AverageAccuracy         float64      `json:"average_accuracy"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewDefaultProfile creates the profile used for a user identifier that has
// never been seen before. Never returns an error; unknown users are a
// normal condition.
func NewDefaultProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:          userID,
		Name:            userID,
		Bravery:         50,
		LoreKnowledge:   50,
		Logic:           50,
		FearLevel:       50,
		DifficultyLevel: DifficultyIntermediate,
		FavoriteTheme:   ThemeGeneralHorror,
		PreferredThemes: []string{},
		PreferredTone:   ToneCreepy,
	}
}

// ClampStat bounds a profile stat to [0,100].
func ClampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// HasPreferredTheme reports whether theme is already recorded.
func (p *UserProfile) HasPreferredTheme(theme string) bool {
	for _, t := range p.PreferredThemes {
		if t == theme {
			return true
		}
	}
	return false
}

// RecordPreferredTheme appends theme to the preferred set, respecting the
// cap, and adopts it as favorite when none is set yet.
func (p *UserProfile) RecordPreferredTheme(theme string) {
	if p.HasPreferredTheme(theme) {
		return
	}
	if len(p.PreferredThemes) >= MaxPreferredThemes {
		return
	}
	p.PreferredThemes = append(p.PreferredThemes, theme)
	if p.FavoriteTheme == "" {
		p.FavoriteTheme = theme
	}
}
