package profilestore

import (
	"context"
	"sync"
	"time"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"

	"go.uber.org/zap"
)

// Store owns all profile mutation. Updates for the same user are serialized
// through a per-user mutex so concurrent quiz completions cannot interleave
// their read-modify-write cycles.
type Store struct {
	repo domain.ProfileRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a profile store over the given repository.
func New(repo domain.ProfileRepository) *Store {
	return &Store{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// Load returns the profile for userID, defaults included for unknown users.
func (s *Store) Load(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.repo.Load(ctx, userID)
}

// ApplyPerformance folds one quiz outcome into the durable profile: stat
// deltas by accuracy band, reward deltas on top, the difficulty ladder
// move, theme preference, counters and the running accuracy mean. The
// updated profile is persisted and returned.
func (s *Store) ApplyPerformance(
	ctx context.Context,
	userID string,
	quiz *domain.Quiz,
	eval *domain.EvaluationResult,
	rewardDeltas domain.ProfileDeltas,
	state *domain.OracleState,
) (*domain.UserProfile, error) {
	if quiz == nil || eval == nil {
		return nil, domain.NewInvalidInputError("quiz and evaluation are required")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	profile, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	accuracy := eval.Accuracy()
	applyStatBands(profile, accuracy)

	// The affect state machine already folded the fear shift into an
	// absolute level; adopt it when present instead of shifting twice.
	if state != nil {
		profile.FearLevel = domain.ClampStat(state.PlayerState.FearLevel)
	}

	profile.Bravery = domain.ClampStat(profile.Bravery + rewardDeltas.Bravery)
	profile.LoreKnowledge = domain.ClampStat(profile.LoreKnowledge + rewardDeltas.LoreKnowledge)
	profile.Logic = domain.ClampStat(profile.Logic + rewardDeltas.Logic)
	profile.FearLevel = domain.ClampStat(profile.FearLevel + rewardDeltas.FearLevel)

	profile.DifficultyLevel = nextDifficulty(profile.DifficultyLevel, accuracy)

	if accuracy >= 0.7 {
		profile.RecordPreferredTheme(quiz.Theme)
	}

	profile.ChambersCompleted++
	profile.TotalQuestionsAnswered += eval.Total
	if eval.Score == eval.Total && eval.Total > 0 {
		profile.PerfectQuizzes++
	}
	n := float64(profile.ChambersCompleted)
	profile.AverageAccuracy = ((profile.AverageAccuracy * (n - 1)) + accuracy) / n

	profile.QuizHistory = append(profile.QuizHistory, domain.QuizResult{
		Theme:      quiz.Theme,
		Difficulty: quiz.Difficulty,
		Score:      eval.Score,
		Total:      eval.Total,
		Accuracy:   accuracy,
		Grade:      string(eval.Grade),
		PlayedAt:   time.Now(),
	})
	profile.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}

	logger.Get().Info("Profile updated",
		zap.String("user_id", userID),
		zap.Float64("accuracy", accuracy),
		zap.String("difficulty", string(profile.DifficultyLevel)),
		zap.Int("chambers_completed", profile.ChambersCompleted))
	return profile, nil
}

func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// applyStatBands applies the accuracy-banded stat changes. Strong runs
// build bravery and lore while easing fear; weak runs do the opposite.
func applyStatBands(profile *domain.UserProfile, accuracy float64) {
	switch {
	case accuracy >= 0.8:
		profile.Bravery = domain.ClampStat(profile.Bravery + 3)
		profile.LoreKnowledge = domain.ClampStat(profile.LoreKnowledge + 5)
		profile.Logic = domain.ClampStat(profile.Logic + 2)
		profile.FearLevel = domain.ClampStat(profile.FearLevel - 3)
	case accuracy >= 0.6:
		profile.Bravery = domain.ClampStat(profile.Bravery + 2)
		profile.LoreKnowledge = domain.ClampStat(profile.LoreKnowledge + 3)
		profile.Logic = domain.ClampStat(profile.Logic + 1)
		profile.FearLevel = domain.ClampStat(profile.FearLevel - 1)
	case accuracy >= 0.4:
		profile.LoreKnowledge = domain.ClampStat(profile.LoreKnowledge + 1)
	default:
		profile.FearLevel = domain.ClampStat(profile.FearLevel + 4)
		profile.Bravery = domain.ClampStat(profile.Bravery - 2)
	}
}

// nextDifficulty moves one ladder rung: up at 0.85, down below 0.3, never
// past either end.
func nextDifficulty(current domain.Difficulty, accuracy float64) domain.Difficulty {
	idx := domain.DifficultyIndex(current)
	switch {
	case accuracy >= 0.85 && idx < len(domain.DifficultyLadder)-1:
		return domain.DifficultyLadder[idx+1]
	case accuracy < 0.3 && idx > 0:
		return domain.DifficultyLadder[idx-1]
	default:
		return domain.DifficultyLadder[idx]
	}
}
