package orchestrator

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"horror-oracle/internal/affect"
	"horror-oracle/internal/cache"
	"horror-oracle/internal/config"
	"horror-oracle/internal/domain"
	"horror-oracle/internal/evaluator"
	"horror-oracle/internal/generator"
	"horror-oracle/internal/logger"
	"horror-oracle/internal/narrative"
	"horror-oracle/internal/profilestore"
	"horror-oracle/internal/recommender"
	"horror-oracle/internal/reward"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	sessionTTL      = 30 * time.Minute
	prefetchTimeout = 45 * time.Second
)

// StartQuizResult is everything a client needs to present a new chamber.
type StartQuizResult struct {
	Quiz    *domain.Quiz         `json:"quiz"`
	Oracle  *domain.OracleState  `json:"oracle"`
	Whisper *domain.LoreFragment `json:"whisper"`
	Profile *domain.UserProfile  `json:"profile"`
}

// ProgressResult is the full outcome of a submitted chamber.
type ProgressResult struct {
	Evaluation      *domain.EvaluationResult `json:"evaluation"`
	Oracle          *domain.OracleState      `json:"oracle"`
	Rewards         *domain.RewardBundle     `json:"rewards"`
	Recommendations []domain.MovieRef        `json:"recommendations"`
	Whisper         *domain.LoreFragment     `json:"whisper"`
	Profile         *domain.UserProfile      `json:"profile"`
	NextDifficulty  domain.Difficulty        `json:"next_difficulty"`
	NextTheme       string                   `json:"next_theme"`
}

// Orchestrator drives the quiz loop: chamber creation, judgment,
// progression and the hand-off state between them. Active quizzes live in
// the session cache; one submission consumes them.
type Orchestrator struct {
	generator    *generator.Generator
	evaluator    *evaluator.Evaluator
	affect       *affect.StateMachine
	rewards      *reward.Generator
	profiles     *profilestore.Store
	recommender  *recommender.Recommender
	whisperer    *narrative.Whisperer
	sessionCache domain.Cache
	engineCfg    config.EngineConfig

	// prefetch holds at most one pre-generated quiz per user. Taking the
	// slot clears it; a stale slot is simply regenerated.
	prefetchMu   sync.Mutex
	prefetched   map[string]*domain.Quiz
	prefetchWork singleflight.Group

	newRand func() *rand.Rand
}

// New wires the orchestrator from its engine components.
func New(
	gen *generator.Generator,
	eval *evaluator.Evaluator,
	aff *affect.StateMachine,
	rew *reward.Generator,
	profiles *profilestore.Store,
	rec *recommender.Recommender,
	whisperer *narrative.Whisperer,
	sessionCache domain.Cache,
	engineCfg config.EngineConfig,
) *Orchestrator {
	return &Orchestrator{
		generator:    gen,
		evaluator:    eval,
		affect:       aff,
		rewards:      rew,
		profiles:     profiles,
		recommender:  rec,
		whisperer:    whisperer,
		sessionCache: sessionCache,
		engineCfg:    engineCfg,
		prefetched:   make(map[string]*domain.Quiz),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// StartQuiz opens a new chamber for the user: theme selection from the
// profile, quiz generation (or a prefetched quiz when one is waiting), the
// opening whisper and the Oracle's neutral baseline state.
func (o *Orchestrator) StartQuiz(ctx context.Context, userID string) (*StartQuizResult, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user id is required")
	}

	profile, err := o.profiles.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	quiz := o.takePrefetched(userID)
	if quiz == nil {
		rng := o.newRand()
		theme := o.pickStartTheme(rng, profile)
		quiz, err = o.generator.Generate(ctx, theme, profile.DifficultyLevel, profile.PreferredTone)
		if err != nil {
			return nil, err
		}
	}

	if err := o.storeSession(ctx, userID, quiz); err != nil {
		logger.Get().Warn("Failed to store quiz session",
			zap.String("user_id", userID),
			zap.Error(err))
	}

	state := o.affect.NextState(0.5, domain.OracleToneNeutral, profile)
	whisper := o.whisperer.Whisper(profile, quiz.Theme, narrative.EmotionIndifferent, "average")

	return &StartQuizResult{
		Quiz:    quiz,
		Oracle:  state,
		Whisper: whisper,
		Profile: profile,
	}, nil
}

// EvaluateAndProgress judges the submitted answers for the user's active
// quiz and runs the full progression pipeline: affect, rewards, profile
// update, recommendations, the transition whisper and the next chamber's
// difficulty and theme. The active session is consumed either way.
func (o *Orchestrator) EvaluateAndProgress(ctx context.Context, userID, quizID string, answers map[string]string) (*ProgressResult, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user id is required")
	}

	quiz, err := o.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if quizID != "" && quiz.ID != quizID {
		return nil, domain.NewNotFoundError("submitted quiz is not the active session")
	}
	o.clearSession(ctx, userID)

	evaluation, err := o.evaluator.Evaluate(ctx, quiz, answers)
	if err != nil {
		return nil, err
	}
	accuracy := evaluation.Accuracy()

	profile, err := o.profiles.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := o.affect.NextState(accuracy, quiz.Tone, profile)

	bundle := o.rewards.Generate(ctx, domain.Performance{
		Score:    evaluation.Score,
		OutOf:    evaluation.Total,
		Accuracy: accuracy,
		Grade:    evaluation.Grade,
	}, profile, state)

	// Plan the next chamber from the pre-update profile: ApplyPerformance
	// already moves the ladder, so planning from the updated one would
	// promote twice on a strong run.
	rng := o.newRand()
	nextDifficulty, nextTheme := o.PickNextDifficultyAndTheme(rng, profile, accuracy, quiz.Theme)

	updated, err := o.profiles.ApplyPerformance(ctx, userID, quiz, evaluation, bundle.ProfileUpdates, state)
	if err != nil {
		return nil, err
	}

	tier := performanceTier(accuracy)
	movies := o.recommender.Recommend(ctx, updated, domain.RecommendContext{
		RecentTheme:     quiz.Theme,
		PerformanceTier: tier,
		OracleEmotion:   state.Emotion,
	})

	whisper := o.whisperer.Whisper(updated, quiz.Theme, whisperEmotion(state.Tone), tier)

	if o.engineCfg.PrefetchEnabled {
		o.prefetchNext(userID, nextTheme, nextDifficulty, profile.PreferredTone)
	}

	return &ProgressResult{
		Evaluation:      evaluation,
		Oracle:          state,
		Rewards:         bundle,
		Recommendations: movies,
		Whisper:         whisper,
		Profile:         updated,
		NextDifficulty:  nextDifficulty,
		NextTheme:       nextTheme,
	}, nil
}

// Profile returns the durable profile for userID, defaults for unknown
// users.
func (o *Orchestrator) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("user id is required")
	}
	return o.profiles.Load(ctx, userID)
}

// PickNextDifficultyAndTheme plans the following chamber. Difficulty moves
// by accuracy band with a random component in the middle bands; the theme
// always rotates away from the current one, biased toward the player's
// preferred themes.
func (o *Orchestrator) PickNextDifficultyAndTheme(rng *rand.Rand, profile *domain.UserProfile, accuracy float64, currentTheme string) (domain.Difficulty, string) {
	idx := domain.DifficultyIndex(profile.DifficultyLevel)
	last := len(domain.DifficultyLadder) - 1

	switch {
	case accuracy >= 0.85:
		if idx < last {
			idx++
		}
	case accuracy >= 0.60:
		if rng.Float64() < 0.5 && idx < last {
			idx++
		}
	case accuracy >= 0.40:
		if rng.Float64() >= 0.6 && idx > 0 {
			idx--
		}
	default:
		if idx > 0 {
			idx--
		}
	}

	return domain.DifficultyLadder[idx], o.rotateTheme(rng, profile, currentTheme)
}

// pickStartTheme chooses the opening theme: the favorite with the
// configured bias, otherwise uniformly from the catalog.
func (o *Orchestrator) pickStartTheme(rng *rand.Rand, profile *domain.UserProfile) string {
	if profile.FavoriteTheme != "" && rng.Float64() < o.engineCfg.FavoriteThemeBias {
		return profile.FavoriteTheme
	}
	return domain.AllThemes[rng.Intn(len(domain.AllThemes))]
}

// rotateTheme picks the next theme, never repeating the current one.
// Preferred themes win with the configured bias when any qualifies.
func (o *Orchestrator) rotateTheme(rng *rand.Rand, profile *domain.UserProfile, currentTheme string) string {
	var preferred []string
	for _, t := range profile.PreferredThemes {
		if t != currentTheme {
			preferred = append(preferred, t)
		}
	}
	if len(preferred) > 0 && rng.Float64() < o.engineCfg.PreferredThemeBias {
		return preferred[rng.Intn(len(preferred))]
	}

	candidates := make([]string, 0, len(domain.AllThemes)-1)
	for _, t := range domain.AllThemes {
		if t != currentTheme {
			candidates = append(candidates, t)
		}
	}
	return candidates[rng.Intn(len(candidates))]
}

// prefetchNext generates the planned next chamber in the background and
// parks it in the user's slot. Concurrent submissions share one flight.
func (o *Orchestrator) prefetchNext(userID, theme string, difficulty domain.Difficulty, tone string) {
	go func() {
		_, _, _ = o.prefetchWork.Do(userID, func() (interface{}, error) {
			ctx, cancel := context.WithTimeout(context.Background(), prefetchTimeout)
			defer cancel()

			quiz, err := o.generator.Generate(ctx, theme, difficulty, tone)
			if err != nil {
				logger.Get().Warn("Prefetch generation failed",
					zap.String("user_id", userID),
					zap.Error(err))
				return nil, err
			}

			o.prefetchMu.Lock()
			o.prefetched[userID] = quiz
			o.prefetchMu.Unlock()
			return quiz, nil
		})
	}()
}

// takePrefetched consumes the user's prefetch slot, clearing it so the
// quiz is served at most once.
func (o *Orchestrator) takePrefetched(userID string) *domain.Quiz {
	o.prefetchMu.Lock()
	defer o.prefetchMu.Unlock()
	quiz := o.prefetched[userID]
	delete(o.prefetched, userID)
	return quiz
}

func (o *Orchestrator) storeSession(ctx context.Context, userID string, quiz *domain.Quiz) error {
	raw, err := json.Marshal(quiz)
	if err != nil {
		return domain.NewInternalError("failed to serialize quiz session", err)
	}
	return o.sessionCache.Set(ctx, sessionKey(userID), string(raw), sessionTTL)
}

func (o *Orchestrator) loadSession(ctx context.Context, userID string) (*domain.Quiz, error) {
	raw, err := o.sessionCache.Get(ctx, sessionKey(userID))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, domain.NewNotFoundError("no active quiz for user")
		}
		return nil, domain.NewInternalError("failed to load quiz session", err)
	}

	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, domain.NewInternalError("stored quiz session corrupt", err)
	}
	return &quiz, nil
}

func (o *Orchestrator) clearSession(ctx context.Context, userID string) {
	if err := o.sessionCache.Delete(ctx, sessionKey(userID)); err != nil {
		logger.Get().Warn("Failed to clear quiz session",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

func sessionKey(userID string) string {
	return cache.GenerateCacheKey("session", userID)
}

// performanceTier buckets accuracy for the recommender and whisperer.
func performanceTier(accuracy float64) string {
	switch {
	case accuracy >= 0.8:
		return "excellent"
	case accuracy >= 0.6:
		return "good"
	case accuracy >= 0.4:
		return "average"
	default:
		return "poor"
	}
}

// whisperEmotion maps the Oracle's tone onto the whisperer's emotion
// families.
func whisperEmotion(tone string) string {
	switch tone {
	case domain.OracleToneReverent, domain.OracleToneAncient:
		return narrative.EmotionPleased
	case domain.OracleToneDisappointed:
		return narrative.EmotionDisappointed
	case domain.OracleToneMocking:
		return narrative.EmotionMocking
	default:
		return narrative.EmotionIndifferent
	}
}
