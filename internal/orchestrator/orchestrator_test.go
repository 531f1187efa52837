package orchestrator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"horror-oracle/internal/adapter"
	"horror-oracle/internal/affect"
	"horror-oracle/internal/config"
	"horror-oracle/internal/domain"
	"horror-oracle/internal/evaluator"
	"horror-oracle/internal/generator"
	"horror-oracle/internal/narrative"
	"horror-oracle/internal/profilestore"
	"horror-oracle/internal/recommender"
	"horror-oracle/internal/repository"
	"horror-oracle/internal/retriever"
	"horror-oracle/internal/reward"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	orch *Orchestrator
	repo domain.ProfileRepository
}

func newFixture(t *testing.T, cfg config.EngineConfig) *fixture {
	t.Helper()

	repo := repository.NewMemoryProfileAdapter()
	orch := New(
		generator.New(retriever.NewStaticRetriever()),
		evaluator.New(),
		affect.New(),
		reward.New(),
		profilestore.New(repo),
		recommender.New(),
		narrative.NewWithRand(rand.New(rand.NewSource(7))),
		adapter.NewMemoryCacheAdapter(),
		cfg,
	)
	orch.newRand = func() *rand.Rand {
		return rand.New(rand.NewSource(7))
	}
	return &fixture{orch: orch, repo: repo}
}

func correctAnswers(quiz *domain.Quiz) map[string]string {
	answers := make(map[string]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers[q.Text] = q.CorrectAnswer
	}
	return answers
}

func TestStartQuiz_OpensChamberAndStoresSession(t *testing.T) {
	f := newFixture(t, config.EngineConfig{FavoriteThemeBias: 0.6, PreferredThemeBias: 0.4})

	result, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)

	require.NotNil(t, result.Quiz)
	assert.Len(t, result.Quiz.Questions, domain.QuestionsPerQuiz)
	assert.NotEmpty(t, result.Quiz.Room)

	require.NotNil(t, result.Oracle)
	require.NotNil(t, result.Whisper)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "user-1", result.Profile.UserID)

	stored, err := f.orch.loadSession(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, result.Quiz.ID, stored.ID)
}

func TestStartQuiz_EmptyUserIDRejected(t *testing.T) {
	f := newFixture(t, config.EngineConfig{})

	_, err := f.orch.StartQuiz(context.Background(), "")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrInvalidInput))
}

func TestStartQuiz_FavoriteThemeBiasHonored(t *testing.T) {
	f := newFixture(t, config.EngineConfig{FavoriteThemeBias: 1.0})

	profile := domain.NewDefaultProfile("user-1")
	profile.FavoriteTheme = "vampire"
	require.NoError(t, f.repo.Save(context.Background(), profile))

	result, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "vampire", result.Quiz.Theme)
}

func TestEvaluateAndProgress_NoActiveSession(t *testing.T) {
	f := newFixture(t, config.EngineConfig{})

	_, err := f.orch.EvaluateAndProgress(context.Background(), "user-1", "", nil)
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrNotFound))
}

func TestEvaluateAndProgress_QuizIDMismatchKeepsSession(t *testing.T) {
	f := newFixture(t, config.EngineConfig{})

	started, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = f.orch.EvaluateAndProgress(context.Background(), "user-1", "not-the-active-quiz", nil)
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrNotFound))

	// The active session survives a mismatched submission.
	result, err := f.orch.EvaluateAndProgress(context.Background(), "user-1", started.Quiz.ID, correctAnswers(started.Quiz))
	require.NoError(t, err)
	assert.Equal(t, domain.QuestionsPerQuiz, result.Evaluation.Score)
}

func TestEvaluateAndProgress_PerfectRun(t *testing.T) {
	f := newFixture(t, config.EngineConfig{})

	started, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)

	result, err := f.orch.EvaluateAndProgress(context.Background(), "user-1", started.Quiz.ID, correctAnswers(started.Quiz))
	require.NoError(t, err)

	assert.Equal(t, domain.QuestionsPerQuiz, result.Evaluation.Score)
	assert.Equal(t, domain.GradeS, result.Evaluation.Grade)
	require.NotNil(t, result.Evaluation.UnlockedLore)

	relicIDs := make([]string, 0, len(result.Rewards.Relics))
	for _, r := range result.Rewards.Relics {
		relicIDs = append(relicIDs, r.ID)
	}
	assert.Contains(t, relicIDs, "perfect_knowledge_crystal")

	assert.Equal(t, 1, result.Profile.ChambersCompleted)
	assert.Equal(t, 1, result.Profile.PerfectQuizzes)
	assert.Equal(t, domain.DifficultyAdvanced, result.NextDifficulty)
	assert.Equal(t, domain.DifficultyAdvanced, result.Profile.DifficultyLevel)
	assert.NotEqual(t, started.Quiz.Theme, result.NextTheme)
	assert.NotEmpty(t, result.Recommendations)
	require.NotNil(t, result.Whisper)
	require.NotNil(t, result.Oracle)
}

func TestEvaluateAndProgress_SessionConsumed(t *testing.T) {
	f := newFixture(t, config.EngineConfig{})

	started, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = f.orch.EvaluateAndProgress(context.Background(), "user-1", started.Quiz.ID, correctAnswers(started.Quiz))
	require.NoError(t, err)

	_, err = f.orch.EvaluateAndProgress(context.Background(), "user-1", started.Quiz.ID, correctAnswers(started.Quiz))
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrNotFound))
}

func TestEvaluateAndProgress_FailureDemotes(t *testing.T) {
	f := newFixture(t, config.EngineConfig{})

	profile := domain.NewDefaultProfile("user-1")
	profile.DifficultyLevel = domain.DifficultyAdvanced
	require.NoError(t, f.repo.Save(context.Background(), profile))

	started, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)

	result, err := f.orch.EvaluateAndProgress(context.Background(), "user-1", started.Quiz.ID, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Evaluation.Score)
	assert.Equal(t, domain.GradeF, result.Evaluation.Grade)
	assert.Nil(t, result.Evaluation.UnlockedLore)
	assert.Equal(t, domain.DifficultyIntermediate, result.NextDifficulty)
}

func TestPickNextDifficultyAndTheme_Bands(t *testing.T) {
	f := newFixture(t, config.EngineConfig{})
	rng := rand.New(rand.NewSource(7))

	beginner := domain.NewDefaultProfile("user-1")
	beginner.DifficultyLevel = domain.DifficultyBeginner

	promoted, _ := f.orch.PickNextDifficultyAndTheme(rng, beginner, 0.9, "slasher")
	assert.Equal(t, domain.DifficultyIntermediate, promoted)

	demoted, _ := f.orch.PickNextDifficultyAndTheme(rng, beginner, 0.1, "slasher")
	assert.Equal(t, domain.DifficultyBeginner, demoted, "floor holds at the easiest rung")

	expert := domain.NewDefaultProfile("user-2")
	expert.DifficultyLevel = domain.DifficultyLadder[len(domain.DifficultyLadder)-1]
	capped, _ := f.orch.PickNextDifficultyAndTheme(rng, expert, 1.0, "slasher")
	assert.Equal(t, expert.DifficultyLevel, capped, "ceiling holds at the hardest rung")

	mid := domain.NewDefaultProfile("user-3")
	mid.DifficultyLevel = domain.DifficultyIntermediate
	for i := 0; i < 50; i++ {
		next, _ := f.orch.PickNextDifficultyAndTheme(rng, mid, 0.7, "slasher")
		assert.Contains(t, []domain.Difficulty{domain.DifficultyIntermediate, domain.DifficultyAdvanced}, next)
	}
	for i := 0; i < 50; i++ {
		next, _ := f.orch.PickNextDifficultyAndTheme(rng, mid, 0.5, "slasher")
		assert.Contains(t, []domain.Difficulty{domain.DifficultyIntermediate, domain.DifficultyBeginner}, next)
	}
}

func TestPickNextDifficultyAndTheme_ThemeAlwaysRotates(t *testing.T) {
	f := newFixture(t, config.EngineConfig{PreferredThemeBias: 0.4})
	rng := rand.New(rand.NewSource(7))
	profile := domain.NewDefaultProfile("user-1")
	profile.PreferredThemes = []string{"gothic", "cosmic"}

	for _, current := range domain.AllThemes {
		for i := 0; i < 20; i++ {
			_, theme := f.orch.PickNextDifficultyAndTheme(rng, profile, 0.5, current)
			assert.NotEqual(t, current, theme)
		}
	}
}

func TestPickNextDifficultyAndTheme_PreferredBias(t *testing.T) {
	f := newFixture(t, config.EngineConfig{PreferredThemeBias: 1.0})
	rng := rand.New(rand.NewSource(7))
	profile := domain.NewDefaultProfile("user-1")
	profile.PreferredThemes = []string{"gothic"}

	_, theme := f.orch.PickNextDifficultyAndTheme(rng, profile, 0.5, "slasher")
	assert.Equal(t, "gothic", theme)

	// The only preferred theme is the current one, so the catalog serves.
	_, theme = f.orch.PickNextDifficultyAndTheme(rng, profile, 0.5, "gothic")
	assert.NotEqual(t, "gothic", theme)
}

func TestPrefetch_ServesNextChamber(t *testing.T) {
	f := newFixture(t, config.EngineConfig{PrefetchEnabled: true})

	started, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)

	result, err := f.orch.EvaluateAndProgress(context.Background(), "user-1", started.Quiz.ID, correctAnswers(started.Quiz))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		f.orch.prefetchMu.Lock()
		defer f.orch.prefetchMu.Unlock()
		return f.orch.prefetched["user-1"] != nil
	}, 2*time.Second, 10*time.Millisecond)

	next, err := f.orch.StartQuiz(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, result.NextTheme, next.Quiz.Theme)
	assert.Equal(t, result.NextDifficulty, next.Quiz.Difficulty)

	f.orch.prefetchMu.Lock()
	_, still := f.orch.prefetched["user-1"]
	f.orch.prefetchMu.Unlock()
	assert.False(t, still, "slot is consumed once served")
}

func TestPerformanceTierBuckets(t *testing.T) {
	assert.Equal(t, "excellent", performanceTier(0.9))
	assert.Equal(t, "good", performanceTier(0.6))
	assert.Equal(t, "average", performanceTier(0.45))
	assert.Equal(t, "poor", performanceTier(0.2))
}

func TestWhisperEmotionMapping(t *testing.T) {
	assert.Equal(t, narrative.EmotionPleased, whisperEmotion(domain.OracleToneReverent))
	assert.Equal(t, narrative.EmotionPleased, whisperEmotion(domain.OracleToneAncient))
	assert.Equal(t, narrative.EmotionDisappointed, whisperEmotion(domain.OracleToneDisappointed))
	assert.Equal(t, narrative.EmotionMocking, whisperEmotion(domain.OracleToneMocking))
	assert.Equal(t, narrative.EmotionIndifferent, whisperEmotion(domain.OracleToneNeutral))
}
