package evaluator

import (
	"context"
	"testing"

	"horror-oracle/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	name     string
	response string
	err      error
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testQuiz(tone string) *domain.Quiz {
	questions := make([]domain.Question, 0, 5)
	for _, text := range []string{"q1", "q2", "q3", "q4", "q5"} {
		questions = append(questions, domain.Question{
			Text:          text,
			Choices:       []string{"right", "wrong1", "wrong2", "wrong3"},
			CorrectAnswer: "right",
			Difficulty:    0.5,
			Tone:          tone,
			Theme:         "slasher",
		})
	}
	return &domain.Quiz{
		ID:         "01TEST",
		Room:       "The Chamber of Trials",
		Intro:      "intro",
		Theme:      "slasher",
		Difficulty: domain.DifficultyIntermediate,
		Tone:       tone,
		Questions:  questions,
	}
}

func answersWithCorrect(n int) map[string]string {
	answers := make(map[string]string)
	questions := []string{"q1", "q2", "q3", "q4", "q5"}
	for i, q := range questions {
		if i < n {
			answers[q] = "right"
		} else {
			answers[q] = "wrong1"
		}
	}
	return answers
}

func TestEvaluate_PerfectScore(t *testing.T) {
	e := New()

	result, err := e.Evaluate(context.Background(), testQuiz(domain.ToneCreepy), answersWithCorrect(5))
	require.NoError(t, err)

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 100.0, result.Percentage)
	assert.Equal(t, domain.GradeS, result.Grade)
	assert.Equal(t, domain.ActionAdvance, result.NextAction)
	require.NotNil(t, result.UnlockedLore)
	assert.Contains(t, *result.UnlockedLore, "true horror scholar")
}

func TestEvaluate_GradeBands(t *testing.T) {
	tests := []struct {
		correct    int
		grade      domain.Grade
		nextAction domain.NextAction
	}{
		{5, domain.GradeS, domain.ActionAdvance},
		{4, domain.GradeA, domain.ActionAdvance},
		{3, domain.GradeB, domain.ActionStay},
		{2, domain.GradeC, domain.ActionRetry},
		{1, domain.GradeD, domain.ActionDescend},
		{0, domain.GradeF, domain.ActionDescend},
	}

	e := New()
	for _, tt := range tests {
		result, err := e.Evaluate(context.Background(), testQuiz(domain.ToneGrim), answersWithCorrect(tt.correct))
		require.NoError(t, err)
		assert.Equal(t, tt.grade, result.Grade, "correct=%d", tt.correct)
		assert.Equal(t, tt.nextAction, result.NextAction, "correct=%d", tt.correct)
		if tt.correct < 5 {
			assert.Nil(t, result.UnlockedLore, "correct=%d", tt.correct)
		}
	}
}

func TestEvaluate_UnansweredCountsIncorrect(t *testing.T) {
	e := New()

	result, err := e.Evaluate(context.Background(), testQuiz(domain.ToneCreepy), map[string]string{"q1": "right"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, "No answer", result.DetailedFeedback[1].PlayerAnswer)
	assert.False(t, result.DetailedFeedback[1].IsCorrect)
	assert.Equal(t, "Wrong. The answer was: right", result.DetailedFeedback[1].Comment)
}

func TestEvaluate_OfflineReactionIsDeterministic(t *testing.T) {
	e := New()

	first, err := e.Evaluate(context.Background(), testQuiz(domain.ToneMocking), answersWithCorrect(2))
	require.NoError(t, err)
	second, err := e.Evaluate(context.Background(), testQuiz(domain.ToneMocking), answersWithCorrect(2))
	require.NoError(t, err)

	assert.Equal(t, first.OracleReaction, second.OracleReaction)
	assert.Equal(t, first.Verdict, second.Verdict)
}

func TestEvaluate_EveryToneHasTemplates(t *testing.T) {
	tones := []string{
		domain.ToneCreepy, domain.ToneMocking, domain.ToneAncient,
		domain.ToneWhispered, domain.ToneGrim, domain.TonePlayful,
	}
	e := New()

	for _, tone := range tones {
		for _, correct := range []int{0, 4, 5} {
			result, err := e.Evaluate(context.Background(), testQuiz(tone), answersWithCorrect(correct))
			require.NoError(t, err)
			assert.NotEmpty(t, result.Verdict, "tone=%s correct=%d", tone, correct)
			assert.NotEmpty(t, result.OracleReaction, "tone=%s correct=%d", tone, correct)
		}
	}
}

func TestEvaluate_BackendNarrationOverlaysText(t *testing.T) {
	backend := &stubBackend{
		name:     "ollama",
		response: `{"verdict": "The void approves.", "oracle_reaction": "A slow, deliberate nod from the darkness."}`,
	}
	e := New(backend)

	result, err := e.Evaluate(context.Background(), testQuiz(domain.ToneCreepy), answersWithCorrect(4))
	require.NoError(t, err)

	assert.Equal(t, "The void approves.", result.Verdict)
	assert.Equal(t, "A slow, deliberate nod from the darkness.", result.OracleReaction)
	// Scoring stays local regardless of narration.
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, domain.GradeA, result.Grade)
}

func TestEvaluate_BackendFailureKeepsTemplates(t *testing.T) {
	backend := &stubBackend{name: "ollama", err: domain.NewBackendUnavailableError(nil)}
	e := New(backend)

	result, err := e.Evaluate(context.Background(), testQuiz(domain.ToneGrim), answersWithCorrect(3))
	require.NoError(t, err)

	assert.Equal(t, "Your score: 3/5. The trial shows no mercy.", result.Verdict)
}

func TestEvaluate_InvalidQuizRejected(t *testing.T) {
	e := New()
	quiz := testQuiz(domain.ToneCreepy)
	quiz.Questions = quiz.Questions[:3]

	_, err := e.Evaluate(context.Background(), quiz, map[string]string{})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvariantViolation, domainErr.Code)
}
