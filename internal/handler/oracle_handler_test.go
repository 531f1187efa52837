package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/dto"
	"horror-oracle/internal/handler"
	"horror-oracle/internal/middleware"
	"horror-oracle/internal/orchestrator"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockQuizFlow
type MockQuizFlow struct {
	StartQuizFunc           func(ctx context.Context, userID string) (*orchestrator.StartQuizResult, error)
	EvaluateAndProgressFunc func(ctx context.Context, userID, quizID string, answers map[string]string) (*orchestrator.ProgressResult, error)
	ProfileFunc             func(ctx context.Context, userID string) (*domain.UserProfile, error)
}

func (m *MockQuizFlow) StartQuiz(ctx context.Context, userID string) (*orchestrator.StartQuizResult, error) {
	if m.StartQuizFunc != nil {
		return m.StartQuizFunc(ctx, userID)
	}
	panic("MockQuizFlow.StartQuizFunc not implemented")
}

func (m *MockQuizFlow) EvaluateAndProgress(ctx context.Context, userID, quizID string, answers map[string]string) (*orchestrator.ProgressResult, error) {
	if m.EvaluateAndProgressFunc != nil {
		return m.EvaluateAndProgressFunc(ctx, userID, quizID, answers)
	}
	panic("MockQuizFlow.EvaluateAndProgressFunc not implemented")
}

func (m *MockQuizFlow) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	panic("MockQuizFlow.ProfileFunc not implemented")
}

func newTestApp(flow handler.QuizFlow) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewOracleHandler(flow)
	app.Post("/api/oracle/quiz/start", h.StartQuiz)
	app.Post("/api/oracle/quiz/submit", h.SubmitAnswers)
	app.Get("/api/oracle/profile/:userID", h.GetProfile)
	return app
}

func sampleQuiz() *domain.Quiz {
	questions := make([]domain.Question, domain.QuestionsPerQuiz)
	for i := range questions {
		questions[i] = domain.Question{
			Text:          "Question " + string(rune('A'+i)),
			Choices:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "a",
			Difficulty:    0.5,
			Tone:          domain.ToneCreepy,
			Theme:         "slasher",
		}
	}
	return &domain.Quiz{
		ID:         "quiz-1",
		Room:       "The Bleeding Corridor",
		Intro:      "The door seals behind you.",
		Theme:      "slasher",
		Difficulty: domain.DifficultyIntermediate,
		Tone:       domain.ToneCreepy,
		Questions:  questions,
	}
}

func TestStartQuiz_ReturnsQuizWithoutAnswers(t *testing.T) {
	flow := &MockQuizFlow{
		StartQuizFunc: func(ctx context.Context, userID string) (*orchestrator.StartQuizResult, error) {
			return &orchestrator.StartQuizResult{
				Quiz:    sampleQuiz(),
				Oracle:  &domain.OracleState{Tone: domain.OracleToneNeutral},
				Profile: domain.NewDefaultProfile(userID),
			}, nil
		},
	}
	app := newTestApp(flow)

	body, _ := json.Marshal(dto.StartQuizRequest{UserID: "user-1"})
	req := httptest.NewRequest("POST", "/api/oracle/quiz/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dto.StartQuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "quiz-1", payload.Quiz.ID)
	require.Len(t, payload.Quiz.Questions, domain.QuestionsPerQuiz)

	// The wire payload must never leak the correct answers.
	raw, _ := json.Marshal(payload.Quiz)
	assert.NotContains(t, string(raw), "correct_answer")
}

func TestStartQuiz_MissingUserID(t *testing.T) {
	app := newTestApp(&MockQuizFlow{})

	body, _ := json.Marshal(dto.StartQuizRequest{})
	req := httptest.NewRequest("POST", "/api/oracle/quiz/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, string(domain.ErrInvalidInput), payload.Code)
}

func TestSubmitAnswers_ReturnsProgress(t *testing.T) {
	flow := &MockQuizFlow{
		EvaluateAndProgressFunc: func(ctx context.Context, userID, quizID string, answers map[string]string) (*orchestrator.ProgressResult, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "quiz-1", quizID)
			assert.Equal(t, "a", answers["Question A"])
			return &orchestrator.ProgressResult{
				Evaluation:     &domain.EvaluationResult{Score: 4, Total: 5, Percentage: 80.0, Grade: domain.GradeA},
				Oracle:         &domain.OracleState{Tone: domain.OracleToneReverent},
				Rewards:        &domain.RewardBundle{},
				Profile:        domain.NewDefaultProfile(userID),
				NextDifficulty: domain.DifficultyAdvanced,
				NextTheme:      "gothic",
			}, nil
		},
	}
	app := newTestApp(flow)

	body, _ := json.Marshal(dto.SubmitAnswersRequest{
		UserID:  "user-1",
		QuizID:  "quiz-1",
		Answers: map[string]string{"Question A": "a"},
	})
	req := httptest.NewRequest("POST", "/api/oracle/quiz/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dto.SubmitAnswersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 4, payload.Evaluation.Score)
	assert.Equal(t, domain.GradeA, payload.Evaluation.Grade)
	assert.Equal(t, "advanced", payload.NextDifficulty)
	assert.Equal(t, "gothic", payload.NextTheme)
}

func TestSubmitAnswers_NoActiveSessionIs404(t *testing.T) {
	flow := &MockQuizFlow{
		EvaluateAndProgressFunc: func(ctx context.Context, userID, quizID string, answers map[string]string) (*orchestrator.ProgressResult, error) {
			return nil, domain.NewNotFoundError("no active quiz for user")
		},
	}
	app := newTestApp(flow)

	body, _ := json.Marshal(dto.SubmitAnswersRequest{UserID: "user-1", QuizID: "quiz-9"})
	req := httptest.NewRequest("POST", "/api/oracle/quiz/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitAnswers_GenerationOutageIs503(t *testing.T) {
	flow := &MockQuizFlow{
		EvaluateAndProgressFunc: func(ctx context.Context, userID, quizID string, answers map[string]string) (*orchestrator.ProgressResult, error) {
			return nil, domain.NewGenerationUnavailableError(nil)
		},
	}
	app := newTestApp(flow)

	body, _ := json.Marshal(dto.SubmitAnswersRequest{UserID: "user-1", QuizID: "quiz-1"})
	req := httptest.NewRequest("POST", "/api/oracle/quiz/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetProfile_ReturnsProfile(t *testing.T) {
	flow := &MockQuizFlow{
		ProfileFunc: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			profile := domain.NewDefaultProfile(userID)
			profile.ChambersCompleted = 3
			return profile, nil
		},
	}
	app := newTestApp(flow)

	req := httptest.NewRequest("GET", "/api/oracle/profile/user-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dto.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "user-1", payload.Profile.UserID)
	assert.Equal(t, 3, payload.Profile.ChambersCompleted)
}

func TestStartQuiz_MalformedBody(t *testing.T) {
	app := newTestApp(&MockQuizFlow{})

	req := httptest.NewRequest("POST", "/api/oracle/quiz/start", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
