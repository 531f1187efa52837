package handler

import (
	"context"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/dto"
	"horror-oracle/internal/logger"
	"horror-oracle/internal/orchestrator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizFlow is the engine surface the HTTP layer depends on.
type QuizFlow interface {
	StartQuiz(ctx context.Context, userID string) (*orchestrator.StartQuizResult, error)
	EvaluateAndProgress(ctx context.Context, userID, quizID string, answers map[string]string) (*orchestrator.ProgressResult, error)
	Profile(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// OracleHandler handles quiz-flow HTTP requests
type OracleHandler struct {
	flow QuizFlow
}

// NewOracleHandler creates a new OracleHandler instance
func NewOracleHandler(flow QuizFlow) *OracleHandler {
	return &OracleHandler{flow: flow}
}

// StartQuiz handles POST /api/oracle/quiz/start
func (h *OracleHandler) StartQuiz(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}
	if req.UserID == "" {
		return domain.NewInvalidInputError("user_id is required")
	}

	result, err := h.flow.StartQuiz(c.Context(), req.UserID)
	if err != nil {
		logger.Get().Error("Failed to start quiz",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return err
	}

	return c.JSON(dto.StartQuizResponse{
		Quiz:    dto.NewQuizView(result.Quiz),
		Oracle:  result.Oracle,
		Whisper: result.Whisper,
		Profile: result.Profile,
	})
}

// SubmitAnswers handles POST /api/oracle/quiz/submit
func (h *OracleHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}
	if req.UserID == "" {
		return domain.NewInvalidInputError("user_id is required")
	}

	result, err := h.flow.EvaluateAndProgress(c.Context(), req.UserID, req.QuizID, req.Answers)
	if err != nil {
		logger.Get().Error("Failed to evaluate quiz",
			zap.String("user_id", req.UserID),
			zap.String("quiz_id", req.QuizID),
			zap.Error(err),
		)
		return err
	}

	return c.JSON(dto.SubmitAnswersResponse{
		Evaluation:      result.Evaluation,
		Oracle:          result.Oracle,
		Rewards:         result.Rewards,
		Recommendations: result.Recommendations,
		Whisper:         result.Whisper,
		Profile:         result.Profile,
		NextDifficulty:  string(result.NextDifficulty),
		NextTheme:       result.NextTheme,
	})
}

// GetProfile handles GET /api/oracle/profile/:userID
func (h *OracleHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Params("userID")
	if userID == "" {
		return domain.NewInvalidInputError("user id is required")
	}

	profile, err := h.flow.Profile(c.Context(), userID)
	if err != nil {
		logger.Get().Error("Failed to load profile",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	return c.JSON(dto.ProfileResponse{Profile: profile})
}
