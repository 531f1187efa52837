package evaluator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"

	"go.uber.org/zap"
)

const unansweredMarker = "No answer"

const judgmentSystemPrompt = `You are the Horror Oracle's Judgment Engine, the voice that passes sentence on every trial.
Respond with ONLY a JSON object of this shape, no prose:
{"verdict": "one-line judgment in the requested tone", "oracle_reaction": "2-3 sentence atmospheric reaction in the requested tone"}`

// Evaluator scores submitted quizzes and voices the Oracle's judgment.
// Scoring is always computed locally; backends only dress the result. A
// quiz evaluated offline produces byte-identical text for identical inputs.
type Evaluator struct {
	backends []domain.GenerationBackend
}

// New creates an evaluator over the given narrative backend tiers. Zero
// backends means fully deterministic judgments.
func New(backends ...domain.GenerationBackend) *Evaluator {
	return &Evaluator{backends: backends}
}

// Evaluate judges the player's answers against the quiz. Answers are keyed
// by question text; a missing key counts as incorrect. The returned result
// carries the grade, the per-question breakdown and the Oracle's reaction.
func (e *Evaluator) Evaluate(ctx context.Context, quiz *domain.Quiz, answers map[string]string) (*domain.EvaluationResult, error) {
	if quiz == nil {
		return nil, domain.NewInvalidInputError("quiz is required")
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	score := 0
	total := len(quiz.Questions)
	feedback := make([]domain.QuestionFeedback, 0, total)
	for _, q := range quiz.Questions {
		playerAnswer, answered := answers[q.Text]
		if !answered {
			playerAnswer = unansweredMarker
		}
		correct := answered && playerAnswer == q.CorrectAnswer
		if correct {
			score++
		}

		comment := "Correct."
		if !correct {
			comment = "Wrong. The answer was: " + q.CorrectAnswer
		}
		feedback = append(feedback, domain.QuestionFeedback{
			Question:      q.Text,
			PlayerAnswer:  playerAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
			Comment:       comment,
		})
	}

	percentage := math.Round(float64(score)/float64(total)*1000) / 10

	result := &domain.EvaluationResult{
		Score:            score,
		Total:            total,
		Percentage:       percentage,
		Grade:            domain.GradeFor(percentage),
		Verdict:          fallbackVerdict(quiz.Tone, score, total),
		DetailedFeedback: feedback,
		OracleReaction:   fallbackReaction(quiz.Tone, score, total, percentage),
		NextAction:       domain.NextActionFor(percentage),
	}
	if score == total {
		lore := "Perfect knowledge unlocks the void's secrets. The Oracle nods in acknowledgment of a true horror scholar."
		result.UnlockedLore = &lore
	}

	e.applyBackendNarration(ctx, quiz, result)
	return result, nil
}

// applyBackendNarration asks the backend tiers for voiced judgment text and
// overlays it on the deterministic result. Every failure mode keeps the
// template text; the score fields are never touched.
func (e *Evaluator) applyBackendNarration(ctx context.Context, quiz *domain.Quiz, result *domain.EvaluationResult) {
	if len(e.backends) == 0 {
		return
	}
	l := logger.Get()

	userPrompt := fmt.Sprintf("Tone: %s\nTheme: %s\nScore: %d out of %d (%.1f%%)\nGrade: %s",
		quiz.Tone, quiz.Theme, result.Score, result.Total, result.Percentage, result.Grade)

	for _, backend := range e.backends {
		raw, err := backend.Complete(ctx, judgmentSystemPrompt, userPrompt)
		if err != nil {
			l.Warn("Judgment narration tier failed",
				zap.String("backend", backend.Name()),
				zap.Error(err))
			continue
		}

		var narration struct {
			Verdict        string `json:"verdict"`
			OracleReaction string `json:"oracle_reaction"`
		}
		if err := json.Unmarshal([]byte(raw), &narration); err != nil ||
			narration.Verdict == "" || narration.OracleReaction == "" {
			l.Warn("Judgment narration payload invalid",
				zap.String("backend", backend.Name()))
			continue
		}

		result.Verdict = narration.Verdict
		result.OracleReaction = narration.OracleReaction
		return
	}
}
