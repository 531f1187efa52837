package domain

// Grade is the S-to-F letter grade derived from the score percentage.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFor maps a percentage to a letter grade. The mapping is a
// non-decreasing step function of percentage.
func GradeFor(percentage float64) Grade {
	switch {
	case percentage == 100:
		return GradeS
	case percentage >= 80:
		return GradeA
	case percentage >= 60:
		return GradeB
	case percentage >= 40:
		return GradeC
	case percentage >= 20:
		return GradeD
	default:
		return GradeF
	}
}

// NextAction is the engine's recommended follow-up after a quiz.
type NextAction string

const (
	ActionAdvance NextAction = "advance"
	ActionStay    NextAction = "stay"
	ActionRetry   NextAction = "retry"
	ActionDescend NextAction = "descend"
)

// NextActionFor maps a percentage to the recommended next step.
func NextActionFor(percentage float64) NextAction {
	switch {
	case percentage >= 80:
		return ActionAdvance
	case percentage >= 60:
		return ActionStay
	case percentage >= 40:
		return ActionRetry
	default:
		return ActionDescend
	}
}

// QuestionFeedback is the per-question breakdown in an evaluation.
type QuestionFeedback struct {
	Question      string `json:"question"`
	PlayerAnswer  string `json:"player_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Comment       string `json:"comment"`
}

// EvaluationResult is the complete judgment of one submitted quiz.
// UnlockedLore is non-nil iff the run was perfect; this is the only
// unconditional bonus-content trigger in the engine.
type EvaluationResult struct {
	Score            int                `json:"score"`
	Total            int                `json:"total"`
	Percentage       float64            `json:"percentage"`
	Grade            Grade              `json:"grade"`
	Verdict          string             `json:"verdict"`
	DetailedFeedback []QuestionFeedback `json:"detailed_feedback"`
	OracleReaction   string             `json:"oracle_reaction"`
	NextAction       NextAction         `json:"next_action"`
	UnlockedLore     *string            `json:"unlocked_lore"`
}

// Accuracy returns score/total, 0 for an empty quiz.
func (r *EvaluationResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}
