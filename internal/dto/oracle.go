package dto

import "horror-oracle/internal/domain"

// StartQuizRequest opens a new chamber for a user.
type StartQuizRequest struct {
	UserID string `json:"user_id"`
}

// SubmitAnswersRequest submits the active chamber's answers. Answers map
// question text to the chosen option; missing entries count as unanswered.
type SubmitAnswersRequest struct {
	UserID  string            `json:"user_id"`
	QuizID  string            `json:"quiz_id"`
	Answers map[string]string `json:"answers"`
}

// QuestionView is a question as shown to the player. The correct answer
// never leaves the server before submission.
type QuestionView struct {
	Text       string   `json:"question"`
	Choices    []string `json:"choices"`
	Difficulty float64  `json:"difficulty"`
}

// QuizView is the client-facing quiz payload.
type QuizView struct {
	ID         string         `json:"id"`
	Room       string         `json:"room"`
	Intro      string         `json:"intro"`
	Theme      string         `json:"theme"`
	Difficulty string         `json:"difficulty"`
	Tone       string         `json:"tone"`
	Questions  []QuestionView `json:"questions"`
}

// NewQuizView strips server-only fields from a quiz.
func NewQuizView(quiz *domain.Quiz) QuizView {
	questions := make([]QuestionView, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuestionView{
			Text:       q.Text,
			Choices:    q.Choices,
			Difficulty: q.Difficulty,
		}
	}
	return QuizView{
		ID:         quiz.ID,
		Room:       quiz.Room,
		Intro:      quiz.Intro,
		Theme:      quiz.Theme,
		Difficulty: string(quiz.Difficulty),
		Tone:       quiz.Tone,
		Questions:  questions,
	}
}

// StartQuizResponse is the payload for a freshly opened chamber.
type StartQuizResponse struct {
	Quiz    QuizView             `json:"quiz"`
	Oracle  *domain.OracleState  `json:"oracle"`
	Whisper *domain.LoreFragment `json:"whisper"`
	Profile *domain.UserProfile  `json:"profile"`
}

// SubmitAnswersResponse is the full outcome of a judged chamber.
type SubmitAnswersResponse struct {
	Evaluation      *domain.EvaluationResult `json:"evaluation"`
	Oracle          *domain.OracleState      `json:"oracle"`
	Rewards         *domain.RewardBundle     `json:"rewards"`
	Recommendations []domain.MovieRef        `json:"recommendations"`
	Whisper         *domain.LoreFragment     `json:"whisper"`
	Profile         *domain.UserProfile      `json:"profile"`
	NextDifficulty  string                   `json:"next_difficulty"`
	NextTheme       string                   `json:"next_theme"`
}

// ProfileResponse wraps the durable profile for the profile endpoint.
type ProfileResponse struct {
	Profile *domain.UserProfile `json:"profile"`
}

// HealthResponse reports component health for the health endpoint.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
