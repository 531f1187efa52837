package domain

// QuestionsPerQuiz is the fixed quiz length. The evaluator rejects any quiz
// that reaches it with a different count.
const QuestionsPerQuiz = 5

// Theme catalog. Every quiz theme is drawn from this set; rotation excludes
// only the current theme.
const ThemeGeneralHorror = "general_horror"

// AllThemes is the fixed 13-entry theme catalog.
var AllThemes = []string{
	ThemeGeneralHorror, "slasher", "psychological", "supernatural",
	"zombie", "vampire", "cosmic", "gothic", "body_horror",
	"found_footage", "haunted_house", "folklore", "survival",
}

// Feedback tones recognized by the evaluator's template set.
const (
	ToneCreepy    = "creepy"
	ToneMocking   = "mocking"
	ToneAncient   = "ancient"
	ToneWhispered = "whispered"
	ToneGrim      = "grim"
	TonePlayful   = "playful"
)

// Question is a single multiple-choice question. Choices always holds four
// distinct options and CorrectAnswer is one of them.
type Question struct {
	Text              string   `json:"question"`
	Choices           []string `json:"choices"`
	CorrectAnswer     string   `json:"correct_answer"`
	Difficulty        float64  `json:"difficulty"`
	Tone              string   `json:"tone"`
	Theme             string   `json:"theme"`
	IsProfileQuestion bool     `json:"is_profile_question,omitempty"`
}

// Validate checks the question's structural invariants.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Choices) != 4 {
		return NewInvalidInputError("question must have exactly 4 choices")
	}
	seen := make(map[string]struct{}, len(q.Choices))
	answerFound := false
	for _, c := range q.Choices {
		if _, dup := seen[c]; dup {
			return NewInvalidInputError("question choices must be distinct")
		}
		seen[c] = struct{}{}
		if c == q.CorrectAnswer {
			answerFound = true
		}
	}
	if !answerFound {
		return NewInvalidInputError("correct answer must be one of the choices")
	}
	return nil
}

// Quiz is one ephemeral themed chamber: produced by the generator, consumed
// once by the evaluator.
type Quiz struct {
	ID         string     `json:"id"`
	Room       string     `json:"room"`
	Intro      string     `json:"intro"`
	Theme      string     `json:"theme"`
	Difficulty Difficulty `json:"difficulty"`
	Tone       string     `json:"tone"`
	Questions  []Question `json:"questions"`
}

// Validate checks the quiz-level invariants, including every question's.
func (z *Quiz) Validate() error {
	if len(z.Questions) != QuestionsPerQuiz {
		return NewInvariantViolationError("quiz must contain exactly 5 questions")
	}
	for i := range z.Questions {
		if err := z.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
