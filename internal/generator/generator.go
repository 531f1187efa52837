package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"
	"horror-oracle/internal/util"

	"go.uber.org/zap"
)

const retrievalDepth = 5

const systemPromptTemplate = `You are the Horror Oracle's Question Architect, an ancient entity that crafts trials of horror knowledge.

Craft exactly 5 multiple-choice horror trivia questions.
Theme: %s
Difficulty: %.1f (on a 0.1-1.0 scale)
Atmospheric tone: %s

Rules:
- Every question must be grounded in real horror cinema facts.
- Each question has exactly 4 distinct choices and exactly one correct answer.
- Phrase questions in the requested tone; wrap them in cinematic atmosphere.
- Match the requested difficulty: low values ask about iconic facts, high values about obscure production details.

Respond with ONLY a JSON array of 5 objects, no prose, using this schema:
[{"question": "...", "choices": ["...", "...", "...", "..."], "correct_answer": "...", "difficulty": %.1f}]`

// Generator produces themed quizzes. Backends are tried in order; the
// curated pool is the terminal tier and never fails.
type Generator struct {
	retriever domain.KnowledgeRetriever
	backends  []domain.GenerationBackend

	// newRand is swapped in tests for determinism. The default re-seeds from
	// the wall clock on every call so offline chambers still vary.
	newRand func() *rand.Rand
}

// New creates a generator over the given backend tiers. A nil retriever is
// allowed; generation then runs without fact grounding.
func New(retriever domain.KnowledgeRetriever, backends ...domain.GenerationBackend) *Generator {
	return &Generator{
		retriever: retriever,
		backends:  backends,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Generate builds a complete five-question quiz for the given theme,
// difficulty and tone. Backend failures degrade tier by tier down to the
// curated pool; the returned quiz always satisfies the structural
// invariants.
func (g *Generator) Generate(ctx context.Context, theme string, difficulty domain.Difficulty, tone string) (*domain.Quiz, error) {
	l := logger.Get()
	rng := g.newRand()

	questions := g.generateViaBackends(ctx, rng, theme, difficulty, tone)
	if questions == nil {
		l.Info("Using curated question pool",
			zap.String("theme", theme),
			zap.String("difficulty", string(difficulty)))
		questions = g.sampleFallback(rng, theme, tone)
	}

	quiz := &domain.Quiz{
		ID:         util.NewULID(),
		Room:       chamberName(rng, difficulty, theme, tone),
		Intro:      chamberIntro(theme, tone),
		Theme:      theme,
		Difficulty: difficulty,
		Tone:       tone,
		Questions:  questions,
	}
	if err := quiz.Validate(); err != nil {
		return nil, domain.NewGenerationUnavailableError(err)
	}
	return quiz, nil
}

func (g *Generator) generateViaBackends(ctx context.Context, rng *rand.Rand, theme string, difficulty domain.Difficulty, tone string) []domain.Question {
	if len(g.backends) == 0 {
		return nil
	}
	l := logger.Get()

	difficultyFloat := domain.DifficultyToFloat(difficulty)
	systemPrompt := fmt.Sprintf(systemPromptTemplate, theme, difficultyFloat, tone, difficultyFloat)
	userPrompt := g.buildUserPrompt(ctx, rng, theme)

	for _, backend := range g.backends {
		raw, err := backend.Complete(ctx, systemPrompt, userPrompt)
		if err != nil {
			l.Warn("Question generation tier failed",
				zap.String("backend", backend.Name()),
				zap.Error(err))
			continue
		}
		questions, err := parseQuestions(raw, theme, tone)
		if err != nil {
			l.Warn("Question generation tier returned invalid payload",
				zap.String("backend", backend.Name()),
				zap.Error(err))
			continue
		}
		l.Info("Questions generated",
			zap.String("backend", backend.Name()),
			zap.String("theme", theme))
		return questions
	}
	return nil
}

// buildUserPrompt assembles the fact context plus a uniqueness seed so
// repeated calls with identical parameters still produce fresh questions.
func (g *Generator) buildUserPrompt(ctx context.Context, rng *rand.Rand, theme string) string {
	var b strings.Builder

	if g.retriever != nil {
		facts, err := g.retriever.Retrieve(ctx, theme+" horror movies trivia facts", retrievalDepth)
		if err == nil && len(facts) > 0 {
			b.WriteString("HORROR MOVIE DATA FOR TRIVIA QUESTIONS:\n")
			for i, fact := range facts {
				fmt.Fprintf(&b, "\n%d. %s (%s) - Dir: %s\n   Plot: %s\n   Trivia: %s\n",
					i+1, fact.Title, fact.Year, fact.Director, fact.Plot, fact.Trivia)
			}
			b.WriteString("\nUse the above movies as source material for your trivia questions. Reference specific plot points, characters, directors, and facts.\n")
		}
	}

	fmt.Fprintf(&b, "\n[UNIQUENESS SEED: %d]\n", rng.Intn(999999)+1)
	b.WriteString("Generate 5 questions now. Respond with only the JSON array.")
	return b.String()
}

// parseQuestions decodes and validates a backend payload. Any deviation
// from the schema is a schema violation; the caller treats it like a
// transport failure and moves to the next tier.
func parseQuestions(raw, theme, tone string) ([]domain.Question, error) {
	var questions []domain.Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, domain.NewSchemaViolationError("backend payload is not a JSON question array", err)
	}
	if len(questions) != domain.QuestionsPerQuiz {
		return nil, domain.NewSchemaViolationError(
			fmt.Sprintf("expected %d questions, got %d", domain.QuestionsPerQuiz, len(questions)), nil)
	}
	for i := range questions {
		questions[i].Theme = theme
		questions[i].Tone = tone
		if err := questions[i].Validate(); err != nil {
			return nil, domain.NewSchemaViolationError(fmt.Sprintf("question %d invalid", i+1), err)
		}
	}
	return questions, nil
}

// sampleFallback draws five pool questions without replacement from a
// shuffled copy of the curated pool.
func (g *Generator) sampleFallback(rng *rand.Rand, theme, tone string) []domain.Question {
	indices := rng.Perm(len(fallbackPool))

	questions := make([]domain.Question, 0, domain.QuestionsPerQuiz)
	for _, idx := range indices[:domain.QuestionsPerQuiz] {
		pq := fallbackPool[idx]
		questions = append(questions, domain.Question{
			Text:          pq.Text,
			Choices:       pq.Choices,
			CorrectAnswer: pq.CorrectAnswer,
			Difficulty:    pq.Difficulty,
			Tone:          tone,
			Theme:         theme,
		})
	}
	return questions
}
