package domain

import "context"

// GenerationBackend is the single message-style contract every generation
// concern (questions, feedback, rewards, recommendations) speaks. The
// backend receives a system instruction plus a user payload and returns raw
// text expected to contain JSON matching the stage's schema. Validation
// happens once at the stage boundary; any violation is treated identically
// to a transport failure.
type GenerationBackend interface {
	// Name identifies the backend tier in logs.
	Name() string

	// Complete performs one call. Implementations must honor ctx deadlines
	// and return a BACKEND_UNAVAILABLE domain error on transport failure.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// FactRecord is one reference fact the retriever grounds questions in.
type FactRecord struct {
	Title    string `json:"title"`
	Year     string `json:"year"`
	Director string `json:"director"`
	Plot     string `json:"plot"`
	Trivia   string `json:"trivia"`
}

// KnowledgeRetriever supplies thematically relevant reference facts. With
// no vector index configured it returns a deterministic static corpus
// subset; callers must not assume live-data freshness.
type KnowledgeRetriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]FactRecord, error)
}
