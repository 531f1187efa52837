package retriever

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"

	"github.com/philippgille/chromem-go"
	"go.uber.org/zap"
)

const collectionName = "horror-facts"

// Retriever implements domain.KnowledgeRetriever. It always carries the
// static corpus; the vector collection is optional and only improves
// relevance ordering. A failing vector query degrades to the keyword path,
// never to an error.
type Retriever struct {
	corpus     []domain.FactRecord
	collection *chromem.Collection
}

// NewStaticRetriever returns a retriever backed solely by the built-in
// corpus. Retrieval order is deterministic for a given query.
func NewStaticRetriever() *Retriever {
	return &Retriever{corpus: staticCorpus}
}

// NewVectorRetriever builds an in-memory vector index over the corpus using
// embeddings from the primary LLM server. The index is ephemeral; it is
// rebuilt on every process start.
func NewVectorRetriever(ctx context.Context, embeddingModel, llmServerURL string) (*Retriever, error) {
	if llmServerURL == "" {
		return nil, fmt.Errorf("vector index requires an LLM server URL")
	}

	db := chromem.NewDB()
	embed := chromem.NewEmbeddingFuncOllama(embeddingModel, strings.TrimSuffix(llmServerURL, "/")+"/api")

	collection, err := db.GetOrCreateCollection(collectionName, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("failed to create vector collection: %w", err)
	}

	docs := make([]chromem.Document, 0, len(staticCorpus))
	for i, fact := range staticCorpus {
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("fact-%d", i),
			Content:  fact.Title + " (" + fact.Year + ", " + fact.Director + "): " + fact.Plot + " " + fact.Trivia,
			Metadata: map[string]string{"index": fmt.Sprintf("%d", i)},
		})
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("failed to index corpus: %w", err)
	}

	return &Retriever{corpus: staticCorpus, collection: collection}, nil
}

// Retrieve returns up to k facts relevant to the query. With a vector
// collection it ranks by embedding similarity; otherwise it scores keyword
// overlap against the corpus, ties broken by corpus order.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]domain.FactRecord, error) {
	if k <= 0 {
		k = 3
	}
	if k > len(r.corpus) {
		k = len(r.corpus)
	}

	if r.collection != nil {
		facts, err := r.retrieveVector(ctx, query, k)
		if err == nil {
			return facts, nil
		}
		logger.Get().Warn("Vector retrieval failed, using keyword fallback",
			zap.String("query", query),
			zap.Error(err))
	}

	return r.retrieveKeyword(query, k), nil
}

func (r *Retriever) retrieveVector(ctx context.Context, query string, k int) ([]domain.FactRecord, error) {
	results, err := r.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, err
	}

	facts := make([]domain.FactRecord, 0, len(results))
	for _, res := range results {
		var idx int
		if _, err := fmt.Sscanf(res.Metadata["index"], "%d", &idx); err != nil {
			continue
		}
		if idx < 0 || idx >= len(r.corpus) {
			continue
		}
		facts = append(facts, r.corpus[idx])
	}
	if len(facts) == 0 {
		return nil, fmt.Errorf("vector query returned no usable results")
	}
	return facts, nil
}

func (r *Retriever) retrieveKeyword(query string, k int) []domain.FactRecord {
	terms := tokenize(query)

	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, 0, len(r.corpus))
	for i, fact := range r.corpus {
		haystack := strings.ToLower(fact.Title + " " + fact.Director + " " + fact.Plot + " " + fact.Trivia)
		score := 0
		for _, term := range terms {
			score += strings.Count(haystack, term)
		}
		ranked = append(ranked, scored{index: i, score: score})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	facts := make([]domain.FactRecord, 0, k)
	for _, s := range ranked[:k] {
		facts = append(facts, r.corpus[s.index])
	}
	return facts
}

// tokenize lowercases the query and drops terms too short to carry signal.
func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 3 {
			terms = append(terms, f)
		}
	}
	return terms
}
