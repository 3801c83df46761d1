package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/tieubaoca/rag-chat-be/config"
	"github.com/tieubaoca/rag-chat-be/database"
	"github.com/tieubaoca/rag-chat-be/dataset"
)

// RetrievalMode is decided once at startup and never re-evaluated. A
// vector store outage at startup downgrades the process to keyword mode
// for its whole lifetime.
type RetrievalMode string

const (
	ModeVector  RetrievalMode = "vector"
	ModeKeyword RetrievalMode = "keyword"
)

// DefaultSearchLimit bounds the number of passages forwarded as context.
const DefaultSearchLimit = 3

// minKeywordLength is the stop-word heuristic: tokens of 3 characters
// or fewer carry little discriminative signal and are dropped.
const minKeywordLength = 4

// Retriever is the retrieval half of the chat pipeline. Search and
// AddDocument absorb provider and store failures: a failed search means
// "no context found", never an error surfaced to the caller.
type Retriever interface {
	Mode() RetrievalMode
	Search(ctx context.Context, query string) []string
	AddDocument(ctx context.Context, text, metadata string) bool
	Stats(ctx context.Context) (database.CollectionStats, error)
}

// NewRetriever probes the vector store once and selects the retrieval
// mode for the process lifetime. This is the only place the mode is
// decided.
func NewRetriever(cfg config.WeaviateStoreConfig, timeout time.Duration, embedder Embedder) Retriever {
	store, err := database.NewWeaviateStore(cfg, timeout)
	if err != nil {
		log.Println("Vector store unavailable:", err)
		log.Println("Using in-memory keyword search as fallback")
		seeds := dataset.Load()
		log.Printf("Seeded in-memory knowledge base with %d documents", len(seeds))
		return NewKeywordRetriever(database.NewMemoryStore(seeds))
	}
	log.Println("Connected to vector store, using vector similarity search")
	return NewVectorRetriever(store, embedder)
}

// VectorRetriever embeds queries and searches the external vector store.
type VectorRetriever struct {
	db       database.VectorDatabase
	embedder Embedder
}

func NewVectorRetriever(db database.VectorDatabase, embedder Embedder) *VectorRetriever {
	return &VectorRetriever{
		db:       db,
		embedder: embedder,
	}
}

func (r *VectorRetriever) Mode() RetrievalMode {
	return ModeVector
}

func (r *VectorRetriever) Search(ctx context.Context, query string) []string {
	embedding := r.embed(ctx, query)
	if embedding == nil {
		return nil
	}

	hits, err := r.db.Search(ctx, embedding, DefaultSearchLimit)
	if err != nil {
		log.Println("Error searching vector store:", err)
		return nil
	}

	var passages []string
	for _, hit := range hits {
		if hit.Text != "" {
			passages = append(passages, hit.Text)
		}
	}
	return passages
}

// AddDocument embeds first and never writes without an embedding, so a
// failed embedding leaves the store untouched.
func (r *VectorRetriever) AddDocument(ctx context.Context, text, metadata string) bool {
	embedding := r.embed(ctx, text)
	if embedding == nil {
		return false
	}
	if err := r.db.Insert(ctx, embedding, text, metadata); err != nil {
		log.Println("Error inserting into vector store:", err)
		return false
	}
	return true
}

func (r *VectorRetriever) Stats(ctx context.Context) (database.CollectionStats, error) {
	return r.db.Stats(ctx)
}

func (r *VectorRetriever) embed(ctx context.Context, text string) []float32 {
	if r.embedder == nil {
		return nil
	}
	embedding, err := r.embedder.Embed(ctx, text)
	if err != nil {
		log.Println("Error getting embedding:", err)
		return nil
	}
	return embedding
}

// KeywordRetriever scans the in-memory collection for query tokens.
type KeywordRetriever struct {
	store *database.MemoryStore
}

func NewKeywordRetriever(store *database.MemoryStore) *KeywordRetriever {
	return &KeywordRetriever{
		store: store,
	}
}

func (r *KeywordRetriever) Mode() RetrievalMode {
	return ModeKeyword
}

// Search returns documents containing any significant query token, in
// insertion order, truncated to DefaultSearchLimit. There is no
// relevance ranking. A query with no token longer than 3 characters
// matches nothing.
func (r *KeywordRetriever) Search(ctx context.Context, query string) []string {
	tokens := keywordTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	var matches []string
	for _, doc := range r.store.All() {
		text := strings.ToLower(doc.Text)
		for _, token := range tokens {
			if strings.Contains(text, token) {
				matches = append(matches, doc.Text)
				break
			}
		}
	}
	if len(matches) > DefaultSearchLimit {
		matches = matches[:DefaultSearchLimit]
	}
	return matches
}

func (r *KeywordRetriever) AddDocument(ctx context.Context, text, metadata string) bool {
	r.store.Insert(text, metadata)
	return true
}

func (r *KeywordRetriever) Stats(ctx context.Context) (database.CollectionStats, error) {
	return database.CollectionStats{
		Name:  "in-memory",
		Count: int64(r.store.Count()),
	}, nil
}

func keywordTokens(query string) []string {
	var tokens []string
	for _, token := range strings.Fields(strings.ToLower(query)) {
		token = strings.Trim(token, `.,!?;:"'`)
		if len(token) >= minKeywordLength {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
