package database

import (
	"context"
)

// SearchHit is a typed view of a single similarity-search result. The
// adapter populates it at the store boundary so the rest of the pipeline
// never touches the client library's response shapes.
type SearchHit struct {
	Text     string  `json:"text"`
	Metadata string  `json:"metadata"`
	Score    float32 `json:"score"`
}

// CollectionStats describes the vector collection for health reporting.
type CollectionStats struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// VectorDatabase defines the narrow interface the retrieval pipeline
// needs from an external vector store.
type VectorDatabase interface {
	// Insert writes a (embedding, text, metadata) triple. The write must
	// be visible to subsequent searches once Insert returns.
	Insert(ctx context.Context, embedding []float32, text, metadata string) error

	// Search returns up to limit nearest neighbours of the embedding,
	// ordered by descending cosine similarity.
	Search(ctx context.Context, embedding []float32, limit int) ([]SearchHit, error)

	// Stats returns the collection name and entity count.
	Stats(ctx context.Context) (CollectionStats, error)
}
