package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tieubaoca/rag-chat-be/config"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

// Field limits mirror the collection schema: text is capped at 2000
// characters and metadata at 1000.
const (
	MaxTextLength     = 2000
	MaxMetadataLength = 1000
)

// defaultTimeout bounds store calls when no request timeout is
// configured. An unreachable store must fail, never hang.
const defaultTimeout = 30 * time.Second

var (
	KNOWLEDGE_CLASS        = "KnowledgeDocument"
	KNOWLEDGE_CLASS_OBJECT = &models.Class{
		Class:       KNOWLEDGE_CLASS,
		Description: "Vector storage for the RAG chat backend",
		Properties: []*models.Property{
			{Name: "text", DataType: []string{"text"}},
			{Name: "metadata", DataType: []string{"text"}},
		},
		// Embeddings are computed client-side and pushed with each insert.
		Vectorizer:      "none",
		VectorIndexType: "hnsw",
		VectorIndexConfig: map[string]interface{}{
			"distance": "cosine",
		},
	}
)

type WeaviateStore struct {
	client  *weaviate.Client
	timeout time.Duration
}

// NewWeaviateStore connects to the vector store and ensures the
// knowledge class exists. Any failure here means the store is not
// usable and the caller should fall back to in-memory keyword mode.
// The startup probe and every store call are bounded by timeout.
func NewWeaviateStore(config config.WeaviateStoreConfig, timeout time.Duration) (*WeaviateStore, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var scheme string
	if strings.Contains(config.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(config.Host, scheme+"://")
	cfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if config.APIKey != "" {
		cfg.AuthConfig = auth.ApiKey{
			Value: config.APIKey,
		}
		cfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     config.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	client, err := weaviate.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	schema, err := client.Schema().Getter().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get schema: %v", err)
	}

	hasKnowledgeClass := false
	for _, class := range schema.Classes {
		if class.Class == KNOWLEDGE_CLASS {
			hasKnowledgeClass = true
			break
		}
	}
	// Create the knowledge class if it doesn't exist
	if !hasKnowledgeClass {
		err = client.Schema().ClassCreator().WithClass(KNOWLEDGE_CLASS_OBJECT).Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s class: %v", KNOWLEDGE_CLASS, err)
		}
	}
	return &WeaviateStore{
		client:  client,
		timeout: timeout,
	}, nil
}

func (s *WeaviateStore) ReInit() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.client.Schema().ClassDeleter().WithClassName(KNOWLEDGE_CLASS).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s class: %v", KNOWLEDGE_CLASS, err)
	}

	err = s.client.Schema().ClassCreator().WithClass(KNOWLEDGE_CLASS_OBJECT).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create %s class: %v", KNOWLEDGE_CLASS, err)
	}
	return nil
}

func (s *WeaviateStore) Insert(ctx context.Context, embedding []float32, text, metadata string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	properties := map[string]interface{}{
		"text":     truncateString(text, MaxTextLength),
		"metadata": truncateString(metadata, MaxMetadataLength),
	}

	_, err := s.client.Data().Creator().
		WithClassName(KNOWLEDGE_CLASS).
		WithProperties(properties).
		WithVector(embedding).
		Do(ctx)
	return err
}

func (s *WeaviateStore) Search(ctx context.Context, embedding []float32, limit int) ([]SearchHit, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fields := []graphql.Field{
		{Name: "text"},
		{Name: "metadata"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}
	nearVector := s.client.GraphQL().NearVectorArgBuilder().
		WithVector(embedding)

	result, err := s.client.GraphQL().Get().
		WithClassName(KNOWLEDGE_CLASS).
		WithFields(fields...).
		WithNearVector(nearVector).
		WithLimit(limit).
		Do(ctx)

	if err != nil {
		return nil, err
	}
	if result.Errors != nil {
		return nil, fmt.Errorf("search failed: %v", result.Errors[0].Message)
	}

	var hits []SearchHit
	if data, ok := result.Data["Get"].(map[string]interface{})[KNOWLEDGE_CLASS].([]interface{}); ok {
		for _, item := range data {
			obj, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			hit := SearchHit{}
			if text, ok := obj["text"].(string); ok {
				hit.Text = text
			}
			if metadata, ok := obj["metadata"].(string); ok {
				hit.Metadata = metadata
			}
			if additional, ok := obj["_additional"].(map[string]interface{}); ok {
				if distance, ok := additional["distance"].(float64); ok {
					// Cosine distance in [0,2]; similarity-descending order
					// maps to 1-distance.
					hit.Score = float32(1 - distance)
				}
			}
			hits = append(hits, hit)
		}
	}

	return hits, nil
}

func (s *WeaviateStore) Stats(ctx context.Context) (CollectionStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.GraphQL().Aggregate().
		WithClassName(KNOWLEDGE_CLASS).
		WithFields(graphql.Field{Name: "meta", Fields: []graphql.Field{{Name: "count"}}}).
		Do(ctx)
	if err != nil {
		return CollectionStats{}, err
	}
	if result.Errors != nil {
		return CollectionStats{}, fmt.Errorf("aggregate failed: %v", result.Errors[0].Message)
	}

	stats := CollectionStats{Name: KNOWLEDGE_CLASS}
	if data, ok := result.Data["Aggregate"].(map[string]interface{})[KNOWLEDGE_CLASS].([]interface{}); ok && len(data) > 0 {
		if obj, ok := data[0].(map[string]interface{}); ok {
			if meta, ok := obj["meta"].(map[string]interface{}); ok {
				if count, ok := meta["count"].(float64); ok {
					stats.Count = int64(count)
				}
			}
		}
	}
	return stats, nil
}

// Helper function to truncate long strings before storage. Counts
// runes, not bytes, so multibyte text is never split mid-sequence.
func truncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}
