package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"

	"github.com/tieubaoca/rag-chat-be/database"
	"github.com/tieubaoca/rag-chat-be/service"
)

func decodeJSON(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

// stubRetriever lets handler tests drive both modes without a vector
// store or embedding provider.
type stubRetriever struct {
	mode     service.RetrievalMode
	passages []string
	stats    database.CollectionStats
	statsErr error
	added    int
	addOK    bool
}

func (s *stubRetriever) Mode() service.RetrievalMode {
	return s.mode
}

func (s *stubRetriever) Search(ctx context.Context, query string) []string {
	return s.passages
}

func (s *stubRetriever) AddDocument(ctx context.Context, text, metadata string) bool {
	s.added++
	return s.addOK
}

func (s *stubRetriever) Stats(ctx context.Context) (database.CollectionStats, error) {
	return s.stats, s.statsErr
}

type stubAI struct {
	reply string
	err   error
}

func (s *stubAI) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}
