package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tieubaoca/rag-chat-be/dataset"
	"github.com/tieubaoca/rag-chat-be/types"
)

// DocumentService validates and routes document inserts through the
// active retrieval backend.
type DocumentService struct {
	retriever Retriever
}

func NewDocumentService(retriever Retriever) *DocumentService {
	return &DocumentService{
		retriever: retriever,
	}
}

// AddData inserts one document. Empty or whitespace-only text is
// rejected before any external call is made.
func (s *DocumentService) AddData(ctx context.Context, text, metadata string) types.AddDataResponse {
	if strings.TrimSpace(text) == "" {
		return types.AddDataResponse{
			Message: "Error: No text provided",
			Success: false,
		}
	}

	if s.retriever.Mode() == ModeVector {
		if !s.retriever.AddDocument(ctx, text, metadata) {
			return types.AddDataResponse{
				Message: "Failed to add data to vector database",
				Success: false,
			}
		}
		return types.AddDataResponse{
			Message: "Data added successfully to vector database",
			Success: true,
			Storage: types.StorageVector,
		}
	}

	s.retriever.AddDocument(ctx, text, metadata)
	return types.AddDataResponse{
		Message: "Data added to in-memory storage (vector store not available)",
		Success: true,
		Storage: types.StorageMemory,
	}
}

// AddSampleData inserts the bundled demo documents through whichever
// path is active and reports per-item outcomes.
func (s *DocumentService) AddSampleData(ctx context.Context) types.AddSampleDataResponse {
	storage := types.StorageMemory
	if s.retriever.Mode() == ModeVector {
		storage = types.StorageVector
	}

	results := make([]types.SampleInsertResult, 0, len(dataset.SampleDocs))
	for _, doc := range dataset.SampleDocs {
		ok := s.retriever.AddDocument(ctx, doc.Text, doc.Metadata)
		itemStorage := storage
		if !ok {
			itemStorage = "failed"
		}
		results = append(results, types.SampleInsertResult{
			Text:    truncateString(doc.Text, 50) + "...",
			Success: ok,
			Storage: itemStorage,
		})
	}

	return types.AddSampleDataResponse{
		Message: fmt.Sprintf("Added %d sample documents", len(results)),
		Results: results,
		Storage: storage,
	}
}
