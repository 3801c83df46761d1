package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tieubaoca/rag-chat-be/service"
	"github.com/tieubaoca/rag-chat-be/types"
)

type HealthHandler struct {
	retriever service.Retriever
	aiService service.AIService
}

func NewHealthHandler(retriever service.Retriever, aiService service.AIService) *HealthHandler {
	return &HealthHandler{
		retriever: retriever,
		aiService: aiService,
	}
}

func (h *HealthHandler) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := types.HealthResponse{
			Message:  "RAG chat backend is running!",
			AIClient: "not available",
			Mode:     string(h.retriever.Mode()),
		}
		if h.aiService != nil {
			status.AIClient = "available"
		}

		switch h.retriever.Mode() {
		case service.ModeVector:
			status.Storage = "vector database"
			stats, err := h.retriever.Stats(r.Context())
			if err != nil {
				log.Println("Error getting collection stats:", err)
			} else {
				status.Collection = stats.Name
				status.TotalVectors = stats.Count
			}
		case service.ModeKeyword:
			status.Storage = "in-memory fallback"
			stats, err := h.retriever.Stats(r.Context())
			if err == nil {
				status.InMemoryEntries = int(stats.Count)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func (h *HealthHandler) HandleStoreInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if h.retriever.Mode() != service.ModeVector {
			json.NewEncoder(w).Encode(types.ErrorResponse{
				Status: "error",
				Error:  "vector store is not available",
			})
			return
		}

		stats, err := h.retriever.Stats(r.Context())
		if err != nil {
			json.NewEncoder(w).Encode(types.ErrorResponse{
				Status: "error",
				Error:  "failed to get store info: " + err.Error(),
			})
			return
		}

		json.NewEncoder(w).Encode(types.StoreInfoResponse{
			CollectionName: stats.Name,
			TotalEntities:  stats.Count,
			Fields:         []string{"id", "vector", "text", "metadata"},
		})
	}
}

func (h *HealthHandler) HandleTestAI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if h.aiService == nil {
			json.NewEncoder(w).Encode(types.TestAIResponse{
				Status: "error",
				Error:  "AI client not initialized",
			})
			return
		}

		response, err := h.aiService.Complete(r.Context(), "Say hello")
		if err != nil {
			json.NewEncoder(w).Encode(types.TestAIResponse{
				Status: "error",
				Error:  err.Error(),
			})
			return
		}
		json.NewEncoder(w).Encode(types.TestAIResponse{
			Status:   "success",
			Response: response,
		})
	}
}
