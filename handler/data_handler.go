package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tieubaoca/rag-chat-be/service"
	"github.com/tieubaoca/rag-chat-be/types"
)

type DataHandler struct {
	documentService *service.DocumentService
}

func NewDataHandler(documentService *service.DocumentService) *DataHandler {
	return &DataHandler{
		documentService: documentService,
	}
}

func (h *DataHandler) HandleAddData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req types.AddDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		response := h.documentService.AddData(r.Context(), req.Text, req.Metadata)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func (h *DataHandler) HandleAddSampleData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		response := h.documentService.AddSampleData(r.Context())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
