package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/rag-chat-be/service"
	"github.com/tieubaoca/rag-chat-be/types"
)

func postAddData(t *testing.T, h *DataHandler, body string) types.AddDataResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/add-data", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleAddData().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.AddDataResponse
	require.NoError(t, decodeJSON(rec, &res))
	return res
}

func TestHandleAddDataRejectsEmptyText(t *testing.T) {
	retriever := &stubRetriever{mode: service.ModeVector, addOK: true}
	h := NewDataHandler(service.NewDocumentService(retriever))

	for _, body := range []string{
		`{"text":"","metadata":"meta"}`,
		`{"text":"   ","metadata":"meta"}`,
	} {
		res := postAddData(t, h, body)
		assert.False(t, res.Success)
		assert.Empty(t, res.Storage)
	}
	// Rejection happens before any backend call.
	assert.Zero(t, retriever.added)
}

func TestHandleAddDataVectorMode(t *testing.T) {
	retriever := &stubRetriever{mode: service.ModeVector, addOK: true}
	h := NewDataHandler(service.NewDocumentService(retriever))

	res := postAddData(t, h, `{"text":"new knowledge","metadata":"note"}`)
	assert.True(t, res.Success)
	assert.Equal(t, types.StorageVector, res.Storage)
	assert.Equal(t, 1, retriever.added)
}

func TestHandleAddDataVectorModeFailure(t *testing.T) {
	retriever := &stubRetriever{mode: service.ModeVector, addOK: false}
	h := NewDataHandler(service.NewDocumentService(retriever))

	res := postAddData(t, h, `{"text":"new knowledge","metadata":"note"}`)
	assert.False(t, res.Success)
	assert.Empty(t, res.Storage)
}

func TestHandleAddDataMemoryMode(t *testing.T) {
	retriever := &stubRetriever{mode: service.ModeKeyword, addOK: true}
	h := NewDataHandler(service.NewDocumentService(retriever))

	res := postAddData(t, h, `{"text":"new knowledge","metadata":"note"}`)
	assert.True(t, res.Success)
	assert.Equal(t, types.StorageMemory, res.Storage)
}

func TestHandleAddSampleData(t *testing.T) {
	retriever := &stubRetriever{mode: service.ModeKeyword, addOK: true}
	h := NewDataHandler(service.NewDocumentService(retriever))

	req := httptest.NewRequest(http.MethodPost, "/add-sample-data", nil)
	rec := httptest.NewRecorder()
	h.HandleAddSampleData().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.AddSampleDataResponse
	require.NoError(t, decodeJSON(rec, &res))
	assert.Equal(t, "Added 5 sample documents", res.Message)
	assert.Equal(t, types.StorageMemory, res.Storage)
	assert.Len(t, res.Results, 5)
	for _, result := range res.Results {
		assert.True(t, result.Success)
	}
}

func TestHandleAddDataMethodNotAllowed(t *testing.T) {
	h := NewDataHandler(service.NewDocumentService(&stubRetriever{mode: service.ModeKeyword}))

	req := httptest.NewRequest(http.MethodGet, "/add-data", nil)
	rec := httptest.NewRecorder()
	h.HandleAddData().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
