package types

type AddDataResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Storage string `json:"storage,omitempty"`
}

type ChatResponse struct {
	Reply        string `json:"reply"`
	SearchMethod string `json:"search_method"`
	ContextFound bool   `json:"context_found"`
}

type HealthResponse struct {
	Message         string `json:"message"`
	AIClient        string `json:"ai_client"`
	Mode            string `json:"mode"`
	Storage         string `json:"storage"`
	Collection      string `json:"collection,omitempty"`
	TotalVectors    int64  `json:"total_vectors,omitempty"`
	InMemoryEntries int    `json:"in_memory_entries,omitempty"`
}

type StoreInfoResponse struct {
	CollectionName string   `json:"collection_name"`
	TotalEntities  int64    `json:"total_entities"`
	Fields         []string `json:"fields"`
}

type SampleInsertResult struct {
	Text    string `json:"text"`
	Success bool   `json:"success"`
	Storage string `json:"storage"`
}

type AddSampleDataResponse struct {
	Message string               `json:"message"`
	Results []SampleInsertResult `json:"results"`
	Storage string               `json:"storage"`
}

type TestAIResponse struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
