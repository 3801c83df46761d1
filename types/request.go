package types

type AddDataRequest struct {
	Text     string `json:"text"`
	Metadata string `json:"metadata"`
}

type ChatRequest struct {
	Message string `json:"message"`
}
