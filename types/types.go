package types

// Storage labels reported by the add-data endpoint.
const (
	StorageVector = "vector"
	StorageMemory = "memory"
)

// Search method labels reported by the chat endpoint. Empty means no
// context was found on either path.
const (
	SearchMethodVector  = "vector"
	SearchMethodKeyword = "keyword"
)

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketChat  = "chat"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebsocketChatPayload struct {
	Message string `json:"message"`
}

type WebsocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
