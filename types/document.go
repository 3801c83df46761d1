package types

// Document is a unit of retrievable knowledge. Documents are immutable
// after creation; there is no update or delete in this backend.
type Document struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Metadata string `json:"metadata"`
}

// DocumentSeed is a (text, metadata) pair from the bundled dataset.
type DocumentSeed struct {
	Text     string `json:"text"`
	Metadata string `json:"metadata"`
}
