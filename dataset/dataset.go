// Package dataset bundles the static document set used to seed the
// in-memory knowledge base when the vector store is unreachable.
package dataset

import (
	"embed"
	"encoding/json"
	"log"

	"github.com/tieubaoca/rag-chat-be/types"
)

//go:embed docs.json
var docsFS embed.FS

// minimalDocs is the last-resort seed when the bundled dataset cannot
// be decoded.
var minimalDocs = []types.DocumentSeed{
	{
		Text:     "Milvus is an open-source vector database designed for AI applications. It provides high-performance similarity search and supports various vector operations. Milvus is built for scalability and can handle billions of vectors with sub-second search latency.",
		Metadata: "milvus_overview",
	},
	{
		Text:     "Vector databases like Milvus store data as high-dimensional vectors and enable fast similarity search using algorithms like cosine similarity, Euclidean distance, and dot product. This makes them perfect for AI applications that need to find similar content based on meaning rather than exact matches.",
		Metadata: "vector_database_concept",
	},
}

// Load returns the bundled document seeds, falling back to the minimal
// two-entry set if the embedded dataset is unreadable.
func Load() []types.DocumentSeed {
	data, err := docsFS.ReadFile("docs.json")
	if err != nil {
		log.Println("Bundled dataset unavailable, using minimal fallback:", err)
		return minimalDocs
	}
	var seeds []types.DocumentSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Println("Failed to decode bundled dataset, using minimal fallback:", err)
		return minimalDocs
	}
	if len(seeds) == 0 {
		return minimalDocs
	}
	return seeds
}

// SampleDocs is the small demo set exposed through the add-sample-data
// endpoint.
var SampleDocs = []types.DocumentSeed{
	{
		Text:     "Milvus is an open-source vector database designed for AI applications. It provides high-performance similarity search and supports various vector operations.",
		Metadata: "milvus_intro",
	},
	{
		Text:     "Vector databases store data as high-dimensional vectors and enable fast similarity search using algorithms like cosine similarity, Euclidean distance, and dot product.",
		Metadata: "vector_db_concept",
	},
	{
		Text:     "OpenAI provides embedding models like text-embedding-3-small that convert text into 1536-dimensional vectors for semantic search applications.",
		Metadata: "openai_embeddings",
	},
	{
		Text:     "FastAPI is a modern Python web framework for building APIs with automatic documentation, type hints, and high performance.",
		Metadata: "fastapi_info",
	},
	{
		Text:     "React is a JavaScript library for building user interfaces, particularly for single-page applications with component-based architecture.",
		Metadata: "react_info",
	},
}
