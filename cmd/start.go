/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/rag-chat-be/config"
	"github.com/tieubaoca/rag-chat-be/handler"
	"github.com/tieubaoca/rag-chat-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chat server",
	Long:  `Starts the HTTP server that handles chat and document requests`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		embedder := buildEmbedder(cfg)
		aiService := buildAIService(cfg)

		// The retrieval mode is decided here, once, for the process
		// lifetime.
		retriever := service.NewRetriever(cfg.WeaviateStoreConfig, cfg.RequestTimeout, embedder)

		chatService := service.NewChatService(retriever, aiService)
		documentService := service.NewDocumentService(retriever)
		wsService := service.NewWebSocketService(chatService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		chatHandler := handler.NewChatHandler(chatService)
		dataHandler := handler.NewDataHandler(documentService)
		healthHandler := handler.NewHealthHandler(retriever, aiService)

		// Setup routes
		mux := http.NewServeMux()
		mux.Handle("/chat", chatHandler.HandleChat())
		mux.Handle("/add-data", dataHandler.HandleAddData())
		mux.Handle("/add-sample-data", dataHandler.HandleAddSampleData())
		mux.Handle("/store-info", healthHandler.HandleStoreInfo())
		mux.Handle("/test-ai", healthHandler.HandleTestAI())
		mux.HandleFunc("/ws/chat", wsService.HandleChat)
		mux.Handle("/{$}", healthHandler.HandleHealth())

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, corsHandler.Wrap(mux)); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func buildEmbedder(cfg *config.Config) service.Embedder {
	if cfg.OpenAIAPIKey == "" || cfg.OpenAIAPIKey == "your_openai_api_key_here" {
		log.Println("No valid OpenAI API key found, embeddings disabled")
		return nil
	}
	return service.NewOpenAIEmbedder(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.RequestTimeout)
}

func buildAIService(cfg *config.Config) service.AIService {
	switch cfg.AIProvider {
	case "gemini":
		if len(cfg.GeminiAPIKeys) == 0 {
			log.Println("No Gemini API keys configured. Using demo responses.")
			return nil
		}
		gemini, err := service.NewGeminiService(cfg.GeminiAPIKeys, cfg.Model, cfg.RequestTimeout)
		if err != nil {
			log.Println("Failed to initialize Gemini client:", err)
			return nil
		}
		log.Println("Gemini client initialized successfully")
		return gemini
	default:
		if cfg.OpenAIAPIKey == "" || cfg.OpenAIAPIKey == "your_openai_api_key_here" {
			log.Println("No valid OpenAI API key found. Using demo responses.")
			return nil
		}
		log.Println("OpenAI client initialized successfully")
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model, cfg.RequestTimeout)
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
