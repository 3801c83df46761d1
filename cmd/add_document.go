/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/rag-chat-be/config"
	"github.com/tieubaoca/rag-chat-be/service"
)

// addDocumentCmd represents the addDocument command
var addDocumentCmd = &cobra.Command{
	Use:   "add-document",
	Short: "Add a single document to the knowledge base",
	Long: `Adds one document through the active retrieval backend. In vector
mode the text is embedded and stored in the vector database; in keyword
fallback mode it is appended to the in-memory collection (which only
lives for the duration of this command, so this is mostly useful with a
reachable vector store).`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		text, _ := cmd.Flags().GetString("text")
		metadata, _ := cmd.Flags().GetString("metadata")

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		embedder := buildEmbedder(cfg)
		retriever := service.NewRetriever(cfg.WeaviateStoreConfig, cfg.RequestTimeout, embedder)
		documentService := service.NewDocumentService(retriever)

		res := documentService.AddData(context.Background(), text, metadata)
		fmt.Println(res.Message)
		if !res.Success {
			log.Fatal("Failed to add document")
		}
	},
}

func init() {
	rootCmd.AddCommand(addDocumentCmd)

	addDocumentCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	addDocumentCmd.Flags().StringP("text", "t", "", "Document text to store")
	addDocumentCmd.Flags().StringP("metadata", "m", "", "Free-form metadata label")
}
