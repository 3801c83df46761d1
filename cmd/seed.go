/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/rag-chat-be/config"
	"github.com/tieubaoca/rag-chat-be/database"
	"github.com/tieubaoca/rag-chat-be/dataset"
	"github.com/tieubaoca/rag-chat-be/service"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the vector store with the bundled document set",
	Long: `Embeds and inserts the bundled documentation dataset into the
vector database. Requires a reachable vector store and a valid
embedding API key.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		reinit, _ := cmd.Flags().GetBool("reinit")

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		store, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig, cfg.RequestTimeout)
		if err != nil {
			log.Fatalf("Failed to connect to vector store: %v", err)
		}
		if reinit {
			if err := store.ReInit(); err != nil {
				log.Fatalf("Failed to reinitialize vector store: %v", err)
			}
			log.Println("Recreated knowledge collection")
		}

		embedder := buildEmbedder(cfg)
		if embedder == nil {
			log.Fatal("An embedding API key is required to seed the vector store")
		}
		retriever := service.NewVectorRetriever(store, embedder)

		seeds := dataset.Load()
		inserted := 0
		for _, seed := range seeds {
			if !retriever.AddDocument(context.Background(), seed.Text, seed.Metadata) {
				log.Printf("Failed to insert document %q", seed.Metadata)
				continue
			}
			inserted++
			log.Printf("Inserted document %q", seed.Metadata)
		}
		log.Printf("Seeded %d of %d documents", inserted, len(seeds))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	seedCmd.Flags().BoolP("reinit", "r", false, "Drop and recreate the collection before seeding")
}
