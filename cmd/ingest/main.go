package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jvaldes/textprep/internal/config"
	"github.com/jvaldes/textprep/internal/db"
	"github.com/jvaldes/textprep/internal/embeddings"
	"github.com/jvaldes/textprep/internal/logging"
	"github.com/jvaldes/textprep/internal/pipeline"
	"github.com/jvaldes/textprep/internal/splitter"
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest extracted documents into the vector store",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseLogger := logging.New(logging.ForLevel(config.LogLevel()))

		manifest, err := pipeline.LoadManifest(config.ManifestPath())
		if err != nil {
			return err
		}

		database, err := db.NewDatabase(db.Config{DSN: config.PostgresURL(), Debug: config.DBDebug()})
		if err != nil {
			return err
		}
		defer database.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() { <-sigs; cancel() }()

		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}

		embedClient, err := embeddings.NewClient(config.OllamaURL(), config.EmbeddingModel(), config.EmbedTimeout(), baseLogger)
		if err != nil {
			return err
		}

		ing := pipeline.Ingester{
			Store:  db.NewChunkRepository(database),
			Client: embedClient,
			Base: splitter.Config{
				ChunkSize: config.ChunkSize(),
				Overlap:   config.ChunkOverlap(),
				Logger:    baseLogger.Logr(),
			},
			MaxFiles:  config.MaxIngestFiles(),
			MaxChunks: config.MaxIngestChunks(),
			ModelName: config.EmbeddingModel(),
			Log:       baseLogger.WithName("ingest"),
		}
		return ing.Run(ctx, manifest)
	},
}

func main() {
	rootCmd.PersistentFlags().String("manifest-path", "", "sources manifest path")
	rootCmd.PersistentFlags().String("postgres-url", "", "Postgres connection URL")
	rootCmd.PersistentFlags().String("ollama-url", "", "Ollama base URL")
	rootCmd.PersistentFlags().Int("chunk-size", 0, "maximum chunk length in characters")
	rootCmd.PersistentFlags().Int("chunk-overlap", 0, "characters repeated between adjacent chunks")
	_ = viper.BindPFlag(config.KeyManifestPath, rootCmd.PersistentFlags().Lookup("manifest-path"))
	_ = viper.BindPFlag(config.KeyPostgresURL, rootCmd.PersistentFlags().Lookup("postgres-url"))
	_ = viper.BindPFlag(config.KeyOllamaURL, rootCmd.PersistentFlags().Lookup("ollama-url"))
	_ = viper.BindPFlag(config.KeyChunkSize, rootCmd.PersistentFlags().Lookup("chunk-size"))
	_ = viper.BindPFlag(config.KeyChunkOverlap, rootCmd.PersistentFlags().Lookup("chunk-overlap"))

	config.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("ingest: %v", err)
	}
}
