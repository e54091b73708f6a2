package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jvaldes/textprep/internal/config"
	"github.com/jvaldes/textprep/internal/db"
	"github.com/jvaldes/textprep/internal/embeddings"
	"github.com/jvaldes/textprep/internal/logging"
	"github.com/jvaldes/textprep/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Database     *db.Database
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.ForLevel(config.LogLevel()))

	database, err := db.NewDatabase(db.Config{DSN: config.PostgresURL(), Debug: config.DBDebug()})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	repo := db.NewChunkRepository(database)
	embedClient, err := embeddings.NewClient(config.OllamaURL(), config.EmbeddingModel(), config.EmbedTimeout(), baseLogger)
	if err != nil {
		log.Fatalf("failed to create embedding client: %v", err)
	}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"split_text":    &tools.SplitTextHandler{Logger: baseLogger.Logr()},
			"search_chunks": &tools.SearchChunksHandler{Repo: repo, Client: embedClient},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Database: database,
	}
}
