package db

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/uptrace/bun"
)

// ChunkEmbedding is one embedded chunk of an ingested document.
type ChunkEmbedding struct {
	bun.BaseModel `bun:"table:chunks"`

	ID             string          `bun:"id,pk"` // sha256(source|index|text)
	Source         string          `bun:"source"`
	SplitterKind   string          `bun:"splitter_kind"`
	ChunkIndex     int             `bun:"chunk_index"`
	StartOffset    int             `bun:"start_offset"`
	EndOffset      int             `bun:"end_offset"`
	Content        string          `bun:"content"`
	TokenCount     int             `bun:"token_count"`
	Embedding      pgvector.Vector `bun:"embedding,type:vector(768)"`
	EmbeddingModel string          `bun:"embedding_model"`
	CreatedAt      time.Time       `bun:"created_at,nullzero,default:now()"`
}
