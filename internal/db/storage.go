package db

import (
	"context"

	pgvector "github.com/pgvector/pgvector-go"
	"github.com/uptrace/bun"
)

// ChunkRepository stores and searches embedded chunks.
type ChunkRepository struct {
	db *bun.DB
}

// ChunkSearchRow is a chunk with its cosine distance to the query vector.
type ChunkSearchRow struct {
	ChunkEmbedding `bun:",extend"`
	Distance       float64 `bun:"distance"`
}

func NewChunkRepository(database *Database) *ChunkRepository {
	return &ChunkRepository{db: database.Bun()}
}

// DeleteSource removes every chunk previously stored for a source, so a
// re-ingest replaces instead of accumulating.
func (r *ChunkRepository) DeleteSource(ctx context.Context, source string) error {
	_, err := r.db.NewDelete().
		Model((*ChunkEmbedding)(nil)).
		Where("source = ?", source).
		Exec(ctx)
	return err
}

// InsertBatch writes a batch of chunks in one statement, replacing rows with
// the same id.
func (r *ChunkRepository) InsertBatch(ctx context.Context, chunks []ChunkEmbedding) error {
	if len(chunks) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().
		Model(&chunks).
		On("CONFLICT (id) DO UPDATE").
		Set("content = EXCLUDED.content").
		Set("embedding = EXCLUDED.embedding").
		Set("embedding_model = EXCLUDED.embedding_model").
		Exec(ctx)
	return err
}

// SearchChunks returns the chunks nearest to embedding by cosine distance.
func (r *ChunkRepository) SearchChunks(ctx context.Context, embedding []float32, limit int) ([]ChunkSearchRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []ChunkSearchRow
	err := r.db.NewSelect().Model(&results).
		Column("id", "source", "splitter_kind", "chunk_index", "start_offset", "end_offset", "content", "token_count", "embedding_model").
		ColumnExpr("embedding <=> ? AS distance", pgvector.NewVector(embedding)).
		Where("embedding IS NOT NULL").
		OrderExpr("distance").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountSource reports how many chunks are stored for a source.
func (r *ChunkRepository) CountSource(ctx context.Context, source string) (int, error) {
	return r.db.NewSelect().
		Model((*ChunkEmbedding)(nil)).
		Where("source = ?", source).
		Count(ctx)
}
