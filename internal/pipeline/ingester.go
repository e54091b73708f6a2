// Package pipeline wires the collaborators together: extracted documents are
// chunked, embedded and stored, one manifest source at a time.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/jvaldes/textprep/internal/db"
	"github.com/jvaldes/textprep/internal/extraction"
	"github.com/jvaldes/textprep/internal/logging"
	"github.com/jvaldes/textprep/internal/splitter"
)

type EmbeddingClient interface {
	EmbedTexts(ctx context.Context, inputs []string) ([][]float32, error)
}

type ChunkStore interface {
	DeleteSource(ctx context.Context, source string) error
	InsertBatch(ctx context.Context, chunks []db.ChunkEmbedding) error
}

type Ingester struct {
	Store     ChunkStore
	Client    EmbeddingClient
	Base      splitter.Config // per-source kind comes from the manifest
	MaxFiles  int
	MaxChunks int
	ModelName string
	Log       logging.Logger
}

// Run ingests every manifest source. A failing source aborts the run so
// partial ingests stay visible.
func (i *Ingester) Run(ctx context.Context, m Manifest) error {
	for _, src := range m.Sources {
		if err := i.ingestSource(ctx, src); err != nil {
			return fmt.Errorf("ingest %s: %w", src.Name, err)
		}
	}
	return nil
}

func (i *Ingester) ingestSource(ctx context.Context, src Source) error {
	split, err := splitter.New(splitter.Kind(src.Splitter), i.Base)
	if err != nil {
		return err
	}

	files, err := listFiles(src.Path)
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}
	selected := filterFiles(files, globsToRegexp(src.Include), globsToRegexp(src.Exclude), i.MaxFiles)

	if err := i.Store.DeleteSource(ctx, src.Name); err != nil {
		return fmt.Errorf("clear previous chunks: %w", err)
	}

	log := i.Log.WithValues("source", src.Name, "splitter", src.Splitter)
	total := 0
	for _, rel := range selected {
		if i.MaxChunks > 0 && total >= i.MaxChunks {
			log.Info("chunk limit reached, stopping source early", "limit", i.MaxChunks)
			break
		}
		doc, err := extraction.Load(filepath.Join(src.Path, rel))
		if err != nil {
			log.Error(err, "skipping unreadable file", "file", rel)
			continue
		}
		chunks, err := split.Split(doc.Text)
		if err != nil {
			return fmt.Errorf("split %s: %w", rel, err)
		}
		if len(chunks) == 0 {
			continue
		}
		if i.MaxChunks > 0 && total+len(chunks) > i.MaxChunks {
			chunks = chunks[:i.MaxChunks-total]
		}

		rows, err := i.embedChunks(ctx, src, rel, chunks)
		if err != nil {
			return fmt.Errorf("embed %s: %w", rel, err)
		}
		if err := i.Store.InsertBatch(ctx, rows); err != nil {
			return fmt.Errorf("store %s: %w", rel, err)
		}
		total += len(rows)

		stats := splitter.Stats(chunks)
		log.Debug("file ingested", "file", rel, "chunks", stats.Chunks, "max_tokens", stats.MaxTokens, "median_tokens", stats.MedianTokens)
	}

	log.Info("source ingested", "files", len(selected), "chunks", total)
	return nil
}

func (i *Ingester) embedChunks(ctx context.Context, src Source, rel string, chunks []splitter.Chunk) ([]db.ChunkEmbedding, error) {
	inputs := make([]string, 0, len(chunks))
	for _, c := range chunks {
		inputs = append(inputs, c.Content)
	}
	vectors, err := i.Client.EmbedTexts(ctx, inputs)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}

	rows := make([]db.ChunkEmbedding, 0, len(chunks))
	for idx, c := range chunks {
		rows = append(rows, db.ChunkEmbedding{
			ID:             sha256Hex(src.Name + ":" + rel + ":" + strconv.Itoa(c.Index) + ":" + c.Content),
			Source:         src.Name,
			SplitterKind:   src.Splitter,
			ChunkIndex:     c.Index,
			StartOffset:    c.Start,
			EndOffset:      c.End,
			Content:        c.Content,
			TokenCount:     splitter.EstimateTokens(c.Content),
			Embedding:      pgvector.NewVector(vectors[idx]),
			EmbeddingModel: i.ModelName,
		})
	}
	return rows, nil
}

func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}

// globsToRegexp converts include/exclude globs into one alternation.
// **/ matches zero or more directories, ** any characters, * anything but /.
func globsToRegexp(globs []string) *regexp.Regexp {
	if len(globs) == 0 {
		return nil
	}
	var parts []string
	for _, g := range globs {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		r := regexp.QuoteMeta(g)
		r = strings.ReplaceAll(r, "\\*\\*/", "(.*/)?")
		r = strings.ReplaceAll(r, "\\*\\*", ".*")
		r = strings.ReplaceAll(r, "\\*", "[^/]*")
		parts = append(parts, "^"+r+"$")
	}
	if len(parts) == 0 {
		return nil
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}

func filterFiles(files []string, include, exclude *regexp.Regexp, max int) []string {
	var out []string
	for _, f := range files {
		if include != nil && !include.MatchString(f) {
			continue
		}
		if exclude != nil && exclude.MatchString(f) {
			continue
		}
		out = append(out, f)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}

func sha256Hex(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}
