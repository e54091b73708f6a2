package config

const (
	KeyPostgresURL     = "postgres_url"
	KeyOllamaURL       = "ollama_url"
	KeyEmbeddingModel  = "embedding_model_name"
	KeyEmbedTimeout    = "embed_call_timeout"
	KeyLogLevel        = "log_level"
	KeyChunkSize       = "chunk_size"
	KeyChunkOverlap    = "chunk_overlap"
	KeySplitterKind    = "splitter_kind"
	KeyManifestPath    = "manifest_path"
	KeyMaxIngestFiles  = "max_ingest_files"
	KeyMaxIngestChunks = "max_ingest_chunks"
	KeyDBDebug         = "db_debug"
)
