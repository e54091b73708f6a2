package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyOllamaURL, "http://localhost:11434")
	viper.SetDefault(KeyEmbeddingModel, "nomic-embed-text")
	viper.SetDefault(KeyEmbedTimeout, "60s")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyChunkSize, 800)
	viper.SetDefault(KeyChunkOverlap, 0)
	viper.SetDefault(KeySplitterKind, "recursive")
	viper.SetDefault(KeyManifestPath, "manifests/sources.yaml")
	viper.SetDefault(KeyMaxIngestFiles, 200)
	viper.SetDefault(KeyMaxIngestChunks, 1500)
	viper.SetDefault(KeyDBDebug, false)
}

func PostgresURL() string         { return viper.GetString(KeyPostgresURL) }
func OllamaURL() string           { return viper.GetString(KeyOllamaURL) }
func EmbeddingModel() string      { return viper.GetString(KeyEmbeddingModel) }
func EmbedTimeout() time.Duration { return viper.GetDuration(KeyEmbedTimeout) }
func LogLevel() string            { return viper.GetString(KeyLogLevel) }
func ChunkSize() int              { return viper.GetInt(KeyChunkSize) }
func ChunkOverlap() int           { return viper.GetInt(KeyChunkOverlap) }
func SplitterKind() string        { return viper.GetString(KeySplitterKind) }
func ManifestPath() string        { return viper.GetString(KeyManifestPath) }
func MaxIngestFiles() int         { return viper.GetInt(KeyMaxIngestFiles) }
func MaxIngestChunks() int        { return viper.GetInt(KeyMaxIngestChunks) }
func DBDebug() bool               { return viper.GetBool(KeyDBDebug) }
