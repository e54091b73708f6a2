package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvaldes/textprep/internal/config"
	"github.com/jvaldes/textprep/internal/extraction"
	"github.com/jvaldes/textprep/internal/logging"
	"github.com/jvaldes/textprep/internal/splitter"
)

var rootCmd = &cobra.Command{
	Use:   "chunkctl",
	Short: "Chunking CLI (split, stats)",
}

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split a document into chunks and print them as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadInput(args)
		if err != nil {
			return err
		}

		split, err := splitter.New(splitterKind(cmd), configFromFlags(cmd))
		if err != nil {
			return err
		}
		chunks, err := split.Split(doc.Text)
		if err != nil {
			return err
		}

		out := struct {
			Chunks   []splitter.Chunk     `json:"chunks"`
			Segments []extraction.Segment `json:"segments,omitempty"`
		}{Chunks: chunks, Segments: doc.Segments}
		return printJSON(out)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Split a document and print token statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadInput(args)
		if err != nil {
			return err
		}

		split, err := splitter.New(splitterKind(cmd), configFromFlags(cmd))
		if err != nil {
			return err
		}
		chunks, err := split.Split(doc.Text)
		if err != nil {
			return err
		}
		return printJSON(splitter.Stats(chunks))
	},
}

func loadInput(args []string) (extraction.Document, error) {
	if len(args) == 1 {
		return extraction.Load(args[0])
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return extraction.Document{}, fmt.Errorf("read stdin: %w", err)
	}
	return extraction.Decode(raw), nil
}

func splitterKind(cmd *cobra.Command) splitter.Kind {
	kind, _ := cmd.Flags().GetString("kind")
	if kind == "" {
		kind = config.SplitterKind()
	}
	return splitter.Kind(kind)
}

func configFromFlags(cmd *cobra.Command) splitter.Config {
	cfg := splitter.Config{
		ChunkSize: config.ChunkSize(),
		Overlap:   config.ChunkOverlap(),
		Logger:    logging.ForLevel(config.LogLevel()),
	}
	if v, err := cmd.Flags().GetInt("chunk-size"); err == nil && cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize = v
	}
	if v, err := cmd.Flags().GetInt("overlap"); err == nil && cmd.Flags().Changed("overlap") {
		cfg.Overlap = v
	}
	cfg.Level, _ = cmd.Flags().GetInt("level")
	cfg.Tag, _ = cmd.Flags().GetString("tag")
	cfg.Attribute, _ = cmd.Flags().GetString("attribute")
	cfg.Pattern, _ = cmd.Flags().GetString("pattern")
	if delims, err := cmd.Flags().GetStringSlice("delimiters"); err == nil && cmd.Flags().Changed("delimiters") {
		cfg.Delimiters = delims
	}
	return cfg
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	for _, cmd := range []*cobra.Command{splitCmd, statsCmd} {
		cmd.Flags().String("kind", "", "splitter kind (recursive, character, sentence, paragraph, markdown, latex, json, html, regex)")
		cmd.Flags().Int("chunk-size", 0, "maximum chunk length in characters")
		cmd.Flags().Int("overlap", 0, "characters repeated between adjacent chunks")
		cmd.Flags().Int("level", 0, "header/section level for markdown and latex")
		cmd.Flags().String("tag", "", "element name for the html splitter")
		cmd.Flags().String("attribute", "", "attribute name for the html splitter")
		cmd.Flags().String("pattern", "", "delimiter expression for the regex splitter")
		cmd.Flags().StringSlice("delimiters", nil, "delimiter cascade for the recursive splitter")
		rootCmd.AddCommand(cmd)
	}

	config.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("chunkctl: %v", err)
	}
}
