package pipeline

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/jvaldes/textprep/internal/splitter"
)

// Source is one directory of extracted documents to ingest.
type Source struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Include  []string `json:"include,omitempty"`
	Exclude  []string `json:"exclude,omitempty"`
	Splitter string   `json:"splitter,omitempty"` // splitter kind, default recursive
}

// Manifest lists the sources an ingest run processes.
type Manifest struct {
	Sources []Source `json:"sources"`
}

func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Sources) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s lists no sources", path)
	}
	for i := range m.Sources {
		if m.Sources[i].Splitter == "" {
			m.Sources[i].Splitter = string(splitter.KindRecursive)
		}
	}
	return m, nil
}
