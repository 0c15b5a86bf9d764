package datasets

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/netsig/pkg/graph"
)

// DatasetInfo describes one dataset in a manifest.
type DatasetInfo struct {
	// Name identifies the dataset within the manifest.
	Name string `yaml:"name"`
	// Path locates the edge-list file, relative to the manifest.
	Path string `yaml:"path"`
	// Weighted marks files whose third column carries edge weights.
	Weighted bool `yaml:"weighted"`
	// Description is free text for humans.
	Description string `yaml:"description,omitempty"`

	dir string
}

// Manifest is a YAML-described collection of datasets.
type Manifest struct {
	Datasets []DatasetInfo `yaml:"datasets"`
}

// LoadManifest reads a YAML manifest. Relative dataset paths resolve
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range m.Datasets {
		d := &m.Datasets[i]
		if d.Name == "" {
			return nil, fmt.Errorf("manifest %s: dataset %d has no name", path, i)
		}
		if d.Path == "" {
			return nil, fmt.Errorf("manifest %s: dataset %q has no path", path, d.Name)
		}
		d.dir = dir
	}
	return &m, nil
}

// Get returns the dataset with the given name.
func (m *Manifest) Get(name string) (*DatasetInfo, error) {
	for i := range m.Datasets {
		if m.Datasets[i].Name == name {
			return &m.Datasets[i], nil
		}
	}
	return nil, fmt.Errorf("dataset %q not in manifest", name)
}

// Load reads the dataset's edge-list file.
func (d *DatasetInfo) Load() (*graph.Undirected, error) {
	path := d.Path
	if !filepath.IsAbs(path) && d.dir != "" {
		path = filepath.Join(d.dir, path)
	}
	return LoadEdgeList(path)
}
