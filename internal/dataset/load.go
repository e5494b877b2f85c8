package dataset

import (
	"fmt"
	"os"

	"github.com/quadrantlab/algoquad/pkg/debug"
	"github.com/quadrantlab/algoquad/pkg/model"

	"gopkg.in/yaml.v3"
)

// SourceType identifies where the active dataset came from.
type SourceType string

const (
	// SourceEmbedded is the built-in table.
	SourceEmbedded SourceType = "embedded"
	// SourceFile is a YAML override supplied with --data.
	SourceFile SourceType = "file"
)

// Source describes the selected dataset source.
type Source struct {
	Type SourceType
	Path string // empty for SourceEmbedded
}

// String returns a human-readable description of the source.
func (s Source) String() string {
	if s.Type == SourceFile {
		return fmt.Sprintf("file (%s)", s.Path)
	}
	return "embedded"
}

// fileSchema is the on-disk shape of an override file.
type fileSchema struct {
	Families []model.Family `yaml:"families"`
}

// Load returns the dataset for the given path. An empty path selects the
// embedded table. A non-empty path must name a valid YAML file; any problem
// (missing file, parse error, invariant violation) is a startup error so that
// interactions never have to deal with bad data.
func Load(path string) (*model.Dataset, Source, error) {
	if path == "" {
		return Embedded(), Source{Type: SourceEmbedded}, nil
	}

	ds, err := LoadFile(path)
	if err != nil {
		return nil, Source{}, err
	}
	debug.Log("loaded %d families from %s", ds.Len(), path)
	return ds, Source{Type: SourceFile, Path: path}, nil
}

// LoadFile reads and validates a YAML override file.
func LoadFile(path string) (*model.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	if len(doc.Families) == 0 {
		return nil, fmt.Errorf("dataset %s: no families defined", path)
	}

	ds, err := model.NewDataset(doc.Families)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}
