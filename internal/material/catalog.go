package material

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matfocus/matfocus/internal/logging"
)

// defaultCatalogYAML is the sample catalog shipped with the binary. A user
// catalog loaded from disk replaces it entirely (no merging).
//
//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// catalogFile is the on-disk catalog document shape.
type catalogFile struct {
	Materials []Material `yaml:"materials"`
}

// Catalog is a validated, ordered set of materials with id lookup.
type Catalog struct {
	materials []Material
	byID      map[string]int
}

// NewCatalog validates each record and rejects duplicate ids.
func NewCatalog(materials []Material) (*Catalog, error) {
	byID := make(map[string]int, len(materials))
	for i, m := range materials {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byID[m.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, m.ID)
		}
		byID[m.ID] = i
	}
	return &Catalog{materials: materials, byID: byID}, nil
}

// LoadCatalog reads a YAML catalog from path. An empty path loads the
// embedded sample catalog.
func LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	log := logging.FromContext(ctx)

	data := defaultCatalogYAML
	source := "embedded"
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
		data = fileData
		source = path
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	catalog, err := NewCatalog(file.Materials)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("component", "material").
		Str("operation", "load_catalog").
		Str("source", source).
		Int("count", len(file.Materials)).
		Msg("loaded material catalog")

	return catalog, nil
}

// Materials returns the catalog contents in declaration order. Callers must
// not mutate the returned slice.
func (c *Catalog) Materials() []Material {
	return c.materials
}

// Get returns the material with the given id.
func (c *Catalog) Get(id string) (Material, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrMaterialNotFound, id)
	}
	return c.materials[idx], nil
}

// Len returns the number of materials in the catalog.
func (c *Catalog) Len() int { return len(c.materials) }
