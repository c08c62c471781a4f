// Package stages describes the regulatory audit stages: their order, the
// requirements shown to the model and whether they are evaluated across
// several files at once. The catalog is YAML; a default is embedded.
package stages

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type Stage struct {
	Code         string   `yaml:"code"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Order        int      `yaml:"order"`
	MultiFile    bool     `yaml:"multi_file"`
	Requirements []string `yaml:"requirements"`
}

type Catalog struct {
	Version int     `yaml:"version"`
	Stages  []Stage `yaml:"stages"`

	byCode map[string]Stage
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("stages: catalog is empty")
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("stages: decode catalog: %w", err)
	}
	return c.normalized()
}

// Load reads the catalog at path, or returns the embedded default when path
// is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stages: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("stages: %s: %w", path, err)
	}
	return c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) normalized() (*Catalog, error) {
	out := &Catalog{Version: c.Version, byCode: make(map[string]Stage, len(c.Stages))}
	for i, s := range c.Stages {
		s.Code = strings.TrimSpace(s.Code)
		s.Name = strings.TrimSpace(s.Name)
		s.Description = strings.TrimSpace(s.Description)
		if s.Code == "" {
			return nil, fmt.Errorf("stages: stage %d has no code", i)
		}
		if _, dup := out.byCode[s.Code]; dup {
			return nil, fmt.Errorf("stages: duplicate stage %q", s.Code)
		}
		if s.Name == "" {
			s.Name = s.Code
		}
		reqs := s.Requirements[:0:0]
		for _, r := range s.Requirements {
			if r = strings.TrimSpace(r); r != "" {
				reqs = append(reqs, r)
			}
		}
		s.Requirements = reqs
		out.byCode[s.Code] = s
		out.Stages = append(out.Stages, s)
	}
	sort.SliceStable(out.Stages, func(i, j int) bool { return out.Stages[i].Order < out.Stages[j].Order })
	return out, nil
}

// Stage looks a stage up by code. Stages used by templates but missing from
// the catalog get a bare single-file definition.
func (c *Catalog) Stage(code string) Stage {
	if s, ok := c.byCode[code]; ok {
		return s
	}
	return Stage{Code: code, Name: code, Order: 1 << 20}
}

// Known reports whether the catalog defines code.
func (c *Catalog) Known(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Order sorts stage codes by catalog order, unknown stages last by code.
func (c *Catalog) Order(codes []string) []string {
	out := append([]string(nil), codes...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := c.Stage(out[i]), c.Stage(out[j])
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Code < b.Code
	})
	return out
}

// IsMultiFileStage reports whether stage must be evaluated in one joint
// invocation. It depends only on configuration: the stage's catalog flag
// and the multi_file flag of the checklist items that belong to it.
func IsMultiFileStage(stage Stage, items []*models.DossierItem) bool {
	if stage.MultiFile {
		return true
	}
	for _, it := range items {
		if it.Stage == stage.Code && it.MultiFile {
			return true
		}
	}
	return false
}
