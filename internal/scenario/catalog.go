// Package scenario serves the demo scenario catalog: named alternate
// input contexts used to showcase the assistant pipeline. The catalog
// is embedded at build time and immutable after load.
package scenario

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/harmonia-app/harmonia/internal/assistant"
)

//go:embed scenarios.yaml
var catalogYAML []byte

// Info identifies one scenario for listing.
type Info struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

type entry struct {
	Info    `yaml:",inline"`
	Context map[string]any `yaml:"context"`
}

// Catalog holds the loaded scenarios in file order.
type Catalog struct {
	entries []entry
	byID    map[string]*assistant.ContextPatch
}

// Load parses the embedded catalog. Each scenario context is
// validated by converting it to a context patch up front, so a broken
// catalog fails at startup rather than per request.
func Load() (*Catalog, error) {
	var doc struct {
		Scenarios []entry `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing scenario catalog: %w", err)
	}

	c := &Catalog{
		entries: doc.Scenarios,
		byID:    make(map[string]*assistant.ContextPatch, len(doc.Scenarios)),
	}
	for _, e := range doc.Scenarios {
		if e.ID == "" {
			return nil, fmt.Errorf("scenario with empty id in catalog")
		}
		patch, err := patchFromMap(e.Context)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", e.ID, err)
		}
		c.byID[e.ID] = patch
	}
	return c, nil
}

// List returns the scenarios in catalog order.
func (c *Catalog) List() []Info {
	infos := make([]Info, len(c.entries))
	for i, e := range c.entries {
		infos[i] = e.Info
	}
	return infos
}

// Context returns the context patch for a scenario key, reporting
// whether the key exists. Callers must not mutate the result.
func (c *Catalog) Context(key string) (*assistant.ContextPatch, bool) {
	patch, ok := c.byID[key]
	return patch, ok
}

// patchFromMap converts a YAML context mapping into a context patch by
// round-tripping through JSON, so both catalog entries and HTTP
// payloads decode through the same path.
func patchFromMap(m map[string]any) (*assistant.ContextPatch, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding context: %w", err)
	}
	var patch assistant.ContextPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("decoding context: %w", err)
	}
	return &patch, nil
}
