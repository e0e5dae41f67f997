package languages

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Runtimes []Runtime `yaml:"runtimes"`
}

// LoadCatalog overlays runtimes from a YAML file onto the registry. Entries
// replace built-ins with the same ID, so deployments can point javascript at
// a pinned node binary or enable new languages without a rebuild.
func (r *Registry) LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read language catalog: %w", err)
	}
	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse language catalog: %w", err)
	}
	for _, rt := range catalog.Runtimes {
		if rt.ID == "" {
			return fmt.Errorf("language catalog entry missing id")
		}
		r.Register(rt)
	}
	return nil
}
