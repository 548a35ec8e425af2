// Package registry provides project registry persistence.
package registry

import (
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/infra/yamlfile"
)

// Ensure Store implements domain.RegistryRepository.
var _ domain.RegistryRepository = (*Store)(nil)

// Store implements RegistryRepository on top of registry.yaml.
type Store struct {
	filePath string
}

// NewStore creates a registry store for the given file.
func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads the registry. A missing file yields a registry with an empty default workspace.
// A malformed file is reported as a *yamlfile.ParseError.
func (s *Store) Load() (*domain.Registry, error) {
	reg := &domain.Registry{}
	found, err := yamlfile.Read(s.filePath, reg, yamlfile.Strict)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.NewRegistry(), nil
	}
	reg.EnsureShape()
	return reg, nil
}

// Save writes the registry after repairing its shape.
func (s *Store) Save(reg *domain.Registry) error {
	reg.EnsureShape()
	return yamlfile.Write(s.filePath, reg)
}
