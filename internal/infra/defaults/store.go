// Package defaults provides persistence for user preferences.
package defaults

import (
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/infra/yamlfile"
)

// Ensure Store implements domain.DefaultsRepository.
var _ domain.DefaultsRepository = (*Store)(nil)

// Store implements DefaultsRepository on top of defaults.yaml.
type Store struct {
	filePath string
}

// NewStore creates a defaults store for the given file.
func NewStore(filePath string) *Store {
	return &Store{filePath: filePath}
}

// Load reads the defaults. Missing and malformed files yield zero defaults.
func (s *Store) Load() (*domain.Defaults, error) {
	d := &domain.Defaults{}
	if _, err := yamlfile.Read(s.filePath, d, yamlfile.EmptyOnMalformed); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes the defaults.
func (s *Store) Save(d *domain.Defaults) error {
	return yamlfile.Write(s.filePath, d)
}
