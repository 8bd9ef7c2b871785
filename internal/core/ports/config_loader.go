package ports

import "go.trai.ch/snodelist/internal/core/domain"

// ConfigLoader defines the interface for loading user defaults.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the defaults file at path. An empty path selects the default
	// location, which may be absent without error.
	Load(path string) (domain.Defaults, error)
}
