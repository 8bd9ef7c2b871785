package ports

import "go.trai.ch/snodelist/internal/core/domain"

// SourceReader resolves a host-list source into raw host expressions.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceReader interface {
	// Read returns the expressions held by src, in order.
	Read(src domain.Source) ([]string, error)
	// Lookup returns the value of an environment variable.
	Lookup(name string) (string, bool)
}
