package ports

import "go.trai.ch/zlock/internal/core/domain"

// ConfigLoader defines the interface for loading lock requests from files.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the request file at path.
	// The returned request is normalized but callers may still override fields.
	Load(path string) (*domain.Request, error)
}
