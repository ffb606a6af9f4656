package ports

import (
	"io"

	"go.trai.ch/zlock/internal/core/domain"
)

// Renderer writes reconciliation results for humans or machines.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render encodes result to w in the named format.
	Render(w io.Writer, format string, result *domain.Result) error
	// RenderFailure writes the machine readable report of an aborted run.
	RenderFailure(w io.Writer, cause error) error
}
