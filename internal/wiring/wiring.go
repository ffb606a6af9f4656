// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/zlock/internal/adapters/config"
	_ "go.trai.ch/zlock/internal/adapters/logger"
	_ "go.trai.ch/zlock/internal/adapters/report"
	_ "go.trai.ch/zlock/internal/adapters/shell"
	_ "go.trai.ch/zlock/internal/adapters/zypper"
	// Register app and engine nodes.
	_ "go.trai.ch/zlock/internal/app"
	_ "go.trai.ch/zlock/internal/engine/reconciler"
)
