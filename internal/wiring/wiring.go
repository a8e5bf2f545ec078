// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/toolpin/internal/adapters/config"
	_ "go.trai.ch/toolpin/internal/adapters/envfile"
	_ "go.trai.ch/toolpin/internal/adapters/logger"
	_ "go.trai.ch/toolpin/internal/adapters/manifest"
	_ "go.trai.ch/toolpin/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/toolpin/internal/app"
)
