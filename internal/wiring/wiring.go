// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wcw/internal/adapters/bower"
	_ "go.trai.ch/wcw/internal/adapters/config"
	_ "go.trai.ch/wcw/internal/adapters/fs"
	_ "go.trai.ch/wcw/internal/adapters/git"
	_ "go.trai.ch/wcw/internal/adapters/linear"
	_ "go.trai.ch/wcw/internal/adapters/logger"
	_ "go.trai.ch/wcw/internal/adapters/shell"
	_ "go.trai.ch/wcw/internal/adapters/store"
	_ "go.trai.ch/wcw/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/wcw/internal/app"
	_ "go.trai.ch/wcw/internal/engine/installer"
	_ "go.trai.ch/wcw/internal/engine/synchronizer"
)
