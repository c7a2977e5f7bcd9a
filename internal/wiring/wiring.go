// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/addon/internal/adapters/archive"
	_ "go.trai.ch/addon/internal/adapters/config"
	_ "go.trai.ch/addon/internal/adapters/fs"
	_ "go.trai.ch/addon/internal/adapters/logger"
	_ "go.trai.ch/addon/internal/adapters/manifest"
	_ "go.trai.ch/addon/internal/adapters/metrics"
	_ "go.trai.ch/addon/internal/adapters/modules"
	_ "go.trai.ch/addon/internal/adapters/resources"
	_ "go.trai.ch/addon/internal/adapters/script"
	_ "go.trai.ch/addon/internal/adapters/sharedlib"
	_ "go.trai.ch/addon/internal/adapters/telemetry"
	_ "go.trai.ch/addon/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/addon/internal/app"
	_ "go.trai.ch/addon/internal/engine/discovery"
)
