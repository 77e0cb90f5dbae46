// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bim/internal/adapters/aspectfile"
	_ "go.trai.ch/bim/internal/adapters/bazel"
	_ "go.trai.ch/bim/internal/adapters/config"
	_ "go.trai.ch/bim/internal/adapters/logger"
	_ "go.trai.ch/bim/internal/adapters/metrics"
	_ "go.trai.ch/bim/internal/adapters/monitor"
	_ "go.trai.ch/bim/internal/adapters/project"
	_ "go.trai.ch/bim/internal/adapters/scanner"
	_ "go.trai.ch/bim/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/bim/internal/app"
	_ "go.trai.ch/bim/internal/engine/aspect"
)
