// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/plugindev/internal/adapters/cas"
	_ "go.trai.ch/plugindev/internal/adapters/config"
	_ "go.trai.ch/plugindev/internal/adapters/descriptor"
	_ "go.trai.ch/plugindev/internal/adapters/fs"
	_ "go.trai.ch/plugindev/internal/adapters/logger"
	_ "go.trai.ch/plugindev/internal/adapters/resolver"
	_ "go.trai.ch/plugindev/internal/adapters/scanner"
	_ "go.trai.ch/plugindev/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/plugindev/internal/app"
	_ "go.trai.ch/plugindev/internal/engine/upstream"
)
