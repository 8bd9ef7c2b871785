// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/snodelist/internal/adapters/config"
	_ "go.trai.ch/snodelist/internal/adapters/hostlist"
	_ "go.trai.ch/snodelist/internal/adapters/logger"
	_ "go.trai.ch/snodelist/internal/adapters/source"
	// Register app nodes.
	_ "go.trai.ch/snodelist/internal/app"
)
