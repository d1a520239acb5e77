// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reso/internal/adapters/archive"
	_ "go.trai.ch/reso/internal/adapters/check"
	_ "go.trai.ch/reso/internal/adapters/conda"
	_ "go.trai.ch/reso/internal/adapters/config"
	_ "go.trai.ch/reso/internal/adapters/deposit"
	_ "go.trai.ch/reso/internal/adapters/keys"
	_ "go.trai.ch/reso/internal/adapters/logger"
	_ "go.trai.ch/reso/internal/adapters/prompt"
	_ "go.trai.ch/reso/internal/adapters/shell"
	_ "go.trai.ch/reso/internal/adapters/slurm"
	_ "go.trai.ch/reso/internal/adapters/telemetry"
	_ "go.trai.ch/reso/internal/adapters/unison"
	_ "go.trai.ch/reso/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/reso/internal/app"
	_ "go.trai.ch/reso/internal/engine/chain"
	_ "go.trai.ch/reso/internal/engine/envsync"
	_ "go.trai.ch/reso/internal/engine/reconcile"
	_ "go.trai.ch/reso/internal/engine/restore"
	_ "go.trai.ch/reso/internal/engine/transport"
)
