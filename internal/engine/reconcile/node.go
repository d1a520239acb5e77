package reconcile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/adapters/archive" //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/adapters/conda"   //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/adapters/config"  //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/adapters/logger"  //nolint:depguard // Wired in engine layer
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/envsync"
	"go.trai.ch/reso/internal/engine/restore"
	"go.trai.ch/reso/internal/engine/transport"
)

// NodeID is the unique identifier for the Orchestrator Graft node.
const NodeID graft.ID = "engine.reconcile"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LedgersNodeID,
			config.ProjectsNodeID,
			config.GlobalNodeID,
			config.FSNodeID,
			conda.ManagerNodeID,
			conda.ExporterNodeID,
			archive.NodeID,
			transport.NodeID,
			envsync.NodeID,
			restore.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Orchestrator, error) {
	ledgers, err := graft.Dep[ports.LedgerFactory](ctx)
	if err != nil {
		return nil, err
	}
	projects, err := graft.Dep[ports.ProjectStore](ctx)
	if err != nil {
		return nil, err
	}
	global, err := graft.Dep[ports.GlobalStore](ctx)
	if err != nil {
		return nil, err
	}
	fs, err := graft.Dep[afero.Fs](ctx)
	if err != nil {
		return nil, err
	}
	pm, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}
	exporter, err := graft.Dep[ports.Exporter](ctx)
	if err != nil {
		return nil, err
	}
	archives, err := graft.Dep[ports.ArchiveContainer](ctx)
	if err != nil {
		return nil, err
	}
	files, err := graft.Dep[*transport.Handler](ctx)
	if err != nil {
		return nil, err
	}
	remote, err := graft.Dep[*envsync.Chain](ctx)
	if err != nil {
		return nil, err
	}
	restoreChain, err := graft.Dep[*restore.Chain](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(ledgers, projects, global, pm, exporter, archives, files, remote, restoreChain, fs, log), nil
}
