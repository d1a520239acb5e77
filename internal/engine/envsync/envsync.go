// Package envsync reconciles the environment of a remote with the local one.
package envsync

import (
	"context"
	"fmt"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/chain"
)

// ChainName identifies the sync chain in logs, spans and errors.
const ChainName = "sync"

// Staged is a descriptor layer that has been exported and made available on
// the remote.
type Staged struct {
	// RemotePath is the layer file as seen from the remote login directory.
	RemotePath string
	// Lines holds the package lines of list layers.
	Lines []string
}

// Stager exports a layer and ships it to the remote. It is called lazily,
// right before the strategy that needs the layer.
type Stager interface {
	Stage(ctx context.Context, layer domain.Layer) (Staged, error)
}

// Request describes one environment sync.
type Request struct {
	Remote domain.Remote
	// Env is the environment currently recorded for the remote.
	Env    domain.Activation
	Compat domain.Compatibility
	Stager Stager
}

// Result is a successful environment sync.
type Result struct {
	// Env is the environment the remote ended up with.
	Env    domain.Activation
	Report domain.ChainReport
	Pip    domain.Attempt
	// Created is the environment this run created on the remote, if any. It
	// differs from Env when a later strategy won with another environment.
	Created domain.Activation
}

// Chain runs the sync strategies against a remote.
type Chain struct {
	pm     ports.PackageManager
	driver *chain.Driver
	logger ports.Logger
	names  domain.NameSource
}

// New creates a Chain.
func New(pm ports.PackageManager, driver *chain.Driver, logger ports.Logger, names domain.NameSource) *Chain {
	return &Chain{pm: pm, driver: driver, logger: logger, names: names}
}

// Run reconciles the remote environment. Strategies are selected by the
// compatibility class; pip packages are applied once a strategy succeeded.
func (c *Chain) Run(ctx context.Context, req Request) (Result, error) {
	run := &syncRun{Chain: c, req: req, target: domain.RemoteTarget(req.Remote)}

	var strategies []chain.Strategy
	if req.Compat == domain.Identical {
		strategies = []chain.Strategy{
			run.installFile(domain.StrategyExplicitLock, domain.LayerExplicitLock),
			run.portablePack(),
		}
	} else {
		strategies = []chain.Strategy{
			run.manifest(domain.StrategyFullManifest, domain.LayerFullManifest),
			run.manifest(domain.StrategyHistoryManifest, domain.LayerHistoryManifest),
			run.leaves(),
		}
	}

	c.logger.Info(fmt.Sprintf("Syncing environment on remote '%s' (%s)", req.Remote.Name, req.Compat))
	out, err := c.driver.Run(ctx, ChainName, strategies)
	if err != nil {
		return Result{Report: out.Report, Created: run.created}, err
	}

	pip, err := c.driver.Step(ctx, ChainName, run.pip(out.Env))
	return Result{Env: out.Env, Report: out.Report, Pip: pip, Created: run.created}, err
}

type syncRun struct {
	*Chain
	req     Request
	target  domain.Target
	created domain.Activation
}

// ensureEnv makes sure the recorded environment exists on the remote. A named
// environment is created; a missing relocated pack is replaced by a fresh
// named environment. An environment is created at most once per run.
func (r *syncRun) ensureEnv(ctx context.Context) (domain.Activation, error) {
	if !r.created.IsZero() {
		return r.created, nil
	}
	env := r.req.Env
	exists, err := r.pm.EnvExists(ctx, r.target, env)
	if err != nil {
		return env, err
	}
	if exists {
		return env, nil
	}
	if env.IsPath() || env.IsZero() {
		env = domain.ByName(domain.NewEnvName(r.names))
	}
	r.logger.Info(fmt.Sprintf("Creating environment '%s' on remote '%s'", env, r.req.Remote.Name))
	if err := r.pm.CreateEnv(ctx, r.target, env.Name()); err != nil {
		return env, err
	}
	r.created = env
	return env, nil
}

func (r *syncRun) installFile(id domain.StrategyID, layer domain.Layer) chain.Strategy {
	return chain.Strategy{ID: id, Layer: layer, Run: func(ctx context.Context) chain.Result {
		staged, err := r.req.Stager.Stage(ctx, layer)
		if err != nil {
			return chain.Failed(err)
		}
		env, err := r.ensureEnv(ctx)
		if err != nil {
			return chain.Failed(err)
		}
		if err := r.pm.InstallFile(ctx, r.target, env, staged.RemotePath); err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(env)
	}}
}

func (r *syncRun) portablePack() chain.Strategy {
	return chain.Strategy{ID: domain.StrategyPortablePack, Layer: domain.LayerPortablePack, Run: func(ctx context.Context) chain.Result {
		staged, err := r.req.Stager.Stage(ctx, domain.LayerPortablePack)
		if err != nil {
			return chain.Failed(err)
		}
		dir := domain.RemotePackRoot(domain.NewEnvName(r.names))
		env, err := r.pm.Unpack(ctx, r.target, staged.RemotePath, dir)
		if err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(env)
	}}
}

func (r *syncRun) manifest(id domain.StrategyID, layer domain.Layer) chain.Strategy {
	return chain.Strategy{ID: id, Layer: layer, Run: func(ctx context.Context) chain.Result {
		staged, err := r.req.Stager.Stage(ctx, layer)
		if err != nil {
			return chain.Failed(err)
		}
		env, err := r.ensureEnv(ctx)
		if err != nil {
			return chain.Failed(err)
		}
		if err := r.pm.ApplyManifest(ctx, r.target, env, staged.RemotePath); err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(env)
	}}
}

func (r *syncRun) leaves() chain.Strategy {
	return chain.Strategy{ID: domain.StrategyLeafPackages, Layer: domain.LayerLeafPackages, Run: func(ctx context.Context) chain.Result {
		staged, err := r.req.Stager.Stage(ctx, domain.LayerLeafPackages)
		if err != nil {
			return chain.Failed(err)
		}
		env, err := r.ensureEnv(ctx)
		if err != nil {
			return chain.Failed(err)
		}
		if len(staged.Lines) > 0 {
			if err := r.pm.Install(ctx, r.target, env, staged.Lines); err != nil {
				return chain.Failed(err)
			}
		}
		return chain.Succeeded(env)
	}}
}

func (r *syncRun) pip(env domain.Activation) chain.Strategy {
	return chain.Strategy{ID: domain.StrategyPipPackages, Layer: domain.LayerPipPackages, Run: func(ctx context.Context) chain.Result {
		staged, err := r.req.Stager.Stage(ctx, domain.LayerPipPackages)
		if err != nil {
			return chain.Failed(err)
		}
		if len(staged.Lines) == 0 {
			return chain.Skipped()
		}
		if err := r.pm.PipInstall(ctx, r.target, env, staged.RemotePath); err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(env)
	}}
}
