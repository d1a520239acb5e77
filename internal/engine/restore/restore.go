// Package restore rebuilds a project environment on the local machine from
// the layers embedded in an archive.
package restore

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/chain"
)

// ChainName identifies the restore chain in logs, spans and errors.
const ChainName = "restore"

// Source hands out extracted layer files.
type Source interface {
	LayerPath(ctx context.Context, layer domain.Layer) (string, error)
}

// Request describes one restore.
type Request struct {
	Compat domain.Compatibility
	// Env is the freshly created named environment.
	Env domain.Activation
	// PackRoot is where a portable pack is relocated to.
	PackRoot string
	Source   Source
}

// Result is a successful restore.
type Result struct {
	Env    domain.Activation
	Report domain.ChainReport
	Pip    domain.Attempt
}

// Chain runs the restore strategies on the local machine.
type Chain struct {
	pm     ports.PackageManager
	driver *chain.Driver
	logger ports.Logger
}

// New creates a Chain.
func New(pm ports.PackageManager, driver *chain.Driver, logger ports.Logger) *Chain {
	return &Chain{pm: pm, driver: driver, logger: logger}
}

// Run restores the environment. Foreign archives never attempt the explicit
// lock or the portable pack.
func (c *Chain) Run(ctx context.Context, req Request) (Result, error) {
	r := &restoreRun{Chain: c, req: req, target: domain.LocalTarget()}

	var strategies []chain.Strategy
	if req.Compat == domain.Identical {
		strategies = []chain.Strategy{
			r.installFile(domain.StrategyExplicitLock, domain.LayerExplicitLock),
			r.portablePack(),
		}
	} else {
		strategies = []chain.Strategy{
			r.manifest(domain.StrategyFullManifest, domain.LayerFullManifest),
			r.manifest(domain.StrategyHistoryManifest, domain.LayerHistoryManifest),
			r.installFile(domain.StrategyRequirements, domain.LayerRequirements),
			r.installFile(domain.StrategyLeafPackages, domain.LayerLeafPackages),
		}
	}

	c.logger.Info(fmt.Sprintf("Restoring environment '%s' (%s archive)", req.Env, req.Compat))
	out, err := c.driver.Run(ctx, ChainName, strategies)
	if err != nil {
		return Result{Report: out.Report}, err
	}

	pip, err := c.driver.Step(ctx, ChainName, r.pip(out.Env))
	return Result{Env: out.Env, Report: out.Report, Pip: pip}, err
}

type restoreRun struct {
	*Chain
	req    Request
	target domain.Target
}

func (r *restoreRun) layer(ctx context.Context, layer domain.Layer) (string, chain.Result, bool) {
	path, err := r.req.Source.LayerPath(ctx, layer)
	if err != nil {
		return "", chain.Unavailable(err), false
	}
	return path, chain.Result{}, true
}

func (r *restoreRun) installFile(id domain.StrategyID, layer domain.Layer) chain.Strategy {
	return chain.Strategy{ID: id, Layer: layer, Run: func(ctx context.Context) chain.Result {
		path, res, ok := r.layer(ctx, layer)
		if !ok {
			return res
		}
		if err := r.pm.InstallFile(ctx, r.target, r.req.Env, path); err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(r.req.Env)
	}}
}

func (r *restoreRun) manifest(id domain.StrategyID, layer domain.Layer) chain.Strategy {
	return chain.Strategy{ID: id, Layer: layer, Run: func(ctx context.Context) chain.Result {
		path, res, ok := r.layer(ctx, layer)
		if !ok {
			return res
		}
		if err := r.pm.ApplyManifest(ctx, r.target, r.req.Env, path); err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(r.req.Env)
	}}
}

func (r *restoreRun) portablePack() chain.Strategy {
	return chain.Strategy{ID: domain.StrategyPortablePack, Layer: domain.LayerPortablePack, Run: func(ctx context.Context) chain.Result {
		path, res, ok := r.layer(ctx, domain.LayerPortablePack)
		if !ok {
			return res
		}
		env, err := r.pm.Unpack(ctx, r.target, path, r.req.PackRoot)
		if err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(env)
	}}
}

func (r *restoreRun) pip(env domain.Activation) chain.Strategy {
	return chain.Strategy{ID: domain.StrategyPipPackages, Layer: domain.LayerPipPackages, Run: func(ctx context.Context) chain.Result {
		path, err := r.req.Source.LayerPath(ctx, domain.LayerPipPackages)
		if errors.Is(err, domain.ErrArchiveMemberMissing) {
			return chain.Skipped()
		}
		if err != nil {
			return chain.Failed(err)
		}
		if err := r.pm.PipInstall(ctx, r.target, env, path); err != nil {
			return chain.Failed(err)
		}
		return chain.Succeeded(env)
	}}
}
