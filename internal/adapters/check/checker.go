// Package check verifies the tools reso drives, locally and on remotes.
package check

import (
	"context"
	"fmt"
	"regexp"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

var versionRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

// probe is one tool test: the command printing the version and the
// constraint the version must satisfy.
type probe struct {
	tool       domain.Tool
	command    string
	constraint string
	hint       string
}

// Checker implements ports.DependencyChecker.
type Checker struct {
	local  ports.LocalExecutor
	remote ports.RemoteExecutor
	logger ports.Logger
}

// NewChecker creates a Checker.
func NewChecker(local ports.LocalExecutor, remote ports.RemoteExecutor, logger ports.Logger) *Checker {
	return &Checker{local: local, remote: remote, logger: logger}
}

func localProbes() []probe {
	return []probe{
		{domain.ToolBash, "bash --version", domain.BashConstraint, "please update your bash"},
		{domain.ToolConda, "conda --version", domain.CondaConstraint, "please run 'conda update conda'"},
		{domain.ToolUnison, "unison -version", domain.UnisonConstraint, "please reinstall unison 2.51.3"},
	}
}

func remoteProbes(remote domain.Remote) []probe {
	return []probe{
		{domain.ToolConda, remote.CondaLoadCommand + " && conda --version", domain.CondaConstraint, "please run 'conda update conda'"},
		{domain.ToolUnison, shell.Quote(remote.UnisonPath) + " -version", domain.UnisonConstraint, "please reinstall unison 2.51.3"},
	}
}

// CheckLocal implements ports.DependencyChecker.
func (c *Checker) CheckLocal(ctx context.Context) error {
	for _, p := range localProbes() {
		res, err := c.local.Run(ctx, p.command)
		if err != nil {
			return err
		}
		if !res.Succeeded() {
			return missing(p, "local machine", res.Output)
		}
		if err := c.verify(p, res.Output); err != nil {
			return err
		}
		c.logger.Info(fmt.Sprintf("PASS - %s is installed locally", p.tool))
	}
	return nil
}

// CheckRemote implements ports.DependencyChecker.
func (c *Checker) CheckRemote(ctx context.Context, remote domain.Remote) ([]domain.Tool, error) {
	var absent []domain.Tool
	for _, p := range remoteProbes(remote) {
		res, err := c.remote.Run(ctx, remote, p.command)
		if err != nil {
			return nil, err
		}
		if !res.Succeeded() {
			c.logger.Debug(missing(p, "remote '"+remote.Name+"'", res.Output).Error())
			absent = append(absent, p.tool)
			continue
		}
		if err := c.verify(p, res.Output); err != nil {
			return nil, zerr.With(err, "remote", remote.Name)
		}
		c.logger.Info(fmt.Sprintf("PASS - %s is installed on remote '%s'", p.tool, remote.Name))
	}
	return absent, nil
}

// InstallConda implements ports.DependencyChecker.
func (c *Checker) InstallConda(ctx context.Context, remote domain.Remote) error {
	dir := remote.CondaInstallPath
	cmd := "wget -q " + domain.CondaInstallerURL + " -O " + dir + "/miniconda.sh" +
		" && bash " + dir + "/miniconda.sh -b -p " + dir + "/miniconda" +
		" && rm " + dir + "/miniconda.sh"
	res, err := c.remote.Run(domain.WithEcho(ctx), remote, cmd)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return domain.NewCommandError(domain.RemoteTarget(remote), cmd, res)
	}
	return nil
}

func missing(p probe, where, output string) error {
	msg := fmt.Sprintf("%s test command '%s' raised error on %s", p.tool, p.command, where)
	return zerr.With(zerr.Wrap(domain.ErrMissingDependency, msg), "output", output)
}

// verify checks the version printed by a probe. Output without a version
// only warns.
func (c *Checker) verify(p probe, output string) error {
	raw := versionRe.FindString(output)
	if raw == "" {
		c.logger.Warn(fmt.Sprintf("Could not determine %s version, reso might not function correctly", p.tool))
		return nil
	}
	v, err := goversion.NewVersion(raw)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("Could not parse %s version %q", p.tool, raw))
		return nil
	}
	constraint, err := goversion.NewConstraint(p.constraint)
	if err != nil {
		return zerr.Wrap(err, "invalid version constraint")
	}
	if !constraint.Check(v) {
		msg := fmt.Sprintf("%s %s does not satisfy %s, %s", p.tool, v, p.constraint, p.hint)
		return zerr.Wrap(domain.ErrDependencyVersion, msg)
	}
	return nil
}
