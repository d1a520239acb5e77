package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Defaults for new remotes.
const (
	DefaultPort             = 22
	DefaultScheduler        = "slurm"
	DefaultCondaLoadCommand = "source ~/miniconda/bin/activate"
	DefaultCondaInstallPath = "~"
	DefaultUnisonPath       = "./bin/unison"
	// ServerAliveInterval is passed to every ssh invocation.
	ServerAliveInterval = 30
)

// Remote holds the connection settings of an execution host. Settings live in
// the user's global remote registry and are shared by all projects.
type Remote struct {
	Name             string `yaml:"-"`
	Hostname         string `yaml:"hostname"`
	Username         string `yaml:"username"`
	Port             int    `yaml:"port"`
	Scheduler        string `yaml:"scheduler,omitempty"`
	CondaLoadCommand string `yaml:"conda_load_command,omitempty"`
	CondaInstallPath string `yaml:"conda_install_path,omitempty"`
	UnisonPath       string `yaml:"unison_path,omitempty"`
	OS               string `yaml:"platform,omitempty"`
	Arch             string `yaml:"arch,omitempty"`
}

// WithDefaults fills unset optional fields.
func (r Remote) WithDefaults() Remote {
	if r.Port == 0 {
		r.Port = DefaultPort
	}
	if r.Scheduler == "" {
		r.Scheduler = DefaultScheduler
	}
	if r.CondaLoadCommand == "" {
		r.CondaLoadCommand = DefaultCondaLoadCommand
	}
	if r.CondaInstallPath == "" {
		r.CondaInstallPath = DefaultCondaInstallPath
	}
	if r.UnisonPath == "" {
		r.UnisonPath = DefaultUnisonPath
	}
	return r
}

// Validate checks the fields needed to reach the host.
func (r Remote) Validate() error {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Hostname == "" {
		missing = append(missing, "hostname")
	}
	if r.Username == "" {
		missing = append(missing, "username")
	}
	if len(missing) > 0 {
		return zerr.Wrap(ErrInvalidRemote, "missing "+strings.Join(missing, ", "))
	}
	if r.Port < 0 || r.Port > 65535 {
		return zerr.Wrap(ErrInvalidRemote, fmt.Sprintf("port %d out of range", r.Port))
	}
	return nil
}

// Platform returns the platform of the host. Remotes default to linux/x86_64.
func (r Remote) Platform() Platform {
	p := Platform{OS: r.OS, Arch: r.Arch}
	if p.OS == "" {
		p.OS = OSLinux
	}
	if p.Arch == "" {
		p.Arch = ArchX8664
	}
	return p
}

// Address returns user@host.
func (r Remote) Address() string {
	return r.Username + "@" + r.Hostname
}
