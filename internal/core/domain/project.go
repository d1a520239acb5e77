package domain

import (
	"math/rand/v2"
	"path/filepath"
)

// Project is an initialized project directory.
type Project struct {
	Name string
	Root string
}

// NewProject returns the project rooted at root.
func NewProject(root string) Project {
	return Project{Name: filepath.Base(root), Root: root}
}

// ProjectConfig is the project-level config document.
type ProjectConfig struct {
	EnvName string `yaml:"env_name,omitempty"`
	OS      string `yaml:"platform,omitempty"`
	Arch    string `yaml:"arch,omitempty"`
	Version string `yaml:"reso_version,omitempty"`
	// EnvInitialized is set once reso created the environment itself.
	EnvInitialized bool `yaml:"env_initialized"`
}

// Platform returns the platform the project environment was created on.
func (c ProjectConfig) Platform() Platform {
	return Platform{OS: c.OS, Arch: c.Arch}
}

// GlobalConfig is the user-level config document.
type GlobalConfig struct {
	AppName string `yaml:"app_name,omitempty"`
	SSHKey  string `yaml:"ssh_key,omitempty"`
}

// AppName is written into new global configs.
const AppName = "reso"

// EnvNamePrefix prefixes every generated environment name.
const EnvNamePrefix = "reso_env_"

// SuffixLength is the length of generated random suffixes.
const SuffixLength = 8

// NameSource returns n random lowercase letters.
type NameSource func(n int) string

// RandomSuffix is the default NameSource.
func RandomSuffix(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))] //nolint:gosec // identifiers, not secrets
	}
	return string(b)
}

// NewEnvName generates a fresh environment name.
func NewEnvName(rnd NameSource) string {
	return EnvNamePrefix + rnd(SuffixLength)
}

// NewFilesPath generates the remote project root for a project.
func NewFilesPath(project string, rnd NameSource) string {
	return "./" + RemoteProjectsDirName + "/" + project + "_" + rnd(SuffixLength)
}
