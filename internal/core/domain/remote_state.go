package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// RemoteState is the per (project, remote) sync record.
type RemoteState struct {
	EnvName       string     `yaml:"env_name"`
	FilesPath     string     `yaml:"files_path"`
	LastFilesSync *time.Time `yaml:"last_files_sync,omitempty"`
	LastEnvSync   *time.Time `yaml:"last_env_sync,omitempty"`
}

// NewRemoteState validates the identity fields of a record.
func NewRemoteState(envName, filesPath string) (RemoteState, error) {
	if envName == "" {
		return RemoteState{}, zerr.Wrap(ErrInvalidRemoteState, "missing env_name")
	}
	if filesPath == "" {
		return RemoteState{}, zerr.Wrap(ErrInvalidRemoteState, "missing files_path")
	}
	if _, err := ParseActivation(envName); err != nil {
		return RemoteState{}, zerr.Wrap(err, ErrInvalidRemoteState.Error())
	}
	return RemoteState{EnvName: envName, FilesPath: filesPath}, nil
}

// Activation parses EnvName.
func (s RemoteState) Activation() (Activation, error) {
	return ParseActivation(s.EnvName)
}

// RemoteStatePatch lists fields to change. Nil fields are left untouched.
type RemoteStatePatch struct {
	EnvName       *string
	FilesPath     *string
	LastFilesSync *time.Time
	LastEnvSync   *time.Time
}

// Apply merges the patch into a copy of s.
func (p RemoteStatePatch) Apply(s RemoteState) RemoteState {
	if p.EnvName != nil {
		s.EnvName = *p.EnvName
	}
	if p.FilesPath != nil {
		s.FilesPath = *p.FilesPath
	}
	if p.LastFilesSync != nil {
		t := *p.LastFilesSync
		s.LastFilesSync = &t
	}
	if p.LastEnvSync != nil {
		t := *p.LastEnvSync
		s.LastEnvSync = &t
	}
	return s
}
