package domain

import "path/filepath"

const (
	// ResoDirName is the name of the metadata directory, both in the user's home
	// and at the root of every project.
	ResoDirName = ".reso"

	// ConfigFileName is the name of the YAML config file inside a metadata directory.
	ConfigFileName = "config.yaml"

	// RemotesDirName is the name of the directory holding the remotes document.
	RemotesDirName = "remotes"

	// RemotesFileName is the name of the remotes document.
	RemotesFileName = "remotes.yaml"

	// InitMarkerName marks a project directory as initialized.
	InitMarkerName = ".reso_init_complete"

	// EnvsDirName holds relocated portable packs.
	EnvsDirName = "envs"

	// UnisonDirName is the unison profile directory inside the home metadata directory.
	UnisonDirName = "unison"

	// UnisonProfile is the unison profile used for every sync.
	UnisonProfile = "default"

	// LayerDirName is the project folder that carries exported descriptor layers to remotes.
	LayerDirName = ".env"

	// RemoteProjectsDirName is the remote parent folder of generated project paths.
	RemoteProjectsDirName = "reso_projects"

	// ArchiveFilesDir is the archive prefix for project files.
	ArchiveFilesDir = "files"

	// ArchiveFileName is the default file name of a project archive.
	ArchiveFileName = "reso_archive.tar.gz"

	// SSHKeyName is the file name of the generated SSH key under ~/.ssh.
	SSHKeyName = "id_ed25519_reso"

	// MaxProjectSearchDepth bounds the walk up the directory tree when looking
	// for a project root.
	MaxProjectSearchDepth = 256

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// GlobalConfigPath returns the path of the user-level config file.
func GlobalConfigPath(home string) string {
	return filepath.Join(home, ResoDirName, ConfigFileName)
}

// GlobalRemotesPath returns the path of the user-level remote registry.
func GlobalRemotesPath(home string) string {
	return filepath.Join(home, ResoDirName, RemotesDirName, RemotesFileName)
}

// UnisonConfigDir returns the directory unison reads its profile from.
func UnisonConfigDir(home string) string {
	return filepath.Join(home, ResoDirName, UnisonDirName)
}

// ProjectConfigPath returns the path of the project config file.
func ProjectConfigPath(root string) string {
	return filepath.Join(root, ResoDirName, ConfigFileName)
}

// ProjectLedgerPath returns the path of the per-project RemoteState document.
func ProjectLedgerPath(root string) string {
	return filepath.Join(root, ResoDirName, RemotesDirName, RemotesFileName)
}

// InitMarkerPath returns the path of the marker file of an initialized project.
func InitMarkerPath(root string) string {
	return filepath.Join(root, ResoDirName, InitMarkerName)
}

// LayerDir returns the project folder descriptor layers are exported into.
func LayerDir(root string) string {
	return filepath.Join(root, LayerDirName)
}

// LocalPackRoot returns the directory a portable pack is relocated into on the
// local machine.
func LocalPackRoot(home, envName string) string {
	return filepath.Join(home, ResoDirName, EnvsDirName, envName)
}

// RemotePackRoot returns the directory a portable pack is relocated into on a
// remote, relative to the remote login directory.
func RemotePackRoot(envName string) string {
	return "./" + ResoDirName + "/" + EnvsDirName + "/" + envName
}
