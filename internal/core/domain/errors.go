package domain

import "go.trai.ch/zerr"

var (
	// ErrNotAProject is returned when no initialized project is found above the working directory.
	ErrNotAProject = zerr.New("not inside a reso project, run 'reso init' first")

	// ErrProjectAlreadyInitialized is returned by init when the marker file already exists.
	ErrProjectAlreadyInitialized = zerr.New("project is already initialized")

	// ErrNoRemotes is returned when a command needs a remote and none is configured.
	ErrNoRemotes = zerr.New("there are no remotes configured yet, add one with 'reso remote add'")

	// ErrRemoteUnspecified is returned when several remotes exist and none was selected.
	ErrRemoteUnspecified = zerr.New("no remote was specified and multiple remotes are configured")

	// ErrRemoteNotFound is returned when a named remote does not exist.
	ErrRemoteNotFound = zerr.New("remote does not exist")

	// ErrRemoteExists is returned when adding a remote whose name is taken.
	ErrRemoteExists = zerr.New("remote already exists")

	// ErrInvalidRemoteState is returned when a RemoteState is missing a required field.
	ErrInvalidRemoteState = zerr.New("invalid remote state")

	// ErrInvalidRemote is returned when remote settings are missing a required field.
	ErrInvalidRemote = zerr.New("invalid remote settings")

	// ErrInvalidActivation is returned when an activation directive cannot be parsed.
	ErrInvalidActivation = zerr.New("invalid activation directive")

	// ErrNoLocalEnv is returned when the project has no local environment recorded.
	ErrNoLocalEnv = zerr.New("project has no local environment")

	// ErrCommandTimeout is returned when an external command exceeds its wall-clock budget.
	ErrCommandTimeout = zerr.New("command timed out")

	// ErrNotAnArchive is returned when an archive lacks the identification header.
	ErrNotAnArchive = zerr.New("file is not an archive created by reso")

	// ErrArchiveMemberMissing is returned when a required archive member is absent.
	ErrArchiveMemberMissing = zerr.New("archive member not found")

	// ErrSyncDeclined is returned when the user declines to override locked sync archives.
	ErrSyncDeclined = zerr.New("sync aborted: the unison archives are locked")

	// ErrSSH is returned when the SSH client cannot reach the remote host.
	ErrSSH = zerr.New("ssh connection failed")

	// ErrMarkerMissing is returned when wrapped command output lacks the begin marker.
	ErrMarkerMissing = zerr.New("command output is missing the begin marker")

	// ErrMarkerRepeated is returned when a marker appears more than once in command output.
	ErrMarkerRepeated = zerr.New("command output contains a marker more than once")

	// ErrEnvNotUsable is returned when a freshly restored environment cannot be activated.
	ErrEnvNotUsable = zerr.New("restored environment cannot be activated")

	// ErrMissingDependency is returned when a required tool is not installed.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrDependencyVersion is returned when a tool version does not satisfy its constraint.
	ErrDependencyVersion = zerr.New("unsupported dependency version")

	// ErrUnsupportedURL is returned when an archive URL has an unsupported scheme.
	ErrUnsupportedURL = zerr.New("unsupported url scheme")

	// ErrMissingOption is returned when a required command option is not provided.
	ErrMissingOption = zerr.New("missing required option")

	// ErrConflictingOptions is returned when mutually exclusive options are combined.
	ErrConflictingOptions = zerr.New("options are mutually exclusive")

	// ErrDepositUnauthorized is returned when the deposit service rejects the access token.
	ErrDepositUnauthorized = zerr.New("received 'Unauthorized' from the deposit service, has your access token expired?")

	// ErrDepositFailed is returned when the deposit service answers with an unexpected status.
	ErrDepositFailed = zerr.New("deposit request failed")

	// ErrInvalidToken is returned when the access token lacks the user_name claim.
	ErrInvalidToken = zerr.New("invalid access token: expected claim 'user_name'")

	// ErrConfigReadFailed is returned when a config document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config document cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when a config document cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")
)
