package domain

// Tool is an external program reso depends on.
type Tool string

const (
	// ToolBash runs every command.
	ToolBash Tool = "bash"
	// ToolConda manages environments.
	ToolConda Tool = "conda"
	// ToolUnison transports project files.
	ToolUnison Tool = "unison"
)

// Version constraints of the external tools. Unison peers only talk to the
// exact same version, so it is pinned.
const (
	BashConstraint   = ">= 5.0.0"
	CondaConstraint  = ">= 4.8.0"
	UnisonConstraint = "= 2.51.3"
)

// CondaInstallerURL is the miniconda installer used on linux remotes.
const CondaInstallerURL = "https://repo.anaconda.com/miniconda/Miniconda3-latest-Linux-x86_64.sh"
