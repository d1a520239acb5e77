package ports

import "go.trai.ch/reso/internal/core/domain"

// Ledger persists the RemoteState records of one project.
//
//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=mocks/mock_ledger.go -package=mocks
type Ledger interface {
	// Get returns the record for remote, or nil, nil if absent.
	Get(remote string) (*domain.RemoteState, error)

	// Ensure returns the record for remote, creating it with generated
	// identifiers when absent or incomplete. Generated fields are persisted
	// before Ensure returns and are never regenerated afterwards.
	Ensure(remote string) (*domain.RemoteState, error)

	// Upsert merges patch into the record for remote and returns the result.
	Upsert(remote string, patch domain.RemoteStatePatch) (*domain.RemoteState, error)

	// Delete removes the record for remote.
	Delete(remote string) error

	// All returns every record keyed by remote name.
	All() (map[string]domain.RemoteState, error)
}

// LedgerFactory opens the ledger of a project.
type LedgerFactory interface {
	Open(project domain.Project) Ledger
}
