package ports

import "context"

// DepositRequest describes a research data deposit.
type DepositRequest struct {
	// BaseURL overrides the service instance when set.
	BaseURL     string
	AccessToken string
	OrgUnitID   string
	Title       string
	Year        string
	Description string
	Access      string
	LicenseID   string
	Keywords    []string
	ArchivePath string
}

// Depositor publishes archives to a research data repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=deposit.go -destination=mocks/mock_deposit.go -package=mocks
type Depositor interface {
	// Deposit creates, fills and submits a deposit, returning its id.
	Deposit(ctx context.Context, req DepositRequest) (string, error)
}

// ObjectStore moves archive files to and from s3:// URLs.
type ObjectStore interface {
	Upload(ctx context.Context, url, file string) error
	Download(ctx context.Context, url, dest string) error
}

// Fetcher downloads http(s) URLs to a local file.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}
