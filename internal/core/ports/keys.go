package ports

// KeyStore manages the SSH key pair reso authenticates with.
//
//go:generate go run go.uber.org/mock/mockgen -source=keys.go -destination=mocks/mock_keys.go -package=mocks
type KeyStore interface {
	// Ensure returns the authorized_keys line of the key pair at path,
	// generating the pair first when the private key does not exist.
	Ensure(path, comment string) (string, error)
}
