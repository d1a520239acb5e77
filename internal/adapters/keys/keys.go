// Package keys generates the ed25519 key pair used for remote logins.
package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/crypto/ssh"
)

// Store keeps key pairs on a filesystem, public keys next to private keys
// with a .pub suffix.
type Store struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewStore creates a key store on fs.
func NewStore(fs afero.Fs, logger ports.Logger) *Store {
	return &Store{fs: fs, logger: logger}
}

// Ensure implements ports.KeyStore.
func (s *Store) Ensure(path, comment string) (string, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to check ssh key"), "path", path)
	}
	if exists {
		s.logger.Debug("Reusing ssh key " + path)
		return s.public(path)
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", zerr.Wrap(err, "failed to generate ssh key")
	}
	block, err := ssh.MarshalPrivateKey(priv, comment)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode ssh key")
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode ssh public key")
	}
	line := strings.TrimSuffix(string(ssh.MarshalAuthorizedKey(sshPub)), "\n")
	if comment != "" {
		line += " " + comment
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create ssh directory"), "path", filepath.Dir(path))
	}
	if err := afero.WriteFile(s.fs, path, pem.EncodeToMemory(block), domain.PrivateFilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write ssh key"), "path", path)
	}
	if err := afero.WriteFile(s.fs, path+".pub", []byte(line+"\n"), domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write ssh public key"), "path", path+".pub")
	}
	s.logger.Info("Generated new ssh key " + path)
	return line, nil
}

// public reads the public half of an existing pair. A missing .pub file is
// derived from the private key.
func (s *Store) public(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path+".pub")
	if err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read ssh key"), "path", path)
	}
	signer, err := ssh.ParsePrivateKey(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to parse ssh key"), "path", path)
	}
	return strings.TrimSuffix(string(ssh.MarshalAuthorizedKey(signer.PublicKey())), "\n"), nil
}
