package signer

import (
	"fmt"
	"os"

	"github.com/ralt/bundlediff/internal/utils"
)

const (
	// SignatureExt is appended to a report path to name its detached signature
	SignatureExt = ".asc"

	// PublicKeyExt is appended to a report path to name the exported public key
	PublicKeyExt = ".pub.asc"
)

// Signer interface for signing comparison reports
type Signer interface {
	// SignDetached creates an armored detached signature
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the public key
	GetPublicKey() ([]byte, error)
}

// SignFile writes a detached signature for the file at path next to it and
// returns the signature path
func SignFile(s Signer, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	sig, err := s.SignDetached(data)
	if err != nil {
		return "", err
	}

	sigPath := path + SignatureExt
	if err := utils.WriteFile(sigPath, sig, 0644); err != nil {
		return "", fmt.Errorf("failed to write signature: %w", err)
	}
	return sigPath, nil
}

// ExportPublicKey writes the signer's armored public key next to the report
// at path so the signature can be verified without the private key. It
// returns the key path.
func ExportPublicKey(s Signer, path string) (string, error) {
	pub, err := s.GetPublicKey()
	if err != nil {
		return "", fmt.Errorf("failed to export public key: %w", err)
	}

	keyPath := path + PublicKeyExt
	if err := utils.WriteFile(keyPath, pub, 0644); err != nil {
		return "", fmt.Errorf("failed to write public key: %w", err)
	}
	return keyPath, nil
}
