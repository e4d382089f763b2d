package utils

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a short hex digest identifying a document's content
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
