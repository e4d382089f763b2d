package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ralt/bundlediff/internal/models"
	"github.com/ralt/bundlediff/internal/utils"
)

// StdinPath selects standard input instead of a file
const StdinPath = "-"

// Input is a loaded and parsed JSON document
type Input struct {
	Path        string
	Compression Compression
	Fingerprint string

	// Root is the decoded top-level value; numbers are json.Number
	Root interface{}
}

// Loader reads JSON documents from files or standard input
type Loader struct {
	Stdin io.Reader
}

// NewLoader creates a loader reading "-" from stdin, or os.Stdin when nil
func NewLoader(stdin io.Reader) *Loader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Loader{Stdin: stdin}
}

// Load reads, decompresses and parses the document at path
func (l *Loader) Load(ctx context.Context, path string) (*Input, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw, err := l.read(path)
	if err != nil {
		return nil, &models.DiffError{
			Type:  models.ErrInputRead,
			Input: path,
			Err:   err,
		}
	}

	compression := DetectCompression(raw)
	data, err := decompress(raw, compression)
	if err != nil {
		return nil, &models.DiffError{
			Type:  models.ErrInputRead,
			Input: path,
			Err:   fmt.Errorf("failed to decompress %s input: %w", compression, err),
		}
	}

	logrus.Debugf("Read %s: %d bytes (compression: %s)", path, len(data), compression)

	root, err := Parse(data)
	if err != nil {
		return nil, &models.DiffError{
			Type:  models.ErrInvalidJSON,
			Input: path,
			Err:   fmt.Errorf("Invalid JSON file: %w", err),
		}
	}

	return &Input{
		Path:        path,
		Compression: compression,
		Fingerprint: utils.Fingerprint(data),
		Root:        root,
	}, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if path == StdinPath {
		if l.Stdin == nil {
			return nil, fmt.Errorf("standard input is not available")
		}
		return io.ReadAll(l.Stdin)
	}
	return os.ReadFile(path)
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionGzip:
		return utils.GzipDecompress(data)
	case CompressionZstd:
		return utils.ZstdDecompress(data)
	case CompressionXz:
		return utils.XzDecompress(data)
	default:
		return data, nil
	}
}

// Parse decodes a single JSON value, keeping numbers as json.Number so raw
// values survive for comparison
func Parse(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}
