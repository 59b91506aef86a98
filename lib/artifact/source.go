// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source is a named local byte source for an upload: a file on disk, or
// bytes already in memory (a tabular export produced by the caller).
//
// Encrypted products need the same payload sealed separately per sale, so
// the engine reads a Source exactly once and fans the bytes out from
// memory.
type Source interface {
	// Filename is the name the artifact is stored under on the
	// marketplace. Directory components are stripped.
	Filename() string

	// Bytes returns the full payload.
	Bytes() ([]byte, error)
}

// FileSource uploads the file at path under its base name.
func FileSource(path string) Source {
	return fileSource(path)
}

type fileSource string

func (source fileSource) Filename() string {
	return filepath.Base(string(source))
}

func (source fileSource) Bytes() ([]byte, error) {
	data, err := os.ReadFile(string(source))
	if err != nil {
		return nil, fmt.Errorf("reading upload source: %w", err)
	}
	return data, nil
}

// BytesSource uploads in-memory data under the given filename.
func BytesSource(filename string, data []byte) Source {
	return &bytesSource{filename: filename, data: data}
}

type bytesSource struct {
	filename string
	data     []byte
}

func (source *bytesSource) Filename() string {
	return filepath.Base(source.filename)
}

func (source *bytesSource) Bytes() ([]byte, error) {
	return source.data, nil
}
