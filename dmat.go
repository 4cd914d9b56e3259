// Package dmat persists dense vectors and matrices to files and applies configured
// transformations to them. The numeric types live in the vector, matrix, array and sparse
// packages.
package dmat

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/matrix"
	"github.com/aouyang1/go-dmat/vector"
	"github.com/goccy/go-json"
)

// Format selects the file layout used by the Save and Load helpers.
type Format int

const (
	// FormatBinary is the little-endian int32 / float64 layout.
	FormatBinary Format = iota
	FormatJSON
)

// FormatFromPath returns FormatJSON for a .json extension and FormatBinary otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatBinary
}

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "binary"
}

type binaryCodec interface {
	io.WriterTo
	io.ReaderFrom
}

func save(path string, obj binaryCodec) (err error) {
	defer fault.Recover(&err)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create file, %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close file, %w", cerr)
		}
	}()

	format := FormatFromPath(path)
	w := bufio.NewWriter(file)
	switch format {
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(obj); err != nil {
			return fmt.Errorf("unable to encode json, %w", err)
		}
	default:
		if _, err := obj.WriteTo(w); err != nil {
			return fmt.Errorf("unable to write binary, %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("unable to flush file, %w", err)
	}
	slog.Debug("saved file", "path", path, "format", format.String())
	return nil
}

func load(path string, obj binaryCodec) (err error) {
	defer fault.Recover(&err)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open file, %w", err)
	}
	defer file.Close()

	format := FormatFromPath(path)
	r := bufio.NewReader(file)
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(obj); err != nil {
			return fmt.Errorf("unable to decode json, %w", err)
		}
	default:
		n, err := obj.ReadFrom(r)
		if err != nil {
			return fmt.Errorf("unable to read binary, %w", err)
		}
		if _, err := r.Peek(1); err != io.EOF {
			slog.Warn("trailing bytes after payload", "path", path, "bytes_read", n)
		}
	}
	slog.Debug("loaded file", "path", path, "format", format.String())
	return nil
}

// SaveVector writes v to path. The format follows the file extension.
func SaveVector(path string, v *vector.Dense) error {
	if v == nil {
		return fmt.Errorf("vector, %w", fault.ErrNullArgument)
	}
	return save(path, v)
}

// LoadVector reads a vector from path. The format follows the file extension.
func LoadVector(path string) (*vector.Dense, error) {
	v := vector.New(0)
	if err := load(path, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SaveMatrix writes m to path. The format follows the file extension.
func SaveMatrix(path string, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("matrix, %w", fault.ErrNullArgument)
	}
	return save(path, m)
}

// LoadMatrix reads a matrix from path. The format follows the file extension.
func LoadMatrix(path string) (*matrix.Dense, error) {
	m := matrix.New(0, 0)
	if err := load(path, m); err != nil {
		return nil, err
	}
	return m, nil
}
