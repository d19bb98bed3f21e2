package datafile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
)

// Failure describes why a reader fell back to its zero value.
type Failure int

const (
	FailureNone Failure = iota
	FailureNotFound
	FailurePermission
	FailureFormat
	FailureIO
)

// ErrFormat marks content that does not match the expected document format.
var ErrFormat = errors.New("invalid format")

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureNotFound:
		return "not_found"
	case FailurePermission:
		return "permission_denied"
	case FailureFormat:
		return "format"
	default:
		return "io"
	}
}

func (f Failure) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Classify maps a read or parse error onto a Failure.
// A nil error is FailureNone.
func Classify(err error) Failure {
	if err == nil {
		return FailureNone
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return FailureNotFound
	case errors.Is(err, fs.ErrPermission):
		return FailurePermission
	case errors.Is(err, ErrFormat):
		return FailureFormat
	default:
		return FailureIO
	}
}

// NewReader wraps r so a leading UTF-8 byte order mark is dropped.
// The stream is always read as UTF-8, other BOMs are not interpreted and
// invalid bytes become U+FFFD.
func NewReader(r io.Reader) io.Reader {
	return unicode.UTF8BOM.NewDecoder().Reader(r)
}

// Open opens path for reading, with BOM handling applied.
// The caller must close the returned file.
func Open(path string) (*os.File, io.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, NewReader(f), nil
}

// ReadAll reads the whole file at path, with BOM handling applied.
func ReadAll(path string) ([]byte, error) {
	f, r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
