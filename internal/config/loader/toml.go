package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads configuration from TOML files.
type TOMLLoader struct {
	fs FileSystem
}

// NewTOMLLoader creates a TOML loader reading from the OS file system.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{fs: DefaultFS()}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fsys FileSystem) *TOMLLoader {
	return &TOMLLoader{fs: fsys}
}

// LoadInto decodes the TOML file at path into v.
func (l *TOMLLoader) LoadInto(path string, v any) (bool, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return true, DecodeTOML(path, data, v)
}

// DecodeTOML decodes TOML data into v. source names the data in errors.
func DecodeTOML(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		var serr *toml.StrictMissingError
		switch {
		case errors.As(err, &derr):
			perr.Line, perr.Column = derr.Position()
		case errors.As(err, &serr) && len(serr.Errors) > 0:
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Message = "unknown key " + strings.Join(serr.Errors[0].Key(), ".")
		}
		return perr
	}
	return nil
}
