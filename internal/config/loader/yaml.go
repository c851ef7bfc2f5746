package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads configuration from YAML files.
type YAMLLoader struct {
	fs FileSystem
}

// NewYAMLLoader creates a YAML loader reading from the OS file system.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{fs: DefaultFS()}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fsys FileSystem) *YAMLLoader {
	return &YAMLLoader{fs: fsys}
}

// LoadInto decodes the YAML file at path into v.
func (l *YAMLLoader) LoadInto(path string, v any) (bool, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return true, DecodeYAML(path, data, v)
}

// DecodeYAML decodes YAML data into v. An empty document leaves v as is.
func DecodeYAML(source string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return nil
}
