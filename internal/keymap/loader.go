package keymap

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	filePerm   = 0o644
	yamlIndent = 2
)

// LoadFile loads and parses a YAML table from the given path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keymap file %s", path)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}

	return t, nil
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "failed to parse keymap YAML")
	}

	applyDefaults(&t)

	return &t, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(t *Table) {
	if t.Version == "" {
		t.Version = CurrentVersion
	}
}

// Marshal serializes a Table to YAML with two-space indentation.
func Marshal(t *Table) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(t); err != nil {
		return nil, errors.Wrap(err, "failed to marshal keymap")
	}

	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to marshal keymap")
	}

	return buf.Bytes(), nil
}

// WriteFile writes a Table to the given path.
func WriteFile(t *Table, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write keymap file %s", path)
	}

	return nil
}
