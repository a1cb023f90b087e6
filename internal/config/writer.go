package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// ErrUnknownKey is returned when writing a key that is not a configuration key.
var ErrUnknownKey = errors.New("config: unknown key")

// Set stores key=value in the YAML file at path, creating it if needed.
func Set(path, key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return update(path, func(values map[string]string) {
		values[key] = value
	})
}

// Unset removes key from the YAML file at path. It reports whether the key was present.
func Unset(path, key string) (bool, error) {
	if !domain.IsValidConfigKey(key) {
		return false, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	removed := false
	err := update(path, func(values map[string]string) {
		_, removed = values[key]
		delete(values, key)
	})
	return removed, err
}

func update(path string, edit func(map[string]string)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return WithLock(path, func() error {
		values, err := readFile(path)
		if err != nil {
			return err
		}
		edit(values)
		return writeFile(path, values)
	})
}

func readFile(path string) (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// writeFile replaces path atomically, keys in sorted order.
func writeFile(path string, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: values[k]},
		)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".config.tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}
	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
