// Package seed bulk-loads JSON fixtures into the database and bootstraps the
// test accounts.
package seed

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Task uploads one fixture file into one collection.
type Task struct {
	Path       string `koanf:"path"`
	Collection string `koanf:"collection"`
}

type Manifest struct {
	Tasks []Task `koanf:"tasks"`
}

// LoadManifest reads a YAML manifest. Relative fixture paths are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}

	m := &Manifest{}
	if err := k.UnmarshalWithConf("", m, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if len(m.Tasks) == 0 {
		return nil, errors.New("manifest has no tasks")
	}

	dir := filepath.Dir(path)
	for i, t := range m.Tasks {
		if t.Path == "" || t.Collection == "" {
			return nil, fmt.Errorf("task %d needs both path and collection", i+1)
		}
		if !IsKnownCollection(t.Collection) {
			return nil, fmt.Errorf("task %d: %w: %q", i+1, ErrUnknownCollection, t.Collection)
		}
		if !filepath.IsAbs(t.Path) {
			m.Tasks[i].Path = filepath.Join(dir, t.Path)
		}
	}

	return m, nil
}
