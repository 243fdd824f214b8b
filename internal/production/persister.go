// Package production provides the integrations a deployed machine needs:
// snapshot persistence, transition publishing, history and visualization.
package production

import (
	"context"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/comalice/drills/internal/core"
)

var (
	_ core.Persister = (*JSONPersister)(nil)
	_ core.Persister = (*YAMLPersister)(nil)
)

// JSONPersister stores one <machineID>.json file per machine.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", dir)
	}
	return &JSONPersister{dir: dir}, nil
}

func (p *JSONPersister) Save(ctx context.Context, snapshot core.MachineSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, "json marshal")
	}
	return writeSnapshot(filepath.Join(p.dir, snapshot.MachineID+".json"), data)
}

func (p *JSONPersister) Load(ctx context.Context, machineID string) (core.MachineSnapshot, error) {
	data, err := readSnapshot(filepath.Join(p.dir, machineID+".json"), machineID)
	if err != nil {
		return core.MachineSnapshot{}, err
	}

	var snapshot core.MachineSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return core.MachineSnapshot{}, errors.Wrap(err, "json unmarshal")
	}
	return checkLoaded(snapshot, machineID)
}

// YAMLPersister stores one <machineID>.yaml file per machine.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", dir)
	}
	return &YAMLPersister{dir: dir}, nil
}

func (p *YAMLPersister) Save(ctx context.Context, snapshot core.MachineSnapshot) error {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "yaml marshal")
	}
	return writeSnapshot(filepath.Join(p.dir, snapshot.MachineID+".yaml"), data)
}

func (p *YAMLPersister) Load(ctx context.Context, machineID string) (core.MachineSnapshot, error) {
	data, err := readSnapshot(filepath.Join(p.dir, machineID+".yaml"), machineID)
	if err != nil {
		return core.MachineSnapshot{}, err
	}

	var snapshot core.MachineSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return core.MachineSnapshot{}, errors.Wrap(err, "yaml unmarshal")
	}
	return checkLoaded(snapshot, machineID)
}

// writeSnapshot replaces fn atomically via a temp file in the same directory.
func writeSnapshot(fn string, data []byte) error {
	tmp := fn + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, fn); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}

func readSnapshot(fn, machineID string) ([]byte, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(os.ErrNotExist, "machine %q", machineID)
		}
		return nil, errors.Wrapf(err, "read %s", fn)
	}
	return data, nil
}

func checkLoaded(snapshot core.MachineSnapshot, machineID string) (core.MachineSnapshot, error) {
	snapshot.MachineID = machineID
	if err := snapshot.Config.Validate(); err != nil {
		return core.MachineSnapshot{}, errors.Wrap(err, "config validation after load")
	}
	return snapshot, nil
}
