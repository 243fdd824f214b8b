package primitives

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// ComputeVersion returns config.Version when set, otherwise a content hash
// of the definition. Equal definitions always get the same version.
func ComputeVersion(config *MachineConfig) string {
	if config.Version != "" {
		return config.Version
	}

	data, err := json.Marshal(config)
	if err != nil {
		return "invalid"
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
