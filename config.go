package chanmesh

import "fmt"

// Config is a serialisable representation of the mesh configuration. It can
// be populated from JSON, YAML, environment variables, etc. The zero-value
// is useful – all nested fields inherit their package defaults.

type Config struct {
	Mesh MeshConfig `json:"mesh" yaml:"mesh"`
}

// MeshConfig describes the worker group the allocator wires together.
type MeshConfig struct {
	// Workers is the number of peer allocators sharing one channel table.
	Workers int `json:"workers" yaml:"workers"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to New via
// WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Mesh: MeshConfig{
			Workers: 1,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Mesh.Workers <= 0 {
		return fmt.Errorf("mesh.workers must be > 0")
	}
	return nil
}
