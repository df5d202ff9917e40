package process

import (
	"fmt"
)

// ProcessConfig describes an allow-listed local command bound to an action.
type ProcessConfig struct {
	Name        string            `yaml:"name" json:"name" mapstructure:"name"`
	Command     string            `yaml:"command" json:"command" mapstructure:"command"`
	Args        []string          `yaml:"args" json:"args" mapstructure:"args"`
	Environment map[string]string `yaml:"env" json:"env" mapstructure:"env"`
	Description string            `yaml:"description" json:"description" mapstructure:"description"`
}

// Index validates a list of process definitions and returns them keyed by name.
func Index(list []ProcessConfig) (map[string]ProcessConfig, error) {
	out := make(map[string]ProcessConfig, len(list))
	for i, p := range list {
		if p.Name == "" {
			return nil, fmt.Errorf("handler #%d: missing name", i+1)
		}
		if p.Command == "" {
			return nil, fmt.Errorf("handler %q: missing command", p.Name)
		}
		if _, dup := out[p.Name]; dup {
			return nil, fmt.Errorf("handler %q: defined twice", p.Name)
		}
		out[p.Name] = p
	}
	return out, nil
}
