package app

import (
	"io"

	"github.com/leg100/imbinder/internal/binder"
	"gopkg.in/yaml.v3"
)

type binding struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
	Code int    `yaml:"code"`
}

// printBindings writes the binding of each action as YAML.
func printBindings(w io.Writer, registry *binder.Registry) error {
	actions := registry.Actions()
	bindings := make([]binding, len(actions))
	for i, a := range actions {
		bindings[i] = binding{Name: a.Name, Key: a.Key.String(), Code: int(a.Key)}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bindings); err != nil {
		return err
	}
	return enc.Close()
}
