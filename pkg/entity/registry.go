package entity

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition binds an entity name to its schema and presentation metadata.
// The optional Form overrides the schema-derived create/edit form.
type Definition struct {
	Name    string        `yaml:"name" json:"name"`
	Schema  `yaml:",inline"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Form    *FormConfig   `yaml:"form,omitempty" json:"form,omitempty"`
}

// Registry holds the entity definitions known to a session, in registration
// order. Definitions are immutable once registered.
type Registry struct {
	byName map[string]Definition
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Definition)}
}

// Register adds a definition. Returns ErrEmptyEntityName, ErrDuplicateEntity,
// or a schema well-formedness error.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return ErrEmptyEntityName
	}
	if _, exists := r.byName[def.Name]; exists {
		return ErrDuplicateEntity
	}
	if err := def.Schema.Check(); err != nil {
		return fmt.Errorf("entity %q: %w", def.Name, err)
	}
	r.byName[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// Get returns the definition registered under name.
// Returns ErrEntityNotFound if the name is unknown.
func (r *Registry) Get(name string) (Definition, error) {
	def, ok := r.byName[name]
	if !ok {
		return Definition{}, ErrEntityNotFound
	}
	return def, nil
}

// Names returns the registered entity names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// registryFile is the YAML shape of an entity definition file.
type registryFile struct {
	Entities []Definition `yaml:"entities"`
}

// Load reads entity definitions from YAML and registers each one.
// The expected shape is:
//
//	entities:
//	  - name: rfis
//	    id_prefix: RFI
//	    fields:
//	      - name: title
//	        type: string
//	        required: true
//	    display:
//	      title: RFI Management
//	      item_name: RFI
func (r *Registry) Load(src io.Reader) error {
	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read entity definitions: %w", err)
	}
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse entity definitions: %w", err)
	}
	for _, def := range file.Entities {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile registers the definitions found in a YAML file. A missing file is
// not an error; sessions without an entities.yaml run on the built-in set.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open entity definitions: %w", err)
	}
	defer f.Close()
	return r.Load(f)
}
