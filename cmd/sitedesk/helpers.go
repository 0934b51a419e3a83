// Shared helpers for sitedesk CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sitedesk/sitedesk/internal/memstore"
	"github.com/sitedesk/sitedesk/internal/sqlite"
	"github.com/sitedesk/sitedesk/pkg/controller"
	"github.com/sitedesk/sitedesk/pkg/entity"
	"github.com/sitedesk/sitedesk/pkg/fieldmap"
)

// loadRegistry returns the built-in entity set extended by the optional
// entities.yaml in the config directory.
func loadRegistry() (*entity.Registry, error) {
	reg := entity.Builtin()

	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	if err := reg.LoadFile(filepath.Join(configDir, entitiesFileName)); err != nil {
		return nil, err
	}
	return reg, nil
}

// session bundles everything a command needs to operate on one entity type.
type session struct {
	def     entity.Definition
	ctl     *controller.Controller
	backend *sqlite.Backend
}

// Close releases the storage backend, if any.
func (s *session) Close() {
	if s.backend != nil {
		_ = s.backend.Detach()
	}
}

// openSession resolves the entity definition and opens its store on the
// configured backend. The caller must defer Close.
func openSession(entityName string) (*session, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	def, err := reg.Get(entityName)
	if err != nil {
		return nil, fmt.Errorf("unknown entity %q (valid: %s)", entityName, strings.Join(reg.Names(), ", "))
	}

	s := &session{def: def}

	var store entity.Store
	switch configBackend {
	case backendMemory:
		store = memstore.New(def.Schema)
	default:
		// An unusable sqlite backend degrades to in-memory for this
		// invocation instead of aborting.
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "storage unavailable, using in-memory data:", err)
			store = memstore.New(def.Schema)
			break
		}
		s.backend = backend
		store = backend.Store(def.Name, def.Schema)
	}

	s.ctl = controller.New(def, store)
	return s, nil
}

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must detach it when done.
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	backend := sqlite.NewBackend()
	if err := backend.Attach(sqlite.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// parseFieldArgs turns key=value arguments into raw form inputs.
func parseFieldArgs(args []string) (map[string]string, error) {
	inputs := make(map[string]string, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid field %q (expected key=value)", arg)
		}
		inputs[parts[0]] = parts[1]
	}
	return inputs, nil
}

// printJSON writes v as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printRecordLine writes one record as a list row: id, title field, and the
// configured key fields.
func printRecordLine(def entity.Definition, rec entity.Record) {
	parts := []string{rec.ID()}
	if def.Display.TitleField != "" {
		if title := formatField(def, rec, def.Display.TitleField); title != "" {
			parts = append(parts, title)
		}
	}
	for _, key := range def.Display.KeyFields {
		if key == entity.FieldID || key == def.Display.TitleField {
			continue
		}
		if v := formatField(def, rec, key); v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", key, v))
		}
	}
	fmt.Println(strings.Join(parts, "  "))
}

// printRecordDetail writes every schema field of a record on its own line.
func printRecordDetail(def entity.Definition, rec entity.Record) {
	fmt.Println("id:", rec.ID())
	for _, f := range def.Fields {
		if _, ok := rec[f.Name]; !ok {
			continue
		}
		fmt.Printf("%s: %s\n", f.Name, formatField(def, rec, f.Name))
	}
	for _, stamp := range []string{entity.FieldCreatedAt, entity.FieldUpdatedAt} {
		if v, ok := rec[stamp].(string); ok && v != "" {
			fmt.Printf("%s: %s\n", stamp, v)
		}
	}
}

// formatField renders a record field through its type codec.
func formatField(def entity.Definition, rec entity.Record, name string) string {
	v, ok := rec[name]
	if !ok {
		return ""
	}
	if spec, ok := def.Schema.Spec(name); ok {
		return fieldmap.Format(spec, v)
	}
	return fmt.Sprintf("%v", v)
}

// printStatus writes the controller's status message, if any.
func printStatus(ctl *controller.Controller) {
	if st := ctl.Status(); st != nil {
		fmt.Println(st.Message)
	}
}

// printFieldErrors writes validation failures one per line.
func printFieldErrors(errs entity.FieldErrors) {
	for _, msg := range errs.Messages() {
		fmt.Println(" -", msg)
	}
}
