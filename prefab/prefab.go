// Package prefab loads entity templates from YAML and instantiates them
// into a World, per spec.md §6's prefab system. A prefab is a named,
// frozen set of component values; Instantiate copies that set onto a fresh
// entity.
package prefab

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/corvidlabs/sparsecs"
)

// ComponentValue is one component entry within a prefab definition: a
// registered name and its YAML-decoded payload, held as a raw node so the
// concrete Go type is only materialized once an Applier for that name is
// known.
type ComponentValue struct {
	Name string
	Node yaml.Node
}

// Definition is a single named prefab: an ordered list of component
// entries. Order is preserved from the source file so Instantiate applies
// components (and therefore fires Added signals) in declaration order.
type Definition struct {
	Name       string
	Components []ComponentValue
}

// Library is an immutable collection of prefab Definitions, keyed by name.
type Library struct {
	defs map[string]Definition
}

// Applier decodes one component's YAML node and attaches it to e in w.
// Registered per component name via RegisterApplier.
type Applier func(w *sparsecs.World, e sparsecs.Entity, node *yaml.Node) error

// Register adds an Applier for component type T under name, using T's
// default YAML decoding (yaml struct tags control field names, exactly as
// for any other Go value decoded with yaml.v3).
func Register[T any](appliers map[string]Applier, name string) {
	appliers[name] = func(w *sparsecs.World, e sparsecs.Entity, node *yaml.Node) error {
		var v T
		if err := node.Decode(&v); err != nil {
			return err
		}
		sparsecs.AddComponent[T](w, e, v)
		return nil
	}
}

type rawFile map[string]map[string]yaml.Node

// LoadLibrary parses a single YAML document of the form
//
//	PrefabName:
//	  ComponentName: {field: value, ...}
//
// into a Library. Component values are kept as raw YAML nodes; they aren't
// decoded until Instantiate resolves them against a set of Appliers.
func LoadLibrary(r io.Reader) (Library, sparsecs.Result) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Library{}, sparsecs.Failf(sparsecs.ErrInvalidPayload, "read prefab source: %v", err)
	}
	return parseLibrary(data)
}

func parseLibrary(data []byte) (Library, sparsecs.Result) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Library{}, sparsecs.Failf(sparsecs.ErrInvalidPayload, "parse prefab yaml: %v", err)
	}
	defs := make(map[string]Definition, len(raw))
	for name, comps := range raw {
		def := Definition{Name: name}
		for compName, node := range comps {
			def.Components = append(def.Components, ComponentValue{Name: compName, Node: node})
		}
		defs[name] = def
	}
	return Library{defs: defs}, sparsecs.Ok()
}

// LoadLibraryDir loads every *.yaml/*.yml file in dir concurrently (via
// errgroup, independent of the ECS's own ThreadPool — this is ordinary
// fan-out I/O, not in-world scheduling) and merges their prefabs into one
// Library. A duplicate prefab name across files keeps the definition from
// the file that comes last in directory-name order; callers that care about
// collisions should keep prefab names unique across their source files.
func LoadLibraryDir(dir string) (Library, sparsecs.Result) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Library{}, sparsecs.Failf(sparsecs.ErrInvalidPayload, "read prefab dir %q: %v", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	libs := make([]Library, len(paths))
	g := new(errgroup.Group)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			lib, res := parseLibrary(data)
			if !res.Success() {
				return res
			}
			libs[i] = lib
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Library{}, sparsecs.Failf(sparsecs.ErrInvalidPayload, "load prefab dir %q: %v", dir, err)
	}

	merged := make(map[string]Definition)
	for _, lib := range libs {
		for name, def := range lib.defs {
			merged[name] = def
		}
	}
	return Library{defs: merged}, sparsecs.Ok()
}

// Names returns every prefab name the Library holds.
func (l Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	return names
}

// Instantiate creates a fresh entity in w and applies every component in
// the named prefab, looking up each by name in appliers. A component name
// with no matching Applier is reported through reporter (nil is treated as
// a no-op reporter) but doesn't abort the rest of the prefab — the entity
// is still created with whatever components did resolve, matching the
// source's "reported, not fatal" contract for unknown component names.
func (l Library) Instantiate(name string, w *sparsecs.World, appliers map[string]Applier, reporter sparsecs.ErrorReporter) (sparsecs.Entity, sparsecs.Result) {
	def, ok := l.defs[name]
	if !ok {
		return sparsecs.Entity{}, sparsecs.Failf(sparsecs.ErrUnknownPrefab, "unknown prefab %q", name)
	}
	if reporter == nil {
		reporter = sparsecs.NopReporter{}
	}
	e := w.CreateEntity()
	for _, comp := range def.Components {
		applier, ok := appliers[comp.Name]
		if !ok {
			reporter.Report(sparsecs.Failf(sparsecs.ErrComponentNotRegistered, "prefab %q: component %q not registered", name, comp.Name))
			continue
		}
		node := comp.Node
		if err := applier(w, e, &node); err != nil {
			reporter.Report(sparsecs.Failf(sparsecs.ErrTypeMismatch, "prefab %q: decode %q: %v", name, comp.Name, err))
		}
	}
	return e, sparsecs.Ok()
}
