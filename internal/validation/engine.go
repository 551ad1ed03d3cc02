package validation

import (
	"fmt"
)

// Engine validates form data against a rule catalog and per-module tables.
// All state is read-only after construction, so an Engine is safe for
// concurrent use.
type Engine struct {
	catalog *Catalog
	modules map[Module]*ModuleSpec
}

// NewEngine creates an engine and checks that every field mapping refers to
// a rule present in the catalog.
func NewEngine(catalog *Catalog, modules map[Module]*ModuleSpec) (*Engine, error) {
	for m, spec := range modules {
		for _, fr := range spec.FieldRules {
			if _, ok := catalog.GetRule(fr.Rule); !ok {
				return nil, fmt.Errorf("module %s field %s: %w: %s", m, fr.Field, ErrUnknownRule, fr.Rule)
			}
		}
	}
	return &Engine{catalog: catalog, modules: modules}, nil
}

// NewDefaultEngine returns an engine over the built-in catalog and module
// tables. It panics if the built-in tables are inconsistent.
func NewDefaultEngine() *Engine {
	e, err := NewEngine(DefaultCatalog(), DefaultModules())
	if err != nil {
		panic(err)
	}
	return e
}

// Catalog returns the engine's rule catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Spec returns the table for a module, or nil if the engine has none.
func (e *Engine) Spec(m Module) *ModuleSpec {
	return e.modules[m]
}
