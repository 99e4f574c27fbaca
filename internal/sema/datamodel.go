package sema

import (
	"sdml/internal/ast"
)

// DataModel is the finished aggregate produced by a successful build: the
// grouped declarations plus the validated relation set. Constructed once,
// immutable thereafter, owned by the caller (code generator, query engine).
//
// The sorted accessors are a published guarantee: downstream consumers see
// a deterministic model order regardless of declaration order.
type DataModel struct {
	decls     *Declarations
	relations map[string]*RelationPair
}

// ModelsSorted returns all models in name-sorted order.
func (dm *DataModel) ModelsSorted() []*ast.ModelDecl {
	out := make([]*ast.ModelDecl, 0, len(dm.decls.Models))
	for _, name := range dm.decls.ModelNames() {
		out = append(out, dm.decls.Models[name])
	}
	return out
}

// EnumsSorted returns all enums in name-sorted order.
func (dm *DataModel) EnumsSorted() []*ast.EnumDecl {
	out := make([]*ast.EnumDecl, 0, len(dm.decls.Enums))
	for _, name := range dm.decls.EnumNames() {
		out = append(out, dm.decls.Enums[name])
	}
	return out
}

// ConfigsSorted returns all config blocks in name-sorted order.
func (dm *DataModel) ConfigsSorted() []*ast.ConfigDecl {
	out := make([]*ast.ConfigDecl, 0, len(dm.decls.Configs))
	for _, name := range dm.decls.ConfigNames() {
		out = append(out, dm.decls.Configs[name])
	}
	return out
}

// Relations returns the validated relation pairs keyed by relation name.
func (dm *DataModel) Relations() map[string]*RelationPair {
	return dm.relations
}

// Relation returns the pair for the given relation name, or nil.
func (dm *DataModel) Relation(name string) *RelationPair {
	return dm.relations[name]
}

// Model returns the model with the given name, or nil.
func (dm *DataModel) Model(name string) *ast.ModelDecl {
	return dm.decls.Models[name]
}

// Enum returns the enum with the given name, or nil.
func (dm *DataModel) Enum(name string) *ast.EnumDecl {
	return dm.decls.Enums[name]
}
