package ast

import (
	"slices"
)

// Canonical attribute names.
const (
	AttrID       = "id"
	AttrUnique   = "unique"
	AttrDefault  = "default"
	AttrRelation = "relation"
)

// ShapeMask describes the field shapes an attribute may be attached to.
type ShapeMask uint8

const (
	ShapeNone ShapeMask = 0
	// ShapeScalar allows primitive- or enum-typed, non-array fields.
	ShapeScalar ShapeMask = 1 << iota
	// ShapeNonScalar allows model-typed (relation) fields.
	ShapeNonScalar
	// ShapeShortStr additionally restricts the field to the ShortStr primitive.
	ShapeShortStr
	// ShapeRequired forbids optional fields.
	ShapeRequired
)

// Has reports whether the mask contains the given bit.
func (m ShapeMask) Has(bit ShapeMask) bool {
	return m&bit != 0
}

// AttrSpec is the static descriptor of a known field attribute: which other
// attributes may co-occur with it, which argument shapes are legal, and
// which field shapes it applies to.
type AttrSpec struct {
	Name string

	// Compatible lists the attribute names that may co-occur on the same
	// field when this attribute comes first.
	Compatible []string

	// Funcs is the allow-list of function-call argument names
	// (e.g. auto for @default(auto())). Empty means no function arguments.
	Funcs []string

	// IdentArgs permits a bare identifier argument, validated against the
	// field's type: the enum's declared values for enum fields, true/false
	// for Boolean fields.
	IdentArgs bool

	// NamedSets lists the legal named-argument name sets. An attribute with
	// a named-argument list must match exactly one of them.
	NamedSets [][]string

	// Shape restricts the fields this attribute may be attached to.
	Shape ShapeMask
}

// CompatibleWith reports whether other may co-occur with this attribute.
func (spec AttrSpec) CompatibleWith(other string) bool {
	return slices.Contains(spec.Compatible, other)
}

// AllowsFunc reports whether the function-call argument name is permitted.
func (spec AttrSpec) AllowsFunc(name string) bool {
	return slices.Contains(spec.Funcs, name)
}

var attrRegistry = map[string]AttrSpec{
	AttrID: {
		Name:       AttrID,
		Compatible: []string{AttrDefault},
		Shape:      ShapeScalar | ShapeShortStr | ShapeRequired,
	},
	AttrUnique: {
		Name:       AttrUnique,
		Compatible: []string{AttrDefault},
		Shape:      ShapeScalar | ShapeRequired,
	},
	AttrDefault: {
		Name:       AttrDefault,
		Compatible: []string{AttrID, AttrUnique},
		Funcs:      []string{"auto", "now"},
		IdentArgs:  true,
		Shape:      ShapeScalar,
	},
	AttrRelation: {
		Name: AttrRelation,
		NamedSets: [][]string{
			{"name"},
			{"name", "field", "references"},
		},
		Shape: ShapeNonScalar,
	},
}

// LookupAttr returns metadata for the given attribute name.
func LookupAttr(name string) (AttrSpec, bool) {
	if name == "" {
		return AttrSpec{}, false
	}
	spec, ok := attrRegistry[name]
	return spec, ok
}

// AttrSpecs returns a stable slice of all registered attribute
// specifications sorted by name.
func AttrSpecs() []AttrSpec {
	names := make([]string, 0, len(attrRegistry))
	for name := range attrRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	result := make([]AttrSpec, 0, len(names))
	for _, name := range names {
		result = append(result, attrRegistry[name])
	}
	return result
}
