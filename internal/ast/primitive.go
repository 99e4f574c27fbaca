package ast

// PrimitiveKind identifies one of the built-in scalar types.
type PrimitiveKind uint8

const (
	PrimShortStr PrimitiveKind = iota // ShortStr
	PrimLongStr                       // LongStr
	PrimInt                           // Int
	PrimFloat                         // Float
	PrimBoolean                       // Boolean
)

var primitiveNames = map[string]PrimitiveKind{
	"ShortStr": PrimShortStr,
	"LongStr":  PrimLongStr,
	"Int":      PrimInt,
	"Float":    PrimFloat,
	"Boolean":  PrimBoolean,
}

// LookupPrimitive resolves a type spelling to a primitive kind.
// Spellings that are not primitives stay Unknown until semantic analysis.
func LookupPrimitive(text string) (PrimitiveKind, bool) {
	kind, ok := primitiveNames[text]
	return kind, ok
}

func (k PrimitiveKind) String() string {
	switch k {
	case PrimShortStr:
		return "ShortStr"
	case PrimLongStr:
		return "LongStr"
	case PrimInt:
		return "Int"
	case PrimFloat:
		return "Float"
	case PrimBoolean:
		return "Boolean"
	}
	return "unknown"
}
