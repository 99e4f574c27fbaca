package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectType         Code = 2003
	SynExpectAttributeArg Code = 2004
	SynUnexpectedTopLevel Code = 2005
	SynExpectConfigValue  Code = 2006
	SynExpectEnumValue    Code = 2007

	// Семантические: структура
	SemaInfo                    Code = 3000
	SemaTypeDuplicateDefinition Code = 3001
	SemaTypeUndefined           Code = 3002

	// Семантические: связи между моделями
	SemaRelationAttributeMissing                  Code = 3100
	SemaRelationInvalidAttribute                  Code = 3101
	SemaRelationInvalidAttributeArg               Code = 3102
	SemaRelationScalarFieldNotFound               Code = 3103
	SemaRelationScalarFieldIsNotPrimitive         Code = 3104
	SemaRelationReferencedFieldNotFound           Code = 3105
	SemaRelationReferencedFieldNotScalar          Code = 3106
	SemaRelationReferencedFieldNotUnique          Code = 3107
	SemaRelationScalarAndReferencedFieldsMismatch Code = 3108
	SemaRelationScalarFieldIsUnique               Code = 3109
	SemaRelationScalarFieldNotUnique              Code = 3110
	SemaRelationInvalid                           Code = 3111
	SemaRelationPartial                           Code = 3112
	SemaRelationDuplicate                         Code = 3113

	// Семантические: атрибуты
	SemaAttributeUnknown      Code = 3200
	SemaAttributeIncompatible Code = 3201
	SemaAttributeInvalid      Code = 3202
	SemaAttributeArgInvalid   Code = 3203
	SemaEnumValueUndefined    Code = 3204

	// Семантические: инварианты модели
	SemaModelEmpty            Code = 3300
	SemaModelIdFieldMissing   Code = 3301
	SemaModelIdFieldDuplicate Code = 3302

	// I/O
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexer information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadNumber:          "Malformed numeric literal",

	SynInfo:               "Parser information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectType:         "Expected field type",
	SynExpectAttributeArg: "Malformed attribute argument",
	SynUnexpectedTopLevel: "Expected 'config', 'enum' or 'model'",
	SynExpectConfigValue:  "Expected literal config value",
	SynExpectEnumValue:    "Expected enum value identifier",

	SemaInfo:                    "Semantic information",
	SemaTypeDuplicateDefinition: "Duplicate top-level type definition",
	SemaTypeUndefined:           "Field type is neither an enum nor a model",

	SemaRelationAttributeMissing:                  "Relation field lacks an @relation attribute",
	SemaRelationInvalidAttribute:                  "Relation field carries an invalid attribute set",
	SemaRelationInvalidAttributeArg:               "Invalid @relation argument set",
	SemaRelationScalarFieldNotFound:               "Relation scalar field not found on model",
	SemaRelationScalarFieldIsNotPrimitive:         "Relation scalar field is not primitive",
	SemaRelationReferencedFieldNotFound:           "Referenced field not found on related model",
	SemaRelationReferencedFieldNotScalar:          "Referenced field is not scalar",
	SemaRelationReferencedFieldNotUnique:          "Referenced field is neither @id nor @unique",
	SemaRelationScalarAndReferencedFieldsMismatch: "Relation scalar and referenced field types differ",
	SemaRelationScalarFieldIsUnique:               "Relation scalar field must not be unique",
	SemaRelationScalarFieldNotUnique:              "Relation scalar field must be unique",
	SemaRelationInvalid:                           "Invalid relation",
	SemaRelationPartial:                           "Relation is missing its referencing side",
	SemaRelationDuplicate:                         "Relation side declared more than once",

	SemaAttributeUnknown:      "Unknown attribute",
	SemaAttributeIncompatible: "Attributes cannot be combined",
	SemaAttributeInvalid:      "Attribute not applicable to this field",
	SemaAttributeArgInvalid:   "Invalid attribute argument",
	SemaEnumValueUndefined:    "Value is not declared by the field's enum",

	SemaModelEmpty:            "Model declares no usable content",
	SemaModelIdFieldMissing:   "Model has no @id field",
	SemaModelIdFieldDuplicate: "Model has more than one @id field",

	IOLoadFileError: "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
