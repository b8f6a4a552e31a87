package generator

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// FieldIdent converts a field name to the CamelCase fragment used inside
// generated link identifiers.
func FieldIdent(fieldName string) string {
	return strcase.ToCamel(fieldName)
}

// ReceiverVar picks the conventional receiver variable for a type name.
func ReceiverVar(typeName string) string {
	if len(typeName) == 0 {
		return "v"
	}
	return strings.ToLower(typeName[:1])
}

func NoLint(nolint bool) string {
	if nolint {
		return " //nolint"
	}
	return ""
}
