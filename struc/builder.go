package struc

import (
	"go/token"
	"go/types"

	"github.com/m4gshm/flatpath/logger"
)

// New builds the model of the type typeName declared in pkg, dispatching on
// its shape: struct types become records, interface types become unions whose
// variants are the package's struct types implementing them. Returns nil when
// the type is not declared in the package.
func New(pkg *types.Package, fileSet *token.FileSet, typeName string, tagKey TagName) (*Model, error) {
	lookup := pkg.Scope().Lookup(typeName)
	if lookup == nil {
		logger.Debugf("no type '%s' in package '%s'", typeName, pkg.Name())
		return nil, nil
	}
	obj, ok := lookup.(*types.TypeName)
	pos := fileSet.Position(lookup.Pos())
	if !ok {
		return nil, Diag(UnsupportedShape, pos, "%s is not a type", typeName)
	}
	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		return nil, Diag(UnsupportedShape, pos, "%s is not a named type", typeName)
	}
	if named.TypeParams().Len() > 0 {
		return nil, Diag(UnsupportedShape, pos, "generic type %s is not supported", typeName)
	}

	model := &Model{
		TypeName:   typeName,
		Package:    Package{Name: pkg.Name(), Path: pkg.Path()},
		FilePath:   pos.Filename,
		Typ:        named,
		ScopeNames: pkg.Scope().Names(),
	}

	switch underlying := named.Underlying().(type) {
	case *types.Struct:
		model.Shape = Record
		fields, err := buildFields(underlying, fileSet, tagKey)
		if err != nil {
			return nil, err
		}
		model.Fields = fields
	case *types.Interface:
		model.Shape = Union
		variants, err := buildVariants(pkg, named, underlying, fileSet, tagKey)
		if err != nil {
			return nil, err
		}
		model.Variants = variants
	default:
		return nil, Diag(UnsupportedShape, pos, "%s flattening can only be applied to struct or interface types, %s is %s",
			tagKey, typeName, underlying)
	}
	return model, nil
}

func buildFields(structType *types.Struct, fileSet *token.FileSet, tagKey TagName) ([]Field, error) {
	fields := make([]Field, 0, structType.NumFields())
	for i := 0; i < structType.NumFields(); i++ {
		fieldVar := structType.Field(i)
		pos := fileSet.Position(fieldVar.Pos())
		flat, err := ParseFlatTag(tagKey, structType.Tag(i), pos)
		if err != nil {
			return nil, err
		}
		if flat != nil {
			if fieldVar.Embedded() {
				return nil, Diag(UnnamedFieldNotSupported, pos, "unable to apply %s to embedded fields", tagKey)
			}
			if !fieldVar.Exported() {
				logger.Warnf("%s: field %s is unexported, encoding/json will not see it", pos, fieldVar.Name())
			}
		}
		fields = append(fields, Field{
			Name:     fieldVar.Name(),
			Typ:      fieldVar.Type(),
			Embedded: fieldVar.Embedded(),
			Tag:      structType.Tag(i),
			Pos:      pos,
			Flat:     flat,
		})
	}
	return fields, nil
}

func buildVariants(pkg *types.Package, union *types.Named, iface *types.Interface, fileSet *token.FileSet, tagKey TagName) ([]Variant, error) {
	if iface.NumMethods() == 0 {
		logger.Warnf("union %s has no methods, every struct of package %s becomes a variant", union.Obj().Name(), pkg.Name())
	}
	variants := []Variant{}
	for _, name := range pkg.Scope().Names() {
		obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}
		named, ok := types.Unalias(obj.Type()).(*types.Named)
		if !ok || named == union {
			continue
		}
		structType, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		if !types.Implements(named, iface) && !types.Implements(types.NewPointer(named), iface) {
			continue
		}
		fields, err := buildFields(structType, fileSet, tagKey)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			// unit-like variant, nothing to redirect
			continue
		}
		variants = append(variants, Variant{Name: name, Typ: named, Fields: fields})
	}
	return variants, nil
}
