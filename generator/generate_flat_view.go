package generator

import (
	"strconv"
	"strings"

	"github.com/m4gshm/gollections/op"
	"github.com/m4gshm/gollections/slice"
	"github.com/pkg/errors"

	"github.com/m4gshm/flatpath/struc"
	"github.com/m4gshm/flatpath/unique"
)

// GenerateFlatView emits, for a record or for every variant of a union, the
// wrapper chain of one single-field link type per nesting level, a layout
// identical view struct and the MarshalJSON/UnmarshalJSON adapters
// redirecting the annotated fields through their key paths. Returns false
// when the type carries nothing to generate.
func (g *Generator) GenerateFlatView(model *struc.Model, marshal, unmarshal, nolint bool) (bool, error) {
	if !marshal && !unmarshal {
		return false, nil
	}
	names := unique.NewNames(model.ScopeNames...)
	switch model.Shape {
	case struc.Record:
		return g.generateTypeView(names, model.TypeName, model.TypeName, model.Fields, marshal, unmarshal, nolint), nil
	case struc.Union:
		emitted := false
		for _, variant := range model.Variants {
			e := g.generateTypeView(names, model.TypeName+variant.Name, variant.Name, variant.Fields, marshal, unmarshal, nolint)
			emitted = emitted || e
		}
		return emitted, nil
	}
	return false, errors.Errorf("unexpected model shape %v of %s", model.Shape, model.TypeName)
}

// generateTypeView handles one record or union variant. The namespace keeps
// link and view identifiers of different variants apart even when they
// declare identical paths.
func (g *Generator) generateTypeView(names *unique.Names, namespace, targetType string, fields []struc.Field, marshal, unmarshal, nolint bool) bool {
	annotated := slice.Filter(fields, func(f struc.Field) bool { return f.Flat != nil })
	if len(annotated) == 0 {
		return false
	}

	g.AddImport("encoding/json", "json")
	g.AddImport("unsafe", "unsafe")

	prefix := "flat" + namespace
	viewName := names.Get(prefix + "View")

	links := map[struc.FieldName][]string{}
	for _, f := range annotated {
		fieldLinks := []string{""} // no link for the first key, it renames the view field
		for i := 1; i < len(f.Flat.Path); i++ {
			fieldLinks = append(fieldLinks, names.Get(prefix+FieldIdent(f.Name)+"L"+strconv.Itoa(i)))
		}
		links[f.Name] = fieldLinks
	}

	for _, f := range annotated {
		path := f.Flat.Path
		for i := 1; i < len(path); i++ {
			last := i == len(path)-1
			inner := op.IfElse(last, g.TypeString(f.Typ), fieldLink(links, f.Name, i+1))
			tagValue := op.IfElse(last, leafTagValue(f.Flat), path[i])
			g.writeBody("type %s struct {\n\tF %s `json:%q`\n}\n\n", fieldLink(links, f.Name, i), inner, tagValue)
		}
	}

	g.writeBody("// %s is the serialized shape of %s: identical in-memory layout,\n", viewName, targetType)
	g.writeBody("// flattened fields redirected through their key paths. Implementation detail.\n")
	g.writeBody("type %s struct {\n", viewName)
	for _, f := range fields {
		if f.Flat == nil {
			tag := op.IfElse(len(f.Tag) > 0, " `"+f.Tag+"`", "")
			if f.Embedded {
				g.writeBody("\t%s%s\n", g.TypeString(f.Typ), tag)
			} else {
				g.writeBody("\t%s %s%s\n", f.Name, g.TypeString(f.Typ), tag)
			}
			continue
		}
		single := len(f.Flat.Path) == 1
		headType := op.IfElse(single, g.TypeString(f.Typ), fieldLink(links, f.Name, 1))
		tagValue := op.IfElse(single, leafTagValue(f.Flat), f.Flat.Path[0])
		tag := "json:" + strconv.Quote(tagValue)
		if len(f.Flat.Rest) > 0 {
			tag += " " + f.Flat.Rest
		}
		g.writeBody("\t%s %s `%s`\n", f.Name, headType, tag)
	}
	g.writeBody("}\n\n")

	g.writeBody("// the adapters reinterpret *%s as *%s, valid only while\n", targetType, viewName)
	g.writeBody("// both layouts stay byte-identical, which these subtractions check\n")
	g.writeBody("const _ = unsafe.Sizeof(%s{}) - unsafe.Sizeof(%s{})\n", targetType, viewName)
	g.writeBody("const _ = unsafe.Sizeof(%s{}) - unsafe.Sizeof(%s{})\n\n", viewName, targetType)

	receiver := ReceiverVar(targetType)
	if marshal {
		g.writeBody("// MarshalJSON implements json.Marshaler, nesting the flattened fields of %s.\n", targetType)
		g.writeBody("func (%s %s) MarshalJSON() ([]byte, error) {%s\n", receiver, targetType, NoLint(nolint))
		g.writeBody("\treturn json.Marshal((*%s)(unsafe.Pointer(&%s)))\n}\n\n", viewName, receiver)
	}
	if unmarshal {
		g.writeBody("// UnmarshalJSON implements json.Unmarshaler, the counterpart of MarshalJSON.\n")
		g.writeBody("func (%s *%s) UnmarshalJSON(data []byte) error {%s\n", receiver, targetType, NoLint(nolint))
		g.writeBody("\treturn json.Unmarshal(data, (*%s)(unsafe.Pointer(%s)))\n}\n\n", viewName, receiver)
	}
	return true
}

func fieldLink(links map[struc.FieldName][]string, field struc.FieldName, i int) string {
	return links[field][i]
}

/// leafTagValue renders the json tag of the innermost link: the pre-existing
// rename of the field overrides the last path key, options are carried as is.
func leafTagValue(flat *struc.FlatTag) string {
	key := op.IfElse(len(flat.LeafName) > 0, flat.LeafName, flat.Path[len(flat.Path)-1])
	if len(flat.LeafOpts) > 0 {
		key += "," + strings.Join(flat.LeafOpts, ",")
	}
	return key
}
