package command

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/m4gshm/flatpath/logger"
	"github.com/m4gshm/flatpath/struc"
)

// excludeFields drops the flattening annotation of every field matching one
// of the exclusion expressions, leaving the field untouched in the output.
func excludeFields(model *struc.Model, expressions []string) error {
	if len(expressions) == 0 {
		return nil
	}
	programs := make([]*vm.Program, len(expressions))
	for i, src := range expressions {
		program, err := expr.Compile(src, expr.AsBool())
		if err != nil {
			return errors.Wrapf(err, "compile exclude expression '%s'", src)
		}
		programs[i] = program
	}
	if err := applyExclusions(model.Fields, model.TypeName, programs, expressions); err != nil {
		return err
	}
	for v := range model.Variants {
		if err := applyExclusions(model.Variants[v].Fields, model.Variants[v].Name, programs, expressions); err != nil {
			return err
		}
	}
	return nil
}

func applyExclusions(fields []struc.Field, typeName string, programs []*vm.Program, expressions []string) error {
	for i := range fields {
		if fields[i].Flat == nil {
			continue
		}
		env := map[string]interface{}{
			"struct": typeName,
			"field":  fields[i].Name,
			"path":   fields[i].Flat.Path,
		}
		for p, program := range programs {
			out, err := expr.Run(program, env)
			if err != nil {
				return errors.Wrapf(err, "run exclude expression '%s' on %s.%s", expressions[p], typeName, fields[i].Name)
			}
			if out.(bool) {
				logger.Debugf("field %s.%s excluded by '%s'", typeName, fields[i].Name, expressions[p])
				fields[i].Flat = nil
				break
			}
		}
	}
	return nil
}
