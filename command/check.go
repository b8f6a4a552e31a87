package command

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/m4gshm/flatpath/struc"
)

// NewCheck validates the annotations of a type without generating anything:
// same diagnostics as gen, no output file.
func NewCheck() *Command {
	const name = "check"
	var (
		flagSet = flag.NewFlagSet(name, flag.ExitOnError)
		verbose = flagSet.Bool("v", false, "dump the parsed model")
	)
	return New(
		name, "validate flat path annotations of a type without generating code",
		flagSet,
		func(ctx *Context) error {
			m, err := ctx.Model()
			if err != nil {
				return err
			}
			out := os.Stdout
			reportFields(out, m.TypeName, m.Fields)
			for _, v := range m.Variants {
				reportFields(out, v.Name, v.Fields)
			}
			if m.Annotated() == 0 {
				fmt.Fprintf(out, "%s: no flat annotated fields\n", m.TypeName)
			}
			if *verbose {
				fmt.Fprint(out, spew.Sdump(m))
			}
			return nil
		},
	)
}

func reportFields(out *os.File, typeName string, fields []struc.Field) {
	for _, f := range fields {
		if f.Flat != nil {
			fmt.Fprintf(out, "%s.%s -> %v\n", typeName, f.Name, f.Flat.Path)
		}
	}
}
