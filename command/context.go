package command

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/flatpath/generator"
	"github.com/m4gshm/flatpath/params"
	"github.com/m4gshm/flatpath/struc"
	"github.com/m4gshm/flatpath/use"
)

// Context carries the state of one generation job: the loaded package, the
// type under processing and the generator collecting the output.
type Context struct {
	Config    *params.Config
	Generator *generator.Generator
	Pkg       *packages.Package
	FileSet   *token.FileSet
	TypeName  string
	model     *struc.Model
}

func (c *Context) Model() (*struc.Model, error) {
	if m := c.model; m != nil {
		return m, nil
	}
	if len(c.TypeName) == 0 {
		return nil, use.Err("no type arg")
	}
	model, err := struc.New(c.Pkg.Types, c.FileSet, c.TypeName, *c.Config.Tag)
	if err != nil {
		return nil, err
	} else if model == nil {
		return nil, use.Err(fmt.Sprintf("type not found, %s", c.TypeName))
	}
	c.model = model
	return model, nil
}
