package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Generator accumulates generated declarations for one output file. The head
// (file comment, package clause, imports) is rendered last, when the used
// import set is known, and nothing is written anywhere until the whole type
// generated successfully.
type Generator struct {
	Name       string
	OutPkgName string
	OutPkgPath string
	body       bytes.Buffer
	imports    map[string]string
}

func New(name, outPkgName, outPkgPath string) *Generator {
	return &Generator{
		Name:       name,
		OutPkgName: outPkgName,
		OutPkgPath: outPkgPath,
		imports:    map[string]string{},
	}
}

func (g *Generator) writeBody(format string, args ...interface{}) {
	fmt.Fprintf(&g.body, format, args...)
}

func (g *Generator) Empty() bool {
	return g.body.Len() == 0
}

// AddImport registers an import of the generated file. The name is kept only
// when it differs from the import path base.
func (g *Generator) AddImport(pkgPath, pkgName string) {
	g.imports[pkgPath] = pkgName
}

// TypeString renders a type relative to the output package, registering the
// imports the rendered expression needs.
func (g *Generator) TypeString(typ types.Type) string {
	return types.TypeString(typ, func(p *types.Package) string {
		if p.Path() == g.OutPkgPath {
			return ""
		}
		g.imports[p.Path()] = p.Name()
		return p.Name()
	})
}

func (g *Generator) FormatSrc() ([]byte, error) {
	src, err := g.Src()
	if err != nil {
		return src, err
	}
	fmtSrc, err := format.Source(src)
	if err != nil {
		return src, errors.Wrap(err, "format generated src")
	}
	return fmtSrc, nil
}

func (g *Generator) Src() ([]byte, error) {
	out := bytes.Buffer{}
	if _, err := out.Write(g.head()); err != nil {
		return nil, err
	}
	if _, err := out.Write(g.body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (g *Generator) head() []byte {
	head := bytes.Buffer{}
	fmt.Fprintf(&head, "// Code generated by '%s %s'; DO NOT EDIT.\n\n", g.Name, strings.Join(os.Args[1:], " "))
	fmt.Fprintf(&head, "package %s\n\n", g.OutPkgName)

	if len(g.imports) > 0 {
		paths := make([]string, 0, len(g.imports))
		for pkgPath := range g.imports {
			paths = append(paths, pkgPath)
		}
		sort.Strings(paths)
		fmt.Fprintf(&head, "import (\n")
		for _, pkgPath := range paths {
			if name := g.imports[pkgPath]; len(name) > 0 && name != path.Base(pkgPath) {
				fmt.Fprintf(&head, "\t%s %q\n", name, pkgPath)
			} else {
				fmt.Fprintf(&head, "\t%q\n", pkgPath)
			}
		}
		fmt.Fprintf(&head, ")\n\n")
	}
	return head.Bytes()
}
