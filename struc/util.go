package struc

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/flatpath/logger"
)

const packageMode = packages.NeedSyntax | packages.NeedModule | packages.NeedName |
	packages.NeedTypesInfo | packages.NeedTypes | packages.NeedFiles

// ExtractPackage loads exactly one package matching pattern.
func ExtractPackage(fileSet *token.FileSet, buildTags []string, pattern string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Fset:       fileSet,
		Mode:       packageMode,
		BuildFlags: buildTagsArg(buildTags),
		Logf:       func(format string, args ...interface{}) { logger.Debugf("packagesLoad: "+format, args...) },
	}, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages found by pattern '%s'", len(pkgs), pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		logger.Debugf("package error; %v", pkg.Errors[0])
	}
	return pkg, nil
}

// Dir returns the source directory of a loaded package, generated files are
// placed next to the type they extend.
func Dir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	return "."
}

func buildTagsArg(buildTags []string) []string {
	if len(buildTags) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("-tags=%s", strings.Join(buildTags, " "))}
}
