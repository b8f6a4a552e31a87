package main

import (
	"flag"
	"fmt"
	"go/token"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/m4gshm/flatpath/command"
	"github.com/m4gshm/flatpath/generator"
	"github.com/m4gshm/flatpath/logger"
	"github.com/m4gshm/flatpath/params"
	"github.com/m4gshm/flatpath/struc"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of "+params.Name+":\n")
	fmt.Fprintf(os.Stderr, "\t"+params.Name+" [flags] [command] [command flags]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	command.PrintUsage()
}

func main() {
	log.SetPrefix(params.Name + ": ")

	config := params.NewConfig(flag.CommandLine)

	flag.Usage = usage
	flag.Parse()
	logger.Init(*config.Debug)

	args := flag.Args()
	cmdName := "gen"
	if len(args) > 0 {
		if command.Get(args[0]) == nil {
			log.Printf("unknown command '%s', supported: %s", args[0], strings.Join(command.Supported(), ", "))
			flag.Usage()
			os.Exit(2)
		}
		cmdName = args[0]
		args = args[1:]
	}
	cmd := command.Get(cmdName)
	if rest, err := cmd.Parse(args); err != nil {
		log.Fatal(err)
	} else if len(rest) > 0 {
		log.Printf("unexpected args %v", rest)
		cmd.PrintUsage()
		os.Exit(2)
	}

	fileSet := token.NewFileSet()
	pkg, err := struc.ExtractPackage(fileSet, *config.BuildTags, *config.PackagePattern)
	if err != nil {
		log.Fatal(err)
	}

	jobs, err := config.Jobs()
	if err != nil {
		log.Fatal(err)
	}

	logger.Debugw("using", "package", pkg.Name, "jobs", jobs)

	for _, job := range jobs {
		if len(job.Type) == 0 {
			log.Print("no type arg")
			flag.Usage()
			os.Exit(2)
		}
		g := generator.New(params.Name, pkg.Name, pkg.Types.Path())
		ctx := &command.Context{
			Config:    config,
			Generator: g,
			Pkg:       pkg,
			FileSet:   fileSet,
			TypeName:  job.Type,
		}
		if err := cmd.Run(ctx); err != nil {
			log.Fatalf("%s of %s: %s", cmdName, job.Type, err)
		}
		if g.Empty() {
			continue
		}

		outputName := job.Out
		if len(outputName) == 0 {
			outputName = filepath.Join(struc.Dir(pkg), strings.ToLower(job.Type)+params.DefaultFileSuffix)
		}
		src, fmtErr := g.FormatSrc()

		const userWriteOtherRead = fs.FileMode(0644)
		if writeErr := os.WriteFile(outputName, src, userWriteOtherRead); writeErr != nil {
			log.Fatalf("writing output: %s", writeErr)
		} else if fmtErr != nil {
			log.Fatalf("go src code formatting error: %s", fmtErr)
		}
		logger.Debugf("generated %s", outputName)
	}
}
