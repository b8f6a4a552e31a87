package params

import (
	"flag"
)

const (
	Name              = "flatpath"
	DefaultFileSuffix = "_" + Name + ".go"
	DefaultTag        = "flat"
)

func NewConfig(flagSet *flag.FlagSet) *Config {
	return &Config{
		Type:           flagSet.String("type", "", "type name; a struct or a union interface; must be set unless -config is used"),
		Tag:            flagSet.String("tag", DefaultTag, "struct tag key holding the key path"),
		BuildTags:      MultiVal(flagSet, "buildTag", []string{}, "include build tag"),
		Output:         flagSet.String("out", "", "output file name; default srcdir/<type>"+DefaultFileSuffix),
		PackagePattern: flagSet.String("package", ".", "used package"),
		ConfigFile:     flagSet.String("config", "", "yaml file listing types to process; overrides -type"),
		Debug:          flagSet.Bool("debug", false, "enable debug logging"),
	}
}

type Config struct {
	Type           *string
	Tag            *string
	BuildTags      *[]string
	Output         *string
	PackagePattern *string
	ConfigFile     *string
	Debug          *bool
}

// Jobs resolves the set of type generation jobs: either the single -type/-out
// pair or the contents of the -config file.
func (c *Config) Jobs() ([]Job, error) {
	if file := *c.ConfigFile; len(file) > 0 {
		return LoadFile(file)
	}
	return []Job{{Type: *c.Type, Out: *c.Output}}, nil
}

func Nolint(flagSet *flag.FlagSet) *bool {
	return flagSet.Bool("nolint", false, "add //nolint comment to generated code")
}
