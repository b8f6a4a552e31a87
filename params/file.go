package params

import (
	"bytes"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Job is one type generation request, the unit the driver processes to
// completion before taking the next one.
type Job struct {
	Type string `yaml:"type"`
	Out  string `yaml:"out,omitempty"`
}

type fileConfig struct {
	Types []Job `yaml:"types"`
}

func LoadFile(name string) ([]Job, error) {
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", name)
	}
	var c fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(content), yaml.DisallowUnknownField())
	if err := decoder.Decode(&c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", name)
	}
	if len(c.Types) == 0 {
		return nil, errors.Errorf("config %s: no types listed", name)
	}
	for _, job := range c.Types {
		if len(job.Type) == 0 {
			return nil, errors.Errorf("config %s: type entry without a name", name)
		}
	}
	return c.Types, nil
}
