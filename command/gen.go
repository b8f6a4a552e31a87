package command

import (
	"flag"

	"github.com/m4gshm/flag/flagenum"
	"github.com/m4gshm/gollections/collection/immutable"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/flatpath/logger"
	"github.com/m4gshm/flatpath/params"
)

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

func NewGen() *Command {
	const name = "gen"
	type api string
	const (
		marshalAPI   api = "marshal"
		unmarshalAPI api = "unmarshal"
	)
	var (
		flagSet  = flag.NewFlagSet(name, flag.ExitOnError)
		nolint   = params.Nolint(flagSet)
		excluded = params.MultiVal(flagSet, "exclude", []string{}, "exclude annotated fields matching the boolean expression; "+
			"variables: 'struct' (type name), 'field' (field name), 'path' (key list)")
	)
	allowedApis := slice.Of(marshalAPI, unmarshalAPI)
	apis, err := flagenum.Multiple(flagSet, "api", allowedApis, allowedApis, fromString[api], toString[api], "generated adapter methods")
	if err != nil {
		panic(err)
	}
	c := New(
		name, "generate nested JSON marshal/unmarshal adapters for flat annotated fields",
		flagSet,
		func(ctx *Context) error {
			m, err := ctx.Model()
			if err != nil {
				return err
			}
			if err := excludeFields(m, *excluded); err != nil {
				return err
			}
			selected := immutable.NewSet(*apis...)
			emitted, err := ctx.Generator.GenerateFlatView(m,
				selected.Contains(marshalAPI), selected.Contains(unmarshalAPI), *nolint)
			if err != nil {
				return err
			}
			if !emitted {
				logger.Infof("nothing to generate for %s", m.TypeName)
			}
			return nil
		},
	)
	c.manual = `Examples:
	` + params.Name + ` -type Event ` + name + `
	` + params.Name + ` -type Event ` + name + ` -api marshal -exclude 'field == "Legacy"'`
	return c
}
