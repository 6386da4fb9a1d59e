package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"codeberg.org/mutker/errschema/internal/config"
	"codeberg.org/mutker/errschema/internal/errors"
	"codeberg.org/mutker/errschema/internal/logger"
	"codeberg.org/mutker/errschema/schema"
	"codeberg.org/mutker/errschema/web"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

const usage = `Usage: errschema [flags] <command>

Commands:
  categories            List every error category with its default messages
  render <category>     Print a record as JSON
  mapping               Print the effective error type mapping

Flags:
`

type renderFlags struct {
	msg   string
	uiMsg string
	loc   []string
	input map[string]string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("errschema", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)

	var rf renderFlags
	fs.StringVar(&rf.msg, "msg", "", "Developer message")
	fs.StringVar(&rf.uiMsg, "ui-msg", "", "End-user message (web records)")
	fs.StringSliceVar(&rf.loc, "loc", nil, "Location segments; integers become indexes (web records)")
	fs.StringToStringVar(&rf.input, "input", nil, "Input echo as key=value pairs (web records)")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger.InitWriter(stderr, cfg.Level(), cfg.LogJSON)
	logger.Debug().Msg("Config loaded")

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	switch rest[0] {
	case "categories":
		err = printCategories(stdout)
	case "render":
		err = render(stdout, rest[1:], cfg, rf)
	case "mapping":
		err = printMapping(stdout, cfg)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		fs.Usage()
		return 2
	}

	if err != nil {
		logger.Error().Err(err).Str("command", rest[0]).Msg("Command failed")
		fmt.Fprintf(stderr, "errschema %s: %v\n", rest[0], err)
		return 1
	}
	return 0
}

func printCategories(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Category", "Message", "User message")
	for _, c := range schema.Categories() {
		if err := table.Append(string(c), c.DefaultMsg(), c.DefaultUIMsg()); err != nil {
			return err
		}
	}
	return table.Render()
}

func render(w io.Writer, args []string, cfg *config.Config, rf renderFlags) error {
	if len(args) != 1 {
		return errors.New().WithData(errors.ErrInvalidArgument, "render takes exactly one category")
	}
	c, err := schema.ParseCategory(args[0])
	if err != nil {
		return err
	}

	var out []byte
	if cfg.Web {
		out, err = renderWeb(c, cfg.Target, rf)
	} else {
		var s schema.ErrorSchema
		if s, err = schema.New(c, schema.WithMsg(rf.msg)); err == nil {
			out, err = s.JSON()
		}
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

func renderWeb(c schema.Category, target web.Target, rf renderFlags) ([]byte, error) {
	input := make(map[string]any, len(rf.input))
	for k, v := range rf.input {
		input[k] = v
	}

	s, err := web.New(c,
		web.WithMsg(rf.msg),
		web.WithUIMsg(rf.uiMsg),
		web.WithLoc(parseLoc(rf.loc)...),
		web.WithInput(input),
	)
	if err != nil {
		return nil, err
	}
	return s.TargetJSON(target)
}

// parseLoc reads "0" as an index and anything else as a key.
func parseLoc(values []string) web.Loc {
	loc := make(web.Loc, 0, len(values))
	for _, v := range values {
		if i, err := strconv.Atoi(v); err == nil {
			loc = append(loc, web.Index(i))
			continue
		}
		loc = append(loc, web.Key(v))
	}
	return loc
}

func printMapping(w io.Writer, cfg *config.Config) error {
	m := schema.DefaultMapper.Clone()
	if cfg.Web {
		m = web.NewMapper(schema.DefaultMapper)
	}
	if err := cfg.Apply(m); err != nil {
		return err
	}

	mapping := m.Mapping()
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	slices.Sort(names)

	table := tablewriter.NewWriter(w)
	table.Header("Error type", "Category")
	for _, name := range names {
		if err := table.Append(name, string(mapping[name])); err != nil {
			return err
		}
	}
	for _, r := range m.Rules() {
		if err := table.Append("rule:"+r.Name, string(r.Category)); err != nil {
			return err
		}
	}
	if err := table.Append("fallback", string(m.Fallback())); err != nil {
		return err
	}
	return table.Render()
}
