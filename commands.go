package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sanity-io/litter"
	cli "github.com/urfave/cli/v2"

	"github.com/projecteru2/memsize/checker"
	"github.com/projecteru2/memsize/log"
	"github.com/projecteru2/memsize/memsize"
	"github.com/projecteru2/memsize/metrics"
	"github.com/projecteru2/memsize/options"
	"github.com/projecteru2/memsize/types"
	"github.com/projecteru2/memsize/utils"
)

func setup(c *cli.Context) (types.Config, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return config, err
	}
	if logLevel != "" {
		config.Log.Level = logLevel
	}
	if err := log.SetupLog(c.Context, &config.Log, config.SentryDSN); err != nil {
		return config, err
	}
	log.WithFunc("main.setup").Debugf(c.Context, "config loaded: %s", litter.Sdump(config))
	return config, nil
}

func catalog(config types.Config) (*options.Set, error) {
	set := options.Catalog()
	for _, spec := range config.Options {
		if err := options.DefineSpec(set, spec); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func newTable(c *cli.Context, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(c.App.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func describe[T memsize.Integer](t table.Writer, value string) bool {
	n, err := memsize.Parse[T](value)
	if err != nil {
		t.AppendRow(table.Row{value, "-", "-", "-", memsize.Reason(err)})
		return false
	}
	t.AppendRow(table.Row{value, fmt.Sprint(n), memsize.Format(n), utils.HumanSize(n), "ok"})
	return true
}

func parse(c *cli.Context) error {
	if _, err := setup(c); err != nil {
		return err
	}
	if c.NArg() == 0 {
		return cli.Exit("no value to parse", 2)
	}
	kind, err := options.ParseKind(c.String("type"))
	if err != nil {
		return err
	}

	t := newTable(c, table.Row{"Input", kind.String(), "Canonical", "Human", "Result"})
	failed := 0
	for _, value := range c.Args().Slice() {
		var ok bool
		switch kind {
		case options.Int32:
			ok = describe[int32](t, value)
		case options.Uint32:
			ok = describe[uint32](t, value)
		case options.Int64:
			ok = describe[int64](t, value)
		default:
			ok = describe[uint64](t, value)
		}
		if !ok {
			failed++
		}
	}
	t.Render()

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d values rejected", failed, c.NArg()), 1)
	}
	return nil
}

func check(c *cli.Context) error {
	config, err := setup(c)
	if err != nil {
		return err
	}
	defer log.SentryDefer()
	logger := log.WithFunc("main.check")

	set, err := catalog(config)
	if err != nil {
		return err
	}
	m, err := metrics.New(config)
	if err != nil {
		return err
	}
	defer m.Close()

	paths, err := utils.ExpandPaths(c.Args().Slice())
	if err != nil {
		return err
	}
	reports, err := checker.New(set, config, m).Check(c.Context, paths)
	if errors.Is(err, types.ErrNoFiles) {
		return cli.Exit(err.Error(), 2)
	}
	if err != nil {
		return err
	}

	t := newTable(c, table.Row{"File", "Line", "Option", "Value", "Result"})
	failed := 0
	for _, report := range reports {
		failed += report.Failed()
		if report.Err != nil {
			t.AppendRow(table.Row{report.File, "-", "-", "-", report.Err.Error()})
			continue
		}
		for _, res := range report.Results {
			result := res.Canonical
			if res.Err != nil {
				result = options.Reason(res.Err)
			}
			t.AppendRow(table.Row{res.File, res.Line, res.Name, res.Value, result})
		}
	}
	t.Render()

	textfile := c.String("metrics-textfile")
	if textfile == "" {
		textfile = config.MetricsTextfile
	}
	if textfile != "" {
		if err := m.WriteTextfile(textfile); err != nil {
			logger.Error(c.Context, err, "write metrics textfile failed")
			return err
		}
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d assignments failed in %d files", failed, len(reports)), 1)
	}
	logger.Infof(c.Context, "%d files checked", len(reports))
	return nil
}

func listOptions(c *cli.Context) error {
	config, err := setup(c)
	if err != nil {
		return err
	}
	set, err := catalog(config)
	if err != nil {
		return err
	}
	if err := set.ParseArgs(c.StringSlice("set")); err != nil {
		return err
	}

	t := newTable(c, table.Row{"Name", "Type", "Value", "Default", "Min", "Max", "Usage"})
	set.VisitAll(func(o options.Option) {
		value := o.String()
		if !o.IsDefault() {
			value += " *"
		}
		lo, hi := o.Range()
		t.AppendRow(table.Row{o.Name(), o.Kind().String(), value, o.Default(), lo, hi, o.Usage()})
	})
	t.Render()
	return nil
}
