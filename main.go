package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"

	"github.com/projecteru2/memsize/version"
)

var (
	configPath string
	logLevel   string
)

func newApp() *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprint(c.App.Writer, version.String())
	}

	app := cli.NewApp()
	app.Name = version.NAME
	app.Usage = "parse and check memory size options"
	app.Version = version.VERSION
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Value:       "",
			Usage:       "config file path, in yaml, json or toml",
			Destination: &configPath,
			EnvVars:     []string{"MEMSIZE_CONFIG_PATH"},
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "override log level in config",
			Destination: &logLevel,
			EnvVars:     []string{"MEMSIZE_LOG_LEVEL"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:      "parse",
			Usage:     "parse memory sizes as one integer type",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Value:   "uint64",
					Usage:   "int32, uint32, int64 or uint64",
				},
			},
			Action: parse,
		},
		{
			Name:      "check",
			Usage:     "check option files",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "metrics-textfile",
					Usage: "write prometheus metrics to this file, overrides config",
				},
			},
			Action: check,
		},
		{
			Name:  "options",
			Usage: "list known options",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "set",
					Usage: "apply -XX:Name=Value before listing, can be repeated",
				},
			},
			Action: listOptions,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
