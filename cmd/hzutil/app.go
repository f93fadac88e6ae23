// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-hanzidata/cache"
	"github.com/ianlewis/go-hanzidata/datasets"
	"github.com/ianlewis/go-hanzidata/source"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrHzutil is a parent error for all command errors.
var ErrHzutil = errors.New("hzutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrHzutil)

// ErrUnknownDataset indicates a dataset name with no definition.
var ErrUnknownDataset = fmt.Errorf("%w: unknown dataset", ErrHzutil)

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newHzutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Fetch and normalize Chinese word and character datasets.",
		Description: strings.Join([]string{
			"Chinese reference data utility written in Go.",
			"http://github.com/ianlewis/go-hanzidata",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				Value:   defaultConfigPath(),
			},
			&cli.StringFlag{
				Name:  "cache-path",
				Usage: "store cached data in `FILE`",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "disable the persistent cache",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "print debug logging",
				Aliases: []string{"v"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 Ian Lewis",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			fetchCommand,
			showCommand,
		},
	}
}

// defaultConfigPath returns the default configuration file location under
// the user's configuration directory.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hanzidata", "config.yaml")
}

// appEnv holds state shared by the commands: the loaded configuration and
// the persistent cache.
type appEnv struct {
	config *config
	cache  cache.Cache
	logger *slog.Logger
}

// newAppEnv loads the configuration and opens the cache according to the
// app-level flags. A cache that cannot be opened degrades to the no-op
// cache so that fetching still works.
func newAppEnv(c *cli.Context) (*appEnv, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if c.Bool("verbose") {
		logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	env := &appEnv{
		config: cfg,
		cache:  cache.Null{},
		logger: logger,
	}
	if c.Bool("no-cache") {
		return env, nil
	}

	path := c.String("cache-path")
	if path == "" {
		path = cfg.CachePath
	}
	if path == "" {
		path, err = cache.DefaultPath()
		if err != nil {
			logger.Warn("cache disabled", "err", err)
			return env, nil
		}
	}
	store, err := cache.Open(path)
	if err != nil {
		logger.Warn("cache disabled", "err", err)
		return env, nil
	}
	env.cache = store
	return env, nil
}

// Close releases the cache.
func (env *appEnv) Close() error {
	//nolint:wrapcheck // cache errors carry context
	return env.cache.Close()
}

// sourceOptions returns the source options implied by the configuration.
func (env *appEnv) sourceOptions() ([]source.Option, error) {
	timeout, err := env.config.timeout()
	if err != nil {
		return nil, err
	}
	return []source.Option{
		source.WithCache(env.cache),
		source.WithTimeout(timeout),
		source.WithLogger(env.logger),
	}, nil
}

// newSource constructs the named dataset's source, checking the built-in
// datasets first and then the configured ones.
func (env *appEnv) newSource(name string) (source.Source, error) {
	opts, err := env.sourceOptions()
	if err != nil {
		return nil, err
	}
	if def, ok := datasets.Lookup(name); ok {
		//nolint:wrapcheck // constructor errors carry context
		return def.New(opts...)
	}
	for _, sc := range env.config.Sources {
		if sc.Name == name {
			return sc.newSource(opts...)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
}
