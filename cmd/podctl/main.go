// Command podctl resolves pod users and chats and manages presence from the
// command line.
//
// Connection settings come from POD_* environment variables, optionally
// loaded from dotenv files with --env-file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/spachava753/podkit/pod"
)

var version = "dev"

// errNotFound is returned by commands whose identifier resolved to nothing.
var errNotFound = errors.New("not found")

// app carries state shared by podctl commands.
type app struct {
	out  io.Writer
	errw io.Writer

	cfg  pod.Config
	log  zerolog.Logger
	conn *pod.Connection
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{out: os.Stdout, errw: os.Stderr}
	if err := a.cli().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "podctl:", err)
		if errors.Is(err, errNotFound) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func (a *app) cli() *cli.App {
	return &cli.App{
		Name:      "podctl",
		Usage:     "resolve pod users and chats, read and set presence",
		Version:   version,
		Writer:    a.out,
		ErrWriter: a.errw,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:      "env-file",
				Usage:     "dotenv file to load before reading POD_* variables",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "trace, debug, info, warn, error or disabled",
				EnvVars: []string{"POD_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "json, yaml or table",
				Value:   string(formatTable),
			},
		},
		Before: func(c *cli.Context) error {
			_, err := parseFormat(c.String("output"))
			return err
		},
		Commands: []*cli.Command{
			a.userCommand(),
			a.chatCommand(),
			a.presenceCommand(),
		},
	}
}

// connect loads configuration and opens a connection on first use.
func (a *app) connect(c *cli.Context) (*pod.Connection, error) {
	if a.conn != nil {
		return a.conn, nil
	}

	cfg, err := pod.LoadConfig(c.StringSlice("env-file")...)
	if err != nil {
		return nil, err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	log, err := newLogger(cfg.LogLevel, a.errw)
	if err != nil {
		return nil, err
	}

	conn, err := pod.Connect(cfg,
		pod.WithLogger(log),
		pod.WithUserAgent("podctl/"+version),
	)
	if err != nil {
		return nil, err
	}
	a.cfg, a.log, a.conn = cfg, log, conn
	a.log.Debug().Str("url", cfg.URL).Msg("connected")
	return conn, nil
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
