// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glcmdc compiles frame files into command buffers, prints the
// compiled programs and replays them on a driver.
//
// Usage:
//
//	glcmdc [flags] scene.hcl
//
// The trace driver is always available. Build with -tags gl to replay on
// a live OpenGL 4.3 context made current by the host.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glcmd"
	"github.com/gogpu/glcmd/command"
	"github.com/gogpu/glcmd/driver"
	"github.com/gogpu/glcmd/driver/trace"
	"github.com/gogpu/glcmd/internal/config"
	"github.com/gogpu/glcmd/internal/frame"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("glcmdc: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type options struct {
	config   string
	driver   string
	frame    string
	strategy string
	replays  int
	calls    bool
	quiet    bool
	path     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("glcmdc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.config, "config", "", "TOML configuration file")
	fs.StringVar(&o.driver, "driver", "trace", "driver to replay on ("+fmt.Sprint(driver.Drivers())+")")
	fs.StringVar(&o.frame, "frame", "", "only print and replay this frame")
	fs.StringVar(&o.strategy, "strategy", "", "override the configured strategy (lazy or eager)")
	fs.IntVar(&o.replays, "replays", 1, "number of replays per frame")
	fs.BoolVar(&o.calls, "calls", false, "print driver calls recorded by the trace driver")
	fs.BoolVar(&o.quiet, "q", false, "do not print compiled programs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one frame file")
	}
	if o.replays < 0 {
		return nil, fmt.Errorf("-replays must not be negative, got %d", o.replays)
	}
	o.path = fs.Arg(0)
	return o, nil
}

func loadConfig(o *options) (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return cfg, err
		}
	}
	if o.strategy != "" {
		cfg.Compiler.Strategy = o.strategy
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	glcmd.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer glcmd.SetLogger(nil)

	strategy, _ := cfg.Strategy()
	ctx, err := command.NewContext(command.WithLabel(o.path), command.WithLimits(cfg.ContextLimits()))
	if err != nil {
		return err
	}
	f, err := frame.Load(o.path, ctx, command.WithStrategy(strategy))
	if err != nil {
		return err
	}

	glcmd.Logger().Info("glcmdc: loaded",
		"file", o.path,
		"frames", len(f.Frames),
		"strategy", strategy.String(),
	)

	frames := f.Frames
	if o.frame != "" {
		fr, ok := f.Frame(o.frame)
		if !ok {
			return fmt.Errorf("no frame %q in %s", o.frame, o.path)
		}
		frames = []*frame.Frame{fr}
	}

	for _, fr := range frames {
		// Every frame assumes the driver starts in the default state.
		d, err := driver.New(o.driver)
		if err != nil {
			return err
		}
		tracer, _ := d.(*trace.Driver)
		glcmd.Logger().Info("glcmdc: driver created", "driver", o.driver, "frame", fr.Name)

		cb := fr.Buffer
		if !o.quiet {
			fmt.Fprintf(stdout, "frame %q: %d operations, %d instructions, %d transitions\n",
				fr.Name, len(cb.Operations()), len(cb.Instructions()), cb.Transitions())
			for _, in := range cb.Prologue() {
				fmt.Fprintln(stdout, "prologue", in)
			}
			fmt.Fprint(stdout, cb)
		}
		for i := range o.replays {
			if tracer != nil {
				tracer.Reset()
			}
			if err := cb.Execute(d); err != nil {
				return fmt.Errorf("frame %q replay %d: %w", fr.Name, i, err)
			}
		}
		if o.calls && tracer != nil && o.replays > 0 {
			fmt.Fprintf(stdout, "frame %q: driver calls of the last replay\n", fr.Name)
			for _, call := range tracer.Calls() {
				fmt.Fprintln(stdout, "\t"+call)
			}
		}
	}
	return nil
}
